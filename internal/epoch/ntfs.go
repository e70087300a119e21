package epoch

import (
	"fmt"
	"math/big"
	"time"
)

// ntfsEpochUnix is 1601-01-01T00:00:00Z expressed in Unix seconds. NTFS,
// LDAP and Windows FILETIME values all count 100-nanosecond ticks from that
// instant.
const ntfsEpochUnix = -11644473600

// ticksPerSecond is the number of 100-nanosecond ticks in one second.
const ticksPerSecond = 10_000_000

// nanosPerTick is the tick granularity in nanoseconds.
const nanosPerTick = 100

// DecodeNTFS converts an NTFS/LDAP timestamp into a UTC instant. The
// timestamp splits by floor division into whole seconds since 1601-01-01
// and a non-negative tick remainder, so negative values land strictly
// before the NTFS epoch.
func DecodeNTFS(ts *big.Int) (time.Time, error) {
	sec, ticks := floorDivMod(ts, big.NewInt(ticksPerSecond))
	sec.Add(sec, big.NewInt(ntfsEpochUnix))

	t, err := secondsToTime(sec, ticks.Int64()*nanosPerTick)
	if err != nil {
		return time.Time{}, fmt.Errorf("ntfs timestamp %s: %w", ts, err)
	}
	return t, nil
}

// EncodeNTFS converts an instant into an NTFS/LDAP timestamp. The instant's
// nanosecond field is truncated to 100-nanosecond ticks: any component finer
// than one tick is discarded, not rounded.
func EncodeNTFS(t time.Time) *big.Int {
	sec := new(big.Int).Sub(big.NewInt(t.Unix()), big.NewInt(ntfsEpochUnix))
	out := new(big.Int).Mul(sec, big.NewInt(ticksPerSecond))
	return out.Add(out, big.NewInt(int64(t.Nanosecond()/nanosPerTick)))
}
