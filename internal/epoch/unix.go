package epoch

import (
	"fmt"
	"math/big"
	"time"
)

// DecodeUnix converts a Unix timestamp at the given resolution into a UTC
// instant. Division is floor-based, so a negative timestamp resolves to an
// instant strictly before the epoch with a non-negative sub-second part:
// -1 at second resolution is 1969-12-31T23:59:59Z.
func DecodeUnix(ts *big.Int, r Resolution) (time.Time, error) {
	if !r.Valid() {
		return time.Time{}, fmt.Errorf("unsupported resolution power %d", int(r))
	}
	sec, rem := floorDivMod(ts, pow10(int(r)))

	// rem < 10^r <= 10^9, so the nanosecond remainder always fits int64.
	nsec := new(big.Int).Mul(rem, pow10(9-int(r))).Int64()

	t, err := secondsToTime(sec, nsec)
	if err != nil {
		return time.Time{}, fmt.Errorf("unix timestamp %s as %s: %w", ts, r.Unit(), err)
	}
	return t, nil
}

// EncodeUnix converts an instant into a Unix timestamp at the given
// resolution. Seconds are floored and the sub-second part is floored into
// the unit, making EncodeUnix the exact inverse of DecodeUnix at the same
// resolution. Resolutions coarser than the instant's precision truncate,
// never round.
func EncodeUnix(t time.Time, r Resolution) *big.Int {
	out := new(big.Int).Mul(big.NewInt(t.Unix()), pow10(int(r)))
	if r != Seconds {
		// t.Nanosecond() is non-negative by construction, so integer
		// division is a floor here.
		unitPerSecond := new(big.Int).Div(big.NewInt(int64(t.Nanosecond())), pow10(9-int(r)))
		out.Add(out, unitPerSecond)
	}
	return out
}
