// Package epoch converts between integer epoch timestamps and calendar
// instants. Two epoch families are supported: Unix timestamps counted from
// 1970-01-01 UTC at second through nanosecond resolution, and NTFS/LDAP
// timestamps counted in 100-nanosecond ticks from 1601-01-01 UTC.
//
// Timestamps are arbitrary-precision integers on the wire side: values that
// exceed 64 bits are accepted as input and produced as output. The calendar
// side is a plain time.Time carrying the sub-second component in its
// nanosecond field. Supported instants span calendar years 1 through 9999;
// anything outside that range fails with ErrOutOfRange.
package epoch

import (
	"errors"
	"math/big"
	"time"
)

var (
	// ErrOutOfRange reports a timestamp whose instant falls outside the
	// supported calendar years [1, 9999].
	ErrOutOfRange = errors.New("timestamp outside the supported calendar range")

	// ErrOverflow reports intermediate arithmetic that exceeds the
	// representable integer magnitude.
	ErrOverflow = errors.New("timestamp arithmetic overflow")
)

// MinYear and MaxYear bound the calendar years this package can represent.
const (
	MinYear = 1
	MaxYear = 9999
)

var (
	minUnixSeconds = time.Date(MinYear, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
	maxUnixSeconds = time.Date(MaxYear, time.December, 31, 23, 59, 59, 0, time.UTC).Unix()
)

// secondsToTime turns an epoch-relative second count plus a non-negative
// sub-second nanosecond remainder into a UTC instant, rejecting values that
// do not fit int64 seconds or leave the supported calendar range.
func secondsToTime(sec *big.Int, nsec int64) (time.Time, error) {
	if !sec.IsInt64() {
		return time.Time{}, ErrOverflow
	}
	s := sec.Int64()
	if s < minUnixSeconds || s > maxUnixSeconds {
		return time.Time{}, ErrOutOfRange
	}
	return time.Unix(s, nsec).UTC(), nil
}

// pow10 returns 10^n as a big integer. n must be non-negative.
func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// floorDivMod computes floor division of ts by a positive scale, returning
// quotient and a remainder in [0, scale). big.Int.DivMod is Euclidean, which
// coincides with floor division for positive divisors, so negative
// timestamps split into a smaller second count and a non-negative remainder.
func floorDivMod(ts, scale *big.Int) (*big.Int, *big.Int) {
	return new(big.Int).DivMod(ts, scale, new(big.Int))
}
