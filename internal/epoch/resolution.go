package epoch

import (
	"fmt"
	"math/big"
	"time"
)

// Resolution is the power of ten scaling one unit of a Unix timestamp to
// seconds: 0 for seconds, 3 for milliseconds, 6 for microseconds, 9 for
// nanoseconds.
type Resolution int

const (
	Seconds      Resolution = 0
	Milliseconds Resolution = 3
	Microseconds Resolution = 6
	Nanoseconds  Resolution = 9
)

// Resolutions lists every supported resolution, coarsest first. The order
// matters: inference walks this list and returns the first acceptable entry.
var Resolutions = [...]Resolution{Seconds, Milliseconds, Microseconds, Nanoseconds}

// Valid reports whether r is one of the supported resolutions.
func (r Resolution) Valid() bool {
	switch r {
	case Seconds, Milliseconds, Microseconds, Nanoseconds:
		return true
	}
	return false
}

// Unit returns the resolution's unit name, e.g. "milliseconds".
func (r Resolution) Unit() string {
	switch r {
	case Seconds:
		return "seconds"
	case Milliseconds:
		return "milliseconds"
	case Microseconds:
		return "microseconds"
	case Nanoseconds:
		return "nanoseconds"
	}
	return fmt.Sprintf("10^%d seconds", -int(r))
}

// Abbrev returns the resolution's unit suffix as accepted in queries.
func (r Resolution) Abbrev() string {
	switch r {
	case Seconds:
		return "s"
	case Milliseconds:
		return "ms"
	case Microseconds:
		return "us"
	case Nanoseconds:
		return "ns"
	}
	return ""
}

// ParseAbbrev maps a unit suffix ("s", "ms", "us", "ns") to its resolution.
func ParseAbbrev(s string) (Resolution, bool) {
	for _, r := range Resolutions {
		if s == r.Abbrev() {
			return r, true
		}
	}
	return 0, false
}

// Infer picks the coarsest resolution under which ts decodes to an instant
// no later than maxYear-12-31 UTC. Larger powers shrink the epoch-relative
// magnitude, so walking coarsest-first prefers the human-plausible reading
// of a bare integer: "1700000000" is seconds, not nanoseconds. Nanoseconds
// is the fallback of last resort; its decode failure propagates.
func Infer(ts *big.Int, maxYear int) (Resolution, error) {
	bound := time.Date(maxYear, time.December, 31, 0, 0, 0, 0, time.UTC)
	for i, r := range Resolutions {
		last := i == len(Resolutions)-1
		t, err := DecodeUnix(ts, r)
		if err != nil {
			if last {
				return 0, err
			}
			continue
		}
		if !t.After(bound) || last {
			return r, nil
		}
	}
	return 0, ErrOutOfRange
}
