package caltime

import (
	"errors"
	"fmt"
	"strings"
	"time"

	// Compile the zone database into the binary so named-zone resolution
	// works on hosts without a system tzdata installation.
	_ "time/tzdata"
)

// ErrUnknownZone reports a timezone name missing from the zone database.
var ErrUnknownZone = errors.New("unknown timezone")

// ZoneResolver resolves a timezone name to its location rules. The returned
// location carries the zone's full history, so offsets resolved against it
// are daylight-saving aware at any calendar date. Implementations let the
// zone database be swapped or mocked.
type ZoneResolver interface {
	Resolve(name string) (*time.Location, error)
}

// SystemZones resolves names against the zone database compiled into the
// binary. Lookup is case-insensitive: "america/new_york" finds
// "America/New_York".
type SystemZones struct{}

// Resolve implements ZoneResolver.
func (SystemZones) Resolve(name string) (*time.Location, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrUnknownZone)
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc, nil
	}
	if loc, err := time.LoadLocation(canonicalZoneName(name)); err == nil {
		return loc, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownZone, name)
}

// canonicalZoneName maps case-insensitive input onto the conventional IANA
// capitalization: short plain names are upper-cased ("utc" -> "UTC"), path
// segments are capitalized word by word ("america/new_york" ->
// "America/New_York"). Exact-case names never reach this fallback.
func canonicalZoneName(name string) string {
	if len(name) <= 3 && !strings.Contains(name, "/") {
		return strings.ToUpper(name)
	}
	segs := strings.Split(name, "/")
	for i, seg := range segs {
		words := strings.Split(seg, "_")
		for j, w := range words {
			if w == "" {
				continue
			}
			words[j] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
		}
		segs[i] = strings.Join(words, "_")
	}
	return strings.Join(segs, "/")
}
