package caltime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrNoMatch reports input that does not match the calendar date-time
// grammar. Callers treat it as "not handled" and try their next
// interpretation, so it is deliberately not a user-facing failure.
var ErrNoMatch = errors.New("not a calendar date-time")

// Parsed is the outcome of parsing a calendar date-time string.
type Parsed struct {
	// Time is the fully resolved instant. Sub-second precision, when
	// present in the input, is carried in the nanosecond field.
	Time time.Time

	// HadTime reports whether a time-of-day component was given.
	// Without one the time defaults to midnight.
	HadTime bool

	// Subsecond is the width of an explicit sub-second field (nine digits
	// of nanoseconds or seven digits of 100ns ticks), or zero when the
	// input carried no sub-second field.
	Subsecond SubsecondWidth
}

// Parse reads a calendar date-time string of the form
//
//	YYYY-MM-DD [HH:MM:SS[:subsec]] [tz]
//
// with a 1-4 digit year, 1-2 digit month, day, hour, minute and second, a
// sub-second field of exactly nine digits (nanoseconds) or exactly seven
// digits (100ns ticks), and a trailing timezone given either as a fixed
// offset (+HHMM, -HH:MM) or as a zone name resolved through zones.
//
// A missing timezone means UTC. Named zones resolve their offset at the
// parsed calendar date, so daylight-saving rules apply. Input that does not
// match the grammar fails with ErrNoMatch; nothing is ever silently
// dropped, so trailing unparsed text is a failure, not a partial match.
func Parse(input string, zones ZoneResolver) (Parsed, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 || len(fields) > 3 {
		return Parsed{}, ErrNoMatch
	}

	year, month, day, err := parseDate(fields[0])
	if err != nil {
		return Parsed{}, err
	}

	rest := fields[1:]
	var (
		hour, min, sec, nsec int
		hadTime              bool
		subsecond            SubsecondWidth
	)
	if len(rest) > 0 && looksLikeTime(rest[0]) {
		hour, min, sec, nsec, subsecond, err = parseTimeOfDay(rest[0])
		if err != nil {
			return Parsed{}, err
		}
		hadTime = true
		rest = rest[1:]
	}

	loc := time.UTC
	if len(rest) > 0 {
		loc, err = parseZone(rest[0], zones)
		if err != nil {
			return Parsed{}, err
		}
		rest = rest[1:]
	}
	if len(rest) > 0 {
		return Parsed{}, ErrNoMatch
	}

	return Parsed{
		Time:      time.Date(year, time.Month(month), day, hour, min, sec, nsec, loc),
		HadTime:   hadTime,
		Subsecond: subsecond,
	}, nil
}

// parseDate reads "YYYY-MM-DD" with a 1-4 digit year and 1-2 digit month
// and day, rejecting calendar-invalid dates such as month 13 or Feb 30.
func parseDate(s string) (year, month, day int, err error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return 0, 0, 0, ErrNoMatch
	}
	year, ok1 := parseDigits(parts[0], 1, 4)
	month, ok2 := parseDigits(parts[1], 1, 2)
	day, ok3 := parseDigits(parts[2], 1, 2)
	if !ok1 || !ok2 || !ok3 || year < 1 {
		return 0, 0, 0, ErrNoMatch
	}

	// time.Date normalizes out-of-range components; a real date survives
	// normalization unchanged.
	norm := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if norm.Year() != year || norm.Month() != time.Month(month) || norm.Day() != day {
		return 0, 0, 0, ErrNoMatch
	}
	return year, month, day, nil
}

// looksLikeTime reports whether the token is shaped like a time-of-day
// field: digits separated by colons. Tokens failing this are handed to the
// timezone rules instead.
func looksLikeTime(s string) bool {
	hasColon := false
	for _, r := range s {
		switch {
		case r == ':':
			hasColon = true
		case r < '0' || r > '9':
			return false
		}
	}
	return hasColon
}

// parseTimeOfDay reads "HH:MM:SS" optionally followed by ":subsec" where
// the sub-second field is exactly nine digits (nanoseconds) or exactly
// seven digits (100ns ticks); the digit count disambiguates the two.
func parseTimeOfDay(s string) (hour, min, sec, nsec int, width SubsecondWidth, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 && len(parts) != 4 {
		return 0, 0, 0, 0, 0, ErrNoMatch
	}
	hour, ok1 := parseDigits(parts[0], 1, 2)
	min, ok2 := parseDigits(parts[1], 1, 2)
	sec, ok3 := parseDigits(parts[2], 1, 2)
	if !ok1 || !ok2 || !ok3 || hour > 23 || min > 59 || sec > 59 {
		return 0, 0, 0, 0, 0, ErrNoMatch
	}

	if len(parts) == 4 {
		sub := parts[3]
		switch len(sub) {
		case int(WidthNanoseconds):
			width = WidthNanoseconds
		case int(WidthTicks):
			width = WidthTicks
		default:
			return 0, 0, 0, 0, 0, ErrNoMatch
		}
		v, ok := parseDigits(sub, len(sub), len(sub))
		if !ok {
			return 0, 0, 0, 0, 0, ErrNoMatch
		}
		nsec = v
		if width == WidthTicks {
			nsec *= 100
		}
	}
	return hour, min, sec, nsec, width, nil
}

// parseZone reads a trailing timezone token: a fixed offset of the form
// +HHMM / -HH:MM, or a named zone resolved through zones.
func parseZone(s string, zones ZoneResolver) (*time.Location, error) {
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return parseFixedOffset(s)
	}
	if !looksLikeZoneName(s) {
		return nil, ErrNoMatch
	}
	if zones == nil {
		return nil, fmt.Errorf("%w: %q (no zone resolver configured)", ErrUnknownZone, s)
	}
	return zones.Resolve(s)
}

func parseFixedOffset(s string) (*time.Location, error) {
	sign := 1
	if s[0] == '-' {
		sign = -1
	}
	body := strings.Replace(s[1:], ":", "", 1)
	if len(body) != 4 {
		return nil, ErrNoMatch
	}
	hours, ok1 := parseDigits(body[:2], 2, 2)
	mins, ok2 := parseDigits(body[2:], 2, 2)
	if !ok1 || !ok2 || hours > 23 || mins > 59 {
		return nil, ErrNoMatch
	}
	return time.FixedZone("", sign*(hours*3600+mins*60)), nil
}

// looksLikeZoneName limits zone tokens to the character set IANA names use,
// so arbitrary trailing garbage classifies as no-match rather than being
// reported as an unknown zone.
func looksLikeZoneName(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '/' || r == '_' || r == '-' || r == '+':
		default:
			return false
		}
	}
	return s != ""
}

// parseDigits converts an all-digit string of between minLen and maxLen
// characters. It rejects signs, spaces and anything else strconv would
// otherwise tolerate.
func parseDigits(s string, minLen, maxLen int) (int, bool) {
	if len(s) < minLen || len(s) > maxLen {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
