package convert

import (
	"errors"
	"strings"

	"github.com/marmos91/epochctl/internal/caltime"
	"github.com/marmos91/epochctl/internal/epoch"
)

// Form tags which of the disjoint input grammars a raw query matched.
type Form int

const (
	// FormNone matches nothing recognizable.
	FormNone Form = iota
	// FormNTFS is the keyword form: "NT|NTFS|LDAP <integer>".
	FormNTFS
	// FormUnix is a bare or unit-suffixed integer: "1700000000", "123ms".
	FormUnix
	// FormCalendar is a calendar date-time string.
	FormCalendar
)

// String names the form for logs and errors.
func (f Form) String() string {
	switch f {
	case FormNTFS:
		return "ntfs"
	case FormUnix:
		return "unix"
	case FormCalendar:
		return "calendar"
	}
	return "none"
}

// ntfsKeywords are the accepted case-insensitive prefixes of the keyword
// form. All three denote the same 100ns-ticks-since-1601 timestamp.
var ntfsKeywords = map[string]bool{
	"NT":   true,
	"NTFS": true,
	"LDAP": true,
}

// query carries the classified pieces of one raw input.
type query struct {
	form     Form
	raw      string
	number   string           // signed decimal digits, timestamp forms only
	res      epoch.Resolution // declared resolution, unix form only
	explicit bool             // resolution was declared by a unit suffix
}

// Classify reports which input grammar a raw query matches, without
// converting it. The grammars are disjoint and tried in a fixed order: the
// NTFS/LDAP keyword form, then a bare or unit-suffixed integer, then a
// calendar date-time.
func Classify(raw string) Form {
	q := classify(raw)
	if q.form == FormCalendar {
		// The calendar form is settled by its grammar alone; zone names
		// are checked later, at conversion time.
		if _, err := caltime.Parse(q.raw, nil); errors.Is(err, caltime.ErrNoMatch) {
			return FormNone
		}
	}
	return q.form
}

func classify(raw string) query {
	trimmed := strings.TrimSpace(raw)
	fields := strings.Fields(trimmed)

	switch len(fields) {
	case 0:
		return query{form: FormNone, raw: trimmed}
	case 1:
		if number, res, explicit, ok := splitUnixToken(fields[0]); ok {
			return query{form: FormUnix, raw: trimmed, number: number, res: res, explicit: explicit}
		}
	case 2:
		if ntfsKeywords[strings.ToUpper(fields[0])] && isInteger(fields[1]) {
			return query{form: FormNTFS, raw: trimmed, number: fields[1]}
		}
	}
	return query{form: FormCalendar, raw: trimmed}
}

// splitUnixToken splits a token like "1700000000" or "123456ms" into its
// integer part and declared resolution. A missing suffix leaves the
// resolution to inference.
func splitUnixToken(token string) (number string, res epoch.Resolution, explicit bool, ok bool) {
	for _, r := range epoch.Resolutions {
		abbrev := r.Abbrev()
		if body, found := strings.CutSuffix(token, abbrev); found && isInteger(body) {
			return body, r, true, true
		}
	}
	if isInteger(token) {
		return token, 0, false, true
	}
	return "", 0, false, false
}

// isInteger reports whether s is an optionally signed run of decimal
// digits.
func isInteger(s string) bool {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
