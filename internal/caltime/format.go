// Package caltime renders calendar instants to the fixed textual form used
// across the tool and parses that same family of strings back. The format is
// "YYYY-MM-DD HH:MM:SS:<subsec> ±HHMM" with the sub-second field zero-padded
// to nine digits (nanoseconds) or seven digits (NTFS 100-nanosecond ticks).
//
// The local timezone is never read from ambient process state: callers
// capture a *time.Location once at startup and pass it in, which keeps the
// package testable without touching the real process timezone.
package caltime

import (
	"fmt"
	"time"
)

// SubsecondWidth selects the digit width of the rendered sub-second field.
type SubsecondWidth int

const (
	// WidthNanoseconds renders nine digits of nanoseconds.
	WidthNanoseconds SubsecondWidth = 9
	// WidthTicks renders seven digits of 100-nanosecond ticks.
	WidthTicks SubsecondWidth = 7
)

// Format renders an instant in the given local zone and in UTC, in that
// fixed order. Both strings are always produced.
func Format(t time.Time, width SubsecondWidth, local *time.Location) (localStr, utcStr string) {
	return formatIn(t.In(local), width), formatIn(t.UTC(), width)
}

func formatIn(t time.Time, width SubsecondWidth) string {
	sub := t.Nanosecond()
	if width == WidthTicks {
		sub /= 100
	}
	return fmt.Sprintf("%s:%0*d %s",
		t.Format("2006-01-02 15:04:05"), int(width), sub, t.Format("-0700"))
}
