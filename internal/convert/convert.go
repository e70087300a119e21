// Package convert classifies raw queries and routes them through the epoch
// codecs, aggregating every applicable output representation of the input.
//
// Data flows one way per request: raw input, classification, codec,
// formatted outputs. A Converter holds only immutable configuration, so one
// instance may serve concurrent requests without coordination.
package convert

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/marmos91/epochctl/internal/caltime"
	"github.com/marmos91/epochctl/internal/epoch"
)

// Output labels. These are part of the textual contract: callers align and
// copy them literally.
const (
	LabelLocal = "Local"
	LabelUTC   = "UTC"
	LabelUnix  = "Unix (ns)"
	LabelNTFS  = "NTFS"
)

// KindNTFS and KindCalendar label the non-Unix input interpretations; Unix
// inputs are labeled with their resolution's unit name.
const (
	KindNTFS     = "100-nanosecond ticks"
	KindCalendar = "calendar date-time"
)

// Converter converts raw queries into conversion results. The local
// timezone is injected at construction and captured nowhere else, keeping
// conversions independent of ambient process state.
type Converter struct {
	local   *time.Location
	maxYear int
	zones   caltime.ZoneResolver
}

// New builds a Converter. A nil local renders "local" outputs in UTC, a
// zero maxYear means the full supported range, and a nil zones falls back
// to the zone database compiled into the binary.
func New(local *time.Location, maxYear int, zones caltime.ZoneResolver) *Converter {
	if local == nil {
		local = time.UTC
	}
	if maxYear == 0 {
		maxYear = epoch.MaxYear
	}
	if zones == nil {
		zones = caltime.SystemZones{}
	}
	return &Converter{local: local, maxYear: maxYear, zones: zones}
}

// Convert classifies the query and produces every applicable target
// representation, excluding the input's own. Failures return a single
// error and no partial results.
func (c *Converter) Convert(raw string) (*Result, error) {
	q := classify(raw)
	switch q.form {
	case FormNTFS:
		return c.convertNTFS(q)
	case FormUnix:
		return c.convertUnix(q)
	case FormCalendar:
		return c.convertCalendar(q)
	}
	return nil, fmt.Errorf("empty query: %w", caltime.ErrNoMatch)
}

func (c *Converter) convertUnix(q query) (*Result, error) {
	ts, ok := new(big.Int).SetString(q.number, 10)
	if !ok {
		return nil, fmt.Errorf("%q: %w", q.raw, caltime.ErrNoMatch)
	}

	res := q.res
	if !q.explicit {
		var err error
		if res, err = epoch.Infer(ts, c.maxYear); err != nil {
			return nil, err
		}
	}
	t, err := epoch.DecodeUnix(ts, res)
	if err != nil {
		return nil, err
	}

	localStr, utcStr := caltime.Format(t, caltime.WidthNanoseconds, c.local)
	return &Result{
		Query: q.raw,
		Kind:  res.Unit(),
		Outputs: []Output{
			{Label: LabelLocal, Value: localStr},
			{Label: LabelUTC, Value: utcStr},
			{Label: LabelNTFS, Value: epoch.EncodeNTFS(t).String()},
		},
	}, nil
}

func (c *Converter) convertNTFS(q query) (*Result, error) {
	ts, ok := new(big.Int).SetString(q.number, 10)
	if !ok {
		return nil, fmt.Errorf("%q: %w", q.raw, caltime.ErrNoMatch)
	}

	t, err := epoch.DecodeNTFS(ts)
	if err != nil {
		return nil, err
	}

	localStr, utcStr := caltime.Format(t, caltime.WidthTicks, c.local)
	return &Result{
		Query: q.raw,
		Kind:  KindNTFS,
		Outputs: []Output{
			{Label: LabelLocal, Value: localStr},
			{Label: LabelUTC, Value: utcStr},
			{Label: LabelUnix, Value: epoch.EncodeUnix(t, epoch.Nanoseconds).String()},
		},
	}, nil
}

func (c *Converter) convertCalendar(q query) (*Result, error) {
	parsed, err := caltime.Parse(q.raw, c.zones)
	if err != nil {
		if errors.Is(err, caltime.ErrNoMatch) {
			return nil, fmt.Errorf("%q matches no supported timestamp or date-time form: %w", q.raw, caltime.ErrNoMatch)
		}
		return nil, err
	}

	// The grammar bounds the written year, but a zone offset can still
	// shift the UTC instant across a calendar boundary.
	t := parsed.Time
	if utcYear := t.UTC().Year(); utcYear < epoch.MinYear || utcYear > epoch.MaxYear {
		return nil, fmt.Errorf("date %q: %w", q.raw, epoch.ErrOutOfRange)
	}

	width := caltime.WidthNanoseconds
	if parsed.Subsecond == caltime.WidthTicks {
		width = caltime.WidthTicks
	}
	localStr, utcStr := caltime.Format(t, width, c.local)

	return &Result{
		Query: q.raw,
		Kind:  KindCalendar,
		Outputs: []Output{
			{Label: LabelUnix, Value: epoch.EncodeUnix(t, epoch.Nanoseconds).String()},
			{Label: LabelNTFS, Value: epoch.EncodeNTFS(t).String()},
			{Label: LabelUTC, Value: utcStr},
			{Label: LabelLocal, Value: localStr},
		},
	}, nil
}
