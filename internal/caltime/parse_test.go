package caltime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		want          time.Time
		wantHadTime   bool
		wantSubsecond SubsecondWidth
	}{
		{
			name:  "date only defaults to utc midnight",
			input: "2024-01-15",
			want:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:        "date and time without zone is utc",
			input:       "2024-01-15 12:30:00",
			want:        time.Date(2024, 1, 15, 12, 30, 0, 0, time.UTC),
			wantHadTime: true,
		},
		{
			name:          "nine digit subsecond is nanoseconds",
			input:         "2024-01-15 12:30:00:123456789",
			want:          time.Date(2024, 1, 15, 12, 30, 0, 123456789, time.UTC),
			wantHadTime:   true,
			wantSubsecond: WidthNanoseconds,
		},
		{
			name:          "seven digit subsecond is 100ns ticks",
			input:         "2024-01-15 12:30:00:1234567",
			want:          time.Date(2024, 1, 15, 12, 30, 0, 123456700, time.UTC),
			wantHadTime:   true,
			wantSubsecond: WidthTicks,
		},
		{
			name:        "fixed positive offset",
			input:       "2024-01-15 12:30:00 +0100",
			want:        time.Date(2024, 1, 15, 11, 30, 0, 0, time.UTC),
			wantHadTime: true,
		},
		{
			name:        "fixed negative offset with colon",
			input:       "2024-01-15 12:30:00 -05:30",
			want:        time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC),
			wantHadTime: true,
		},
		{
			name:  "offset without time of day",
			input: "2024-01-15 +0100",
			want:  time.Date(2024, 1, 14, 23, 0, 0, 0, time.UTC),
		},
		{
			name:        "single digit components",
			input:       "987-1-2 3:4:5",
			want:        time.Date(987, 1, 2, 3, 4, 5, 0, time.UTC),
			wantHadTime: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input, SystemZones{})
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got.Time), "want %v, got %v", tt.want, got.Time)
			assert.Equal(t, tt.wantHadTime, got.HadTime)
			assert.Equal(t, tt.wantSubsecond, got.Subsecond)
		})
	}
}

// TestParseNamedZoneDST checks that a named zone resolves its offset at the
// parsed date, so a summer date in a DST-observing zone gets the daylight
// offset rather than the standard one.
func TestParseNamedZoneDST(t *testing.T) {
	summer, err := Parse("2024-07-15 12:00:00 America/New_York", SystemZones{})
	require.NoError(t, err)
	assert.True(t, time.Date(2024, 7, 15, 16, 0, 0, 0, time.UTC).Equal(summer.Time),
		"EDT (-0400) expected, got %v", summer.Time)

	winter, err := Parse("2024-01-15 12:00:00 America/New_York", SystemZones{})
	require.NoError(t, err)
	assert.True(t, time.Date(2024, 1, 15, 17, 0, 0, 0, time.UTC).Equal(winter.Time),
		"EST (-0500) expected, got %v", winter.Time)
}

func TestParseNamedZoneCaseInsensitive(t *testing.T) {
	got, err := Parse("2024-01-15 12:00:00 america/new_york", SystemZones{})
	require.NoError(t, err)
	assert.True(t, time.Date(2024, 1, 15, 17, 0, 0, 0, time.UTC).Equal(got.Time))
}

func TestParseNoMatch(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "not a date", input: "hello"},
		{name: "month thirteen", input: "2024-13-01"},
		{name: "february thirtieth", input: "2024-02-30"},
		{name: "year zero", input: "0-01-01"},
		{name: "five digit year", input: "10000-01-01"},
		{name: "hour out of range", input: "2024-01-15 24:00:00"},
		{name: "eight digit subsecond", input: "2024-01-15 12:30:00:12345678"},
		{name: "trailing garbage", input: "2024-01-15 12:30:00 +0000 extra"},
		{name: "offset with bad minutes", input: "2024-01-15 12:30:00 +0575"},
		{name: "offset too short", input: "2024-01-15 12:30:00 +01"},
		{name: "zone token with invalid characters", input: "2024-01-15 12:30:00 {zone}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input, SystemZones{})
			assert.ErrorIs(t, err, ErrNoMatch)
		})
	}
}

func TestParseUnknownZone(t *testing.T) {
	_, err := Parse("2024-01-15 12:30:00 Atlantis/Underwater", SystemZones{})
	assert.ErrorIs(t, err, ErrUnknownZone)
}
