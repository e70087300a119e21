package epoch

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeNTFS(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "ntfs epoch",
			input: "0",
			want:  time.Date(1601, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "unix epoch",
			input: "116444736000000000",
			want:  time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "modern instant with ticks",
			input: "133497954001234567",
			want:  time.Date(2024, 1, 15, 12, 30, 0, 123456700, time.UTC),
		},
		{
			name:  "negative tick floors before the ntfs epoch",
			input: "-1",
			want:  time.Date(1600, 12, 31, 23, 59, 59, 999999900, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeNTFS(bigFromString(t, tt.input))
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
		})
	}
}

func TestDecodeNTFSErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "beyond year 9999", input: "9999999999999999999999", want: ErrOutOfRange},
		{name: "seconds overflow int64", input: "1" + zeros(30), want: ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeNTFS(bigFromString(t, tt.input))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// TestNTFSRoundTrip checks that EncodeNTFS is the exact inverse of
// DecodeNTFS across the epoch boundary and for negative timestamps.
func TestNTFSRoundTrip(t *testing.T) {
	inputs := []string{
		"0", "1", "-1", "9999999", "-9999999",
		"116444736000000000", "133497954001234567",
		"-494074000000000", // well before 1601
	}

	for _, in := range inputs {
		ts := bigFromString(t, in)
		decoded, err := DecodeNTFS(ts)
		require.NoError(t, err, "input %s", in)
		encoded := EncodeNTFS(decoded)
		assert.Zero(t, ts.Cmp(encoded), "input %s: got %s", in, encoded)
	}
}

// TestEncodeNTFSTruncates checks that nanoseconds finer than one tick are
// discarded, not rounded: 150ns contributes exactly one tick.
func TestEncodeNTFSTruncates(t *testing.T) {
	instant := time.Date(2024, 1, 15, 12, 30, 0, 150, time.UTC)
	encoded := EncodeNTFS(instant)

	ticks := new(big.Int).Mod(encoded, big.NewInt(ticksPerSecond))
	assert.Equal(t, "1", ticks.String())
}
