package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConverter(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{name: "empty timezone uses system local", timezone: ""},
		{name: "valid zone", timezone: "Europe/Rome"},
		{name: "case-insensitive zone", timezone: "europe/rome"},
		{name: "unknown zone", timezone: "Atlantis/Underwater", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv, err := newConverter(tt.timezone, 9999)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, conv)
		})
	}
}

func TestRootCommandWiring(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range GetRootCmd().Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"convert", "interactive", "zone", "init", "version"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}
