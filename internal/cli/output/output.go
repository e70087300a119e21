// Package output renders conversion results for CLI commands in the
// selected format: aligned text (default), JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/marmos91/epochctl/internal/convert"
)

// Format is the output format type.
type Format string

const (
	// FormatTable renders label-aligned text columns.
	FormatTable Format = "table"
	// FormatJSON renders indented JSON.
	FormatJSON Format = "json"
	// FormatYAML renders YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat parses a string into a Format, returning an error if invalid.
// The empty string means the default table format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "table", "":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("invalid output format: %q (valid: table, json, yaml)", s)
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// Print writes one conversion result to w in the given format. The table
// format is the result's copy-all block plus a trailing line naming how the
// input was read.
func Print(w io.Writer, f Format, res *convert.Result) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer func() { _ = enc.Close() }()
		return enc.Encode(res)
	default:
		if _, err := fmt.Fprintln(w, res.CopyAll()); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "\ninput read as %s\n", res.Kind)
		return err
	}
}
