package convert

import (
	"bytes"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Output is one rendered representation of a converted query.
type Output struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Result aggregates every applicable representation of one query, in a
// fixed priority order with the most relevant representation first. Kind
// names how the input itself was read, e.g. "seconds" or "calendar
// date-time".
type Result struct {
	Query   string   `json:"query" yaml:"query"`
	Kind    string   `json:"kind" yaml:"kind"`
	Outputs []Output `json:"outputs" yaml:"outputs"`
}

// CopyAll renders every output as label-aligned columns, one line per
// representation, suitable for copying as a single block.
func (r *Result) CopyAll() string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, o := range r.Outputs {
		table.Append([]string{o.Label, o.Value})
	}
	table.Render()

	return strings.TrimRight(buf.String(), "\n")
}
