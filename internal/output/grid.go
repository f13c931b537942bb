// Package output draws validated tables in the styles the CLI offers.
package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/negz/condraw/internal/table"
)

// Grid draws t as a bordered grid instead of the native right-justified
// layout. Rows are drawn exactly as they were added to t.
func Grid(w io.Writer, t *table.Table) error {
	cols := t.Columns()
	headers := make([]any, len(cols))
	for i, c := range cols {
		headers[i] = c.Name
	}

	g := tablewriter.NewWriter(w)
	g.Header(headers...)
	if err := g.Bulk(t.Rows()); err != nil {
		return err
	}
	return g.Render()
}
