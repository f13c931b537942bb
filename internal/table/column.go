package table

import (
	"fmt"
	"strings"
)

// A Column is a named table column. Width is zero until widths are resolved.
type Column struct {
	Name  string
	Width int
}

// A ColumnSet is the ordered set of columns a Table renders.
type ColumnSet struct {
	columns    []Column
	primaryKey bool
}

// NewColumnSet returns a ColumnSet with one unresolved column per header. The
// first column is treated as a primary key if its header contains "id", in any
// case.
func NewColumnSet(headers ...string) (*ColumnSet, error) {
	if len(headers) == 0 {
		return nil, fmt.Errorf("%w: no column headers", ErrInvalidArgument)
	}

	seen := make(map[string]bool, len(headers))
	cs := &ColumnSet{columns: make([]Column, 0, len(headers))}
	for i, h := range headers {
		if h == "" {
			return nil, fmt.Errorf("%w: header %d is empty", ErrInvalidArgument, i)
		}
		if seen[h] {
			return nil, fmt.Errorf("%w: duplicate header %q", ErrInvalidArgument, h)
		}
		seen[h] = true
		cs.columns = append(cs.columns, Column{Name: h})
	}

	cs.primaryKey = strings.Contains(strings.ToLower(headers[0]), "id")
	return cs, nil
}

// Len returns the number of columns.
func (cs *ColumnSet) Len() int {
	return len(cs.columns)
}

// Columns returns a copy of the columns, in order.
func (cs *ColumnSet) Columns() []Column {
	out := make([]Column, len(cs.columns))
	copy(out, cs.columns)
	return out
}

// Names returns the column headers, in order.
func (cs *ColumnSet) Names() []string {
	out := make([]string, len(cs.columns))
	for i, c := range cs.columns {
		out[i] = c.Name
	}
	return out
}

// HasPrimaryKey reports whether the first column identifies rows.
func (cs *ColumnSet) HasPrimaryKey() bool {
	return cs.primaryKey
}

// TotalWidth returns the rendered width of a line: every column plus one
// separator between each pair. It is only meaningful once widths are resolved.
func (cs *ColumnSet) TotalWidth() int {
	total := len(cs.columns) - 1
	for _, c := range cs.columns {
		total += c.Width
	}
	return total
}

// resolve sets each column's width from the supplied rows.
func (cs *ColumnSet) resolve(rows [][]string) {
	for i, w := range ResolveWidths(cs.Names(), rows) {
		cs.columns[i].Width = w
	}
}
