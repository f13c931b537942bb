// Package table renders fixed-width, right-justified text tables.
package table

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
)

const (
	// FieldSeparator separates fields in a delimited row.
	FieldSeparator = ","

	// ColumnSeparator separates columns in a rendered line.
	ColumnSeparator = "|"

	// RuleChar draws horizontal rules.
	RuleChar = "-"
)

// An OverflowPolicy decides what happens to a field too wide for its column.
type OverflowPolicy int

// Overflow policies.
const (
	// OverflowReject refuses fields and headers that could never fit a column.
	OverflowReject OverflowPolicy = iota

	// OverflowTruncate cuts over-wide cells at draw time, keeping the margin.
	OverflowTruncate
)

// An Option configures a Table.
type Option func(*Table)

// WithHeaderSeparator draws a rule beneath the header.
func WithHeaderSeparator() Option {
	return func(t *Table) {
		t.headerSeparator = true
	}
}

// WithRowSeparator draws a rule beneath every row.
func WithRowSeparator() Option {
	return func(t *Table) {
		t.rowSeparator = true
	}
}

// WithUniqueKey overrides whether the first field of each row must be unique.
// By default it must be when the column set has a primary key.
func WithUniqueKey(unique bool) Option {
	return func(t *Table) {
		t.uniqueKey = unique
	}
}

// WithOverflow sets the overflow policy. The default is OverflowReject.
func WithOverflow(p OverflowPolicy) Option {
	return func(t *Table) {
		t.overflow = p
	}
}

// WithHeaderColor styles the header line.
func WithHeaderColor(c *color.Color) Option {
	return func(t *Table) {
		t.headerColor = c
	}
}

// WithLogger sets the logger for debug output. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(t *Table) {
		if l != nil {
			t.log = l
		}
	}
}

// A Table is a set of columns and the rows added to it. A Table is not safe
// for concurrent use.
type Table struct {
	columns *ColumnSet
	rows    [][]string
	keys    map[string]bool

	headerSeparator bool
	rowSeparator    bool
	uniqueKey       bool
	overflow        OverflowPolicy
	headerColor     *color.Color
	log             *slog.Logger
}

// New returns an empty Table with a private copy of the supplied columns.
func New(cs *ColumnSet, opts ...Option) (*Table, error) {
	if cs == nil || cs.Len() == 0 {
		return nil, fmt.Errorf("%w: no columns", ErrInvalidArgument)
	}

	t := &Table{
		columns:   &ColumnSet{columns: cs.Columns(), primaryKey: cs.primaryKey},
		keys:      map[string]bool{},
		uniqueKey: cs.HasPrimaryKey(),
		log:       slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(t)
	}

	if t.overflow == OverflowReject {
		for _, name := range t.columns.Names() {
			if length(name) > MaxWidth+Margin {
				return nil, fmt.Errorf("%w: header %q is longer than %d characters", ErrOverflowField, name, MaxWidth+Margin)
			}
		}
	}

	return t, nil
}

// AddRow adds a row of comma separated fields.
func (t *Table) AddRow(record string) error {
	return t.AddFields(strings.Split(record, FieldSeparator)...)
}

// AddFields adds a row of fields. It returns an error, and leaves the table
// unchanged, if the row doesn't fit the table.
func (t *Table) AddFields(fields ...string) error {
	if len(fields) != t.columns.Len() {
		return fmt.Errorf("%w: expected %d fields, got %d", ErrSchemaMismatch, t.columns.Len(), len(fields))
	}

	if t.overflow == OverflowReject {
		for i, f := range fields {
			if length(f) > MaxWidth+Margin {
				return fmt.Errorf("%w: %s value %q is longer than %d characters", ErrOverflowField, t.columns.columns[i].Name, f, MaxWidth+Margin)
			}
		}
	}

	if t.uniqueKey && t.keys[fields[0]] {
		return fmt.Errorf("%w: %s %q", ErrDuplicateKey, t.columns.columns[0].Name, fields[0])
	}

	row := make([]string, len(fields))
	copy(row, fields)
	t.rows = append(t.rows, row)
	if t.uniqueKey {
		t.keys[fields[0]] = true
	}
	return nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns a copy of the rows, in insertion order.
func (t *Table) Rows() [][]string {
	out := make([][]string, len(t.rows))
	for i, r := range t.rows {
		out[i] = append([]string(nil), r...)
	}
	return out
}

// Columns returns the table's columns. Widths reflect the most recent Draw.
func (t *Table) Columns() []Column {
	return t.columns.Columns()
}

// Draw resolves column widths over every row, then writes the header and
// each row to w. Nothing is written if any line can't be rendered.
func (t *Table) Draw(w io.Writer) error {
	t.columns.resolve(t.rows)
	t.log.Debug("Resolved column widths", "columns", t.columns.Names(), "widths", t.widths())

	rule := strings.Repeat(RuleChar, t.columns.TotalWidth())
	b := &strings.Builder{}

	header, err := t.line(t.columns.Names())
	if err != nil {
		return fmt.Errorf("render header: %w", err)
	}
	if t.headerColor != nil {
		header = t.headerColor.Sprint(header)
	}
	b.WriteString(header + "\n")
	if t.headerSeparator {
		b.WriteString(rule + "\n")
	}

	for i, row := range t.rows {
		l, err := t.line(row)
		if err != nil {
			return fmt.Errorf("render row %d: %w", i+1, err)
		}
		b.WriteString(l + "\n")
		if t.rowSeparator {
			b.WriteString(rule + "\n")
		}
	}

	_, err = io.WriteString(w, b.String())
	return err
}

func (t *Table) widths() []int {
	out := make([]int, t.columns.Len())
	for i, c := range t.columns.columns {
		out[i] = c.Width
	}
	return out
}

// line right-justifies each field into its column and joins them.
func (t *Table) line(fields []string) (string, error) {
	cells := make([]string, len(fields))
	for i, f := range fields {
		c := t.columns.columns[i]
		cell, err := t.justify(f, c.Width)
		if err != nil {
			return "", fmt.Errorf("column %s: %w", c.Name, err)
		}
		cells[i] = cell
	}
	return strings.Join(cells, ColumnSeparator), nil
}

func (t *Table) justify(s string, width int) (string, error) {
	if length(s) > width {
		if t.overflow != OverflowTruncate {
			return "", fmt.Errorf("%w: %q is wider than %d", ErrOverflowField, s, width)
		}
		s = string([]rune(s)[:width-Margin])
	}
	return strings.Repeat(" ", width-length(s)) + s, nil
}
