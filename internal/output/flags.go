package output

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"

	"github.com/negz/condraw/internal/table"
)

// Table styles.
const (
	StylePlain = "plain"
	StyleGrid  = "grid"
)

// Primary key policies.
const (
	KeyAuto = "auto"
	KeyOn   = "on"
	KeyOff  = "off"
)

// Overflow policies.
const (
	OverflowReject   = "reject"
	OverflowTruncate = "truncate"
)

// TableFlags are the flags shared by every command that draws a table.
type TableFlags struct {
	HeaderSeparator bool   `env:"CONDRAW_HEADER_SEPARATOR" help:"Draw a rule beneath the header." short:"H"`
	RowSeparator    bool   `env:"CONDRAW_ROW_SEPARATOR"    help:"Draw a rule beneath every row."  short:"R"`
	Key             string `default:"auto"  enum:"auto,on,off"  help:"Require unique values in the first column (${enum}). Auto requires them when the first header contains 'id'."`
	Style           string `default:"plain" enum:"plain,grid"   env:"CONDRAW_STYLE" help:"Table style (${enum})."`
}

// Options returns the table options these flags select.
func (f *TableFlags) Options(overflow string, hc *color.Color, log *slog.Logger) []table.Option {
	opts := []table.Option{table.WithLogger(log)}
	if f.HeaderSeparator {
		opts = append(opts, table.WithHeaderSeparator())
	}
	if f.RowSeparator {
		opts = append(opts, table.WithRowSeparator())
	}
	switch f.Key {
	case KeyOn:
		opts = append(opts, table.WithUniqueKey(true))
	case KeyOff:
		opts = append(opts, table.WithUniqueKey(false))
	}
	if overflow == OverflowTruncate {
		opts = append(opts, table.WithOverflow(table.OverflowTruncate))
	}
	if hc != nil {
		opts = append(opts, table.WithHeaderColor(hc))
	}
	return opts
}

// Build returns an empty table with the supplied headers.
func (f *TableFlags) Build(headers []string, overflow string, hc *color.Color, log *slog.Logger) (*table.Table, error) {
	cs, err := table.NewColumnSet(headers...)
	if err != nil {
		return nil, err
	}
	return table.New(cs, f.Options(overflow, hc, log)...)
}

// Draw writes t to w in the selected style.
func (f *TableFlags) Draw(w io.Writer, t *table.Table) error {
	switch f.Style {
	case StyleGrid:
		return Grid(w, t)
	case StylePlain, "":
		return t.Draw(w)
	default:
		return fmt.Errorf("unknown table style %q", f.Style)
	}
}

// Fill builds a table from pre-split rows and writes it to w.
func (f *TableFlags) Fill(w io.Writer, headers []string, rows [][]string, overflow string, hc *color.Color, log *slog.Logger) error {
	t, err := f.Build(headers, overflow, hc, log)
	if err != nil {
		return err
	}
	for i, r := range rows {
		if err := t.AddFields(r...); err != nil {
			return fmt.Errorf("add row %d: %w", i+1, err)
		}
	}
	return f.Draw(w, t)
}
