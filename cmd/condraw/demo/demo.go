// Package demo implements the demo command.
package demo

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"

	"github.com/negz/condraw/internal/table"
)

// Command draws a small example table of people.
type Command struct {
	Plain bool `help:"Omit the header and row separators."`
}

// Run executes the demo command.
func (c *Command) Run(w io.Writer, hc *color.Color, log *slog.Logger) error {
	cs, err := table.NewColumnSet("Id", "First Name", "Last Name")
	if err != nil {
		return err
	}

	opts := []table.Option{table.WithLogger(log)}
	if !c.Plain {
		opts = append(opts, table.WithHeaderSeparator(), table.WithRowSeparator())
	}
	if hc != nil {
		opts = append(opts, table.WithHeaderColor(hc))
	}

	t, err := table.New(cs, opts...)
	if err != nil {
		return err
	}

	for _, row := range people() {
		if err := t.AddRow(row); err != nil {
			return fmt.Errorf("add row %q: %w", row, err)
		}
	}

	return t.Draw(w)
}

func people() []string {
	return []string{
		"1,John,Cater",
		"2,Emily,William",
		"3,David,More",
		"4,John,Linton",
	}
}
