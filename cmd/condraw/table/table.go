// Package table implements the table command.
package table

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"

	"github.com/negz/condraw/internal/output"
)

// Command draws a table from comma separated rows.
type Command struct {
	output.TableFlags `embed:""`

	Columns  []string `help:"Comma separated column headers."                                required:"" short:"c"`
	Overflow string   `default:"reject" enum:"reject,truncate" help:"What to do with values too wide for any column (${enum})."`

	Rows []string `arg:"" help:"Comma separated rows. Read from stdin, one per line, when omitted." optional:"" sep:"none"`
}

// Run executes the table command.
func (c *Command) Run(w io.Writer, r io.Reader, hc *color.Color, log *slog.Logger) error {
	t, err := c.Build(c.Columns, c.Overflow, hc, log)
	if err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	rows := c.Rows
	if len(rows) == 0 {
		if rows, err = readLines(r); err != nil {
			return fmt.Errorf("read rows: %w", err)
		}
	}

	for i, row := range rows {
		if err := t.AddRow(row); err != nil {
			return fmt.Errorf("add row %d: %w", i+1, err)
		}
	}
	log.Debug("Added rows", "count", t.Len())

	return c.Draw(w, t)
}

// readLines returns every non-blank line of r, without line terminators.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		l := strings.TrimRight(s.Text(), "\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines, s.Err()
}
