// Package query implements the query command.
package query

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"

	"github.com/negz/condraw/internal/db"
	"github.com/negz/condraw/internal/output"
)

// Command runs a read-only SQL query against a SQLite database.
type Command struct {
	output.TableFlags `embed:""`

	Overflow string `default:"truncate" enum:"reject,truncate" help:"What to do with values too wide for any column (${enum})."`

	DB  string `arg:"" help:"Path to a SQLite database." type:"existingfile"`
	SQL string `arg:"" help:"SQL query to execute."`
}

// Run executes the query command.
func (c *Command) Run(w io.Writer, hc *color.Color, log *slog.Logger) error {
	ctx := context.Background()

	store, err := db.Open(ctx, c.DB)
	if err != nil {
		return err
	}
	defer store.Close() //nolint:errcheck // Nothing to do with error on program exit.

	r, err := store.Query(ctx, c.SQL)
	if err != nil {
		return err
	}
	log.Debug("Ran query", "columns", len(r.Columns), "rows", len(r.Rows))

	if err := c.Fill(w, r.Columns, r.Rows, c.Overflow, hc, log); err != nil {
		return fmt.Errorf("draw result: %w", err)
	}
	return nil
}
