// Package schema implements the schema command.
package schema

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"

	"github.com/negz/condraw/internal/db"
	"github.com/negz/condraw/internal/output"
)

// Command lists the tables and views in a SQLite database.
type Command struct {
	output.TableFlags `embed:""`

	DB string `arg:"" help:"Path to a SQLite database." type:"existingfile"`
}

// Run executes the schema command.
func (c *Command) Run(w io.Writer, hc *color.Color, log *slog.Logger) error {
	ctx := context.Background()

	store, err := db.Open(ctx, c.DB)
	if err != nil {
		return err
	}
	defer store.Close() //nolint:errcheck // Nothing to do with error on program exit.

	r, err := store.Tables(ctx)
	if err != nil {
		return fmt.Errorf("list tables: %w", err)
	}

	if len(r.Rows) == 0 {
		_, err := fmt.Fprintf(w, "No tables in %s\n", c.DB)
		return err
	}

	return c.Fill(w, r.Columns, r.Rows, output.OverflowTruncate, hc, log)
}
