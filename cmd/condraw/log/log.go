// Package log implements the log command.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"

	"github.com/negz/condraw/internal/gitlog"
	"github.com/negz/condraw/internal/output"
)

// Command draws recent commits of a local git repository.
type Command struct {
	output.TableFlags `embed:""`

	Limit    int    `default:"20"       help:"Maximum number of commits to show. Zero shows all." short:"n"`
	Overflow string `default:"truncate" enum:"reject,truncate"                                       help:"What to do with values too wide for any column (${enum})."`

	Path string `arg:"" default:"." help:"Path within a git repository." optional:"" type:"existingdir"`
}

// Run executes the log command.
func (c *Command) Run(w io.Writer, hc *color.Color, log *slog.Logger) error {
	commits, err := gitlog.NewReader(c.Path,
		gitlog.WithLimit(c.Limit),
		gitlog.WithLogger(log),
	).Commits(context.Background())
	if err != nil {
		return fmt.Errorf("read commits: %w", err)
	}

	if len(commits) == 0 {
		_, err := fmt.Fprintln(w, "No commits")
		return err
	}

	return c.Fill(w, gitlog.Headers(), gitlog.Rows(commits), c.Overflow, hc, log)
}
