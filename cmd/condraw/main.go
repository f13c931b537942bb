// Package main implements the condraw CLI for drawing tables and borders.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/negz/condraw/cmd/condraw/border"
	"github.com/negz/condraw/cmd/condraw/demo"
	"github.com/negz/condraw/cmd/condraw/log"
	"github.com/negz/condraw/cmd/condraw/query"
	"github.com/negz/condraw/cmd/condraw/schema"
	"github.com/negz/condraw/cmd/condraw/table"
	"github.com/negz/condraw/cmd/condraw/version"
	"github.com/negz/condraw/internal/term"
)

type cli struct {
	Verbose bool   `env:"CONDRAW_VERBOSE" help:"Print debug logs to stderr."                   short:"v"`
	Color   string `default:"auto"        enum:"auto,always,never"                             env:"CONDRAW_COLOR" help:"Colour table headers (${enum})."`

	Table   table.Command   `cmd:"" help:"Draw a table from comma separated rows."`
	Border  border.Command  `cmd:"" help:"Surround text with a border."`
	Demo    demo.Command    `cmd:"" help:"Draw an example table."`
	Query   query.Command   `cmd:"" help:"Run a read-only SQL query against a SQLite database and draw the result."`
	Schema  schema.Command  `cmd:"" help:"List the tables in a SQLite database."`
	Log     log.Command     `cmd:"" help:"Draw recent commits of a git repository."`
	Version version.Command `cmd:"" help:"Print the condraw version."`
}

func main() {
	c := &cli{}
	ctx := kong.Parse(c,
		kong.Name("condraw"),
		kong.Description("Draw tables and borders on the console."),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, "~/.config/condraw/config.json"),
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
		kong.BindTo(os.Stdin, (*io.Reader)(nil)),
	)

	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx.FatalIfErrorf(ctx.Run(logger, term.HeaderColor(c.Color, os.Stdout.Fd())))
}
