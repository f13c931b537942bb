// Package version implements the version command.
package version

import (
	"fmt"
	"io"

	"github.com/negz/condraw/internal/version"
)

// Command prints the condraw version.
type Command struct{}

// Run executes the version command.
func (c *Command) Run(w io.Writer) error {
	_, err := fmt.Fprintln(w, version.String())
	return err
}
