// Package term decides how output is styled for the current terminal.
package term

import (
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// HeaderColor returns the style for table headers: black on white, like an
// inverted terminal line. It returns nil when headers should be plain, either
// because mode is ColorNever or because mode is ColorAuto and fd is not a
// terminal.
func HeaderColor(mode string, fd uintptr) *color.Color {
	switch mode {
	case ColorAlways:
	case ColorAuto:
		if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
			return nil
		}
	default:
		return nil
	}

	c := color.New(color.FgBlack, color.BgWhite)
	c.EnableColor()
	return c
}
