// Package border implements the border command.
package border

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/negz/condraw/internal/border"
)

// Command surrounds text with a border.
type Command struct {
	BorderChar string `default:"*" env:"CONDRAW_BORDER_CHAR" help:"Character to draw the border with."                    name:"border-char" short:"b"`
	FillChar   string `default:" " env:"CONDRAW_FILL_CHAR"   help:"Character that replaces spaces inside the border."    name:"fill-char"   short:"f"`
	Null       bool   `help:"Draw the placeholder for absent content, ignoring any text."`

	Lines []string `arg:"" help:"Lines of text to surround. Read from stdin when omitted." optional:"" sep:"none"`
}

// Run executes the border command.
func (c *Command) Run(w io.Writer, r io.Reader) error {
	bc, err := oneChar("border", c.BorderChar)
	if err != nil {
		return err
	}
	fc, err := oneChar("fill", c.FillChar)
	if err != nil {
		return err
	}

	if c.Null {
		return border.Draw(w, nil, bc, border.WithFill(fc))
	}

	content := strings.Join(c.Lines, "\n")
	if len(c.Lines) == 0 {
		b, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("read text: %w", err)
		}
		content = strings.TrimSuffix(strings.TrimSuffix(string(b), "\n"), "\r")
	}

	return border.Draw(w, &content, bc, border.WithFill(fc))
}

func oneChar(name, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%s character must be exactly one character, got %q", name, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
