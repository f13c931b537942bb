// Package border draws rectangular borders around blocks of text.
package border

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Placeholder is drawn in place of absent content.
const Placeholder = "------\n-null-\n------\n"

// An Option configures how a border is drawn.
type Option func(*options)

type options struct {
	fill rune
}

// WithFill sets the character that replaces spaces inside the border. The
// default is a space.
func WithFill(r rune) Option {
	return func(o *options) {
		o.fill = r
	}
}

// Draw writes content to w surrounded by a border of borderChar. Trailing
// whitespace is trimmed from each line, and each line is padded to the width
// of the longest. Spaces within and after each line are replaced by the fill
// character. A nil content draws Placeholder.
func Draw(w io.Writer, content *string, borderChar rune, opts ...Option) error {
	if content == nil {
		_, err := io.WriteString(w, Placeholder)
		return err
	}

	o := &options{fill: ' '}
	for _, fn := range opts {
		fn(o)
	}

	lines := strings.Split(*content, "\n")
	widest := 0
	for i, l := range lines {
		lines[i] = strings.TrimRightFunc(l, unicode.IsSpace)
		widest = max(widest, utf8.RuneCountInString(lines[i]))
	}

	edge := strings.Repeat(string(borderChar), widest+2)
	fill := string(o.fill)

	b := &strings.Builder{}
	b.WriteString(edge + "\n")
	for _, l := range lines {
		b.WriteRune(borderChar)
		b.WriteString(strings.ReplaceAll(l, " ", fill))
		b.WriteString(strings.Repeat(fill, widest-utf8.RuneCountInString(l)))
		b.WriteRune(borderChar)
		b.WriteString("\n")
	}
	b.WriteString(edge + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}
