package table

import "unicode/utf8"

const (
	// MinWidth is the narrowest a column's content area may be.
	MinWidth = 5

	// MaxWidth caps a column's content area. The margin is not included.
	MaxWidth = 17

	// Margin is the padding added to the left of every column.
	Margin = 2
)

// ResolveWidths returns the display width of each column. A column is as wide
// as the longest of its header, its cells, and MinWidth, capped at MaxWidth,
// plus Margin. Rows shorter than headers contribute only the cells they have.
func ResolveWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widest := max(length(h), MinWidth)
		for _, row := range rows {
			if i >= len(row) {
				continue
			}
			widest = max(widest, length(row[i]))
		}
		widths[i] = min(widest, MaxWidth) + Margin
	}
	return widths
}

// length is the number of characters s occupies. Every rune counts as one.
func length(s string) int {
	return utf8.RuneCountInString(s)
}
