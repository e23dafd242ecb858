package art

import (
	"strings"
	"unicode/utf8"
)

// StripAnsi removes ANSI escape sequences from a string
func StripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}

// VisibleWidth is the number of terminal cells a line occupies
func VisibleWidth(s string) int {
	return utf8.RuneCountInString(StripAnsi(s))
}

// JoinHorizontal lays blocks of text out side by side, gap cells apart.
// Shorter blocks are padded at the bottom.
func JoinHorizontal(gap int, blocks ...string) string {
	if len(blocks) == 0 {
		return ""
	}

	columns := make([][]string, len(blocks))
	widths := make([]int, len(blocks))
	height := 0
	for i, block := range blocks {
		columns[i] = strings.Split(block, "\n")
		for _, line := range columns[i] {
			widths[i] = max(widths[i], VisibleWidth(line))
		}
		height = max(height, len(columns[i]))
	}

	spacer := strings.Repeat(" ", gap)
	lines := make([]string, height)
	for row := 0; row < height; row++ {
		var b strings.Builder
		for i, column := range columns {
			if i > 0 {
				b.WriteString(spacer)
			}
			line := ""
			if row < len(column) {
				line = column[row]
			}
			b.WriteString(line)
			if i < len(columns)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-VisibleWidth(line)))
			}
		}
		lines[row] = b.String()
	}

	return strings.Join(lines, "\n")
}
