package art

import (
	"fmt"
	"strings"
	"unicode/utf8"

	colorize "github.com/fatih/color"

	"github.com/arcanaland/blackjack/internal/card"
)

// text card interior width
const faceWidth = 7

// TextCard draws a card as a small box, for packs with a missing image or
// terminals without true color. Red suits are colored when color output is
// enabled.
func TextCard(c card.Card) string {
	paint := fmt.Sprint
	if c.IsRed() {
		paint = colorize.New(colorize.FgHiRed).Sprint
	}

	rank := c.Rank.Symbol()
	lines := []string{
		"┌" + strings.Repeat("─", faceWidth) + "┐",
		"│" + paint(padRight(rank, faceWidth)) + "│",
		"│" + paint(center(c.Suit.Symbol(), faceWidth)) + "│",
		"│" + paint(padLeft(rank, faceWidth)) + "│",
		"└" + strings.Repeat("─", faceWidth) + "┘",
	}
	return strings.Join(lines, "\n")
}

// TextBack draws a face-down card
func TextBack() string {
	fill := colorize.New(colorize.FgBlue).Sprint(strings.Repeat("░", faceWidth))
	lines := []string{
		"┌" + strings.Repeat("─", faceWidth) + "┐",
		"│" + fill + "│",
		"│" + fill + "│",
		"│" + fill + "│",
		"└" + strings.Repeat("─", faceWidth) + "┘",
	}
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	return s + strings.Repeat(" ", width-utf8.RuneCountInString(s))
}

func padLeft(s string, width int) string {
	return strings.Repeat(" ", width-utf8.RuneCountInString(s)) + s
}

func center(s string, width int) string {
	left := (width - utf8.RuneCountInString(s)) / 2
	return padRight(strings.Repeat(" ", left)+s, width)
}
