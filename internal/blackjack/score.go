package blackjack

import "github.com/arcanaland/blackjack/internal/card"

const (
	// Target is the best possible total
	Target = 21
	// DealerStand is the total at which the dealer stops drawing
	DealerStand = 17
)

// Total scores a hand. Every Ace counts 11 until the hand would bust, then
// drops to 1, one Ace at a time.
func Total(cards []card.Card) int {
	total := 0
	aces := 0

	for _, c := range cards {
		total += c.PointValue()
		if c.Rank == card.Ace {
			aces++
		}
	}

	for total > Target && aces > 0 {
		total -= 10
		aces--
	}

	return total
}

// IsBust reports whether the hand is over 21
func IsBust(cards []card.Card) bool {
	return Total(cards) > Target
}

// IsNatural reports whether the hand is a two-card 21
func IsNatural(cards []card.Card) bool {
	return len(cards) == 2 && Total(cards) == Target
}
