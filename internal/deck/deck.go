package deck

import (
	"github.com/arcanaland/blackjack/internal/card"
)

// Size is the number of cards in a standard deck
const Size = 52

// Shuffler reorders n elements through swap. *math/rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Deck represents a standard 52-card deck dealt from a cursor
type Deck struct {
	cards  []card.Card
	cursor int
}

// New creates an unshuffled deck, suit by suit (Hearts, Diamonds, Clubs,
// Spades) and Ace through King within each suit
func New() *Deck {
	cards := make([]card.Card, 0, Size)
	for _, suit := range card.Suits {
		for _, rank := range card.Ranks {
			cards = append(cards, card.New(rank, suit))
		}
	}
	return &Deck{cards: cards}
}

// Shuffle rewinds the deck and reorders all 52 cards using r
func (d *Deck) Shuffle(r Shuffler) {
	d.cursor = 0
	r.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal returns the next undealt card. The second result is false once
// every card has been dealt since the last shuffle.
func (d *Deck) Deal() (card.Card, bool) {
	if d.cursor >= len(d.cards) {
		return card.Card{}, false
	}
	c := d.cards[d.cursor]
	d.cursor++
	return c, true
}

// Remaining returns how many cards are left to deal
func (d *Deck) Remaining() int {
	return len(d.cards) - d.cursor
}

// Cards returns a copy of the deck in its current order, dealt cards included
func (d *Deck) Cards() []card.Card {
	out := make([]card.Card, len(d.cards))
	copy(out, d.cards)
	return out
}

type stacked struct {
	d   *Deck
	top []card.Card
}

// Stacked returns a Shuffler that brings top to the head of d, in the given
// order, and leaves every other card where it is. It exists for tests that
// need to replay known hands; the game itself shuffles with a *rand.Rand.
func Stacked(d *Deck, top ...card.Card) Shuffler {
	return stacked{d: d, top: top}
}

func (s stacked) Shuffle(n int, swap func(i, j int)) {
	order := s.d.Cards()
	for i, want := range s.top {
		if i >= n {
			return
		}
		for j := i; j < len(order); j++ {
			if order[j] == want {
				swap(i, j)
				order[i], order[j] = order[j], order[i]
				break
			}
		}
	}
}
