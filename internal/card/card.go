package card

import (
	"fmt"
	"strconv"
	"strings"
)

// Rank is the face value of a playing card
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Suit is one of the four French suits
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Ranks lists every rank in deck order (Ace through King)
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// Suits lists every suit in deck order
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// New returns the card with the given rank and suit
func New(r Rank, s Suit) Card {
	return Card{Rank: r, Suit: s}
}

// PointValue returns the blackjack value of the card. Aces always report 11;
// downgrading them to 1 is up to the hand total.
func (c Card) PointValue() int {
	switch c.Rank {
	case Ace:
		return 11
	case Jack, Queen, King:
		return 10
	default:
		return int(c.Rank)
	}
}

// String returns the card's display name (e.g., "Ace of Hearts", "10 of Spades")
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Short returns a compact label such as "A♥" or "10♠"
func (c Card) Short() string {
	return c.Rank.Symbol() + c.Suit.Symbol()
}

// AssetID returns the canonical asset key for the card (e.g., ace_of_hearts, 10_of_spades)
func (c Card) AssetID() string {
	return strings.ToLower(c.Rank.String()) + "_of_" + strings.ToLower(c.Suit.String())
}

// IsRed reports whether the card is a heart or a diamond
func (c Card) IsRed() bool {
	return c.Suit == Hearts || c.Suit == Diamonds
}

// Parse converts an asset ID back into a card. Matching is case-insensitive.
func Parse(id string) (Card, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(id)), "_of_")
	if len(parts) != 2 {
		return Card{}, fmt.Errorf("invalid card ID format: %s", id)
	}

	rank, ok := parseRank(parts[0])
	if !ok {
		return Card{}, fmt.Errorf("unknown rank %q in card ID %s", parts[0], id)
	}
	suit, ok := parseSuit(parts[1])
	if !ok {
		return Card{}, fmt.Errorf("unknown suit %q in card ID %s", parts[1], id)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

func parseRank(s string) (Rank, bool) {
	for _, r := range Ranks {
		if strings.ToLower(r.String()) == s {
			return r, true
		}
	}
	return 0, false
}

func parseSuit(s string) (Suit, bool) {
	for _, suit := range Suits {
		if strings.ToLower(suit.String()) == s {
			return suit, true
		}
	}
	return 0, false
}

func (r Rank) String() string {
	switch r {
	case Ace:
		return "Ace"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return strconv.Itoa(int(r))
	}
}

// Symbol returns the one or two character rank label used on card faces
func (r Rank) Symbol() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return strconv.Itoa(int(r))
	}
}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	case Spades:
		return "Spades"
	default:
		return "Unknown"
	}
}

// Symbol returns the suit glyph
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}
