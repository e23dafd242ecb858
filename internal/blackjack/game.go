package blackjack

import (
	"context"
	"errors"
	"fmt"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/deck"
)

// ErrDeckExhausted is returned when a card is needed and none are left
var ErrDeckExhausted = errors.New("deck exhausted")

// Game is one hand of blackjack between the player and the dealer. It owns
// both hands and deals from a deck it borrows for the length of the hand.
type Game struct {
	deck   *deck.Deck
	rng    deck.Shuffler
	player []card.Card
	dealer []card.Card
	state  State
	result Result
}

// New prepares a hand. The deck is shuffled with rng when the hand is dealt.
func New(d *deck.Deck, rng deck.Shuffler) *Game {
	return &Game{
		deck:  d,
		rng:   rng,
		state: DealingInitial,
	}
}

// State returns the current state of the hand
func (g *Game) State() State {
	return g.state
}

// Result returns the outcome. It is only meaningful once State is terminal.
func (g *Game) Result() Result {
	return g.result
}

// PlayerCards returns the player's hand
func (g *Game) PlayerCards() []card.Card {
	return append([]card.Card(nil), g.player...)
}

// DealerCards returns the dealer cards the player is allowed to see: the
// first card during the player's turn, the whole hand afterwards.
func (g *Game) DealerCards() []card.Card {
	if g.state == PlayerTurn && len(g.dealer) > 0 {
		return append([]card.Card(nil), g.dealer[:1]...)
	}
	return append([]card.Card(nil), g.dealer...)
}

// View snapshots the hand for a Surface
func (g *Game) View() View {
	dealer := g.DealerCards()
	return View{
		State:       g.state,
		Player:      g.PlayerCards(),
		Dealer:      dealer,
		Hidden:      len(g.dealer) - len(dealer),
		PlayerTotal: Total(g.player),
		DealerTotal: Total(dealer),
		Result:      g.result,
	}
}

// Deal shuffles the deck and deals two cards to the player, then two to
// the dealer. A player 21 on the deal settles the hand immediately.
func (g *Game) Deal() error {
	if g.state != DealingInitial {
		return nil
	}

	g.deck.Shuffle(g.rng)
	for _, hand := range []*[]card.Card{&g.player, &g.player, &g.dealer, &g.dealer} {
		c, ok := g.deck.Deal()
		if !ok {
			return g.exhaust()
		}
		*hand = append(*hand, c)
	}

	g.state = PlayerTurn
	if IsNatural(g.player) {
		g.settle(PlayerWins, PlayerBlackjack)
	}
	return nil
}

// Apply feeds a player action into the hand. Actions outside the player's
// turn are ignored.
func (g *Game) Apply(a Action) error {
	if g.state != PlayerTurn {
		return nil
	}

	switch a {
	case Hit:
		return g.hit()
	case Stand:
		g.state = DealerTurn
		return g.playDealer()
	}
	return nil
}

// Abandon ends an unfinished hand without a winner
func (g *Game) Abandon() {
	if g.state.Terminal() {
		return
	}
	g.state = Abandoned
	g.result = Result{
		Outcome:     NoOutcome,
		Reason:      SurfaceClosed,
		PlayerTotal: Total(g.player),
		DealerTotal: Total(g.dealer),
	}
}

func (g *Game) hit() error {
	c, ok := g.deck.Deal()
	if !ok {
		return g.exhaust()
	}
	g.player = append(g.player, c)

	switch {
	case IsBust(g.player):
		g.settle(DealerWins, PlayerBust)
	case Total(g.player) == Target:
		g.settle(PlayerWins, PlayerBlackjack)
	}
	return nil
}

func (g *Game) playDealer() error {
	for Total(g.dealer) < DealerStand {
		c, ok := g.deck.Deal()
		if !ok {
			return g.exhaust()
		}
		g.dealer = append(g.dealer, c)
	}

	g.state = Resolved
	g.result = compare(Total(g.player), Total(g.dealer))
	return nil
}

func (g *Game) settle(o Outcome, r Reason) {
	g.state = Resolved
	g.result = Result{
		Outcome:     o,
		Reason:      r,
		PlayerTotal: Total(g.player),
		DealerTotal: Total(g.dealer),
	}
}

func (g *Game) exhaust() error {
	g.state = Exhausted
	g.result = Result{
		Outcome:     NoOutcome,
		Reason:      DeckExhausted,
		PlayerTotal: Total(g.player),
		DealerTotal: Total(g.dealer),
	}
	return ErrDeckExhausted
}

// Run plays the hand to the end on s. A closed surface abandons the hand and
// returns ErrSurfaceClosed; a short deck returns ErrDeckExhausted after the
// final view has been rendered.
func (g *Game) Run(ctx context.Context, s Surface) (Result, error) {
	var playErr error
	if err := g.Deal(); err != nil {
		playErr = err
	}

	for g.state == PlayerTurn {
		if err := s.Render(g.View()); err != nil {
			g.Abandon()
			return g.result, fmt.Errorf("rendering hand: %w", err)
		}

		action, err := s.Await(ctx)
		if err != nil {
			g.Abandon()
			if errors.Is(err, ErrSurfaceClosed) || ctx.Err() != nil {
				return g.result, ErrSurfaceClosed
			}
			return g.result, fmt.Errorf("reading action: %w", err)
		}

		if err := g.Apply(action); err != nil {
			playErr = err
		}
	}

	if err := s.Render(g.View()); err != nil {
		return g.result, fmt.Errorf("rendering result: %w", err)
	}
	return g.result, playErr
}
