package table

import (
	"context"
	"errors"

	"github.com/arcanaland/blackjack/internal/blackjack"
	"github.com/arcanaland/blackjack/internal/deck"
)

// Stats counts finished hands in a session
type Stats struct {
	Hands      int
	PlayerWins int
	DealerWins int
	Ties       int
}

// Record adds a finished hand. Hands without a winner are not counted.
func (s *Stats) Record(r blackjack.Result) {
	switch r.Outcome {
	case blackjack.PlayerWins:
		s.PlayerWins++
	case blackjack.DealerWins:
		s.DealerWins++
	case blackjack.Tie:
		s.Ties++
	default:
		return
	}
	s.Hands++
}

// Session plays hands from one deck until the player stops
type Session struct {
	Deck    *deck.Deck
	Rand    deck.Shuffler
	Surface *Terminal
	// Once plays a single hand without asking to continue
	Once bool

	Stats Stats
}

// Play runs hands until the player stops or the deck runs out. Only
// unexpected surface failures are returned as errors.
func (s *Session) Play(ctx context.Context) error {
	defer func() { s.Surface.Summary(s.Stats) }()

	for {
		g := blackjack.New(s.Deck, s.Rand)
		res, err := g.Run(ctx, s.Surface)
		switch {
		case errors.Is(err, blackjack.ErrSurfaceClosed), errors.Is(err, blackjack.ErrDeckExhausted):
			return nil
		case err != nil:
			return err
		}

		s.Stats.Record(res)
		if s.Once {
			return nil
		}

		again, err := s.Surface.Confirm(ctx, "Play again?")
		if err != nil || !again {
			if err != nil && !errors.Is(err, blackjack.ErrSurfaceClosed) && ctx.Err() == nil {
				return err
			}
			return nil
		}
	}
}
