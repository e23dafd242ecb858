package blackjack

import (
	"context"
	"errors"

	"github.com/arcanaland/blackjack/internal/card"
)

// ErrSurfaceClosed is returned by a Surface when the user ends the session
var ErrSurfaceClosed = errors.New("surface closed")

// View is what a Surface may show at a given moment. Dealer only holds the
// revealed cards; Hidden counts the ones still face down.
type View struct {
	State       State
	Player      []card.Card
	Dealer      []card.Card
	Hidden      int
	PlayerTotal int
	DealerTotal int
	Result      Result
}

// Surface displays a hand and collects the player's actions.
//
// Await is only called during the player's turn and blocks until the user
// picks an action. It returns ErrSurfaceClosed (or the context's error) when
// the user quits.
type Surface interface {
	Render(v View) error
	Await(ctx context.Context) (Action, error)
}
