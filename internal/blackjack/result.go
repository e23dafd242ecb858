package blackjack

// State is a step of a single hand
type State int

const (
	DealingInitial State = iota
	PlayerTurn
	DealerTurn
	Resolved
	// Abandoned means the surface was closed before the hand finished
	Abandoned
	// Exhausted means the deck ran out mid-hand
	Exhausted
)

func (s State) String() string {
	switch s {
	case DealingInitial:
		return "dealing"
	case PlayerTurn:
		return "player turn"
	case DealerTurn:
		return "dealer turn"
	case Resolved:
		return "resolved"
	case Abandoned:
		return "abandoned"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions are possible
func (s State) Terminal() bool {
	return s == Resolved || s == Abandoned || s == Exhausted
}

// Action is one of the two player inputs
type Action int

const (
	Hit Action = iota + 1
	Stand
)

func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	default:
		return "unknown"
	}
}

// Outcome names the winner of a hand
type Outcome int

const (
	// NoOutcome is reported for abandoned and exhausted hands
	NoOutcome Outcome = iota
	PlayerWins
	DealerWins
	Tie
)

func (o Outcome) String() string {
	switch o {
	case PlayerWins:
		return "Player wins!"
	case DealerWins:
		return "Dealer wins!"
	case Tie:
		return "It's a tie!"
	default:
		return "No result."
	}
}

// Reason explains how the outcome was reached
type Reason int

const (
	Undecided Reason = iota
	PlayerBlackjack
	PlayerBust
	DealerBust
	HigherTotal
	LowerTotal
	EqualTotals
	SurfaceClosed
	DeckExhausted
)

// Result is the final record of a hand
type Result struct {
	Outcome     Outcome
	Reason      Reason
	PlayerTotal int
	DealerTotal int
}

// Message returns the line announced at the end of the hand. Only a
// blackjack or a player bust gets a lead-in; a dealer bust reads as a plain
// win.
func (r Result) Message() string {
	switch r.Reason {
	case PlayerBlackjack:
		return "Blackjack! " + r.Outcome.String()
	case PlayerBust:
		return "Player busts. " + r.Outcome.String()
	default:
		return r.Outcome.String()
	}
}

// compare settles a hand that reached the dealer's turn
func compare(player, dealer int) Result {
	r := Result{PlayerTotal: player, DealerTotal: dealer}
	switch {
	case dealer > Target:
		r.Outcome, r.Reason = PlayerWins, DealerBust
	case player > dealer:
		r.Outcome, r.Reason = PlayerWins, HigherTotal
	case player < dealer:
		r.Outcome, r.Reason = DealerWins, LowerTotal
	default:
		r.Outcome, r.Reason = Tie, EqualTotals
	}
	return r
}
