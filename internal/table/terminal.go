package table

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	colorize "github.com/fatih/color"

	"github.com/arcanaland/blackjack/internal/art"
	"github.com/arcanaland/blackjack/internal/blackjack"
)

var (
	heading = colorize.New(colorize.FgCyan, colorize.Bold)
	label   = colorize.New(colorize.FgCyan)
	value   = colorize.New(colorize.FgHiWhite)
	win     = colorize.New(colorize.FgHiGreen, colorize.Bold)
	loss    = colorize.New(colorize.FgHiRed, colorize.Bold)
	neutral = colorize.New(colorize.FgYellow, colorize.Bold)
)

// Terminal is a blackjack.Surface that draws the table on a terminal and
// reads actions as lines of input
type Terminal struct {
	out      io.Writer
	in       *bufio.Scanner
	renderer *art.Renderer

	once  sync.Once
	lines chan string

	// player cards already narrated in the current hand
	narrated int
}

// NewTerminal creates a surface reading from in and drawing to out
func NewTerminal(in io.Reader, out io.Writer, renderer *art.Renderer) *Terminal {
	if renderer == nil {
		renderer = &art.Renderer{}
	}
	return &Terminal{
		out:      out,
		in:       bufio.NewScanner(in),
		renderer: renderer,
	}
}

// Render narrates what changed since the last view and redraws the table
func (t *Terminal) Render(v blackjack.View) error {
	var b strings.Builder

	if t.narrated == 0 {
		t.narrateDeal(&b, v)
	} else if len(v.Player) > t.narrated {
		for _, c := range v.Player[t.narrated:] {
			fmt.Fprintf(&b, "\nPlayer draws: %s\n", c)
		}
		fmt.Fprintf(&b, "Player's Total: %d\n", v.PlayerTotal)
	}
	t.narrated = len(v.Player)

	t.drawTable(&b, v)

	if v.State.Terminal() {
		t.narrateResult(&b, v)
		t.narrated = 0
	}

	_, err := io.WriteString(t.out, b.String())
	return err
}

func (t *Terminal) narrateDeal(b *strings.Builder, v blackjack.View) {
	fmt.Fprintln(b, "Player's Cards:")
	for _, c := range v.Player {
		fmt.Fprintln(b, c)
	}
	if len(v.Dealer) > 0 {
		fmt.Fprintln(b, "\nDealer's Card:")
		fmt.Fprintln(b, v.Dealer[0])
	}
}

func (t *Terminal) drawTable(b *strings.Builder, v blackjack.View) {
	dealerLabel := fmt.Sprintf("Dealer's Cards (%d)", v.DealerTotal)
	if v.Hidden > 0 {
		dealerLabel = fmt.Sprintf("Dealer's Cards (showing %d)", v.DealerTotal)
	}

	fmt.Fprintln(b)
	fmt.Fprintln(b, heading.Sprint(fmt.Sprintf("Player's Cards (%d)", v.PlayerTotal)))
	fmt.Fprintln(b, t.renderer.Row(v.Player, 0))
	fmt.Fprintln(b, heading.Sprint(dealerLabel))
	fmt.Fprintln(b, t.renderer.Row(v.Dealer, v.Hidden))
}

func (t *Terminal) narrateResult(b *strings.Builder, v blackjack.View) {
	res := v.Result
	fmt.Fprintln(b)
	fmt.Fprintln(b, label.Sprint("Player's Total: ")+value.Sprint(res.PlayerTotal))
	fmt.Fprintln(b, label.Sprint("Dealer's Total: ")+value.Sprint(res.DealerTotal))

	switch res.Outcome {
	case blackjack.PlayerWins:
		fmt.Fprintln(b, win.Sprint(res.Message()))
	case blackjack.DealerWins:
		fmt.Fprintln(b, loss.Sprint(res.Message()))
	case blackjack.Tie:
		fmt.Fprintln(b, neutral.Sprint(res.Message()))
	default:
		msg := res.Message()
		if res.Reason == blackjack.DeckExhausted {
			msg += " The deck ran out of cards."
		}
		fmt.Fprintln(b, neutral.Sprint(msg))
	}
}

// Await prompts until the player picks hit or stand
func (t *Terminal) Await(ctx context.Context) (blackjack.Action, error) {
	for {
		fmt.Fprint(t.out, "\n[h]it, [s]tand or [q]uit: ")
		line, err := t.readLine(ctx)
		if err != nil {
			return 0, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "h", "hit":
			return blackjack.Hit, nil
		case "s", "stand":
			fmt.Fprintln(t.out, "\nPlayer stands.")
			return blackjack.Stand, nil
		case "q", "quit", "exit":
			return 0, blackjack.ErrSurfaceClosed
		default:
			fmt.Fprintln(t.out, "Please type h to take another card or s to end your turn.")
		}
	}
}

// Confirm asks a yes/no question; anything but y or yes means no
func (t *Terminal) Confirm(ctx context.Context, question string) (bool, error) {
	fmt.Fprintf(t.out, "\n%s [y/N] ", question)
	line, err := t.readLine(ctx)
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// Summary prints the session totals
func (t *Terminal) Summary(s Stats) {
	if s.Hands == 0 {
		return
	}
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, heading.Sprint("Session"))
	fmt.Fprintln(t.out, label.Sprint("Hands:  ")+value.Sprint(s.Hands))
	fmt.Fprintln(t.out, label.Sprint("Won:    ")+value.Sprint(s.PlayerWins))
	fmt.Fprintln(t.out, label.Sprint("Lost:   ")+value.Sprint(s.DealerWins))
	fmt.Fprintln(t.out, label.Sprint("Tied:   ")+value.Sprint(s.Ties))
}

// readLine waits for the next line of input. The scanner runs in its own
// goroutine so that a cancelled context can interrupt the wait.
func (t *Terminal) readLine(ctx context.Context) (string, error) {
	t.once.Do(func() {
		t.lines = make(chan string)
		go func() {
			defer close(t.lines)
			for t.in.Scan() {
				t.lines <- t.in.Text()
			}
		}()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-t.lines:
		if !ok {
			return "", blackjack.ErrSurfaceClosed
		}
		return line, nil
	}
}
