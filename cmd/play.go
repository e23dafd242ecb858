package cmd

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/blackjack/internal/art"
	"github.com/arcanaland/blackjack/internal/config"
	"github.com/arcanaland/blackjack/internal/deck"
	"github.com/arcanaland/blackjack/internal/table"
)

// cards that should fit on one row before the art is shrunk
const cardsPerRow = 6

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play blackjack against the dealer",
	Long: `Play deals you two cards and the dealer two, one of them face down.
Type h to take another card or s to end your turn; the dealer then draws
until reaching 17. Type q or press Ctrl+C to leave the table.

Examples:
  blackjack play
  blackjack play --images ./card_images
  blackjack play --seed 42 --once`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("images", "i", "", "Card image pack from your asset library or a path to one")
	cmd.Flags().Int64("seed", 0, "Seed for shuffling (0 picks one from the clock)")
	cmd.Flags().Bool("no-art", false, "Draw cards as text instead of images")
	cmd.Flags().Bool("once", false, "Play a single hand and exit")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	imagesFlag, _ := cmd.Flags().GetString("images")
	noArt, _ := cmd.Flags().GetBool("no-art")
	once, _ := cmd.Flags().GetBool("once")
	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	out := cmd.OutOrStdout()
	renderer, err := newRenderer(out, cfg, imagesFlag, noArt)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := &table.Session{
		Deck:    deck.New(),
		Rand:    rand.New(rand.NewSource(seed)),
		Surface: table.NewTerminal(cmd.InOrStdin(), out, renderer),
		Once:    once,
	}
	return session.Play(ctx)
}

// newRenderer sets up card art for the current terminal. A missing default
// pack only downgrades to text cards; a pack named on the command line must
// exist.
func newRenderer(out io.Writer, cfg *config.Config, imagesFlag string, noArt bool) (*art.Renderer, error) {
	fd := int(os.Stdout.Fd())
	isTerminal := term.IsTerminal(fd)
	if !cfg.Color || !isTerminal {
		colorize.NoColor = true
	}

	r := &art.Renderer{
		Width:     cfg.ArtWidth,
		Height:    cfg.ArtHeight,
		TrueColor: cfg.Color && isTerminal && !noArt,
		CacheDir:  filepath.Join(config.GetCacheDir(), "ansi_cache"),
	}
	if width, _, err := term.GetSize(fd); err == nil && width > 0 {
		r.Width, r.Height = fitArt(width, cfg.ArtWidth, cfg.ArtHeight)
	}

	if noArt {
		return r, nil
	}

	packPath := cfg.CardImages
	if imagesFlag != "" {
		path, err := config.GetAssetPath(imagesFlag)
		if err != nil {
			return nil, err
		}
		packPath = path
	}

	pack, err := art.LoadPack(packPath)
	if err != nil {
		if imagesFlag != "" {
			return nil, fmt.Errorf("error loading card images: %w", err)
		}
		fmt.Fprintf(out, "No card images found at %s, drawing text cards.\n", packPath)
		fmt.Fprintln(out, "Run 'blackjack assets init' to set up a card image library.")
		return r, nil
	}
	r.Assets = pack

	return r, nil
}

// fitArt shrinks the card art so that a full row of cards fits the
// terminal, keeping the width to height ratio
func fitArt(termWidth, width, height int) (int, int) {
	available := (termWidth - (cardsPerRow-1)*2) / cardsPerRow
	if available >= width || available < 4 {
		return width, height
	}
	return available, max(1, height*available/width)
}
