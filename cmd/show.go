package cmd

import (
	"fmt"
	"io"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack/internal/art"
	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/config"
)

var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display a card with ANSI art",
	Long: `Show displays a playing card as ANSI terminal art together with its
blackjack value. Use asset IDs such as 'ace_of_spades' or '10_of_hearts'.

You can pick a card image pack with the --images flag, which looks for the
pack in your asset library (XDG_DATA_HOME/blackjack/card_images) or as a
relative path. Without it the pack from your config is used.

Examples:
  blackjack show ace_of_spades
  blackjack show --images ./card_images queen_of_hearts`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := card.Parse(args[0])
		if err != nil {
			return err
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		imagesFlag, _ := cmd.Flags().GetString("images")
		noArt, _ := cmd.Flags().GetBool("no-art")

		out := cmd.OutOrStdout()
		renderer, err := newRenderer(out, cfg, imagesFlag, noArt)
		if err != nil {
			return err
		}

		packName := "text"
		if pack, ok := renderer.Assets.(*art.Pack); ok {
			packName = pack.Manifest.Name
		}

		displayCard(out, c, renderer.Card(c), packName)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("images", "i", "", "Card image pack from your asset library or a path to one")
	showCmd.Flags().Bool("no-art", false, "Draw the card as text")
}

// displayCard prints the card art with its details to the right
func displayCard(out io.Writer, c card.Card, cardArt, packName string) {
	info := []string{
		colorize.CyanString("Card:   ") + colorize.HiWhiteString("%s", c),
		colorize.CyanString("Rank:   ") + colorize.HiWhiteString("%s", c.Rank),
		colorize.CyanString("Suit:   ") + colorize.HiWhiteString("%s %s", c.Suit, c.Suit.Symbol()),
		colorize.CyanString("Points: ") + colorize.HiWhiteString("%d", c.PointValue()),
		colorize.CyanString("Asset:  ") + colorize.HiWhiteString("%s", c.AssetID()),
		colorize.CyanString("Pack:   ") + colorize.HiWhiteString("%s", packName),
	}
	if c.Rank == card.Ace {
		info = append(info, "", "An Ace counts 1 instead of 11 when 11 would bust the hand.")
	}

	fmt.Fprintln(out)
	for _, line := range strings.Split(art.JoinHorizontal(4, cardArt, strings.Join(info, "\n")), "\n") {
		// 2-character wide left padding
		fmt.Fprintln(out, "  "+line)
	}
	fmt.Fprintln(out)
}
