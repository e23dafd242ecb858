package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "blackjack",
	Short: "Play blackjack against the dealer in your terminal",
	Long: `Blackjack is a single-player card game against an automated dealer.
Cards are drawn as terminal art from a pack of card images, or as text when
no images are available. Running it without a subcommand starts a game.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	addPlayFlags(RootCmd)
	RootCmd.AddCommand(playCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
