package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack/internal/config"
	"github.com/arcanaland/blackjack/internal/validator"
)

// validateCmd represents the assets validate command
var validateCmd = &cobra.Command{
	Use:   "validate [pack]",
	Short: "Validate a card image pack",
	Long: `Validate checks that a card image pack has a readable image for each of
the 52 cards. Without an argument the default pack from your config is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var packPath string
		if len(args) == 1 {
			path, err := config.GetAssetPath(args[0])
			if err != nil {
				return err
			}
			packPath = path
		} else {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}
			packPath = cfg.CardImages
		}

		// Create validator and run validation
		v := validator.NewValidator(packPath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "✅ Pack '%s' has every card image.\n", packPath)
		} else {
			fmt.Fprintf(out, "❌ Pack '%s' has %d validation errors:\n", packPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		if len(results.Errors) > 0 {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}
