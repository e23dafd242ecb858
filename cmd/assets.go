package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack/internal/art"
	"github.com/arcanaland/blackjack/internal/config"
	"github.com/arcanaland/blackjack/internal/validator"
)

// assetsCmd represents the assets command group
var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Manage card image packs",
	Long: `Commands for managing the card image packs used to draw cards.

A pack is a directory with one image per card named after the card's asset
ID (ace_of_hearts.png, 10_of_spades.png, ...), an optional back.png for
face-down cards and an optional pack.toml.`,
}

// assetsListCmd represents the assets ls command
var assetsListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List card image packs in your asset library",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetAssetLibraryPath()

		// Check if asset library exists
		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Fprintf(out, "Asset library at %s does not exist.\n", libraryPath)
			fmt.Fprintln(out, "Run 'blackjack assets init' to create it.")
			return nil
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		defaultPack, _ := filepath.Abs(cfg.CardImages)

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			return fmt.Errorf("error reading asset library: %w", err)
		}

		found := 0
		for _, entry := range entries {
			// Resolve the symbolic link or regular entry
			entryPath := filepath.Join(libraryPath, entry.Name())
			fileInfo, err := os.Stat(entryPath)
			if err != nil || !fileInfo.IsDir() {
				continue
			}

			pack, err := art.LoadPack(entryPath)
			if err != nil {
				// Not a valid pack, skip
				continue
			}
			found++

			if abs, _ := filepath.Abs(entryPath); abs == defaultPack {
				fmt.Fprintf(out, "* %s (%s) [DEFAULT]\n", entry.Name(), pack.Manifest.Name)
			} else {
				fmt.Fprintf(out, "  %s (%s)\n", entry.Name(), pack.Manifest.Name)
			}
		}

		if found == 0 {
			fmt.Fprintln(out, "No card image packs found in your asset library.")
			fmt.Fprintln(out, "You can add packs by copying them to:", libraryPath)
		}
		return nil
	},
}

// assetsSetDefaultCmd represents the assets set-default command
var assetsSetDefaultCmd = &cobra.Command{
	Use:   "set-default [pack]",
	Short: "Set the default card image pack",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		packPath, err := config.GetAssetPath(args[0])
		if err != nil {
			return err
		}

		results, err := validator.NewValidator(packPath).Validate()
		if err != nil {
			return err
		}
		if len(results.Errors) > 0 {
			return fmt.Errorf("not a valid card image pack, run 'blackjack assets validate %s' for details", args[0])
		}

		if err := config.SetCardImages(packPath); err != nil {
			return fmt.Errorf("error setting default pack: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default card image pack set to: %s\n", packPath)
		return nil
	},
}

// assetsInitCmd represents the assets init command
var assetsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the asset library and config",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetAssetLibraryPath()

		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating asset library: %w", err)
		}

		fmt.Fprintln(out, "Asset library initialized at:", libraryPath)
		fmt.Fprintln(out, "Copy card images into it, named like ace_of_hearts.png or 10_of_spades.png.")

		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(assetsCmd)
	assetsCmd.AddCommand(assetsListCmd)
	assetsCmd.AddCommand(assetsSetDefaultCmd)
	assetsCmd.AddCommand(assetsInitCmd)
	assetsCmd.AddCommand(validateCmd)
}
