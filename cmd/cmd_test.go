package cmd

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/config"
)

func isolate(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(root, "cache"))
	t.Setenv("BLACKJACK_CARD_IMAGES", "")
	t.Setenv("BLACKJACK_NO_COLOR", "1")
	return root
}

func run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	RootCmd.SetArgs(args)
	RootCmd.SetIn(strings.NewReader(input))
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	err := RootCmd.Execute()
	return out.String(), err
}

func writePack(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	for _, s := range card.Suits {
		for _, r := range card.Ranks {
			f, err := os.Create(filepath.Join(dir, card.New(r, s).AssetID()+".png"))
			require.NoError(t, err)
			require.NoError(t, png.Encode(f, image.NewGray(image.Rect(0, 0, 4, 6))))
			require.NoError(t, f.Close())
		}
	}
}

func TestShowCard(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "show", "ace_of_spades")
	require.NoError(t, err)
	assert.Contains(t, out, "Ace of Spades")
	assert.Contains(t, out, "Points: 11")
	assert.Contains(t, out, "Asset:  ace_of_spades")
	assert.Contains(t, out, "drawing text cards")
}

func TestShowRejectsUnknownCard(t *testing.T) {
	isolate(t)

	_, err := run(t, "", "show", "knight_of_cups")
	assert.Error(t, err)
}

func TestPlaySingleHand(t *testing.T) {
	isolate(t)

	out, err := run(t, "s\n", "play", "--once", "--seed", "1", "--no-art")
	require.NoError(t, err)
	assert.Contains(t, out, "Player's Cards:")
	assert.Contains(t, out, "Player's Total:")
	assert.Contains(t, out, "Dealer's Total:")
	assert.Contains(t, out, "Hands:  1")
}

func TestValidateMissingPack(t *testing.T) {
	root := isolate(t)

	_, err := run(t, "", "assets", "validate", filepath.Join(root, "nowhere"))
	assert.Error(t, err)
}

func TestValidateIncompletePack(t *testing.T) {
	root := isolate(t)
	dir := filepath.Join(root, "partial")
	writePack(t, dir)
	require.NoError(t, os.Remove(filepath.Join(dir, "queen_of_hearts.png")))

	out, err := run(t, "", "assets", "validate", dir)
	assert.EqualError(t, err, "validation failed")
	assert.Contains(t, out, "queen_of_hearts")
}

func TestAssetsInitListAndSetDefault(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "assets", "init")
	require.NoError(t, err)
	assert.Contains(t, out, config.GetAssetLibraryPath())
	assert.FileExists(t, config.GetConfigFilePath())

	out, err = run(t, "", "assets", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "No card image packs found")

	writePack(t, filepath.Join(config.GetAssetLibraryPath(), "classic"))

	out, err = run(t, "", "assets", "set-default", "classic")
	require.NoError(t, err)
	assert.Contains(t, out, "Default card image pack set to:")

	var onDisk config.Config
	_, err = toml.DecodeFile(config.GetConfigFilePath(), &onDisk)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(config.GetAssetLibraryPath(), "classic"), onDisk.CardImages)

	out, err = run(t, "", "assets", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "* classic (classic) [DEFAULT]")
}

func TestSetDefaultRejectsIncompletePack(t *testing.T) {
	root := isolate(t)
	dir := filepath.Join(root, "empty")
	require.NoError(t, os.MkdirAll(dir, 0755))

	_, err := run(t, "", "assets", "set-default", dir)
	assert.Error(t, err)
}

func TestFitArt(t *testing.T) {
	w, h := fitArt(200, 12, 9)
	assert.Equal(t, 12, w)
	assert.Equal(t, 9, h)

	w, h = fitArt(60, 12, 9)
	assert.Equal(t, 8, w)
	assert.Equal(t, 6, h)

	w, h = fitArt(10, 12, 9)
	assert.Equal(t, 12, w)
	assert.Equal(t, 9, h)
}
