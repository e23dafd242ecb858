package validator

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/blackjack/internal/card"
)

func writeImage(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewGray(image.Rect(0, 0, w, h))))
}

// fullPack writes one image per card, named with prefix
func fullPack(t *testing.T, prefix string) string {
	t.Helper()
	dir := t.TempDir()
	for _, s := range card.Suits {
		for _, r := range card.Ranks {
			writeImage(t, filepath.Join(dir, prefix+card.New(r, s).AssetID()+".png"), 4, 6)
		}
	}
	return dir
}

func TestValidCompletePack(t *testing.T) {
	dir := fullPack(t, "")
	writeImage(t, filepath.Join(dir, "back.png"), 4, 6)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pack.toml"), []byte("name = \"Plain\"\n"), 0644))

	results, err := NewValidator(dir).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Empty(t, results.Warnings)
}

func TestLegacyNamesWithoutManifest(t *testing.T) {
	dir := fullPack(t, "English_pattern_")

	results, err := NewValidator(dir).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Len(t, results.Warnings, 2, "missing manifest and missing back")
}

func TestMissingCards(t *testing.T) {
	dir := fullPack(t, "")
	require.NoError(t, os.Remove(filepath.Join(dir, "ace_of_spades.png")))
	require.NoError(t, os.Remove(filepath.Join(dir, "10_of_hearts.png")))

	results, err := NewValidator(dir).Validate()
	require.NoError(t, err)
	require.Len(t, results.Errors, 1)
	assert.True(t, strings.HasPrefix(results.Errors[0], "missing 2 card images"))
	assert.Contains(t, results.Errors[0], "ace_of_spades")
	assert.Contains(t, results.Errors[0], "10_of_hearts")
}

func TestUndecodableImage(t *testing.T) {
	dir := fullPack(t, "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "king_of_clubs.png"), []byte("not a png"), 0644))

	results, err := NewValidator(dir).Validate()
	require.NoError(t, err)
	require.Len(t, results.Errors, 1)
	assert.Contains(t, results.Errors[0], "king_of_clubs.png")
}

func TestMixedSizesAndUnknownKeys(t *testing.T) {
	dir := fullPack(t, "")
	writeImage(t, filepath.Join(dir, "2_of_clubs.png"), 8, 12)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pack.toml"), []byte("name = \"X\"\nauthor = \"me\"\n"), 0644))

	results, err := NewValidator(dir).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Contains(t, results.Warnings, "card images come in 2 different sizes")
	assert.Contains(t, results.Warnings, "unknown key in pack.toml: author")
}

func TestManifestBackMustExist(t *testing.T) {
	dir := fullPack(t, "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pack.toml"), []byte("name = \"X\"\nback = \"reverse.png\"\n"), 0644))

	results, err := NewValidator(dir).Validate()
	require.NoError(t, err)
	assert.Contains(t, results.Errors, "card back image not found: reverse.png")
}

func TestBrokenManifest(t *testing.T) {
	dir := fullPack(t, "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pack.toml"), []byte("name = "), 0644))

	results, err := NewValidator(dir).Validate()
	require.NoError(t, err)
	require.NotEmpty(t, results.Errors)
	assert.Contains(t, results.Errors[0], "error parsing pack.toml")
}

func TestMissingDirectory(t *testing.T) {
	_, err := NewValidator(filepath.Join(t.TempDir(), "none")).Validate()
	assert.Error(t, err)
}
