package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(root, "cache"))
	t.Setenv("BLACKJACK_CARD_IMAGES", "")
	t.Setenv("BLACKJACK_ART_WIDTH", "")
	t.Setenv("BLACKJACK_ART_HEIGHT", "")
	t.Setenv("BLACKJACK_NO_COLOR", "")
	os.Unsetenv("BLACKJACK_NO_COLOR")
	return root
}

func TestLoadConfigCreatesDefaults(t *testing.T) {
	root := isolate(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "data", "blackjack", "card_images"), cfg.CardImages)
	assert.Equal(t, DefaultArtWidth, cfg.ArtWidth)
	assert.Equal(t, DefaultArtHeight, cfg.ArtHeight)
	assert.True(t, cfg.Color)

	path := filepath.Join(root, "config", "blackjack", "config.toml")
	assert.Equal(t, path, GetConfigFilePath())

	var onDisk Config
	_, err = toml.DecodeFile(path, &onDisk)
	require.NoError(t, err)
	assert.Equal(t, *cfg, onDisk)
}

func TestLoadConfigReadsFile(t *testing.T) {
	isolate(t)
	path := GetConfigFilePath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("card_images = \"/srv/cards\"\nart_width = 20\ncolor = false\n"), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/srv/cards", cfg.CardImages)
	assert.Equal(t, 20, cfg.ArtWidth)
	assert.Equal(t, DefaultArtHeight, cfg.ArtHeight, "missing keys keep their defaults")
	assert.False(t, cfg.Color)
}

func TestLoadConfigRejectsBrokenFile(t *testing.T) {
	isolate(t)
	path := GetConfigFilePath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("art_width = \"wide\""), 0644))

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestEnvironmentOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("BLACKJACK_CARD_IMAGES", "/tmp/pack")
	t.Setenv("BLACKJACK_ART_WIDTH", "30")
	t.Setenv("BLACKJACK_ART_HEIGHT", "not-a-number")
	t.Setenv("BLACKJACK_NO_COLOR", "1")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/pack", cfg.CardImages)
	assert.Equal(t, 30, cfg.ArtWidth)
	assert.Equal(t, DefaultArtHeight, cfg.ArtHeight)
	assert.False(t, cfg.Color)
}

func TestSetCardImages(t *testing.T) {
	root := isolate(t)
	pack := filepath.Join(root, "pack")
	require.NoError(t, os.MkdirAll(pack, 0755))

	require.NoError(t, SetCardImages(pack))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, pack, cfg.CardImages)
}

func TestGetAssetPath(t *testing.T) {
	root := isolate(t)
	named := filepath.Join(GetAssetLibraryPath(), "english")
	require.NoError(t, os.MkdirAll(named, 0755))

	got, err := GetAssetPath("english")
	require.NoError(t, err)
	assert.Equal(t, named, got)

	direct := filepath.Join(root, "elsewhere")
	require.NoError(t, os.MkdirAll(direct, 0755))
	got, err = GetAssetPath(direct)
	require.NoError(t, err)
	assert.Equal(t, direct, got)

	_, err = GetAssetPath("missing")
	assert.Error(t, err)
}

func TestGetCacheDir(t *testing.T) {
	root := isolate(t)
	assert.Equal(t, filepath.Join(root, "cache", "blackjack"), GetCacheDir())
}
