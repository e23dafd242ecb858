package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const appName = "blackjack"

// Defaults for the ANSI card art, in terminal cells
const (
	DefaultArtWidth  = 12
	DefaultArtHeight = 9
)

// Config represents the application configuration
type Config struct {
	CardImages string `toml:"card_images"`
	ArtWidth   int    `toml:"art_width"`
	ArtHeight  int    `toml:"art_height"`
	Color      bool   `toml:"color"`
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetXDGCacheHome returns XDG_CACHE_HOME or default path
func GetXDGCacheHome() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return xdgCache
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".cache")
}

// GetAssetLibraryPath returns the default location of card image packs
func GetAssetLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), appName, "card_images")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), appName, "config.toml")
}

// GetCacheDir returns the directory holding rendered card art
func GetCacheDir() string {
	return filepath.Join(GetXDGCacheHome(), appName)
}

func defaultConfig() *Config {
	return &Config{
		CardImages: GetAssetLibraryPath(),
		ArtWidth:   DefaultArtWidth,
		ArtHeight:  DefaultArtHeight,
		Color:      true,
	}
}

// LoadConfig loads the config file, creating it on first use, then applies
// overrides from the environment and a .env file in the working directory.
func LoadConfig() (*Config, error) {
	config, err := loadFile()
	if err != nil {
		return nil, err
	}

	// A missing .env is not an error
	_ = godotenv.Load()
	applyEnv(config)

	if config.ArtWidth <= 0 {
		config.ArtWidth = DefaultArtWidth
	}
	if config.ArtHeight <= 0 {
		config.ArtHeight = DefaultArtHeight
	}

	return config, nil
}

func loadFile() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := defaultConfig()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return config, nil
}

func applyEnv(config *Config) {
	if dir := os.Getenv("BLACKJACK_CARD_IMAGES"); dir != "" {
		config.CardImages = dir
	}
	if w, err := strconv.Atoi(os.Getenv("BLACKJACK_ART_WIDTH")); err == nil && w > 0 {
		config.ArtWidth = w
	}
	if h, err := strconv.Atoi(os.Getenv("BLACKJACK_ART_HEIGHT")); err == nil && h > 0 {
		config.ArtHeight = h
	}
	if _, ok := os.LookupEnv("BLACKJACK_NO_COLOR"); ok {
		config.Color = false
	}
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	configPath := GetConfigFilePath()
	configDir := filepath.Dir(configPath)

	// Ensure the config directory exists
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %w", err)
	}

	config := defaultConfig()
	if err := writeConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

func writeConfig(config *Config) error {
	file, err := os.Create(GetConfigFilePath())
	if err != nil {
		return fmt.Errorf("error opening config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// GetAssetPath resolves an asset pack given by name (inside the asset
// library) or by path
func GetAssetPath(name string) (string, error) {
	libraryPath := GetAssetLibraryPath()
	packPath := filepath.Join(libraryPath, name)

	if _, err := os.Stat(packPath); err == nil {
		return packPath, nil
	}

	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	return "", fmt.Errorf("card image pack not found: %s", name)
}

// SetCardImages stores the default asset pack in the config file
func SetCardImages(path string) error {
	config, err := loadFile()
	if err != nil {
		return err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("error resolving %s: %w", path, err)
	}
	config.CardImages = abs

	return writeConfig(config)
}
