package art

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/blackjack/internal/card"
)

// ManifestFile is the optional metadata file at the root of an asset pack
const ManifestFile = "pack.toml"

// legacyPrefix is the file name prefix used by the English pattern card set
const legacyPrefix = "English_pattern_"

// Extensions lists the image formats a pack may use, in lookup order
var Extensions = []string{".png", ".jpg", ".jpeg", ".gif"}

// ErrAssetNotFound is returned when a pack has no image for a card
var ErrAssetNotFound = errors.New("asset not found")

// AssetResolver maps a card to the image drawn for it
type AssetResolver interface {
	Resolve(c card.Card) (image.Image, error)
	Back() (image.Image, error)
}

// Locator is implemented by resolvers backed by image files. The renderer
// uses the file path to key its disk cache.
type Locator interface {
	Locate(c card.Card) (string, error)
}

// Manifest describes an asset pack
type Manifest struct {
	Name   string `toml:"name"`
	Prefix string `toml:"prefix"`
	Back   string `toml:"back"`
}

// Pack is a directory of card images named after card asset IDs
type Pack struct {
	Path     string
	Manifest Manifest
}

// LoadPack opens an asset pack directory and reads its manifest if present
func LoadPack(dir string) (*Pack, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("card image pack not found: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("card image pack %s is not a directory", dir)
	}

	p := &Pack{Path: dir}
	manifestPath := filepath.Join(dir, ManifestFile)
	if _, err := os.Stat(manifestPath); err == nil {
		if _, err := toml.DecodeFile(manifestPath, &p.Manifest); err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", ManifestFile, err)
		}
	}
	if p.Manifest.Name == "" {
		p.Manifest.Name = filepath.Base(dir)
	}

	return p, nil
}

// Candidates lists the file names tried for a card, most specific first
func (p *Pack) Candidates(c card.Card) []string {
	prefixes := []string{""}
	if p.Manifest.Prefix != "" {
		prefixes = []string{p.Manifest.Prefix, ""}
	}
	if p.Manifest.Prefix != legacyPrefix {
		prefixes = append(prefixes, legacyPrefix)
	}

	var names []string
	for _, prefix := range prefixes {
		for _, ext := range Extensions {
			names = append(names, prefix+c.AssetID()+ext)
		}
	}
	return names
}

// Locate returns the path of the image for c
func (p *Pack) Locate(c card.Card) (string, error) {
	for _, name := range p.Candidates(c) {
		path := filepath.Join(p.Path, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s in %s", ErrAssetNotFound, c.AssetID(), p.Path)
}

// Resolve loads the image for c
func (p *Pack) Resolve(c card.Card) (image.Image, error) {
	path, err := p.Locate(c)
	if err != nil {
		return nil, err
	}
	return decodeFile(path)
}

// BackPath returns the path of the face-down card image
func (p *Pack) BackPath() (string, error) {
	names := []string{}
	if p.Manifest.Back != "" {
		names = append(names, p.Manifest.Back)
	}
	for _, ext := range Extensions {
		names = append(names, "back"+ext)
	}

	for _, name := range names {
		path := filepath.Join(p.Path, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: card back in %s", ErrAssetNotFound, p.Path)
}

// Back loads the face-down card image
func (p *Pack) Back() (image.Image, error) {
	path, err := p.BackPath()
	if err != nil {
		return nil, err
	}
	return decodeFile(path)
}

func decodeFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}
