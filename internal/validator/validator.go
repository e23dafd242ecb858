package validator

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/blackjack/internal/art"
	"github.com/arcanaland/blackjack/internal/card"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	PackPath string
	Results  ValidationResults

	pack *art.Pack
}

func NewValidator(packPath string) *Validator {
	return &Validator{
		PackPath: packPath,
		Results:  ValidationResults{},
	}
}

// Validate checks that the pack has a readable image for every card
func (v *Validator) Validate() (ValidationResults, error) {
	info, err := os.Stat(v.PackPath)
	if err != nil {
		return v.Results, fmt.Errorf("card image pack not found: %s", v.PackPath)
	}
	if !info.IsDir() {
		return v.Results, fmt.Errorf("%s is not a directory", v.PackPath)
	}

	v.validateManifest()
	v.validateCards()
	v.validateBack()

	return v.Results, nil
}

// validateManifest checks pack.toml if the pack ships one
func (v *Validator) validateManifest() {
	manifestPath := filepath.Join(v.PackPath, art.ManifestFile)
	if _, err := os.Stat(manifestPath); os.IsNotExist(err) {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s not found, using default file names", art.ManifestFile))
		v.pack = &art.Pack{Path: v.PackPath}
		return
	}

	var manifest art.Manifest
	meta, err := toml.DecodeFile(manifestPath, &manifest)
	if err != nil {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("error parsing %s: %v", art.ManifestFile, err))
		v.pack = &art.Pack{Path: v.PackPath}
		return
	}

	for _, key := range meta.Undecoded() {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("unknown key in %s: %s", art.ManifestFile, key.String()))
	}
	if manifest.Name == "" {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("name is not set in %s", art.ManifestFile))
	}

	v.pack = &art.Pack{Path: v.PackPath, Manifest: manifest}
}

// validateCards checks that all 52 card images exist and decode
func (v *Validator) validateCards() {
	var missing []string
	sizes := map[image.Point]int{}

	for _, suit := range card.Suits {
		for _, rank := range card.Ranks {
			c := card.New(rank, suit)
			path, err := v.pack.Locate(c)
			if err != nil {
				missing = append(missing, c.AssetID())
				continue
			}

			size, err := decodeSize(path)
			if err != nil {
				v.Results.Errors = append(v.Results.Errors,
					fmt.Sprintf("cannot decode %s: %v", filepath.Base(path), err))
				continue
			}
			sizes[size]++
		}
	}

	if len(missing) > 0 {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("missing %d card images: %s", len(missing), strings.Join(missing, ", ")))
	}

	if len(sizes) > 1 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("card images come in %d different sizes", len(sizes)))
	}
}

// validateBack checks the face-down card image
func (v *Validator) validateBack() {
	path, err := v.pack.BackPath()
	if err != nil {
		if v.pack.Manifest.Back != "" {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("card back image not found: %s", v.pack.Manifest.Back))
			return
		}
		v.Results.Warnings = append(v.Results.Warnings, "no card back image, face-down cards are drawn as text")
		return
	}

	if _, err := decodeSize(path); err != nil {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("cannot decode card back %s: %v", filepath.Base(path), err))
	}
}

func decodeSize(path string) (image.Point, error) {
	file, err := os.Open(path)
	if err != nil {
		return image.Point{}, err
	}
	defer file.Close()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return image.Point{}, err
	}
	return image.Point{X: cfg.Width, Y: cfg.Height}, nil
}
