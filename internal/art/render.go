package art

import (
	"fmt"

	"github.com/arcanaland/blackjack/internal/card"
)

// gap between cards laid out in a row
const cardGap = 2

// Renderer turns cards into terminal art. A nil Assets, a missing image or
// disabled TrueColor all fall back to text cards.
type Renderer struct {
	Assets    AssetResolver
	Width     int
	Height    int
	TrueColor bool
	// CacheDir keeps converted art between runs when Assets is a Locator
	CacheDir string

	memo map[string]string
}

// Card returns the art for a face-up card
func (r *Renderer) Card(c card.Card) string {
	if r.Assets == nil || !r.TrueColor {
		return TextCard(c)
	}

	key := c.AssetID()
	if art, ok := r.memo[key]; ok {
		return art
	}

	art, err := r.convert(c)
	if err != nil {
		art = TextCard(c)
	}

	if r.memo == nil {
		r.memo = make(map[string]string)
	}
	r.memo[key] = art
	return art
}

// Back returns the art for a face-down card
func (r *Renderer) Back() string {
	if r.Assets == nil || !r.TrueColor {
		return TextBack()
	}
	if art, ok := r.memo["back"]; ok {
		return art
	}

	art := TextBack()
	if img, err := r.Assets.Back(); err == nil {
		art = ImageToAnsi(img, r.Width, r.Height)
	}

	if r.memo == nil {
		r.memo = make(map[string]string)
	}
	r.memo["back"] = art
	return art
}

// Row lays out face-up cards followed by hidden face-down ones
func (r *Renderer) Row(cards []card.Card, hidden int) string {
	blocks := make([]string, 0, len(cards)+hidden)
	for _, c := range cards {
		blocks = append(blocks, r.Card(c))
	}
	for i := 0; i < hidden; i++ {
		blocks = append(blocks, r.Back())
	}
	return JoinHorizontal(cardGap, blocks...)
}

func (r *Renderer) convert(c card.Card) (string, error) {
	if locator, ok := r.Assets.(Locator); ok && r.CacheDir != "" {
		path, err := locator.Locate(c)
		if err != nil {
			return "", err
		}
		return CachedAnsi(r.CacheDir, path, r.Width, r.Height)
	}

	img, err := r.Assets.Resolve(c)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", c.AssetID(), err)
	}
	return ImageToAnsi(img, r.Width, r.Height), nil
}
