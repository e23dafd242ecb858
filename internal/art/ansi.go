package art

import (
	"crypto/md5"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// ImageToAnsi converts an image to ANSI art of width x height terminal cells.
// Each cell is an upper half block: top pixels as foreground, bottom pixels
// as background.
func ImageToAnsi(img image.Image, width, height int) string {
	// Resize image to desired dimensions (doubled for half-block characters)
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	var buffer strings.Builder
	for y := 0; y < height*2; y += 2 {
		if y > 0 {
			buffer.WriteString("\n")
		}
		for x := 0; x < width*2; x += 2 {
			col1, _ := colorful.MakeColor(getColorAt(resized, x, y))
			col2, _ := colorful.MakeColor(getColorAt(resized, x+1, y))
			col3, _ := colorful.MakeColor(getColorAt(resized, x, y+1))
			col4, _ := colorful.MakeColor(getColorAt(resized, x+1, y+1))

			fg := colorfulToColor(averageColor(col1, col2))
			bg := colorfulToColor(averageColor(col3, col4))

			buffer.WriteString(ansiColorString('▀', fg, bg))
		}
	}

	return buffer.String()
}

// getColorAt returns the color at a specific coordinate
func getColorAt(img image.Image, x, y int) color.Color {
	bounds := img.Bounds()
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		return img.At(x, y)
	}
	return color.RGBA{0, 0, 0, 255} // Return black for out-of-bounds
}

// averageColor calculates the average of multiple colors
func averageColor(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	count := float64(len(colors))
	return colorful.Color{R: r / count, G: g / count, B: b / count}
}

func colorfulToColor(c colorful.Color) color.Color {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// ansiColorString formats a character with 24-bit ANSI color codes
func ansiColorString(char rune, fg, bg color.Color) string {
	r1, g1, b1, _ := fg.RGBA()
	r2, g2, b2, _ := bg.RGBA()

	// RGBA() returns values in range 0-65535
	r1, g1, b1 = r1>>8, g1>>8, b1>>8
	r2, g2, b2 = r2>>8, g2>>8, b2>>8

	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
		r1, g1, b1, r2, g2, b2, char)
}

// cachePath names the cached art for an image file at a given size
func cachePath(cacheDir, imagePath string, width, height int) string {
	key := fmt.Sprintf("%s@%dx%d", imagePath, width, height)
	return filepath.Join(cacheDir, fmt.Sprintf("%x.ansi", md5.Sum([]byte(key))))
}

// CachedAnsi returns ANSI art for an image file, converting it on first use
// and keeping the result under cacheDir.
func CachedAnsi(cacheDir, imagePath string, width, height int) (string, error) {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create ANSI cache directory: %w", err)
	}

	path := cachePath(cacheDir, imagePath, width, height)
	if data, err := os.ReadFile(path); err == nil {
		return string(data), nil
	}

	img, err := decodeFile(imagePath)
	if err != nil {
		return "", err
	}

	ansi := ImageToAnsi(img, width, height)
	if err := os.WriteFile(path, []byte(ansi), 0644); err != nil {
		return "", fmt.Errorf("failed to write ANSI art to file: %w", err)
	}
	return ansi, nil
}
