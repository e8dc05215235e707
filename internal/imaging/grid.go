package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"strings"

	"github.com/anthonynsimon/bild/clone"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultGridColor is used when no grid color is given or it cannot be parsed.
var DefaultGridColor = color.NRGBA{R: 255, G: 0, B: 0, A: 128}

// GridOverlay returns a copy of img with vertical and horizontal lines drawn
// every spacing pixels. Lines are composited over the image, so a
// semi-transparent color keeps the content underneath visible. The input is
// never modified.
func GridOverlay(img image.Image, spacing int, c color.Color) *image.RGBA {
	result := clone.AsRGBA(img)
	if spacing <= 0 {
		return result
	}

	bounds := result.Bounds()
	src := image.NewUniform(c)

	for x := bounds.Min.X + spacing; x < bounds.Max.X; x += spacing {
		draw.Draw(result, image.Rect(x, bounds.Min.Y, x+1, bounds.Max.Y), src, image.Point{}, draw.Over)
	}
	for y := bounds.Min.Y + spacing; y < bounds.Max.Y; y += spacing {
		draw.Draw(result, image.Rect(bounds.Min.X, y, bounds.Max.X, y+1), src, image.Point{}, draw.Over)
	}

	return result
}

// ParseHexColor parses "#RRGGBB", "#RGB" or "#RRGGBBAA". The leading '#'
// is optional.
func ParseHexColor(hex string) (color.NRGBA, error) {
	hex = strings.TrimPrefix(hex, "#")

	alpha := uint8(255)
	if len(hex) == 8 {
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid alpha in color %q: %w", hex, err)
		}
		alpha = uint8(a)
		hex = hex[:6]
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}

	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}
