package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/disintegration/imaging"
)

// JPEGQuality is the fixed quality used for every JPEG export.
const JPEGQuality = 95

// ErrUnsupportedFormat is returned when an output format cannot be
// determined or is not one of PNG, JPEG or WEBP.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Format identifies an output encoding.
type Format int

const (
	PNG Format = iota
	JPEG
	WEBP
)

var formatNames = map[Format]string{
	PNG:  "png",
	JPEG: "jpeg",
	WEBP: "webp",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// Lossy reports whether the format discards information on encode. Lossy
// formats are written without alpha.
func (f Format) Lossy() bool {
	return f == JPEG
}

// FormatFromPath determines the output format from the file extension.
// Matching is case-insensitive:
//   - ".png" -> PNG
//   - ".jpg", ".jpeg" -> JPEG
//   - ".webp" -> WEBP
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	case ".webp":
		return WEBP, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Flatten returns a fully opaque copy of img. The color channels are kept
// as they are and alpha is forced to 255, which is what an RGBA to RGB
// conversion does: transparent pixels reveal their stored color rather than
// being composited onto a background.
func Flatten(img image.Image) *image.NRGBA {
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		c.A = 0xff
		return c
	})
}

// Encode writes img to w in the given format.
//
//   - PNG: lossless, alpha preserved.
//   - WEBP: lossless (VP8L), alpha preserved.
//   - JPEG: flattened to opaque first, quality JPEGQuality.
func Encode(w io.Writer, img image.Image, format Format) error {
	var err error
	switch format {
	case PNG:
		err = imaging.Encode(w, img, imaging.PNG)
	case JPEG:
		err = imaging.Encode(w, Flatten(img), imaging.JPEG, imaging.JPEGQuality(JPEGQuality))
	case WEBP:
		err = nativewebp.Encode(w, img, nil)
	default:
		return ErrUnsupportedFormat
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return nil
}
