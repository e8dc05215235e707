package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WEBP format decoder
)

// Decode reads an image from r and converts it to a non-premultiplied RGBA
// buffer.
//
// Returns:
//   - *image.NRGBA: The decoded pixels with bounds starting at (0,0).
//   - string: The format name reported by the registered decoder
//     ("png", "jpeg", "gif", "bmp", "tiff" or "webp").
//   - error: Non-nil if the data is not a supported image.
//
// Whatever the source color model (paletted, grayscale, YCbCr, 16-bit), the
// result is always 8 bits per channel with an alpha channel, so every editing
// operation sees the same pixel layout.
func Decode(r io.Reader) (*image.NRGBA, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return imaging.Clone(img), format, nil
}

// Open decodes the image file at path. See Decode for the result.
func Open(path string) (*image.NRGBA, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Info contains metadata about an in-memory image buffer.
type Info struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the format the buffer was decoded from, or empty for
	// buffers produced by editing.
	Format string `json:"format,omitempty"`

	// HasAlpha reports whether any pixel is not fully opaque.
	HasAlpha bool `json:"has_alpha"`
}

// Describe returns the metadata of img. Unlike a file-level check, HasAlpha
// inspects the pixels: a rotated JPEG has transparent corners even though the
// source format has no alpha channel.
func Describe(img *image.NRGBA, format string) *Info {
	bounds := img.Bounds()
	return &Info{
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Format:   format,
		HasAlpha: !img.Opaque(),
	}
}
