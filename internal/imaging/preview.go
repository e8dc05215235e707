package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// PreviewOptions controls how a buffer is turned into a displayable image.
type PreviewOptions struct {
	// MaxWidth and MaxHeight bound the preview. Zero or negative values
	// leave that dimension unbounded.
	MaxWidth  int
	MaxHeight int

	// GridSpacing draws a grid every N preview pixels when positive.
	GridSpacing int

	// GridColor is a hex color for the grid lines. Empty or invalid values
	// use DefaultGridColor.
	GridColor string
}

// PreviewResult contains a rendered preview as base64 PNG.
type PreviewResult struct {
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	SourceWidth  int    `json:"source_width"`
	SourceHeight int    `json:"source_height"`
	ImageBase64  string `json:"image_base64"`
	MimeType     string `json:"mime_type"`
}

// Preview scales img to fit inside the viewport while keeping its aspect
// ratio and encodes the result as PNG. Images that already fit are not
// upscaled. img itself is never modified; the preview is a separate copy.
func Preview(img image.Image, opts PreviewOptions) (*PreviewResult, error) {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()

	maxW, maxH := opts.MaxWidth, opts.MaxHeight
	if maxW <= 0 {
		maxW = srcW
	}
	if maxH <= 0 {
		maxH = srcH
	}

	var out image.Image = imaging.Fit(img, maxW, maxH, imaging.Lanczos)

	if opts.GridSpacing > 0 {
		gridColor := DefaultGridColor
		if opts.GridColor != "" {
			if c, err := ParseHexColor(opts.GridColor); err == nil {
				gridColor = c
			}
		}
		out = GridOverlay(out, opts.GridSpacing, gridColor)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}

	return &PreviewResult{
		Width:        out.Bounds().Dx(),
		Height:       out.Bounds().Dy(),
		SourceWidth:  srcW,
		SourceHeight: srcH,
		ImageBase64:  base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:     "image/png",
	}, nil
}
