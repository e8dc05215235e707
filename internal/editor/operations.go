package editor

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	pix "github.com/ironsheep/image-editor-mcp/internal/imaging"
)

// MinCropSize is the smallest width or height, in pixels, a crop may leave.
// Crops that would go below it are ignored.
const MinCropSize = 20

// Operation transforms one image buffer into another. Implementations never
// modify their input; when an operation has nothing to do it returns the
// input pointer itself.
type Operation interface {
	Name() string
	Apply(img *image.NRGBA) *image.NRGBA
}

// Brightness scales the color channels toward black. Factor 0 gives a black
// image, 1 the original, and values above 1 brighten.
type Brightness struct {
	Factor float64
}

func (o Brightness) Name() string { return fmt.Sprintf("brightness(%.2f)", o.Factor) }

func (o Brightness) Apply(img *image.NRGBA) *image.NRGBA {
	if o.Factor == 1 {
		return img
	}
	black := colorful.Color{}
	return enhance(img, o.Factor, func(color.NRGBA) colorful.Color { return black })
}

// Contrast scales the distance of every pixel from the image's mean gray
// level. Factor 0 gives a flat gray image.
type Contrast struct {
	Factor float64
}

func (o Contrast) Name() string { return fmt.Sprintf("contrast(%.2f)", o.Factor) }

func (o Contrast) Apply(img *image.NRGBA) *image.NRGBA {
	if o.Factor == 1 {
		return img
	}
	mean := math.Floor(pix.MeanLuminance(img)+0.5) / 255
	gray := colorful.Color{R: mean, G: mean, B: mean}
	return enhance(img, o.Factor, func(color.NRGBA) colorful.Color { return gray })
}

// Saturation scales the distance of every pixel from its own gray value.
// Factor 0 gives a grayscale image.
type Saturation struct {
	Factor float64
}

func (o Saturation) Name() string { return fmt.Sprintf("saturation(%.2f)", o.Factor) }

func (o Saturation) Apply(img *image.NRGBA) *image.NRGBA {
	if o.Factor == 1 {
		return img
	}
	return enhance(img, o.Factor, func(c color.NRGBA) colorful.Color {
		l := float64(luma(c)) / 255
		return colorful.Color{R: l, G: l, B: l}
	})
}

// Rotate turns the image counter-clockwise about its center. The canvas grows
// to hold the whole rotated image; uncovered pixels are transparent.
type Rotate struct {
	Degrees int
}

func (o Rotate) Name() string { return fmt.Sprintf("rotate(%d)", o.Degrees) }

func (o Rotate) Apply(img *image.NRGBA) *image.NRGBA {
	if o.Degrees == 0 {
		return img
	}
	return imaging.Rotate(img, float64(o.Degrees), color.Transparent)
}

// CropPercent removes a fraction of the width or height from each side.
// Offsets are floor(size * fraction). If the remaining area would be narrower
// or shorter than MinCropSize the image is returned unchanged.
type CropPercent struct {
	Left, Top, Right, Bottom float64
}

func (o CropPercent) Name() string {
	return fmt.Sprintf("crop(%.2f,%.2f,%.2f,%.2f)", o.Left, o.Top, o.Right, o.Bottom)
}

func (o CropPercent) Apply(img *image.NRGBA) *image.NRGBA {
	rect, ok := o.Rect(img.Bounds())
	if !ok || rect == img.Bounds() {
		return img
	}
	return imaging.Crop(img, rect)
}

// Rect returns the region kept from bounds, and false when the crop would
// leave less than MinCropSize pixels in either direction.
func (o CropPercent) Rect(bounds image.Rectangle) (image.Rectangle, bool) {
	w, h := bounds.Dx(), bounds.Dy()

	left := bounds.Min.X + int(math.Floor(float64(w)*o.Left))
	top := bounds.Min.Y + int(math.Floor(float64(h)*o.Top))
	right := bounds.Max.X - int(math.Floor(float64(w)*o.Right))
	bottom := bounds.Max.Y - int(math.Floor(float64(h)*o.Bottom))

	if right-left < MinCropSize || bottom-top < MinCropSize {
		return bounds, false
	}
	return image.Rect(left, top, right, bottom), true
}

// enhance blends every pixel with its degenerate counterpart:
// out = degenerate + factor*(in - degenerate), clamped. Alpha is kept.
func enhance(img *image.NRGBA, factor float64, degenerate func(color.NRGBA) colorful.Color) *image.NRGBA {
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		in := colorful.Color{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
		}
		r, g, b := degenerate(c).BlendRgb(in, factor).Clamped().RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: c.A}
	})
}

// luma is the ITU-R 601 gray value in 16.16 fixed point, rounded.
func luma(c color.NRGBA) uint8 {
	return uint8((uint32(c.R)*19595 + uint32(c.G)*38470 + uint32(c.B)*7471 + 0x8000) >> 16)
}
