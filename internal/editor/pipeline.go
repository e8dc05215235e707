package editor

import "image"

// Pipeline returns the operations for p in application order: crop first so
// crop fractions always refer to the unrotated axes, then the color
// adjustments, then rotation.
func Pipeline(p Params) []Operation {
	return []Operation{
		CropPercent{Left: p.CropLeft, Top: p.CropTop, Right: p.CropRight, Bottom: p.CropBottom},
		Brightness{Factor: p.Brightness},
		Contrast{Factor: p.Contrast},
		Saturation{Factor: p.Saturation},
		Rotate{Degrees: p.Rotation},
	}
}

// Apply runs ops over img in order.
func Apply(img *image.NRGBA, ops []Operation) *image.NRGBA {
	for _, op := range ops {
		img = op.Apply(img)
	}
	return img
}

// Render produces the edited image for p from the untouched original.
func Render(original *image.NRGBA, p Params) *image.NRGBA {
	return Apply(original, Pipeline(p))
}
