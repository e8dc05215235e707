package editor

import "fmt"

// Parameter ranges accepted from user controls. The operations themselves
// do not enforce them; callers that take values from users should call
// Params.Validate before SetParams.
const (
	MinFactor   = 0.0
	MaxFactor   = 2.0
	MinRotation = -180
	MaxRotation = 180
	MinCrop     = 0.0
	MaxCrop     = 0.40
)

// Params is the full set of adjustments applied by the pipeline. It is a
// plain value: each user adjustment replaces it as a whole.
type Params struct {
	// Brightness, Contrast and Saturation are multiplicative factors where
	// 1.0 leaves the image unchanged.
	Brightness float64 `json:"brightness"`
	Contrast   float64 `json:"contrast"`
	Saturation float64 `json:"saturation"`

	// Rotation is in degrees, counter-clockwise.
	Rotation int `json:"rotation"`

	// Crop fractions of the width (left, right) or height (top, bottom)
	// removed from each side.
	CropLeft   float64 `json:"crop_left"`
	CropTop    float64 `json:"crop_top"`
	CropRight  float64 `json:"crop_right"`
	CropBottom float64 `json:"crop_bottom"`
}

// DefaultParams returns the identity parameter set.
func DefaultParams() Params {
	return Params{
		Brightness: 1.0,
		Contrast:   1.0,
		Saturation: 1.0,
	}
}

// IsIdentity reports whether p leaves every image unchanged.
func (p Params) IsIdentity() bool {
	return p == DefaultParams()
}

// Validate checks p against the user control ranges.
func (p Params) Validate() error {
	factors := []struct {
		name  string
		value float64
	}{
		{"brightness", p.Brightness},
		{"contrast", p.Contrast},
		{"saturation", p.Saturation},
	}
	for _, f := range factors {
		if f.value < MinFactor || f.value > MaxFactor {
			return fmt.Errorf("%s %.2f outside range [%.1f, %.1f]", f.name, f.value, MinFactor, MaxFactor)
		}
	}

	if p.Rotation < MinRotation || p.Rotation > MaxRotation {
		return fmt.Errorf("rotation %d outside range [%d, %d]", p.Rotation, MinRotation, MaxRotation)
	}

	crops := []struct {
		name  string
		value float64
	}{
		{"crop_left", p.CropLeft},
		{"crop_top", p.CropTop},
		{"crop_right", p.CropRight},
		{"crop_bottom", p.CropBottom},
	}
	for _, c := range crops {
		if c.value < MinCrop || c.value > MaxCrop {
			return fmt.Errorf("%s %.2f outside range [%.2f, %.2f]", c.name, c.value, MinCrop, MaxCrop)
		}
	}

	return nil
}
