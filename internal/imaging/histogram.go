package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/histogram"
	"github.com/disintegration/imaging"
)

// ChannelStats summarizes one 256-bin channel histogram.
type ChannelStats struct {
	Bins []int   `json:"bins"`
	Mean float64 `json:"mean"`
	Min  int     `json:"min"` // lowest value present
	Max  int     `json:"max"` // highest value present
}

// HistogramResult holds per-channel histograms of an image.
type HistogramResult struct {
	Pixels        int          `json:"pixels"`
	Red           ChannelStats `json:"red"`
	Green         ChannelStats `json:"green"`
	Blue          ChannelStats `json:"blue"`
	Alpha         ChannelStats `json:"alpha"`
	MeanLuminance float64      `json:"mean_luminance"`
}

// ChannelHistogram computes the R, G, B and A histograms of img together
// with its mean luminance (ITU-R 601 weights, 0-255).
//
// Color channel bins count premultiplied values, which is what is visible
// when the image is composited over black.
func ChannelHistogram(img image.Image) *HistogramResult {
	h := histogram.NewRGBAHistogram(img)
	bounds := img.Bounds()

	return &HistogramResult{
		Pixels:        bounds.Dx() * bounds.Dy(),
		Red:           channelStats(h.R),
		Green:         channelStats(h.G),
		Blue:          channelStats(h.B),
		Alpha:         channelStats(h.A),
		MeanLuminance: MeanLuminance(img),
	}
}

// MeanLuminance returns the average luminance of img in the range 0-255.
// Alpha is ignored. An empty image has mean 0.
func MeanLuminance(img image.Image) float64 {
	var mean float64
	for i, share := range imaging.Histogram(img) {
		mean += float64(i) * share
	}
	return mean
}

func channelStats(h histogram.Histogram) ChannelStats {
	stats := ChannelStats{Bins: h.Bins, Min: -1, Max: -1}

	var total, sum int
	for value, count := range h.Bins {
		if count == 0 {
			continue
		}
		if stats.Min < 0 {
			stats.Min = value
		}
		stats.Max = value
		total += count
		sum += value * count
	}
	if total > 0 {
		stats.Mean = float64(sum) / float64(total)
	}
	return stats
}
