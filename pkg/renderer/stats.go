package renderer

import (
	"image"

	"github.com/WillDeJs/ray-tracing/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int     // Total number of pixels rendered
	TotalSamples   int     // Total number of samples taken
	AverageSamples float64 // Average samples per pixel
	MaxSamples     int     // Maximum samples allowed per pixel
	MinSamples     int     // Minimum samples taken per pixel
	MaxSamplesUsed int     // Maximum samples actually used by any pixel
}

// PixelStats accumulates samples for a single pixel. Channels are summed
// in the normalized [0, 1] domain.
type PixelStats struct {
	R, G, B     float64 // Channel accumulators
	SampleCount int     // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Color) {
	r, g, b := color.Normalized()
	ps.R += r
	ps.G += g
	ps.B += b
	ps.SampleCount++
}

// Color returns the averaged, gamma corrected pixel color
func (ps *PixelStats) Color() core.Color {
	if ps.SampleCount == 0 {
		return core.Black
	}
	n := float64(ps.SampleCount)
	return core.GammaQuantize(ps.R/n, ps.G/n, ps.B/n)
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of img in [0, 1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += 0.2126*float64(r)/65535 + 0.7152*float64(g)/65535 + 0.0722*float64(b)/65535
		}
	}
	return total / float64(pixels)
}
