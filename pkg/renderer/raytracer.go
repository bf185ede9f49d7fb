package renderer

import (
	"image"

	"github.com/WillDeJs/ray-tracing/pkg/core"
	"github.com/WillDeJs/ray-tracing/pkg/geometry"
	"github.com/WillDeJs/ray-tracing/pkg/integrator"
)

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *geometry.Camera
	GetWorld() geometry.Shape
	GetSamplingConfig() core.SamplingConfig
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene      Scene
	integrator integrator.Integrator
	width      int
	height     int
	config     core.SamplingConfig
}

// NewRaytracer creates a new raytracer. The image size and sample count
// come from the scene's sampling config.
func NewRaytracer(scene Scene, integrator integrator.Integrator) *Raytracer {
	config := scene.GetSamplingConfig()
	return &Raytracer{
		scene:      scene,
		integrator: integrator,
		width:      config.Width,
		height:     config.Height,
		config:     config,
	}
}

// SamplePixel traces one jittered sample through pixel (i, j), where j
// counts rows from the bottom of the image
func (rt *Raytracer) SamplePixel(i, j int, sampler core.Sampler) core.Color {
	u := (float64(i) + sampler.Get1D()) / float64(rt.width)
	v := (float64(j) + sampler.Get1D()) / float64(rt.height)

	ray := rt.scene.GetCamera().GetRay(u, v, sampler)
	return rt.integrator.RayColor(ray, rt.scene.GetWorld(), sampler)
}

// RenderBounds samples every pixel in bounds until it holds targetSamples
// samples. Bounds are in image coordinates with row 0 at the top.
// Pixels are visited row by row, left to right, so a given sampler always
// produces the same result.
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, pixelStats [][]PixelStats, sampler core.Sampler, targetSamples int) RenderStats {
	stats := RenderStats{
		TotalPixels: bounds.Dx() * bounds.Dy(),
		MaxSamples:  targetSamples,
		MinSamples:  targetSamples,
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		j := rt.height - 1 - y
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ps := &pixelStats[y][x]
			samplesUsed := 0
			for ps.SampleCount < targetSamples {
				ps.AddSample(rt.SamplePixel(x, j, sampler))
				samplesUsed++
			}
			stats.TotalSamples += samplesUsed
			stats.MinSamples = min(stats.MinSamples, samplesUsed)
			stats.MaxSamplesUsed = max(stats.MaxSamplesUsed, samplesUsed)
		}
	}

	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}
	return stats
}

// RenderPass renders the whole image on the calling goroutine with a single
// sampler: rows from the top (j = height-1) down, each row left to right,
// all samples of a pixel before moving on
func (rt *Raytracer) RenderPass(sampler core.Sampler) *Frame {
	frame := NewFrame(rt.width, rt.height)

	for j := rt.height - 1; j >= 0; j-- {
		for i := 0; i < rt.width; i++ {
			var ps PixelStats
			for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
				ps.AddSample(rt.SamplePixel(i, j, sampler))
			}
			frame.Set(i, rt.height-1-j, ps.Color())
		}
	}

	return frame
}
