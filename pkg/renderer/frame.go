package renderer

import (
	"image"
	"image/color"

	"github.com/WillDeJs/ray-tracing/pkg/core"
)

// Frame is a rendered image: Width*Height colors in row-major order, row 0
// at the top and each row left to right
type Frame struct {
	Width  int
	Height int
	Pixels []core.Color
}

// NewFrame creates a black frame
func NewFrame(width, height int) *Frame {
	pixels := make([]core.Color, width*height)
	for i := range pixels {
		pixels[i] = core.Black
	}
	return &Frame{Width: width, Height: height, Pixels: pixels}
}

// Set stores the color of pixel (x, y)
func (f *Frame) Set(x, y int, c core.Color) {
	f.Pixels[y*f.Width+x] = c
}

// Pixel returns the color of pixel (x, y)
func (f *Frame) Pixel(x, y int) core.Color {
	return f.Pixels[y*f.Width+x]
}

// ColorModel implements image.Image
func (f *Frame) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements image.Image
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Width, f.Height)
}

// At implements image.Image
func (f *Frame) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(f.Bounds())) {
		return color.NRGBA{}
	}
	return f.Pixel(x, y)
}
