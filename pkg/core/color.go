package core

import (
	"fmt"
	"image/color"
	"math"
)

// Color is an 8-bit per channel RGBA value.
//
// Channel arithmetic saturates: results are clamped to [0, 255] instead of
// wrapping, and float results are truncated toward zero after clamping.
// Every arithmetic operation produces a fully opaque color.
type Color struct {
	R, G, B, A uint8
}

// Handy color definitions
var (
	Black   = NewColor(0, 0, 0)
	White   = NewColor(255, 255, 255)
	Red     = NewColor(255, 0, 0)
	Green   = NewColor(0, 255, 0)
	Blue    = NewColor(0, 0, 255)
	Yellow  = NewColor(255, 255, 0)
	Magenta = NewColor(255, 0, 255)
	Cyan    = NewColor(0, 255, 255)
	Gray    = NewColor(127, 127, 127)
	SkyBlue = NewColor(127, 180, 255)
)

// NewColor creates an opaque color
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// NewColorRGBA creates a color with an explicit alpha
func NewColorRGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// clampToByte converts a channel value to a byte, saturating at both ends.
// NaN maps to 0.
func clampToByte(f float64) uint8 {
	if !(f > 0) {
		return 0
	}
	if f >= 255 {
		return 255
	}
	return uint8(f)
}

// Add returns the channel-wise saturating sum
func (c Color) Add(other Color) Color {
	return NewColor(
		clampToByte(float64(c.R)+float64(other.R)),
		clampToByte(float64(c.G)+float64(other.G)),
		clampToByte(float64(c.B)+float64(other.B)),
	)
}

// Subtract returns the channel-wise difference, floored at 0
func (c Color) Subtract(other Color) Color {
	return NewColor(
		clampToByte(float64(c.R)-float64(other.R)),
		clampToByte(float64(c.G)-float64(other.G)),
		clampToByte(float64(c.B)-float64(other.B)),
	)
}

// Multiply scales every channel by a scalar
func (c Color) Multiply(scalar float64) Color {
	return NewColor(
		clampToByte(float64(c.R)*scalar),
		clampToByte(float64(c.G)*scalar),
		clampToByte(float64(c.B)*scalar),
	)
}

// Divide divides every channel by a scalar.
// A zero divisor returns ErrDivisionByZero.
func (c Color) Divide(scalar float64) (Color, error) {
	if scalar == 0 {
		return Color{}, ErrDivisionByZero
	}
	return NewColor(
		clampToByte(float64(c.R)/scalar),
		clampToByte(float64(c.G)/scalar),
		clampToByte(float64(c.B)/scalar),
	), nil
}

// Diffuse modulates other by c: each channel of c is normalized to [0, 1]
// and multiplied into the matching channel of other.
func (c Color) Diffuse(other Color) Color {
	return NewColor(
		clampToByte(float64(c.R)/255.0*float64(other.R)),
		clampToByte(float64(c.G)/255.0*float64(other.G)),
		clampToByte(float64(c.B)/255.0*float64(other.B)),
	)
}

// Normalized returns the RGB channels mapped to [0, 1]
func (c Color) Normalized() (r, g, b float64) {
	return float64(c.R) / 255.0, float64(c.G) / 255.0, float64(c.B) / 255.0
}

// Bytes returns the channels in RGBA order
func (c Color) Bytes() [4]byte {
	return [4]byte{c.R, c.G, c.B, c.A}
}

// String formats the RGB channels the way PPM pixel rows are written
func (c Color) String() string {
	return fmt.Sprintf("%d %d %d", c.R, c.G, c.B)
}

// RGBA implements color.Color
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// GammaQuantize converts averaged linear channels in [0, 1] to a display
// color: gamma 2 (square root) followed by floor(x * 255.99).
func GammaQuantize(r, g, b float64) Color {
	return NewColor(gammaChannel(r), gammaChannel(g), gammaChannel(b))
}

func gammaChannel(linear float64) uint8 {
	if !(linear > 0) {
		return 0
	}
	return clampToByte(math.Floor(math.Sqrt(linear) * 255.99))
}
