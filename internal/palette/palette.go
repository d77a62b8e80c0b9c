// Package palette provides the colors used by the lessons: the clear color,
// per-corner vertex colors and colors that vary with time.
package palette

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultClear is the background every lesson clears to.
var DefaultClear = colorful.Color{R: 0.2, G: 0.3, B: 0.3}

var (
	Red   = colorful.Color{R: 1}
	Green = colorful.Color{G: 1}
	Blue  = colorful.Color{B: 1}
)

// Corners returns the vertex colors of the shaders lesson quad, in
// geom.Box.Corners order.
func Corners() [4]colorful.Color {
	return [4]colorful.Color{Red, Green, Blue, Red}
}

// Parse parses a "#rrggbb" hex color.
func Parse(hex string) (colorful.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return c, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Pulse returns a green whose intensity follows sin(t) between 0 and 1.
func Pulse(t float64) colorful.Color {
	return colorful.Color{G: clamp(math.Sin(t)/2+0.5, 0, 1)}
}

// RGBA returns c as float32 components with the given alpha, the form
// glClearColor and glUniform4f take.
func RGBA(c colorful.Color, alpha float32) (r, g, b, a float32) {
	return float32(c.R), float32(c.G), float32(c.B), alpha
}

// Vec4 returns c as an RGBA vector with the given alpha.
func Vec4(c colorful.Color, alpha float32) mgl32.Vec4 {
	r, g, b, a := RGBA(c, alpha)
	return mgl32.Vec4{r, g, b, a}
}
