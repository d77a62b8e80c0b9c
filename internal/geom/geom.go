// Package geom provides the small amount of 2D geometry the lessons need:
// - Points and axis-aligned boxes
// - Letterboxed viewports for fixed aspect ratio lessons
// - The per-frame model transform of the transformations lesson
package geom

import "fmt"

// Point represents a 2D point or vector in Cartesian coordinates.
type Point struct {
	X float64
	Y float64
}

// Box represents an axis-aligned rectangle. X, Y is the bottom-left corner.
type Box struct {
	X float64
	Y float64
	W float64
	H float64
}

func MakePoint(x, y float64) Point   { return Point{X: x, Y: y} }
func MakeBox(x, y, w, h float64) Box { return Box{X: x, Y: y, W: w, H: h} }

// CenteredBox returns a w by h box centered on c.
func CenteredBox(c Point, w, h float64) Box {
	return MakeBox(c.X-0.5*w, c.Y-0.5*h, w, h)
}

// Corners returns the corners in the order the lesson quads list their
// vertices: top right, bottom right, bottom left, top left.
func (b Box) Corners() [4]Point {
	return [4]Point{
		{b.X + b.W, b.Y + b.H},
		{b.X + b.W, b.Y},
		{b.X, b.Y},
		{b.X, b.Y + b.H},
	}
}

func (b Box) String() string {
	return fmt.Sprintf("[%g,%g %gx%g]", b.X, b.Y, b.W, b.H)
}
