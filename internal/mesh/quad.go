// Package mesh describes the hard-coded quads the lessons draw: interleaved
// vertex data, the attribute layout of that data, and element indices.
package mesh

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/irfansharif/learngl/internal/geom"
)

// Attribute is one interleaved vertex attribute. Size and Offset are in
// floats.
type Attribute struct {
	Name     string
	Location uint32
	Size     int32
	Offset   int
}

// Layout describes how a vertex is laid out. Stride is in floats.
type Layout struct {
	Attributes []Attribute
	Stride     int
}

// Quad is a four-vertex mesh drawn as two indexed triangles.
type Quad struct {
	Vertices []float32
	Indices  []uint32
	Layout   Layout
}

// VertexCount returns the number of vertices in the quad.
func (q Quad) VertexCount() int {
	if q.Layout.Stride == 0 {
		return 0
	}
	return len(q.Vertices) / q.Layout.Stride
}

var (
	positionAttr = Attribute{Name: "aPos", Location: 0, Size: 3, Offset: 0}
	colorAttr    = Attribute{Name: "aColor", Location: 1, Size: 3, Offset: 3}
	texCoordAttr = Attribute{Name: "aTexCoord", Location: 1, Size: 2, Offset: 3}
)

// unitBox is the quad every lesson draws: 1x1, centered on the origin.
var unitBox = geom.CenteredBox(geom.MakePoint(0, 0), 1, 1)

// texCoords follow the corner order of geom.Box.Corners.
var texCoords = [4]geom.Point{{X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 1}}

// Rectangle returns a position-only quad.
func Rectangle() (Quad, error) {
	corners := unitBox.Corners()
	vertices := make([]float32, 0, 4*3)
	for _, c := range corners {
		vertices = append(vertices, float32(c.X), float32(c.Y), 0)
	}
	return newQuad(corners, vertices, Layout{
		Attributes: []Attribute{positionAttr},
		Stride:     3,
	})
}

// ColoredQuad returns a quad with a per-vertex color, one per corner in
// geom.Box.Corners order.
func ColoredQuad(colors [4]colorful.Color) (Quad, error) {
	corners := unitBox.Corners()
	vertices := make([]float32, 0, 4*6)
	for i, c := range corners {
		vertices = append(vertices,
			float32(c.X), float32(c.Y), 0, // position
			float32(colors[i].R), float32(colors[i].G), float32(colors[i].B), // color
		)
	}
	return newQuad(corners, vertices, Layout{
		Attributes: []Attribute{positionAttr, colorAttr},
		Stride:     6,
	})
}

// TexturedQuad returns a quad with texture coordinates spanning [0,1].
func TexturedQuad() (Quad, error) {
	corners := unitBox.Corners()
	vertices := make([]float32, 0, 4*5)
	for i, c := range corners {
		vertices = append(vertices,
			float32(c.X), float32(c.Y), 0, // position
			float32(texCoords[i].X), float32(texCoords[i].Y), // texture coord
		)
	}
	return newQuad(corners, vertices, Layout{
		Attributes: []Attribute{positionAttr, texCoordAttr},
		Stride:     5,
	})
}

func newQuad(corners [4]geom.Point, vertices []float32, layout Layout) (Quad, error) {
	indices, err := Triangulate(corners[:])
	if err != nil {
		return Quad{}, err
	}
	return Quad{Vertices: vertices, Indices: indices, Layout: layout}, nil
}
