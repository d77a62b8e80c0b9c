// Package shaders holds the GLSL sources of the lessons. Lessons read them
// from this directory at setup; the rectangle lesson builds from the
// embedded copies below.
package shaders

import _ "embed"

//go:embed rectangle.vert
var RectangleVertex string

//go:embed rectangle.frag
var RectangleFragment string
