package geom

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Spin returns the transformations lesson model matrix at time t (seconds):
// rotate about z by t radians, then translate by offset.
func Spin(t float64, offset mgl32.Vec3) mgl32.Mat4 {
	transform := mgl32.Ident4()
	transform = transform.Mul4(mgl32.Translate3D(offset.X(), offset.Y(), offset.Z()))
	transform = transform.Mul4(mgl32.HomogRotate3DZ(float32(t)))
	return transform
}
