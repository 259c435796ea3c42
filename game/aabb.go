package game

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// AABBFromDimensions returns a bounding box of the given width and height, with the centre of its base
// at the origin.
func AABBFromDimensions(width, height float32) cube.BBox {
	h := width / 2
	return cube.Box(
		-h, 0, -h,
		h, height, h,
	)
}

// AABBVectorDistance calculates the distance between an AABB and a vector. It is zero for vectors inside
// the AABB.
func AABBVectorDistance(a cube.BBox, v mgl32.Vec3) float32 {
	x := math32.Max(a.Min().X()-v.X(), math32.Max(0, v.X()-a.Max().X()))
	y := math32.Max(a.Min().Y()-v.Y(), math32.Max(0, v.Y()-a.Max().Y()))
	z := math32.Max(a.Min().Z()-v.Z(), math32.Max(0, v.Z()-a.Max().Z()))
	return math32.Sqrt(x*x + y*y + z*z)
}

// AABBContains returns true if v is strictly inside of the AABB.
func AABBContains(a cube.BBox, v mgl32.Vec3) bool {
	min, max := a.Min(), a.Max()
	return v.X() > min.X() && v.X() < max.X() &&
		v.Y() > min.Y() && v.Y() < max.Y() &&
		v.Z() > min.Z() && v.Z() < max.Z()
}
