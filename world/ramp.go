package world

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/footing/assert"
	"github.com/oomph-ac/footing/game"
)

// Ramp is a solid wedge with a rectangular horizontal footprint. Its top surface is a plane that rises
// from the bottom height of the wedge at one edge of the footprint to the top height at the opposite
// edge.
type Ramp struct {
	min, max mgl32.Vec3

	origin mgl32.Vec3
	normal mgl32.Vec3
	// gradient is the height gained per unit travelled along X and Z.
	gradient mgl32.Vec2
}

// NewRamp returns a ramp spanning min to max that rises toward the face passed. The face must be one of
// the four horizontal faces. It panics if the extents do not form a ramp.
func NewRamp(min, max mgl32.Vec3, rise cube.Face) Ramp {
	assert.IsTrue(min.X() < max.X() && min.Z() < max.Z(), "ramp footprint %v-%v is empty", min, max)
	assert.IsTrue(min.Y() <= max.Y(), "ramp bottom %v is above its top %v", min.Y(), max.Y())

	r := Ramp{min: min, max: max, origin: min}
	height := max.Y() - min.Y()
	switch rise {
	case cube.FaceSouth:
		r.gradient = mgl32.Vec2{0, height / (max.Z() - min.Z())}
	case cube.FaceNorth:
		r.gradient = mgl32.Vec2{0, -height / (max.Z() - min.Z())}
		r.origin[2] = max.Z()
	case cube.FaceEast:
		r.gradient = mgl32.Vec2{height / (max.X() - min.X()), 0}
	case cube.FaceWest:
		r.gradient = mgl32.Vec2{-height / (max.X() - min.X()), 0}
		r.origin[0] = max.X()
	default:
		assert.IsTrue(false, "ramp cannot rise toward %v", rise)
	}
	r.normal = game.Normalize(mgl32.Vec3{-r.gradient.X(), 1, -r.gradient.Y()})
	return r
}

// Normal returns the unit normal of the top surface of the ramp.
func (r Ramp) Normal() mgl32.Vec3 {
	return r.normal
}

// Bounds returns the bounding box enclosing the ramp.
func (r Ramp) Bounds() cube.BBox {
	return cube.Box(r.min.X(), r.min.Y(), r.min.Z(), r.max.X(), r.max.Y(), r.max.Z())
}

// HeightAt returns the height of the top surface of the ramp at the given horizontal coordinates, and
// false if they are outside of its footprint.
func (r Ramp) HeightAt(x, z float32) (float32, bool) {
	if !r.within(x, z) {
		return 0, false
	}
	return r.origin.Y() + r.gradient.X()*(x-r.origin.X()) + r.gradient.Y()*(z-r.origin.Z()), true
}

// distance returns the signed distance of a point to the top surface plane. It is negative below it.
func (r Ramp) distance(p mgl32.Vec3) float32 {
	return p.Sub(r.origin).Dot(r.normal)
}

func (r Ramp) within(x, z float32) bool {
	return x >= r.min.X() && x <= r.max.X() && z >= r.min.Z() && z <= r.max.Z()
}
