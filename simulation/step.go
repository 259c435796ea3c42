package simulation

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/footing/foot"
	"github.com/oomph-ac/footing/game"
	"github.com/oomph-ac/footing/utils"
	"github.com/oomph-ac/footing/world"
)

// Geometry is the scene a Body is stepped against.
type Geometry interface {
	// BoxesNear appends the solid boxes in mask that intersect bb to dst.
	BoxesNear(dst []cube.BBox, bb cube.BBox, mask foot.Mask) []cube.BBox
	// Ramps returns the ramps in mask.
	Ramps(mask foot.Mask) []world.Ramp
}

// Step advances the body by dt seconds. Accumulated forces and gravity are integrated into the
// velocity, after which the body is moved by its velocity, clipped against the boxes of geo. A pending
// MovePosition replaces the horizontal part of that motion, and the horizontal velocity becomes that of
// the move. Ramps are not solid: a body that ends up below a ramp surface within StepHeight is
// lifted onto it.
func (b *Body) Step(dt float32, geo Geometry) {
	if dt <= 0 {
		return
	}
	b.lastPos, b.lastVel = b.pos, b.vel

	b.vel = b.vel.Add(b.force.Mul(dt / b.conf.Mass)).Add(b.accel.Mul(dt))
	b.vel[1] -= b.conf.Gravity * dt
	b.force, b.accel = mgl32.Vec3{}, mgl32.Vec3{}

	motion := b.vel.Mul(dt)
	moving := b.moving
	if moving {
		// Horizontal motion follows the move exactly, while vertical motion still carries gravity.
		motion = b.moveTarget.Sub(b.pos)
		motion[1] += b.vel.Y() * dt
		b.moving = false
	}

	clipped := b.collide(motion, geo)
	b.pos = b.pos.Add(clipped)
	if moving {
		b.vel[0], b.vel[2] = clipped.X()/dt, clipped.Z()/dt
	}

	b.onGround = false
	for axis := range 3 {
		if clipped[axis] == motion[axis] {
			continue
		}
		if axis == 1 && motion[axis] < 0 {
			b.onGround = true
		}
		b.vel[axis] = 0
	}
	b.clampToRamps(geo)

	if b.vel.LenSqr() < 1e-12 {
		b.vel = mgl32.Vec3{}
	}
}

// collide clips motion against the boxes near the body, resolving the vertical axis first and the
// horizontal axes after.
func (b *Body) collide(motion mgl32.Vec3, geo Geometry) mgl32.Vec3 {
	bb := b.BoundingBox()
	list := utils.GetBBoxList()
	defer utils.PutBBoxList(list)

	*list = geo.BoxesNear(*list, bb.Extend(motion), b.conf.Mask)
	boxes := *list
	if len(boxes) == 0 {
		return motion
	}

	// Once the body has been stuck inside geometry for two steps in a row, stop pushing it out and only
	// prevent it from going deeper.
	oneWay := b.stuck
	var penetration mgl32.Vec3
	yVel := mgl32.Vec3{0, motion.Y()}
	xVel := mgl32.Vec3{motion.X()}
	zVel := mgl32.Vec3{0, 0, motion.Z()}

	for i := len(boxes) - 1; i >= 0; i-- {
		yVel = game.BBClipCollide(boxes[i], bb, yVel, oneWay, &penetration)
	}
	bb = bb.Translate(yVel)

	for i := len(boxes) - 1; i >= 0; i-- {
		xVel = game.BBClipCollide(boxes[i], bb, xVel, oneWay, &penetration)
	}
	bb = bb.Translate(xVel)

	for i := len(boxes) - 1; i >= 0; i-- {
		zVel = game.BBClipCollide(boxes[i], bb, zVel, oneWay, &penetration)
	}

	hasPenetration := penetration.LenSqr() >= 1e-11
	b.stuck = b.penetratedLast && hasPenetration
	b.penetratedLast = hasPenetration
	return yVel.Add(xVel).Add(zVel)
}

func (b *Body) clampToRamps(geo Geometry) {
	for _, r := range geo.Ramps(b.conf.Mask) {
		h, ok := r.HeightAt(b.pos.X(), b.pos.Z())
		if !ok || b.pos.Y() >= h || h-b.pos.Y() > game.StepHeight {
			continue
		}
		b.pos[1] = h
		if n := r.Normal(); b.vel.Dot(n) < 0 {
			b.vel = game.ProjectOnPlane(b.vel, n)
		}
		b.onGround = true
	}
}
