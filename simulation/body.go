package simulation

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/footing/assert"
	"github.com/oomph-ac/footing/foot"
	"github.com/oomph-ac/footing/game"
)

// BodyConfig holds the physical properties of a Body.
type BodyConfig struct {
	Mass    float32
	Width   float32
	Height  float32
	Gravity float32
	// Mask selects the geometry the body collides with.
	Mask foot.Mask
}

// DefaultBodyConfig returns the configuration of a human sized body colliding with the first layer.
func DefaultBodyConfig() BodyConfig {
	return BodyConfig{
		Mass:    game.DefaultBodyMass,
		Width:   game.DefaultBodyWidth,
		Height:  game.DefaultBodyHeight,
		Gravity: game.DefaultGravity,
		Mask:    foot.Layer(0),
	}
}

// Body is a simple rigid body with an axis aligned bounding box, positioned by the centre of its base.
// It implements both foot.Frame and foot.Dynamics, so that it can be driven by a foot.System directly.
type Body struct {
	conf BodyConfig

	pos, lastPos mgl32.Vec3
	vel, lastVel mgl32.Vec3
	rot          mgl32.Quat

	force, accel mgl32.Vec3
	moveTarget   mgl32.Vec3
	moving       bool

	onGround              bool
	penetratedLast, stuck bool
}

// NewBody returns a Body at rest at the given position, facing forward. It panics if the configuration
// has no mass or size.
func NewBody(pos mgl32.Vec3, conf BodyConfig) *Body {
	assert.Positive(conf.Mass, "body mass")
	assert.Positive(conf.Width, "body width")
	assert.Positive(conf.Height, "body height")

	return &Body{
		conf:    conf,
		pos:     pos,
		lastPos: pos,
		rot:     mgl32.QuatIdent(),
	}
}

// Position returns the position of the base of the body.
func (b *Body) Position() mgl32.Vec3 {
	return b.pos
}

// LastPosition returns the position of the body before the last step or teleport.
func (b *Body) LastPosition() mgl32.Vec3 {
	return b.lastPos
}

// SetPosition teleports the body to the given position.
func (b *Body) SetPosition(pos mgl32.Vec3) {
	b.lastPos = b.pos
	b.pos = pos
	b.moving = false
}

// Velocity returns the velocity of the body per second.
func (b *Body) Velocity() mgl32.Vec3 {
	return b.vel
}

// LastVelocity returns the velocity of the body before the last step.
func (b *Body) LastVelocity() mgl32.Vec3 {
	return b.lastVel
}

// SetVelocity ...
func (b *Body) SetVelocity(vel mgl32.Vec3) {
	b.vel = vel
}

// MovePosition moves the body toward pos during the next step. Velocity is still integrated, and the
// move is clipped by collisions like any other motion.
func (b *Body) MovePosition(pos mgl32.Vec3) {
	b.moveTarget, b.moving = pos, true
}

// AddForce applies a force to the body. Continuous forces are accumulated until the next step, while
// impulses and velocity changes take effect immediately.
func (b *Body) AddForce(force mgl32.Vec3, mode foot.ForceMode) {
	switch mode {
	case foot.ForceModeForce:
		b.force = b.force.Add(force)
	case foot.ForceModeAcceleration:
		b.accel = b.accel.Add(force)
	case foot.ForceModeImpulse:
		b.vel = b.vel.Add(force.Mul(1 / b.conf.Mass))
	case foot.ForceModeVelocityChange:
		b.vel = b.vel.Add(force)
	}
}

// Rotate rotates the body around the given world space axis.
func (b *Body) Rotate(axis mgl32.Vec3, degrees float32) {
	axis = game.Normalize(axis)
	if axis.LenSqr() == 0 || degrees == 0 {
		return
	}
	b.rot = mgl32.QuatRotate(mgl32.DegToRad(degrees), axis).Mul(b.rot).Normalize()
}

// Rotation returns the orientation of the body.
func (b *Body) Rotation() mgl32.Quat {
	return b.rot
}

func (b *Body) Forward() mgl32.Vec3 {
	return b.rot.Rotate(game.Forward)
}

func (b *Body) Right() mgl32.Vec3 {
	return b.rot.Rotate(game.Right)
}

func (b *Body) Up() mgl32.Vec3 {
	return b.rot.Rotate(game.Up)
}

// OnGround returns true if the body was stopped by something beneath it during the last step.
func (b *Body) OnGround() bool {
	return b.onGround
}

// BoundingBox returns the bounding box of the body at its current position.
func (b *Body) BoundingBox() cube.BBox {
	return b.boundingBoxAt(b.pos)
}

func (b *Body) boundingBoxAt(pos mgl32.Vec3) cube.BBox {
	return game.AABBFromDimensions(b.conf.Width, b.conf.Height).Translate(pos)
}
