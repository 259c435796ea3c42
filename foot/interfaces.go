package foot

import "github.com/go-gl/mathgl/mgl32"

// Mask is a bit set of collision layers. Geometry is considered by a query if its layer is in the mask.
type Mask uint32

// Layer returns a mask containing only the n-th layer.
func Layer(n uint) Mask {
	return 1 << n
}

// Has returns true if any of the layers in other are also in m.
func (m Mask) Has(other Mask) bool {
	return m&other != 0
}

// RaycastHit is the result of a successful line test.
type RaycastHit struct {
	Point    mgl32.Vec3
	Normal   mgl32.Vec3
	Distance float32
}

// Query answers spatial questions about the scene the body moves in.
type Query interface {
	// Overlaps returns true if a sphere at center with the given radius touches geometry in mask.
	Overlaps(center mgl32.Vec3, radius float32, mask Mask) bool
	// Raycast returns the first surface in mask hit by the segment starting at origin, pointing in dir
	// and maxDistance long.
	Raycast(origin, dir mgl32.Vec3, maxDistance float32, mask Mask) (RaycastHit, bool)
}

// Frame is a translatable and rotatable transform owned by the host.
type Frame interface {
	Position() mgl32.Vec3
	// Rotate rotates the frame around the given world space axis by an amount of degrees.
	Rotate(axis mgl32.Vec3, degrees float32)
	Forward() mgl32.Vec3
	Right() mgl32.Vec3
	Up() mgl32.Vec3
}

// ForceMode determines how a force passed to Dynamics.AddForce changes the velocity of a body.
type ForceMode uint8

const (
	// ForceModeForce applies a continuous force over the tick, taking mass into account.
	ForceModeForce ForceMode = iota
	// ForceModeAcceleration applies a continuous acceleration over the tick, ignoring mass.
	ForceModeAcceleration
	// ForceModeImpulse applies an instant change in momentum, taking mass into account.
	ForceModeImpulse
	// ForceModeVelocityChange applies an instant change in velocity, ignoring mass.
	ForceModeVelocityChange
)

// Dynamics is the simulated rigid body that forces are applied to.
type Dynamics interface {
	Position() mgl32.Vec3
	Velocity() mgl32.Vec3
	SetVelocity(vel mgl32.Vec3)
	// MovePosition moves the body to pos during the next physics step, overriding integration.
	MovePosition(pos mgl32.Vec3)
	AddForce(force mgl32.Vec3, mode ForceMode)
}
