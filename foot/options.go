package foot

import (
	"log/slog"

	"github.com/oomph-ac/footing/game"
)

// RotationMode defines when rotation input is applied to the orientation frame.
type RotationMode uint8

const (
	// RotationImmediate rotates the orientation frame as soon as input is set, by the amount passed.
	RotationImmediate RotationMode = iota
	// RotationDeferred treats rotation input as a rate in degrees per second applied every tick.
	RotationDeferred
)

// BasisMode defines which axes movement input is relative to.
type BasisMode uint8

const (
	// BasisSelf moves relative to the forward and right axes of the orientation frame.
	BasisSelf BasisMode = iota
	// BasisPerspective moves relative to the forward and right axes passed with the input, for example
	// those of a third person camera.
	BasisPerspective
)

// Options holds the tunables of a System. They are read, never modified, by the controller.
type Options struct {
	// MomentumResistance is the maximum magnitude of the counter force resisting flat velocity
	// while grounded, before scaling.
	MomentumResistance float32
	// GroundedNormalThreshold is the minimum vertical component of the ground normal for the ground
	// to be considered stable.
	GroundedNormalThreshold float32
	JumpForce               float32
	// HorizontalJumpBias controls how much horizontal movement biases the direction of a jump.
	HorizontalJumpBias float32
	AirborneForce      float32
	// MaxFlatAirborneSpeed is the flat speed above which airborne steering in the direction of travel
	// is damped.
	MaxFlatAirborneSpeed float32
	// LandSpeedThreshold is the downward speed at which a landing is considered hard.
	LandSpeedThreshold float32

	// ProbeRadius is the radius of the sphere used to test for ground.
	ProbeRadius float32
	// ProbeOffset is the height of the ground probe above the position of the root frame.
	ProbeOffset float32

	Rotation RotationMode
	Basis    BasisMode

	// Logger receives debug output. A nil logger discards it.
	Logger *slog.Logger
	// DebugModes are enabled on the debugger of the System when it is created.
	DebugModes []DebugMode
}

// DefaultOptions returns the options a character controller is usually tuned with.
func DefaultOptions() Options {
	return Options{
		MomentumResistance:      game.DefaultMomentumResistance,
		GroundedNormalThreshold: game.DefaultGroundedNormalThreshold,
		JumpForce:               game.DefaultJumpForce,
		HorizontalJumpBias:      game.DefaultHorizontalJumpBias,
		AirborneForce:           game.DefaultAirborneForce,
		MaxFlatAirborneSpeed:    game.DefaultMaxFlatAirborneSpeed,
		LandSpeedThreshold:      game.DefaultLandSpeedThreshold,
		ProbeRadius:             ProbeRadiusFromCollider(game.DefaultColliderRadius, 1),
		ProbeOffset:             game.DefaultProbeOffset,
	}
}

// ProbeRadiusFromCollider returns the ground probe radius for a sphere collider with the given radius
// and scale.
func ProbeRadiusFromCollider(radius, scale float32) float32 {
	return radius * scale * game.ProbeRadiusMultiplier
}
