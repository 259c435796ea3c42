package game

const (
	DefaultMomentumResistance      = float32(0.4)
	DefaultGroundedNormalThreshold = float32(0.85)
	DefaultJumpForce               = float32(570)
	DefaultHorizontalJumpBias      = float32(0.1)
	DefaultAirborneForce           = float32(130)
	DefaultMaxFlatAirborneSpeed    = float32(6.2)
	// DefaultLandSpeedThreshold is the downward speed a landing must reach to be considered hard.
	DefaultLandSpeedThreshold = float32(8)

	DefaultColliderRadius = float32(0.25)
	DefaultProbeOffset    = float32(0.2)

	DefaultWalkSpeed     = float32(7.7)
	DefaultRunSpeed      = float32(9.7)
	DefaultRotationSpeed = float32(200)

	DefaultBodyMass   = float32(70)
	DefaultBodyWidth  = float32(0.6)
	DefaultBodyHeight = float32(1.8)
	DefaultGravity    = float32(9.81)
	DefaultTickDelta  = float32(0.02)

	// StepHeight is the highest a simulated body is lifted onto a ramp surface in a single step.
	StepHeight = float32(0.6)
)

const (
	// ProbeRadiusMultiplier pads the collider radius when sizing the ground probe.
	ProbeRadiusMultiplier = float32(1.1)
	// GroundRayMultiplier is the length of the downward ground ray relative to the probe radius.
	GroundRayMultiplier = float32(1.05)
	// AirborneForceScale scales airborne steering acceleration.
	AirborneForceScale = float32(10)
	// MomentumForceScale scales the clamped momentum resistance vector into a force.
	MomentumForceScale = float32(1000)
	// MomentumDeadzone is the flat speed under which momentum resistance is not applied.
	MomentumDeadzone = float32(0.05)
	// ExitImpulseEpsilon is the flat speed under which no impulse is applied when leaving the ground.
	ExitImpulseEpsilon = float32(1e-4)
	// NormalizeEpsilon is the length under which a vector is considered to have no direction.
	NormalizeEpsilon = float32(1e-5)
	// FacingAwayDot is the facing/goal dot product under which steering forces a rightward turn.
	FacingAwayDot = float32(-0.98)
)
