package foot

import (
	"io"
	"log/slog"

	"github.com/chewxy/math32"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/footing/event"
	"github.com/oomph-ac/footing/game"
	"github.com/oomph-ac/footing/oerror"
	"github.com/oomph-ac/footing/utils"
)

// ErrNotConfigured is returned by Init if a handle required by the controller is missing.
var ErrNotConfigured = oerror.New("foot system is missing its root frame or body")

// Input is the movement and rotation input of a single frame.
type Input struct {
	// TargetSpeed is the speed per second the body should move at with full input.
	TargetSpeed float32
	// Axial is the forward/backward input, conventionally in [-1, 1].
	Axial float32
	// Lateral is the sideways input, conventionally in [-1, 1].
	Lateral float32
	// Rotation is the amount of degrees to turn around the up axis, or the turn rate in degrees per
	// second when rotation is deferred.
	Rotation float32

	// Forward and Right are the movement basis when the System uses BasisPerspective.
	Forward, Right mgl32.Vec3
}

// System is a locomotion controller for a single character. It classifies the ground under the body once
// per rendered frame through Update, and applies movement, jump and stabilising forces once per fixed
// physics tick through FixedUpdate. A System is not safe for concurrent use.
type System struct {
	opts Options
	log  *slog.Logger
	// Dbg writes debug output for the modes enabled on it.
	Dbg *Debugger

	query             Query
	root, orientation Frame
	body              Dynamics
	mask              Mask

	state      State
	classified bool
	contact    Contact

	input         Input
	move          mgl32.Vec3
	moveMagnitude float32
	rotationRate  float32

	counterForce mgl32.Vec3
	jumpImpulse  mgl32.Vec3
	justJumped   bool

	lastPos        mgl32.Vec3
	speed, hzSpeed float32
	fallVelocity   float32
	landVelocity   float32

	// OnJump is fired every time the System jumps.
	OnJump *event.Signal
	// OnLeaveGround is fired on the frame the body becomes airborn.
	OnLeaveGround *event.Signal
	// OnLand is fired on the frame the body finds ground again after being airborn.
	OnLand *event.Signal
}

// New creates a System that finds ground through the query passed. Init must be called before the
// System does anything on Update or FixedUpdate.
func New(query Query, opts Options) *System {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &System{
		opts:  opts,
		log:   log,
		Dbg:   &Debugger{log: log},
		query: query,
		state: Airborn,

		OnJump:        event.NewSignal("jump", log),
		OnLeaveGround: event.NewSignal("leave_ground", log),
		OnLand:        event.NewSignal("land", log),
	}
	for _, mode := range opts.DebugModes {
		s.Dbg.Toggle(mode, true)
	}
	return s
}

// Init supplies the handles the System drives. root is the frame that is moved and probed for ground,
// orientation the frame that is rotated and, with BasisSelf, gives direction to movement. If orientation
// is nil, root is used. mask selects the geometry that counts as walkable ground.
func (s *System) Init(root, orientation Frame, body Dynamics, mask Mask) error {
	if root == nil || body == nil {
		s.root, s.orientation, s.body = nil, nil, nil
		return ErrNotConfigured
	}
	if orientation == nil {
		orientation = root
	}

	s.root, s.orientation, s.body = root, orientation, body
	s.mask = mask
	s.lastPos = root.Position()
	s.contact = Contact{Position: s.lastPos, Normal: game.Up}
	s.log.Debug("foot system initialised", "pos", s.lastPos, "mask", mask, "probeRadius", s.opts.ProbeRadius)
	return nil
}

// Valid returns true if the System has everything it needs to run. Hosts should check it before they
// start calling Update and FixedUpdate; both do nothing while it returns false.
func (s *System) Valid() bool {
	return s.root != nil && s.body != nil && s.query != nil
}

// Close removes all listeners from the hooks of the System and releases its handles.
func (s *System) Close() {
	s.OnJump.Clear()
	s.OnLeaveGround.Clear()
	s.OnLand.Clear()
	s.root, s.orientation, s.body = nil, nil, nil
}

// SetInput caches movement input for the next ticks and applies rotation input. The movement vector is
// composed from the basis before the rotation is applied. With RotationImmediate the orientation frame
// is rotated right away. Input ranges are not validated.
func (s *System) SetInput(in Input) {
	s.input = in
	s.updateMove()
	s.moveMagnitude = math32.Max(math32.Abs(in.Axial), math32.Abs(in.Lateral))

	s.rotationRate = 0
	switch {
	case s.opts.Rotation == RotationDeferred:
		s.rotationRate = in.Rotation
	case s.orientation != nil && in.Rotation != 0:
		s.orientation.Rotate(s.orientation.Up(), in.Rotation)
	}
}

// updateMove composes the movement vector from the cached input and the current basis.
func (s *System) updateMove() {
	forward, right := s.input.Forward, s.input.Right
	if s.opts.Basis == BasisSelf && s.orientation != nil {
		forward, right = s.orientation.Forward(), s.orientation.Right()
	}
	s.move = forward.Mul(s.input.Axial).Add(right.Mul(s.input.Lateral))
}

// Options returns the options the System was created with.
func (s *System) Options() Options {
	return s.opts
}

// State returns the foot state found by the last classification, or Airborn if there was none yet.
func (s *System) State() State {
	return s.state
}

// Classified returns true once the ground has been classified at least once.
func (s *System) Classified() bool {
	return s.classified
}

// Contact returns the last ground contact. It is only meaningful while the state is not Airborn.
func (s *System) Contact() Contact {
	return s.contact
}

// GroundPosition returns the position considered directly underneath the body.
func (s *System) GroundPosition() mgl32.Vec3 {
	return s.contact.Position
}

// GroundNormal returns the normal of the geometry currently underfoot.
func (s *System) GroundNormal() mgl32.Vec3 {
	return s.contact.Normal
}

// Speed returns the distance the root frame moved over the last frame, per second.
func (s *System) Speed() float32 {
	return s.speed
}

// HorizontalSpeed returns the horizontal distance the root frame moved over the last frame, per second.
func (s *System) HorizontalSpeed() float32 {
	return s.hzSpeed
}

// MoveInput returns the world space movement vector composed from the last input.
func (s *System) MoveInput() mgl32.Vec3 {
	return s.move
}

// MoveMagnitude returns the largest absolute axis of the last movement input.
func (s *System) MoveMagnitude() float32 {
	return s.moveMagnitude
}

// TargetSpeed returns the target speed of the last input.
func (s *System) TargetSpeed() float32 {
	return s.input.TargetSpeed
}

// CounterForce returns the momentum resistance applied on the last tick, before it was scaled into a
// force. It is zero if no resistance was applied.
func (s *System) CounterForce() mgl32.Vec3 {
	return s.counterForce
}

// JumpImpulse returns the impulse applied by the last jump.
func (s *System) JumpImpulse() mgl32.Vec3 {
	return s.jumpImpulse
}

// JustJumped returns true if Jump was called since the last Update.
func (s *System) JustJumped() bool {
	return s.justJumped
}

// LandVelocity returns the fastest vertical velocity reached during the last fall, as recorded when the
// body landed.
func (s *System) LandVelocity() float32 {
	return s.landVelocity
}

// HardLanding returns true if the last landing was at or above the land speed threshold.
func (s *System) HardLanding() bool {
	return s.landVelocity <= -s.opts.LandSpeedThreshold
}

// Debug returns a snapshot of the internal state of the System for display.
func (s *System) Debug() *orderedmap.OrderedMap[string, any] {
	m := orderedmap.NewOrderedMap[string, any]()
	m.Set("state", s.state)
	m.Set("groundPos", game.RoundVec32(s.contact.Position, 3))
	m.Set("groundNormal", game.RoundVec32(s.contact.Normal, 3))
	m.Set("probeRadius", s.opts.ProbeRadius)
	m.Set("mask", s.mask)
	m.Set("speed", game.Round32(s.speed, 3))
	m.Set("hzSpeed", game.Round32(s.hzSpeed, 3))
	m.Set("counterForce", game.RoundVec32(s.counterForce, 3))
	return m
}

// String returns the debug snapshot of the System as a single line.
func (s *System) String() string {
	return utils.OrderedMapToString(s.Debug())
}

func (s *System) classifier() Classifier {
	return Classifier{
		Query:     s.query,
		Mask:      s.mask,
		Radius:    s.opts.ProbeRadius,
		Offset:    s.opts.ProbeOffset,
		Threshold: s.opts.GroundedNormalThreshold,
	}
}
