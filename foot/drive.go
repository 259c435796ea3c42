package foot

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/footing/game"
)

// FixedUpdate applies the movement forces of the current input to the body. It should be called once
// per fixed physics tick, before the body is stepped.
func (s *System) FixedUpdate(tickDelta float32) {
	if !s.Valid() {
		return
	}

	if s.opts.Rotation == RotationDeferred && s.rotationRate != 0 && s.orientation != nil {
		s.orientation.Rotate(s.orientation.Up(), s.rotationRate*tickDelta)
	}

	vel := s.body.Velocity()
	s.trackFall(vel)

	flat := game.FlatVec(vel)
	flatSpeed := flat.Len()
	alignment := game.Normalize(flat).Dot(game.Normalize(s.move))

	if s.moveMagnitude > 0 {
		if s.state.Supported() {
			s.walk(tickDelta)
		} else {
			mul := AirborneDamping(flatSpeed, s.opts.MaxFlatAirborneSpeed, alignment)
			force := s.move.Mul(s.opts.AirborneForce * game.AirborneForceScale * mul * tickDelta)
			s.body.AddForce(force, ForceModeAcceleration)
			s.Dbg.Notify(DebugModeDrive, true, "air steer %v (flatSpeed=%v alignment=%v damping=%v)", game.RoundVec32(force, 3), flatSpeed, alignment, mul)
		}
	}

	s.counterForce = mgl32.Vec3{}
	if s.state == Grounded && flatSpeed > game.MomentumDeadzone {
		s.counterForce = game.ClampMagnitude(flat.Mul(-1), s.opts.MomentumResistance)
		s.body.AddForce(s.counterForce.Mul(game.MomentumForceScale), ForceModeForce)
	}
}

// walk moves the body along the ground, following its slope.
func (s *System) walk(tickDelta float32) {
	dir := game.Normalize(game.ProjectOnPlane(s.move, s.contact.Normal))
	delta := dir.Mul(s.input.TargetSpeed * s.moveMagnitude * tickDelta)
	target := s.root.Position().Add(delta)

	s.Dbg.Notify(DebugModeDrive, true, "walk %v -> %v (normal=%v)", game.RoundVec32(s.root.Position(), 3), game.RoundVec32(target, 3), game.RoundVec32(s.contact.Normal, 3))
	s.body.MovePosition(target)
}

// AirborneDamping returns the multiplier applied to airborne steering. Steering in the direction of
// travel is reduced once the flat speed exceeds cap, down to nothing when fully aligned. Steering
// against or across the direction of travel is never reduced.
func AirborneDamping(flatSpeed, cap, alignment float32) float32 {
	if flatSpeed > cap && alignment >= 0 {
		return math32.Max(0, 1-alignment)
	}
	return 1
}
