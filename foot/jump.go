package foot

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/footing/game"
)

// Jump cancels the vertical velocity of the body and applies an upward impulse, slightly biased toward
// the direction of movement. It does not check whether the body is on the ground; hosts should usually
// only call it while the state is Grounded.
func (s *System) Jump() {
	if !s.Valid() {
		return
	}

	vel := s.body.Velocity()
	s.body.SetVelocity(mgl32.Vec3{vel.X(), 0, vel.Z()})

	hz := game.ClampFloat(s.hzSpeed, 0, s.input.TargetSpeed)
	s.jumpImpulse = s.root.Up().Mul(s.opts.JumpForce).Add(game.Normalize(s.move).Mul(hz * s.opts.HorizontalJumpBias))
	s.body.AddForce(s.jumpImpulse, ForceModeImpulse)
	s.justJumped = true

	s.Dbg.Notify(DebugModeJump, true, "jump impulse %v (state=%v hzSpeed=%v)", game.RoundVec32(s.jumpImpulse, 3), s.state, s.hzSpeed)
	s.OnJump.Fire()
}
