package foot

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/footing/game"
)

// Update classifies the ground under the root frame and reacts to the body leaving or reaching the
// ground. It should be called once per rendered frame, after any fixed ticks of that frame, with the
// time passed since the previous call.
func (s *System) Update(frameDelta float32) {
	if !s.Valid() {
		return
	}

	pos := s.root.Position()
	result := s.classifier().Classify(pos, s.root.Up(), s.contact)
	prev, first := s.state, !s.classified
	s.state, s.contact, s.classified = result.State, result.Contact, true

	s.Dbg.Notify(DebugModeClassify, prev != s.state, "state %v -> %v (normal=%v overlap=%v hit=%v)", prev, s.state, game.RoundVec32(s.contact.Normal, 3), result.Overlap, result.Hit)
	if !first {
		switch {
		case prev != Airborn && s.state == Airborn:
			s.leaveGround()
		case prev == Airborn && s.state != Airborn:
			s.land()
		}
	}

	if frameDelta > 0 {
		s.speed = pos.Sub(s.lastPos).Len() / frameDelta
		s.hzSpeed = game.Vec3HzDist(s.lastPos.Sub(pos)) / frameDelta
	}
	s.lastPos = pos
	s.justJumped = false
}

// leaveGround gives the body a small push in the direction it is travelling in, so that it clears the
// edge it stepped off instead of catching on it.
func (s *System) leaveGround() {
	s.fallVelocity = 0
	flat := game.FlatVec(s.body.Velocity())
	if flat.Len() >= game.ExitImpulseEpsilon {
		s.body.AddForce(game.Normalize(flat), ForceModeVelocityChange)
	}
	s.Dbg.Notify(DebugModeDrive, true, "left ground with flat velocity %v", game.RoundVec32(flat, 3))
	s.OnLeaveGround.Fire()
}

func (s *System) land() {
	s.landVelocity = s.fallVelocity
	s.fallVelocity = 0
	s.Dbg.Notify(DebugModeDrive, true, "landed at %v (vel=%v hard=%v)", game.RoundVec32(s.contact.Position, 3), s.landVelocity, s.HardLanding())
	s.OnLand.Fire()
}

// trackFall records the fastest downward velocity of the body while it is airborn.
func (s *System) trackFall(vel mgl32.Vec3) {
	if s.state == Airborn && vel.Y() < s.fallVelocity {
		s.fallVelocity = vel.Y()
	}
}
