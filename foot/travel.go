package foot

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/footing/game"
)

// TravelToward turns the orientation frame toward goal by at most rotSpeed*tickDelta degrees and sets
// input to walk forward at speed until the root frame is within threshold of the goal on the horizontal
// plane. It returns true once the goal is reached. It is a steering helper only: obstacles are not
// avoided.
func (s *System) TravelToward(goal mgl32.Vec3, threshold, speed, rotSpeed, tickDelta float32) bool {
	if !s.Valid() {
		return false
	}

	offset := game.FlatVec(goal.Sub(s.root.Position()))
	reached := offset.Len() <= threshold
	if !reached {
		s.faceToward(offset, rotSpeed*tickDelta)
	}

	var axial float32
	if !reached {
		axial = 1
	}
	s.SetInput(Input{
		TargetSpeed: speed,
		Axial:       axial,
		Forward:     s.orientation.Forward(),
		Right:       s.orientation.Right(),
	})
	return reached
}

func (s *System) faceToward(dir mgl32.Vec3, maxStep float32) {
	up := s.orientation.Up()
	forward := game.Normalize(game.ProjectOnPlane(s.orientation.Forward(), up))
	dir = game.Normalize(game.ProjectOnPlane(dir, up))
	if forward.LenSqr() == 0 || dir.LenSqr() == 0 {
		return
	}

	var step float32
	if forward.Dot(dir) < game.FacingAwayDot {
		step = maxStep
	} else {
		angle := game.SignedAngle(forward, dir, up)
		step = game.ClampFloat(angle, -maxStep, maxStep)
	}
	if step != 0 {
		s.orientation.Rotate(up, step)
	}
}
