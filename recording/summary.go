package recording

import (
	"github.com/oomph-ac/footing/foot"
	"github.com/oomph-ac/footing/game"
)

// Summary describes a run of recorded frames.
type Summary struct {
	Frames int
	// States holds the amount of frames spent in each foot state.
	States map[foot.State]int

	MeanHorizontalSpeed   float32
	MaxHorizontalSpeed    float32
	HorizontalSpeedStdDev float32
	// Distance is the total distance travelled between consecutive frames.
	Distance float32
}

// Summarize returns a Summary of the frames passed.
func Summarize(frames []Frame) Summary {
	s := Summary{Frames: len(frames), States: make(map[foot.State]int, 3)}
	speeds := make([]float32, len(frames))
	for i, f := range frames {
		s.States[f.State]++
		speeds[i] = f.HorizontalSpeed
		if i > 0 {
			s.Distance += f.Position.Sub(frames[i-1].Position).Len()
		}
	}
	s.MeanHorizontalSpeed = game.Mean(speeds)
	s.MaxHorizontalSpeed = game.Max(speeds)
	s.HorizontalSpeedStdDev = game.StandardDeviation(speeds)
	return s
}
