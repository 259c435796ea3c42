package simulation

import (
	"io"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/footing/assert"
	"github.com/oomph-ac/footing/foot"
	"github.com/oomph-ac/footing/recording"
)

// maxTicksPerFrame bounds the amount of fixed ticks a single long frame can run, so that a stalled host
// does not spiral into running ever more ticks.
const maxTicksPerFrame = 10

// Runner drives a foot.System and the Body it controls the way a game loop does: every rendered frame
// the input is applied, zero or more fixed physics ticks are run, and the ground is then classified.
type Runner struct {
	System *foot.System
	Body   *Body
	// Recorder, if set, receives the state of the character at the end of every frame.
	Recorder *recording.Recorder

	geo       Geometry
	tickDelta float32
	log       *slog.Logger

	accumulator float32
	tick        uint64
}

// NewRunner returns a Runner stepping the body against geo every tickDelta seconds. A nil logger
// discards log output.
func NewRunner(sys *foot.System, body *Body, geo Geometry, tickDelta float32, log *slog.Logger) *Runner {
	assert.Positive(tickDelta, "tick delta")
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{
		System:    sys,
		Body:      body,
		geo:       geo,
		tickDelta: tickDelta,
		log:       log,
	}
}

// Tick returns the amount of fixed ticks run so far.
func (r *Runner) Tick() uint64 {
	return r.tick
}

// TickDelta returns the length of a fixed tick in seconds.
func (r *Runner) TickDelta() float32 {
	return r.tickDelta
}

// Jump makes the character jump if it is standing on stable ground, and returns true if it did.
func (r *Runner) Jump() bool {
	if r.System.State() != foot.Grounded {
		return false
	}
	r.System.Jump()
	return true
}

// Frame runs a single rendered frame that took frameDelta seconds, and returns the amount of fixed ticks
// that were run during it.
func (r *Runner) Frame(frameDelta float32, in foot.Input) int {
	r.System.SetInput(in)
	return r.advance(frameDelta)
}

// TravelFrame runs a single rendered frame in which the character steers toward goal instead of
// following input. It returns true once the goal is within threshold.
func (r *Runner) TravelFrame(frameDelta float32, goal mgl32.Vec3, threshold, speed, rotSpeed float32) bool {
	reached := r.System.TravelToward(goal, threshold, speed, rotSpeed, frameDelta)
	r.advance(frameDelta)
	return reached
}

func (r *Runner) advance(frameDelta float32) int {
	r.accumulator += frameDelta
	var ticks int
	for r.accumulator >= r.tickDelta && ticks < maxTicksPerFrame {
		r.System.FixedUpdate(r.tickDelta)
		r.Body.Step(r.tickDelta, r.geo)
		r.accumulator -= r.tickDelta
		r.tick++
		ticks++
	}
	if ticks == maxTicksPerFrame && r.accumulator >= r.tickDelta {
		r.log.Warn("frame took too long, dropping ticks", "frameDelta", frameDelta, "dropped", int(r.accumulator/r.tickDelta))
		r.accumulator = 0
	}

	r.System.Update(frameDelta)
	if r.Recorder != nil {
		r.Recorder.Add(recording.Frame{
			Tick:            r.tick,
			State:           r.System.State(),
			Position:        r.Body.Position(),
			Velocity:        r.Body.Velocity(),
			Normal:          r.System.GroundNormal(),
			HorizontalSpeed: r.System.HorizontalSpeed(),
		})
	}
	return ticks
}
