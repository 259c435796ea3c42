package foot

import (
	"strings"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/footing/game"
)

func TestInitRequiresHandles(t *testing.T) {
	s := New(&fakeQuery{}, DefaultOptions())
	if err := s.Init(nil, nil, nil, Layer(0)); err != ErrNotConfigured {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if s.Valid() {
		t.Fatal("expected system to be invalid")
	}

	// None of these may panic on an invalid system.
	s.SetInput(Input{TargetSpeed: 5, Axial: 1, Rotation: 10})
	s.FixedUpdate(0.02)
	s.Update(0.02)
	s.Jump()
	if s.TravelToward(mgl32.Vec3{1, 0, 1}, 0.5, 5, 90, 0.02) {
		t.Fatal("expected invalid system to never reach a goal")
	}
	if s.Classified() || s.JustJumped() {
		t.Fatal("expected invalid system to not change state")
	}
}

func TestInitialState(t *testing.T) {
	s, _, _, _ := newTestSystem(DefaultOptions())
	if s.State() != Airborn || s.Classified() {
		t.Fatalf("expected unclassified airborn state, got %v (classified=%v)", s.State(), s.Classified())
	}
	if s.GroundNormal() != game.Up {
		t.Fatalf("expected initial ground normal up, got %v", s.GroundNormal())
	}
}

func TestRest(t *testing.T) {
	s, _, _, body := newTestSystem(DefaultOptions())
	s.Update(0.02)
	if s.State() != Grounded {
		t.Fatalf("expected grounded, got %v", s.State())
	}

	s.SetInput(Input{TargetSpeed: game.DefaultWalkSpeed})
	s.FixedUpdate(0.02)
	if len(body.forces) != 0 || body.moveTo != nil {
		t.Fatalf("expected no forces at rest, got %v (moveTo=%v)", body.forces, body.moveTo)
	}
	if s.CounterForce() != (mgl32.Vec3{}) {
		t.Fatalf("expected no counter force, got %v", s.CounterForce())
	}
}

func TestJumpAtZeroSpeed(t *testing.T) {
	s, _, _, body := newTestSystem(DefaultOptions())
	s.Update(0.02)
	body.vel = mgl32.Vec3{0, -2, 0}

	var jumps int
	s.OnJump.Subscribe(func() { jumps++ })
	s.SetInput(Input{TargetSpeed: 5, Axial: 1})
	s.Jump()

	if len(body.forces) != 1 {
		t.Fatalf("expected a single impulse, got %v", body.forces)
	}
	f := body.forces[0]
	if f.mode != ForceModeImpulse || f.force != (mgl32.Vec3{0, game.DefaultJumpForce, 0}) {
		t.Fatalf("expected pure upward impulse, got %v (mode=%v)", f.force, f.mode)
	}
	if body.vel.Y() != 0 {
		t.Fatalf("expected vertical velocity to be cancelled, got %v", body.vel)
	}
	if jumps != 1 || !s.JustJumped() {
		t.Fatalf("expected jump hook and flag, got jumps=%v justJumped=%v", jumps, s.JustJumped())
	}

	s.Update(0.02)
	if s.JustJumped() {
		t.Fatal("expected just jumped flag to be cleared by update")
	}
}

func TestJumpHorizontalBias(t *testing.T) {
	s, _, frame, body := newTestSystem(DefaultOptions())
	s.Update(0.02)
	frame.pos = mgl32.Vec3{0, 0, 0.1}
	s.Update(0.02)
	if !game.Float32ApproxEq(s.HorizontalSpeed(), 5) {
		t.Fatalf("expected horizontal speed 5, got %v", s.HorizontalSpeed())
	}

	s.SetInput(Input{TargetSpeed: 2, Axial: 1})
	s.Jump()
	want := mgl32.Vec3{0, game.DefaultJumpForce, 2 * game.DefaultHorizontalJumpBias}
	if !game.Vec3ApproxEq(body.forces[0].force, want, 1e-4) {
		t.Fatalf("expected impulse %v, got %v", want, body.forces[0].force)
	}
}

func TestSpeedReadings(t *testing.T) {
	s, _, frame, _ := newTestSystem(DefaultOptions())
	s.Update(0.02)
	frame.pos = mgl32.Vec3{0.06, 0.08, 0}
	s.Update(0.02)

	if !game.Float32ApproxEq(s.Speed(), 5) {
		t.Fatalf("expected speed 5, got %v", s.Speed())
	}
	if !game.Float32ApproxEq(s.HorizontalSpeed(), 3) {
		t.Fatalf("expected horizontal speed 3, got %v", s.HorizontalSpeed())
	}

	// A zero frame delta must not produce a reading.
	frame.pos = mgl32.Vec3{10, 0, 0}
	s.Update(0)
	if !game.Float32ApproxEq(s.Speed(), 5) {
		t.Fatalf("expected speed to be kept on zero delta, got %v", s.Speed())
	}
}

func TestAirborneDamping(t *testing.T) {
	tests := []struct {
		name      string
		flatSpeed float32
		alignment float32
		want      float32
	}{
		{"below cap", 3, 1, 1},
		{"aligned above cap", 7, 1, 0},
		{"half aligned above cap", 7, 0.5, 0.5},
		{"perpendicular above cap", 7, 0, 1},
		{"opposed above cap", 7, -1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AirborneDamping(tt.flatSpeed, game.DefaultMaxFlatAirborneSpeed, tt.alignment); !game.Float32ApproxEq(got, tt.want) {
				t.Fatalf("expected damping %v, got %v", tt.want, got)
			}
		})
	}
}

func TestAirborneSteering(t *testing.T) {
	s, q, _, body := newTestSystem(DefaultOptions())
	q.air()
	s.Update(0.02)
	s.SetInput(Input{TargetSpeed: 5, Axial: 1})
	s.FixedUpdate(0.02)

	if len(body.forces) != 1 || body.moveTo != nil {
		t.Fatalf("expected a single steering force, got %v (moveTo=%v)", body.forces, body.moveTo)
	}
	want := mgl32.Vec3{0, 0, game.DefaultAirborneForce * game.AirborneForceScale * 0.02}
	if f := body.forces[0]; f.mode != ForceModeAcceleration || !game.Vec3ApproxEq(f.force, want, 1e-4) {
		t.Fatalf("expected acceleration %v, got %v (mode=%v)", want, f.force, f.mode)
	}

	body.reset()
	body.vel = mgl32.Vec3{0, 0, 7}
	s.FixedUpdate(0.02)
	if f := body.forces[0]; !game.Vec3ApproxEq(f.force, mgl32.Vec3{}, 1e-4) {
		t.Fatalf("expected steering along travel above cap to be cancelled, got %v", f.force)
	}
}

func TestGroundedWalk(t *testing.T) {
	s, _, _, body := newTestSystem(DefaultOptions())
	s.Update(0.02)
	s.SetInput(Input{TargetSpeed: 5, Axial: 1})
	s.FixedUpdate(0.02)

	if body.moveTo == nil || !game.Vec3ApproxEq(*body.moveTo, mgl32.Vec3{0, 0, 0.1}, 1e-5) {
		t.Fatalf("expected move to (0, 0, 0.1), got %v", body.moveTo)
	}
}

func TestSlopeWalk(t *testing.T) {
	s, q, _, body := newTestSystem(DefaultOptions())
	q.ground(mgl32.Vec3{0, 0.8, 0.6})
	s.Update(0.02)
	if s.State() != Sliding {
		t.Fatalf("expected sliding, got %v", s.State())
	}

	s.SetInput(Input{TargetSpeed: 5, Axial: 1})
	s.FixedUpdate(0.02)
	if body.moveTo == nil || !game.Vec3ApproxEq(*body.moveTo, mgl32.Vec3{0, -0.06, 0.08}, 1e-5) {
		t.Fatalf("expected move along slope to (0, -0.06, 0.08), got %v", body.moveTo)
	}
	for _, f := range body.forces {
		if f.mode == ForceModeForce {
			t.Fatalf("expected no momentum resistance while sliding, got %v", f.force)
		}
	}
}

func TestMomentumResistance(t *testing.T) {
	s, _, _, body := newTestSystem(DefaultOptions())
	s.Update(0.02)

	body.vel = mgl32.Vec3{3, -1, 0}
	s.FixedUpdate(0.02)
	if !game.Float32ApproxEq(s.CounterForce().Len(), game.DefaultMomentumResistance) {
		t.Fatalf("expected counter force clamped to %v, got %v", game.DefaultMomentumResistance, s.CounterForce())
	}
	if len(body.forces) != 1 || body.forces[0].mode != ForceModeForce {
		t.Fatalf("expected a single continuous force, got %v", body.forces)
	}
	if !game.Vec3ApproxEq(body.forces[0].force, mgl32.Vec3{-400, 0, 0}, 1e-2) {
		t.Fatalf("expected force (-400, 0, 0), got %v", body.forces[0].force)
	}

	body.reset()
	body.vel = mgl32.Vec3{0.04, 0, 0}
	s.FixedUpdate(0.02)
	if len(body.forces) != 0 || s.CounterForce() != (mgl32.Vec3{}) {
		t.Fatalf("expected no resistance inside the deadzone, got %v", body.forces)
	}

	body.reset()
	body.vel = mgl32.Vec3{0.1, 0, 0}
	s.FixedUpdate(0.02)
	if !game.Vec3ApproxEq(s.CounterForce(), mgl32.Vec3{-0.1, 0, 0}, 1e-6) {
		t.Fatalf("expected unclamped counter force, got %v", s.CounterForce())
	}
}

func TestLandFiresOnce(t *testing.T) {
	s, q, _, _ := newTestSystem(DefaultOptions())

	var lands, leaves int
	s.OnLand.Subscribe(func() { lands++ })
	s.OnLeaveGround.Subscribe(func() { leaves++ })

	q.air()
	s.Update(0.02)
	if leaves != 0 || lands != 0 {
		t.Fatalf("expected no hooks on first classification, got lands=%v leaves=%v", lands, leaves)
	}

	q.ground(game.Up)
	for range 5 {
		s.Update(0.02)
	}
	if lands != 1 {
		t.Fatalf("expected exactly one land, got %v", lands)
	}

	q.air()
	s.Update(0.02)
	s.Update(0.02)
	if leaves != 1 {
		t.Fatalf("expected exactly one leave, got %v", leaves)
	}
}

func TestExitImpulse(t *testing.T) {
	s, q, _, body := newTestSystem(DefaultOptions())
	s.Update(0.02)

	body.vel = mgl32.Vec3{2, 1, 1}
	q.air()
	s.Update(0.02)
	if len(body.forces) != 1 || body.forces[0].mode != ForceModeVelocityChange {
		t.Fatalf("expected a single velocity change, got %v", body.forces)
	}
	want := mgl32.Vec3{2, 0, 1}.Normalize()
	if !game.Vec3ApproxEq(body.forces[0].force, want, 1e-5) {
		t.Fatalf("expected exit impulse %v, got %v", want, body.forces[0].force)
	}
}

func TestExitImpulseSkippedWithoutFlatVelocity(t *testing.T) {
	s, q, _, body := newTestSystem(DefaultOptions())
	s.Update(0.02)

	body.vel = mgl32.Vec3{0, -3, 0}
	q.air()
	s.Update(0.02)
	if len(body.forces) != 0 {
		t.Fatalf("expected no exit impulse, got %v", body.forces)
	}
}

func TestHardLanding(t *testing.T) {
	s, q, _, body := newTestSystem(DefaultOptions())
	s.Update(0.02)
	q.air()
	s.Update(0.02)

	for _, y := range []float32{-2, -10, -6} {
		body.vel = mgl32.Vec3{0, y, 0}
		s.FixedUpdate(0.02)
	}
	q.ground(game.Up)
	s.Update(0.02)

	if s.LandVelocity() != -10 || !s.HardLanding() {
		t.Fatalf("expected hard landing at -10, got %v (hard=%v)", s.LandVelocity(), s.HardLanding())
	}

	// A short hop afterwards is not a hard landing.
	q.air()
	s.Update(0.02)
	body.vel = mgl32.Vec3{0, -3, 0}
	s.FixedUpdate(0.02)
	q.ground(game.Up)
	s.Update(0.02)
	if s.HardLanding() {
		t.Fatalf("expected soft landing, got %v", s.LandVelocity())
	}
}

func TestImmediateRotation(t *testing.T) {
	s, _, frame, _ := newTestSystem(DefaultOptions())
	s.SetInput(Input{Rotation: 90, Axial: 1, TargetSpeed: 1})

	if !game.Vec3ApproxEq(frame.Forward(), game.Right, 1e-5) {
		t.Fatalf("expected to face right, got %v", frame.Forward())
	}
	if !game.Vec3ApproxEq(s.MoveInput(), game.Forward, 1e-6) {
		t.Fatalf("expected move input along the forward before the turn, got %v", s.MoveInput())
	}

	s.SetInput(Input{Axial: 1, TargetSpeed: 1})
	if !game.Vec3ApproxEq(s.MoveInput(), game.Right, 1e-5) {
		t.Fatalf("expected next input to use the turned forward, got %v", s.MoveInput())
	}
}

func TestDeferredRotation(t *testing.T) {
	opts := DefaultOptions()
	opts.Rotation = RotationDeferred
	s, _, frame, _ := newTestSystem(opts)
	s.Update(0.02)

	s.SetInput(Input{Rotation: 90, Axial: 1})
	if !game.Vec3ApproxEq(frame.Forward(), game.Forward, 1e-6) {
		t.Fatalf("expected deferred rotation to wait for a tick, got %v", frame.Forward())
	}
	s.FixedUpdate(0.5)
	half := math32.Sqrt(0.5)
	if !game.Vec3ApproxEq(frame.Forward(), mgl32.Vec3{half, 0, half}, 1e-5) {
		t.Fatalf("expected 45 degree turn, got %v", frame.Forward())
	}
	if !game.Vec3ApproxEq(s.MoveInput(), game.Forward, 1e-6) {
		t.Fatalf("expected move input to be kept across ticks, got %v", s.MoveInput())
	}

	s.SetInput(Input{Axial: 1})
	if !game.Vec3ApproxEq(s.MoveInput(), mgl32.Vec3{half, 0, half}, 1e-5) {
		t.Fatalf("expected next input to use the turned forward, got %v", s.MoveInput())
	}
}

func TestPerspectiveBasis(t *testing.T) {
	opts := DefaultOptions()
	opts.Basis = BasisPerspective
	s, _, _, _ := newTestSystem(opts)

	s.SetInput(Input{Axial: 1, Lateral: -0.5, Forward: game.Right, Right: mgl32.Vec3{0, 0, -1}})
	if !game.Vec3ApproxEq(s.MoveInput(), mgl32.Vec3{1, 0, 0.5}, 1e-6) {
		t.Fatalf("expected move relative to passed basis, got %v", s.MoveInput())
	}
	if s.MoveMagnitude() != 1 {
		t.Fatalf("expected move magnitude 1, got %v", s.MoveMagnitude())
	}
}

func TestTravelToward(t *testing.T) {
	s, _, frame, _ := newTestSystem(DefaultOptions())

	if s.TravelToward(mgl32.Vec3{10, 0, 0}, 1, 5, 90, 0.5) {
		t.Fatal("expected goal to not be reached")
	}
	half := math32.Sqrt(0.5)
	if !game.Vec3ApproxEq(frame.Forward(), mgl32.Vec3{half, 0, half}, 1e-5) {
		t.Fatalf("expected turn limited to 45 degrees, got %v", frame.Forward())
	}
	if s.MoveMagnitude() != 1 || s.TargetSpeed() != 5 {
		t.Fatalf("expected full forward input, got magnitude %v speed %v", s.MoveMagnitude(), s.TargetSpeed())
	}

	// The remaining 45 degrees fit within a single step.
	s.TravelToward(mgl32.Vec3{10, 0, 0}, 1, 5, 90, 1)
	if !game.Vec3ApproxEq(frame.Forward(), game.Right, 1e-4) {
		t.Fatalf("expected to face the goal, got %v", frame.Forward())
	}

	if !s.TravelToward(mgl32.Vec3{0.5, 0, 0}, 1, 5, 90, 0.5) {
		t.Fatal("expected goal within threshold to be reached")
	}
	if s.MoveMagnitude() != 0 {
		t.Fatalf("expected no movement once reached, got %v", s.MoveMagnitude())
	}
}

func TestTravelTowardBehind(t *testing.T) {
	s, _, frame, _ := newTestSystem(DefaultOptions())
	s.TravelToward(mgl32.Vec3{0, 0, -10}, 1, 5, 90, 0.5)
	if frame.Forward().X() <= 0 {
		t.Fatalf("expected a rightward turn when facing away, got %v", frame.Forward())
	}
}

func TestCloseClearsHooks(t *testing.T) {
	s, _, _, _ := newTestSystem(DefaultOptions())
	s.OnJump.Subscribe(func() {})
	s.OnLand.Subscribe(func() {})
	s.Close()

	if s.OnJump.Len() != 0 || s.OnLand.Len() != 0 || s.OnLeaveGround.Len() != 0 {
		t.Fatal("expected all listeners to be removed")
	}
	if s.Valid() {
		t.Fatal("expected closed system to be invalid")
	}
}

func TestDebugSnapshot(t *testing.T) {
	s, _, _, _ := newTestSystem(DefaultOptions())
	s.Update(0.02)

	str := s.String()
	if !strings.HasPrefix(str, "[state=grounded ") {
		t.Fatalf("unexpected debug string %q", str)
	}
	if s.Debug().Len() != 8 {
		t.Fatalf("expected 8 debug entries, got %v", s.Debug().Len())
	}
}

func TestProbeRadiusFromCollider(t *testing.T) {
	if got := ProbeRadiusFromCollider(0.5, 2); !game.Float32ApproxEq(got, 1.1) {
		t.Fatalf("expected 1.1, got %v", got)
	}
}
