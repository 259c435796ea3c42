package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/footing/foot"
	"github.com/oomph-ac/footing/recording"
	"github.com/oomph-ac/footing/settings"
	"github.com/oomph-ac/footing/simulation"
	"github.com/oomph-ac/footing/world"
	"github.com/oomph-ac/footing/worker"
)

var groundLayer = foot.Layer(0)

// The following program runs a handful of scripted characters through a small test scene and reports
// where they ended up.
func main() {
	level := slog.LevelInfo
	if os.Getenv("FOOTSIM_DEBUG") != "" {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.Error("unable to initialize sentry", "error", err)
		}
		defer sentry.Flush(2 * time.Second)
	}
	if addr := os.Getenv("STATSVIEW_ADDR"); addr != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(addr))
		go statsview.New().Start()
	}

	s, err := loadSettings(log)
	if err != nil {
		log.Error("unable to load settings", "error", err)
		os.Exit(1)
	}
	opts, err := s.Options()
	if err != nil {
		log.Error("invalid controller settings", "error", err)
		os.Exit(1)
	}
	opts.Logger = log

	w := buildScene(log)
	scripts := []script{
		{name: "walker", start: mgl32.Vec3{0, 0, -6}, run: walkAndTurn},
		{name: "runner", start: mgl32.Vec3{-6, 0, -6}, run: runAndJump},
		{name: "climber", start: mgl32.Vec3{3, 0, -2}, run: climbRamp},
		{name: "traveller", start: mgl32.Vec3{6, 3, 6}, run: travel},
	}

	jobs := make([]func(), len(scripts))
	for i, sc := range scripts {
		jobs[i] = func() { runScript(sc, w, s, opts, log) }
	}
	if err := worker.Wait(jobs...); err != nil {
		log.Error("simulation failed", "error", err)
		os.Exit(1)
	}
}

func loadSettings(log *slog.Logger) (settings.Settings, error) {
	if len(os.Args) < 2 {
		return settings.DefaultSettings(), nil
	}
	path := os.Args[1]
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := settings.SaveDefault(path); err != nil {
			return settings.Settings{}, err
		}
		log.Info("created default settings file", "path", path)
	}
	return settings.Load(path)
}

// buildScene creates a floor with a gentle ramp, a steep ramp, a wall and a raised platform.
func buildScene(log *slog.Logger) *world.World {
	w := world.New(log)
	w.AddBox(cube.Box(-20, -1, -20, 20, 0, 20), groundLayer)
	w.AddRamp(world.NewRamp(mgl32.Vec3{2, 0, 0}, mgl32.Vec3{4, 1, 4}, cube.FaceSouth), groundLayer)
	w.AddRamp(world.NewRamp(mgl32.Vec3{-4, 0, 2}, mgl32.Vec3{-2, 3, 4}, cube.FaceSouth), groundLayer)
	w.AddBox(cube.Box(-8, 0, 8, 8, 2, 9), groundLayer)
	w.AddBox(cube.Box(4, 0, 4, 8, 3, 8), groundLayer)
	return w
}

type script struct {
	name  string
	start mgl32.Vec3
	run   func(r *simulation.Runner, s settings.Settings, frame int) bool
}

func runScript(sc script, w *world.World, s settings.Settings, opts foot.Options, log *slog.Logger) {
	log = log.With("character", sc.name)
	opts.Logger = log

	body := simulation.NewBody(sc.start, s.BodyConfig())
	sys := foot.New(w, opts)
	if err := sys.Init(body, nil, body, groundLayer); err != nil {
		log.Error("unable to initialise controller", "error", err)
		return
	}
	defer sys.Close()

	var lands int
	sys.OnLand.Subscribe(func() {
		lands++
		log.Info("landed", "pos", body.Position(), "velocity", sys.LandVelocity(), "hard", sys.HardLanding())
	})
	sys.OnJump.Subscribe(func() {
		log.Debug("jumped", "impulse", sys.JumpImpulse())
	})

	r := simulation.NewRunner(sys, body, w, float32(s.Simulation.TickDelta), log)
	r.Recorder = recording.NewRecorder(max(s.Simulation.Frames, 1))

	frames := 0
	for ; frames < s.Simulation.Frames; frames++ {
		if !sc.run(r, s, frames) {
			break
		}
	}

	sum := recording.Summarize(r.Recorder.Frames())
	log.Info(
		"finished",
		"frames", frames,
		"ticks", r.Tick(),
		"lands", lands,
		"grounded", sum.States[foot.Grounded],
		"airborn", sum.States[foot.Airborn],
		"meanSpeed", sum.MeanHorizontalSpeed,
		"maxSpeed", sum.MaxHorizontalSpeed,
		"distance", sum.Distance,
		"state", sys.String(),
		"digest", fmt.Sprintf("%016x", r.Recorder.Digest()),
	)
}

func walkAndTurn(r *simulation.Runner, s settings.Settings, frame int) bool {
	dt := float32(s.Simulation.FrameDelta)
	in := foot.Input{TargetSpeed: float32(s.Simulation.WalkSpeed), Axial: 1}
	if (frame/60)%2 == 1 {
		in.Rotation = float32(s.Simulation.RotationSpeed) * dt
	}
	r.Frame(dt, in)
	return true
}

func runAndJump(r *simulation.Runner, s settings.Settings, frame int) bool {
	dt := float32(s.Simulation.FrameDelta)
	if frame%45 == 0 {
		r.Jump()
	}
	r.Frame(dt, foot.Input{TargetSpeed: float32(s.Simulation.RunSpeed), Axial: 1, Lateral: 0.3})
	return true
}

func climbRamp(r *simulation.Runner, s settings.Settings, frame int) bool {
	dt := float32(s.Simulation.FrameDelta)
	in := foot.Input{TargetSpeed: float32(s.Simulation.WalkSpeed) * 0.5}
	if frame < 90 {
		in.Axial = 1
	}
	r.Frame(dt, in)
	return frame < 150
}

func travel(r *simulation.Runner, s settings.Settings, _ int) bool {
	dt := float32(s.Simulation.FrameDelta)
	return !r.TravelFrame(dt, mgl32.Vec3{-6, 0, 0}, 0.5, float32(s.Simulation.WalkSpeed), float32(s.Simulation.RotationSpeed))
}
