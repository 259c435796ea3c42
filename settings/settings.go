package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/oomph-ac/footing/foot"
	"github.com/oomph-ac/footing/game"
	"github.com/oomph-ac/footing/oerror"
	"github.com/oomph-ac/footing/simulation"
	"github.com/pelletier/go-toml"
)

// Settings contains everything that can be configured for a character and the simulation driving it.
type Settings struct {
	Controller struct {
		MomentumResistance      float64
		GroundedNormalThreshold float64
		JumpForce               float64
		HorizontalJumpBias      float64
		AirborneForce           float64
		MaxFlatAirborneSpeed    float64
		LandSpeedThreshold      float64

		// ColliderRadius and ColliderScale size the ground probe.
		ColliderRadius float64
		ColliderScale  float64
		ProbeOffset    float64

		// Rotation is either "immediate" or "deferred".
		Rotation string
		// Basis is either "self" or "perspective".
		Basis string
		// DebugModes lists the debug output enabled on start, out of "classify", "drive" and "jump".
		DebugModes []string
	}
	Body struct {
		Mass    float64
		Width   float64
		Height  float64
		Gravity float64
	}
	Simulation struct {
		TickDelta     float64
		FrameDelta    float64
		Frames        int
		WalkSpeed     float64
		RunSpeed      float64
		RotationSpeed float64
	}
}

// DefaultSettings returns the default settings of a human sized character.
func DefaultSettings() Settings {
	s := Settings{}
	c := &s.Controller
	c.MomentumResistance = float64(game.DefaultMomentumResistance)
	c.GroundedNormalThreshold = float64(game.DefaultGroundedNormalThreshold)
	c.JumpForce = float64(game.DefaultJumpForce)
	c.HorizontalJumpBias = float64(game.DefaultHorizontalJumpBias)
	c.AirborneForce = float64(game.DefaultAirborneForce)
	c.MaxFlatAirborneSpeed = float64(game.DefaultMaxFlatAirborneSpeed)
	c.LandSpeedThreshold = float64(game.DefaultLandSpeedThreshold)
	c.ColliderRadius = float64(game.DefaultColliderRadius)
	c.ColliderScale = 1
	c.ProbeOffset = float64(game.DefaultProbeOffset)
	c.Rotation = "immediate"
	c.Basis = "self"
	c.DebugModes = []string{}

	s.Body.Mass = float64(game.DefaultBodyMass)
	s.Body.Width = float64(game.DefaultBodyWidth)
	s.Body.Height = float64(game.DefaultBodyHeight)
	s.Body.Gravity = float64(game.DefaultGravity)

	s.Simulation.TickDelta = float64(game.DefaultTickDelta)
	s.Simulation.FrameDelta = 1.0 / 60
	s.Simulation.Frames = 600
	s.Simulation.WalkSpeed = float64(game.DefaultWalkSpeed)
	s.Simulation.RunSpeed = float64(game.DefaultRunSpeed)
	s.Simulation.RotationSpeed = float64(game.DefaultRotationSpeed)
	return s
}

// Options returns the controller options described by the settings.
func (s Settings) Options() (foot.Options, error) {
	c := s.Controller
	opts := foot.Options{
		MomentumResistance:      float32(c.MomentumResistance),
		GroundedNormalThreshold: float32(c.GroundedNormalThreshold),
		JumpForce:               float32(c.JumpForce),
		HorizontalJumpBias:      float32(c.HorizontalJumpBias),
		AirborneForce:           float32(c.AirborneForce),
		MaxFlatAirborneSpeed:    float32(c.MaxFlatAirborneSpeed),
		LandSpeedThreshold:      float32(c.LandSpeedThreshold),
		ProbeRadius:             foot.ProbeRadiusFromCollider(float32(c.ColliderRadius), float32(c.ColliderScale)),
		ProbeOffset:             float32(c.ProbeOffset),
	}
	if opts.ProbeRadius <= 0 {
		return foot.Options{}, oerror.New("collider radius and scale must be positive (radius=%v scale=%v)", c.ColliderRadius, c.ColliderScale)
	}

	switch c.Rotation {
	case "immediate", "":
		opts.Rotation = foot.RotationImmediate
	case "deferred":
		opts.Rotation = foot.RotationDeferred
	default:
		return foot.Options{}, oerror.New("unknown rotation mode %q", c.Rotation)
	}
	switch c.Basis {
	case "self", "":
		opts.Basis = foot.BasisSelf
	case "perspective":
		opts.Basis = foot.BasisPerspective
	default:
		return foot.Options{}, oerror.New("unknown basis mode %q", c.Basis)
	}

	for _, name := range c.DebugModes {
		mode, ok := foot.DebugModeByName(name)
		if !ok {
			return foot.Options{}, oerror.New("unknown debug mode %q", name)
		}
		opts.DebugModes = append(opts.DebugModes, mode)
	}
	return opts, nil
}

// BodyConfig returns the configuration of the simulated body described by the settings.
func (s Settings) BodyConfig() simulation.BodyConfig {
	conf := simulation.DefaultBodyConfig()
	conf.Mass = float32(s.Body.Mass)
	conf.Width = float32(s.Body.Width)
	conf.Height = float32(s.Body.Height)
	conf.Gravity = float32(s.Body.Gravity)
	return conf
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return errors.New("settings file already exists")
	}
	data, err := toml.Marshal(DefaultSettings())
	if err != nil {
		return fmt.Errorf("failed encoding default settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed creating settings file: %w", err)
	}
	return nil
}

// Load will load the settings from your settings file, and return an error if the file does not exist.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading settings: %w", err)
	}

	settings := DefaultSettings()
	if err = toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("error decoding settings: %w", err)
	}
	return settings, nil
}
