package foot

import (
	"context"
	"fmt"
	"log/slog"
)

// DebugMode is a category of debug output that can be toggled separately.
type DebugMode int

const (
	DebugModeClassify DebugMode = iota
	DebugModeDrive
	DebugModeJump
	debugModeCount
)

func (m DebugMode) String() string {
	switch m {
	case DebugModeClassify:
		return "classify"
	case DebugModeDrive:
		return "drive"
	case DebugModeJump:
		return "jump"
	default:
		return fmt.Sprintf("DebugMode(%d)", int(m))
	}
}

// DebugModeByName returns the debug mode with the given name, as returned by DebugMode.String.
func DebugModeByName(name string) (DebugMode, bool) {
	for m := DebugMode(0); m < debugModeCount; m++ {
		if m.String() == name {
			return m, true
		}
	}
	return 0, false
}

// Debugger writes debug lines to a logger for the modes that are enabled.
type Debugger struct {
	log   *slog.Logger
	modes [debugModeCount]bool
}

// Toggle enables or disables the given mode.
func (d *Debugger) Toggle(mode DebugMode, enabled bool) {
	if mode < 0 || mode >= debugModeCount {
		return
	}
	d.modes[mode] = enabled
}

// Enabled returns true if output for the mode would be written.
func (d *Debugger) Enabled(mode DebugMode) bool {
	if mode < 0 || mode >= debugModeCount {
		return false
	}
	return d.modes[mode] && d.log.Enabled(context.Background(), slog.LevelDebug)
}

// Notify logs the formatted message if cond is true and the mode is enabled.
func (d *Debugger) Notify(mode DebugMode, cond bool, format string, args ...any) {
	if !cond || !d.Enabled(mode) {
		return
	}
	d.log.Debug(fmt.Sprintf(format, args...), "mode", mode.String())
}
