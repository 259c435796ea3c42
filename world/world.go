package world

import (
	"io"
	"log/slog"
	"sync"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/footing/assert"
	"github.com/oomph-ac/footing/foot"
	"github.com/oomph-ac/footing/game"
)

type box struct {
	bb    cube.BBox
	layer foot.Mask
}

type ramp struct {
	r     Ramp
	layer foot.Mask
}

// World is a static scene made of axis aligned boxes and ramps. It answers the ground queries of a
// foot.System and provides the collision geometry bodies are stepped against. A World is safe for
// concurrent use, so that multiple characters may share it.
type World struct {
	boxes []box
	ramps []ramp
	log   *slog.Logger

	mu sync.RWMutex
}

// New returns an empty World. A nil logger discards log output.
func New(log *slog.Logger) *World {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &World{log: log}
}

// AddBox adds solid box geometry to the given layers. It panics if the box has no volume.
func (w *World) AddBox(bb cube.BBox, layer foot.Mask) {
	assert.IsTrue(!game.BBHasZeroVolume(bb), "box %v has no volume", bb)

	w.mu.Lock()
	w.boxes = append(w.boxes, box{bb: bb, layer: layer})
	w.mu.Unlock()
	w.log.Debug("added box", "min", bb.Min(), "max", bb.Max(), "layer", layer)
}

// AddRamp adds a ramp to the given layers.
func (w *World) AddRamp(r Ramp, layer foot.Mask) {
	w.mu.Lock()
	w.ramps = append(w.ramps, ramp{r: r, layer: layer})
	w.mu.Unlock()
	w.log.Debug("added ramp", "min", r.min, "max", r.max, "normal", r.normal, "layer", layer)
}

// BoxesNear appends all boxes in mask that intersect bb to dst and returns the extended slice.
func (w *World) BoxesNear(dst []cube.BBox, bb cube.BBox, mask foot.Mask) []cube.BBox {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for _, b := range w.boxes {
		if mask.Has(b.layer) && b.bb.IntersectsWith(bb) {
			dst = append(dst, b.bb)
		}
	}
	return dst
}

// Ramps returns all ramps in mask.
func (w *World) Ramps(mask foot.Mask) []Ramp {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var list []Ramp
	for _, r := range w.ramps {
		if mask.Has(r.layer) {
			list = append(list, r.r)
		}
	}
	return list
}

// Len returns the amount of boxes and ramps in the world.
func (w *World) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.boxes) + len(w.ramps)
}

// Clear removes all geometry from the world.
func (w *World) Clear() {
	w.mu.Lock()
	n := len(w.boxes) + len(w.ramps)
	w.boxes, w.ramps = nil, nil
	w.mu.Unlock()
	w.log.Info("cleared world", "removed", n)
}
