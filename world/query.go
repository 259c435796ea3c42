package world

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/footing/foot"
	"github.com/oomph-ac/footing/game"
	"github.com/oomph-ac/footing/utils"
)

// Overlaps returns true if a sphere at center touches any box or ramp in mask.
func (w *World) Overlaps(center mgl32.Vec3, radius float32, mask foot.Mask) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for _, b := range w.boxes {
		if mask.Has(b.layer) && sphereIntersectsBox(center, radius, b.bb) {
			return true
		}
	}
	for _, r := range w.ramps {
		if mask.Has(r.layer) && sphereIntersectsRamp(center, radius, r.r) {
			return true
		}
	}
	return false
}

// Raycast returns the nearest surface in mask hit by the segment starting at origin. Geometry that
// contains the origin is ignored, as no surface of it can be hit from the outside.
func (w *World) Raycast(origin, dir mgl32.Vec3, maxDistance float32, mask foot.Mask) (foot.RaycastHit, bool) {
	dir = game.Normalize(dir)
	if dir.LenSqr() == 0 || maxDistance <= 0 {
		return foot.RaycastHit{}, false
	}
	end := origin.Add(dir.Mul(maxDistance))

	w.mu.RLock()
	defer w.mu.RUnlock()

	var (
		closest foot.RaycastHit
		found   bool
	)
	closest.Distance = math32.MaxFloat32

	for _, b := range w.boxes {
		if !mask.Has(b.layer) || game.AABBContains(b.bb, origin) {
			continue
		}
		res, ok := trace.BBoxIntercept(b.bb, origin, end)
		if !ok {
			continue
		}
		if dist := res.Position().Sub(origin).Len(); dist < closest.Distance {
			closest = foot.RaycastHit{Point: res.Position(), Normal: utils.FaceNormal(res.Face()), Distance: dist}
			found = true
		}
	}
	for _, r := range w.ramps {
		if !mask.Has(r.layer) {
			continue
		}
		if hit, ok := rayIntersectsRamp(origin, dir, maxDistance, r.r); ok && hit.Distance < closest.Distance {
			closest, found = hit, true
		}
	}
	return closest, found
}

func sphereIntersectsBox(center mgl32.Vec3, radius float32, bb cube.BBox) bool {
	return game.AABBVectorDistance(bb, center) <= radius
}

func sphereIntersectsRamp(center mgl32.Vec3, radius float32, r Ramp) bool {
	if !r.within(center.X(), center.Z()) {
		return false
	}
	return r.distance(center) <= radius && center.Y()+radius >= r.min.Y()
}

func rayIntersectsRamp(origin, dir mgl32.Vec3, maxDistance float32, r Ramp) (foot.RaycastHit, bool) {
	denom := dir.Dot(r.normal)
	dist := r.distance(origin)
	if denom >= 0 || dist < 0 {
		// Parallel to the surface, pointing away from it or starting inside the ramp.
		return foot.RaycastHit{}, false
	}
	t := -dist / denom
	if t > maxDistance {
		return foot.RaycastHit{}, false
	}
	point := origin.Add(dir.Mul(t))
	if !r.within(point.X(), point.Z()) {
		return foot.RaycastHit{}, false
	}
	return foot.RaycastHit{Point: point, Normal: r.normal, Distance: t}, true
}
