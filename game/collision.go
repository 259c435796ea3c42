package game

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

type clipResult struct {
	axis        int
	penetration float32
	clipped     mgl32.Vec3
	depenetrate mgl32.Vec3
}

// BBClipCollide clips the velocity of a moving bounding box so that it does not enter the stationary
// one. If the boxes already overlap, the velocity is instead adjusted to push the moving box out along
// the axis of least penetration, unless oneWay is set. The deepest penetration per axis is written to
// penetration when it is non-nil.
func BBClipCollide(stationary, moving cube.BBox, vel mgl32.Vec3, oneWay bool, penetration *mgl32.Vec3) mgl32.Vec3 {
	result := clipCollide(stationary, moving, vel)
	if penetration != nil && penetration[result.axis] < result.penetration {
		penetration[result.axis] = result.penetration
	}

	if oneWay {
		return result.clipped
	}
	return result.depenetrate
}

func clipCollide(stationary, moving cube.BBox, velocity mgl32.Vec3) (result clipResult) {
	result.clipped = velocity
	result.depenetrate = velocity

	if BBHasZeroVolume(stationary) {
		return
	}

	var (
		depths       [3]float32
		signedDepths [3]float32
		normals      [3]float32
	)
	separatingAxes, separatingAxis := 0, 0
	minDepth := float32(math32.MaxFloat32)

	for i := range 3 {
		lower := moving.Max()[i] - stationary.Min()[i]
		upper := stationary.Max()[i] - moving.Min()[i]
		if math32.Abs(lower) <= 1e-7 {
			lower = 0
		}
		if math32.Abs(upper) <= 1e-7 {
			upper = 0
		}

		lowerPos, upperPos := math32.Max(0, lower), math32.Max(0, upper)
		switch {
		case lowerPos == 0:
			signedDepths[i], normals[i] = lower, -1
			separatingAxes++
			separatingAxis = i
		case upperPos == 0:
			signedDepths[i], normals[i] = upper, 1
			separatingAxes++
			separatingAxis = i
		case lowerPos < upperPos:
			depths[i], signedDepths[i], normals[i] = lowerPos, lowerPos, -1
		default:
			depths[i], signedDepths[i], normals[i] = upperPos, upperPos, 1
		}

		if separatingAxes > 1 {
			return
		}
		minDepth = math32.Min(minDepth, depths[i])
	}

	// Overlapping on every axis: push out along the shallowest one.
	if separatingAxes == 0 {
		best := 0
		for i := 1; i < 3; i++ {
			if depths[i] < depths[best] {
				best = i
			}
		}
		result.axis = best
		result.penetration = minDepth

		desired := depths[best] * normals[best]
		if desired > 0 {
			result.depenetrate[best] = math32.Max(desired, velocity[best])
		} else {
			result.depenetrate[best] = math32.Min(desired, velocity[best])
		}
		return
	}

	swept := signedDepths[separatingAxis] - normals[separatingAxis]*velocity[separatingAxis]
	if swept <= 0 {
		return
	}

	resolved := signedDepths[separatingAxis] * normals[separatingAxis]
	result.clipped[separatingAxis] = resolved
	result.depenetrate[separatingAxis] = resolved
	return
}

// BBHasZeroVolume returns true if the bounding box has zero volume.
func BBHasZeroVolume(bb cube.BBox) bool {
	return bb.Min() == bb.Max()
}
