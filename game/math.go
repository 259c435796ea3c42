package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	// Up is the world up axis.
	Up = mgl32.Vec3{0, 1, 0}
	// Down is the world down axis.
	Down = mgl32.Vec3{0, -1, 0}
	// Forward is the axis a frame with identity rotation faces.
	Forward = mgl32.Vec3{0, 0, 1}
	// Right is the right-hand axis of a frame with identity rotation.
	Right = mgl32.Vec3{1, 0, 0}
)

// FlatVec returns the given vector with its vertical component removed.
func FlatVec(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v[0], 0, v[2]}
}

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(vec3 mgl32.Vec3) float32 {
	return vec3.X()*vec3.X() + vec3.Z()*vec3.Z()
}

// Vec3HzDist returns the horizontal distance in a vector.
func Vec3HzDist(vec3 mgl32.Vec3) float32 {
	return math32.Sqrt(Vec3HzDistSqr(vec3))
}

// Normalize returns the unit vector pointing in the direction of v. Vectors too short to have a
// meaningful direction normalize to the zero vector instead of NaN.
func Normalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l <= NormalizeEpsilon {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

// ClampMagnitude returns v scaled down so that its length does not exceed max.
func ClampMagnitude(v mgl32.Vec3, max float32) mgl32.Vec3 {
	if v.LenSqr() > max*max {
		return Normalize(v).Mul(max)
	}
	return v
}

// ProjectOnPlane projects v onto the plane with the given normal. The normal does not need to be
// normalized. A zero normal leaves v unchanged.
func ProjectOnPlane(v, normal mgl32.Vec3) mgl32.Vec3 {
	sqrLen := normal.Dot(normal)
	if sqrLen < NormalizeEpsilon*NormalizeEpsilon {
		return v
	}
	return v.Sub(normal.Mul(v.Dot(normal) / sqrLen))
}

// RotateAbout rotates v around axis by the given amount of degrees.
func RotateAbout(v, axis mgl32.Vec3, degrees float32) mgl32.Vec3 {
	axis = Normalize(axis)
	if axis.LenSqr() == 0 {
		return v
	}
	return mgl32.QuatRotate(mgl32.DegToRad(degrees), axis).Rotate(v)
}

// Angle returns the unsigned angle in degrees between two vectors.
func Angle(from, to mgl32.Vec3) float32 {
	denominator := math32.Sqrt(from.LenSqr() * to.LenSqr())
	if denominator < 1e-15 {
		return 0
	}
	dot := ClampFloat(from.Dot(to)/denominator, -1, 1)
	return mgl32.RadToDeg(math32.Acos(dot))
}

// SignedAngle returns the angle in degrees between from and to, signed by the rotation direction
// around axis.
func SignedAngle(from, to, axis mgl32.Vec3) float32 {
	angle := Angle(from, to)
	if axis.Dot(from.Cross(to)) < 0 {
		return -angle
	}
	return angle
}

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float32) float32 {
	if num < min {
		return min
	}
	return math32.Min(num, max)
}

// Round32 will round a float32 to a given precision.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}

// RoundVec32 will round a 32-bit vector to a given precision.
func RoundVec32(v mgl32.Vec3, p int) mgl32.Vec3 {
	return mgl32.Vec3{Round32(v.X(), p), Round32(v.Y(), p), Round32(v.Z(), p)}
}

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// Vec3ApproxEq determines whether two vectors are equal within the given threshold on every axis.
func Vec3ApproxEq(a, b mgl32.Vec3, threshold float32) bool {
	return math32.Abs(a[0]-b[0]) <= threshold &&
		math32.Abs(a[1]-b[1]) <= threshold &&
		math32.Abs(a[2]-b[2]) <= threshold
}
