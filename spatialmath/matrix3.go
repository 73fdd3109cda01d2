package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// SkewSymmetric returns the 3x3 matrix [v]x such that [v]x * u == v.Cross(u).
func SkewSymmetric(v r3.Vector) mgl64.Mat3 {
	return mgl64.Mat3FromRows(
		mgl64.Vec3{0, -v.Z, v.Y},
		mgl64.Vec3{v.Z, 0, -v.X},
		mgl64.Vec3{-v.Y, v.X, 0},
	)
}

// MulVec returns m * v.
func MulVec(m mgl64.Mat3, v r3.Vector) r3.Vector {
	return vec3ToR3(m.Mul3x1(r3ToVec3(v)))
}

// Mat3AlmostEqual compares two 3x3 matrices elementwise.
func Mat3AlmostEqual(a, b mgl64.Mat3, epsilon float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > epsilon {
			return false
		}
	}
	return true
}

// Mat3FromRowMajor builds a 3x3 matrix from 9 row-major values.
func Mat3FromRowMajor(m [9]float64) mgl64.Mat3 {
	return mgl64.Mat3FromRows(
		mgl64.Vec3{m[0], m[1], m[2]},
		mgl64.Vec3{m[3], m[4], m[5]},
		mgl64.Vec3{m[6], m[7], m[8]},
	)
}

// DiagonalMat3 returns the diagonal matrix diag(x, y, z), e.g. a principal inertia tensor.
func DiagonalMat3(x, y, z float64) mgl64.Mat3 {
	return mgl64.Diag3(mgl64.Vec3{x, y, z})
}

// R3VectorAlmostEqual compares two r3.Vector objects and returns if the all elementwise differences are less than epsilon.
func R3VectorAlmostEqual(a, b r3.Vector, epsilon float64) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon && math.Abs(a.Z-b.Z) < epsilon
}

func r3ToVec3(v r3.Vector) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func vec3ToR3(v mgl64.Vec3) r3.Vector {
	return r3.Vector{X: v[0], Y: v[1], Z: v[2]}
}
