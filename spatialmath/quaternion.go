package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// If the dot product of two unit quaternions is above this, slerp falls back to a normalized lerp.
const slerpLinearThreshold = 0.9995

type quaternion quat.Number

// Quaternion returns orientation in quaternion representation.
func (q *quaternion) Quaternion() quat.Number {
	return quat.Number(*q)
}

// AxisAngles returns the orientation in axis angle representation.
func (q *quaternion) AxisAngles() *R4AA {
	return QuatToR4AA(q.Quaternion())
}

// EulerAngles returns orientation in Euler angle representation.
func (q *quaternion) EulerAngles() *EulerAngles {
	return QuatToEulerAngles(q.Quaternion())
}

// RotationMatrix returns the orientation in rotation matrix representation.
func (q *quaternion) RotationMatrix() *RotationMatrix {
	return QuatToRotationMatrix(q.Quaternion())
}

// QuatNormalize scales a quaternion to unit length. The zero quaternion becomes the identity.
func QuatNormalize(q quat.Number) quat.Number {
	norm := quat.Abs(q)
	if norm == 0 {
		return quat.Number{Real: 1}
	}
	return quat.Scale(1/norm, q)
}

// QuatRotate rotates a vector by a unit quaternion, i.e. computes q * v * q^-1.
func QuatRotate(q quat.Number, v r3.Vector) r3.Vector {
	u := r3.Vector{X: q.Imag, Y: q.Jmag, Z: q.Kmag}
	t := u.Cross(v).Mul(2)
	return v.Add(t.Mul(q.Real)).Add(u.Cross(t))
}

// QuatDot returns the four-dimensional dot product of two quaternions.
func QuatDot(q1, q2 quat.Number) float64 {
	return q1.Real*q2.Real + q1.Imag*q2.Imag + q1.Jmag*q2.Jmag + q1.Kmag*q2.Kmag
}

// QuatAngle returns the angle in radians of the rotation carrying q1 onto q2. It is zero for
// quaternions that represent the same rotation, including q and -q.
func QuatAngle(q1, q2 quat.Number) float64 {
	dot := math.Abs(QuatDot(QuatNormalize(q1), QuatNormalize(q2)))
	if dot > 1 {
		dot = 1
	}
	return 2 * math.Acos(dot)
}

// QuatSlerp spherically interpolates along the shortest arc between two unit quaternions.
// by=0 returns q1 and by=1 returns q2 unchanged.
func QuatSlerp(q1, q2 quat.Number, by float64) quat.Number {
	if by == 0 {
		return q1
	}
	if by == 1 {
		return q2
	}
	q1 = QuatNormalize(q1)
	q2 = QuatNormalize(q2)
	dot := QuatDot(q1, q2)
	if dot < 0 {
		// q and -q are the same rotation; take the short way around
		q2 = Flip(q2)
		dot = -dot
	}
	if dot > slerpLinearThreshold {
		return QuatNormalize(quat.Add(q1, quat.Scale(by, quat.Sub(q2, q1))))
	}
	theta0 := math.Acos(dot)
	theta := theta0 * by
	sinTheta0 := math.Sin(theta0)
	s1 := math.Sin(theta0-theta) / sinTheta0
	s2 := math.Sin(theta) / sinTheta0
	return quat.Add(quat.Scale(s1, q1), quat.Scale(s2, q2))
}

// QuaternionAlmostEqual is an equality test that considers q and -q equal.
func QuaternionAlmostEqual(a, b quat.Number, tol float64) bool {
	closeTo := func(x, y quat.Number) bool {
		return math.Abs(x.Real-y.Real) < tol &&
			math.Abs(x.Imag-y.Imag) < tol &&
			math.Abs(x.Jmag-y.Jmag) < tol &&
			math.Abs(x.Kmag-y.Kmag) < tol
	}
	return closeTo(a, b) || closeTo(a, Flip(b))
}

// QuatToR4AA converts a quat to an R4 axis angle in the same way the C++ Eigen library does.
// https://eigen.tuxfamily.org/dox/AngleAxis_8h_source.html
func QuatToR4AA(q quat.Number) *R4AA {
	denom := Norm(q)

	angle := 2 * math.Atan2(denom, math.Abs(q.Real))
	if q.Real < 0 {
		angle *= -1
	}

	if denom < 1e-6 {
		return &R4AA{Theta: angle, RX: 0, RY: 0, RZ: 1}
	}
	return &R4AA{angle, q.Imag / denom, q.Jmag / denom, q.Kmag / denom}
}

// Norm returns the norm of the quaternion, i.e. the sqrt of the squares of the imaginary parts.
func Norm(q quat.Number) float64 {
	return math.Sqrt(q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
}

// Flip will multiply a quaternion by -1, returning a quaternion representing the same orientation but in the opposing octant.
func Flip(q quat.Number) quat.Number {
	return quat.Number{Real: -q.Real, Imag: -q.Imag, Jmag: -q.Jmag, Kmag: -q.Kmag}
}
