// Package spatialmath defines spatial mathematical operations: rotations, poses, and the
// closed-form rules that move 6-dimensional spatial quantities between coordinate systems.
package spatialmath

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Orientation is an interface used to express the different parameterizations of the orientation
// of a rigid object or a frame of reference in 3D Euclidean space.
type Orientation interface {
	AxisAngles() *R4AA
	Quaternion() quat.Number
	EulerAngles() *EulerAngles
	RotationMatrix() *RotationMatrix
}

// NewZeroOrientation returns an orientatation which signifies no rotation.
func NewZeroOrientation() Orientation {
	return &quaternion{1, 0, 0, 0}
}

// NewOrientationFromQuaternion wraps a quaternion as an Orientation. The quaternion is normalized.
func NewOrientationFromQuaternion(q quat.Number) Orientation {
	nq := quaternion(QuatNormalize(q))
	return &nq
}

// OrientationAlmostEqual will return a bool describing whether 2 poses have approximately the same orientation.
func OrientationAlmostEqual(o1, o2 Orientation) bool {
	return QuaternionAlmostEqual(o1.Quaternion(), o2.Quaternion(), 1e-5)
}

// OrientationAlmostEqualEps will return a bool describing whether 2 poses have approximately the same orientation,
// measured as the angle of the rotation between them.
func OrientationAlmostEqualEps(o1, o2 Orientation, epsilon float64) bool {
	return QuatAngle(o1.Quaternion(), o2.Quaternion()) <= epsilon
}

// OrientationBetween returns the orientation representing the difference between the two given Orientations.
func OrientationBetween(o1, o2 Orientation) Orientation {
	q := quaternion(quat.Mul(o2.Quaternion(), quat.Conj(o1.Quaternion())))
	return &q
}

// OrientationInverse returns the orientation that undoes the given one.
func OrientationInverse(o Orientation) Orientation {
	q := quaternion(quat.Conj(o.Quaternion()))
	return &q
}

// EulerAngles are three angles used to represent the rotation of an object in 3D Euclidean space,
// applied in roll (x), pitch (y), yaw (z) order about the fixed axes.
// Euler angles are terrible, don't use them for anything but configuration.
type EulerAngles struct {
	Roll  float64 `json:"roll"`
	Pitch float64 `json:"pitch"`
	Yaw   float64 `json:"yaw"`
}

// NewEulerAngles creates an empty EulerAngles struct.
func NewEulerAngles() *EulerAngles {
	return &EulerAngles{}
}

// AxisAngles returns the orientation in axis angle representation.
func (ea *EulerAngles) AxisAngles() *R4AA {
	return QuatToR4AA(ea.Quaternion())
}

// Quaternion returns orientation in quaternion representation.
// See: https://en.wikipedia.org/wiki/Conversion_between_quaternions_and_Euler_angles#Euler_angles_to_quaternion_conversion
func (ea *EulerAngles) Quaternion() quat.Number {
	cy := math.Cos(ea.Yaw * 0.5)
	sy := math.Sin(ea.Yaw * 0.5)
	cp := math.Cos(ea.Pitch * 0.5)
	sp := math.Sin(ea.Pitch * 0.5)
	cr := math.Cos(ea.Roll * 0.5)
	sr := math.Sin(ea.Roll * 0.5)

	return quat.Number{
		Real: cr*cp*cy + sr*sp*sy,
		Imag: sr*cp*cy - cr*sp*sy,
		Jmag: cr*sp*cy + sr*cp*sy,
		Kmag: cr*cp*sy - sr*sp*cy,
	}
}

// EulerAngles returns orientation in Euler angle representation.
func (ea *EulerAngles) EulerAngles() *EulerAngles {
	return ea
}

// RotationMatrix returns the orientation in rotation matrix representation.
func (ea *EulerAngles) RotationMatrix() *RotationMatrix {
	return QuatToRotationMatrix(ea.Quaternion())
}

// QuatToEulerAngles converts a rotation unit quaternion to euler angles.
// See the following wikipedia page for the formulas used here:
// https://en.wikipedia.org/wiki/Conversion_between_quaternions_and_Euler_angles#Quaternion_to_Euler_angles_conversion
func QuatToEulerAngles(q quat.Number) *EulerAngles {
	w := q.Real
	x := q.Imag
	y := q.Jmag
	z := q.Kmag

	angles := EulerAngles{}
	angles.Roll = math.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y))
	sinp := 2 * (w*y - z*x)
	if math.Abs(sinp) >= 1 {
		angles.Pitch = math.Copysign(math.Pi/2, sinp)
	} else {
		angles.Pitch = math.Asin(sinp)
	}
	angles.Yaw = math.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z))
	return &angles
}
