package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"
)

// DualQuaternion defines functions to perform rigid transformations in 3D.
// If you find yourself importing gonum.org/v1/gonum/num/dualquat in some other package, you should probably be
// using these instead.
type DualQuaternion struct {
	dualquat.Number
}

// NewDualQuaternion returns a pointer to a new DualQuaternion object whose Quaternion is an identity Quaternion.
// Since the real part of a qual quaternion should be a unit quaternion, not all zeroes, this should be used
// instead of &DualQuaternion{}.
func NewDualQuaternion() *DualQuaternion {
	return &DualQuaternion{dualquat.Number{
		Real: quat.Number{Real: 1},
		Dual: quat.Number{},
	}}
}

// NewDualQuaternionFromPose takes any pose, checks if it is already a DualQuaternion and returns that if so, otherwise creates a
// new DualQuaternion object from the pose and returns that.
func NewDualQuaternionFromPose(p Pose) *DualQuaternion {
	if q, ok := p.(*DualQuaternion); ok {
		return q.Clone()
	}
	q := NewDualQuaternion()
	q.Real = QuatNormalize(p.Orientation().Quaternion())
	q.SetTranslation(p.Point())
	return q
}

// Clone returns a DualQuaternion object identical to this one.
func (q *DualQuaternion) Clone() *DualQuaternion {
	// No need for deep copies here, dualquats are primitives all the way down
	return &DualQuaternion{q.Number}
}

// Point multiplies the dual quaternion by its own conjugate to give a dq where the real is the identity quat,
// and the dual is representative of real world millimeters. We then return the XYZ of the dual quaternion.
func (q *DualQuaternion) Point() r3.Vector {
	tQuat := dualquat.Mul(q.Number, dualquat.Conj(q.Number)).Dual
	return r3.Vector{X: tQuat.Imag, Y: tQuat.Jmag, Z: tQuat.Kmag}
}

// Orientation returns the rotation quaternion as an Orientation.
func (q *DualQuaternion) Orientation() Orientation {
	qq := quaternion(q.Real)
	return &qq
}

// SetTranslation correctly sets the translation quaternion against the rotation.
func (q *DualQuaternion) SetTranslation(pt r3.Vector) {
	q.Dual = quat.Number{Real: 0, Imag: pt.X / 2, Jmag: pt.Y / 2, Kmag: pt.Z / 2}
	q.rotate()
}

// rotate multiplies the dual part of the quaternion by the real part give the correct rotation.
func (q *DualQuaternion) rotate() {
	q.Dual = quat.Mul(q.Dual, q.Real)
}

// Invert returns a DualQuaternion representing the opposite transformation.
func (q *DualQuaternion) Invert() *DualQuaternion {
	return &DualQuaternion{dualquat.Inv(q.Number)}
}

// Transformation multiplies the dual quat contained in this DualQuaternion by another dual quat.
func (q *DualQuaternion) Transformation(by dualquat.Number) dualquat.Number {
	// Ensure we are multiplying by a unit dual quaternion
	if vecLen := quat.Abs(by.Real); vecLen != 1 {
		by.Real = quat.Scale(1/vecLen, by.Real)
	}

	return dualquat.Mul(q.Number, by)
}
