package spatialmath

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// SpatialTransform is a rigid change of coordinates in the block form used for spatial vectors:
// a rotation block E and a displacement r such that points map as E*p - r.
// It is equivalent to the 6x6 matrix [[E, 0], [-[r]x E, E]] but is applied without forming it.
type SpatialTransform struct {
	E mgl64.Mat3
	R r3.Vector
}

// NewSpatialTransform returns the transform that carries coordinates expressed in the child of
// pose into the frame pose is defined relative to.
func NewSpatialTransform(pose Pose) *SpatialTransform {
	return &SpatialTransform{
		E: QuatToRotationMatrix(pose.Orientation().Quaternion()).Mat3(),
		R: pose.Point().Mul(-1),
	}
}

// NewInverseSpatialTransform returns the transform that carries coordinates expressed in the frame
// pose is defined relative to into the child of pose.
func NewInverseSpatialTransform(pose Pose) *SpatialTransform {
	e := QuatToRotationMatrix(quat.Conj(pose.Orientation().Quaternion())).Mat3()
	return &SpatialTransform{E: e, R: MulVec(e, pose.Point())}
}

// Translation returns the image of the source origin.
func (st *SpatialTransform) Translation() r3.Vector {
	return st.R.Mul(-1)
}

// Inverse returns the transform undoing st.
func (st *SpatialTransform) Inverse() *SpatialTransform {
	et := st.E.Transpose()
	return &SpatialTransform{E: et, R: MulVec(et, st.R).Mul(-1)}
}

// ApplyPoint maps a point.
func (st *SpatialTransform) ApplyPoint(p r3.Vector) r3.Vector {
	return MulVec(st.E, p).Sub(st.R)
}

// ApplyVector maps a free vector; only the rotation applies.
func (st *SpatialTransform) ApplyVector(v r3.Vector) r3.Vector {
	return MulVec(st.E, v)
}

// ApplySpatialVector maps a twist, wrench, spatial acceleration, or spatial momentum.
func (st *SpatialTransform) ApplySpatialVector(sv SpatialVector) SpatialVector {
	eUpper := MulVec(st.E, sv.Upper)
	return SpatialVector{
		Upper: eUpper,
		Lower: MulVec(st.E, sv.Lower).Sub(st.R.Cross(eUpper)),
	}
}

// ApplyRigidBodyInertia maps a rigid body inertia. Mass is unchanged.
func (st *SpatialTransform) ApplyRigidBodyInertia(rbi RigidBodyInertia) RigidBodyInertia {
	e, et := st.E, st.E.Transpose()
	rx := SkewSymmetric(st.R)
	hx := SkewSymmetric(rbi.H)
	k := e.Mul3(hx).Mul3(et).Mul3(rx)
	mrx := SkewSymmetric(st.R.Mul(rbi.Mass))
	j := k.Add(k.Transpose()).Add(e.Mul3(rbi.J).Mul3(et)).Sub(rx.Mul3(mrx))
	return RigidBodyInertia{
		Mass: rbi.Mass,
		H:    MulVec(e, rbi.H).Sub(st.R.Mul(rbi.Mass)),
		J:    j,
	}
}

// ApplyArticulatedBodyInertia maps an articulated body inertia.
func (st *SpatialTransform) ApplyArticulatedBodyInertia(abi ArticulatedBodyInertia) ArticulatedBodyInertia {
	e, et := st.E, st.E.Transpose()
	rx := SkewSymmetric(st.R)
	m := e.Mul3(abi.M).Mul3(et)
	h := e.Mul3(abi.H).Mul3(et).Sub(rx.Mul3(m))
	j := e.Mul3(abi.J).Mul3(et).Sub(rx.Mul3(e).Mul3(abi.H.Transpose()).Mul3(et)).Add(h.Mul3(rx))
	return ArticulatedBodyInertia{M: m, H: h, J: j}
}

// ToDense returns the 6x6 motion transform [[E, 0], [-[r]x E, E]].
func (st *SpatialTransform) ToDense() *mat.Dense {
	d := mat.NewDense(6, 6, nil)
	setBlock(d, 0, 0, st.E)
	setBlock(d, 3, 0, SkewSymmetric(st.R).Mul3(st.E).Mul(-1))
	setBlock(d, 3, 3, st.E)
	return d
}
