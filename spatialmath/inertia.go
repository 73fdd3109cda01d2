package spatialmath

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// RigidBodyInertia is the spatial inertia of a single rigid body: its mass, first mass moment
// (mass times the center of mass position), and rotational inertia tensor about the frame origin.
type RigidBodyInertia struct {
	Mass float64
	H    r3.Vector
	J    mgl64.Mat3
}

// NewRigidBodyInertia builds the inertia of a body of mass m whose center of mass sits at com and
// whose rotational inertia about the center of mass is jc. The tensor is shifted to the origin.
func NewRigidBodyInertia(m float64, com r3.Vector, jc mgl64.Mat3) RigidBodyInertia {
	cx := SkewSymmetric(com)
	return RigidBodyInertia{
		Mass: m,
		H:    com.Mul(m),
		J:    jc.Sub(cx.Mul3(cx).Mul(m)),
	}
}

// CenterOfMass returns H/m, or the origin for a massless body.
func (rbi RigidBodyInertia) CenterOfMass() r3.Vector {
	if rbi.Mass == 0 {
		return r3.Vector{}
	}
	return rbi.H.Mul(1 / rbi.Mass)
}

// Mult maps a motion vector [w; v] to the momentum [m v - h x w; J w + h x v].
func (rbi RigidBodyInertia) Mult(sv SpatialVector) SpatialVector {
	w, v := sv.Upper, sv.Lower
	return SpatialVector{
		Upper: v.Mul(rbi.Mass).Sub(rbi.H.Cross(w)),
		Lower: MulVec(rbi.J, w).Add(rbi.H.Cross(v)),
	}
}

// Add returns the inertia of the two bodies rigidly joined.
func (rbi RigidBodyInertia) Add(o RigidBodyInertia) RigidBodyInertia {
	return RigidBodyInertia{Mass: rbi.Mass + o.Mass, H: rbi.H.Add(o.H), J: rbi.J.Add(o.J)}
}

// ToArticulated converts to the equivalent articulated-body inertia.
func (rbi RigidBodyInertia) ToArticulated() ArticulatedBodyInertia {
	return ArticulatedBodyInertia{
		M: mgl64.Ident3().Mul(rbi.Mass),
		H: SkewSymmetric(rbi.H),
		J: rbi.J,
	}
}

// ToDense returns the 6x6 operator implemented by Mult.
func (rbi RigidBodyInertia) ToDense() *mat.Dense {
	hx := SkewSymmetric(rbi.H)
	d := mat.NewDense(6, 6, nil)
	setBlock(d, 0, 0, hx.Mul(-1))
	setBlock(d, 0, 3, mgl64.Ident3().Mul(rbi.Mass))
	setBlock(d, 3, 0, rbi.J)
	setBlock(d, 3, 3, hx)
	return d
}

func (rbi RigidBodyInertia) String() string {
	return fmt.Sprintf("{m:%.4f h:%v J:%v}", rbi.Mass, rbi.H, rbi.J)
}

// RigidBodyInertiaAlmostEqual compares two rigid body inertias elementwise.
func RigidBodyInertiaAlmostEqual(a, b RigidBodyInertia, epsilon float64) bool {
	return mgl64.FloatEqualThreshold(a.Mass, b.Mass, epsilon) &&
		R3VectorAlmostEqual(a.H, b.H, epsilon) &&
		Mat3AlmostEqual(a.J, b.J, epsilon)
}

// ArticulatedBodyInertia is the 6x6 block inertia [[H^T, M], [J, H]] seen at the root of an
// articulated subtree.
type ArticulatedBodyInertia struct {
	M mgl64.Mat3
	H mgl64.Mat3
	J mgl64.Mat3
}

// Mult maps a motion vector [w; v] to the momentum [H^T w + M v; J w + H v].
func (abi ArticulatedBodyInertia) Mult(sv SpatialVector) SpatialVector {
	w, v := sv.Upper, sv.Lower
	return SpatialVector{
		Upper: MulVec(abi.H.Transpose(), w).Add(MulVec(abi.M, v)),
		Lower: MulVec(abi.J, w).Add(MulVec(abi.H, v)),
	}
}

// Add returns the blockwise sum.
func (abi ArticulatedBodyInertia) Add(o ArticulatedBodyInertia) ArticulatedBodyInertia {
	return ArticulatedBodyInertia{M: abi.M.Add(o.M), H: abi.H.Add(o.H), J: abi.J.Add(o.J)}
}

// ToDense returns the 6x6 operator implemented by Mult.
func (abi ArticulatedBodyInertia) ToDense() *mat.Dense {
	d := mat.NewDense(6, 6, nil)
	setBlock(d, 0, 0, abi.H.Transpose())
	setBlock(d, 0, 3, abi.M)
	setBlock(d, 3, 0, abi.J)
	setBlock(d, 3, 3, abi.H)
	return d
}

// ArticulatedBodyInertiaAlmostEqual compares two articulated body inertias blockwise.
func ArticulatedBodyInertiaAlmostEqual(a, b ArticulatedBodyInertia, epsilon float64) bool {
	return Mat3AlmostEqual(a.M, b.M, epsilon) &&
		Mat3AlmostEqual(a.H, b.H, epsilon) &&
		Mat3AlmostEqual(a.J, b.J, epsilon)
}

func setBlock(d *mat.Dense, r0, c0 int, m mgl64.Mat3) {
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			d.Set(r0+r, c0+c, m.At(r, c))
		}
	}
}
