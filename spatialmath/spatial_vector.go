package spatialmath

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SpatialVector is the untagged 6-component body shared by twists, wrenches, spatial accelerations,
// and spatial momenta. For motion quantities Upper is angular and Lower is linear; for force
// quantities Upper is linear (force, momentum) and Lower is angular (torque, angular momentum).
// With this ordering both kinds move between frames under the same rule.
type SpatialVector struct {
	Upper r3.Vector
	Lower r3.Vector
}

// Add returns the componentwise sum.
func (sv SpatialVector) Add(o SpatialVector) SpatialVector {
	return SpatialVector{Upper: sv.Upper.Add(o.Upper), Lower: sv.Lower.Add(o.Lower)}
}

// Sub returns the componentwise difference.
func (sv SpatialVector) Sub(o SpatialVector) SpatialVector {
	return SpatialVector{Upper: sv.Upper.Sub(o.Upper), Lower: sv.Lower.Sub(o.Lower)}
}

// Scale multiplies both halves by s.
func (sv SpatialVector) Scale(s float64) SpatialVector {
	return SpatialVector{Upper: sv.Upper.Mul(s), Lower: sv.Lower.Mul(s)}
}

// Neg returns -sv.
func (sv SpatialVector) Neg() SpatialVector {
	return sv.Scale(-1)
}

// Dot is the spatial pairing between a motion vector and a force vector: the upper half of each
// is contracted with the lower half of the other. For a twist and a wrench this is power.
func (sv SpatialVector) Dot(o SpatialVector) float64 {
	return sv.Lower.Dot(o.Upper) + sv.Upper.Dot(o.Lower)
}

// Cross is the spatial cross product of a motion vector sv with o. With the upper-angular motion
// ordering and upper-linear force ordering, the motion and force cross products share this form.
func (sv SpatialVector) Cross(o SpatialVector) SpatialVector {
	return SpatialVector{
		Upper: sv.Upper.Cross(o.Upper),
		Lower: sv.Upper.Cross(o.Lower).Add(sv.Lower.Cross(o.Upper)),
	}
}

// ToVec returns the six components, upper half first, as a gonum vector.
func (sv SpatialVector) ToVec() *mat.VecDense {
	return mat.NewVecDense(6, sv.Slice())
}

// Slice returns the six components, upper half first.
func (sv SpatialVector) Slice() []float64 {
	return []float64{sv.Upper.X, sv.Upper.Y, sv.Upper.Z, sv.Lower.X, sv.Lower.Y, sv.Lower.Z}
}

// SpatialVectorFromSlice builds a SpatialVector from six components, upper half first.
func SpatialVectorFromSlice(v []float64) (SpatialVector, error) {
	if len(v) != 6 {
		return SpatialVector{}, errors.Errorf("spatial vector needs 6 components, got %d", len(v))
	}
	return SpatialVector{
		Upper: r3.Vector{X: v[0], Y: v[1], Z: v[2]},
		Lower: r3.Vector{X: v[3], Y: v[4], Z: v[5]},
	}, nil
}

// SpatialVectorAlmostEqual compares two spatial vectors componentwise against epsilon.
func SpatialVectorAlmostEqual(a, b SpatialVector, epsilon float64) bool {
	return floats.EqualApprox(a.Slice(), b.Slice(), epsilon)
}

func (sv SpatialVector) String() string {
	return fmt.Sprintf("[%.4f %.4f %.4f | %.4f %.4f %.4f]",
		sv.Upper.X, sv.Upper.Y, sv.Upper.Z, sv.Lower.X, sv.Lower.Y, sv.Lower.Z)
}
