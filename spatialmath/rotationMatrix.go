package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"
)

// RotationMatrix is a 3x3 matrix in row-major order.
// m[3*r + c] is the element in the r'th row and c'th column.
type RotationMatrix struct {
	mat mgl64.Mat3
}

// NewRotationMatrix creates the rotation matrix from a slice of 9 values in row-major order.
// The matrix must be orthonormal with determinant +1 to within 1e-6.
func NewRotationMatrix(m []float64) (*RotationMatrix, error) {
	if len(m) != 9 {
		return nil, errors.Errorf("input slice has %d elements, need exactly 9", len(m))
	}
	mat := mgl64.Mat3FromRows(
		mgl64.Vec3{m[0], m[1], m[2]},
		mgl64.Vec3{m[3], m[4], m[5]},
		mgl64.Vec3{m[6], m[7], m[8]},
	)
	if !mat.Mul3(mat.Transpose()).ApproxEqualThreshold(mgl64.Ident3(), 1e-6) || math.Abs(mat.Det()-1) > 1e-6 {
		return nil, errors.New("matrix is not a proper rotation")
	}
	return &RotationMatrix{mat}, nil
}

// AxisAngles returns the orientation in axis angle representation.
func (rm *RotationMatrix) AxisAngles() *R4AA {
	return QuatToR4AA(rm.Quaternion())
}

// EulerAngles returns orientation in Euler angle representation.
func (rm *RotationMatrix) EulerAngles() *EulerAngles {
	return QuatToEulerAngles(rm.Quaternion())
}

// RotationMatrix returns the orientation in rotation matrix representation.
func (rm *RotationMatrix) RotationMatrix() *RotationMatrix {
	return rm
}

// Quaternion returns orientation in quaternion representation.
// Uses the branch on the largest diagonal term to keep the square root well conditioned.
func (rm *RotationMatrix) Quaternion() quat.Number {
	m := rm.mat
	trace := m.At(0, 0) + m.At(1, 1) + m.At(2, 2)
	var q quat.Number
	switch {
	case trace > 0:
		s := 0.5 / math.Sqrt(trace+1)
		q = quat.Number{
			Real: 0.25 / s,
			Imag: (m.At(2, 1) - m.At(1, 2)) * s,
			Jmag: (m.At(0, 2) - m.At(2, 0)) * s,
			Kmag: (m.At(1, 0) - m.At(0, 1)) * s,
		}
	case m.At(0, 0) > m.At(1, 1) && m.At(0, 0) > m.At(2, 2):
		s := 2 * math.Sqrt(1+m.At(0, 0)-m.At(1, 1)-m.At(2, 2))
		q = quat.Number{
			Real: (m.At(2, 1) - m.At(1, 2)) / s,
			Imag: 0.25 * s,
			Jmag: (m.At(0, 1) + m.At(1, 0)) / s,
			Kmag: (m.At(0, 2) + m.At(2, 0)) / s,
		}
	case m.At(1, 1) > m.At(2, 2):
		s := 2 * math.Sqrt(1+m.At(1, 1)-m.At(0, 0)-m.At(2, 2))
		q = quat.Number{
			Real: (m.At(0, 2) - m.At(2, 0)) / s,
			Imag: (m.At(0, 1) + m.At(1, 0)) / s,
			Jmag: 0.25 * s,
			Kmag: (m.At(1, 2) + m.At(2, 1)) / s,
		}
	default:
		s := 2 * math.Sqrt(1+m.At(2, 2)-m.At(0, 0)-m.At(1, 1))
		q = quat.Number{
			Real: (m.At(1, 0) - m.At(0, 1)) / s,
			Imag: (m.At(0, 2) + m.At(2, 0)) / s,
			Jmag: (m.At(1, 2) + m.At(2, 1)) / s,
			Kmag: 0.25 * s,
		}
	}
	return QuatNormalize(q)
}

// At returns the value at the given row and column.
func (rm *RotationMatrix) At(row, col int) float64 {
	return rm.mat.At(row, col)
}

// Row returns the given row as a vector.
func (rm *RotationMatrix) Row(row int) r3.Vector {
	return r3.Vector{X: rm.At(row, 0), Y: rm.At(row, 1), Z: rm.At(row, 2)}
}

// Mat3 returns the underlying 3x3 matrix.
func (rm *RotationMatrix) Mat3() mgl64.Mat3 {
	return rm.mat
}

// RowMajor returns the 9 matrix entries in row-major order.
func (rm *RotationMatrix) RowMajor() []float64 {
	out := make([]float64, 0, 9)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out = append(out, rm.mat.At(row, col))
		}
	}
	return out
}

// QuatToRotationMatrix converts a unit quaternion into a rotation matrix.
func QuatToRotationMatrix(q quat.Number) *RotationMatrix {
	q = QuatNormalize(q)
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	return &RotationMatrix{mgl64.Mat3FromRows(
		mgl64.Vec3{1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y)},
		mgl64.Vec3{2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x)},
		mgl64.Vec3{2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y)},
	)}
}
