package spatialmath

import (
	"fmt"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/num/quat"
)

// Pose represents a 6dof pose: a rotation followed by a translation, carrying coordinates expressed
// in some frame into the frame it is defined relative to.
type Pose interface {
	Point() r3.Vector
	Orientation() Orientation
}

type basicPose struct {
	point       r3.Vector
	orientation quat.Number
}

// NewZeroPose returns a pose with no translation and no rotation.
func NewZeroPose() Pose {
	return &basicPose{orientation: quat.Number{Real: 1}}
}

// NewPose takes in a position and orientation and returns a Pose.
func NewPose(p r3.Vector, o Orientation) Pose {
	if o == nil {
		return NewPoseFromPoint(p)
	}
	return &basicPose{point: p, orientation: QuatNormalize(o.Quaternion())}
}

// NewPoseFromPoint takes in a cartesian (x,y,z) and stores it as a vector.
// It will have the same orientation as the frame it is in.
func NewPoseFromPoint(point r3.Vector) Pose {
	return &basicPose{point: point, orientation: quat.Number{Real: 1}}
}

// NewPoseFromOrientation returns a pose with no translation.
func NewPoseFromOrientation(o Orientation) Pose {
	return NewPose(r3.Vector{}, o)
}

// NewPoseFromAxisAngle takes in a position, rotationAxis, and angle and returns a Pose.
// angle is input in radians.
func NewPoseFromAxisAngle(point, rotationAxis r3.Vector, angle float64) Pose {
	return NewPose(point, &R4AA{Theta: angle, RX: rotationAxis.X, RY: rotationAxis.Y, RZ: rotationAxis.Z})
}

// Point returns the position of the pose.
func (p *basicPose) Point() r3.Vector {
	return p.point
}

// Orientation returns the orientation of the pose.
func (p *basicPose) Orientation() Orientation {
	q := quaternion(p.orientation)
	return &q
}

func (p *basicPose) String() string {
	aa := QuatToR4AA(p.orientation)
	return fmt.Sprintf("{X:%.3f Y:%.3f Z:%.3f Theta:%.3f RX:%.3f RY:%.3f RZ:%.3f}",
		p.point.X, p.point.Y, p.point.Z, aa.Theta, aa.RX, aa.RY, aa.RZ)
}

// Compose takes in two poses and returns a pose that is the result of applying b and then a,
// i.e. the product a*b: rotation qa*qb and translation qa*xb + xa.
func Compose(a, b Pose) Pose {
	qa := a.Orientation().Quaternion()
	return &basicPose{
		point:       QuatRotate(qa, b.Point()).Add(a.Point()),
		orientation: QuatNormalize(quat.Mul(qa, b.Orientation().Quaternion())),
	}
}

// PoseInverse will return the inverse of a pose. So if a given pose p is the pose of A relative to B, PoseInverse(p) will give
// the pose of B relative to A.
func PoseInverse(p Pose) Pose {
	qi := quat.Conj(p.Orientation().Quaternion())
	return &basicPose{
		point:       QuatRotate(qi, p.Point().Mul(-1)),
		orientation: qi,
	}
}

// PoseBetween returns the difference between two Poses, such that Compose(a, PoseBetween(a, b)) == b.
func PoseBetween(a, b Pose) Pose {
	return Compose(PoseInverse(a), b)
}

// Interpolate will return a new Pose that has been interpolated the set amount between two poses.
// Translation is interpolated linearly and rotation along the shortest arc.
func Interpolate(p1, p2 Pose, by float64) Pose {
	return &basicPose{
		point:       p1.Point().Mul(1 - by).Add(p2.Point().Mul(by)),
		orientation: QuatSlerp(p1.Orientation().Quaternion(), p2.Orientation().Quaternion(), by),
	}
}

// TransformPoint applies the pose to a point: rotate then translate.
func TransformPoint(p Pose, pt r3.Vector) r3.Vector {
	return QuatRotate(p.Orientation().Quaternion(), pt).Add(p.Point())
}

// RotateVector applies only the rotational part of the pose to a free vector.
func RotateVector(p Pose, v r3.Vector) r3.Vector {
	return QuatRotate(p.Orientation().Quaternion(), v)
}

// PoseAlmostEqual will return a bool describing whether 2 poses are approximately the same.
func PoseAlmostEqual(a, b Pose) bool {
	return PoseAlmostEqualEps(a, b, 1e-6)
}

// PoseAlmostEqualEps will return a bool describing whether 2 poses are approximately the same,
// comparing translation componentwise and rotation by the angle between the orientations.
func PoseAlmostEqualEps(a, b Pose, epsilon float64) bool {
	return R3VectorAlmostEqual(a.Point(), b.Point(), epsilon) &&
		OrientationAlmostEqualEps(a.Orientation(), b.Orientation(), epsilon)
}

// PoseAlmostCoincident will return a bool describing whether 2 poses approximately are at the same 3D coordinate location.
func PoseAlmostCoincident(a, b Pose) bool {
	return PoseAlmostCoincidentEps(a, b, 1e-8)
}

// PoseAlmostCoincidentEps will return a bool describing whether 2 poses approximately are at the same 3D coordinate location.
func PoseAlmostCoincidentEps(a, b Pose, epsilon float64) bool {
	return a.Point().Sub(b.Point()).Norm() < epsilon
}

// PoseRelativelyEqual compares translations componentwise relative to their magnitude and rotations by
// the angle between them, each against tol. Small values compare absolutely.
func PoseRelativelyEqual(a, b Pose, tol float64) bool {
	relEqual := func(x, y float64) bool {
		return scalar.EqualWithinAbsOrRel(x, y, tol, tol)
	}
	pa, pb := a.Point(), b.Point()
	if !relEqual(pa.X, pb.X) || !relEqual(pa.Y, pb.Y) || !relEqual(pa.Z, pb.Z) {
		return false
	}
	// rotation is checked last as it is the more expensive comparison
	return relEqual(QuatAngle(a.Orientation().Quaternion(), b.Orientation().Quaternion()), 0)
}
