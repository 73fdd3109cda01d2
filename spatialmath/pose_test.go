package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"
)

func r3Vec(x, y, z float64) r3.Vector {
	return r3.Vector{X: x, Y: y, Z: z}
}

func TestBasicPoseConstruction(t *testing.T) {
	p := NewZeroPose()
	test.That(t, p.Point(), test.ShouldResemble, r3.Vector{})
	test.That(t, p.Orientation().Quaternion(), test.ShouldResemble, quat.Number{Real: 1})

	p = NewPoseFromPoint(r3Vec(1, 2, 3))
	test.That(t, p.Point(), test.ShouldResemble, r3Vec(1, 2, 3))
	test.That(t, p.Orientation().Quaternion(), test.ShouldResemble, quat.Number{Real: 1})

	p = NewPose(r3Vec(1, 2, 3), nil)
	test.That(t, p.Orientation().Quaternion(), test.ShouldResemble, quat.Number{Real: 1})

	p = NewPoseFromOrientation(aa45x)
	test.That(t, p.Point(), test.ShouldResemble, r3.Vector{})
	test.That(t, OrientationAlmostEqual(p.Orientation(), aa45x), test.ShouldBeTrue)

	p = NewPoseFromAxisAngle(r3Vec(1, 0, 0), r3Vec(0, 0, 1), math.Pi/2)
	test.That(t, R3VectorAlmostEqual(TransformPoint(p, r3Vec(1, 0, 0)), r3Vec(1, 1, 0), 1e-9), test.ShouldBeTrue)
	test.That(t, R3VectorAlmostEqual(RotateVector(p, r3Vec(1, 0, 0)), r3Vec(0, 1, 0), 1e-9), test.ShouldBeTrue)
	test.That(t, NewPoseFromPoint(r3Vec(1, 2, 3)).(interface{ String() string }).String(), test.ShouldContainSubstring, "X:1.000")
}

func TestComposeAndInverse(t *testing.T) {
	a := NewPoseFromAxisAngle(r3Vec(1, 2, 3), r3Vec(1, 1, 0), 0.7)
	b := NewPoseFromAxisAngle(r3Vec(-2, 0.5, 4), r3Vec(0, 1, 1), -1.3)
	pt := r3Vec(0.3, -0.2, 0.9)

	ab := Compose(a, b)
	test.That(t, R3VectorAlmostEqual(TransformPoint(ab, pt), TransformPoint(a, TransformPoint(b, pt)), 1e-9), test.ShouldBeTrue)

	ident := Compose(a, PoseInverse(a))
	test.That(t, PoseAlmostEqual(ident, NewZeroPose()), test.ShouldBeTrue)
	ident = Compose(PoseInverse(b), b)
	test.That(t, PoseAlmostEqual(ident, NewZeroPose()), test.ShouldBeTrue)

	test.That(t, PoseAlmostEqual(Compose(a, PoseBetween(a, b)), b), test.ShouldBeTrue)

	t.Run("dual quaternion agrees", func(t *testing.T) {
		dqa := NewDualQuaternionFromPose(a)
		dqb := NewDualQuaternionFromPose(b)
		dqab := &DualQuaternion{dqa.Transformation(dqb.Number)}
		test.That(t, PoseAlmostEqual(dqab, ab), test.ShouldBeTrue)
		test.That(t, PoseAlmostEqual(dqa.Invert(), PoseInverse(a)), test.ShouldBeTrue)
		test.That(t, NewDualQuaternionFromPose(dqa), test.ShouldResemble, dqa)
		test.That(t, R3VectorAlmostEqual(dqa.Point(), a.Point(), 1e-9), test.ShouldBeTrue)
	})

	t.Run("unnormalized multiplicand", func(t *testing.T) {
		dqa := NewDualQuaternionFromPose(a)
		dqb := NewDualQuaternionFromPose(NewPoseFromOrientation(aa45x))
		scaled := dualquat.Number{Real: quat.Scale(2, dqb.Real), Dual: dqb.Dual}
		got := &DualQuaternion{dqa.Transformation(scaled)}
		test.That(t, OrientationAlmostEqual(got.Orientation(), Compose(a, dqb).Orientation()), test.ShouldBeTrue)
	})
}

func TestInterpolate(t *testing.T) {
	p1 := NewPose(r3Vec(1, 2, 3), aa45x)
	p2 := NewPose(r3Vec(3, 2, 1), &R4AA{Theta: -th, RX: 1})

	test.That(t, PoseAlmostEqual(Interpolate(p1, p2, 0), p1), test.ShouldBeTrue)
	test.That(t, PoseAlmostEqual(Interpolate(p1, p2, 1), p2), test.ShouldBeTrue)

	mid := Interpolate(p1, p2, 0.5)
	test.That(t, R3VectorAlmostEqual(mid.Point(), r3Vec(2, 2, 2), 1e-9), test.ShouldBeTrue)
	test.That(t, OrientationAlmostEqual(mid.Orientation(), NewZeroOrientation()), test.ShouldBeTrue)
}

func TestPoseComparisons(t *testing.T) {
	p1 := NewPose(r3Vec(1000, 0, 0), aa45x)
	p2 := NewPose(r3Vec(1000.05, 0, 0), aa45x)
	test.That(t, PoseAlmostEqual(p1, p2), test.ShouldBeFalse)
	test.That(t, PoseAlmostEqualEps(p1, p2, 0.1), test.ShouldBeTrue)
	test.That(t, PoseRelativelyEqual(p1, p2, 1e-4), test.ShouldBeTrue)
	test.That(t, PoseRelativelyEqual(p1, p2, 1e-6), test.ShouldBeFalse)
	test.That(t, PoseAlmostCoincident(p1, NewPoseFromPoint(r3Vec(1000, 0, 0))), test.ShouldBeTrue)
	test.That(t, PoseAlmostCoincidentEps(p1, p2, 0.01), test.ShouldBeFalse)

	p3 := NewPose(r3Vec(1000, 0, 0), ea45x)
	test.That(t, PoseRelativelyEqual(p1, p3, 1e-6), test.ShouldBeTrue)
	p4 := NewPose(r3Vec(1000, 0, 0), &R4AA{Theta: th + 0.01, RX: 1})
	test.That(t, PoseRelativelyEqual(p1, p4, 1e-3), test.ShouldBeFalse)
}
