package referenceframe

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/test"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/spatialframes/logging"
	spatial "go.viam.com/spatialframes/spatialmath"
)

const tol = 1e-9

type testTree struct {
	fs                               *FrameSystem
	base, link1, link2, tool, camera Frame
}

// newTestTree builds
//
//	world
//	└── base
//	    ├── link1
//	    │   └── link2
//	    │       └── tool
//	    └── camera
func newTestTree(t *testing.T) testTree {
	t.Helper()
	fs := NewFrameSystem("test", logging.NewTestLogger(t))
	add := func(name string, pose spatial.Pose, parent Frame) Frame {
		f, err := fs.NewFrame(name, pose, parent)
		test.That(t, err, test.ShouldBeNil)
		return f
	}
	var tree testTree
	tree.fs = fs
	tree.base = add("base", spatial.NewPoseFromAxisAngle(r3.Vector{X: 1, Y: 2, Z: 3}, r3.Vector{X: 1, Y: 1}, 0.7), World)
	tree.link1 = add("link1", spatial.NewPoseFromAxisAngle(r3.Vector{X: 0.5, Z: 0.2}, r3.Vector{Z: 1}, 1.1), tree.base)
	tree.link2 = add("link2", spatial.NewPoseFromAxisAngle(r3.Vector{Y: 0.3}, r3.Vector{X: 1}, -0.4), tree.link1)
	tree.tool = add("tool", spatial.NewPoseFromAxisAngle(r3.Vector{X: 0.1, Y: 0.1, Z: 0.1}, r3.Vector{X: 1, Y: 2, Z: 3}, 0.9), tree.link2)
	tree.camera = add("camera", spatial.NewPoseFromAxisAngle(r3.Vector{X: -0.2, Y: 0.4}, r3.Vector{Y: 1}, 0.5), tree.base)
	return tree
}

func skipWithoutFrameChecks(t *testing.T) {
	t.Helper()
	if !FrameChecksEnabled() {
		t.Skip("frame checks disabled in this build")
	}
}

func mustResolve(t *testing.T, source, target Frame) *Transform {
	t.Helper()
	tf, err := Resolve(source, target)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, tf.Source() == source, test.ShouldBeTrue)
	test.That(t, tf.Target() == target, test.ShouldBeTrue)
	return tf
}

func TestResolveIdentity(t *testing.T) {
	tree := newTestTree(t)
	for _, f := range []Frame{World, tree.base, tree.tool} {
		tf := mustResolve(t, f, f)
		test.That(t, spatial.PoseAlmostEqual(tf.Pose(), spatial.NewZeroPose()), test.ShouldBeTrue)
		p, err := tf.Point(NewPoint(f, r3.Vector{X: 1, Y: -2, Z: 3}))
		test.That(t, err, test.ShouldBeNil)
		test.That(t, p.Value(), test.ShouldResemble, r3.Vector{X: 1, Y: -2, Z: 3})
	}
}

func TestResolveSiblingScenario(t *testing.T) {
	fs := NewFrameSystem("scenario", logging.NewTestLogger(t))
	a, err := fs.NewFrame("A", spatial.NewPoseFromPoint(r3.Vector{X: 1}), World)
	test.That(t, err, test.ShouldBeNil)
	b, err := fs.NewFrame("B", spatial.NewPoseFromPoint(r3.Vector{Y: 1}), World)
	test.That(t, err, test.ShouldBeNil)

	tf := mustResolve(t, a, b)
	test.That(t, spatial.R3VectorAlmostEqual(tf.Pose().Point(), r3.Vector{X: 1, Y: -1}, tol), test.ShouldBeTrue)
	test.That(t, spatial.OrientationAlmostEqual(tf.Pose().Orientation(), spatial.NewZeroOrientation()), test.ShouldBeTrue)

	p, err := tf.Point(NewPoint(a, r3.Vector{}))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, p.Frame() == b, test.ShouldBeTrue)
	test.That(t, spatial.R3VectorAlmostEqual(p.Value(), r3.Vector{X: 1, Y: -1}, tol), test.ShouldBeTrue)
}

func TestResolveSiblingsWithRotation(t *testing.T) {
	fs := NewFrameSystem("test", logging.NewTestLogger(t))
	a, err := fs.NewFrame("a", spatial.NewPoseFromAxisAngle(r3.Vector{X: 1}, r3.Vector{Z: 1}, math.Pi/2), World)
	test.That(t, err, test.ShouldBeNil)
	b, err := fs.NewFrame("b", spatial.NewPoseFromAxisAngle(r3.Vector{Y: 1}, r3.Vector{Z: 1}, -math.Pi/2), World)
	test.That(t, err, test.ShouldBeNil)

	// a's x axis points along world y; b's x axis points along world -y
	tf := mustResolve(t, a, b)
	p, err := tf.Point(NewPoint(a, r3.Vector{X: 1}))
	test.That(t, err, test.ShouldBeNil)
	// world (1, 1, 0) seen from b at (0, 1, 0) rotated -90 about z
	test.That(t, spatial.R3VectorAlmostEqual(p.Value(), r3.Vector{Y: 1}, tol), test.ShouldBeTrue)
	v, err := tf.Vector(NewVector(a, r3.Vector{X: 1}))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, spatial.R3VectorAlmostEqual(v.Value(), r3.Vector{X: -1}, tol), test.ShouldBeTrue)
}

func TestResolveWorld(t *testing.T) {
	fs := NewFrameSystem("test", logging.NewTestLogger(t))
	a, err := fs.NewFrame("a", spatial.NewPoseFromAxisAngle(r3.Vector{X: 1}, r3.Vector{Z: 1}, math.Pi/2), World)
	test.That(t, err, test.ShouldBeNil)
	c, err := fs.NewFrame("c", spatial.NewPoseFromPoint(r3.Vector{X: 1}), a)
	test.That(t, err, test.ShouldBeNil)

	toWorld := mustResolve(t, c, World)
	test.That(t, spatial.R3VectorAlmostEqual(toWorld.Pose().Point(), r3.Vector{X: 1, Y: 1}, tol), test.ShouldBeTrue)

	fromWorld := mustResolve(t, World, c)
	p, err := fromWorld.Point(NewPoint(World, r3.Vector{X: 1, Y: 1}))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, spatial.R3VectorAlmostEqual(p.Value(), r3.Vector{}, tol), test.ShouldBeTrue)
	test.That(t, spatial.PoseAlmostEqual(fromWorld.Pose(), toWorld.Inverse().Pose()), test.ShouldBeTrue)
}

func TestResolveCommonAncestor(t *testing.T) {
	tree := newTestTree(t)
	viaWorld := func(source, target Frame) spatial.Pose {
		return spatial.Compose(mustResolve(t, World, target).Pose(), mustResolve(t, source, World).Pose())
	}
	for _, tc := range []struct {
		name           string
		source, target Frame
	}{
		{"general", tree.tool, tree.camera},
		{"general reversed", tree.camera, tree.tool},
		{"siblings", tree.link1, tree.camera},
		{"target is ancestor", tree.tool, tree.link1},
		{"source is ancestor", tree.base, tree.link2},
		{"parent and child", tree.link2, tree.tool},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tf := mustResolve(t, tc.source, tc.target)
			test.That(t, spatial.PoseAlmostEqual(tf.Pose(), viaWorld(tc.source, tc.target)), test.ShouldBeTrue)
		})
	}

	// a frame is its own common ancestor with its parent
	tf := mustResolve(t, tree.tool, tree.link2)
	test.That(t, spatial.PoseAlmostEqual(tf.Pose(), tree.tool.Pose()), test.ShouldBeTrue)
}

func TestResolveDisjoint(t *testing.T) {
	fs := NewFrameSystem("test", logging.NewTestLogger(t))
	r1, err := fs.NewFrame("r1", spatial.NewPoseFromPoint(r3.Vector{X: 1}), World)
	test.That(t, err, test.ShouldBeNil)
	r2, err := fs.NewFrame("r2", spatial.NewPoseFromPoint(r3.Vector{Y: 1}), World)
	test.That(t, err, test.ShouldBeNil)
	a, err := fs.NewFrame("a", nil, r1)
	test.That(t, err, test.ShouldBeNil)
	b, err := fs.NewFrame("b", nil, r2)
	test.That(t, err, test.ShouldBeNil)

	_, err = Resolve(a, b)
	test.That(t, errors.Is(err, ErrNoCommonAncestor), test.ShouldBeTrue)
	test.That(t, errors.Is(err, ErrStructural), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, `"a"`)

	// roots share the global frame
	_, err = Resolve(r1, r2)
	test.That(t, err, test.ShouldBeNil)

	other := NewFrameSystem("other", logging.NewTestLogger(t))
	x, err := other.NewIdentityFrame("x")
	test.That(t, err, test.ShouldBeNil)
	y, err := other.NewFrame("y", nil, x)
	test.That(t, err, test.ShouldBeNil)
	_, err = Resolve(a, y)
	test.That(t, errors.Is(err, ErrNoCommonAncestor), test.ShouldBeTrue)
	_, err = Resolve(x, r1)
	test.That(t, err, test.ShouldBeNil)
}

func pointsEqual(a, b Point) bool {
	return a.frame == b.frame && spatial.R3VectorAlmostEqual(a.v, b.v, tol)
}

func vectorsEqual(a, b Vector) bool {
	return a.frame == b.frame && spatial.R3VectorAlmostEqual(a.v, b.v, tol)
}

func twistsEqual(a, b Twist) bool {
	return a.frame == b.frame && spatial.SpatialVectorAlmostEqual(a.sv, b.sv, tol)
}

func wrenchesEqual(a, b Wrench) bool {
	return a.frame == b.frame && spatial.SpatialVectorAlmostEqual(a.sv, b.sv, tol)
}

func accelerationsEqual(a, b SpatialAcceleration) bool {
	return a.frame == b.frame && spatial.SpatialVectorAlmostEqual(a.sv, b.sv, tol)
}

func momentaEqual(a, b SpatialMomentum) bool {
	return a.frame == b.frame && spatial.SpatialVectorAlmostEqual(a.sv, b.sv, tol)
}

func rigidInertiasEqual(a, b RigidBodyInertia) bool {
	return a.frame == b.frame && spatial.RigidBodyInertiaAlmostEqual(a.rbi, b.rbi, tol)
}

func articulatedInertiasEqual(a, b ArticulatedBodyInertia) bool {
	return a.frame == b.frame && spatial.ArticulatedBodyInertiaAlmostEqual(a.abi, b.abi, tol)
}

// checkComposes verifies that going through mid agrees with going directly to target, and that the
// direct result comes back to q.
func checkComposes[T Transformable[T]](t *testing.T, q T, mid, target Frame, equal func(a, b T) bool) {
	t.Helper()
	viaMid, err := TransformTo(q, mid)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, viaMid.Frame() == mid, test.ShouldBeTrue)
	indirect, err := TransformTo(viaMid, target)
	test.That(t, err, test.ShouldBeNil)
	direct, err := TransformTo(q, target)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, direct.Frame() == target, test.ShouldBeTrue)
	test.That(t, equal(indirect, direct), test.ShouldBeTrue)

	back, err := TransformTo(direct, q.Frame())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, equal(back, q), test.ShouldBeTrue)
}

func testInertia(f Frame) RigidBodyInertia {
	return NewRigidBodyInertia(f, 2.5, r3.Vector{X: 0.1, Y: -0.2, Z: 0.3}, spatial.Mat3FromRowMajor([9]float64{
		0.4, 0.01, -0.02,
		0.01, 0.5, 0.03,
		-0.02, 0.03, 0.6,
	}))
}

func testArticulatedInertia(f Frame) ArticulatedBodyInertia {
	m := spatial.Mat3FromRowMajor([9]float64{3, 0.1, 0.2, 0.1, 4, 0.3, 0.2, 0.3, 5})
	h := spatial.Mat3FromRowMajor([9]float64{0.1, -0.4, 0.2, 0.5, 0, -0.3, -0.1, 0.6, 0.2})
	j := spatial.Mat3FromRowMajor([9]float64{1, 0.2, 0.1, 0.2, 2, 0.05, 0.1, 0.05, 3})
	return NewArticulatedBodyInertia(f, m, h, j)
}

func TestComposability(t *testing.T) {
	tree := newTestTree(t)
	for _, tc := range []struct {
		name                string
		source, mid, target Frame
	}{
		{"through world", tree.tool, World, tree.camera},
		{"from world", World, tree.link2, tree.camera},
		{"through sibling", tree.camera, tree.tool, tree.link1},
		{"up the chain", tree.tool, tree.link1, tree.base},
	} {
		t.Run(tc.name, func(t *testing.T) {
			src := tc.source
			checkComposes(t, NewPoint(src, r3.Vector{X: 0.3, Y: -1, Z: 2}), tc.mid, tc.target, pointsEqual)
			checkComposes(t, NewVector(src, r3.Vector{X: -0.5, Y: 0.25, Z: 1}), tc.mid, tc.target, vectorsEqual)
			checkComposes(t, NewTwist(src, r3.Vector{X: 0.1, Y: 0.2, Z: -0.3}, r3.Vector{X: 1, Y: -1, Z: 0.5}),
				tc.mid, tc.target, twistsEqual)
			checkComposes(t, NewWrench(src, r3.Vector{X: 4, Y: 0, Z: -2}, r3.Vector{X: 0.5, Y: 0.7, Z: 0.1}),
				tc.mid, tc.target, wrenchesEqual)
			checkComposes(t, NewSpatialAcceleration(src, r3.Vector{Z: 2}, r3.Vector{X: -9.8}), tc.mid, tc.target, accelerationsEqual)
			checkComposes(t, NewSpatialMomentum(src, r3.Vector{X: 1, Y: 2}, r3.Vector{Z: 3}), tc.mid, tc.target, momentaEqual)
			checkComposes(t, testInertia(src), tc.mid, tc.target, rigidInertiasEqual)
			checkComposes(t, testArticulatedInertia(src), tc.mid, tc.target, articulatedInertiasEqual)
		})
	}
}

func TestInertiaInvariants(t *testing.T) {
	tree := newTestTree(t)
	inertia := testInertia(tree.tool)
	twist := NewTwist(tree.tool, r3.Vector{X: 0.3, Y: -0.1, Z: 0.8}, r3.Vector{X: 0.2, Y: 0.5, Z: -1})
	momentum, err := inertia.Mult(twist)
	test.That(t, err, test.ShouldBeNil)
	energy, err := twist.Dot(momentum)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, energy, test.ShouldBeGreaterThan, 0.)

	for _, target := range []Frame{World, tree.camera, tree.link1} {
		movedInertia, err := TransformTo(inertia, target)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, movedInertia.Mass(), test.ShouldEqual, inertia.Mass())
		movedTwist, err := TransformTo(twist, target)
		test.That(t, err, test.ShouldBeNil)
		movedMomentum, err := movedInertia.Mult(movedTwist)
		test.That(t, err, test.ShouldBeNil)
		movedEnergy, err := movedTwist.Dot(movedMomentum)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, movedEnergy, test.ShouldAlmostEqual, energy, 1e-9)

		// momentum of the transformed body equals the transformed momentum
		expected, err := TransformTo(momentum, target)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, momentaEqual(movedMomentum, expected), test.ShouldBeTrue)

		com, err := TransformTo(inertia.CenterOfMass(), target)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, pointsEqual(movedInertia.CenterOfMass(), com), test.ShouldBeTrue)
	}
}

func TestPointMassInertia(t *testing.T) {
	tree := newTestTree(t)
	p := NewPoint(tree.tool, r3.Vector{X: 0.5, Y: -0.25, Z: 1})
	mass := NewRigidBodyInertia(tree.tool, 3, p.Value(), mgl64.Mat3{})
	moved, err := TransformTo(mass, tree.camera)
	test.That(t, err, test.ShouldBeNil)
	movedPoint, err := TransformTo(p, tree.camera)
	test.That(t, err, test.ShouldBeNil)
	expected := NewRigidBodyInertia(tree.camera, 3, movedPoint.Value(), mgl64.Mat3{})
	test.That(t, rigidInertiasEqual(moved, expected), test.ShouldBeTrue)

	articulated, err := TransformTo(mass.ToArticulated(), tree.camera)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, articulatedInertiasEqual(articulated, expected.ToArticulated()), test.ShouldBeTrue)
}

func TestTransformMatchesDense(t *testing.T) {
	tree := newTestTree(t)
	tf := mustResolve(t, tree.tool, tree.camera)
	twist := NewTwist(tree.tool, r3.Vector{X: 1, Y: 2, Z: 3}, r3.Vector{X: -1, Y: 0.5, Z: 0})
	moved, err := tf.Twist(twist)
	test.That(t, err, test.ShouldBeNil)

	var expected mat.VecDense
	expected.MulVec(tf.SpatialTransform().ToDense(), twist.Value().ToVec())
	test.That(t, mat.EqualApprox(&expected, moved.Value().ToVec(), tol), test.ShouldBeTrue)
}

func TestTransformInverse(t *testing.T) {
	tree := newTestTree(t)
	tf := mustResolve(t, tree.tool, tree.camera)
	inv := tf.Inverse()
	test.That(t, inv.Source() == tree.camera, test.ShouldBeTrue)
	test.That(t, inv.Target() == tree.tool, test.ShouldBeTrue)
	test.That(t, spatial.PoseAlmostEqual(inv.Pose(), mustResolve(t, tree.camera, tree.tool).Pose()), test.ShouldBeTrue)
	test.That(t, tf.String(), test.ShouldContainSubstring, "tool -> camera")
}

func TestTransformFrameMismatch(t *testing.T) {
	skipWithoutFrameChecks(t)
	tree := newTestTree(t)
	tf := mustResolve(t, tree.tool, tree.camera)

	_, err := tf.Point(NewPoint(tree.camera, r3.Vector{}))
	test.That(t, errors.Is(err, ErrFrameMismatch), test.ShouldBeTrue)
	_, err = tf.Twist(NewTwist(tree.base, r3.Vector{}, r3.Vector{}))
	test.That(t, errors.Is(err, ErrFrameMismatch), test.ShouldBeTrue)
	_, err = tf.RigidBodyInertia(testInertia(World))
	test.That(t, errors.Is(err, ErrFrameMismatch), test.ShouldBeTrue)
	_, err = tf.ArticulatedBodyInertia(testArticulatedInertia(tree.link1))
	test.That(t, errors.Is(err, ErrFrameMismatch), test.ShouldBeTrue)
}

func TestBatchTransforms(t *testing.T) {
	tree := newTestTree(t)
	tf := mustResolve(t, tree.tool, tree.camera)
	twists := []Twist{
		NewTwist(tree.tool, r3.Vector{X: 1}, r3.Vector{Y: 1}),
		NewTwist(tree.tool, r3.Vector{Z: -1}, r3.Vector{X: 2, Z: 1}),
	}

	out, err := tf.Twists(twists)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(out), test.ShouldEqual, 2)
	for i, tw := range twists {
		single, err := tf.Twist(tw)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, twistsEqual(out[i], single), test.ShouldBeTrue)
	}

	all, err := TransformAllTo(twists, tree.camera)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, twistsEqual(all[1], out[1]), test.ShouldBeTrue)

	empty, err := TransformAllTo([]Wrench{}, tree.camera)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, empty, test.ShouldNotBeNil)
	test.That(t, len(empty), test.ShouldEqual, 0)

	same, err := TransformAllTo(twists, tree.tool)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, same, test.ShouldResemble, twists)
	same[0] = Twist{}
	test.That(t, twists[0].Frame() == tree.tool, test.ShouldBeTrue)

	wrenches, err := tf.Wrenches([]Wrench{NewWrench(tree.tool, r3.Vector{X: 1}, r3.Vector{})})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, wrenches[0].Frame() == tree.camera, test.ShouldBeTrue)
	accels, err := tf.SpatialAccelerations([]SpatialAcceleration{NewSpatialAcceleration(tree.tool, r3.Vector{}, r3.Vector{Z: 1})})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, accels[0].Frame() == tree.camera, test.ShouldBeTrue)

	t.Run("mismatch fails before any output", func(t *testing.T) {
		skipWithoutFrameChecks(t)
		mixed := []Twist{
			twists[0],
			NewTwist(tree.camera, r3.Vector{X: 1}, r3.Vector{}),
			twists[1],
			NewTwist(tree.base, r3.Vector{X: 1}, r3.Vector{}),
		}
		out, err := tf.Twists(mixed)
		test.That(t, out, test.ShouldBeNil)
		test.That(t, errors.Is(err, ErrFrameMismatch), test.ShouldBeTrue)
		test.That(t, len(multierr.Errors(err)), test.ShouldEqual, 2)
		test.That(t, err.Error(), test.ShouldContainSubstring, "element 3")

		out, err = TransformAllTo(mixed, World)
		test.That(t, out, test.ShouldBeNil)
		test.That(t, errors.Is(err, ErrFrameMismatch), test.ShouldBeTrue)
	})
}

func TestPoseInFrame(t *testing.T) {
	tree := newTestTree(t)
	local := spatial.NewPoseFromAxisAngle(r3.Vector{X: 0.2}, r3.Vector{Y: 1}, 0.3)
	pif := NewPoseInFrame(tree.tool, local)
	test.That(t, pif.Frame() == tree.tool, test.ShouldBeTrue)

	inWorld, err := TransformTo(pif, World)
	test.That(t, err, test.ShouldBeNil)
	expected := spatial.Compose(mustResolve(t, tree.tool, World).Pose(), local)
	test.That(t, inWorld.AlmostEqual(NewPoseInFrame(World, expected)), test.ShouldBeTrue)
	test.That(t, inWorld.AlmostEqual(NewPoseInFrame(tree.base, expected)), test.ShouldBeFalse)

	back, err := TransformTo(inWorld, tree.tool)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, back.AlmostEqual(pif), test.ShouldBeTrue)
}
