package referenceframe

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	spatial "go.viam.com/spatialframes/spatialmath"
)

// Twist is a spatial velocity: angular velocity on top and, below it, the linear velocity of the body
// point passing through the origin of the frame.
type Twist struct {
	frame Frame
	sv    spatial.SpatialVector
}

// NewTwist returns the twist with the given angular and linear parts expressed in frame.
func NewTwist(frame Frame, angular, linear r3.Vector) Twist {
	return Twist{frame: frame, sv: spatial.SpatialVector{Upper: angular, Lower: linear}}
}

// NewTwistFromSpatialVector tags an untagged motion vector with frame.
func NewTwistFromSpatialVector(frame Frame, sv spatial.SpatialVector) Twist {
	return Twist{frame: frame, sv: sv}
}

// NewTwistFromPoses returns the constant twist, expressed in frame, that carries a body from pose from
// to pose to over dt seconds. Both poses are relative to frame. dt must be positive.
func NewTwistFromPoses(frame Frame, from, to spatial.Pose, dt float64) (Twist, error) {
	if dt <= 0 {
		return Twist{}, NewInvalidParameterError("time step must be positive, got %v", dt)
	}
	av, lin := spatial.PoseDelta(from, to, dt)
	w := r3.Vector(av)
	return NewTwist(frame, w, lin.Add(from.Point().Cross(w))), nil
}

// Frame returns the frame the twist is expressed in.
func (t Twist) Frame() Frame {
	return t.frame
}

// Value returns the untagged components of the twist.
func (t Twist) Value() spatial.SpatialVector {
	return t.sv
}

// Angular returns the angular velocity.
func (t Twist) Angular() r3.Vector {
	return t.sv.Upper
}

// Linear returns the linear velocity of the body point at the frame origin.
func (t Twist) Linear() r3.Vector {
	return t.sv.Lower
}

// Transform re-expresses the twist in the target of tf.
func (t Twist) Transform(tf *Transform) (Twist, error) {
	return tf.Twist(t)
}

// Add returns t + o.
func (t Twist) Add(o Twist) (Twist, error) {
	if err := CheckFrames(t.frame, o.frame); err != nil {
		return Twist{}, err
	}
	return Twist{frame: t.frame, sv: t.sv.Add(o.sv)}, nil
}

// Sub returns t - o.
func (t Twist) Sub(o Twist) (Twist, error) {
	if err := CheckFrames(t.frame, o.frame); err != nil {
		return Twist{}, err
	}
	return Twist{frame: t.frame, sv: t.sv.Sub(o.sv)}, nil
}

// Scale returns t multiplied by s.
func (t Twist) Scale(s float64) Twist {
	return Twist{frame: t.frame, sv: t.sv.Scale(s)}
}

// Dot pairs the twist with a force quantity. Against a wrench this is power; against the momentum
// of the moving body it is twice the kinetic energy.
func (t Twist) Dot(f ForceVector) (float64, error) {
	if err := CheckFrames(t.frame, f.Frame()); err != nil {
		return 0, err
	}
	return t.sv.Dot(f.Value()), nil
}

// Cross returns the motion cross product t x o, the rate of change of o seen from a frame moving
// with t.
func (t Twist) Cross(o Twist) (SpatialAcceleration, error) {
	if err := CheckFrames(t.frame, o.frame); err != nil {
		return SpatialAcceleration{}, err
	}
	return SpatialAcceleration{frame: t.frame, sv: t.sv.Cross(o.sv)}, nil
}

// CrossForce returns the force cross product t x* f. For f the momentum of the body moving with t
// this is the bias wrench of the Newton-Euler equations.
func (t Twist) CrossForce(f ForceVector) (Wrench, error) {
	if err := CheckFrames(t.frame, f.Frame()); err != nil {
		return Wrench{}, err
	}
	return Wrench{frame: t.frame, sv: t.sv.Cross(f.Value())}, nil
}

func (t Twist) String() string {
	return fmt.Sprintf("twist %v in %s", t.sv, t.frame.Name())
}

// SumTwists returns the linear combination sum(coeffs[i] * twists[i]), e.g. a Jacobian times joint
// rates. The twists must share a frame, and there must be at least one so the result has a frame.
func SumTwists(twists []Twist, coeffs []float64) (Twist, error) {
	if len(twists) != len(coeffs) {
		return Twist{}, NewInvalidParameterError("%d twists but %d coefficients", len(twists), len(coeffs))
	}
	if len(twists) == 0 {
		return Twist{}, NewInvalidParameterError("cannot sum an empty set of twists without losing the frame")
	}
	frame := twists[0].frame
	var errs error
	for i, t := range twists[1:] {
		if err := CheckFrames(frame, t.frame); err != nil {
			multierr.AppendInto(&errs, errors.Wrapf(err, "twist %d", i+1))
		}
	}
	if errs != nil {
		return Twist{}, errs
	}
	var sum spatial.SpatialVector
	for i, t := range twists {
		sum = sum.Add(t.sv.Scale(coeffs[i]))
	}
	return Twist{frame: frame, sv: sum}, nil
}

// SpatialAcceleration is the time derivative of a twist: angular acceleration on top and linear
// acceleration of the body point at the frame origin below.
type SpatialAcceleration struct {
	frame Frame
	sv    spatial.SpatialVector
}

// NewSpatialAcceleration returns the acceleration with the given angular and linear parts expressed in frame.
func NewSpatialAcceleration(frame Frame, angular, linear r3.Vector) SpatialAcceleration {
	return SpatialAcceleration{frame: frame, sv: spatial.SpatialVector{Upper: angular, Lower: linear}}
}

// Frame returns the frame the acceleration is expressed in.
func (a SpatialAcceleration) Frame() Frame {
	return a.frame
}

// Value returns the untagged components of the acceleration.
func (a SpatialAcceleration) Value() spatial.SpatialVector {
	return a.sv
}

// Angular returns the angular acceleration.
func (a SpatialAcceleration) Angular() r3.Vector {
	return a.sv.Upper
}

// Linear returns the linear acceleration.
func (a SpatialAcceleration) Linear() r3.Vector {
	return a.sv.Lower
}

// Transform re-expresses the acceleration in the target of tf. The frames are treated as fixed
// relative to each other; any velocity product terms from moving frames must be added by the caller.
func (a SpatialAcceleration) Transform(tf *Transform) (SpatialAcceleration, error) {
	return tf.SpatialAcceleration(a)
}

// Add returns a + o.
func (a SpatialAcceleration) Add(o SpatialAcceleration) (SpatialAcceleration, error) {
	if err := CheckFrames(a.frame, o.frame); err != nil {
		return SpatialAcceleration{}, err
	}
	return SpatialAcceleration{frame: a.frame, sv: a.sv.Add(o.sv)}, nil
}

// Sub returns a - o.
func (a SpatialAcceleration) Sub(o SpatialAcceleration) (SpatialAcceleration, error) {
	if err := CheckFrames(a.frame, o.frame); err != nil {
		return SpatialAcceleration{}, err
	}
	return SpatialAcceleration{frame: a.frame, sv: a.sv.Sub(o.sv)}, nil
}

func (a SpatialAcceleration) String() string {
	return fmt.Sprintf("acceleration %v in %s", a.sv, a.frame.Name())
}

// Twist re-expresses t in the target of tf.
func (tf *Transform) Twist(t Twist) (Twist, error) {
	if err := CheckFrames(tf.source, t.frame); err != nil {
		return Twist{}, err
	}
	return Twist{frame: tf.target, sv: tf.st.ApplySpatialVector(t.sv)}, nil
}

// SpatialAcceleration re-expresses a in the target of tf.
func (tf *Transform) SpatialAcceleration(a SpatialAcceleration) (SpatialAcceleration, error) {
	if err := CheckFrames(tf.source, a.frame); err != nil {
		return SpatialAcceleration{}, err
	}
	return SpatialAcceleration{frame: tf.target, sv: tf.st.ApplySpatialVector(a.sv)}, nil
}
