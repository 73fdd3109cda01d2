package referenceframe

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"

	spatial "go.viam.com/spatialframes/spatialmath"
)

// RigidBodyInertia is the spatial inertia of a rigid body expressed in a frame.
type RigidBodyInertia struct {
	frame Frame
	rbi   spatial.RigidBodyInertia
}

// NewRigidBodyInertia returns the inertia of a body of mass m whose center of mass is at com and whose
// rotational inertia about the center of mass is jc, all expressed in frame.
func NewRigidBodyInertia(frame Frame, m float64, com r3.Vector, jc mgl64.Mat3) RigidBodyInertia {
	return RigidBodyInertia{frame: frame, rbi: spatial.NewRigidBodyInertia(m, com, jc)}
}

// NewRigidBodyInertiaFromValue tags an untagged inertia with frame.
func NewRigidBodyInertiaFromValue(frame Frame, rbi spatial.RigidBodyInertia) RigidBodyInertia {
	return RigidBodyInertia{frame: frame, rbi: rbi}
}

// Frame returns the frame the inertia is expressed in.
func (i RigidBodyInertia) Frame() Frame {
	return i.frame
}

// Value returns the untagged inertia.
func (i RigidBodyInertia) Value() spatial.RigidBodyInertia {
	return i.rbi
}

// Mass returns the mass of the body.
func (i RigidBodyInertia) Mass() float64 {
	return i.rbi.Mass
}

// CenterOfMass returns the center of mass as a point in the inertia's frame.
func (i RigidBodyInertia) CenterOfMass() Point {
	return Point{frame: i.frame, v: i.rbi.CenterOfMass()}
}

// Transform re-expresses the inertia in the target of tf.
func (i RigidBodyInertia) Transform(tf *Transform) (RigidBodyInertia, error) {
	return tf.RigidBodyInertia(i)
}

// Mult returns the momentum of the body moving with twist t.
func (i RigidBodyInertia) Mult(t Twist) (SpatialMomentum, error) {
	if err := CheckFrames(i.frame, t.frame); err != nil {
		return SpatialMomentum{}, err
	}
	return SpatialMomentum{frame: i.frame, sv: i.rbi.Mult(t.sv)}, nil
}

// Add returns the inertia of the two bodies rigidly joined.
func (i RigidBodyInertia) Add(o RigidBodyInertia) (RigidBodyInertia, error) {
	if err := CheckFrames(i.frame, o.frame); err != nil {
		return RigidBodyInertia{}, err
	}
	return RigidBodyInertia{frame: i.frame, rbi: i.rbi.Add(o.rbi)}, nil
}

// ToArticulated returns the equivalent articulated body inertia in the same frame.
func (i RigidBodyInertia) ToArticulated() ArticulatedBodyInertia {
	return ArticulatedBodyInertia{frame: i.frame, abi: i.rbi.ToArticulated()}
}

func (i RigidBodyInertia) String() string {
	return fmt.Sprintf("rigid body inertia %v in %s", i.rbi, i.frame.Name())
}

// ArticulatedBodyInertia is the apparent inertia of a body at the handle of an articulated chain,
// expressed in a frame.
type ArticulatedBodyInertia struct {
	frame Frame
	abi   spatial.ArticulatedBodyInertia
}

// NewArticulatedBodyInertia tags the blocks M, H and J with frame.
func NewArticulatedBodyInertia(frame Frame, m, h, j mgl64.Mat3) ArticulatedBodyInertia {
	return ArticulatedBodyInertia{frame: frame, abi: spatial.ArticulatedBodyInertia{M: m, H: h, J: j}}
}

// Frame returns the frame the inertia is expressed in.
func (i ArticulatedBodyInertia) Frame() Frame {
	return i.frame
}

// Value returns the untagged inertia.
func (i ArticulatedBodyInertia) Value() spatial.ArticulatedBodyInertia {
	return i.abi
}

// Transform re-expresses the inertia in the target of tf.
func (i ArticulatedBodyInertia) Transform(tf *Transform) (ArticulatedBodyInertia, error) {
	return tf.ArticulatedBodyInertia(i)
}

// Mult returns the momentum produced by twist t.
func (i ArticulatedBodyInertia) Mult(t Twist) (SpatialMomentum, error) {
	if err := CheckFrames(i.frame, t.frame); err != nil {
		return SpatialMomentum{}, err
	}
	return SpatialMomentum{frame: i.frame, sv: i.abi.Mult(t.sv)}, nil
}

// Add returns i + o.
func (i ArticulatedBodyInertia) Add(o ArticulatedBodyInertia) (ArticulatedBodyInertia, error) {
	if err := CheckFrames(i.frame, o.frame); err != nil {
		return ArticulatedBodyInertia{}, err
	}
	return ArticulatedBodyInertia{frame: i.frame, abi: i.abi.Add(o.abi)}, nil
}

func (i ArticulatedBodyInertia) String() string {
	return fmt.Sprintf("articulated body inertia in %s", i.frame.Name())
}

// RigidBodyInertia re-expresses i in the target of tf. Mass is unchanged.
func (tf *Transform) RigidBodyInertia(i RigidBodyInertia) (RigidBodyInertia, error) {
	if err := CheckFrames(tf.source, i.frame); err != nil {
		return RigidBodyInertia{}, err
	}
	return RigidBodyInertia{frame: tf.target, rbi: tf.st.ApplyRigidBodyInertia(i.rbi)}, nil
}

// ArticulatedBodyInertia re-expresses i in the target of tf.
func (tf *Transform) ArticulatedBodyInertia(i ArticulatedBodyInertia) (ArticulatedBodyInertia, error) {
	if err := CheckFrames(tf.source, i.frame); err != nil {
		return ArticulatedBodyInertia{}, err
	}
	return ArticulatedBodyInertia{frame: tf.target, abi: tf.st.ApplyArticulatedBodyInertia(i.abi)}, nil
}
