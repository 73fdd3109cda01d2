package referenceframe

import (
	"fmt"

	"github.com/golang/geo/r3"

	spatial "go.viam.com/spatialframes/spatialmath"
)

// ForceVector is a force-like spatial quantity that pairs with a twist: a Wrench or a SpatialMomentum.
type ForceVector interface {
	Frame() Frame
	Value() spatial.SpatialVector
	isForce()
}

// Wrench is a spatial force: the force on top and, below it, the torque about the frame origin.
type Wrench struct {
	frame Frame
	sv    spatial.SpatialVector
}

// NewWrench returns the wrench with the given force and torque expressed in frame.
func NewWrench(frame Frame, force, torque r3.Vector) Wrench {
	return Wrench{frame: frame, sv: spatial.SpatialVector{Upper: force, Lower: torque}}
}

// NewWrenchFromSpatialVector tags an untagged force vector with frame.
func NewWrenchFromSpatialVector(frame Frame, sv spatial.SpatialVector) Wrench {
	return Wrench{frame: frame, sv: sv}
}

func (w Wrench) isForce() {}

// Frame returns the frame the wrench is expressed in.
func (w Wrench) Frame() Frame {
	return w.frame
}

// Value returns the untagged components of the wrench.
func (w Wrench) Value() spatial.SpatialVector {
	return w.sv
}

// Force returns the linear part.
func (w Wrench) Force() r3.Vector {
	return w.sv.Upper
}

// Torque returns the moment about the frame origin.
func (w Wrench) Torque() r3.Vector {
	return w.sv.Lower
}

// Transform re-expresses the wrench in the target of tf.
func (w Wrench) Transform(tf *Transform) (Wrench, error) {
	return tf.Wrench(w)
}

// Add returns w + o.
func (w Wrench) Add(o Wrench) (Wrench, error) {
	if err := CheckFrames(w.frame, o.frame); err != nil {
		return Wrench{}, err
	}
	return Wrench{frame: w.frame, sv: w.sv.Add(o.sv)}, nil
}

// Sub returns w - o.
func (w Wrench) Sub(o Wrench) (Wrench, error) {
	if err := CheckFrames(w.frame, o.frame); err != nil {
		return Wrench{}, err
	}
	return Wrench{frame: w.frame, sv: w.sv.Sub(o.sv)}, nil
}

// Scale returns w multiplied by s.
func (w Wrench) Scale(s float64) Wrench {
	return Wrench{frame: w.frame, sv: w.sv.Scale(s)}
}

func (w Wrench) String() string {
	return fmt.Sprintf("wrench %v in %s", w.sv, w.frame.Name())
}

// SpatialMomentum is the momentum of a moving body: linear momentum on top and angular momentum about
// the frame origin below.
type SpatialMomentum struct {
	frame Frame
	sv    spatial.SpatialVector
}

// NewSpatialMomentum returns the momentum with the given linear and angular parts expressed in frame.
func NewSpatialMomentum(frame Frame, linear, angular r3.Vector) SpatialMomentum {
	return SpatialMomentum{frame: frame, sv: spatial.SpatialVector{Upper: linear, Lower: angular}}
}

func (m SpatialMomentum) isForce() {}

// Frame returns the frame the momentum is expressed in.
func (m SpatialMomentum) Frame() Frame {
	return m.frame
}

// Value returns the untagged components of the momentum.
func (m SpatialMomentum) Value() spatial.SpatialVector {
	return m.sv
}

// Linear returns the linear momentum.
func (m SpatialMomentum) Linear() r3.Vector {
	return m.sv.Upper
}

// Angular returns the angular momentum about the frame origin.
func (m SpatialMomentum) Angular() r3.Vector {
	return m.sv.Lower
}

// Transform re-expresses the momentum in the target of tf.
func (m SpatialMomentum) Transform(tf *Transform) (SpatialMomentum, error) {
	return tf.SpatialMomentum(m)
}

// Add returns m + o.
func (m SpatialMomentum) Add(o SpatialMomentum) (SpatialMomentum, error) {
	if err := CheckFrames(m.frame, o.frame); err != nil {
		return SpatialMomentum{}, err
	}
	return SpatialMomentum{frame: m.frame, sv: m.sv.Add(o.sv)}, nil
}

func (m SpatialMomentum) String() string {
	return fmt.Sprintf("momentum %v in %s", m.sv, m.frame.Name())
}

// Wrench re-expresses w in the target of tf.
func (tf *Transform) Wrench(w Wrench) (Wrench, error) {
	if err := CheckFrames(tf.source, w.frame); err != nil {
		return Wrench{}, err
	}
	return Wrench{frame: tf.target, sv: tf.st.ApplySpatialVector(w.sv)}, nil
}

// SpatialMomentum re-expresses m in the target of tf.
func (tf *Transform) SpatialMomentum(m SpatialMomentum) (SpatialMomentum, error) {
	if err := CheckFrames(tf.source, m.frame); err != nil {
		return SpatialMomentum{}, err
	}
	return SpatialMomentum{frame: tf.target, sv: tf.st.ApplySpatialVector(m.sv)}, nil
}
