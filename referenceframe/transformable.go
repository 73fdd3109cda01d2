package referenceframe

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	spatial "go.viam.com/spatialframes/spatialmath"
)

// Transformable is a quantity tagged with the frame it is expressed in that can be re-expressed in
// another frame by a Transform whose source is that frame.
type Transformable[T any] interface {
	Frame() Frame
	Transform(tf *Transform) (T, error)
}

// TransformTo resolves the transform from q's frame to target and applies it.
func TransformTo[T Transformable[T]](q T, target Frame) (T, error) {
	tf, err := Resolve(q.Frame(), target)
	if err != nil {
		var zero T
		return zero, err
	}
	return q.Transform(tf)
}

// ApplyAll applies tf to every element of qs. Every element is checked against the source of tf
// before any is transformed, so a mismatch anywhere fails the whole batch and no output is produced.
func ApplyAll[T Transformable[T]](tf *Transform, qs []T) ([]T, error) {
	var errs error
	for i, q := range qs {
		if err := CheckFrames(tf.source, q.Frame()); err != nil {
			multierr.AppendInto(&errs, errors.Wrapf(err, "element %d", i))
		}
	}
	if errs != nil {
		return nil, errs
	}
	if tf.source == tf.target {
		return append([]T{}, qs...), nil
	}
	out := make([]T, 0, len(qs))
	for _, q := range qs {
		res, err := q.Transform(tf)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

// TransformAllTo re-expresses a batch of quantities in target. The batch must share the frame of its
// first element. An empty batch returns an empty result.
func TransformAllTo[T Transformable[T]](qs []T, target Frame) ([]T, error) {
	if len(qs) == 0 {
		return []T{}, nil
	}
	tf, err := Resolve(qs[0].Frame(), target)
	if err != nil {
		return nil, err
	}
	return ApplyAll(tf, qs)
}

// Twists applies tf to a batch of twists.
func (tf *Transform) Twists(ts []Twist) ([]Twist, error) {
	return ApplyAll(tf, ts)
}

// Wrenches applies tf to a batch of wrenches.
func (tf *Transform) Wrenches(ws []Wrench) ([]Wrench, error) {
	return ApplyAll(tf, ws)
}

// SpatialAccelerations applies tf to a batch of spatial accelerations. Motion of the frames themselves
// is not accounted for.
func (tf *Transform) SpatialAccelerations(as []SpatialAcceleration) ([]SpatialAcceleration, error) {
	return ApplyAll(tf, as)
}

// PoseInFrame is a data structure that packages a pose with the frame in which it was observed.
type PoseInFrame struct {
	frame Frame
	pose  spatial.Pose
}

// NewPoseInFrame generates a new PoseInFrame.
func NewPoseInFrame(frame Frame, pose spatial.Pose) *PoseInFrame {
	return &PoseInFrame{
		frame: frame,
		pose:  pose,
	}
}

// Frame returns the frame in which the pose was observed.
func (pF *PoseInFrame) Frame() Frame {
	return pF.frame
}

// Pose returns the pose that was observed.
func (pF *PoseInFrame) Pose() spatial.Pose {
	return pF.pose
}

// Transform re-expresses the pose in the target of tf.
func (pF *PoseInFrame) Transform(tf *Transform) (*PoseInFrame, error) {
	if err := CheckFrames(tf.source, pF.frame); err != nil {
		return nil, err
	}
	return NewPoseInFrame(tf.target, spatial.Compose(tf.pose, pF.pose)), nil
}

// AlmostEqual returns whether two poses were observed in the same frame and are approximately equal.
func (pF *PoseInFrame) AlmostEqual(other *PoseInFrame) bool {
	return pF.frame == other.frame && spatial.PoseAlmostEqual(pF.pose, other.pose)
}
