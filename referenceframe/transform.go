package referenceframe

import (
	"fmt"

	spatial "go.viam.com/spatialframes/spatialmath"
)

// Transform is the rigid map carrying coordinates expressed in Source into coordinates expressed in
// Target. It is a snapshot: later changes to the frame tree do not affect it.
type Transform struct {
	source, target Frame
	pose           spatial.Pose
	st             *spatial.SpatialTransform
}

func newTransform(source, target Frame, pose spatial.Pose) *Transform {
	return &Transform{source: source, target: target, pose: pose, st: spatial.NewSpatialTransform(pose)}
}

// Source returns the frame the transform maps from.
func (tf *Transform) Source() Frame {
	return tf.source
}

// Target returns the frame the transform maps to.
func (tf *Transform) Target() Frame {
	return tf.target
}

// Pose returns the rotation and translation of the transform: the pose of Source expressed in Target.
func (tf *Transform) Pose() spatial.Pose {
	return tf.pose
}

// SpatialTransform returns the block form of the transform used on 6-vectors and inertias.
func (tf *Transform) SpatialTransform() *spatial.SpatialTransform {
	return tf.st
}

// Inverse returns the transform from Target back to Source.
func (tf *Transform) Inverse() *Transform {
	return newTransform(tf.target, tf.source, spatial.PoseInverse(tf.pose))
}

func (tf *Transform) String() string {
	return fmt.Sprintf("%s -> %s: %v", tf.source.Name(), tf.target.Name(), tf.pose)
}

// Resolve computes the transform that re-expresses quantities in source as quantities in target.
//
// When neither frame is World, the nearest common ancestor is found by scanning the target and its
// ancestors outward, and for each candidate the source and its ancestors inward; the first hit wins.
// World is never a candidate. Root frames are siblings under World and always resolve, even across
// systems; any other pair whose chains never meet fails with ErrNoCommonAncestor.
func Resolve(source, target Frame) (*Transform, error) {
	switch {
	case source == target:
		return newTransform(source, target, spatial.NewZeroPose()), nil
	case target.IsWorld():
		pose, err := poseToRoot(source)
		if err != nil {
			return nil, err
		}
		return newTransform(source, target, pose), nil
	case source.IsWorld():
		pose, err := poseToRoot(target)
		if err != nil {
			return nil, err
		}
		return newTransform(source, target, spatial.PoseInverse(pose)), nil
	case source.Parent() == target.Parent():
		return newTransform(source, target, spatial.PoseBetween(target.Pose(), source.Pose())), nil
	}
	if source.fs != target.fs {
		return nil, NewNoCommonAncestorError(source, target)
	}
	fs := source.fs
	sourceChain, err := fs.ancestors(source)
	if err != nil {
		return nil, err
	}
	targetChain, err := fs.ancestors(target)
	if err != nil {
		return nil, err
	}
	for ti, candidate := range targetChain {
		for si, id := range sourceChain {
			if id != candidate {
				continue
			}
			left := composeChain(fs, sourceChain[:si+1])
			right := composeChain(fs, targetChain[:ti+1])
			fs.logger.Debugw("resolved transform through common ancestor",
				"source", source.Name(), "target", target.Name(), "ancestor", fs.frameAt(candidate).Name())
			return newTransform(source, target, spatial.PoseBetween(right, left)), nil
		}
	}
	return nil, NewNoCommonAncestorError(source, target)
}

// poseToRoot composes the poses of f and every ancestor, giving the pose of f in World.
func poseToRoot(f Frame) (spatial.Pose, error) {
	chain, err := f.fs.ancestors(f)
	if err != nil {
		return nil, err
	}
	return composeChain(f.fs, chain), nil
}

// composeChain composes the poses of a chain of frames ordered from the innermost outward.
func composeChain(fs *FrameSystem, chain []int) spatial.Pose {
	pose := spatial.NewZeroPose()
	for _, id := range chain {
		pose = spatial.Compose(fs.nodes[id-1].pose, pose)
	}
	return pose
}
