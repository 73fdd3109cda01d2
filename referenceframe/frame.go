// Package referenceframe defines frames of reference, the transforms between them, and the
// quantities that are expressed in them.
// Useful for if you have a camera mounted on a gripper attached to an arm, measure a velocity in the
// camera frame, and need that velocity expressed at the arm's base.
package referenceframe

import (
	"fmt"

	spatial "go.viam.com/spatialframes/spatialmath"
)

// WorldName is the name reported by the World frame. It cannot be used for any other frame.
const WorldName = "world"

// Frame is a handle to a frame of reference stored in a FrameSystem. Handles are comparable, and two
// handles are the same frame exactly when they are ==, regardless of their numeric poses.
// The zero Frame is World, the global frame, which has no pose and no parent.
type Frame struct {
	fs *FrameSystem
	id int // arena index + 1; zero is World
}

// World is the global frame that every frame tree is ultimately anchored to.
var World = Frame{}

// IsWorld returns whether f is the global frame.
func (f Frame) IsWorld() bool {
	return f.id == 0
}

// System returns the frame system that owns f, or nil for World.
func (f Frame) System() *FrameSystem {
	return f.fs
}

func (f Frame) node() *frameNode {
	return &f.fs.nodes[f.id-1]
}

// Name returns the name of the frame.
func (f Frame) Name() string {
	if f.IsWorld() {
		return WorldName
	}
	return f.node().name
}

// Pose returns the pose of f relative to its parent: the rigid map that carries coordinates expressed
// in f into coordinates expressed in f.Parent(). World has the zero pose.
func (f Frame) Pose() spatial.Pose {
	if f.IsWorld() {
		return spatial.NewZeroPose()
	}
	return f.node().pose
}

// Parent returns the frame that f is defined relative to. Frames anchored directly to the global
// frame, and World itself, return World.
func (f Frame) Parent() Frame {
	if f.IsWorld() {
		return World
	}
	return f.fs.frameAt(f.node().parent)
}

// SetParent reparents f. Only the link changes: the local pose of f is kept, and quantities already
// tagged with f are not updated. Reparenting that would create a cycle, or that would link frames
// from different systems, fails with ErrStructural.
func (f Frame) SetParent(parent Frame) error {
	if f.IsWorld() {
		return NewInvalidParameterError("the world frame cannot be reparented")
	}
	if !parent.IsWorld() && parent.fs != f.fs {
		return NewFrameNotInSystemError(parent, f.fs.name)
	}
	chain, err := f.fs.ancestors(parent)
	if err != nil {
		return err
	}
	for _, id := range chain {
		if id == f.id {
			return NewCyclicFrameError(f)
		}
	}
	old := f.Parent()
	f.node().parent = parent.id
	f.fs.logger.Debugw("reparented frame", "frame", f.Name(), "old_parent", old.Name(), "parent", parent.Name())
	return nil
}

// SetPose replaces the pose of f relative to its parent.
func (f Frame) SetPose(pose spatial.Pose) error {
	if f.IsWorld() {
		return NewInvalidParameterError("the world frame has no pose")
	}
	if pose == nil {
		pose = spatial.NewZeroPose()
	}
	f.node().pose = pose
	f.fs.logger.Debugw("updated frame pose", "frame", f.Name(), "pose", pose)
	return nil
}

// Invert replaces the pose of f with its inverse, keeping the parent.
func (f Frame) Invert() error {
	if f.IsWorld() {
		return NewInvalidParameterError("the world frame has no pose")
	}
	return f.SetPose(spatial.PoseInverse(f.Pose()))
}

func (f Frame) String() string {
	if f.IsWorld() {
		return WorldName
	}
	return fmt.Sprintf("%s%v in %s", f.Name(), f.Pose(), f.Parent().Name())
}

// FramesAlmostEqual compares the poses of two frames that share a parent. Translations are compared
// componentwise relative to their magnitude and rotations by the angle between them, both against tol.
// Frames with different parents cannot be compared and return ErrFrameMismatch.
func FramesAlmostEqual(a, b Frame, tol float64) (bool, error) {
	if a.Parent() != b.Parent() {
		return false, NewParentFrameMismatchError(a, b)
	}
	return spatial.PoseRelativelyEqual(a.Pose(), b.Pose(), tol), nil
}
