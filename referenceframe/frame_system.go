package referenceframe

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"go.viam.com/spatialframes/logging"
	spatial "go.viam.com/spatialframes/spatialmath"
)

type frameNode struct {
	name   string
	pose   spatial.Pose
	parent int // Frame.id of the parent; zero is World
}

// FrameSystem owns a forest of frames. Every frame created by a FrameSystem is anchored, possibly
// through other frames, to World or to nothing reachable from any other system. A FrameSystem is
// not safe for concurrent mutation.
type FrameSystem struct {
	name   string
	nodes  []frameNode
	byName map[string]int
	logger logging.Logger
}

// NewFrameSystem returns an empty frame system. A nil logger discards all logs.
func NewFrameSystem(name string, logger logging.Logger) *FrameSystem {
	if logger == nil {
		logger = logging.NewBlankLogger(name)
	}
	return &FrameSystem{
		name:   name,
		byName: map[string]int{},
		logger: logger,
	}
}

// Name returns the name of the frame system.
func (fs *FrameSystem) Name() string {
	return fs.name
}

// Logger returns the logger the frame system reports structural changes to.
func (fs *FrameSystem) Logger() logging.Logger {
	return fs.logger
}

func (fs *FrameSystem) frameAt(id int) Frame {
	if id == 0 {
		return World
	}
	return Frame{fs: fs, id: id}
}

// checkName returns the name a new frame should be stored under.
func (fs *FrameSystem) checkName(name string) (string, error) {
	if name == "" {
		name = fmt.Sprintf("frame_%d", len(fs.nodes)+1)
	}
	if name == WorldName {
		return "", NewInvalidParameterError("frame name %q is reserved", WorldName)
	}
	if _, ok := fs.byName[name]; ok {
		return "", NewInvalidParameterError("frame with name %q already exists in frame system %q", name, fs.name)
	}
	return name, nil
}

func (fs *FrameSystem) checkMember(f Frame) error {
	if !f.IsWorld() && f.fs != fs {
		return NewFrameNotInSystemError(f, fs.name)
	}
	return nil
}

// NewIdentityFrame creates a frame with no parent, zero translation, and the identity rotation.
// An empty name is replaced by a generated one.
func (fs *FrameSystem) NewIdentityFrame(name string) (Frame, error) {
	return fs.NewFrame(name, spatial.NewZeroPose(), World)
}

// NewFrame creates a frame with the given pose relative to parent. Pass World as parent for a frame
// anchored to the global frame. A nil pose is the identity.
func (fs *FrameSystem) NewFrame(name string, pose spatial.Pose, parent Frame) (Frame, error) {
	if err := fs.checkMember(parent); err != nil {
		return World, err
	}
	name, err := fs.checkName(name)
	if err != nil {
		return World, err
	}
	if pose == nil {
		pose = spatial.NewZeroPose()
	}
	fs.nodes = append(fs.nodes, frameNode{name: name, pose: pose, parent: parent.id})
	id := len(fs.nodes)
	fs.byName[name] = id
	fs.logger.Debugw("added frame", "frame", name, "parent", parent.Name(), "pose", pose)
	return fs.frameAt(id), nil
}

// Frame returns the frame with the given name. The name "world" returns World.
func (fs *FrameSystem) Frame(name string) (Frame, error) {
	if name == WorldName {
		return World, nil
	}
	id, ok := fs.byName[name]
	if !ok {
		return World, errors.Errorf("frame with name %q not in frame system %q", name, fs.name)
	}
	return fs.frameAt(id), nil
}

// Frames returns every frame in creation order. World is not included.
func (fs *FrameSystem) Frames() []Frame {
	return lo.Times(len(fs.nodes), func(i int) Frame {
		return fs.frameAt(i + 1)
	})
}

// FrameNames returns the names of every frame in creation order.
func (fs *FrameSystem) FrameNames() []string {
	return lo.Map(fs.nodes, func(n frameNode, _ int) string {
		return n.name
	})
}

// ancestors returns the ids of f and each of its ancestors, ending just below World. The walk
// is bounded by the number of frames so a corrupted chain is reported instead of looping.
func (fs *FrameSystem) ancestors(f Frame) ([]int, error) {
	var chain []int
	for id := f.id; id != 0; id = fs.nodes[id-1].parent {
		if len(chain) >= len(fs.nodes) {
			return nil, NewCyclicFrameError(f)
		}
		chain = append(chain, id)
	}
	return chain, nil
}

// TracebackFrame traces the parentage of the given frame up to its root, and returns the full list
// of frames in between. The list includes the query frame and ends with World.
func (fs *FrameSystem) TracebackFrame(query Frame) ([]Frame, error) {
	if err := fs.checkMember(query); err != nil {
		return nil, err
	}
	chain, err := fs.ancestors(query)
	if err != nil {
		return nil, err
	}
	frames := lo.Map(chain, func(id, _ int) Frame {
		return fs.frameAt(id)
	})
	return append(frames, World), nil
}

// Compose creates the frame a*b: b's pose followed by a's, so that a quantity expressed in the new
// frame is first carried by b and then by a. a and b must share a parent, which the new frame
// inherits.
func (fs *FrameSystem) Compose(name string, a, b Frame) (Frame, error) {
	if a.Parent() != b.Parent() {
		return World, NewParentFrameMismatchError(a, b)
	}
	return fs.NewFrame(name, spatial.Compose(a.Pose(), b.Pose()), b.Parent())
}

// Inverse creates a frame whose pose is the inverse of f's, with the same parent. f is unchanged.
func (fs *FrameSystem) Inverse(name string, f Frame) (Frame, error) {
	if f.IsWorld() {
		return World, NewInvalidParameterError("the world frame has no pose")
	}
	return fs.NewFrame(name, spatial.PoseInverse(f.Pose()), f.Parent())
}

// Interpolate creates a frame between a and b: translation linearly and rotation along the
// shortest arc. t must lie in [0, 1]; t == 0 reproduces a and t == 1 reproduces b. a and b must
// share a parent, which the new frame inherits.
func (fs *FrameSystem) Interpolate(name string, a, b Frame, t float64) (Frame, error) {
	if !(t >= 0 && t <= 1) {
		return World, NewInvalidParameterError("interpolation parameter %v outside of [0, 1]", t)
	}
	if a.Parent() != b.Parent() {
		return World, NewParentFrameMismatchError(a, b)
	}
	var pose spatial.Pose
	switch t {
	case 0:
		pose = a.Pose()
	case 1:
		pose = b.Pose()
	default:
		pose = spatial.Interpolate(a.Pose(), b.Pose(), t)
	}
	return fs.NewFrame(name, pose, a.Parent())
}

func (fs *FrameSystem) String() string {
	return fmt.Sprintf("FrameSystem %s: %v", fs.name, fs.FrameNames())
}
