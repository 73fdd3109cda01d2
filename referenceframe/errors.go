package referenceframe

import (
	"github.com/pkg/errors"
)

var (
	// ErrFrameMismatch is returned when two quantities expressed in different frames are combined, or
	// when a quantity is handed to a transform whose source is not the quantity's frame.
	ErrFrameMismatch = errors.New("frame mismatch")

	// ErrStructural is returned when the frame tree cannot support the requested operation.
	ErrStructural = errors.New("frame structure error")

	// ErrNoCommonAncestor is returned when two frames share no ancestor, e.g. they hang off
	// different roots or belong to different frame systems.
	ErrNoCommonAncestor = errors.Wrap(ErrStructural, "no common ancestor")

	// ErrCyclicFrame is returned when walking parent links does not terminate.
	ErrCyclicFrame = errors.Wrap(ErrStructural, "cyclic frame chain")

	// ErrInvalidParameter is returned for arguments outside an operation's domain.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// NewFrameMismatchError returns an error indicating that a quantity in frame got was used where
// frame want was required.
func NewFrameMismatchError(want, got Frame) error {
	return errors.Wrapf(ErrFrameMismatch, "expected frame %q but got %q", want.Name(), got.Name())
}

// NewNoCommonAncestorError returns an error indicating that no transform exists between two frames.
func NewNoCommonAncestorError(source, target Frame) error {
	return errors.Wrapf(ErrNoCommonAncestor, "cannot transform from %q to %q", source.Name(), target.Name())
}

// NewCyclicFrameError returns an error indicating that the ancestors of a frame loop.
func NewCyclicFrameError(frame Frame) error {
	return errors.Wrapf(ErrCyclicFrame, "walking up from frame %q", frame.Name())
}

// NewFrameNotInSystemError returns an error indicating that frame does not belong to the system.
func NewFrameNotInSystemError(frame Frame, fsName string) error {
	return errors.Wrapf(ErrStructural, "frame %q not in frame system %q", frame.Name(), fsName)
}

// NewParentFrameMismatchError returns an error indicating that an operation requiring frames with
// a shared parent got frames with different parents.
func NewParentFrameMismatchError(a, b Frame) error {
	return errors.Wrapf(ErrFrameMismatch, "frames %q and %q do not share a parent (%q vs %q)",
		a.Name(), b.Name(), a.Parent().Name(), b.Parent().Name())
}

// NewInvalidParameterError returns an error describing a bad argument.
func NewInvalidParameterError(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidParameter, format, args...)
}
