package referenceframe

// CheckFrames returns an ErrFrameMismatch error if got is not the frame want. Frames are compared
// by identity, so two frames with equal poses are still different frames. When the package is built
// with the noframecheck tag the check always passes.
func CheckFrames(want, got Frame) error {
	if frameChecksEnabled && want != got {
		return NewFrameMismatchError(want, got)
	}
	return nil
}

// FrameChecksEnabled reports whether CheckFrames is active in this build.
func FrameChecksEnabled() bool {
	return frameChecksEnabled
}
