//go:build !noframecheck

package referenceframe

const frameChecksEnabled = true
