//go:build noframecheck

package referenceframe

const frameChecksEnabled = false
