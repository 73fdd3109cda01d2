package utils

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestAngleConversions(t *testing.T) {
	test.That(t, DegToRad(180), test.ShouldAlmostEqual, math.Pi)
	test.That(t, RadToDeg(math.Pi/2), test.ShouldAlmostEqual, 90.)
	test.That(t, RadToDeg(DegToRad(37.5)), test.ShouldAlmostEqual, 37.5)

	test.That(t, ModAngDeg(370), test.ShouldAlmostEqual, 10.)
	test.That(t, ModAngDeg(-90), test.ShouldAlmostEqual, 270.)
	test.That(t, ModAngDeg(0), test.ShouldAlmostEqual, 0.)
}

func TestResolveFile(t *testing.T) {
	test.That(t, ResolveFile("utils/file.go"), test.ShouldEndWith, "utils/file.go")
}
