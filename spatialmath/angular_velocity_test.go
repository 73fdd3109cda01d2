package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestConversions(t *testing.T) {
	dt := 2.0

	for _, rate := range []struct {
		TestName    string
		AngularRate r3.Vector
	}{
		{"unitary roll", r3.Vector{X: 1, Y: 0, Z: 0}},
		{"unitary pitch", r3.Vector{X: 0, Y: 1, Z: 0}},
		{"unitary yaw", r3.Vector{X: 0, Y: 0, Z: 1}},
		{"roll", r3.Vector{X: 0.5, Y: 0, Z: 0}},
		{"pitch", r3.Vector{X: 0, Y: 0.25, Z: 0}},
		{"yaw", r3.Vector{X: 0, Y: 0, Z: 1.5}},
	} {
		t.Run(rate.TestName, func(t *testing.T) {
			diff := rate.AngularRate.Mul(dt)
			diffEu := &EulerAngles{Roll: diff.X, Pitch: diff.Y, Yaw: diff.Z}
			expected := R3ToAngVel(rate.AngularRate)

			qav := QuatToAngVel(diffEu.Quaternion(), dt)
			oav := OrientationToAngularVel(diffEu, dt)
			rav := RotMatToAngVel(*diffEu.RotationMatrix(), dt)

			for name, av := range map[string]AngularVelocity{"quaternion": qav, "orientation": oav, "rotation matrix": rav} {
				t.Run(name, func(t *testing.T) {
					test.That(t, av.X, test.ShouldAlmostEqual, expected.X, 1e-9)
					test.That(t, av.Y, test.ShouldAlmostEqual, expected.Y, 1e-9)
					test.That(t, av.Z, test.ShouldAlmostEqual, expected.Z, 1e-9)
				})
			}
		})
	}
}

func TestPoseDelta(t *testing.T) {
	from := NewPoseFromPoint(r3.Vector{X: 1, Y: 2, Z: 3})
	to := NewPoseFromAxisAngle(r3.Vector{X: 3, Y: 2, Z: 1}, r3.Vector{Z: 1}, math.Pi/4)
	av, lin := PoseDelta(from, to, 0.5)
	test.That(t, av.Z, test.ShouldAlmostEqual, math.Pi/2)
	test.That(t, av.X, test.ShouldAlmostEqual, 0)
	test.That(t, lin, test.ShouldResemble, r3.Vector{X: 4, Y: 0, Z: -4})
}
