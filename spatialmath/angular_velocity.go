package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// AngularVelocity contains angular velocity in rad/s across x/y/z axes.
type AngularVelocity r3.Vector

// R3ToAngVel converts an r3.Vector of rates into an AngularVelocity.
func R3ToAngVel(vec r3.Vector) AngularVelocity {
	return AngularVelocity(vec)
}

// OrientationToAngularVel calculates the constant angular velocity that carries no rotation to o over the time difference dt.
func OrientationToAngularVel(o Orientation, dt float64) AngularVelocity {
	axA := o.AxisAngles()

	return AngularVelocity{
		X: axA.RX * axA.Theta / dt,
		Y: axA.RY * axA.Theta / dt,
		Z: axA.RZ * axA.Theta / dt,
	}
}

// QuatToAngVel calculates an angular velocity based on an orientation change expressed in quaternions over a time difference.
func QuatToAngVel(diffQ quat.Number, dt float64) AngularVelocity {
	return OrientationToAngularVel(NewOrientationFromQuaternion(diffQ), dt)
}

// RotMatToAngVel calculates an angular velocity based on an orientation change expressed in rotation matrices over a time
// difference.
func RotMatToAngVel(diffRm RotationMatrix, dt float64) AngularVelocity {
	return OrientationToAngularVel(&diffRm, dt)
}

// PoseDelta returns the angular velocity and the linear velocity of the origin that carry pose from to pose to in dt,
// with the rotation delta expressed in the parent's axes.
func PoseDelta(from, to Pose, dt float64) (AngularVelocity, r3.Vector) {
	diff := OrientationBetween(from.Orientation(), to.Orientation())
	return OrientationToAngularVel(diff, dt), to.Point().Sub(from.Point()).Mul(1 / dt)
}
