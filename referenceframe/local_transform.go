package referenceframe

import (
	spatial "go.viam.com/spatialframes/spatialmath"
)

// ToParent returns the transform from f to its parent built from f's own pose, without resolving
// through the tree.
func (f Frame) ToParent() (*Transform, error) {
	if f.IsWorld() {
		return nil, NewInvalidParameterError("the world frame has no parent")
	}
	return newTransform(f, f.Parent(), f.Pose()), nil
}

// FromParent returns the transform from f's parent into f.
func (f Frame) FromParent() (*Transform, error) {
	if f.IsWorld() {
		return nil, NewInvalidParameterError("the world frame has no parent")
	}
	pose := f.Pose()
	return &Transform{
		source: f.Parent(),
		target: f,
		pose:   spatial.PoseInverse(pose),
		st:     spatial.NewInverseSpatialTransform(pose),
	}, nil
}

// TransformPoint carries a point expressed in f to f's parent.
func (f Frame) TransformPoint(p Point) (Point, error) {
	tf, err := f.ToParent()
	if err != nil {
		return Point{}, err
	}
	return tf.Point(p)
}

// InverseTransformPoint carries a point expressed in f's parent into f.
func (f Frame) InverseTransformPoint(p Point) (Point, error) {
	tf, err := f.FromParent()
	if err != nil {
		return Point{}, err
	}
	return tf.Point(p)
}

// TransformVector carries a vector expressed in f to f's parent.
func (f Frame) TransformVector(v Vector) (Vector, error) {
	tf, err := f.ToParent()
	if err != nil {
		return Vector{}, err
	}
	return tf.Vector(v)
}

// InverseTransformVector carries a vector expressed in f's parent into f.
func (f Frame) InverseTransformVector(v Vector) (Vector, error) {
	tf, err := f.FromParent()
	if err != nil {
		return Vector{}, err
	}
	return tf.Vector(v)
}

// TransformTwist carries a twist expressed in f to f's parent.
func (f Frame) TransformTwist(t Twist) (Twist, error) {
	tf, err := f.ToParent()
	if err != nil {
		return Twist{}, err
	}
	return tf.Twist(t)
}

// InverseTransformTwist carries a twist expressed in f's parent into f.
func (f Frame) InverseTransformTwist(t Twist) (Twist, error) {
	tf, err := f.FromParent()
	if err != nil {
		return Twist{}, err
	}
	return tf.Twist(t)
}

// TransformWrench carries a wrench expressed in f to f's parent.
func (f Frame) TransformWrench(w Wrench) (Wrench, error) {
	tf, err := f.ToParent()
	if err != nil {
		return Wrench{}, err
	}
	return tf.Wrench(w)
}

// InverseTransformWrench carries a wrench expressed in f's parent into f.
func (f Frame) InverseTransformWrench(w Wrench) (Wrench, error) {
	tf, err := f.FromParent()
	if err != nil {
		return Wrench{}, err
	}
	return tf.Wrench(w)
}

// TransformRigidBodyInertia carries an inertia expressed in f to f's parent.
func (f Frame) TransformRigidBodyInertia(i RigidBodyInertia) (RigidBodyInertia, error) {
	tf, err := f.ToParent()
	if err != nil {
		return RigidBodyInertia{}, err
	}
	return tf.RigidBodyInertia(i)
}

// InverseTransformRigidBodyInertia carries an inertia expressed in f's parent into f.
func (f Frame) InverseTransformRigidBodyInertia(i RigidBodyInertia) (RigidBodyInertia, error) {
	tf, err := f.FromParent()
	if err != nil {
		return RigidBodyInertia{}, err
	}
	return tf.RigidBodyInertia(i)
}

// TransformArticulatedBodyInertia carries an inertia expressed in f to f's parent.
func (f Frame) TransformArticulatedBodyInertia(i ArticulatedBodyInertia) (ArticulatedBodyInertia, error) {
	tf, err := f.ToParent()
	if err != nil {
		return ArticulatedBodyInertia{}, err
	}
	return tf.ArticulatedBodyInertia(i)
}

// InverseTransformArticulatedBodyInertia carries an inertia expressed in f's parent into f.
func (f Frame) InverseTransformArticulatedBodyInertia(i ArticulatedBodyInertia) (ArticulatedBodyInertia, error) {
	tf, err := f.FromParent()
	if err != nil {
		return ArticulatedBodyInertia{}, err
	}
	return tf.ArticulatedBodyInertia(i)
}
