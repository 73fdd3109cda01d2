package referenceframe

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Point is a location expressed in a frame. Transforming a point applies both rotation and translation.
type Point struct {
	frame Frame
	v     r3.Vector
}

// NewPoint returns the point v expressed in frame.
func NewPoint(frame Frame, v r3.Vector) Point {
	return Point{frame: frame, v: v}
}

// Frame returns the frame the point is expressed in.
func (p Point) Frame() Frame {
	return p.frame
}

// Value returns the coordinates of the point.
func (p Point) Value() r3.Vector {
	return p.v
}

// Transform re-expresses the point in the target of tf.
func (p Point) Transform(tf *Transform) (Point, error) {
	return tf.Point(p)
}

// Add displaces the point by a vector in the same frame.
func (p Point) Add(v Vector) (Point, error) {
	if err := CheckFrames(p.frame, v.frame); err != nil {
		return Point{}, err
	}
	return Point{frame: p.frame, v: p.v.Add(v.v)}, nil
}

// Sub returns the vector from o to p.
func (p Point) Sub(o Point) (Vector, error) {
	if err := CheckFrames(p.frame, o.frame); err != nil {
		return Vector{}, err
	}
	return Vector{frame: p.frame, v: p.v.Sub(o.v)}, nil
}

func (p Point) String() string {
	return fmt.Sprintf("point %v in %s", p.v, p.frame.Name())
}

// Vector is a free vector expressed in a frame, such as a direction or an axis. Transforming a vector
// applies only the rotation.
type Vector struct {
	frame Frame
	v     r3.Vector
}

// NewVector returns the vector v expressed in frame.
func NewVector(frame Frame, v r3.Vector) Vector {
	return Vector{frame: frame, v: v}
}

// Frame returns the frame the vector is expressed in.
func (v Vector) Frame() Frame {
	return v.frame
}

// Value returns the components of the vector.
func (v Vector) Value() r3.Vector {
	return v.v
}

// Transform re-expresses the vector in the target of tf.
func (v Vector) Transform(tf *Transform) (Vector, error) {
	return tf.Vector(v)
}

// Add returns v + o.
func (v Vector) Add(o Vector) (Vector, error) {
	if err := CheckFrames(v.frame, o.frame); err != nil {
		return Vector{}, err
	}
	return Vector{frame: v.frame, v: v.v.Add(o.v)}, nil
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) (Vector, error) {
	if err := CheckFrames(v.frame, o.frame); err != nil {
		return Vector{}, err
	}
	return Vector{frame: v.frame, v: v.v.Sub(o.v)}, nil
}

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) (float64, error) {
	if err := CheckFrames(v.frame, o.frame); err != nil {
		return 0, err
	}
	return v.v.Dot(o.v), nil
}

// Cross returns the cross product v x o.
func (v Vector) Cross(o Vector) (Vector, error) {
	if err := CheckFrames(v.frame, o.frame); err != nil {
		return Vector{}, err
	}
	return Vector{frame: v.frame, v: v.v.Cross(o.v)}, nil
}

// Scale returns v multiplied by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{frame: v.frame, v: v.v.Mul(s)}
}

func (v Vector) String() string {
	return fmt.Sprintf("vector %v in %s", v.v, v.frame.Name())
}

// Point re-expresses p in the target of tf.
func (tf *Transform) Point(p Point) (Point, error) {
	if err := CheckFrames(tf.source, p.frame); err != nil {
		return Point{}, err
	}
	return Point{frame: tf.target, v: tf.st.ApplyPoint(p.v)}, nil
}

// Vector re-expresses v in the target of tf.
func (tf *Transform) Vector(v Vector) (Vector, error) {
	if err := CheckFrames(tf.source, v.frame); err != nil {
		return Vector{}, err
	}
	return Vector{frame: tf.target, v: tf.st.ApplyVector(v.v)}, nil
}
