package forest

import "math"

// Vec3 is a point or direction in 3D space. The plot lies in the xy-plane;
// z is up.
type Vec3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Add returns the component-wise sum v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Length returns the Euclidean norm of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthXY returns the norm of v projected onto the xy-plane.
func (v Vec3) LengthXY() float64 {
	return math.Hypot(v.X, v.Y)
}
