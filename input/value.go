package input

import "math"

// Axis is the channel count of a Value. It is fixed when a binding is
// declared and never changes afterwards.
type Axis int

const (
	Axis1D Axis = 1
	Axis2D Axis = 2
	Axis3D Axis = 3
)

func (a Axis) Valid() bool {
	return a >= Axis1D && a <= Axis3D
}

// DefaultEpsilon is the zero-detection threshold used by a World unless it
// is configured with its own via SetEpsilon.
const DefaultEpsilon = 1e-6

// Value is a fixed-dimension reading produced by a source or a binding tree
// for one frame. Channels beyond the axis count stay zero.
type Value struct {
	Axis    Axis
	X, Y, Z float64
}

// X1 builds a 1-dimensional value.
func X1(x float64) Value {
	return Value{Axis: Axis1D, X: x}
}

// XY builds a 2-dimensional value.
func XY(x, y float64) Value {
	return Value{Axis: Axis2D, X: x, Y: y}
}

// XYZ builds a 3-dimensional value.
func XYZ(x, y, z float64) Value {
	return Value{Axis: Axis3D, X: x, Y: y, Z: z}
}

// Len is the magnitude of the value: |x| for a scalar, the vector norm
// otherwise.
func (v Value) Len() float64 {
	switch v.Axis {
	case Axis1D:
		return math.Abs(v.X)
	case Axis2D:
		return math.Hypot(v.X, v.Y)
	default:
		return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
	}
}

// IsZero reports whether the value is within DefaultEpsilon of zero.
func (v Value) IsZero() bool {
	return v.isZero(DefaultEpsilon)
}

func (v Value) isZero(eps float64) bool {
	return v.Len() <= eps
}

// Zeroed returns a zero value of the same axis.
func (v Value) Zeroed() Value {
	return Value{Axis: v.Axis}
}

// Pressed reports whether the value's magnitude exceeds the threshold.
func (v Value) Pressed(threshold float64) bool {
	return v.Len() > threshold
}
