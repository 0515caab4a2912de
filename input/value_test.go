package input

import (
	"math"
	"testing"
)

func TestValueLen(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want float64
	}{
		{"scalar_positive", X1(0.5), 0.5},
		{"scalar_negative", X1(-0.5), 0.5},
		{"pair", XY(3, 4), 5},
		{"triple", XYZ(1, 2, 2), 3},
		{"zero", XY(0, 0), 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.v.Len(); math.Abs(got-c.want) > 1e-12 {
				t.Fatalf("Len() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestValueIsZero(t *testing.T) {
	if !X1(0).IsZero() {
		t.Fatalf("exact zero should be zero")
	}
	if !X1(1e-9).IsZero() {
		t.Fatalf("sub-epsilon magnitude should be zero")
	}
	if X1(1e-3).IsZero() {
		t.Fatalf("1e-3 should not be zero")
	}
	if XY(1e-9, -1e-9).Len() > DefaultEpsilon && XY(1e-9, -1e-9).IsZero() {
		t.Fatalf("IsZero must agree with Len against the epsilon")
	}
}

func TestValueZeroedKeepsAxis(t *testing.T) {
	z := XYZ(1, 2, 3).Zeroed()
	if z.Axis != Axis3D {
		t.Fatalf("Zeroed should preserve the axis, got %d", z.Axis)
	}
	if z.X != 0 || z.Y != 0 || z.Z != 0 {
		t.Fatalf("Zeroed should clear every channel, got %v", z)
	}
}

func TestValuePressed(t *testing.T) {
	if X1(0.5).Pressed(0.5) {
		t.Fatalf("magnitude equal to the threshold is not pressed")
	}
	if !X1(0.51).Pressed(0.5) {
		t.Fatalf("magnitude above the threshold is pressed")
	}
	if !X1(-0.51).Pressed(0.5) {
		t.Fatalf("pressed uses magnitude, sign must not matter")
	}
	if !XY(0.4, 0.4).Pressed(0.5) {
		t.Fatalf("vector norm crosses the threshold")
	}
}

func TestAxisValid(t *testing.T) {
	for a := Axis(-1); a <= 4; a++ {
		want := a >= Axis1D && a <= Axis3D
		if got := a.Valid(); got != want {
			t.Fatalf("Axis(%d).Valid() = %v, want %v", a, got, want)
		}
	}
}
