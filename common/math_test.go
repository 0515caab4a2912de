package common

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		v, lo, hi, want float64
	}{
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0.5, 0, 1, 0.5},
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Fatalf("Clamp(%v,%v,%v) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
		}
	}
}

func TestDeadzone(t *testing.T) {
	if got := Deadzone(0.1, 0.3); got != 0 {
		t.Fatalf("inside the deadzone should read zero, got %v", got)
	}
	if got := Deadzone(-0.29, 0.3); got != 0 {
		t.Fatalf("negative inside the deadzone should read zero, got %v", got)
	}
	if got := Deadzone(1, 0.3); got != 1 {
		t.Fatalf("full deflection should stay full, got %v", got)
	}
	if got := Deadzone(-1, 0.3); got != -1 {
		t.Fatalf("full negative deflection should stay full, got %v", got)
	}
	// just past the threshold rescales to near zero, not a jump
	if got := Deadzone(0.31, 0.3); got <= 0 || got > 0.05 {
		t.Fatalf("just past the threshold should rescale smoothly, got %v", got)
	}
	if got := Deadzone(0.5, 0); got != 0.5 {
		t.Fatalf("zero threshold is a no-op, got %v", got)
	}
	mid := Deadzone(0.65, 0.3)
	if math.Abs(mid-0.5) > 1e-9 {
		t.Fatalf("midpoint of the live range should map to 0.5, got %v", mid)
	}
}
