// Package ebitensource provides input.Sources backed by Ebiten's device
// state. Sources report level state only; edge detection belongs to the
// condition chain.
package ebitensource

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/inputkit/common"
	"github.com/milk9111/inputkit/input"
)

// StickDeadzone is the default gamepad stick deadzone.
const StickDeadzone = 0.3

// Key reads a single key as 0/1.
func Key(key ebiten.Key) input.Source {
	return input.SourceFunc(func() (float64, bool) {
		if ebiten.IsKeyPressed(key) {
			return 1, true
		}
		return 0, true
	})
}

// KeyAxis reads two keys as a [-1,1] axis, one positive and one negative.
// Both held cancels to 0.
func KeyAxis(pos, neg ebiten.Key) input.Source {
	return input.SourceFunc(func() (float64, bool) {
		var v float64
		if ebiten.IsKeyPressed(pos) {
			v += 1
		}
		if ebiten.IsKeyPressed(neg) {
			v -= 1
		}
		return v, true
	})
}

// MouseButton reads a mouse button as 0/1.
func MouseButton(button ebiten.MouseButton) input.Source {
	return input.SourceFunc(func() (float64, bool) {
		if ebiten.IsMouseButtonPressed(button) {
			return 1, true
		}
		return 0, true
	})
}

type gamepadAxisSource struct {
	axis     ebiten.StandardGamepadAxis
	deadzone float64
	ids      []ebiten.GamepadID
}

func (s *gamepadAxisSource) Read() (float64, bool) {
	s.ids = ebiten.AppendGamepadIDs(s.ids[:0])
	if len(s.ids) == 0 {
		return 0, false
	}
	gid := s.ids[0]
	var v float64
	if ebiten.IsStandardGamepadLayoutAvailable(gid) {
		v = ebiten.StandardGamepadAxisValue(gid, s.axis)
	} else {
		// controllers without the standard mapping usually expose the
		// sticks on the matching raw axis indices
		v = ebiten.GamepadAxis(gid, int(s.axis))
	}
	return common.Deadzone(v, s.deadzone), true
}

// GamepadAxis reads a stick axis of the first connected gamepad in [-1,1],
// with a deadzone. It is unavailable while no gamepad is connected.
func GamepadAxis(axis ebiten.StandardGamepadAxis, deadzone float64) input.Source {
	return &gamepadAxisSource{axis: axis, deadzone: deadzone}
}

type gamepadButtonSource struct {
	button ebiten.StandardGamepadButton
	ids    []ebiten.GamepadID
}

func (s *gamepadButtonSource) Read() (float64, bool) {
	s.ids = ebiten.AppendGamepadIDs(s.ids[:0])
	if len(s.ids) == 0 {
		return 0, false
	}
	if ebiten.IsStandardGamepadButtonPressed(s.ids[0], s.button) {
		return 1, true
	}
	return 0, true
}

// GamepadButton reads a button of the first connected gamepad as 0/1. It is
// unavailable while no gamepad is connected.
func GamepadButton(button ebiten.StandardGamepadButton) input.Source {
	return &gamepadButtonSource{button: button}
}

type cursorDeltaSource struct {
	vertical bool
	prev     int
	seeded   bool
}

func (s *cursorDeltaSource) Read() (float64, bool) {
	x, y := ebiten.CursorPosition()
	cur := x
	if s.vertical {
		cur = y
	}
	if !s.seeded {
		s.prev = cur
		s.seeded = true
		return 0, true
	}
	d := cur - s.prev
	s.prev = cur
	return float64(d), true
}

// CursorDeltaX reads the cursor's horizontal movement since the previous
// frame, in pixels.
func CursorDeltaX() input.Source {
	return &cursorDeltaSource{}
}

// CursorDeltaY reads the cursor's vertical movement since the previous
// frame, in pixels.
func CursorDeltaY() input.Source {
	return &cursorDeltaSource{vertical: true}
}

// WheelX reads this frame's horizontal scroll offset.
func WheelX() input.Source {
	return input.SourceFunc(func() (float64, bool) {
		x, _ := ebiten.Wheel()
		return x, true
	})
}

// WheelY reads this frame's vertical scroll offset.
func WheelY() input.Source {
	return input.SourceFunc(func() (float64, bool) {
		_, y := ebiten.Wheel()
		return y, true
	})
}

// ScrollUp reads only upward scrolling, clamped to [0,inf).
func ScrollUp() input.Source {
	return input.SourceFunc(func() (float64, bool) {
		_, y := ebiten.Wheel()
		if y < 0 {
			y = 0
		}
		return y, true
	})
}

// ScrollDown reads only downward scrolling, clamped to (-inf,0].
func ScrollDown() input.Source {
	return input.SourceFunc(func() (float64, bool) {
		_, y := ebiten.Wheel()
		if y > 0 {
			y = 0
		}
		return y, true
	})
}
