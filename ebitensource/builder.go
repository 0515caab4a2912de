package ebitensource

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/inputkit/input"
	"github.com/milk9111/inputkit/profiles"
)

var gamepadAxes = map[string]ebiten.StandardGamepadAxis{
	"left_x":  ebiten.StandardGamepadAxisLeftStickHorizontal,
	"left_y":  ebiten.StandardGamepadAxisLeftStickVertical,
	"right_x": ebiten.StandardGamepadAxisRightStickHorizontal,
	"right_y": ebiten.StandardGamepadAxisRightStickVertical,
}

var gamepadButtons = map[string]ebiten.StandardGamepadButton{
	"right_bottom":       ebiten.StandardGamepadButtonRightBottom,
	"right_right":        ebiten.StandardGamepadButtonRightRight,
	"right_left":         ebiten.StandardGamepadButtonRightLeft,
	"right_top":          ebiten.StandardGamepadButtonRightTop,
	"front_bottom_left":  ebiten.StandardGamepadButtonFrontBottomLeft,
	"front_bottom_right": ebiten.StandardGamepadButtonFrontBottomRight,
	"front_top_left":     ebiten.StandardGamepadButtonFrontTopLeft,
	"front_top_right":    ebiten.StandardGamepadButtonFrontTopRight,
}

var mouseButtons = map[string]ebiten.MouseButton{
	"left":   ebiten.MouseButtonLeft,
	"right":  ebiten.MouseButtonRight,
	"middle": ebiten.MouseButtonMiddle,
}

// Builder returns a profiles.SourceBuilder backed by Ebiten's device state.
// Supported kinds: key, key_axis {pos, neg}, mouse_button, gamepad_axis,
// gamepad_button, cursor_dx, cursor_dy, wheel_x, wheel_y, scroll_up,
// scroll_down.
func Builder() profiles.SourceBuilder {
	return func(kind string, arg any) (input.Source, error) {
		switch kind {
		case "key":
			k, err := parseKey(arg)
			if err != nil {
				return nil, err
			}
			return Key(k), nil
		case "key_axis":
			m, ok := arg.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("key_axis needs {pos, neg}, got %v", arg)
			}
			pos, err := parseKey(m["pos"])
			if err != nil {
				return nil, err
			}
			neg, err := parseKey(m["neg"])
			if err != nil {
				return nil, err
			}
			return KeyAxis(pos, neg), nil
		case "mouse_button":
			name, _ := arg.(string)
			b, ok := mouseButtons[name]
			if !ok {
				return nil, fmt.Errorf("unknown mouse button %q", name)
			}
			return MouseButton(b), nil
		case "gamepad_axis":
			name, _ := arg.(string)
			a, ok := gamepadAxes[name]
			if !ok {
				return nil, fmt.Errorf("unknown gamepad axis %q", name)
			}
			return GamepadAxis(a, StickDeadzone), nil
		case "gamepad_button":
			name, _ := arg.(string)
			b, ok := gamepadButtons[name]
			if !ok {
				return nil, fmt.Errorf("unknown gamepad button %q", name)
			}
			return GamepadButton(b), nil
		case "cursor_dx":
			return CursorDeltaX(), nil
		case "cursor_dy":
			return CursorDeltaY(), nil
		case "wheel_x":
			return WheelX(), nil
		case "wheel_y":
			return WheelY(), nil
		case "scroll_up":
			return ScrollUp(), nil
		case "scroll_down":
			return ScrollDown(), nil
		}
		return nil, fmt.Errorf("unknown source kind %q", kind)
	}
}

func parseKey(arg any) (ebiten.Key, error) {
	name, ok := arg.(string)
	if !ok || name == "" {
		return 0, fmt.Errorf("key needs a key name, got %v", arg)
	}
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("unknown key %q", name)
	}
	return k, nil
}
