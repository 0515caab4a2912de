// Package script runs user-supplied Tengo scripts as condition stages,
// the open extension point for custom state+evaluate pairs.
package script

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/inputkit/input"
)

const dispatchScript = `
__out = filter(__value, __dt, __state)
`

// Condition evaluates a compiled Tengo script once per frame. The script
// must define filter(value, dt, state) where value is a map with axis/x/y/z
// keys and state is a map that persists across frames. Return values:
//
//	false          invalidate the frame
//	true/undefined pass the value through unchanged
//	map            replace channels with its x/y/z entries
//
// Script errors are logged and treated as pass-through so a bad script
// cannot wedge an action.
type Condition struct {
	name     string
	compiled *tengo.Compiled
	state    *tengo.Map
}

// New compiles a script into a condition. name is used in error logs only.
func New(name string, src []byte) (*Condition, error) {
	full := make([]byte, 0, len(src)+len(dispatchScript)+1)
	full = append(full, src...)
	full = append(full, '\n')
	full = append(full, dispatchScript...)

	s := tengo.NewScript(full)
	_ = s.Add("__value", map[string]any{})
	_ = s.Add("__dt", 0.0)
	_ = s.Add("__state", map[string]any{})
	_ = s.Add("__out", nil)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}
	return &Condition{
		name:     name,
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

func (c *Condition) Evaluate(ctx *input.Context, v input.Value) (input.Value, bool) {
	if c == nil || c.compiled == nil {
		return v, true
	}

	value := &tengo.Map{Value: map[string]tengo.Object{
		"axis": &tengo.Int{Value: int64(v.Axis)},
		"x":    &tengo.Float{Value: v.X},
		"y":    &tengo.Float{Value: v.Y},
		"z":    &tengo.Float{Value: v.Z},
	}}
	if err := c.set("__value", value); err != nil {
		return v, true
	}
	if err := c.set("__dt", &tengo.Float{Value: ctx.DT}); err != nil {
		return v, true
	}
	if err := c.set("__state", c.state); err != nil {
		return v, true
	}
	if err := c.compiled.Run(); err != nil {
		fmt.Printf("script: %s filter error: %v\n", c.name, err)
		return v, true
	}

	out := c.compiled.Get("__out")
	if out == nil || out.IsUndefined() {
		return v, true
	}
	switch obj := out.Object().(type) {
	case *tengo.Bool:
		if obj == tengo.FalseValue {
			return input.Value{}, false
		}
		return v, true
	case *tengo.Map:
		next := v
		if x, ok := numberOf(obj.Value["x"]); ok {
			next.X = x
		}
		if y, ok := numberOf(obj.Value["y"]); ok {
			next.Y = y
		}
		if z, ok := numberOf(obj.Value["z"]); ok {
			next.Z = z
		}
		return next, true
	}
	return v, true
}

func (c *Condition) set(name string, obj tengo.Object) error {
	if err := c.compiled.Set(name, obj); err != nil {
		fmt.Printf("script: %s set %s: %v\n", c.name, name, err)
		return err
	}
	return nil
}

func numberOf(obj tengo.Object) (float64, bool) {
	switch n := obj.(type) {
	case *tengo.Float:
		return n.Value, true
	case *tengo.Int:
		return float64(n.Value), true
	}
	return 0, false
}
