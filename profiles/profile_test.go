package profiles

import (
	"strings"
	"testing"

	"github.com/milk9111/inputkit/input"
)

type fakeSource struct {
	value float64
}

func (f *fakeSource) Read() (float64, bool) { return f.value, true }

// fakeBuilder records sources by kind:arg so tests can drive them.
type fakeBuilder struct {
	sources map[string]*fakeSource
}

func newFakeBuilder() *fakeBuilder {
	return &fakeBuilder{sources: make(map[string]*fakeSource)}
}

func (f *fakeBuilder) build(kind string, arg any) (input.Source, error) {
	src := &fakeSource{}
	key := kind
	if s, ok := arg.(string); ok {
		key = kind + ":" + s
	}
	f.sources[key] = src
	return src, nil
}

const sampleProfile = `
epsilon: 0.001
groups:
  - gameplay
  - menu
actions:
  - name: move
    group: gameplay
    bindings:
      - stub: x
      - stub: y
  - name: jump
    group: gameplay
    invalidate_on_disable: true
    bindings:
      - stub: jump
    conditions:
      - input_buffer: 0.15
  - name: confirm
    group: menu
    bindings:
      - stub: confirm
    conditions:
      - button_press:
`

func TestParse(t *testing.T) {
	p, err := Parse([]byte(sampleProfile))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.Epsilon != 0.001 {
		t.Fatalf("epsilon = %v", p.Epsilon)
	}
	if len(p.Groups) != 2 || p.Groups[0] != "gameplay" {
		t.Fatalf("groups = %v", p.Groups)
	}
	if len(p.Actions) != 3 {
		t.Fatalf("actions = %d", len(p.Actions))
	}
	if !p.Actions[1].InvalidateOnDisable {
		t.Fatalf("jump should invalidate on disable")
	}
	if len(p.Actions[0].Bindings) != 2 {
		t.Fatalf("move bindings = %v", p.Actions[0].Bindings)
	}
}

func TestApply(t *testing.T) {
	p, err := Parse([]byte(sampleProfile))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	w := input.NewWorld()
	b := newFakeBuilder()
	applied, err := Apply(w, p, b.build)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	for _, name := range []string{"move", "jump", "confirm"} {
		id, ok := applied.Actions[name]
		if !ok {
			t.Fatalf("action %q missing from applied set", name)
		}
		if !w.Alive(id) {
			t.Fatalf("action %q not alive", name)
		}
	}
	for _, name := range []string{"default", "gameplay", "menu"} {
		if _, ok := applied.Groups[name]; !ok {
			t.Fatalf("group %q missing from applied set", name)
		}
	}

	// a two-binding action composes into a 2-D value in binding order
	b.sources["stub:x"].value = 0.25
	b.sources["stub:y"].value = -1
	w.Update(1.0 / 60.0)
	w.Events().Drain()
	v, ok := w.LastValue(applied.Actions["move"])
	if !ok {
		t.Fatalf("move has no value")
	}
	if v.Axis != input.Axis2D || v.X != 0.25 || v.Y != -1 {
		t.Fatalf("move value = %+v", v)
	}
}

func TestApplyAllOrNothing(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			"unknown_group",
			"actions:\n  - name: a\n    group: nope\n    bindings:\n      - stub: x\n",
			"unknown group",
		},
		{
			"no_bindings",
			"actions:\n  - name: a\n",
			"no bindings",
		},
		{
			"unknown_condition",
			"actions:\n  - name: a\n    bindings:\n      - stub: x\n    conditions:\n      - warp_drive:\n",
			"unknown condition",
		},
		{
			"too_many_channels",
			"actions:\n  - name: a\n    bindings:\n      - stub: w\n      - stub: x\n      - stub: y\n      - stub: z\n",
			"channels",
		},
		{
			"nameless_action",
			"actions:\n  - bindings:\n      - stub: x\n",
			"without a name",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := Parse([]byte(c.yaml))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			w := input.NewWorld()
			if _, err := Apply(w, p, newFakeBuilder().build); err == nil {
				t.Fatalf("expected error")
			} else if !strings.Contains(err.Error(), c.wantErr) {
				t.Fatalf("error %q does not mention %q", err, c.wantErr)
			}
		})
	}
}

func TestApplyFailureLeavesWorldUntouched(t *testing.T) {
	const yaml = `
groups:
  - gameplay
actions:
  - name: first
    group: gameplay
    bindings:
      - stub: x
  - name: second
    bindings:
      - stub: a
      - stub: b
      - stub: c
      - stub: d
`
	p, err := Parse([]byte(yaml))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	w := input.NewWorld()
	b := newFakeBuilder()
	if _, err := Apply(w, p, b.build); err == nil {
		t.Fatalf("expected error for the 4-channel action")
	}

	// the earlier, valid action must not have been declared
	b.sources["stub:x"].value = 1
	w.Update(1.0 / 60.0)
	if events := w.Events().Drain(); len(events) != 0 {
		t.Fatalf("failed apply left an action live: got %v", events)
	}
	// nor its group created
	if w.GroupEnabled(input.GroupID(1)) {
		t.Fatalf("failed apply left a group behind")
	}
}

func TestBuildCondition(t *testing.T) {
	t.Run("cooldown", func(t *testing.T) {
		if _, err := BuildCondition("cooldown", 0.5); err != nil {
			t.Fatalf("cooldown: %v", err)
		}
		if _, err := BuildCondition("cooldown", -1); err == nil {
			t.Fatalf("negative cooldown should fail")
		}
		if _, err := BuildCondition("cooldown", "soon"); err == nil {
			t.Fatalf("non-numeric cooldown should fail")
		}
	})
	t.Run("button_press_threshold", func(t *testing.T) {
		c, err := BuildCondition("button_press", map[string]any{"threshold": 0.8})
		if err != nil {
			t.Fatalf("button_press: %v", err)
		}
		if b, ok := c.(*input.ButtonPress); !ok || b.Threshold != 0.8 {
			t.Fatalf("got %#v", c)
		}
	})
	t.Run("button_press_default", func(t *testing.T) {
		c, err := BuildCondition("button_press", nil)
		if err != nil {
			t.Fatalf("button_press: %v", err)
		}
		if b := c.(*input.ButtonPress); b.Threshold != input.DefaultPressThreshold {
			t.Fatalf("threshold = %v", b.Threshold)
		}
	})
	t.Run("buffered_filter", func(t *testing.T) {
		RegisterPredicate("grounded", func() bool { return true })
		c, err := BuildCondition("buffered_filter", map[string]any{"predicate": "grounded", "duration": 0.1})
		if err != nil {
			t.Fatalf("buffered_filter: %v", err)
		}
		if b, ok := c.(*input.BufferedFilter); !ok || b.Duration != 0.1 {
			t.Fatalf("got %#v", c)
		}
		if _, err := BuildCondition("buffered_filter", map[string]any{"predicate": "grounded"}); err == nil {
			t.Fatalf("missing duration should fail")
		}
		if _, err := BuildCondition("buffered_filter", "grounded"); err == nil {
			t.Fatalf("bare string should fail")
		}
	})
	t.Run("unregistered_predicate", func(t *testing.T) {
		if _, err := BuildCondition("filter", "never_registered"); err == nil {
			t.Fatalf("expected error for unregistered predicate")
		}
	})
	t.Run("registered_predicate", func(t *testing.T) {
		RegisterPredicate("always", func() bool { return true })
		if _, err := BuildCondition("filter", "always"); err != nil {
			t.Fatalf("filter: %v", err)
		}
	})
	t.Run("custom_condition", func(t *testing.T) {
		RegisterCondition("passthrough", func(any) (input.Condition, error) {
			return input.ConditionFunc(func(_ *input.Context, v input.Value) (input.Value, bool) {
				return v, true
			}), nil
		})
		if _, err := BuildCondition("passthrough", nil); err != nil {
			t.Fatalf("passthrough: %v", err)
		}
	})
}

func TestDefaultProfileParses(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatalf("default profile: %v", err)
	}
	if len(p.Actions) == 0 {
		t.Fatalf("default profile has no actions")
	}
	names := map[string]bool{}
	for _, a := range p.Actions {
		if names[a.Name] {
			t.Fatalf("duplicate action %q", a.Name)
		}
		names[a.Name] = true
	}
	if !names["move"] || !names["jump"] {
		t.Fatalf("default profile missing expected actions: %v", names)
	}
}
