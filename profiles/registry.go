package profiles

import (
	"fmt"

	"github.com/milk9111/inputkit/input"
	"github.com/milk9111/inputkit/script"
)

// ConditionBuilder constructs a condition from its yaml argument.
type ConditionBuilder func(arg any) (input.Condition, error)

var conditionRegistry = map[string]ConditionBuilder{
	"cooldown": func(arg any) (input.Condition, error) {
		d, ok := asFloat(arg)
		if !ok || d <= 0 {
			return nil, fmt.Errorf("cooldown needs a positive duration, got %v", arg)
		}
		return input.NewCooldown(d), nil
	},
	"input_buffer": func(arg any) (input.Condition, error) {
		d, ok := asFloat(arg)
		if !ok || d <= 0 {
			return nil, fmt.Errorf("input_buffer needs a positive duration, got %v", arg)
		}
		return input.NewInputBuffer(d), nil
	},
	"reset_buffer": func(any) (input.Condition, error) {
		return input.NewResetBuffer(), nil
	},
	"invert": func(any) (input.Condition, error) {
		return input.NewInvert(), nil
	},
	"button_press": func(arg any) (input.Condition, error) {
		b := input.NewButtonPress()
		if t, ok := thresholdArg(arg); ok {
			b.Threshold = t
		}
		return b, nil
	},
	"button_release": func(arg any) (input.Condition, error) {
		b := input.NewButtonRelease()
		if t, ok := thresholdArg(arg); ok {
			b.Threshold = t
		}
		return b, nil
	},
	"filter": func(arg any) (input.Condition, error) {
		pred, err := predicateArg("filter", arg)
		if err != nil {
			return nil, err
		}
		return input.NewFilter(pred), nil
	},
	"buffered_filter": func(arg any) (input.Condition, error) {
		m, ok := arg.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("buffered_filter needs {predicate, duration}, got %v", arg)
		}
		pred, err := predicateArg("buffered_filter", m["predicate"])
		if err != nil {
			return nil, err
		}
		d, ok := asFloat(m["duration"])
		if !ok || d <= 0 {
			return nil, fmt.Errorf("buffered_filter needs a positive duration, got %v", m["duration"])
		}
		return input.NewBufferedFilter(pred, d), nil
	},
	"invalidating_filter": func(arg any) (input.Condition, error) {
		pred, err := predicateArg("invalidating_filter", arg)
		if err != nil {
			return nil, err
		}
		return input.NewInvalidatingFilter(pred), nil
	},
	"script": func(arg any) (input.Condition, error) {
		path, ok := arg.(string)
		if !ok || path == "" {
			return nil, fmt.Errorf("script needs a script path, got %v", arg)
		}
		src, err := LoadScript(path)
		if err != nil {
			return nil, err
		}
		return script.New(path, src)
	},
}

// BuildCondition constructs a registered condition kind.
func BuildCondition(kind string, arg any) (input.Condition, error) {
	build, ok := conditionRegistry[kind]
	if !ok {
		return nil, fmt.Errorf("unknown condition %q", kind)
	}
	return build(arg)
}

// RegisterCondition adds or replaces a condition constructor, so hosts can
// reference their own stages from profile yaml.
func RegisterCondition(kind string, build ConditionBuilder) {
	if kind == "" || build == nil {
		return
	}
	conditionRegistry[kind] = build
}

var predicateRegistry = map[string]input.Predicate{}

// RegisterPredicate names a host world-state query so filter entries in
// yaml can reference it. Predicates must be registered before Apply.
func RegisterPredicate(name string, pred input.Predicate) {
	if name == "" || pred == nil {
		return
	}
	predicateRegistry[name] = pred
}

func predicateArg(kind string, arg any) (input.Predicate, error) {
	name, ok := arg.(string)
	if !ok || name == "" {
		return nil, fmt.Errorf("%s needs a predicate name, got %v", kind, arg)
	}
	pred, ok := predicateRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%s references unregistered predicate %q", kind, name)
	}
	return pred, nil
}

func thresholdArg(arg any) (float64, bool) {
	if arg == nil {
		return 0, false
	}
	if t, ok := asFloat(arg); ok {
		return t, true
	}
	if m, ok := arg.(map[string]any); ok {
		if t, ok := asFloat(m["threshold"]); ok {
			return t, true
		}
	}
	return 0, false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
