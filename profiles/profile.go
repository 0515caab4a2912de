package profiles

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/inputkit/input"
)

// Profile is a declarative description of a world's groups and actions,
// loaded from yaml.
type Profile struct {
	Epsilon float64     `yaml:"epsilon"`
	Groups  []string    `yaml:"groups"`
	Actions []RawAction `yaml:"actions"`
}

// RawAction declares one action. Bindings is an ordered list of one-entry
// maps, each building a single 1-D source; their channels compose
// left-to-right into the action's dimensionality. Conditions follow the
// same one-entry-map shape and are looked up in the condition registry.
type RawAction struct {
	Name                string           `yaml:"name"`
	Group               string           `yaml:"group"`
	InvalidateOnDisable bool             `yaml:"invalidate_on_disable"`
	Bindings            []map[string]any `yaml:"bindings"`
	Conditions          []map[string]any `yaml:"conditions"`
}

// Parse decodes a yaml profile.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("profiles: parse: %w", err)
	}
	return &p, nil
}

// SourceBuilder constructs a 1-D source from one binding entry, e.g.
// {key: Space} or {gamepad_axis: left_x}. The Ebiten-backed builder lives
// in the ebitensource package; tests can supply their own.
type SourceBuilder func(kind string, arg any) (input.Source, error)

// Applied maps profile names back to the handles Apply created.
type Applied struct {
	Actions map[string]input.ActionID
	Groups  map[string]input.GroupID
}

// stagedAction carries one action's fully built sources and conditions
// between the validation and commit halves of Apply.
type stagedAction struct {
	raw     RawAction
	sources []input.Source
	conds   []input.Condition
}

// Apply declares every group and action of the profile into the world.
// The whole profile is validated and built before the world is touched, so
// a malformed profile leaves the destination world exactly as it was.
func Apply(w *input.World, p *Profile, build SourceBuilder) (*Applied, error) {
	if w == nil || p == nil {
		return nil, fmt.Errorf("profiles: apply requires a world and a profile")
	}
	if build == nil {
		return nil, fmt.Errorf("profiles: apply requires a source builder")
	}

	knownGroups := map[string]bool{"default": true}
	for _, name := range p.Groups {
		knownGroups[name] = true
	}

	staged := make([]stagedAction, 0, len(p.Actions))
	for _, ra := range p.Actions {
		if ra.Name == "" {
			return nil, fmt.Errorf("profiles: action without a name")
		}
		if ra.Group != "" && !knownGroups[ra.Group] {
			return nil, fmt.Errorf("profiles: action %q references unknown group %q", ra.Name, ra.Group)
		}
		if len(ra.Bindings) == 0 {
			return nil, fmt.Errorf("profiles: action %q has no bindings", ra.Name)
		}
		// each binding entry contributes one channel
		if len(ra.Bindings) > 3 {
			return nil, fmt.Errorf("profiles: action %q composes %d channels, want 1 to 3", ra.Name, len(ra.Bindings))
		}

		sa := stagedAction{raw: ra}
		for i, entry := range ra.Bindings {
			kind, arg, err := singleEntry(entry)
			if err != nil {
				return nil, fmt.Errorf("profiles: action %q binding %d: %w", ra.Name, i, err)
			}
			src, err := build(kind, arg)
			if err != nil {
				return nil, fmt.Errorf("profiles: action %q binding %d: %w", ra.Name, i, err)
			}
			sa.sources = append(sa.sources, src)
		}
		for i, entry := range ra.Conditions {
			kind, arg, err := singleEntry(entry)
			if err != nil {
				return nil, fmt.Errorf("profiles: action %q condition %d: %w", ra.Name, i, err)
			}
			cond, err := BuildCondition(kind, arg)
			if err != nil {
				return nil, fmt.Errorf("profiles: action %q condition %d: %w", ra.Name, i, err)
			}
			sa.conds = append(sa.conds, cond)
		}
		staged = append(staged, sa)
	}

	// everything validated; commit to the world
	if p.Epsilon > 0 {
		w.SetEpsilon(p.Epsilon)
	}
	applied := &Applied{
		Actions: make(map[string]input.ActionID, len(staged)),
		Groups:  map[string]input.GroupID{"default": 0},
	}
	for _, name := range p.Groups {
		applied.Groups[name] = w.NewGroup(name)
	}

	for _, sa := range staged {
		leaves := make([]input.Binding, 0, len(sa.sources))
		for _, src := range sa.sources {
			leaves = append(leaves, input.Leaf(w.AddSource(src)))
		}
		binding, err := input.Compose(leaves...)
		if err != nil {
			return nil, fmt.Errorf("profiles: action %q: %w", sa.raw.Name, err)
		}
		group := input.GroupID(0)
		if sa.raw.Group != "" {
			group = applied.Groups[sa.raw.Group]
		}
		id, err := w.Declare(input.ActionSpec{
			Name:                sa.raw.Name,
			Binding:             binding,
			Conditions:          sa.conds,
			Group:               group,
			InvalidateOnDisable: sa.raw.InvalidateOnDisable,
		})
		if err != nil {
			return nil, err
		}
		applied.Actions[sa.raw.Name] = id
	}
	return applied, nil
}

func singleEntry(m map[string]any) (string, any, error) {
	if len(m) != 1 {
		return "", nil, fmt.Errorf("entry must have exactly one key, got %d", len(m))
	}
	for k, v := range m {
		return k, v, nil
	}
	return "", nil, fmt.Errorf("empty entry")
}
