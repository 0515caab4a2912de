package input

// GroupID identifies an input group. The zero value is the world's default
// group, created enabled.
type GroupID uint32

type group struct {
	name    string
	enabled bool
}

// NewGroup creates a named group, enabled by default.
func (w *World) NewGroup(name string) GroupID {
	if w == nil {
		return 0
	}
	w.groups = append(w.groups, group{name: name, enabled: true})
	return GroupID(len(w.groups) - 1)
}

// SetGroupEnabled toggles a whole group. Member actions observe the new
// flag at the start of their next evaluation; a disabled action's pipeline
// does no binding or condition work at all. Disabling clears the remembered
// value of members that invalidate on disable right away, so LastValue never
// reports a value the disablement already discarded.
func (w *World) SetGroupEnabled(id GroupID, enabled bool) {
	if w == nil || int(id) >= len(w.groups) {
		return
	}
	w.groups[id].enabled = enabled
	if enabled {
		return
	}
	for i := range w.actions {
		rec := &w.actions[i]
		if rec.alive && rec.group == id && rec.invalidateOnDisable {
			rec.last = nil
		}
	}
}

// GroupEnabled reports the group's current flag. Unknown groups read as
// disabled.
func (w *World) GroupEnabled(id GroupID) bool {
	if w == nil || int(id) >= len(w.groups) {
		return false
	}
	return w.groups[id].enabled
}

// GroupName returns the group's declared name.
func (w *World) GroupName(id GroupID) string {
	if w == nil || int(id) >= len(w.groups) {
		return ""
	}
	return w.groups[id].name
}
