package input

// ActionID is a generational handle to a declared action. The low 32 bits
// are the slot index plus one, the high 32 bits the slot generation, so a
// handle left over from a removed action never aliases its replacement.
type ActionID uint64

const actionIDBits = 32

func makeActionID(slot int, gen uint32) ActionID {
	return ActionID(uint64(gen)<<actionIDBits | uint64(uint32(slot+1)))
}

func (id ActionID) slot() int {
	return int(uint32(id)) - 1
}

func (id ActionID) generation() uint32 {
	return uint32(uint64(id) >> actionIDBits)
}

func (id ActionID) Valid() bool {
	return uint32(id) > 0
}

// ActionSpec declares one action: its binding tree, ordered condition chain,
// owning group, and disablement policy. Axis must match the binding's
// channel count; a mismatch is rejected at Declare time.
type ActionSpec struct {
	Name       string
	Axis       Axis
	Binding    Binding
	Conditions []Condition
	// Group the action belongs to; the zero value is the world's default
	// group, which starts enabled.
	Group GroupID
	// InvalidateOnDisable forgets the action's value when its group is
	// disabled, so re-enabling starts from a fresh press. When false, a
	// disabled action pauses mid-gesture and resumes on enable.
	InvalidateOnDisable bool
}

// actionRecord is one arena slot. Removing the action clears the whole
// record, freeing the binding tree, chain, and state together.
type actionRecord struct {
	name                string
	binding             Binding
	chain               []Condition
	group               GroupID
	invalidateOnDisable bool

	// last accepted value; nil means no value yet or invalidated.
	last *Value

	gen   uint32
	alive bool
}

// evaluate runs one frame of this action's pipeline against the captured
// snapshot and appends any emitted events to out. It touches only state
// owned by this action, so distinct actions may evaluate concurrently.
func (rec *actionRecord) evaluate(id ActionID, w *World, snap *snapshot, dt float64, out *[]Event) {
	// The group flag is read here, at the start of the action's own
	// evaluation, so a toggle is observed by the next pass without any
	// broadcast.
	if !w.GroupEnabled(rec.group) {
		if rec.invalidateOnDisable {
			rec.last = nil
		}
		return
	}

	v, ok := rec.binding.resolve(snap)
	if ok {
		ctx := Context{DT: dt, Epsilon: w.epsilon, chain: rec.chain}
		for _, stage := range rec.chain {
			v, ok = stage.Evaluate(&ctx, v)
			if !ok {
				break
			}
		}
	}
	if !ok {
		// unavailable source or invalidated frame: forget the value and
		// emit nothing; the next nonzero reading presses fresh.
		rec.last = nil
		return
	}

	prev := rec.last
	nonzero := !v.isZero(w.epsilon)

	if prev == nil {
		if !nonzero {
			// nothing to compare against yet
			return
		}
		rec.last = &v
		*out = append(*out,
			Event{Kind: EventJustPressed, Action: id, Name: rec.name, Value: v},
			Event{Kind: EventPressed, Action: id, Name: rec.name, Value: v},
			Event{Kind: EventUpdated, Action: id, Name: rec.name, Value: v},
		)
		return
	}

	prevNonzero := !prev.isZero(w.epsilon)
	rec.last = &v

	if nonzero && !prevNonzero {
		*out = append(*out, Event{Kind: EventJustPressed, Action: id, Name: rec.name, Value: v})
	}
	if nonzero {
		*out = append(*out, Event{Kind: EventPressed, Action: id, Name: rec.name, Value: v})
	}
	*out = append(*out, Event{Kind: EventUpdated, Action: id, Name: rec.name, Value: v})
	if !nonzero && prevNonzero {
		*out = append(*out, Event{Kind: EventJustReleased, Action: id, Name: rec.name, Value: *prev})
	}
}
