package input

import (
	"fmt"
	"sync"
)

// World owns every declared action, input group, and registered source, and
// runs one evaluation pass per frame. Actions live in an arena of records
// addressed by generational handles; removing an action frees its binding
// tree, condition chain, and state in one go.
//
// All mutation happens on the host's update goroutine. With SetWorkers the
// per-action pipelines of one pass run on a small worker pool; this is safe
// because each action's state is exclusively owned and source readings are
// captured into an immutable snapshot before any pipeline begins. Emitted
// events are merged back in declaration order, so results are identical
// regardless of worker count.
type World struct {
	sources []Source
	actions []actionRecord
	order   []int
	free    []int
	groups  []group

	epsilon float64
	workers int

	events   EventQueue
	handlers []func(Event)

	snap    snapshot
	scratch [][]Event
}

// NewWorld creates an empty world with the default group enabled.
func NewWorld() *World {
	return &World{
		groups:  []group{{name: "default", enabled: true}},
		epsilon: DefaultEpsilon,
	}
}

// SetEpsilon overrides the zero-detection threshold for every action in this
// world. The default is DefaultEpsilon.
func (w *World) SetEpsilon(eps float64) {
	if w == nil || eps < 0 {
		return
	}
	w.epsilon = eps
}

// SetWorkers sets the evaluation worker count for Update. Values below 2
// keep evaluation on the calling goroutine.
func (w *World) SetWorkers(n int) {
	if w == nil {
		return
	}
	w.workers = n
}

// AddSource registers a scalar source and returns its id. Sources are read
// exactly once per frame, into the snapshot, before any action evaluates.
func (w *World) AddSource(src Source) SourceID {
	if w == nil || src == nil {
		return 0
	}
	w.sources = append(w.sources, src)
	return SourceID(len(w.sources))
}

// Declare creates an action from its spec. Dimensionality mismatches and
// unknown groups are rejected here, once; evaluation can then never fail on
// shape.
func (w *World) Declare(spec ActionSpec) (ActionID, error) {
	if w == nil {
		return 0, fmt.Errorf("input: declare on nil world")
	}
	if spec.Binding.empty() {
		return 0, fmt.Errorf("input: action %q has no binding", spec.Name)
	}
	if spec.Axis == 0 {
		spec.Axis = spec.Binding.Axis()
	}
	if !spec.Axis.Valid() {
		return 0, fmt.Errorf("input: action %q has invalid axis %d", spec.Name, spec.Axis)
	}
	if spec.Axis != spec.Binding.Axis() {
		return 0, fmt.Errorf("input: action %q declared %d channels but its binding resolves %d",
			spec.Name, spec.Axis, spec.Binding.Axis())
	}
	if int(spec.Group) >= len(w.groups) {
		return 0, fmt.Errorf("input: action %q references unknown group %d", spec.Name, spec.Group)
	}

	var slot int
	if n := len(w.free); n > 0 {
		slot = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		slot = len(w.actions)
		w.actions = append(w.actions, actionRecord{})
	}

	gen := w.actions[slot].gen
	w.actions[slot] = actionRecord{
		name:                spec.Name,
		binding:             spec.Binding,
		chain:               append([]Condition(nil), spec.Conditions...),
		group:               spec.Group,
		invalidateOnDisable: spec.InvalidateOnDisable,
		gen:                 gen,
		alive:               true,
	}
	w.order = append(w.order, slot)
	return makeActionID(slot, gen), nil
}

// Remove destroys an action, its binding tree, and its condition chain.
// Returns false for stale or unknown handles.
func (w *World) Remove(id ActionID) bool {
	rec := w.record(id)
	if rec == nil {
		return false
	}
	slot := id.slot()
	gen := rec.gen
	w.actions[slot] = actionRecord{gen: gen + 1}
	w.free = append(w.free, slot)
	for i, s := range w.order {
		if s == slot {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	return true
}

// Alive reports whether the handle still refers to a declared action.
func (w *World) Alive(id ActionID) bool {
	return w.record(id) != nil
}

// LastValue returns the action's last accepted value. ok=false means the
// action has no value yet, was invalidated, or the handle is stale.
func (w *World) LastValue(id ActionID) (Value, bool) {
	rec := w.record(id)
	if rec == nil || rec.last == nil {
		return Value{}, false
	}
	return *rec.last, true
}

// ActionName returns the declared name for a live handle.
func (w *World) ActionName(id ActionID) string {
	rec := w.record(id)
	if rec == nil {
		return ""
	}
	return rec.name
}

// Events returns the world event queue, filled by Update in declaration
// order and drained by the host once per frame.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Handle registers a callback invoked for every event during Update, after
// the pass completes, in declaration order.
func (w *World) Handle(fn func(Event)) {
	if w == nil || fn == nil {
		return
	}
	w.handlers = append(w.handlers, fn)
}

// Update runs one evaluation pass: capture the source snapshot, run every
// enabled action's pipeline, then publish events. dt is the frame's delta
// time in seconds.
func (w *World) Update(dt float64) {
	if w == nil {
		return
	}
	w.capture()

	n := len(w.order)
	if cap(w.scratch) < n {
		w.scratch = make([][]Event, n)
	} else {
		w.scratch = w.scratch[:n]
	}
	for i := range w.scratch {
		w.scratch[i] = w.scratch[i][:0]
	}

	if workers := w.workers; workers > 1 && n > 1 {
		if workers > n {
			workers = n
		}
		var wg sync.WaitGroup
		for g := 0; g < workers; g++ {
			wg.Add(1)
			go func(g int) {
				defer wg.Done()
				for i := g; i < n; i += workers {
					w.evaluateAt(i, dt)
				}
			}(g)
		}
		wg.Wait()
	} else {
		for i := 0; i < n; i++ {
			w.evaluateAt(i, dt)
		}
	}

	for i := 0; i < n; i++ {
		for _, evt := range w.scratch[i] {
			w.events.Push(evt)
			for _, h := range w.handlers {
				h(evt)
			}
		}
	}
}

func (w *World) evaluateAt(i int, dt float64) {
	slot := w.order[i]
	rec := &w.actions[slot]
	rec.evaluate(makeActionID(slot, rec.gen), w, &w.snap, dt, &w.scratch[i])
}

func (w *World) capture() {
	n := len(w.sources)
	if len(w.snap.values) != n {
		w.snap.values = make([]float64, n)
		w.snap.ok = make([]bool, n)
	}
	for i, src := range w.sources {
		w.snap.values[i], w.snap.ok[i] = src.Read()
	}
}

func (w *World) record(id ActionID) *actionRecord {
	slot := id.slot()
	if w == nil || slot < 0 || slot >= len(w.actions) {
		return nil
	}
	rec := &w.actions[slot]
	if !rec.alive || rec.gen != id.generation() {
		return nil
	}
	return rec
}
