package input

// EventKind identifies transition event types.
type EventKind string

const (
	// EventJustPressed fires on the frame an action's value becomes nonzero
	// after having no value or a zero value.
	EventJustPressed EventKind = "just_pressed"
	// EventPressed fires every frame the action's value is nonzero.
	EventPressed EventKind = "pressed"
	// EventJustReleased fires on the frame the value drops to zero; it
	// carries the last nonzero value.
	EventJustReleased EventKind = "just_released"
	// EventUpdated fires every frame a value is accepted, zero or not.
	EventUpdated EventKind = "updated"
)

// Event is one event for one action in one frame. Each of the three
// transition kinds is emitted at most once per action per frame.
type Event struct {
	Kind   EventKind
	Action ActionID
	Name   string
	Value  Value
}

// EventQueue is a simple FIFO queue filled during Update and drained by the
// host's dispatch once per frame.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
