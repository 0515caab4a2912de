package input

// SourceID identifies a scalar signal source registered with a World.
// IDs start at 1; the zero value is never a valid source.
type SourceID uint32

func (id SourceID) Valid() bool {
	return id > 0
}

// Source supplies one scalar reading per frame. ok=false means the source is
// currently unavailable (e.g. a disconnected device); the owning binding
// resolves as unavailable for that frame and the action is invalidated.
type Source interface {
	Read() (value float64, ok bool)
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func() (float64, bool)

func (f SourceFunc) Read() (float64, bool) {
	return f()
}

// snapshot holds one frame's readings for every registered source, captured
// once before any pipeline runs so concurrent action evaluation never races
// with device polling.
type snapshot struct {
	values []float64
	ok     []bool
}

func (s *snapshot) read(id SourceID) (float64, bool) {
	i := int(id) - 1
	if s == nil || i < 0 || i >= len(s.values) {
		return 0, false
	}
	return s.values[i], s.ok[i]
}
