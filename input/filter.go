package input

// Predicate is a read-only query into host application state consulted by
// filter stages. It must not mutate anything during evaluation.
type Predicate func() bool

// Filter passes the value through unchanged while the predicate holds and
// suppresses it to zero otherwise. A zeroed value still counts as a reading,
// so a held input releases normally when the predicate stops holding.
type Filter struct {
	Allow Predicate
}

func NewFilter(allow Predicate) *Filter {
	return &Filter{Allow: allow}
}

func (f *Filter) Evaluate(ctx *Context, v Value) (Value, bool) {
	if f.Allow == nil || f.Allow() {
		return v, true
	}
	return v.Zeroed(), true
}

// BufferedFilter is a Filter with a grace window: after the predicate stops
// holding, values keep passing for up to Duration before the stage starts
// zeroing. The classic use is coyote time, where "is grounded" stays
// satisfied briefly after walking off a ledge. The window only opens off the
// back of a holding predicate; it is not an initial allowance.
type BufferedFilter struct {
	Allow    Predicate
	Duration float64

	remaining float64
}

func NewBufferedFilter(allow Predicate, duration float64) *BufferedFilter {
	return &BufferedFilter{Allow: allow, Duration: duration}
}

func (f *BufferedFilter) Evaluate(ctx *Context, v Value) (Value, bool) {
	if f.Allow == nil || f.Allow() {
		f.remaining = f.Duration
		return v, true
	}
	if f.remaining > 0 {
		f.remaining -= ctx.DT
		if f.remaining > 0 {
			return v, true
		}
	}
	return v.Zeroed(), true
}

// InvalidatingFilter triggers like Filter but invalidates the frame when the
// predicate fails instead of zeroing. Invalidation resets the action's
// remembered value and suppresses all transition events for the frame.
type InvalidatingFilter struct {
	Allow Predicate
}

func NewInvalidatingFilter(allow Predicate) *InvalidatingFilter {
	return &InvalidatingFilter{Allow: allow}
}

func (f *InvalidatingFilter) Evaluate(ctx *Context, v Value) (Value, bool) {
	if f.Allow == nil || f.Allow() {
		return v, true
	}
	return Value{}, false
}
