package input

// Context is passed to every condition evaluation. DT is the frame's delta
// time in seconds; Epsilon is the owning world's zero-detection threshold.
// The context also carries the owning action's full chain so stages like
// ResetBuffer can reach buffers declared elsewhere in the same pipeline.
type Context struct {
	DT      float64
	Epsilon float64

	chain []Condition
}

// ResetBuffers force-expires every InputBuffer in the owning action's chain
// without altering the current frame's value.
func (c *Context) ResetBuffers() {
	if c == nil {
		return
	}
	for _, stage := range c.chain {
		if r, ok := stage.(bufferResetter); ok {
			r.resetBuffer()
		}
	}
}

// Condition is one stage of an action's pipeline. Stages are evaluated
// strictly in declaration order; each receives the prior stage's output.
// Returning ok=false invalidates the frame: the remaining stages are skipped
// (their state untouched) and the action's remembered value resets, so the
// next nonzero reading reports JustPressed again.
//
// A stage's private state is mutated only by its own evaluation; the chain
// is exclusively owned by one action and needs no locking.
type Condition interface {
	Evaluate(ctx *Context, v Value) (Value, bool)
}

// ConditionFunc adapts a stateless function to the Condition interface.
type ConditionFunc func(ctx *Context, v Value) (Value, bool)

func (f ConditionFunc) Evaluate(ctx *Context, v Value) (Value, bool) {
	return f(ctx, v)
}

type bufferResetter interface {
	resetBuffer()
}
