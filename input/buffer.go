package input

// InputBuffer keeps emitting the last nonzero value for up to Duration after
// the input drops to zero, then falls back to zero. A new nonzero input
// before expiry refreshes the window. Downstream, release is observed at
// buffer expiry rather than at the original zero transition.
type InputBuffer struct {
	Duration float64

	last      Value
	has       bool
	armed     bool
	remaining float64
}

func NewInputBuffer(duration float64) *InputBuffer {
	return &InputBuffer{Duration: duration}
}

func (b *InputBuffer) Evaluate(ctx *Context, v Value) (Value, bool) {
	if !v.isZero(ctx.Epsilon) {
		b.last = v
		b.has = true
		b.armed = false
		return v, true
	}
	if b.has && !b.armed {
		// input just dropped; open the buffer window
		b.armed = true
		b.remaining = b.Duration
	}
	if b.armed && b.remaining > 0 {
		b.remaining -= ctx.DT
		if b.remaining > 0 {
			return b.last, true
		}
	}
	return v, true
}

func (b *InputBuffer) resetBuffer() {
	b.has = false
	b.armed = false
	b.remaining = 0
}

// ResetBuffer expires every InputBuffer elsewhere in the same action's chain
// whenever a nonzero value passes through it. The current frame's value is
// left unchanged.
type ResetBuffer struct{}

func NewResetBuffer() ResetBuffer {
	return ResetBuffer{}
}

func (ResetBuffer) Evaluate(ctx *Context, v Value) (Value, bool) {
	if !v.isZero(ctx.Epsilon) {
		ctx.ResetBuffers()
	}
	return v, true
}
