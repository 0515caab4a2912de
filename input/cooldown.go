package input

// Cooldown admits a nonzero value at most once per Duration. While cooling
// down, nonzero input is suppressed to zero rather than invalidated, and the
// timer never resets early. Zero input passes through untouched.
type Cooldown struct {
	Duration float64

	remaining float64
}

func NewCooldown(duration float64) *Cooldown {
	return &Cooldown{Duration: duration}
}

func (c *Cooldown) Evaluate(ctx *Context, v Value) (Value, bool) {
	if c.remaining > 0 {
		c.remaining -= ctx.DT
	}
	if v.isZero(ctx.Epsilon) {
		return v, true
	}
	if c.remaining > 0 {
		return v.Zeroed(), true
	}
	c.remaining = c.Duration
	return v, true
}
