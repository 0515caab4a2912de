package input

// Invert re-emits the last nonzero value it has seen while the input is
// zero. A nonzero input passes through unchanged and becomes the new
// remembered value. Before any nonzero value has been seen, zero input
// passes through as-is.
type Invert struct {
	last Value
	has  bool
}

func NewInvert() *Invert {
	return &Invert{}
}

func (i *Invert) Evaluate(ctx *Context, v Value) (Value, bool) {
	if v.isZero(ctx.Epsilon) {
		if i.has {
			return i.last, true
		}
		return v, true
	}
	i.last = v
	i.has = true
	return v, true
}
