package input

// DefaultPressThreshold is the magnitude a value must exceed for the edge
// detectors to consider it pressed.
const DefaultPressThreshold = 0.5

// ButtonPress is a rising-edge detector: it passes the value only on the
// frame its magnitude first crosses the threshold and emits zero otherwise.
// The previous-reading memory is the stage's own, independent of the
// action's remembered value.
type ButtonPress struct {
	Threshold float64

	prev Value
}

func NewButtonPress() *ButtonPress {
	return &ButtonPress{Threshold: DefaultPressThreshold}
}

func (b *ButtonPress) Evaluate(ctx *Context, v Value) (Value, bool) {
	prev := b.prev
	b.prev = v
	if v.Pressed(b.Threshold) && !prev.Pressed(b.Threshold) {
		return v, true
	}
	return v.Zeroed(), true
}

// ButtonRelease is a falling-edge detector: on the frame the value drops
// below the threshold it emits the last pressed value as a single pulse,
// and zero otherwise.
type ButtonRelease struct {
	Threshold float64

	prev Value
}

func NewButtonRelease() *ButtonRelease {
	return &ButtonRelease{Threshold: DefaultPressThreshold}
}

func (b *ButtonRelease) Evaluate(ctx *Context, v Value) (Value, bool) {
	prev := b.prev
	b.prev = v
	if !v.Pressed(b.Threshold) && prev.Pressed(b.Threshold) {
		return prev, true
	}
	return v.Zeroed(), true
}
