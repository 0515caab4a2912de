package input

import (
	"testing"
)

func TestComposeChannelCounts(t *testing.T) {
	w := NewWorld()
	_, a := newStub(w)
	_, b := newStub(w)
	_, c := newStub(w)
	_, d := newStub(w)

	t.Run("two_scalars", func(t *testing.T) {
		bd, err := Compose(Leaf(a), Leaf(b))
		if err != nil {
			t.Fatalf("compose: %v", err)
		}
		if bd.Axis() != Axis2D {
			t.Fatalf("axis = %d, want 2", bd.Axis())
		}
	})
	t.Run("scalar_plus_pair", func(t *testing.T) {
		pair, err := Compose(Leaf(a), Leaf(b))
		if err != nil {
			t.Fatalf("compose pair: %v", err)
		}
		bd, err := Compose(Leaf(c), pair)
		if err != nil {
			t.Fatalf("compose: %v", err)
		}
		if bd.Axis() != Axis3D {
			t.Fatalf("axis = %d, want 3", bd.Axis())
		}
	})
	t.Run("four_channels_rejected", func(t *testing.T) {
		if _, err := Compose(Leaf(a), Leaf(b), Leaf(c), Leaf(d)); err == nil {
			t.Fatalf("expected error for 4 channels")
		}
	})
	t.Run("no_children_rejected", func(t *testing.T) {
		if _, err := Compose(); err == nil {
			t.Fatalf("expected error for empty compose")
		}
	})
	t.Run("empty_child_rejected", func(t *testing.T) {
		if _, err := Compose(Leaf(a), Binding{}); err == nil {
			t.Fatalf("expected error for empty child")
		}
	})
}

func TestComposeChannelOrder(t *testing.T) {
	w := NewWorld()
	sx, a := newStub(w)
	sy, b := newStub(w)
	sz, c := newStub(w)
	sx.value, sy.value, sz.value = 1, 2, 3

	bd, err := Compose(Leaf(a), Leaf(b), Leaf(c))
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	id, err := w.Declare(ActionSpec{Name: "vec", Binding: bd})
	if err != nil {
		t.Fatalf("declare: %v", err)
	}

	w.Update(1.0 / 60.0)
	v, ok := w.LastValue(id)
	if !ok {
		t.Fatalf("expected a value")
	}
	if v.X != 1 || v.Y != 2 || v.Z != 3 {
		t.Fatalf("channels out of order: %v", v)
	}
}

func TestComposeNestingDoesNotChangeChannels(t *testing.T) {
	w := NewWorld()
	sx, a := newStub(w)
	sy, b := newStub(w)
	sz, c := newStub(w)
	sx.value, sy.value, sz.value = 0.5, -0.25, 0.75

	flat, err := Compose(Leaf(a), Leaf(b), Leaf(c))
	if err != nil {
		t.Fatalf("compose flat: %v", err)
	}
	pair, err := Compose(Leaf(a), Leaf(b))
	if err != nil {
		t.Fatalf("compose pair: %v", err)
	}
	nested, err := Compose(pair, Leaf(c))
	if err != nil {
		t.Fatalf("compose nested: %v", err)
	}

	flatID, err := w.Declare(ActionSpec{Name: "flat", Binding: flat})
	if err != nil {
		t.Fatalf("declare flat: %v", err)
	}
	nestedID, err := w.Declare(ActionSpec{Name: "nested", Binding: nested})
	if err != nil {
		t.Fatalf("declare nested: %v", err)
	}

	w.Update(1.0 / 60.0)
	fv, ok := w.LastValue(flatID)
	if !ok {
		t.Fatalf("flat value missing")
	}
	nv, ok := w.LastValue(nestedID)
	if !ok {
		t.Fatalf("nested value missing")
	}
	if fv != nv {
		t.Fatalf("nesting changed the resolved value: %v vs %v", fv, nv)
	}
}

func TestBindingUnavailableChildFailsWhole(t *testing.T) {
	w := NewWorld()
	sa, a := newStub(w)
	sb, b := newStub(w)
	sa.value, sb.value = 1, 1

	bd, err := Compose(Leaf(a), Leaf(b))
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	id, err := w.Declare(ActionSpec{Name: "pair", Binding: bd})
	if err != nil {
		t.Fatalf("declare: %v", err)
	}

	w.Update(1.0 / 60.0)
	if _, ok := w.LastValue(id); !ok {
		t.Fatalf("expected a value while both sources are up")
	}

	sb.ok = false
	w.Update(1.0 / 60.0)
	w.Events().Drain()
	if _, ok := w.LastValue(id); ok {
		t.Fatalf("one unavailable child should invalidate the whole binding")
	}
}
