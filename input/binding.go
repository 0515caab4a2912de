package input

import "fmt"

// Binding is an immutable tree composing scalar sources into a value of
// fixed dimensionality. Leaves read one source each; composites concatenate
// their children's channels in declared order. The tree is owned by the
// action that declares it and is freed with it.
type Binding struct {
	nodes []bindingNode
	root  int
	axis  Axis
}

// bindingNode is one arena slot. A node with no children is a leaf reading
// its source; otherwise children index into the owning Binding's node slice.
type bindingNode struct {
	source   SourceID
	children []int
	axis     Axis
}

// Axis returns the binding's channel count.
func (b Binding) Axis() Axis {
	return b.axis
}

func (b Binding) empty() bool {
	return len(b.nodes) == 0
}

// Leaf binds a single scalar source.
func Leaf(id SourceID) Binding {
	return Binding{
		nodes: []bindingNode{{source: id, axis: Axis1D}},
		axis:  Axis1D,
	}
}

// Compose concatenates the children's channels, in order, into one binding.
// The combined channel count must be between 1 and 3; anything else is a
// construction error and the action declaring the binding is not created.
func Compose(children ...Binding) (Binding, error) {
	if len(children) == 0 {
		return Binding{}, fmt.Errorf("input: compose requires at least one child")
	}

	var nodes []bindingNode
	rootKids := make([]int, 0, len(children))
	total := 0
	for i, c := range children {
		if c.empty() {
			return Binding{}, fmt.Errorf("input: compose child %d is empty", i)
		}
		off := len(nodes)
		for _, n := range c.nodes {
			cp := n
			if len(n.children) > 0 {
				cp.children = make([]int, len(n.children))
				for j, k := range n.children {
					cp.children[j] = k + off
				}
			}
			nodes = append(nodes, cp)
		}
		rootKids = append(rootKids, c.root+off)
		total += int(c.axis)
	}

	axis := Axis(total)
	if !axis.Valid() {
		return Binding{}, fmt.Errorf("input: composite binding has %d channels, want 1 to 3", total)
	}
	nodes = append(nodes, bindingNode{children: rootKids, axis: axis})
	return Binding{nodes: nodes, root: len(nodes) - 1, axis: axis}, nil
}

// resolve walks the tree post-order against the frame snapshot. Shape was
// validated at declaration, so resolution can only fail on an unavailable
// source.
func (b Binding) resolve(snap *snapshot) (Value, bool) {
	if b.empty() {
		return Value{}, false
	}
	var ch [3]float64
	n := 0
	if !b.appendChannels(b.root, snap, &ch, &n) {
		return Value{}, false
	}
	return Value{Axis: b.axis, X: ch[0], Y: ch[1], Z: ch[2]}, true
}

func (b Binding) appendChannels(i int, snap *snapshot, ch *[3]float64, n *int) bool {
	node := b.nodes[i]
	if len(node.children) == 0 {
		val, ok := snap.read(node.source)
		if !ok {
			return false
		}
		ch[*n] = val
		*n++
		return true
	}
	for _, k := range node.children {
		if !b.appendChannels(k, snap, ch, n) {
			return false
		}
	}
	return true
}
