package tree

import "math"

type flatNode[K, V any] struct {
	key   K
	value *V
}

// Flattened is a binary tree stored as a single slice addressed like a
// binary heap: node i's children live at 2i+1 and 2i+2. Traversal is
// index arithmetic instead of pointer chasing, which is cache-friendlier
// for bulk operations like TriangleBuffer over a large BVH.
type Flattened[K, V any] struct {
	nodes []*flatNode[K, V]
}

// Root returns the index of the tree's root, always 0.
func (t *Flattened[K, V]) Root() int { return 0 }

// Len returns the backing slice's length, including empty gaps left by
// an unbalanced tree.
func (t *Flattened[K, V]) Len() int { return len(t.nodes) }

// Key returns the key stored at ptr.
func (t *Flattened[K, V]) Key(ptr int) K { return t.nodes[ptr].key }

// IsLeaf reports whether the node at ptr is a leaf.
func (t *Flattened[K, V]) IsLeaf(ptr int) bool { return t.nodes[ptr].value != nil }

// Value returns the leaf value at ptr and true, or zero and false for a branch.
func (t *Flattened[K, V]) Value(ptr int) (V, bool) {
	if v := t.nodes[ptr].value; v != nil {
		return *v, true
	}
	var zero V
	return zero, false
}

// Children returns the indices of ptr's two children.
func (t *Flattened[K, V]) Children(ptr int) (left, right int) {
	return 2*ptr + 1, 2*ptr + 2
}

// Depth returns the tree's depth, consistent with Recursive.Depth.
func (t *Flattened[K, V]) Depth() int {
	return int(math.Ceil(math.Log2(float64(len(t.nodes)+1)))) - 1
}

// FromRecursive converts a Recursive tree into its Flattened form via a
// level-order (breadth-first) walk into a freshly sized heap array.
func FromRecursive[K, V any](root *Recursive[K, V]) *Flattened[K, V] {
	depth := root.Depth()
	size := (1 << (depth + 1)) - 1
	nodes := make([]*flatNode[K, V], size)

	type item struct {
		node *Recursive[K, V]
		pos  int
	}
	queue := []item{{root, 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if value, ok := cur.node.Value(); ok {
			nodes[cur.pos] = &flatNode[K, V]{key: cur.node.key, value: &value}
			continue
		}

		left, right, _ := cur.node.Children()
		nodes[cur.pos] = &flatNode[K, V]{key: cur.node.key}
		lp, rp := 2*cur.pos+1, 2*cur.pos+2
		queue = append(queue, item{left, lp}, item{right, rp})
	}

	return &Flattened[K, V]{nodes: nodes}
}

// ToRecursive converts a Flattened tree back into its pointer-based form.
func (t *Flattened[K, V]) ToRecursive() *Recursive[K, V] {
	return t.subtreeToRecursive(t.Root())
}

func (t *Flattened[K, V]) subtreeToRecursive(ptr int) *Recursive[K, V] {
	if value, ok := t.Value(ptr); ok {
		return NewLeaf(t.Key(ptr), value)
	}
	left, right := t.Children(ptr)
	return NewBranch(t.Key(ptr), t.subtreeToRecursive(left), t.subtreeToRecursive(right))
}

// Concat joins two Flattened trees into a new one under key, rebuilding
// the heap array level by level rather than simply nesting two subtrees -
// the same layout the original LinearTree::concat produces, so repeated
// concatenation never needs to reshuffle already-placed levels.
func Concat[K, V any](left, right *Flattened[K, V], key K) *Flattened[K, V] {
	depth := left.Depth()
	if rd := right.Depth(); rd > depth {
		depth = rd
	}
	depth++
	size := (1 << (depth + 1)) - 1

	nodes := make([]*flatNode[K, V], size)
	nodes[0] = &flatNode[K, V]{key: key}

	ptr := 1
	t := 0
	for d := 0; d <= depth; d++ {
		width := 1 << d

		if t+width <= len(left.nodes) {
			copy(nodes[ptr:ptr+width], left.nodes[t:t+width])
		}
		ptr += width

		if t+width <= len(right.nodes) {
			copy(nodes[ptr:ptr+width], right.nodes[t:t+width])
		}
		ptr += width

		t += width
	}

	return &Flattened[K, V]{nodes: nodes}
}
