package avltree

// Filter returns a tree with the bindings of t for which p holds.
// p is called in ascending key order.
func (t *Tree[K, V]) Filter(p func(k K, v V) bool) *Tree[K, V] {
	if t.IsEmpty() {
		return t
	}
	return t.with(filter(t.root, p))
}

func filter[K, V any](n *Node[K, V], p func(K, V) bool) *Node[K, V] {
	if n == nil {
		return nil
	}
	l := filter(n.left, p)
	keep := p(n.key, n.value)
	r := filter(n.right, p)
	if keep {
		return join(l, n.key, n.value, r)
	}
	return concat(l, r)
}

// Partition splits t into the bindings for which p holds and the bindings
// for which it does not. p is called in ascending key order.
func (t *Tree[K, V]) Partition(p func(k K, v V) bool) (yes, no *Tree[K, V]) {
	if t.IsEmpty() {
		return t, t
	}
	y, n := partition(t.root, p)
	return t.with(y), t.with(n)
}

func partition[K, V any](n *Node[K, V], p func(K, V) bool) (yes, no *Node[K, V]) {
	if n == nil {
		return nil, nil
	}
	ly, ln := partition(n.left, p)
	keep := p(n.key, n.value)
	ry, rn := partition(n.right, p)
	if keep {
		return join(ly, n.key, n.value, ry), concat(ln, rn)
	}
	return concat(ly, ry), join(ln, n.key, n.value, rn)
}
