package avltree

// split partitions n into the bindings with keys smaller than k, the value
// bound to k (if any), and the bindings with keys greater than k.
//
// Subtrees hanging off the search path are shared, the nodes on the path are
// re-assembled by join.
func split[K, V any](cmp func(K, K) int, k K, n *Node[K, V]) (lt *Node[K, V], v V, found bool, gt *Node[K, V]) {
	if n == nil {
		return nil, v, false, nil
	}
	c := cmp(k, n.key)
	switch {
	case c == 0:
		return n.left, n.value, true, n.right
	case c < 0:
		if n.left == nil {
			return nil, v, false, n
		}
		ll, lv, lfound, lr := split(cmp, k, n.left)
		return ll, lv, lfound, join(lr, n.key, n.value, n.right)
	default:
		if n.right == nil {
			return n, v, false, nil
		}
		rl, rv, rfound, rr := split(cmp, k, n.right)
		return join(n.left, n.key, n.value, rl), rv, rfound, rr
	}
}

// Split partitions a tree around key k. It returns a tree with all the
// bindings of keys less than k, the value bound to k, if present, and a tree
// with all the bindings of keys greater than k.
func (t *Tree[K, V]) Split(k K) (lt *Tree[K, V], v V, found bool, gt *Tree[K, V]) {
	if t == nil {
		return nil, v, false, nil
	}
	l, v, found, r := split(t.cfg.Compare, k, t.root)
	return t.with(l), v, found, t.with(r)
}

// Join combines two trees around a pivot binding. All keys of left must be
// smaller than k and all keys of right must be greater than k; this is not
// checked. The heights of left and right may differ arbitrarily.
//
// The result uses the configuration of left, or of right if left is nil.
// If both are nil there is no key order to carry over and Join returns nil,
// as Merge does.
func Join[K, V any](left *Tree[K, V], k K, v V, right *Tree[K, V]) *Tree[K, V] {
	base := left
	if base == nil {
		base = right
	}
	if base == nil {
		return nil
	}
	return base.with(join(left.node(), k, v, right.node()))
}

// Concat appends other to t. All keys of t must be smaller than all keys of
// other; this is not checked.
func (t *Tree[K, V]) Concat(other *Tree[K, V]) *Tree[K, V] {
	switch {
	case t.IsEmpty():
		if other == nil {
			return t
		}
		return other
	case other.IsEmpty():
		return t
	}
	return t.with(concat(t.root, other.root))
}
