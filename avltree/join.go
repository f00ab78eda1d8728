package avltree

// addMinElement inserts a binding whose key is smaller than all keys of n.
func addMinElement[K, V any](n *Node[K, V], k K, v V) *Node[K, V] {
	if n == nil {
		return singleton(k, v)
	}
	return bal(addMinElement(n.left, k, v), n.key, n.value, n.right)
}

// addMaxElement inserts a binding whose key is greater than all keys of n.
func addMaxElement[K, V any](n *Node[K, V], k K, v V) *Node[K, V] {
	if n == nil {
		return singleton(k, v)
	}
	return bal(n.left, n.key, n.value, addMaxElement(n.right, k, v))
}

// join combines l, a pivot binding and r, where all keys of l are smaller
// than k and all keys of r are greater than k. The heights of l and r may
// differ arbitrarily.
//
// join walks down the spine of the taller tree until it finds a subtree of
// about the height of the shorter one, creates a node there and repairs
// balance on the way back up. Every step up grows the result by at most one,
// which is what bal can handle.
func join[K, V any](l *Node[K, V], k K, v V, r *Node[K, V]) *Node[K, V] {
	switch {
	case l == nil:
		return addMinElement(r, k, v)
	case r == nil:
		return addMaxElement(l, k, v)
	}
	if l.height > r.height+tolerance {
		return bal(l.left, l.key, l.value, join(l.right, k, v, r))
	}
	if r.height > l.height+tolerance {
		return bal(join(l, k, v, r.left), r.key, r.value, r.right)
	}
	return create(l, k, v, r)
}

// removeMin detaches the smallest binding of a non-empty tree.
func removeMin[K, V any](n *Node[K, V]) (rest *Node[K, V], k K, v V) {
	assert(n != nil, "removeMin called with empty tree")
	if n.left == nil {
		return n.right, n.key, n.value
	}
	l, k, v := removeMin(n.left)
	return bal(l, n.key, n.value, n.right), k, v
}

// concat combines two trees where all keys of l are smaller than all keys
// of r. The minimum of r becomes the pivot of a join.
func concat[K, V any](l, r *Node[K, V]) *Node[K, V] {
	switch {
	case l == nil:
		return r
	case r == nil:
		return l
	}
	rest, k, v := removeMin(r)
	return join(l, k, v, rest)
}

// concatOrJoin joins l and r around (k, v) if ok, and otherwise drops the
// pivot and concatenates.
func concatOrJoin[K, V any](l *Node[K, V], k K, v V, ok bool, r *Node[K, V]) *Node[K, V] {
	if ok {
		return join(l, k, v, r)
	}
	return concat(l, r)
}

func minNode[K, V any](n *Node[K, V]) *Node[K, V] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

func maxNode[K, V any](n *Node[K, V]) *Node[K, V] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}
