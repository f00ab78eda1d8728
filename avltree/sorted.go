package avltree

// ToSlice returns all bindings in ascending key order.
func (t *Tree[K, V]) ToSlice() []Pair[K, V] {
	if t.IsEmpty() {
		return []Pair[K, V]{}
	}
	pairs := make([]Pair[K, V], length(t.root))
	fill(t.root, 0, pairs)
	return pairs
}

// fill writes the bindings of n to pairs, starting at index i, and returns
// the index after the last binding written.
func fill[K, V any](n *Node[K, V], i int, pairs []Pair[K, V]) int {
	for n != nil {
		i = fill(n.left, i, pairs)
		pairs[i] = Pair[K, V]{Key: n.key, Value: n.value}
		i++
		n = n.right
	}
	return i
}

// FromSortedUnsafe builds a balanced tree from pairs in O(n).
//
// Clients must guarantee that the keys of pairs are strictly ascending with
// respect to cfg.Compare. This is not checked; violating it results in a
// tree with broken search order, on which all operations are undefined.
func FromSortedUnsafe[K, V any](cfg Config[K], pairs []Pair[K, V]) (*Tree[K, V], error) {
	t, err := New[K, V](cfg)
	if err != nil {
		return nil, err
	}
	t.root = fromSorted(pairs)
	return t, nil
}

// fromSorted recursively splits pairs at the midpoint. Sub-slices differ in
// size by at most one, therefore their trees differ in height by at most one.
func fromSorted[K, V any](pairs []Pair[K, V]) *Node[K, V] {
	switch len(pairs) {
	case 0:
		return nil
	case 1:
		return singleton(pairs[0].Key, pairs[0].Value)
	case 2:
		return &Node[K, V]{
			left:   singleton(pairs[0].Key, pairs[0].Value),
			key:    pairs[1].Key,
			value:  pairs[1].Value,
			height: 2,
		}
	case 3:
		return &Node[K, V]{
			left:   singleton(pairs[0].Key, pairs[0].Value),
			key:    pairs[1].Key,
			value:  pairs[1].Value,
			right:  singleton(pairs[2].Key, pairs[2].Value),
			height: 2,
		}
	}
	mid := len(pairs) / 2
	l := fromSorted(pairs[:mid])
	r := fromSorted(pairs[mid+1:])
	return create(l, pairs[mid].Key, pairs[mid].Value, r)
}
