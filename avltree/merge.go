package avltree

// Merge combines two trees key-wise. For every key bound in t1 or t2 (or
// both), f decides whether and to which value it is bound in the result:
// inA and inB tell whether k is bound in t1 and t2, respectively, and
// returning ok=false drops k. f is called once per key, in ascending key
// order.
//
// Merge splits the smaller tree around the root key of the taller one and
// recurses on both halves, re-assembling with join or concat. For trees of
// comparable size this is O(n log n).
//
// The result is ordered by the configuration of t1, or of t2 if t1 is nil.
func Merge[K, A, B, C any](t1 *Tree[K, A], t2 *Tree[K, B], f func(k K, a A, inA bool, b B, inB bool) (C, bool)) *Tree[K, C] {
	var cfg Config[K]
	switch {
	case t1 != nil:
		cfg = t1.cfg
	case t2 != nil:
		cfg = t2.cfg
	default:
		return nil
	}
	root := merge(cfg.Compare, t1.node(), t2.node(), f)
	return &Tree[K, C]{cfg: cfg, root: root}
}

func merge[K, A, B, C any](cmp func(K, K) int, s1 *Node[K, A], s2 *Node[K, B],
	f func(K, A, bool, B, bool) (C, bool)) *Node[K, C] {
	//
	if s1 == nil && s2 == nil {
		return nil
	}
	if s1 != nil && s1.height >= height(s2) {
		l2, b, inB, r2 := split(cmp, s1.key, s2)
		left := merge(cmp, s1.left, l2, f)
		c, ok := f(s1.key, s1.value, true, b, inB)
		right := merge(cmp, s1.right, r2, f)
		return concatOrJoin(left, s1.key, c, ok, right)
	}
	l1, a, inA, r1 := split(cmp, s2.key, s1)
	left := merge(cmp, l1, s2.left, f)
	c, ok := f(s2.key, a, inA, s2.value, true)
	right := merge(cmp, r1, s2.right, f)
	return concatOrJoin(left, s2.key, c, ok, right)
}

// MapValues transforms every value of t with f. Keys and the shape of the
// tree are preserved. f is called in ascending key order.
func MapValues[K, V, W any](t *Tree[K, V], f func(V) W) *Tree[K, W] {
	return MapWithKey(t, func(_ K, v V) W { return f(v) })
}

// MapWithKey is like MapValues, but f receives the key as well.
func MapWithKey[K, V, W any](t *Tree[K, V], f func(K, V) W) *Tree[K, W] {
	if t == nil {
		return nil
	}
	return &Tree[K, W]{cfg: t.cfg, root: mapi(t.root, f)}
}

func mapi[K, V, W any](n *Node[K, V], f func(K, V) W) *Node[K, W] {
	if n == nil {
		return nil
	}
	l := mapi(n.left, f)
	w := f(n.key, n.value)
	r := mapi(n.right, f)
	return &Node[K, W]{left: l, key: n.key, value: w, right: r, height: n.height}
}
