package avltree

// cursor walks a tree in order with an explicit stack of pending nodes, so a
// walk can be suspended after every binding.
type cursor[K, V any] struct {
	stack []*Node[K, V]
}

func newCursor[K, V any](n *Node[K, V]) *cursor[K, V] {
	c := &cursor[K, V]{stack: make([]*Node[K, V], 0, height(n))}
	c.pushLeft(n)
	return c
}

func (c *cursor[K, V]) pushLeft(n *Node[K, V]) {
	for n != nil {
		c.stack = append(c.stack, n)
		n = n.left
	}
}

// next returns the next node in key order, or nil when the walk is done.
func (c *cursor[K, V]) next() *Node[K, V] {
	if len(c.stack) == 0 {
		return nil
	}
	top := len(c.stack) - 1
	n := c.stack[top]
	c.stack = c.stack[:top]
	c.pushLeft(n.right)
	return n
}

func (t *Tree[K, V]) compareFunc(other *Tree[K, V]) func(K, K) int {
	if t != nil {
		return t.cfg.Compare
	}
	return other.cfg.Compare
}

// Compare orders two trees. Trees with fewer bindings are smaller. Trees of
// equal size are compared binding by binding in key order: first by key,
// then, for equal keys, by value using vcmp. The first difference decides.
func (t *Tree[K, V]) Compare(other *Tree[K, V], vcmp func(a, b V) int) int {
	len1, len2 := t.Len(), other.Len()
	switch {
	case len1 < len2:
		return -1
	case len1 > len2:
		return 1
	case len1 == 0:
		return 0
	}
	kcmp := t.compareFunc(other)
	c1, c2 := newCursor(t.root), newCursor(other.root)
	for {
		n1, n2 := c1.next(), c2.next()
		if n1 == nil || n2 == nil {
			return 0
		}
		if c := kcmp(n1.key, n2.key); c != 0 {
			return c
		}
		if c := vcmp(n1.value, n2.value); c != 0 {
			return c
		}
	}
}

// Equal reports whether two trees hold the same keys, with values equal
// according to veq.
func (t *Tree[K, V]) Equal(other *Tree[K, V], veq func(a, b V) bool) bool {
	len1, len2 := t.Len(), other.Len()
	if len1 != len2 {
		return false
	}
	if len1 == 0 {
		return true
	}
	kcmp := t.compareFunc(other)
	c1, c2 := newCursor(t.root), newCursor(other.root)
	for {
		n1, n2 := c1.next(), c2.next()
		if n1 == nil || n2 == nil {
			return true
		}
		if kcmp(n1.key, n2.key) != 0 || !veq(n1.value, n2.value) {
			return false
		}
	}
}
