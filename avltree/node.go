package avltree

// tolerance is the maximum height difference between the two subtrees of a
// balanced node.
const tolerance = 1

// Node is a single binding of a tree. Nodes are never modified after
// construction; a nil *Node is the empty tree.
type Node[K, V any] struct {
	left   *Node[K, V]
	right  *Node[K, V]
	key    K
	value  V
	height int // 1 for a leaf
}

// Key returns the key of a node.
func (n *Node[K, V]) Key() K { return n.key }

// Value returns the value bound to the key of a node.
func (n *Node[K, V]) Value() V { return n.value }

// Left returns the left subtree, which may be nil.
func (n *Node[K, V]) Left() *Node[K, V] { return n.left }

// Right returns the right subtree, which may be nil.
func (n *Node[K, V]) Right() *Node[K, V] { return n.right }

// Height returns the height of the subtree rooted at n, 0 for nil.
func (n *Node[K, V]) Height() int {
	return height(n)
}

func height[K, V any](n *Node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func singleton[K, V any](k K, v V) *Node[K, V] {
	return &Node[K, V]{key: k, value: v, height: 1}
}

// create builds a node from two subtrees which are already balanced with
// respect to each other.
func create[K, V any](l *Node[K, V], k K, v V, r *Node[K, V]) *Node[K, V] {
	hl, hr := height(l), height(r)
	assert(hl-hr <= tolerance && hr-hl <= tolerance, "create called with unbalanced subtrees")
	return &Node[K, V]{left: l, key: k, value: v, right: r, height: max(hl, hr) + 1}
}

// bal builds a node from two subtrees whose heights may differ by one more
// than the tolerance, rotating once or twice to restore balance.
//
//	single right rotation:  (l=(ll lv lr) k r)  =>  (ll lv (lr k r))
//	double rotation:        (l=(ll lv (lrl lrv lrr)) k r)  =>  ((ll lv lrl) lrv (lrr k r))
func bal[K, V any](l *Node[K, V], k K, v V, r *Node[K, V]) *Node[K, V] {
	hl, hr := height(l), height(r)
	if hl > hr+tolerance {
		assert(hl <= hr+tolerance+1, "bal called with excessive left height")
		if height(l.left) >= height(l.right) {
			return create(l.left, l.key, l.value, create(l.right, k, v, r))
		}
		lr := l.right
		assert(lr != nil, "bal: left-right rotation without pivot")
		return create(
			create(l.left, l.key, l.value, lr.left),
			lr.key, lr.value,
			create(lr.right, k, v, r),
		)
	}
	if hr > hl+tolerance {
		assert(hr <= hl+tolerance+1, "bal called with excessive right height")
		if height(r.right) >= height(r.left) {
			return create(create(l, k, v, r.left), r.key, r.value, r.right)
		}
		rl := r.left
		assert(rl != nil, "bal: right-left rotation without pivot")
		return create(
			create(l, k, v, rl.left),
			rl.key, rl.value,
			create(rl.right, r.key, r.value, r.right),
		)
	}
	return &Node[K, V]{left: l, key: k, value: v, right: r, height: max(hl, hr) + 1}
}

// withValue path-copies n with a replaced value; children are shared.
func (n *Node[K, V]) withValue(k K, v V) *Node[K, V] {
	return &Node[K, V]{left: n.left, key: k, value: v, right: n.right, height: n.height}
}
