package avltree

import (
	"fmt"
)

// Tree is a persistent AVL tree mapping keys of type K to values of type V.
//
// A Tree is an immutable handle: the configured key order plus a root node.
// Operations which change the set of bindings return a new Tree and leave
// the receiver untouched. A nil *Tree is a valid empty tree for all read
// operations.
type Tree[K, V any] struct {
	cfg  Config[K]
	root *Node[K, V]
}

// Pair is a single key/value binding, as used for sorted sequences.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// New creates an empty tree with validated configuration.
func New[K, V any](cfg Config[K]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[K, V]{cfg: cfg}, nil
}

// Singleton creates a tree with a single binding.
func Singleton[K, V any](cfg Config[K], k K, v V) (*Tree[K, V], error) {
	t, err := New[K, V](cfg)
	if err != nil {
		return nil, err
	}
	t.root = singleton(k, v)
	return t, nil
}

// FromPairs creates a tree from unordered pairs. If a key occurs more than
// once, the last binding wins.
func FromPairs[K, V any](cfg Config[K], pairs []Pair[K, V]) (*Tree[K, V], error) {
	t, err := New[K, V](cfg)
	if err != nil {
		return nil, err
	}
	root := t.root
	for _, p := range pairs {
		root = add(cfg.Compare, root, p.Key, p.Value)
	}
	t.root = root
	return t, nil
}

// with wraps a root node into a tree sharing t's configuration.
func (t *Tree[K, V]) with(root *Node[K, V]) *Tree[K, V] {
	return &Tree[K, V]{cfg: t.cfg, root: root}
}

func (t *Tree[K, V]) node() *Node[K, V] {
	if t == nil {
		return nil
	}
	return t.root
}

// Config returns the configuration of the tree.
func (t *Tree[K, V]) Config() Config[K] {
	if t == nil {
		return Config[K]{}
	}
	return t.cfg
}

// Root returns the root node of the tree, or nil for an empty tree.
// Nodes are read-only; it is intended for renderers and diagnostics.
func (t *Tree[K, V]) Root() *Node[K, V] {
	return t.node()
}

// IsEmpty reports whether the tree has no bindings.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of bindings. Sizes are not cached, so this is O(n).
func (t *Tree[K, V]) Len() int {
	return length(t.node())
}

func length[K, V any](n *Node[K, V]) int {
	if n == nil {
		return 0
	}
	return 1 + length(n.left) + length(n.right)
}

// Height returns the tree height, where 0 means empty and 1 a single binding.
func (t *Tree[K, V]) Height() int {
	return height(t.node())
}

// --- Lookup ----------------------------------------------------------------

func (t *Tree[K, V]) find(k K) *Node[K, V] {
	if t == nil {
		return nil
	}
	n := t.root
	for n != nil {
		c := t.cfg.Compare(k, n.key)
		if c == 0 {
			return n
		}
		if c < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return nil
}

// Has reports whether k is bound in t.
func (t *Tree[K, V]) Has(k K) bool {
	return t.find(k) != nil
}

// Get returns the value bound to k. If k is not bound, Get returns the zero
// value and false.
func (t *Tree[K, V]) Get(k K) (V, bool) {
	if n := t.find(k); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// GetOr returns the value bound to k, or def if k is not bound.
func (t *Tree[K, V]) GetOr(k K, def V) V {
	if n := t.find(k); n != nil {
		return n.value
	}
	return def
}

// MustGet returns the value bound to k. Clients must know in advance that k
// is bound: a missing key is a programming error and MustGet panics with an
// error wrapping ErrKeyNotFound.
func (t *Tree[K, V]) MustGet(k K) V {
	n := t.find(k)
	if n == nil {
		panic(fmt.Errorf("%w: %v", ErrKeyNotFound, k))
	}
	return n.value
}

// Min returns the binding with the smallest key. ok is false for an empty tree.
func (t *Tree[K, V]) Min() (k K, v V, ok bool) {
	if n := minNode(t.node()); n != nil {
		return n.key, n.value, true
	}
	return k, v, false
}

// Max returns the binding with the greatest key. ok is false for an empty tree.
func (t *Tree[K, V]) Max() (k K, v V, ok bool) {
	if n := maxNode(t.node()); n != nil {
		return n.key, n.value, true
	}
	return k, v, false
}

// --- Updates ---------------------------------------------------------------

// Add returns a tree which binds k to v. An existing binding of k is
// replaced; the shape of the tree stays the same in this case.
func (t *Tree[K, V]) Add(k K, v V) *Tree[K, V] {
	assert(t != nil, "Add called on nil tree")
	return t.with(add(t.cfg.Compare, t.root, k, v))
}

func add[K, V any](cmp func(K, K) int, n *Node[K, V], k K, v V) *Node[K, V] {
	if n == nil {
		return singleton(k, v)
	}
	c := cmp(k, n.key)
	switch {
	case c == 0:
		return n.withValue(k, v)
	case c < 0:
		return bal(add(cmp, n.left, k, v), n.key, n.value, n.right)
	default:
		return bal(n.left, n.key, n.value, add(cmp, n.right, k, v))
	}
}

// Remove returns a tree without a binding for k. If k is not bound, Remove
// returns the receiver itself, so clients may detect no-ops by comparing
// pointers.
func (t *Tree[K, V]) Remove(k K) *Tree[K, V] {
	if t.IsEmpty() {
		return t
	}
	root := remove(t.cfg.Compare, t.root, k)
	if root == t.root {
		return t
	}
	return t.with(root)
}

func remove[K, V any](cmp func(K, K) int, n *Node[K, V], k K) *Node[K, V] {
	if n == nil {
		return nil
	}
	c := cmp(k, n.key)
	switch {
	case c == 0:
		switch {
		case n.left == nil:
			return n.right
		case n.right == nil:
			return n.left
		}
		r, sk, sv := removeMin(n.right)
		return bal(n.left, sk, sv, r)
	case c < 0:
		l := remove(cmp, n.left, k)
		if l == n.left {
			return n
		}
		return bal(l, n.key, n.value, n.right)
	default:
		r := remove(cmp, n.right, k)
		if r == n.right {
			return n
		}
		return bal(n.left, n.key, n.value, r)
	}
}
