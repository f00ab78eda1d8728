package avltree

import "fmt"

// CheckInvariant reports whether every node of t satisfies the AVL balance
// property. Key order is not inspected; use Check for a full validation.
func (t *Tree[K, V]) CheckInvariant() bool {
	return checkBalance(t.node())
}

func checkBalance[K, V any](n *Node[K, V]) bool {
	for n != nil {
		d := height(n.left) - height(n.right)
		if d > tolerance || d < -tolerance || !checkBalance(n.left) {
			return false
		}
		n = n.right
	}
	return true
}

// Check validates structural tree invariants: balance, cached heights and
// strictly ascending keys.
//
// This checker is intended for tests and diagnostics; all operations of this
// package preserve the invariants.
func (t *Tree[K, V]) Check() error {
	if t == nil || t.root == nil {
		return nil
	}
	if t.cfg.Compare == nil {
		return fmt.Errorf("%w: tree without key comparison", ErrInvalidConfig)
	}
	_, err := t.checkNode(t.root, nil, nil)
	return err
}

// checkNode validates the subtree n, whose keys must lie strictly between
// lo and hi (nil meaning unbounded), and returns its height.
func (t *Tree[K, V]) checkNode(n *Node[K, V], lo, hi *K) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil && t.cfg.Compare(*lo, n.key) >= 0 {
		return 0, fmt.Errorf("%w: key %v not greater than %v", ErrInvariant, n.key, *lo)
	}
	if hi != nil && t.cfg.Compare(n.key, *hi) >= 0 {
		return 0, fmt.Errorf("%w: key %v not less than %v", ErrInvariant, n.key, *hi)
	}
	hl, err := t.checkNode(n.left, lo, &n.key)
	if err != nil {
		return 0, err
	}
	hr, err := t.checkNode(n.right, &n.key, hi)
	if err != nil {
		return 0, err
	}
	if d := hl - hr; d > tolerance || d < -tolerance {
		return 0, fmt.Errorf("%w: unbalanced node %v (heights %d/%d)", ErrInvariant, n.key, hl, hr)
	}
	if h := max(hl, hr) + 1; h != n.height {
		return 0, fmt.Errorf("%w: height mismatch at %v (%d != %d)", ErrInvariant, n.key, n.height, h)
	}
	return n.height, nil
}
