package avltree

import "iter"

// Each calls f for every binding, in ascending key order.
func (t *Tree[K, V]) Each(f func(k K, v V)) {
	if f == nil {
		return
	}
	each(t.node(), f)
}

func each[K, V any](n *Node[K, V], f func(K, V)) {
	for n != nil {
		each(n.left, f)
		f(n.key, n.value)
		n = n.right
	}
}

// All returns an iterator over all bindings in ascending key order.
//
//	for k, v := range tree.All() { … }
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		walk(t.node(), yield)
	}
}

// walk visits bindings in order and stops as soon as fn returns false.
func walk[K, V any](n *Node[K, V], fn func(K, V) bool) bool {
	for n != nil {
		if !walk(n.left, fn) || !fn(n.key, n.value) {
			return false
		}
		n = n.right
	}
	return true
}

// Fold folds all bindings of t into an accumulator, in ascending key order.
func Fold[K, V, A any](t *Tree[K, V], acc A, f func(acc A, k K, v V) A) A {
	return fold(t.node(), acc, f)
}

func fold[K, V, A any](n *Node[K, V], acc A, f func(A, K, V) A) A {
	for n != nil {
		acc = f(fold(n.left, acc, f), n.key, n.value)
		n = n.right
	}
	return acc
}

// ForAll reports whether p holds for every binding. Bindings are tested in
// ascending key order, stopping at the first one for which p does not hold.
func (t *Tree[K, V]) ForAll(p func(k K, v V) bool) bool {
	return forAll(t.node(), p)
}

func forAll[K, V any](n *Node[K, V], p func(K, V) bool) bool {
	for n != nil {
		if !forAll(n.left, p) || !p(n.key, n.value) {
			return false
		}
		n = n.right
	}
	return true
}

// Exists reports whether p holds for at least one binding. Bindings are
// tested in ascending key order, stopping at the first one for which p holds.
func (t *Tree[K, V]) Exists(p func(k K, v V) bool) bool {
	return exists(t.node(), p)
}

func exists[K, V any](n *Node[K, V], p func(K, V) bool) bool {
	for n != nil {
		if exists(n.left, p) || p(n.key, n.value) {
			return true
		}
		n = n.right
	}
	return false
}
