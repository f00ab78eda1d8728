package avlmap

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/avlmap/avltree"
)

// Map is a persistent map from strings to values of type V.
//
// Maps are immutable values and may be copied freely. The zero value is a
// valid empty map, but clients may use Empty.
type Map[V any] struct {
	tree *avltree.Tree[string, V]
}

// Pair is a single binding of a map.
type Pair[V any] = avltree.Pair[string, V]

// keyOrder orders keys byte-wise.
var keyOrder = avltree.Config[string]{Compare: strings.Compare}

func newTree[V any]() *avltree.Tree[string, V] {
	t, err := avltree.New[string, V](keyOrder)
	assert(err == nil, "avlmap: key order rejected by tree")
	return t
}

func wrap[V any](t *avltree.Tree[string, V]) Map[V] {
	return Map[V]{tree: t}
}

// t returns the tree of m, creating an empty one for the zero map.
func (m Map[V]) t() *avltree.Tree[string, V] {
	if m.tree == nil {
		return newTree[V]()
	}
	return m.tree
}

// Empty returns an empty map.
func Empty[V any]() Map[V] {
	return wrap(newTree[V]())
}

// Singleton returns a map with a single binding.
func Singleton[V any](k string, v V) Map[V] {
	return Empty[V]().Add(k, v)
}

// FromPairs creates a map from unordered pairs. If a key occurs more than
// once, the last binding wins.
func FromPairs[V any](pairs []Pair[V]) Map[V] {
	t, err := avltree.FromPairs(keyOrder, pairs)
	assert(err == nil, "avlmap: key order rejected by tree")
	return wrap(t)
}

// FromSortedPairsUnsafe creates a map from pairs in O(n). Keys must be
// strictly ascending, which is not checked. Use a Builder if this cannot be
// guaranteed.
func FromSortedPairsUnsafe[V any](pairs []Pair[V]) Map[V] {
	t, err := avltree.FromSortedUnsafe(keyOrder, pairs)
	assert(err == nil, "avlmap: key order rejected by tree")
	return wrap(t)
}

// Tree returns the underlying tree of m.
func (m Map[V]) Tree() *avltree.Tree[string, V] {
	return m.t()
}

// IsEmpty reports whether m has no bindings.
func (m Map[V]) IsEmpty() bool {
	return m.tree.IsEmpty()
}

// Len returns the number of bindings of m. It is O(n).
func (m Map[V]) Len() int {
	return m.tree.Len()
}

// Height returns the height of the tree holding m's bindings.
func (m Map[V]) Height() int {
	return m.tree.Height()
}

// Has reports whether k is bound in m.
func (m Map[V]) Has(k string) bool {
	return m.tree.Has(k)
}

// Get returns the value bound to k and true, or the zero value and false.
func (m Map[V]) Get(k string) (V, bool) {
	return m.tree.Get(k)
}

// GetOr returns the value bound to k, or def.
func (m Map[V]) GetOr(k string, def V) V {
	return m.tree.GetOr(k, def)
}

// MustGet returns the value bound to k. It panics with an error wrapping
// avltree.ErrKeyNotFound if k is not bound.
func (m Map[V]) MustGet(k string) V {
	if !m.tree.Has(k) {
		tracer().Errorf("map has no binding for key %q", k)
	}
	return m.t().MustGet(k)
}

// Min returns the binding with the smallest key, if any.
func (m Map[V]) Min() (string, V, bool) {
	return m.tree.Min()
}

// Max returns the binding with the greatest key, if any.
func (m Map[V]) Max() (string, V, bool) {
	return m.tree.Max()
}

// Add returns a map which binds k to v, replacing an existing binding of k.
func (m Map[V]) Add(k string, v V) Map[V] {
	return wrap(m.t().Add(k, v))
}

// Remove returns a map without a binding for k. If k is not bound, m is
// returned unchanged.
func (m Map[V]) Remove(k string) Map[V] {
	if m.tree == nil {
		return m
	}
	return wrap(m.tree.Remove(k))
}

// Same reports whether m and other share the identical tree, i.e. one has
// been derived from the other without any change.
func (m Map[V]) Same(other Map[V]) bool {
	return m.tree.Root() == other.tree.Root()
}

// Split partitions m around k into the bindings with smaller keys, the
// value bound to k (if any), and the bindings with greater keys.
func (m Map[V]) Split(k string) (lt Map[V], v V, found bool, gt Map[V]) {
	l, v, found, r := m.t().Split(k)
	return wrap(l), v, found, wrap(r)
}

// Join combines left, a pivot binding and right. All keys of left must be
// smaller than k and all keys of right must be greater than k.
func Join[V any](left Map[V], k string, v V, right Map[V]) Map[V] {
	return wrap(avltree.Join(left.t(), k, v, right.t()))
}

// Concat appends other to m. All keys of m must be smaller than all keys of
// other.
func (m Map[V]) Concat(other Map[V]) Map[V] {
	return wrap(m.t().Concat(other.t()))
}

// Filter returns the bindings of m for which p holds.
func (m Map[V]) Filter(p func(k string, v V) bool) Map[V] {
	return wrap(m.t().Filter(p))
}

// Partition splits m into the bindings for which p holds and the rest.
func (m Map[V]) Partition(p func(k string, v V) bool) (yes, no Map[V]) {
	y, n := m.t().Partition(p)
	return wrap(y), wrap(n)
}

// Each calls f for every binding in ascending key order.
func (m Map[V]) Each(f func(k string, v V)) {
	m.tree.Each(f)
}

// All returns an iterator over the bindings of m in ascending key order.
func (m Map[V]) All() iter.Seq2[string, V] {
	return m.tree.All()
}

// ForAll reports whether p holds for every binding of m, testing bindings in
// ascending key order.
func (m Map[V]) ForAll(p func(k string, v V) bool) bool {
	return m.tree.ForAll(p)
}

// Exists reports whether p holds for some binding of m, testing bindings in
// ascending key order.
func (m Map[V]) Exists(p func(k string, v V) bool) bool {
	return m.tree.Exists(p)
}

// ToSlice returns the bindings of m in ascending key order.
func (m Map[V]) ToSlice() []Pair[V] {
	return m.tree.ToSlice()
}

// CheckInvariant reports whether the tree of m is balanced.
func (m Map[V]) CheckInvariant() bool {
	return m.tree.CheckInvariant()
}

// Check validates order, balance and cached heights of m's tree.
func (m Map[V]) Check() error {
	err := m.tree.Check()
	if err != nil {
		tracer().Errorf("map check: %v", err)
	}
	return err
}

// String returns the bindings of m in the form [(k1,v1) (k2,v2) …].
func (m Map[V]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	m.Each(func(k string, v V) {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "(%s,%v)", k, v)
	})
	b.WriteByte(']')
	return b.String()
}

// --- Package level operations ----------------------------------------------

// Merge combines m1 and m2 key-wise. f is called once per key bound in m1
// or m2, in ascending key order, and decides whether and to which value the
// key is bound in the result. inA and inB tell where k is bound.
func Merge[A, B, C any](m1 Map[A], m2 Map[B], f func(k string, a A, inA bool, b B, inB bool) (C, bool)) Map[C] {
	return wrap(avltree.Merge(m1.t(), m2.t(), f))
}

// MapValues transforms every value of m with f, keeping all keys.
func MapValues[V, W any](m Map[V], f func(V) W) Map[W] {
	return wrap(avltree.MapValues(m.t(), f))
}

// MapWithKey is like MapValues, but f receives the key as well.
func MapWithKey[V, W any](m Map[V], f func(string, V) W) Map[W] {
	return wrap(avltree.MapWithKey(m.t(), f))
}

// Fold folds the bindings of m into acc in ascending key order.
func Fold[V, A any](m Map[V], acc A, f func(acc A, k string, v V) A) A {
	return avltree.Fold(m.tree, acc, f)
}

// Compare orders two maps: first by size, then binding by binding by key
// and, for equal keys, by value using vcmp.
func Compare[V any](m1, m2 Map[V], vcmp func(a, b V) int) int {
	return m1.t().Compare(m2.t(), vcmp)
}

// Equal reports whether m1 and m2 hold the same keys with values equal
// according to veq.
func Equal[V any](m1, m2 Map[V], veq func(a, b V) bool) bool {
	return m1.t().Equal(m2.t(), veq)
}
