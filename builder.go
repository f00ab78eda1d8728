package avlmap

import (
	"github.com/npillmayer/avlmap/avltree"
)

// Builder incrementally stages bindings and finalizes them into a Map.
//
// Builder collects pairs and materializes the map only when Map() is called.
// If the staged keys are strictly ascending, the map is built bottom-up in
// linear time; otherwise the builder falls back to inserting one binding
// after the other, where later bindings of a key win.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder[V any] struct {
	pairs []Pair[V]
	// sorted is true as long as staged keys are strictly ascending.
	sorted bool

	done  bool
	dirty bool
	m     Map[V]
}

// NewBuilder creates a new and empty map builder.
func NewBuilder[V any]() *Builder[V] {
	return &Builder[V]{}
}

// Map returns the map built from all staged bindings.
//
// It is illegal to continue adding bindings after Map has been called, but
// Map may be called multiple times.
func (b *Builder[V]) Map() Map[V] {
	if b == nil {
		return Map[V]{}
	}
	if b.dirty {
		b.m = b.buildMap()
		b.dirty = false
	}
	b.done = true
	if b.m.IsEmpty() {
		tracer().Debugf("map builder: map is empty")
	}
	return b.m
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder[V]) Reset() {
	if b == nil {
		return
	}
	b.pairs = nil
	b.sorted = false
	b.done = false
	b.dirty = false
	b.m = Map[V]{}
}

// Append stages a binding of k to v.
func (b *Builder[V]) Append(k string, v V) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrBuilderCompleted
	}
	if len(b.pairs) == 0 {
		b.sorted = true
	} else if b.sorted && keyOrder.Compare(b.pairs[len(b.pairs)-1].Key, k) >= 0 {
		b.sorted = false
	}
	b.pairs = append(b.pairs, Pair[V]{Key: k, Value: v})
	b.dirty = true
	return nil
}

// AppendPairs stages a sequence of bindings.
func (b *Builder[V]) AppendPairs(pairs ...Pair[V]) error {
	for _, p := range pairs {
		if err := b.Append(p.Key, p.Value); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder[V]) buildMap() Map[V] {
	if len(b.pairs) == 0 {
		return Map[V]{}
	}
	if b.sorted {
		t, err := avltree.FromSortedUnsafe(keyOrder, b.pairs)
		assert(err == nil, "builder: avltree.FromSortedUnsafe failed")
		return wrap(t)
	}
	tracer().Debugf("map builder: %d keys out of order, inserting one by one", len(b.pairs))
	return FromPairs(b.pairs)
}
