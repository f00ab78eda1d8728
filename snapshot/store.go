/*
Package snapshot holds versions of a map for concurrent readers.

A Store keeps the current version of a persistent map. Readers load the
current version without any locking and may keep working on it for as long
as they like; writers derive a new map from the current one and install it
with a compare-and-swap. Each installed version is broadcast to
subscribers.

Maps are never mutated by a store. Since unchanged subtrees are shared
between versions, keeping many versions alive is cheap.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package snapshot

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/guiguan/caster"
	"github.com/npillmayer/avlmap"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'avlmap'
func tracer() tracing.Trace {
	return tracing.Select("avlmap")
}

// ErrClosed is returned when subscribing to a closed store.
var ErrClosed = errors.New("snapshot: store is closed")

// Version is a map together with its sequence number. The initial map of
// a store has sequence number 0.
type Version[V any] struct {
	Seq uint64
	Map avlmap.Map[V]
}

// Store holds the current version of a map.
type Store[V any] struct {
	current atomic.Pointer[Version[V]]
	cast    *caster.Caster // broadcaster for new versions
	closed  atomic.Bool
}

// New creates a store with an initial map. Broadcasting stops when ctx is
// done or the store is closed.
func New[V any](ctx context.Context, initial avlmap.Map[V]) *Store[V] {
	s := &Store[V]{
		cast: caster.New(ctx),
	}
	s.current.Store(&Version[V]{Map: initial})
	return s
}

// Current returns the current version.
func (s *Store[V]) Current() Version[V] {
	return *s.current.Load()
}

// Update derives a new map from the current one and installs it.
//
// fn may be called more than once if other writers install versions
// concurrently, and must therefore be free of side effects. If fn returns
// its argument unchanged, no new version is installed and the current one
// is returned.
func (s *Store[V]) Update(fn func(avlmap.Map[V]) avlmap.Map[V]) Version[V] {
	for retries := 0; ; retries++ {
		old := s.current.Load()
		m := fn(old.Map)
		if m.Same(old.Map) {
			return *old
		}
		next := &Version[V]{Seq: old.Seq + 1, Map: m}
		if s.current.CompareAndSwap(old, next) {
			if retries > 0 {
				tracer().Debugf("snapshot: installed version %d after %d retries", next.Seq, retries)
			}
			s.publish(*next)
			return *next
		}
	}
}

func (s *Store[V]) publish(v Version[V]) {
	if s.closed.Load() {
		return
	}
	s.cast.Pub(v)
}

// Subscribe returns a channel receiving newly installed versions, together
// with a function to cancel the subscription. The channel is closed on
// cancel, when ctx is done, or when the store is closed.
//
// Under concurrent updates versions may arrive out of order; clients
// should compare sequence numbers.
func (s *Store[V]) Subscribe(ctx context.Context, capacity uint) (<-chan Version[V], func(), error) {
	if s.closed.Load() {
		return nil, nil, ErrClosed
	}
	raw, ok := s.cast.Sub(ctx, capacity)
	if !ok {
		return nil, nil, ErrClosed
	}
	out := make(chan Version[V], capacity)
	stop := make(chan struct{})
	go func() {
		defer close(out)
		for msg := range raw {
			v, ok := msg.(Version[V])
			if !ok {
				tracer().Errorf("snapshot: unexpected broadcast %T", msg)
				continue
			}
			select {
			case out <- v:
			case <-stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			close(stop)
			s.cast.Unsub(raw)
		})
	}
	return out, cancel, nil
}

// Close stops broadcasting and closes all subscriptions. Updates are still
// possible after a store has been closed.
func (s *Store[V]) Close() {
	if s.closed.Swap(true) {
		return
	}
	tracer().Debugf("snapshot: closing store at version %d", s.current.Load().Seq)
	s.cast.Close()
}
