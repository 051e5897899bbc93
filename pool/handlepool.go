// File: pool/handlepool.go
// Author: eotpcomic <eotpcomic@gmail.com>
// License: Apache-2.0
//
// Bounded recycling pool over shared-ownership handles.

package pool

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"
	"golang.org/x/sys/cpu"

	"github.com/eotpcomic/squads/api"
	"github.com/eotpcomic/squads/ptr"
)

// HandlePool recycles values of type T through a bounded FIFO free list.
// Acquire returns a LinkedPtr handle; when the last member of the handle's
// sharing group releases, the value flows back into the free list.
//
// The pool itself is safe for concurrent Acquire and recycling. The rings
// handed out are not: each sharing group must stay on one logical thread.
type HandlePool[T any] struct {
	mu     sync.Mutex
	free   *queue.Queue // holds *T; guarded by mu, the queue is not thread-safe
	closed bool
	_      cpu.CacheLinePad

	acquired atomic.Uint64
	recycled atomic.Uint64
	dropped  atomic.Uint64

	capacity int
	alloc    func() *T
	reset    func(*T)
}

// Stats aggregates pool accounting counters.
type Stats struct {
	Acquired uint64
	Recycled uint64
	Dropped  uint64
	FreeLen  int
}

// NewHandlePool creates a pool keeping at most capacity idle values.
// alloc produces a fresh value when the free list is empty; reset, if
// non-nil, scrubs a value before it is reused.
func NewHandlePool[T any](capacity int, alloc func() *T, reset func(*T)) (*HandlePool[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("handle pool capacity %d: %w", capacity, api.ErrInvalidArgument)
	}
	if alloc == nil {
		return nil, fmt.Errorf("handle pool alloc func: %w", api.ErrInvalidArgument)
	}
	return &HandlePool[T]{
		free:     queue.New(),
		capacity: capacity,
		alloc:    alloc,
		reset:    reset,
	}, nil
}

// Acquire returns a handle over a pooled or freshly allocated value. The
// handle's finalizer routes the value back here on last release, so callers
// share and release it like any other LinkedPtr.
func (hp *HandlePool[T]) Acquire() (*ptr.LinkedPtr[T], error) {
	v, err := hp.take()
	if err != nil {
		return nil, err
	}
	return ptr.From(v, ptr.WithFinalizer[T](hp.recycle)), nil
}

func (hp *HandlePool[T]) take() (*T, error) {
	hp.mu.Lock()
	if hp.closed {
		hp.mu.Unlock()
		return nil, api.ErrPoolClosed
	}
	var v *T
	if hp.free.Length() > 0 {
		v = hp.free.Remove().(*T)
	}
	hp.mu.Unlock()

	if v == nil {
		v = hp.alloc()
	}
	hp.acquired.Add(1)
	return v, nil
}

// recycle runs as the handle finalizer on last release.
func (hp *HandlePool[T]) recycle(v *T) {
	if hp.reset != nil {
		hp.reset(v)
	}
	hp.mu.Lock()
	if hp.closed || hp.free.Length() >= hp.capacity {
		hp.mu.Unlock()
		hp.dropped.Add(1)
		return
	}
	hp.free.Add(v)
	hp.mu.Unlock()
	hp.recycled.Add(1)
}

// Stats returns a snapshot of the pool counters.
func (hp *HandlePool[T]) Stats() Stats {
	hp.mu.Lock()
	freeLen := hp.free.Length()
	hp.mu.Unlock()
	return Stats{
		Acquired: hp.acquired.Load(),
		Recycled: hp.recycled.Load(),
		Dropped:  hp.dropped.Load(),
		FreeLen:  freeLen,
	}
}

// Close shuts the pool down and discards idle values. Outstanding handles
// stay valid; their values are dropped instead of recycled on release.
func (hp *HandlePool[T]) Close() error {
	hp.mu.Lock()
	defer hp.mu.Unlock()
	if hp.closed {
		return api.ErrPoolClosed
	}
	hp.closed = true
	hp.free = queue.New()
	return nil
}
