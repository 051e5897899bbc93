// Author: eotpcomic <eotpcomic@gmail.com>
// SPDX-License-Identifier: MIT

package pool

import (
	"sync"

	"github.com/eotpcomic/squads/ptr"
)

// SyncHandlePool wraps sync.Pool for unbounded recycling of handle-managed
// values. Compared to HandlePool there is no capacity bound, no counters
// and no Close; idle values live at the runtime's discretion.
type SyncHandlePool[T any] struct {
	pool  *sync.Pool
	reset func(*T)
}

// NewSyncHandlePool creates a pool with an allocator and optional reset hook.
func NewSyncHandlePool[T any](alloc func() *T, reset func(*T)) *SyncHandlePool[T] {
	return &SyncHandlePool[T]{
		pool:  &sync.Pool{New: func() any { return alloc() }},
		reset: reset,
	}
}

// Acquire returns a handle over a pooled or fresh value.
func (sp *SyncHandlePool[T]) Acquire() *ptr.LinkedPtr[T] {
	v := sp.pool.Get().(*T)
	return ptr.From(v, ptr.WithFinalizer[T](sp.recycle))
}

func (sp *SyncHandlePool[T]) recycle(v *T) {
	if sp.reset != nil {
		sp.reset(v)
	}
	sp.pool.Put(v)
}
