// File: ptr/linked.go
// Author: eotpcomic <eotpcomic@gmail.com>
// License: Apache-2.0
//
// LinkedPtr: shared ownership without a control block. The instances sharing
// a value form a circular doubly-linked ring; the ring's size is the use
// count and the last instance to leave the ring destroys the value.

package ptr

import "github.com/eotpcomic/squads/api"

// LinkedPtr implements the api.Shared contract.
var _ api.Shared[int] = (*LinkedPtr[int])(nil)

// LinkedPtr shares ownership of a value between instances by linking the
// instances themselves into a ring. Obtain instances only from New, From,
// Share, Alias or Clone, and use them through the returned pointer: the ring
// stores instance addresses, so a linked instance must never be copied by
// value.
//
// Not thread-safe. Concurrent mutation of one ring is a data race.
type LinkedPtr[T any] struct {
	n        node
	value    *T
	finalize func(*T)
	// dtor destroys the group's resource; armed when this instance starts
	// a group over a non-nil value, copied to every member joining the
	// ring. Type-erased so members of related pointee types (Alias) carry
	// it too: whichever member leaves the ring last runs it, regardless of
	// which view it holds.
	dtor func()
}

// Option configures a LinkedPtr at construction.
type Option[T any] func(*LinkedPtr[T])

// WithFinalizer sets the function run on the value when the last member of
// the sharing group releases it. The destructor travels with the group:
// Clone, Assign and Alias hand it to every joining member, so it runs
// exactly once no matter which member leaves last.
func WithFinalizer[T any](f func(*T)) Option[T] {
	return func(p *LinkedPtr[T]) { p.finalize = f }
}

// New returns a nil-valued singleton instance.
func New[T any](opts ...Option[T]) *LinkedPtr[T] {
	return From[T](nil, opts...)
}

// From wraps a raw value in a fresh singleton ring. A nil value is fine.
func From[T any](v *T, opts ...Option[T]) *LinkedPtr[T] {
	p := &LinkedPtr[T]{value: v}
	p.n.init(p)
	for _, opt := range opts {
		opt(p)
	}
	p.rearm(v)
	return p
}

// rearm binds the group destructor to v using this instance's finalizer.
// Called whenever the instance starts a fresh group.
func (p *LinkedPtr[T]) rearm(v *T) {
	if v != nil && p.finalize != nil {
		f := p.finalize
		p.dtor = func() { f(v) }
	} else {
		p.dtor = nil
	}
}

// Clone returns a new instance sharing ownership with p: if p holds a
// non-nil value the clone joins p's ring (use count +1), otherwise the
// clone is its own nil singleton.
func (p *LinkedPtr[T]) Clone() *LinkedPtr[T] {
	q := &LinkedPtr[T]{value: p.value, finalize: p.finalize, dtor: p.dtor}
	q.n.init(q)
	if q.value != nil {
		q.n.linkBefore(&p.n)
	}
	return q
}

// Get returns the held raw value without affecting the ring.
func (p *LinkedPtr[T]) Get() *T { return p.value }

// IsNil reports whether the held value is nil.
func (p *LinkedPtr[T]) IsNil() bool { return p.value == nil }

// Deref returns the held value. Panics if the value is nil.
func (p *LinkedPtr[T]) Deref() T { return *p.value }

// Unique reports whether this instance is the sole member of its ring,
// i.e. the use count is exactly one. O(1); prefer it over Count() == 1.
func (p *LinkedPtr[T]) Unique() bool { return p.n.solo() }

// Count returns the use count by walking the ring. Returns one for a nil
// value. O(ring size); intended for diagnostics, not hot paths.
func (p *LinkedPtr[T]) Count() int { return p.n.ringLen() }

// Reset releases this instance's share of the current value, leaving it a
// nil singleton. If the instance was unique the value is destroyed.
func (p *LinkedPtr[T]) Reset() { p.ResetTo(nil) }

// ResetTo replaces the held value with v. A no-op when v is already the
// held value. Otherwise: a unique instance destroys the old value, a
// shared one just leaves its ring (the value survives with the remaining
// members). Either way the instance ends up a singleton holding v.
func (p *LinkedPtr[T]) ResetTo(v *T) {
	if v == p.value {
		return
	}
	if p.n.solo() {
		p.destroy()
	} else {
		p.n.unlink()
	}
	p.value = v
	p.rearm(v)
}

// Assign makes p share src's value, leaving p's current group first.
// Self-assignment and assignment of an identical value are no-ops: no
// unlink or relink happens, so the value cannot be destroyed prematurely.
func (p *LinkedPtr[T]) Assign(src *LinkedPtr[T]) *LinkedPtr[T] {
	if src.value == p.value {
		return p
	}
	p.ResetTo(src.value)
	if src.value != nil {
		p.finalize = src.finalize
		p.dtor = src.dtor
		p.n.linkBefore(&src.n)
	}
	return p
}

// Release is the destructor: equivalent to Reset. After Release the
// instance is a nil singleton and may be reused or dropped.
func (p *LinkedPtr[T]) Release() { p.Reset() }

// Detach transfers the held value out of ring management entirely. Every
// member of the ring, not just p, has its value cleared and becomes its
// own singleton; the caller becomes solely responsible for the returned
// value. Returns nil if the value was already nil. O(ring size).
func (p *LinkedPtr[T]) Detach() *T {
	v := p.value
	n := &p.n
	for {
		next := n.next
		n.owner.clearValue()
		n.prev, n.next = n, n
		n = next
		if n == &p.n {
			break
		}
	}
	return v
}

// ForceFree detaches the whole group and runs its destructor, if any. The
// counterpart of manually destroying a Detach result. Works from any
// member, including one holding a related-type view.
func (p *LinkedPtr[T]) ForceFree() {
	dtor := p.dtor
	p.Detach()
	if dtor != nil {
		dtor()
	}
}

// Equal reports whether p and other hold the same raw value. Ring
// membership is not part of equality.
func (p *LinkedPtr[T]) Equal(other *LinkedPtr[T]) bool {
	return p.value == other.value
}

// destroy runs on the last ring member when the group size hits zero. The
// group destructor holds the original value, so it fires correctly even
// when the last member holds a related-type view of it.
func (p *LinkedPtr[T]) destroy() {
	if p.dtor != nil {
		p.dtor()
	}
}

// clearValue implements member for detach. Disarming the destructor keeps
// former members from destroying the now externally owned value.
func (p *LinkedPtr[T]) clearValue() {
	p.value = nil
	p.dtor = nil
}
