// File: autoptr/auto.go
// Author: eotpcomic <eotpcomic@gmail.com>
// License: Apache-2.0

package autoptr

import "github.com/eotpcomic/squads/api"

// AutoPtr wraps a value that implements garbage collection through its own
// reference count. The second type parameter pins P to *T so nil checks and
// identity comparisons stay well-defined.
//
// The zero value is a usable nil pointer.
type AutoPtr[T any, P interface {
	*T
	api.RefCounted
}] struct {
	ptr P
}

// Adopt wraps p without incrementing its count: the wrapper takes over the
// reference the caller already holds. A nil p is fine.
func Adopt[T any, P interface {
	*T
	api.RefCounted
}](p P) *AutoPtr[T, P] {
	return &AutoPtr[T, P]{ptr: p}
}

// Duplicate wraps p after incrementing its count, leaving the caller's own
// reference intact.
func Duplicate[T any, P interface {
	*T
	api.RefCounted
}](p P) *AutoPtr[T, P] {
	if p != nil {
		p.Duplicate()
	}
	return &AutoPtr[T, P]{ptr: p}
}

// Get returns the held value without touching its count.
func (a *AutoPtr[T, P]) Get() P { return a.ptr }

// IsNil reports whether the held value is nil.
func (a *AutoPtr[T, P]) IsNil() bool { return a.ptr == nil }

// Clone returns a new wrapper sharing the value, incrementing its count.
func (a *AutoPtr[T, P]) Clone() *AutoPtr[T, P] {
	if a.ptr != nil {
		a.ptr.Duplicate()
	}
	return &AutoPtr[T, P]{ptr: a.ptr}
}

// Reset drops the held reference, releasing the value.
func (a *AutoPtr[T, P]) Reset() {
	if a.ptr != nil {
		a.ptr.Release()
		a.ptr = nil
	}
}

// ResetTo adopts p in place of the current value. The old value is
// released; p's count is not incremented. No-op when p is already held.
func (a *AutoPtr[T, P]) ResetTo(p P) {
	if a.ptr == p {
		return
	}
	if a.ptr != nil {
		a.ptr.Release()
	}
	a.ptr = p
}

// Assign makes a share other's value, incrementing its count and releasing
// the old one. Identity-gated: assigning the already-held value is a no-op.
func (a *AutoPtr[T, P]) Assign(other *AutoPtr[T, P]) *AutoPtr[T, P] {
	if a.ptr == other.ptr {
		return a
	}
	if other.ptr != nil {
		other.ptr.Duplicate()
	}
	if a.ptr != nil {
		a.ptr.Release()
	}
	a.ptr = other.ptr
	return a
}

// Swap exchanges the held values of a and other without touching counts.
func (a *AutoPtr[T, P]) Swap(other *AutoPtr[T, P]) {
	a.ptr, other.ptr = other.ptr, a.ptr
}

// Detach returns the held value and clears the wrapper without releasing:
// the caller takes over the wrapper's reference.
func (a *AutoPtr[T, P]) Detach() P {
	p := a.ptr
	a.ptr = nil
	return p
}

// Release is the destructor: equivalent to Reset.
func (a *AutoPtr[T, P]) Release() { a.Reset() }

// Equal reports whether both wrappers hold the same value.
func (a *AutoPtr[T, P]) Equal(other *AutoPtr[T, P]) bool {
	return a.ptr == other.ptr
}
