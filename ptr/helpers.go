// File: ptr/helpers.go
// Author: eotpcomic <eotpcomic@gmail.com>
// License: Apache-2.0
//
// Free-function factories and accessors over LinkedPtr.

package ptr

import "unsafe"

// Share returns a new instance joining p's sharing group. Identical to
// p.Clone; provided as a free-function factory counterpart of From.
func Share[T any](p *LinkedPtr[T]) *LinkedPtr[T] {
	return p.Clone()
}

// Alias returns a new instance of a related pointee type sharing ownership
// with src. view must be a differently typed reference to src's resource
// (an embedded field, an interface table, a converted pointer); the caller
// supplies it because Go has no implicit pointer conversions. The new
// instance joins src's ring, so the whole heterogeneous group counts and
// detaches as one. If src holds nil, view should be nil too and the result
// is a nil singleton.
func Alias[T, U any](src *LinkedPtr[U], view *T) *LinkedPtr[T] {
	q := &LinkedPtr[T]{value: view}
	q.n.init(q)
	if view != nil && src.value != nil {
		q.dtor = src.dtor
		q.n.linkBefore(&src.n)
	}
	return q
}

// AssignAlias is the cross-type assignment counterpart of Assign: dst
// leaves its current group and joins src's ring, holding view. Gated on
// value identity like Assign, so re-assigning the same resource is a no-op.
func AssignAlias[T, U any](dst *LinkedPtr[T], src *LinkedPtr[U], view *T) *LinkedPtr[T] {
	if view == dst.value {
		return dst
	}
	// The typed finalizer described the old group's pointee; across a
	// type boundary only the group destructor carries over.
	dst.finalize = nil
	dst.ResetTo(view)
	if view != nil && src.value != nil {
		dst.dtor = src.dtor
		dst.n.linkBefore(&src.n)
	}
	return dst
}

// Value returns the raw value held by p without affecting the ring.
func Value[T any](p *LinkedPtr[T]) *T {
	return p.Get()
}

// Equal reports whether two instances of possibly related pointee types
// hold the same raw resource. Addresses are compared; ring membership is
// irrelevant.
func Equal[T, U any](a *LinkedPtr[T], b *LinkedPtr[U]) bool {
	return unsafe.Pointer(a.value) == unsafe.Pointer(b.value)
}

// NotEqual is the negation of Equal.
func NotEqual[T, U any](a *LinkedPtr[T], b *LinkedPtr[U]) bool {
	return !Equal(a, b)
}
