// File: api/shared.go
// Author: eotpcomic <eotpcomic@gmail.com>
//
// Contract implemented by shared-ownership pointer handles.

package api

// Shared is the behavioral contract of a shared-ownership handle over *T.
// Implementations track the use count without a separate control block;
// see the ptr package for the ring-linked implementation.
type Shared[T any] interface {
	// Get returns the held raw value without affecting ownership.
	Get() *T

	// IsNil reports whether the held value is nil.
	IsNil() bool

	// Unique reports whether this handle is the sole owner. O(1).
	Unique() bool

	// Count returns the current use count. May cost O(count).
	Count() int

	// Reset releases this handle's share, destroying the value if sole owner.
	Reset()

	// ResetTo replaces the held value; no-op when v is already held.
	ResetTo(v *T)

	// Detach withdraws the value from shared management across the whole
	// owning group and returns it; the caller takes over its lifetime.
	Detach() *T

	// Release ends this handle's ownership. Equivalent to Reset.
	Release()
}
