// File: api/refcount.go
// Author: eotpcomic <eotpcomic@gmail.com>
//
// Contract for values that carry their own reference count.

package api

// RefCounted is implemented by values that manage their own reference
// count. Duplicate increments it; Release decrements it and is expected to
// reclaim the value when the count reaches zero. The autoptr package wraps
// such values without any bookkeeping of its own.
type RefCounted interface {
	Duplicate()
	Release()
}
