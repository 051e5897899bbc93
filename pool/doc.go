// Package pool
// Author: eotpcomic <eotpcomic@gmail.com>
//
// Recycling pools that hand values out as shared-ownership handles. A pooled
// value returns to the free list when the last handle in its sharing group
// releases it, so reuse needs no manual accounting at call sites.
// See handlepool.go, syncpool.go for implementation details.
package pool
