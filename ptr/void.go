// File: ptr/void.go
// Author: eotpcomic <eotpcomic@gmail.com>
//
// Zero-sized placeholder value type.

package ptr

// Void is a dummy value type with value semantics, mostly useful as a type
// argument when only ownership topology matters and no payload is needed.
type Void struct{}

// Equal always reports true: Voids have no members.
func (Void) Equal(Void) bool { return true }
