// File: ptr/node.go
// Author: eotpcomic <eotpcomic@gmail.com>
// License: Apache-2.0
//
// Intrusive ring node shared by every pointer instance in a sharing group.

package ptr

// member is the back-reference from a node to its typed owner. Rings are
// type-erased: LinkedPtr instances of related types may share one ring, so
// group-wide operations reach each owner through this interface.
type member interface {
	clearValue()
}

// node is the raw link record. A well-formed node is never half-linked:
// a singleton points to itself in both directions, and every splice updates
// all four affected fields before returning.
type node struct {
	prev, next *node
	owner      member
}

// init makes n a singleton owned by o.
func (n *node) init(o member) {
	n.prev, n.next = n, n
	n.owner = o
}

// solo reports whether n is its own ring (ring size 1).
func (n *node) solo() bool { return n.next == n }

// linkBefore inserts n immediately before m in traversal order, growing
// m's ring by one. n must be a singleton. O(1).
func (n *node) linkBefore(m *node) {
	n.next = m
	n.prev = m.prev
	m.prev.next = n
	m.prev = n
}

// unlink splices n out of its ring and leaves it a singleton. Safe to call
// on a singleton. O(1).
func (n *node) unlink() {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev, n.next = n, n
}

// ringLen walks next links until it returns to n. O(ring size).
func (n *node) ringLen() int {
	count := 1
	for c := n.next; c != n; c = c.next {
		count++
	}
	return count
}
