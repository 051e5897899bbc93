// Package ptr
// Author: eotpcomic <eotpcomic@gmail.com>
//
// Shared-ownership smart pointers whose reference count is the topology of a
// circular doubly-linked ring of sibling instances, not a number stored in a
// heap-allocated control block. Every instance sharing a value is one node in
// the ring; ring size is the use count; removing a node is the decrement. No
// extra allocation is made for bookkeeping.
//
// Not thread-safe: all mutation of a given ring must happen on one logical
// thread of control. See linked.go, node.go for implementation details.
package ptr
