package node

import (
	"github.com/keyspace/art/arena"
	"github.com/keyspace/art/internal/invariant"
)

// Node4 is the smallest inner layout, holding up to 4 byte-keyed children
// plus one terminal child. Keys are stored in insertion order, not sorted:
// find is a linear scan over at most 4 slots and add appends after the
// last occupied slot, which is cheaper than maintaining order for a
// fan-out this small.
type Node4 struct {
	Base

	Keys     [4]byte
	Children [4]Node
}

var _ Node = (*Node4)(nil)

// Kind always returns KindNode4.
func (n *Node4) Kind() Kind { return KindNode4 }

// Full reports whether all 4 byte-keyed slots are occupied.
func (n *Node4) Full() bool { return n.NumChildren == 4 }

// FindChild scans the occupied slots in insertion order.
func (n *Node4) FindChild(b byte, terminal bool) *Node {
	if terminal {
		if n.Term == nil {
			return nil
		}

		return &n.Term
	}

	for i := 0; i < n.NumChildren; i++ {
		if n.Keys[i] == b {
			return &n.Children[i]
		}
	}

	return nil
}

// AddChild places child in the first empty slot. The caller must ensure
// the node is not Full() when terminal is false.
func (n *Node4) AddChild(_ arena.Allocator, b byte, terminal bool, child Node) {
	if terminal {
		n.Term = child
		return
	}

	invariant.Assert(!n.Full(), "node4 must not be full")

	n.Keys[n.NumChildren] = b
	n.Children[n.NumChildren] = child
	n.NumChildren++
}

// Grow promotes this Node4 to a Node16, copying children in slot order.
func (n *Node4) Grow(a arena.Allocator) Node {
	next := arena.New(a, Node16{Base: n.Base})

	copy(next.Keys[:], n.Keys[:n.NumChildren])
	copy(next.Children[:], n.Children[:n.NumChildren])

	return next
}
