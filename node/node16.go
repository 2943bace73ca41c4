package node

import (
	"github.com/keyspace/art/arena"
	"github.com/keyspace/art/internal/invariant"
)

// Node16 is the second inner layout, holding up to 16 byte-keyed children
// plus one terminal child. As with Node4, keys are kept in insertion
// order rather than sorted; a linear scan over 16 entries is still cheap
// and avoids the bookkeeping of shifting on every insert.
type Node16 struct {
	Base

	Keys     [16]byte
	Children [16]Node
}

var _ Node = (*Node16)(nil)

// Kind always returns KindNode16.
func (n *Node16) Kind() Kind { return KindNode16 }

// Full reports whether all 16 byte-keyed slots are occupied.
func (n *Node16) Full() bool { return n.NumChildren == 16 }

// FindChild scans the occupied slots in insertion order.
func (n *Node16) FindChild(b byte, terminal bool) *Node {
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
func (n *Node16) AddChild(_ arena.Allocator, b byte, terminal bool, child Node) {
	if terminal {
		n.Term = child
		return
	}

	invariant.Assert(!n.Full(), "node16 must not be full")

	n.Keys[n.NumChildren] = b
	n.Children[n.NumChildren] = child
	n.NumChildren++
}

// Grow promotes this Node16 to a Node48, mapping each occupied slot's key
// byte to its new position in the sparse index.
func (n *Node16) Grow(a arena.Allocator) Node {
	next := arena.New(a, Node48{Base: n.Base})

	copy(next.Children[:], n.Children[:n.NumChildren])

	for i := 0; i < n.NumChildren; i++ {
		next.Keys[n.Keys[i]] = byte(i + 1)
	}

	return next
}
