package node

import (
	"github.com/keyspace/art/arena"
	"github.com/keyspace/art/internal/invariant"
)

// Node48 is the third inner layout, holding up to 48 byte-keyed children
// plus one terminal child. Keys maps a byte directly to a 1-based index
// into Children; 0 means "no child for that byte". The indirection keeps
// the dense Children array at 48 slots instead of the 256 a direct
// mapping would need, at the cost of a 256-byte index table.
type Node48 struct {
	Base

	Keys     [256]byte
	Children [48]Node
}

var _ Node = (*Node48)(nil)

// Kind always returns KindNode48.
func (n *Node48) Kind() Kind { return KindNode48 }

// Full reports whether all 48 byte-keyed slots are occupied.
func (n *Node48) Full() bool { return n.NumChildren == 48 }

// FindChild is an O(1) lookup through the sparse index.
func (n *Node48) FindChild(b byte, terminal bool) *Node {
	if terminal {
		if n.Term == nil {
			return nil
		}

		return &n.Term
	}

	if idx := n.Keys[b]; idx != 0 {
		return &n.Children[idx-1]
	}

	return nil
}

// AddChild finds the first empty Children slot and maps b to it. The
// caller must ensure the node is not Full() when terminal is false.
func (n *Node48) AddChild(_ arena.Allocator, b byte, terminal bool, child Node) {
	if terminal {
		n.Term = child
		return
	}

	invariant.Assert(!n.Full(), "node48 must not be full")

	var i byte
	for ; i < 48; i++ {
		if n.Children[i] == nil {
			break
		}
	}

	n.Keys[b] = i + 1
	n.Children[i] = child
	n.NumChildren++
}

// Grow promotes this Node48 to a Node256.
//
// This walks the 256-entry Keys index and installs each child at its true
// byte position, never the compact Children array's own slot order: a
// child's position within Children is just where it happened to land when
// added, not its byte identity, so Keys must stay the sole authority for
// which byte maps to which child.
func (n *Node48) Grow(a arena.Allocator) Node {
	next := arena.New(a, Node256{Base: n.Base})

	for b := 0; b < 256; b++ {
		if idx := n.Keys[b]; idx != 0 {
			next.Children[b] = n.Children[idx-1]
		}
	}

	return next
}
