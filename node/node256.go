package node

import (
	"github.com/keyspace/art/arena"
	"github.com/keyspace/art/internal/invariant"
)

// Node256 is the largest inner layout: every possible byte has its own
// direct slot, so lookup and insert are both a single array index. It is
// the terminal layout in the growth chain; there is nothing larger to
// grow into.
type Node256 struct {
	Base

	Children [256]Node
}

var _ Node = (*Node256)(nil)

// Kind always returns KindNode256.
func (n *Node256) Kind() Kind { return KindNode256 }

// Full always returns false: a Node256 has a direct slot for every byte
// value and never needs to grow.
func (n *Node256) Full() bool { return false }

// FindChild is a direct array index.
func (n *Node256) FindChild(b byte, terminal bool) *Node {
	if terminal {
		if n.Term == nil {
			return nil
		}

		return &n.Term
	}

	if n.Children[b] == nil {
		return nil
	}

	return &n.Children[b]
}

// AddChild installs child directly at b's slot.
func (n *Node256) AddChild(_ arena.Allocator, b byte, terminal bool, child Node) {
	if terminal {
		n.Term = child
		return
	}

	if n.Children[b] == nil {
		n.NumChildren++
	}

	n.Children[b] = child
}

// Grow panics: a Node256 already holds a slot for every byte value, so
// there is no larger layout to promote to.
func (n *Node256) Grow(arena.Allocator) Node {
	invariant.Assert(false, "node256 cannot grow further")
	return nil
}
