// Package node implements the four adaptive inner-node layouts and the leaf
// representation of the tree: Node4, Node16, Node48 and Node256, each
// trading memory for lookup speed at a different fan-out, plus the Leaf
// that terminates every key path.
//
// Node is not generic: both keys and values are plain byte strings, so a
// type parameter would only add ceremony without buying anything.
package node

import (
	"fmt"

	"github.com/keyspace/art/arena"
)

// Kind identifies which concrete layout a Node uses.
type Kind uint8

const (
	// KindInvalid marks an uninitialized or corrupt node; seeing it during
	// traversal is a programmer bug.
	KindInvalid Kind = iota

	// KindLeaf stores a single (key, value) pair and terminates a key path.
	KindLeaf

	// KindNode4 stores up to 4 children in insertion order.
	KindNode4

	// KindNode16 stores up to 16 children in insertion order.
	KindNode16

	// KindNode48 stores up to 48 children behind a 256-entry byte index.
	KindNode48

	// KindNode256 stores up to 256 children in a direct byte-indexed array.
	KindNode256
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "Leaf"
	case KindNode4:
		return "Node4"
	case KindNode16:
		return "Node16"
	case KindNode48:
		return "Node48"
	case KindNode256:
		return "Node256"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// MaxPrefixLen is the nominal compressed-prefix length. Nothing in the
// module reads it, and prefix storage is not capped to it (see
// Base.Partial).
const MaxPrefixLen = 16

// Node is the common interface satisfied by the leaf and all four inner
// node layouts. It is used directly as a tagged variant: a nil Node means
// an empty slot, a *Leaf terminates a key, and the four inner types each
// implement their own fan-out and growth behavior.
//
// FindChild returns a pointer into the node's internal child storage so
// that an insert can replace the child in place without the node knowing
// anything about what replaces it.
type Node interface {
	// Kind reports which concrete layout this node uses.
	Kind() Kind

	// Full reports whether every byte-keyed slot is occupied, so that
	// AddChild cannot place a new byte-keyed child without growing first.
	// It does not account for the terminal child,
	// which every inner layout can always hold exactly one of.
	Full() bool

	// Prefix returns the compressed path prefix shared by every key below
	// this node, i.e. the bytes consumed between the parent edge and this
	// node's own children.
	Prefix() []byte

	// SetPrefix replaces the compressed path prefix.
	SetPrefix(p []byte)

	// FindChild looks up the child reached by edge byte b, or by the
	// terminal edge when terminal is true (the key ends exactly at this
	// node). It returns a pointer to the child slot, or nil if absent.
	FindChild(b byte, terminal bool) *Node

	// AddChild installs child at edge b (or the terminal edge, when
	// terminal is true). The node must not be Full() unless terminal is
	// true, since the terminal child has its own dedicated slot.
	AddChild(a arena.Allocator, b byte, terminal bool, child Node)

	// Grow promotes this node to the next larger layout, preserving every
	// existing child and the terminal child. It is a programmer bug to
	// call Grow on a Node256 or a Leaf.
	Grow(a arena.Allocator) Node
}

// Base holds the state shared by every inner node layout: the compressed
// prefix, the count of byte-keyed children, and the dedicated terminal
// child slot.
//
// A key ending exactly at this node and a child edge on byte 0x00 are two
// different things, and both must be representable without colliding: every
// inner layout carries its own Term field for the former, independent of
// the byte-keyed children, so there is no sentinel byte value to reserve
// and no ambiguity for keys that legitimately contain 0x00.
type Base struct {
	// Partial is the compressed prefix, stored at whatever length the
	// longest common prefix actually is. It is not bounded to a fixed
	// buffer size, so there is no cap to enforce or truncated prefix to
	// verify against a descendant leaf.
	Partial []byte

	// NumChildren counts byte-keyed children only; Term is tracked
	// separately and never counts toward a layout's capacity.
	NumChildren int

	// Term is the child reached when a key ends exactly at this node.
	Term Node
}

// Prefix returns the node's compressed prefix.
func (b *Base) Prefix() []byte { return b.Partial }

// SetPrefix replaces the node's compressed prefix.
func (b *Base) SetPrefix(p []byte) { b.Partial = p }
