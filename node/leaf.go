package node

import (
	"bytes"

	"github.com/keyspace/art/arena"
	"github.com/keyspace/art/internal/invariant"
)

// Leaf stores one key and its associated value. It is the only node kind
// that does not implement prefix compression or fan-out: its key is the
// full key path from the root.
type Leaf struct {
	Key   []byte
	Value []byte
}

var _ Node = (*Leaf)(nil)

// NewLeaf allocates a leaf owning copies of key and value.
func NewLeaf(a arena.Allocator, key, value []byte) *Leaf {
	return arena.New(a, Leaf{
		Key:   arena.Bytes(a, key),
		Value: arena.Bytes(a, value),
	})
}

// Kind always returns KindLeaf.
func (l *Leaf) Kind() Kind { return KindLeaf }

// Full always returns true: a leaf cannot accept children.
func (l *Leaf) Full() bool { return true }

// Prefix returns the leaf's full key, since a leaf's key is its own
// complete path from the root.
func (l *Leaf) Prefix() []byte { return l.Key }

// SetPrefix replaces the leaf's key. Search and insert never call it on a
// leaf: they handle a leaf before consulting any prefix.
func (l *Leaf) SetPrefix(p []byte) { l.Key = p }

// FindChild panics: a leaf has no children.
func (l *Leaf) FindChild(byte, bool) *Node {
	invariant.Assert(false, "leaf cannot have children")
	return nil
}

// AddChild panics: a leaf has no children.
func (l *Leaf) AddChild(arena.Allocator, byte, bool, Node) {
	invariant.Assert(false, "leaf cannot have children")
}

// Grow panics: a leaf never grows.
func (l *Leaf) Grow(arena.Allocator) Node {
	invariant.Assert(false, "leaf cannot grow")
	return nil
}

// Matches reports whether key is byte-for-byte equal to the leaf's key.
func (l *Leaf) Matches(key []byte) bool {
	return bytes.Equal(l.Key, key)
}
