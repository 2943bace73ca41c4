// Package art implements an in-memory Adaptive Radix Tree: an ordered map
// from byte-string keys to byte-string values whose internal nodes adapt
// their fan-out representation to the number of children they actually
// hold, keeping memory overhead close to a hash map while preserving the
// prefix structure a radix trie gives for free.
package art

import (
	"github.com/keyspace/art/arena"
	"github.com/keyspace/art/internal/invariant"
	"github.com/keyspace/art/node"
	"github.com/keyspace/art/walk"
)

// Tree is an adaptive radix tree mapping byte-string keys to byte-string
// values. The zero value is not usable; construct with New.
//
// Tree is single-threaded and non-reentrant: it exposes no suspension
// points, and callers must serialize concurrent access externally.
type Tree struct {
	alloc  arena.Allocator
	root   node.Node
	logger Logger
}

// Option configures a Tree constructed with New.
type Option func(*Tree)

// WithAllocator overrides the tree's memory allocator. The default is a
// plain [arena.Arena]; pass a [arena.Recycled] to reuse released node
// storage across a workload that churns keys.
func WithAllocator(a arena.Allocator) Option {
	return func(t *Tree) { t.alloc = a }
}

// WithLogger attaches a Logger that receives a structured event for every
// Insert ("insert" or "replace") and every Search ("search_hit" or
// "search_miss"). Node splits and growth are not reported. The default is
// [NopLogger].
func WithLogger(l Logger) Option {
	return func(t *Tree) { t.logger = l }
}

// New constructs an empty Tree.
func New(opts ...Option) *Tree {
	t := &Tree{
		alloc:  &arena.Arena{},
		logger: NopLogger{},
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Insert associates value with key, replacing any prior association.
//
// It always returns true; the return value is a "stored" acknowledgment
// rather than a success/failure signal, since insert has no failure mode
// of its own to report.
func (t *Tree) Insert(key, value []byte) bool {
	old, had := walk.Insert(t.alloc, &t.root, key, value, true)

	if had {
		t.logger.Event("replace", F("key", string(key)), F("old_len", len(old)))
	} else {
		t.logger.Event("insert", F("key", string(key)))
	}

	return true
}

// Search reports the value associated with key, if any.
func (t *Tree) Search(key []byte) ([]byte, bool) {
	v, ok := walk.Search(t.root, key)

	if ok {
		t.logger.Event("search_hit", F("key", string(key)))
	} else {
		t.logger.Event("search_miss", F("key", string(key)))
	}

	return v, ok
}

// Release tears down the tree, recursively visiting every live node
// exactly once and returning it to the allocator. The Tree is empty and
// reusable afterward.
func (t *Tree) Release() {
	release(t.alloc, t.root)
	t.root = nil
}

// release walks n and every reachable descendant, freeing each node
// through the allocator. Leaves and inner nodes are freed from the
// bottom up so a parent's Children/Term slices are never read after the
// storage backing them is returned.
func release(a arena.Allocator, n node.Node) {
	if n == nil {
		return
	}

	switch v := n.(type) {
	case *node.Leaf:
		arena.Free(a, v)
	case *node.Node4:
		release(a, v.Term)
		for i := 0; i < v.NumChildren; i++ {
			release(a, v.Children[i])
		}
		arena.Free(a, v)
	case *node.Node16:
		release(a, v.Term)
		for i := 0; i < v.NumChildren; i++ {
			release(a, v.Children[i])
		}
		arena.Free(a, v)
	case *node.Node48:
		release(a, v.Term)
		for i := 0; i < 48; i++ {
			release(a, v.Children[i])
		}
		arena.Free(a, v)
	case *node.Node256:
		release(a, v.Term)
		for i := 0; i < 256; i++ {
			release(a, v.Children[i])
		}
		arena.Free(a, v)
	default:
		invariant.Assert(false, "unknown node kind %v", n.Kind())
	}
}
