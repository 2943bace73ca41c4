package walk

import (
	"github.com/keyspace/art/arena"
	"github.com/keyspace/art/node"
)

// Insert places key and value into the tree rooted at *ref, growing and
// splitting nodes as needed.
//
// It returns the previous value and true if key was already present. When
// replace is false and key is already present, the existing value is left
// untouched but still returned.
func Insert(a arena.Allocator, ref *node.Node, key, value []byte, replace bool) ([]byte, bool) {
	return insert(a, ref, key, value, 0, replace)
}

func insert(a arena.Allocator, ref *node.Node, key, value []byte, depth int, replace bool) ([]byte, bool) {
	if *ref == nil {
		*ref = node.NewLeaf(a, key, value)
		return nil, false
	}

	if leaf, ok := (*ref).(*node.Leaf); ok {
		return insertIntoLeaf(a, ref, leaf, key, value, depth, replace)
	}

	return insertIntoNode(a, ref, key, value, depth, replace)
}

// insertIntoLeaf handles the case where ref currently points at a leaf: a
// matching key just updates the value, otherwise the leaf is split into a
// fresh Node4 holding both the existing leaf and the new one.
func insertIntoLeaf(a arena.Allocator, ref *node.Node, leaf *node.Leaf, key, value []byte, depth int, replace bool) ([]byte, bool) {
	if leaf.Matches(key) {
		old := leaf.Value

		if replace {
			leaf.Value = arena.Bytes(a, value)
		}

		return old, true
	}

	i := longestCommonPrefix(key, leaf.Key, depth)

	split := arena.New(a, node.Node4{})
	split.SetPrefix(arena.Bytes(a, key[depth:i]))

	attach(a, split, key, i, node.NewLeaf(a, key, value))
	attach(a, split, leaf.Key, i, leaf)

	*ref = split

	return nil, false
}

// insertIntoNode handles the case where ref points at an inner node: the
// node's own compressed prefix may need to split first, then the key's
// next edge byte either recurses into an existing child or installs a new
// leaf, growing the node first if it is full.
func insertIntoNode(a arena.Allocator, ref *node.Node, key, value []byte, depth int, replace bool) ([]byte, bool) {
	cur := *ref
	prefix := cur.Prefix()

	if p := checkPrefix(prefix, key, depth); p < len(prefix) {
		split := arena.New(a, node.Node4{})
		split.SetPrefix(arena.Bytes(a, prefix[:p]))

		edgeByte := prefix[p]
		cur.SetPrefix(arena.Bytes(a, prefix[p+1:]))
		split.AddChild(a, edgeByte, false, cur)

		attach(a, split, key, depth+p, node.NewLeaf(a, key, value))

		*ref = split

		return nil, false
	}

	depth += len(prefix)

	b, terminal := edge(key, depth)

	if child := cur.FindChild(b, terminal); child != nil {
		return insert(a, child, key, value, depth+1, replace)
	}

	if !terminal && cur.Full() {
		grown := cur.Grow(a)

		switch old := cur.(type) {
		case *node.Node4:
			arena.Free(a, old)
		case *node.Node16:
			arena.Free(a, old)
		case *node.Node48:
			arena.Free(a, old)
		}

		cur = grown
		*ref = cur
	}

	cur.AddChild(a, b, terminal, node.NewLeaf(a, key, value))

	return nil, false
}

// attach adds child to n at the edge key selects at depth i, using the
// terminal edge when i has run off the end of key.
func attach(a arena.Allocator, n node.Node, key []byte, i int, child node.Node) {
	b, terminal := edge(key, i)
	n.AddChild(a, b, terminal, child)
}
