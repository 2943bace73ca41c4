package walk

import (
	"github.com/keyspace/art/node"
)

// Search looks up key in the tree rooted at root.
//
// It returns the stored value and true if key is present, or nil and false
// otherwise. Search never allocates and never mutates the tree.
func Search(root node.Node, key []byte) ([]byte, bool) {
	cur := root
	depth := 0

	for {
		if cur == nil {
			return nil, false
		}

		if leaf, ok := cur.(*node.Leaf); ok {
			if leaf.Matches(key) {
				return leaf.Value, true
			}

			return nil, false
		}

		prefix := cur.Prefix()
		if p := checkPrefix(prefix, key, depth); p != len(prefix) {
			return nil, false
		}

		depth += len(prefix)

		b, terminal := edge(key, depth)

		next := cur.FindChild(b, terminal)
		if next == nil {
			return nil, false
		}

		cur = *next
		depth++
	}
}
