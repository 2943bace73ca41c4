// Package walk implements the recursive search and insert algorithms that
// operate over a tree of node.Node values: prefix matching, child-edge
// resolution, and the split/grow machinery insert needs when a key diverges
// partway down an existing path.
package walk

// edge returns the byte that selects a child at depth within key, and
// whether depth has run off the end of key. A true terminal means the key
// ends exactly at this node, so the caller should look up the node's
// dedicated terminal child instead of a byte-keyed one.
func edge(key []byte, depth int) (b byte, terminal bool) {
	if depth < len(key) {
		return key[depth], false
	}

	return 0, true
}

// checkPrefix reports how many leading bytes of prefix match key starting
// at depth. A result shorter than len(prefix) means the key diverges
// somewhere inside the compressed prefix.
func checkPrefix(prefix, key []byte, depth int) int {
	n := len(prefix)
	if m := len(key) - depth; m < n {
		n = m
	}

	if n < 0 {
		n = 0
	}

	i := 0
	for i < n && prefix[i] == key[depth+i] {
		i++
	}

	return i
}

// longestCommonPrefix compares a and b from depth onward and returns the
// index of the first byte at which they differ (or the length of the
// shorter key), i.e. depth plus the number of shared bytes. It is used when
// splitting a leaf to compute the new inner node's compressed prefix.
func longestCommonPrefix(a, b []byte, depth int) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	i := depth
	for i < n && a[i] == b[i] {
		i++
	}

	return i
}
