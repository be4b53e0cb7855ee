package cbt

// TreeNodeCount returns the total number of nodes, across all levels, in the
// tree committing leafCount leaves. This is the length of the node sequence
// returned by BuildTree.
//
// For a power of two leaf count this is 2*leafCount - 1. Ragged levels add
// one propagated node per odd sized level. The empty tree has exactly one
// node, the empty root.
func TreeNodeCount(leafCount uint64) uint64 {
	if leafCount == 0 {
		return 1
	}
	count := uint64(0)
	for size := leafCount; ; size = (size + 1) / 2 {
		count += size
		if size == 1 {
			break
		}
	}
	return count
}

// ProofLength returns the number of levels between the leaf level and the
// root, which is the audit path length for every leaf of the tree. For a
// power of two leaf count this is log2(leafCount). Single leaf and empty
// trees have zero length paths.
func ProofLength(leafCount uint64) int {
	d := 0
	for size := leafCount; size > 1; size = (size + 1) / 2 {
		d++
	}
	return d
}
