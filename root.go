package cbt

// TreeRoot returns the root committing the ordered leaf sequence. The root
// is always the final node of the sequence produced by BuildTree.
func TreeRoot(h Hasher, leaves [][]byte) []byte {
	nodes := BuildTree(h, leaves)
	return nodes[len(nodes)-1]
}
