package cbt

// BuildTree commits the ordered leaf sequence and returns the complete node
// sequence: every node of every level, leaves first, root last. Level
// boundaries are implicit in the level sizes, see TreeNodeCount.
//
// Each leaf is hashed as H( 0x00 || leaf ). Interior nodes are
// H( 0x01 || left || right ). A trailing unmatched node on an odd sized
// level is carried up unchanged, it is never hashed with a copy of itself.
//
// The empty leaf sequence produces exactly one node, H( "" ).
//
// BuildTree is deterministic: identical leaves and hasher always produce a
// byte identical node sequence.
func BuildTree(h Hasher, leaves [][]byte) [][]byte {
	if len(leaves) == 0 {
		return [][]byte{HashEmpty(h)}
	}

	nodes := make([][]byte, 0, TreeNodeCount(uint64(len(leaves))))

	for _, leaf := range leaves {
		nodes = append(nodes, HashLeaf(h, leaf))
	}

	// Combine pairwise, level by level, until a level of size 1 remains.
	// levelStart indexes the first node of the level being read.
	levelStart := 0
	for size := len(leaves); size > 1; size = (size + 1) / 2 {
		for k := 0; k+1 < size; k += 2 {
			left := nodes[levelStart+k]
			right := nodes[levelStart+k+1]
			nodes = append(nodes, HashNode(h, left, right))
		}
		if size&1 == 1 {
			// The odd node rule: propagate the unmatched node unchanged.
			nodes = append(nodes, nodes[levelStart+size-1])
		}
		levelStart += size
	}

	return nodes
}
