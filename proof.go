package cbt

// InclusionProof collects the audit path committing the leaf at index i.
//
// The path holds one sibling value per level, ordered leaf to root. The root
// itself is never part of the path. Where the walked node was the unmatched
// trailing node of an odd sized level, the path holds the zero sentinel in
// place of a sibling, signalling to the verifier that the value propagated
// unchanged at that level.
//
// For the following tree with 5 leaves and i=4 the path is [Z, Z, H(01,23)]
// because node 4 is unmatched at the first two levels:
//
//	        root
//	       /    \
//	   01,23     4
//	   /   \      \
//	  01    23     4
//	 /  \  /  \     \
//	0    1 2   3     4
//
// An index outside [0, len(leaves)) returns ErrIndexOutOfRange. It is never
// clamped.
func InclusionProof(h Hasher, i uint64, leaves [][]byte) ([][]byte, error) {
	if i >= uint64(len(leaves)) {
		return nil, ErrIndexOutOfRange
	}

	nodes := BuildTree(h, leaves)

	proof := make([][]byte, 0, ProofLength(uint64(len(leaves))))

	levelStart := uint64(0)
	for size := uint64(len(leaves)); size > 1; size = (size + 1) / 2 {

		// The sibling is at i+1 for an even i and i-1 for an odd i.
		iSibling := i ^ 1

		if iSibling < size {
			proof = append(proof, nodes[levelStart+iSibling])
		} else {
			// i was the unmatched trailing node at this level.
			proof = append(proof, h.Zero())
		}

		levelStart += size
		i >>= 1
	}

	return proof, nil
}
