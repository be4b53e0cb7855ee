package cbt

import "bytes"

// IncludedRoot derives the root committing leaf at index i from the audit
// path alone, without materialising the tree.
//
// Arguments:
//   - i is the index the leaf is to be shown at
//   - leaf is the leaf value whose inclusion is to be shown
//   - proof is the path of sibling values committing i, ordered leaf to root
//
// Zero sentinel entries reproduce the odd node rule: the running value is
// carried up unchanged for that level. For every other entry the parity of
// the current index selects the operand order, exactly mirroring
// construction. When i is odd the running value was a right child:
//
//	right child: root = H( 0x01 || sibling || root )
//	left child:  root = H( 0x01 || root || sibling )
//
// The path length is not validated; a truncated or extended path yields a
// root that simply fails the caller's comparison. Comparison against a
// trusted root is the caller's membership check, or use VerifyInclusion.
func IncludedRoot(h Hasher, i uint64, leaf []byte, proof [][]byte) []byte {
	root := HashLeaf(h, leaf)
	zero := h.Zero()

	for _, sibling := range proof {
		switch {
		case bytes.Equal(sibling, zero):
			// No sibling existed at this level, the node propagated.
		case i&1 == 1:
			root = HashNode(h, sibling, root)
		default:
			root = HashNode(h, root, sibling)
		}
		i >>= 1
	}

	return root
}
