package cbt

// HashLeaf computes:
//
//	H( 0x00 || leafBytes )
func HashLeaf(h Hasher, leaf []byte) []byte {
	return h.MultiDigest([]byte{LeafPrefix}, leaf)
}

// HashNode computes:
//
//	H( 0x01 || left || right )
func HashNode(h Hasher, left, right []byte) []byte {
	return h.MultiDigest([]byte{NodePrefix}, left, right)
}

// HashEmpty computes the canonical empty tree root:
//
//	H( "" )
//
// No domain prefix is applied, so the empty root can never equal a leaf or
// interior hash produced by the prefixed paths.
func HashEmpty(h Hasher) []byte {
	return h.Digest(nil)
}
