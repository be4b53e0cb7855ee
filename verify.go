package cbt

import "bytes"

// VerifyInclusion returns true if the leaf value at index i, combined with
// the audit path, reproduces the provided root.
func VerifyInclusion(h Hasher, root []byte, i uint64, leaf []byte, proof [][]byte) bool {
	return bytes.Equal(IncludedRoot(h, i, leaf, proof), root)
}
