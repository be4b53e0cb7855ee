// Package cbttesting provides test support for the cbt primitives and for
// implementations of the cbt.Hasher capability.
package cbttesting

import (
	"encoding/binary"
	"fmt"
)

// MakeLeaves generates n deterministic leaf values. The same label and n
// always produce the same leaves, so tests that assert byte identical trees
// can regenerate their inputs from run to run.
func MakeLeaves(n int, label string) [][]byte {
	leaves := make([][]byte, n)
	for i := range leaves {
		leaf := make([]byte, len(label)+8)
		copy(leaf, label)
		binary.BigEndian.PutUint64(leaf[len(label):], uint64(i))
		leaves[i] = leaf
	}
	return leaves
}

// MakeStringLeaves converts literal strings to leaf values, for tests that
// want readable fixed scenarios like ["a", "b", "c", "d"].
func MakeStringLeaves(values ...string) [][]byte {
	leaves := make([][]byte, len(values))
	for i, v := range values {
		leaves[i] = []byte(v)
	}
	return leaves
}

// LeafLabel is a convenience for subtest naming.
func LeafLabel(i int) string {
	return fmt.Sprintf("leaf %d", i)
}
