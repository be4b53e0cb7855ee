package cbt

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIncludedRootRoundTrip checks the defining property: for every leaf
// count and every index, the root derived from the leaf, its audit path and
// its index equals the built root. Exercised for each digest variant.
func TestIncludedRootRoundTrip(t *testing.T) {
	variants := []struct {
		name string
		h    Hasher
	}{
		{"sha256", NewSHA256()},
		{"keccak256", NewKeccak256()},
		{"blake2b256", NewBlake2b256()},
	}

	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			for n := 1; n <= 17; n++ {
				leaves := make([][]byte, n)
				for i := range leaves {
					leaves[i] = fmt.Appendf(nil, "leaf-%d", i)
				}
				root := TreeRoot(v.h, leaves)

				for i := range leaves {
					proof, err := InclusionProof(v.h, uint64(i), leaves)
					require.NoError(t, err)

					derived := IncludedRoot(v.h, uint64(i), leaves[i], proof)
					assert.Equal(t, root, derived, "leafCount=%d index=%d", n, i)
					assert.True(t, VerifyInclusion(v.h, root, uint64(i), leaves[i], proof))
				}
			}
		})
	}
}

func TestIncludedRootOperandOrder(t *testing.T) {
	// Deriving with the wrong index parity swaps the operand order at the
	// first level and must produce a different root.
	h := NewSHA256()
	leaves := stringLeaves("a", "b", "c", "d")
	root := TreeRoot(h, leaves)

	proof, err := InclusionProof(h, 2, leaves)
	require.NoError(t, err)

	assert.Equal(t, root, IncludedRoot(h, 2, leaves[2], proof))
	assert.NotEqual(t, root, IncludedRoot(h, 3, leaves[2], proof))
}

func TestIncludedRootWrongLeaf(t *testing.T) {
	h := NewSHA256()
	leaves := stringLeaves("a", "b", "c", "d", "e")
	root := TreeRoot(h, leaves)

	proof, err := InclusionProof(h, 1, leaves)
	require.NoError(t, err)

	assert.False(t, VerifyInclusion(h, root, 1, []byte("x"), proof))
	assert.False(t, VerifyInclusion(h, root, 0, leaves[1], proof))
}

func TestIncludedRootShortProof(t *testing.T) {
	// The deriver has no notion of correct path length. A truncated path is
	// consumed without error and yields a root that fails comparison.
	h := NewSHA256()
	leaves := stringLeaves("a", "b", "c", "d", "e", "f", "g", "h")
	root := TreeRoot(h, leaves)

	proof, err := InclusionProof(h, 3, leaves)
	require.NoError(t, err)
	require.Len(t, proof, 3)

	derived := IncludedRoot(h, 3, leaves[3], proof[:2])
	assert.NotEqual(t, root, derived)

	// Likewise trailing garbage is consumed, not detected.
	extended := append(append([][]byte{}, proof...), HashLeaf(h, []byte("garbage")))
	assert.NotEqual(t, root, IncludedRoot(h, 3, leaves[3], extended))
}

func TestIncludedRootEmptyProof(t *testing.T) {
	// A single leaf tree verifies with an empty path.
	h := NewSHA256()
	leaves := stringLeaves("only")
	root := TreeRoot(h, leaves)

	assert.Equal(t, root, IncludedRoot(h, 0, leaves[0], nil))
}
