package cbttesting

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-merklelog/cbt"
)

// HasherFactory constructs a fresh instance of the capability under test.
type HasherFactory func() cbt.Hasher

// TestHasherCompliance exercises the contract every cbt.Hasher implementation
// must satisfy for the tree primitives to be sound. Call it from a normal
// test with a factory for the implementation under test.
func TestHasherCompliance(t *testing.T, f HasherFactory) {
	t.Run("zero is all zero and digest width", func(t *testing.T) {
		h := f()

		zero := h.Zero()
		require.Len(t, zero, len(h.Digest(nil)))
		for _, b := range zero {
			require.Zero(t, b)
		}
	})

	t.Run("zero is not aliased", func(t *testing.T) {
		h := f()

		zero := h.Zero()
		for i := range zero {
			zero[i] = 0xff
		}
		for _, b := range h.Zero() {
			require.Zero(t, b)
		}
	})

	t.Run("digest is deterministic", func(t *testing.T) {
		h := f()

		require.Equal(t, h.Digest([]byte("deterministic_data")), h.Digest([]byte("deterministic_data")))
	})

	t.Run("multi digest is the digest of the concatenation", func(t *testing.T) {
		h := f()

		require.Equal(t,
			h.Digest([]byte("left||right")),
			h.MultiDigest([]byte("left"), []byte("||"), []byte("right")),
		)
	})

	t.Run("multi digest of nothing is the empty digest", func(t *testing.T) {
		h := f()

		require.Equal(t, h.Digest(nil), h.MultiDigest())
	})

	t.Run("distinct inputs digest distinctly", func(t *testing.T) {
		h := f()

		require.NotEqual(t, h.Digest([]byte("a")), h.Digest([]byte("b")))
	})
}
