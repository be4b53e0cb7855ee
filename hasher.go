package cbt

import (
	"crypto/sha256"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Hasher is the digest capability required by the tree primitives. It is
// deliberately narrow: a one shot digest, a digest over the concatenation of
// several byte strings, and the all zero sentinel of the digest width.
//
// The tree never inspects which concrete algorithm is behind a Hasher, only
// the output width (via the sentinel length) and these two operations.
//
// Implementations must be stateless, or at least safe for concurrent use by
// callers building disjoint trees.
type Hasher interface {
	// Digest returns the hash of a single byte string.
	Digest(data []byte) []byte

	// MultiDigest returns the hash of the byte wise concatenation of parts,
	// without requiring the caller to allocate a combined buffer.
	MultiDigest(parts ...[]byte) []byte

	// Zero returns the all zero sentinel value, one digest in length. The
	// sentinel stands in for "no sibling at this level" in audit paths.
	Zero() []byte
}

// NewHasher adapts any stdlib compatible digest constructor to the Hasher
// capability. A fresh hash.Hash is constructed per call, so the returned
// Hasher is stateless and safe for concurrent use.
func NewHasher(newfn func() hash.Hash) Hasher {
	return &stdHasher{newfn: newfn, zero: make([]byte, newfn().Size())}
}

// NewSHA256 returns the SHA-256 variant of the digest capability.
func NewSHA256() Hasher {
	return NewHasher(sha256.New)
}

// NewKeccak256 returns the legacy Keccak-256 variant (pre NIST padding, as
// used by ethereum and the jam family).
func NewKeccak256() Hasher {
	return NewHasher(sha3.NewLegacyKeccak256)
}

// NewBlake2b256 returns the BLAKE2b-256 variant.
func NewBlake2b256() Hasher {
	// The keyed constructor only errors for oversized keys, never for nil.
	return NewHasher(func() hash.Hash {
		h, err := blake2b.New256(nil)
		if err != nil {
			panic(err)
		}
		return h
	})
}

type stdHasher struct {
	newfn func() hash.Hash
	zero  []byte
}

func (s *stdHasher) Digest(data []byte) []byte {
	h := s.newfn()
	h.Write(data)
	return h.Sum(nil)
}

func (s *stdHasher) MultiDigest(parts ...[]byte) []byte {
	h := s.newfn()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

func (s *stdHasher) Zero() []byte {
	// Callers receive a copy so the canonical sentinel can never be clobbered.
	zero := make([]byte, len(s.zero))
	return zero
}
