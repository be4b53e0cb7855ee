package cbttesting

import (
	"bytes"

	"github.com/forestrie/go-merklelog/cbt"
)

// RecordingHasher wraps a cbt.Hasher and records every MultiDigest call so
// tests can make structural assertions about the hashing paths the tree
// primitives take, eg that an unmatched odd node is never paired with a copy
// of itself, or that the first input byte differs between the leaf and
// interior hashing paths.
//
// RecordingHasher is not safe for concurrent use. It is a test aid only.
type RecordingHasher struct {
	cbt.Hasher

	// MultiCalls holds the parts of every MultiDigest invocation, in call
	// order. The recorded parts are copies.
	MultiCalls [][][]byte
}

// NewRecordingHasher wraps h for recording.
func NewRecordingHasher(h cbt.Hasher) *RecordingHasher {
	return &RecordingHasher{Hasher: h}
}

func (r *RecordingHasher) MultiDigest(parts ...[]byte) []byte {
	call := make([][]byte, len(parts))
	for i, p := range parts {
		call[i] = bytes.Clone(p)
	}
	r.MultiCalls = append(r.MultiCalls, call)
	return r.Hasher.MultiDigest(parts...)
}

// SawNodePair reports whether any recorded call hashed the interior pair
// (left, right), ie computed H( 0x01 || left || right ).
func (r *RecordingHasher) SawNodePair(left, right []byte) bool {
	for _, call := range r.MultiCalls {
		if len(call) != 3 || len(call[0]) != 1 || call[0][0] != cbt.NodePrefix {
			continue
		}
		if bytes.Equal(call[1], left) && bytes.Equal(call[2], right) {
			return true
		}
	}
	return false
}

// FirstBytes returns the leading byte of every recorded call's concatenated
// input, in call order.
func (r *RecordingHasher) FirstBytes() []byte {
	var firsts []byte
	for _, call := range r.MultiCalls {
		for _, p := range call {
			if len(p) > 0 {
				firsts = append(firsts, p[0])
				break
			}
		}
	}
	return firsts
}
