package cbt

/*

# CBT primitives for Forestrie (compact binary tree, audit paths)

This package provides primitive building blocks for an RFC 6962 style binary
hash tree over an ordered sequence of leaves, producing a single root and
compact audit (inclusion) paths.

It follows the same "functional primitives" style as `go-merklelog/mmr`:

- small, composable functions
- the digest capability is an argument to every primitive
- index arithmetic over a flat node sequence, no pointer based tree
- a burden of knowledge on the caller for hot paths

Unlike the mmr package, the cbt is not append only. The full tree is rebuilt
from the complete leaf sequence on every call. This suits callers that have
the whole batch in hand and want the smallest possible commitment machinery,
eg transaction sets, block witnesses, and fixed manifests.

## Node sequence layout

BuildTree emits every node of every level in one flat slice, leaves first,
root last. Level boundaries are not stored; they are recovered arithmetically
from the level sizes. For leaves [a, b, c, d] the sequence is

	  6        <- nodes[6], the root
	 4   5
	0 1 2 3    <- leaf hashes occupy nodes[0:4]

	[H(a) H(b) H(c) H(d) H(0,1) H(2,3) H(4,5)]

## Domain separation

Leaf and interior hashes are separated by a one byte prefix so a crafted leaf
payload can never collide with an interior node:

	leaf:     H( 0x00 || leafBytes )
	interior: H( 0x01 || left || right )

The empty tree root is H( "" ), with no prefix applied.

## The odd node rule

When a level has an odd number of nodes the trailing node is carried up to the
next level unchanged. It is never paired with a copy of itself. Hashing an
unmatched node with itself is a known forgery vector: it makes a leaf sequence
with a duplicated tail indistinguishable from one without.

	   root
	   /  \
	  x    c   <- c is propagated, not H(0x01||c||c)
	 / \
	a   b

## Audit paths and the zero sentinel

An audit path holds one sibling value per level, ordered leaf to root. Where
the indexed node had no sibling (it was the propagated odd node) the path
holds the all zero sentinel value instead, and the verifier carries its
running value up unchanged for that level.

The sentinel is reserved by convention, not cryptographically. A real digest
that happens to equal it would verify incorrectly. We accept this: the
probability is that of finding a preimage of zero, and keeping the sentinel
preserves byte for byte compatibility with the originating implementations.

## Verification

IncludedRoot recreates the root from a leaf value, its index, and an audit
path, without materialising the tree. The parity of the index at each level
selects the operand order, exactly mirroring construction. VerifyInclusion is
the recompute-and-compare convenience on top.

*/
