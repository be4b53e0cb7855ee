package cbt

import "errors"

// LeafPrefix is the domain separation prefix for leaf hashes.
const LeafPrefix byte = 0x00

// NodePrefix is the domain separation prefix for interior node hashes.
const NodePrefix byte = 0x01

var (
	ErrIndexOutOfRange = errors.New("cbt: leaf index out of range")
)
