// Package bjevko provides a codec for a compact binary tree encoding.
//
// An encoded tree is a flat sequence of records ("affixes"). Each record is a
// signed tag byte, a 4-byte little-endian payload length and the payload:
//
//	[tag: int8][length: uint32 LE][payload: length bytes]
//
// The tag is a depth delta: +1 opens a branch and -1 (0xFF) closes one. The
// record that brings the running depth to -1 closes the top-level tree and must
// be the last byte range of the buffer.
//
// # Basic Usage
//
//	seq, err := bjevko.Decode(buf)
//	if err != nil {
//	    return err
//	}
//	root := bjevko.Build(seq)
//	for label, child := range root.All() {
//	    fmt.Printf("%x -> %x\n", label, child.Payload)
//	}
//
//	out := bjevko.Encode(seq) // equals buf
//
// Parse combines Decode and Build:
//
//	root, err := bjevko.Parse(buf)
//
// # Package Structure
//
// This package wraps the affix and tree packages for the common cases. Use
// affix directly for decoder options (length field trust, logging) and
// incremental encoding, and tree for cursor-driven partial builds.
//
// Decoded payloads and tree labels borrow from the input buffer, which must stay
// alive and unmodified while they are in use.
package bjevko

import (
	"github.com/arloliu/bjevko/affix"
	"github.com/arloliu/bjevko/tree"
)

// Decode splits buf into its affix sequence.
//
// Returns a *errs.DecodeError of kind KindTruncatedInput, KindTrailingBytes or
// KindUnclosedDepth if buf is rejected.
func Decode(buf []byte, opts ...affix.DecoderOption) (affix.Sequence, error) {
	return affix.Decode(buf, opts...)
}

// Encode serializes seq. It never fails.
func Encode(seq affix.Sequence) []byte {
	return affix.Encode(seq)
}

// Build reconstructs the tree encoded by seq. It never fails; see tree.Build.
func Build(seq affix.Sequence) *tree.Node {
	return tree.Build(seq)
}

// Parse decodes buf and builds its tree.
func Parse(buf []byte, opts ...affix.DecoderOption) (*tree.Node, error) {
	seq, err := affix.Decode(buf, opts...)
	if err != nil {
		return nil, err
	}

	return tree.Build(seq), nil
}
