// Package endian provides the byte order utilities used by the bjevko wire format.
//
// Record length fields are 4 bytes, little-endian. Decoders trust either the
// full field or only its low 3 bytes (see format.LengthMode), so this package
// adds 24-bit helpers on top of the standard encoding/binary engines.
//
// # Basic Usage
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint32(buf, uint32(len(payload)))
//	n := endian.Uint24(buf[1:5])
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// MaxUint24 is the largest value representable by a 24-bit length.
const MaxUint24 = 1<<24 - 1

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// Uint24 reads a little-endian unsigned 24-bit integer from the first 3 bytes of b.
// Panics if len(b) < 3.
func Uint24(b []byte) uint32 {
	_ = b[2] // bounds check hint to compiler
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
}
