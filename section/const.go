package section

import "github.com/arloliu/bjevko/endian"

// Record layout, in bytes.
//
//	┌─────┬──────────────────────┬──────────────────┐
//	│ tag │ length (uint32, LE)  │ payload          │
//	│  1  │          4           │ length bytes     │
//	└─────┴──────────────────────┴──────────────────┘
const (
	TagSize         = 1                         // signed tag byte
	LengthFieldSize = 4                         // length field, always written in full
	TrustedLength24 = 3                         // low bytes of the length field trusted by default
	HeaderSize      = TagSize + LengthFieldSize // fixed record header size
	TagOffset       = 0                         // byte offset of the tag within a header
	LengthOffset    = TagSize                   // byte offset of the length field within a header

	// MaxPayloadLength24 is the largest payload length that survives a
	// write/read cycle when only 3 length bytes are trusted.
	MaxPayloadLength24 = endian.MaxUint24
)
