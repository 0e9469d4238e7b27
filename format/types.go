package format

import "strconv"

type (
	// Tag is the signed marker byte leading every record. Its value is the depth
	// delta contributed by the record.
	Tag int8

	// LengthMode selects how many bytes of the 4-byte length field are trusted on read.
	LengthMode uint8
)

const (
	TagOpen  Tag = 1  // TagOpen opens a branch: one more closer is required later.
	TagClose Tag = -1 // TagClose closes a branch or terminates the top-level tree (byte 0xFF).

	LengthMode24 LengthMode = 0x1 // LengthMode24 trusts the low 3 bytes of the length field.
	LengthMode32 LengthMode = 0x2 // LengthMode32 trusts all 4 bytes of the length field.
)

// TagFromByte interprets b as a signed tag.
func TagFromByte(b byte) Tag {
	return Tag(int8(b)) //nolint:gosec
}

// Byte returns the wire representation of t.
func (t Tag) Byte() byte {
	return byte(t)
}

// Delta returns the depth change contributed by t.
func (t Tag) Delta() int {
	return int(t)
}

// IsOpen reports whether t opens a nested branch.
func (t Tag) IsOpen() bool {
	return t == TagOpen
}

func (t Tag) String() string {
	switch t {
	case TagOpen:
		return "Open"
	case TagClose:
		return "Close"
	default:
		return "Tag(" + strconv.Itoa(int(t)) + ")"
	}
}

// Valid reports whether m is a known length mode.
func (m LengthMode) Valid() bool {
	return m == LengthMode24 || m == LengthMode32
}

func (m LengthMode) String() string {
	switch m {
	case LengthMode24:
		return "24bit"
	case LengthMode32:
		return "32bit"
	default:
		return "Unknown"
	}
}
