package section

import (
	"fmt"

	"github.com/arloliu/bjevko/endian"
	"github.com/arloliu/bjevko/errs"
	"github.com/arloliu/bjevko/format"
)

// RecordHeader is the fixed 5-byte prefix of every record.
type RecordHeader struct {
	// Tag is the signed depth marker. byte offset 0
	Tag format.Tag
	// Length is the payload length as read under the active LengthMode. byte offset 1-4
	Length uint32
}

// NewRecordHeader creates a header for a payload of the given length.
func NewRecordHeader(tag format.Tag, length int) RecordHeader {
	return RecordHeader{Tag: tag, Length: uint32(length)} //nolint:gosec
}

// Parse parses the header from a byte slice.
//
// With format.LengthMode24 only the low 3 bytes of the length field are read; the
// most significant byte is ignored. format.LengthMode32 reads all 4 bytes.
//
// Parameters:
//   - data: Byte slice starting at the header (at least HeaderSize bytes)
//   - mode: Length field trust mode
//
// Returns:
//   - error: a KindTruncatedInput *errs.DecodeError if data is shorter than HeaderSize,
//     or ErrInvalidOption for an unknown mode
//
// The error offset is relative to data, so it is always 0; callers parsing from
// inside a larger buffer rebase it with errs.DecodeError.At.
func (h *RecordHeader) Parse(data []byte, mode format.LengthMode) error {
	if len(data) < HeaderSize {
		return errs.Truncated(0, HeaderSize-len(data))
	}

	h.Tag = format.TagFromByte(data[TagOffset])

	field := data[LengthOffset : LengthOffset+LengthFieldSize]
	switch mode {
	case format.LengthMode24:
		h.Length = endian.Uint24(field[:TrustedLength24])
	case format.LengthMode32:
		h.Length = endian.GetLittleEndianEngine().Uint32(field)
	default:
		return fmt.Errorf("%w: length mode %s", errs.ErrInvalidOption, mode)
	}

	return nil
}

// Bytes serializes the header into a new HeaderSize byte slice.
// The length field is always written in full.
func (h RecordHeader) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to buf and returns the extended slice.
func (h RecordHeader) AppendTo(buf []byte) []byte {
	buf = append(buf, h.Tag.Byte())

	return endian.GetLittleEndianEngine().AppendUint32(buf, h.Length)
}

// ParseRecordHeader parses a RecordHeader from a byte slice.
//
// Parameters:
//   - data: Byte slice starting at the header (at least HeaderSize bytes)
//   - mode: Length field trust mode
//
// Returns:
//   - RecordHeader: Parsed header
//   - error: see RecordHeader.Parse
func ParseRecordHeader(data []byte, mode format.LengthMode) (RecordHeader, error) {
	h := RecordHeader{}
	if err := h.Parse(data, mode); err != nil {
		return RecordHeader{}, err
	}

	return h, nil
}
