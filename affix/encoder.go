package affix

import (
	"io"

	"github.com/arloliu/bjevko/internal/pool"
	"github.com/arloliu/bjevko/section"
)

// Encoder serializes affixes into a pooled byte buffer.
//
// Each affix is written as its tag byte, the payload length as a full 4-byte
// little-endian integer, then the payload bytes copied from its view. The encoder
// does not check depth bookkeeping.
//
// Note: The Encoder is NOT thread-safe.
type Encoder struct {
	buf   *pool.ByteBuffer
	count int
}

// NewEncoder creates a new Encoder backed by a pooled buffer.
// Call Reset when done to return the buffer to the pool.
func NewEncoder() *Encoder {
	return &Encoder{buf: pool.GetEncodeBuffer()}
}

func (e *Encoder) ensureBuffer() {
	if e.buf == nil {
		e.buf = pool.GetEncodeBuffer()
	}
}

// Write appends one affix.
func (e *Encoder) Write(a Affix) {
	e.ensureBuffer()
	e.buf.Grow(a.EncodedSize())
	e.write(a)
}

// WriteSlice appends all affixes of seq in order, growing the buffer once.
func (e *Encoder) WriteSlice(seq Sequence) {
	e.ensureBuffer()
	e.buf.Grow(seq.EncodedSize())
	for _, a := range seq {
		e.write(a)
	}
}

func (e *Encoder) write(a Affix) {
	payload := a.Payload.Bytes()
	e.buf.B = section.NewRecordHeader(a.Tag, len(payload)).AppendTo(e.buf.B)
	e.buf.MustWrite(payload)
	e.count++
}

// Bytes returns the encoded data.
//
// The returned slice shares the underlying buffer with the encoder and is only
// valid until the next Write or Reset. Use Finish for an owned copy.
func (e *Encoder) Bytes() []byte {
	if e.buf == nil {
		return nil
	}

	return e.buf.Bytes()
}

// Finish returns an owned copy of the encoded data.
func (e *Encoder) Finish() []byte {
	out := make([]byte, e.Size())
	copy(out, e.Bytes())

	return out
}

// WriteTo writes the encoded data to w.
func (e *Encoder) WriteTo(w io.Writer) (int64, error) {
	if e.buf == nil {
		return 0, nil
	}

	return e.buf.WriteTo(w)
}

// Len returns the number of affixes written since the last Reset.
func (e *Encoder) Len() int {
	return e.count
}

// Size returns the number of encoded bytes since the last Reset.
func (e *Encoder) Size() int {
	if e.buf == nil {
		return 0
	}

	return e.buf.Len()
}

// Reset clears the encoder state and returns the buffer to the pool.
// The encoder acquires a fresh buffer on the next Write.
func (e *Encoder) Reset() {
	if e.buf != nil {
		pool.PutEncodeBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// Encode serializes seq into a newly allocated buffer.
//
// Encode never fails. For a sequence decoded from b with all payloads shorter
// than 2^24 bytes, Encode reproduces b exactly.
func Encode(seq Sequence) []byte {
	e := NewEncoder()
	defer e.Reset()

	e.WriteSlice(seq)

	return e.Finish()
}
