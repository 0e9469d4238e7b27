package affix

import (
	"bytes"

	"github.com/arloliu/bjevko/format"
	"github.com/arloliu/bjevko/section"
)

// View is a borrowed sub-range of a source buffer.
//
// The zero value is an empty view.
type View struct {
	src []byte
	off int
	n   int
}

// NewView returns a view over the whole of b.
func NewView(b []byte) View {
	return View{src: b, n: len(b)}
}

// Bytes returns the viewed bytes without copying.
// The returned slice has its capacity clipped to the view.
func (v View) Bytes() []byte {
	if v.src == nil {
		return nil
	}

	return v.src[v.off : v.off+v.n : v.off+v.n]
}

// Offset returns the start of the view within its source buffer.
func (v View) Offset() int {
	return v.off
}

// Len returns the number of viewed bytes.
func (v View) Len() int {
	return v.n
}

// Equal reports whether v and other view the same bytes, regardless of source buffer.
func (v View) Equal(other View) bool {
	return bytes.Equal(v.Bytes(), other.Bytes())
}

// Affix is one decoded record.
type Affix struct {
	Tag     format.Tag
	Payload View
}

// New creates an affix with the given tag viewing the whole payload.
func New(tag format.Tag, payload []byte) Affix {
	return Affix{Tag: tag, Payload: NewView(payload)}
}

// Open creates an opening affix.
func Open(payload []byte) Affix {
	return New(format.TagOpen, payload)
}

// Close creates a closing affix.
func Close(payload []byte) Affix {
	return New(format.TagClose, payload)
}

// Bytes returns the payload bytes without copying.
func (a Affix) Bytes() []byte {
	return a.Payload.Bytes()
}

// Delta returns the depth change contributed by the affix.
func (a Affix) Delta() int {
	return a.Tag.Delta()
}

// EncodedSize returns the number of bytes the affix occupies on the wire.
func (a Affix) EncodedSize() int {
	return section.HeaderSize + a.Payload.Len()
}

// Equal reports whether a and other carry the same tag and payload bytes.
func (a Affix) Equal(other Affix) bool {
	return a.Tag == other.Tag && a.Payload.Equal(other.Payload)
}

// Sequence is an ordered list of affixes, as produced by one decode call.
type Sequence []Affix

// Len returns the number of affixes.
func (s Sequence) Len() int {
	return len(s)
}

// Equal reports whether s and other hold pairwise equal affixes.
func (s Sequence) Equal(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if !s[i].Equal(other[i]) {
			return false
		}
	}

	return true
}

// Depth returns the running depth after the last affix.
func (s Sequence) Depth() int {
	depth := 0
	for _, a := range s {
		depth += a.Delta()
	}

	return depth
}

// Terminated reports whether the running depth first reaches -1 exactly at the
// last affix, which is the shape every successfully decoded sequence has.
func (s Sequence) Terminated() bool {
	depth := 0
	for i, a := range s {
		depth += a.Delta()
		if depth == -1 {
			return i == len(s)-1
		}
	}

	return false
}

// PayloadSize returns the sum of all payload lengths.
func (s Sequence) PayloadSize() int {
	total := 0
	for _, a := range s {
		total += a.Payload.Len()
	}

	return total
}

// EncodedSize returns the number of bytes Encode produces for s.
func (s Sequence) EncodedSize() int {
	return len(s)*section.HeaderSize + s.PayloadSize()
}
