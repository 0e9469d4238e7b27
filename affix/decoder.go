package affix

import (
	"errors"

	"github.com/arloliu/bjevko/errs"
	"github.com/arloliu/bjevko/internal/options"
	"github.com/arloliu/bjevko/section"
	"go.uber.org/zap"
)

// initialSequenceCapacity caps the up-front allocation for decoded sequences.
const initialSequenceCapacity = 64

// Decoder splits an encoded buffer into its affix sequence.
//
// Note: The Decoder is NOT thread-safe. Each decoder instance should be used by a single goroutine at a time.
type Decoder struct {
	data []byte
	cfg  *DecoderConfig
}

// NewDecoder creates a new Decoder for the given encoded data.
//
// Parameters:
//   - data: Encoded buffer; decoded payloads borrow from it
//   - opts: Optional configuration (see DecoderOption)
//
// Returns:
//   - *Decoder: New decoder instance
//   - error: ErrInvalidOption if an option is rejected
func NewDecoder(data []byte, opts ...DecoderOption) (*Decoder, error) {
	cfg := newDecoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Decoder{data: data, cfg: cfg}, nil
}

// Decode reads records until the running depth reaches -1.
//
// Each record contributes its signed tag to the running depth. The record that
// brings the depth to exactly -1 terminates the sequence; the buffer must end
// right after it. A buffer that ends on a record boundary while the depth is
// still positive fails with KindUnclosedDepth, counting the missing closers.
//
// Returns:
//   - Sequence: the decoded affixes, viewing into the decoder's buffer
//   - error: a *errs.DecodeError of kind KindTruncatedInput, KindTrailingBytes
//     or KindUnclosedDepth. No partial sequence is returned on error.
func (d *Decoder) Decode() (Sequence, error) {
	seq, err := d.decode()
	if err != nil {
		var de *errs.DecodeError
		if errors.As(err, &de) {
			d.cfg.logger.Debug("rejected buffer",
				zap.Stringer("kind", de.Kind),
				zap.Int("offset", de.Offset),
				zap.Int("count", de.Count),
				zap.Int("size", len(d.data)))
		}

		return nil, err
	}

	d.cfg.logger.Debug("decoded buffer",
		zap.Int("records", len(seq)),
		zap.Int("size", len(d.data)),
		zap.Stringer("length_mode", d.cfg.lengthMode))

	return seq, nil
}

func (d *Decoder) decode() (Sequence, error) {
	length := len(d.data)
	seq := make(Sequence, 0, min(length/section.HeaderSize, initialSequenceCapacity))

	i := 0
	depth := 0
	var hdr section.RecordHeader
	for i < length {
		if err := hdr.Parse(d.data[i:], d.cfg.lengthMode); err != nil {
			return nil, atOffset(err, i)
		}
		i += section.HeaderSize

		remaining := uint64(length - i)
		if uint64(hdr.Length) > remaining {
			return nil, errs.Truncated(i, int(uint64(hdr.Length)-remaining)) //nolint:gosec
		}
		n := int(hdr.Length)

		seq = append(seq, Affix{
			Tag:     hdr.Tag,
			Payload: View{src: d.data, off: i, n: n},
		})
		i += n

		depth += hdr.Tag.Delta()
		if depth == -1 {
			break
		}
	}

	switch {
	case depth == -1 && i < length:
		return nil, errs.Trailing(i, length-i)
	case depth > 0:
		return nil, errs.Unclosed(i, depth)
	case depth != -1:
		// Empty input, or input that ends balanced or below -1: the next header is missing.
		return nil, errs.Truncated(i, section.HeaderSize)
	}

	return seq, nil
}

// atOffset rebases a header decode error, which is relative to the header start, onto the buffer.
func atOffset(err error, offset int) error {
	var de *errs.DecodeError
	if errors.As(err, &de) {
		return de.At(offset)
	}

	return err
}

// Decode decodes data with a one-shot Decoder.
//
// Parameters:
//   - data: Encoded buffer; decoded payloads borrow from it
//   - opts: Optional configuration (see DecoderOption)
//
// Returns:
//   - Sequence: the decoded affixes
//   - error: ErrInvalidOption or a *errs.DecodeError
func Decode(data []byte, opts ...DecoderOption) (Sequence, error) {
	d, err := NewDecoder(data, opts...)
	if err != nil {
		return nil, err
	}

	return d.Decode()
}
