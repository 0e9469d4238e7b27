// Package affix implements the flat record layer of the bjevko format.
//
// A buffer is a concatenation of records ("affixes"):
//
//	[tag: 1 signed byte][length: 4 bytes little-endian][payload: length bytes]
//
// The tag is a depth delta. TagOpen (+1) opens a branch and TagClose (-1, byte
// 0xFF) closes one. A buffer holds exactly one top-level tree: decoding stops at
// the first record that brings the running depth to -1, and any byte after that
// record rejects the whole buffer.
//
// # Decoding
//
//	seq, err := affix.Decode(buf)
//	if err != nil {
//	    return err // *errs.DecodeError
//	}
//	for _, a := range seq {
//	    fmt.Println(a.Tag, a.Bytes())
//	}
//
// Decoded payloads are views into buf and are never copied. The caller must keep
// buf alive and unmodified for as long as the sequence is in use.
//
// By default only the low 3 bytes of each length field are trusted on read, while
// the encoder always writes all 4. Payloads of 2^24 bytes or more therefore do not
// survive a round trip unless the decoder is built with
// WithLengthMode(format.LengthMode32).
//
// # Encoding
//
// Encoding is total: any sequence encodes, whether or not its depth bookkeeping
// is well formed.
//
//	buf := affix.Encode(seq)
//
// Both Decoder and Encoder are NOT thread-safe; use one instance per goroutine.
package affix
