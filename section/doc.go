// Package section defines the low-level record layout of the bjevko wire format.
//
// Every record starts with a fixed 5-byte header:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Tag (1 byte, signed)                                    │
//	│  - depth delta: +1 opens a branch, -1 (0xFF) closes one │
//	├─────────────────────────────────────────────────────────┤
//	│ Length (4 bytes, little-endian)                         │
//	│  - always written in full                               │
//	│  - low 3 bytes trusted on read by default               │
//	├─────────────────────────────────────────────────────────┤
//	│ Payload (Length bytes)                                  │
//	└─────────────────────────────────────────────────────────┘
//
// Records are concatenated with no padding, alignment or outer header.
//
// # Length Field Trust
//
// Decoders read the length under a format.LengthMode. With format.LengthMode24 the
// most significant byte is ignored, so a payload of 2^24 bytes or more written by
// RecordHeader.Bytes reads back with a truncated length. format.LengthMode32 reads
// the value as written.
//
// # Usage
//
//	hdr, err := section.ParseRecordHeader(buf[i:], format.LengthMode24)
//	if err != nil {
//	    return err
//	}
//	payload := buf[i+section.HeaderSize : i+section.HeaderSize+int(hdr.Length)]
//
//	out = section.NewRecordHeader(format.TagOpen, len(label)).AppendTo(out)
//	out = append(out, label...)
package section
