package hash

import (
	"github.com/arloliu/bjevko/endian"
	"github.com/cespare/xxhash/v2"
)

// Digest accumulates an xxHash64 over a stream of records.
//
// Each record is hashed as its tag byte, its payload length (uint32, little-endian)
// and its payload, so two record streams hash equal only when they would encode
// to the same bytes.
type Digest struct {
	d   *xxhash.Digest
	hdr [5]byte
}

// NewDigest creates an empty Digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// WriteRecord feeds one record into the digest.
func (d *Digest) WriteRecord(tag byte, payload []byte) {
	d.hdr[0] = tag
	endian.GetLittleEndianEngine().PutUint32(d.hdr[1:], uint32(len(payload))) //nolint:gosec
	_, _ = d.d.Write(d.hdr[:])
	_, _ = d.d.Write(payload)
}

// Sum64 returns the current hash.
func (d *Digest) Sum64() uint64 {
	return d.d.Sum64()
}
