package psqt

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes every entry of the table, hand slot included. Two
// builds with identical data produce the same value.
func (vt *VariantTable) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [8]byte

	buf[0] = byte(vt.Variant)
	d.Write(buf[:1])

	for pc := range vt.psq {
		for _, s := range vt.psq[pc] {
			binary.LittleEndian.PutUint64(buf[:], uint64(s))
			d.Write(buf[:])
		}
	}
	return d.Sum64()
}
