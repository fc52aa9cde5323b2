// igf.go - Index Generation Function.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ntru

import (
	"golang.org/x/crypto/sha3"
)

// igfState is a deterministic, seeded, infinite stream of indices into
// [0, N). It is built on SHAKE-256 and a rejection-sampling bit reader, the
// same squeeze-then-reject pattern used to turn a XOF into
// uniformly-distributed ring coefficients.
type igfState struct {
	n       int
	minBits uint

	xof  sha3.ShakeHash
	buf  []byte
	bitP uint // next bit to consume within buf, from the front
}

// newIGF seeds an igfState from seed, ready to produce indices in [0, n).
func newIGF(seed []byte, n, squeezeLen int) *igfState {
	s := &igfState{
		n:       n,
		minBits: minBitsFor(n),
		xof:     sha3.NewShake256(),
	}
	s.xof.Write(seed)
	s.refill(squeezeLen)
	return s
}

func minBitsFor(n int) uint {
	var bits uint
	for (1 << bits) < n {
		bits++
	}
	return bits
}

func (s *igfState) refill(n int) {
	if n < 8 {
		n = 8
	}
	chunk := make([]byte, n)
	if _, err := s.xof.Read(chunk); err != nil {
		// sha3.ShakeHash.Read never errors; this is unreachable in
		// practice, but a panic here beats silently truncating the
		// index stream.
		panic("ntru: IGF XOF read failed: " + err.Error())
	}
	s.buf = append(s.buf, chunk...)
}

// next draws the next index in [0, n) from the stream, discarding any
// out-of-range draws (rejection sampling) and refilling the underlying XOF
// buffer as needed. The stream never terminates.
func (s *igfState) next() uint16 {
	for {
		for uint(len(s.buf))*8-s.bitP < s.minBits {
			s.refill(8)
		}
		val := s.readBits(s.minBits)
		if int(val) < s.n {
			return val
		}
	}
}

// readBits consumes the next nbits bits (LSB-first within each byte, bytes
// in stream order) from s.buf, advancing bitP and compacting consumed
// bytes out of the buffer.
func (s *igfState) readBits(nbits uint) uint16 {
	var val uint16
	for i := uint(0); i < nbits; i++ {
		byteIdx := (s.bitP + i) / 8
		bitIdx := (s.bitP + i) % 8
		bit := (s.buf[byteIdx] >> bitIdx) & 1
		val |= uint16(bit) << i
	}
	s.bitP += nbits

	// Compact fully-consumed leading bytes.
	consumedBytes := s.bitP / 8
	if consumedBytes > 0 {
		s.buf = s.buf[consumedBytes:]
		s.bitP -= consumedBytes * 8
	}
	return val
}
