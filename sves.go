// sves.go - SVES ternary-polynomial <-> byte codec (IEEE 1363.1 §9.2.2/9.2.3).
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ntru

// Encoding tables, indexed by j = (c1+1)*3 + (c2+1) for a trit pair
// (c1,c2); index 0 ((-1,-1)) is the forbidden pair and its entries are
// never read.
var svesBit1 = [9]byte{1, 1, 1, 0, 0, 0, 1, 0, 1}
var svesBit2 = [9]byte{1, 1, 1, 1, 0, 0, 0, 1, 0}
var svesBit3 = [9]byte{1, 0, 1, 0, 0, 1, 1, 1, 0}

// Decoding tables, indexed by the 3-bit value read back from the stream
// (bits taken in reverse order, see fromSVES).
var svesCoeff1 = [8]int32{0, 0, 0, 1, 1, 1, -1, -1}
var svesCoeff2 = [8]int32{0, 1, -1, 0, 1, -1, 0, 1}

// fromSVES decodes an SVES-encoded byte array into an IntPoly of n
// coefficients. It consumes full 24-bit chunks of data
// three bits at a time, filling coefficients starting at index 1 if skip
// is set (else index 0), and stops once the next index to fill is n-1 or
// higher (so coefficient n-1 is only written when skip is set and n is
// odd, as the last of a pair); any remaining coefficients (including the dropped constant coefficient
// when skip is set) are left zero. Mirrors ntru_from_sves in the
// reference C implementation exactly, including its bit-reversal of the
// 3-bit table index.
func fromSVES(data []byte, n int, skip bool) *IntPoly {
	p := newIntPoly(n)

	coeffIdx := 0
	if skip {
		coeffIdx = 1
	}

	fullChunks := len(data) / 3 * 3
	for i := 0; i < fullChunks && coeffIdx < n-1; i += 3 {
		chunk := int32(data[i]) | int32(data[i+1])<<8 | int32(data[i+2])<<16

		for j := 0; j < 8 && coeffIdx < n-1; j++ {
			idx := ((chunk & 1) << 2) + (chunk & 2) + ((chunk & 4) >> 2)
			p.coeffs[coeffIdx] = svesCoeff1[idx]
			coeffIdx++
			p.coeffs[coeffIdx] = svesCoeff2[idx]
			coeffIdx++
			chunk >>= 3
		}
	}
	for coeffIdx < n {
		p.coeffs[coeffIdx] = 0
		coeffIdx++
	}
	return p
}

// toSVES encodes a ternary IntPoly into an SVES byte array. Coefficient
// pairs in [start, end) are packed three bits at a
// time, LSB-first within each output byte; start is 1 if skip (the
// constant coefficient is dropped), else 0. end is (n-1)|1 when skip (so
// an even number of coefficients remain after dropping index 0) or
// n/2*2 otherwise (the top coefficient is dropped when n is odd). Returns
// ErrInvalidEncoding if any processed pair is (-1,-1), the one trit
// combination SVES cannot represent.
func toSVES(p *IntPoly, skip bool) ([]byte, error) {
	n := len(p.coeffs)
	numBits := (n*3 + 1) / 2
	data := make([]byte, (numBits+7)/8)

	start := 0
	if skip {
		start = 1
	}
	var end int
	if skip {
		end = (n - 1) | 1
	} else {
		end = n / 2 * 2
	}

	bitIdx := uint(0)
	byteIdx := 0
	for i := start; i < end; {
		c1 := p.coeffs[i] + 1
		i++
		c2 := p.coeffs[i] + 1
		i++
		if c1 == 0 && c2 == 0 {
			return nil, ErrInvalidEncoding
		}
		tblIdx := c1*3 + c2
		bits := [3]byte{svesBit1[tblIdx], svesBit2[tblIdx], svesBit3[tblIdx]}
		for _, bit := range bits {
			data[byteIdx] |= bit << bitIdx
			if bitIdx == 7 {
				bitIdx = 0
				byteIdx++
			} else {
				bitIdx++
			}
		}
	}
	return data, nil
}
