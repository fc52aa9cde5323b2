// arr.go - Byte encodings for mod-q and mod-4 polynomial coefficients.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ntru

// toArr packs p's coefficients (each assumed to be in [0, q)) into a
// little-endian bit stream using exactly log2(q) bits per coefficient.
// This is the encoding used for both public keys and ciphertexts.
func toArr(p *IntPoly, q uint16) []byte {
	bits := log2Q(q)
	n := len(p.coeffs)
	out := make([]byte, (n*bits+7)/8)

	pos := uint(0)
	for _, c := range p.coeffs {
		v := uint32(c)
		for b := 0; b < bits; b++ {
			if v&(1<<uint(b)) != 0 {
				out[pos/8] |= 1 << (pos % 8)
			}
			pos++
		}
	}
	return out
}

// fromArr is the inverse of toArr: it unpacks n coefficients of log2(q)
// bits each from data into an IntPoly with coefficients in [0, q).
func fromArr(data []byte, n int, q uint16) *IntPoly {
	bits := log2Q(q)
	p := newIntPoly(n)

	pos := uint(0)
	for i := 0; i < n; i++ {
		var v uint32
		for b := 0; b < bits; b++ {
			byteIdx := pos / 8
			if int(byteIdx) < len(data) && data[byteIdx]&(1<<(pos%8)) != 0 {
				v |= 1 << uint(b)
			}
			pos++
		}
		p.coeffs[i] = int32(v)
	}
	return p
}

// toArr4 packs each coefficient's low two bits (coefficient mod 4) into a
// little-endian bit stream, two bits per coefficient. This feeds the mask
// generation function.
func toArr4(p *IntPoly) []byte {
	n := len(p.coeffs)
	out := make([]byte, (2*n+7)/8)

	pos := uint(0)
	for _, c := range p.coeffs {
		v := uint32(c) & 3
		for b := 0; b < 2; b++ {
			if v&(1<<uint(b)) != 0 {
				out[pos/8] |= 1 << (pos % 8)
			}
			pos++
		}
	}
	return out
}
