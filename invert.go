// invert.go - Polynomial inversion in Z[x]/(x^N-1) mod a power of two.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ntru

// invertModPow2 computes f^-1 mod (x^N-1, q) for q a power of two, or
// reports ok=false if f is not invertible. It first inverts f mod 2 using
// the GF(2) extended Euclidean algorithm (gf2poly.go), then lifts that
// inverse through successive squarings of the modulus via Newton's
// iteration b_{i+1} = b_i*(2 - f*b_i) mod 2^(2^(i+1)), stopping once the
// working modulus reaches q. This mirrors ntru_invert_q in the reference C
// implementation, using the portable full convolution rather than a
// specialized routine.
func invertModPow2(f *IntPoly, q uint16) (inv *IntPoly, ok bool) {
	n := len(f.coeffs)

	b2, invertible := invModGf2(gf2FromIntPoly(f), n)
	if !invertible {
		return nil, false
	}

	b := gf2ToIntPoly(b2, n)

	two := newIntPoly(n)
	two.coeffs[0] = 2

	// have is the modulus b is currently known correct against; each round
	// squares it, doubling the number of correct bits, until it reaches Q.
	for have := int32(2); have < int32(q); {
		mod := have * have

		fb := multFullConvolution(f, b)
		fb.reduceModGeneric(mod)

		twoMinusFb := two.sub(fb)
		twoMinusFb.reduceModGeneric(mod)

		b = multFullConvolution(b, twoMinusFb)
		b.reduceModGeneric(mod)

		have = mod
	}

	b.reduceModQ(q)
	return b, true
}

// gf2ToIntPoly lifts a mod-2 polynomial into an IntPoly with 0/1
// coefficients, zero-padded to n terms.
func gf2ToIntPoly(g gf2Poly, n int) *IntPoly {
	p := newIntPoly(n)
	for i := 0; i < n; i++ {
		p.coeffs[i] = int32(g.bit(i))
	}
	return p
}
