// intpoly.go - Dense integer polynomials over Z[x]/(x^N-1).
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ntru

import "crypto/subtle"

// IntPoly is a dense polynomial of N coefficients, representing
// coeffs[0] + x*coeffs[1] + ... + x^(N-1)*coeffs[N-1] in Z[x]/(x^N-1).
// The valid coefficient range depends on the stage of the computation it
// represents (ternary, mod-q, centered mod-q, or mod-3); see the callers.
type IntPoly struct {
	coeffs []int32
}

// newIntPoly allocates a zeroed IntPoly of n coefficients.
func newIntPoly(n int) *IntPoly {
	return &IntPoly{coeffs: make([]int32, n)}
}

// clone returns a deep copy of p.
func (p *IntPoly) clone() *IntPoly {
	q := newIntPoly(len(p.coeffs))
	copy(q.coeffs, p.coeffs)
	return q
}

// zero destroys p's contents in place; p must not be used afterwards.
func (p *IntPoly) zero() {
	zeroInt32s(p.coeffs)
}

// add computes p + other, both taken as plain integer polynomials (no
// modular reduction).
func (p *IntPoly) add(other *IntPoly) *IntPoly {
	r := newIntPoly(len(p.coeffs))
	for i := range r.coeffs {
		r.coeffs[i] = p.coeffs[i] + other.coeffs[i]
	}
	return r
}

// sub computes p - other.
func (p *IntPoly) sub(other *IntPoly) *IntPoly {
	r := newIntPoly(len(p.coeffs))
	for i := range r.coeffs {
		r.coeffs[i] = p.coeffs[i] - other.coeffs[i]
	}
	return r
}

// scalarMulFac3 multiplies every coefficient by 3, in place.
func (p *IntPoly) scalarMulFac3() {
	for i := range p.coeffs {
		p.coeffs[i] *= 3
	}
}

// reduceModQ reduces every coefficient into [0, q), in place.
func (p *IntPoly) reduceModQ(q uint16) {
	for i, c := range p.coeffs {
		p.coeffs[i] = modQ(c, q)
	}
}

// reduceCenteredModQ reduces every coefficient into (-q/2, q/2], in place.
func (p *IntPoly) reduceCenteredModQ(q uint16) {
	for i, c := range p.coeffs {
		p.coeffs[i] = centeredModQ(c, q)
	}
}

// reduceMod3 reduces every coefficient into {-1, 0, 1}, in place.
func (p *IntPoly) reduceMod3() {
	for i, c := range p.coeffs {
		p.coeffs[i] = mod3(c)
	}
}

// sumCoeffs returns the sum of p's coefficients, used by the meet-in-the
// middle defense.
func (p *IntPoly) sumCoeffs() int32 {
	var s int32
	for _, c := range p.coeffs {
		s += c
	}
	return s
}

// repetitionWeights counts how many coefficients equal -1, 0, and +1,
// indexed as weights[c+1].
func (p *IntPoly) repetitionWeights() [3]int {
	var w [3]int
	for _, c := range p.coeffs {
		w[c+1]++
	}
	return w
}

// checkRepWeight implements the repetition weight check: every value in
// {-1,0,1} must appear at least dm0 times. The loop runs
// over the full coefficient count regardless of outcome, so its timing
// does not depend on where (or whether) the check fails.
func (p *IntPoly) checkRepWeight(dm0 int) bool {
	w := p.repetitionWeights()
	ok := 1
	for _, c := range w {
		if c < dm0 {
			ok = 0
		}
	}
	return ok == 1
}

// equals reports whether p and other have identical coefficients. Not
// constant-time; for secret-dependent comparisons use constantTimeEquals.
func (p *IntPoly) equals(other *IntPoly) bool {
	if len(p.coeffs) != len(other.coeffs) {
		return false
	}
	for i, c := range p.coeffs {
		if c != other.coeffs[i] {
			return false
		}
	}
	return true
}

// constantTimeEquals reports whether p and other have identical
// coefficients, taking time independent of where they first differ. Used
// for the re-encryption check in Decrypt, which must be a constant-time
// whole-buffer comparison.
func (p *IntPoly) constantTimeEquals(other *IntPoly) bool {
	if len(p.coeffs) != len(other.coeffs) {
		return false
	}
	var diff int32
	for i, c := range p.coeffs {
		diff |= c ^ other.coeffs[i]
	}
	// Fold through crypto/subtle rather than a bespoke OR-into-zero trick,
	// so the comparison goes through an audited constant-time primitive.
	return subtle.ConstantTimeCompare([]byte{byte(diff), byte(diff >> 8), byte(diff >> 16), byte(diff >> 24)}, []byte{0, 0, 0, 0}) == 1
}

// reduceModGeneric reduces every coefficient into [0, m) for an arbitrary
// positive modulus m, in place. Used by the Hensel lift in invert.go, whose
// working modulus grows past Q before the final reduceModQ.
func (p *IntPoly) reduceModGeneric(m int32) {
	for i, c := range p.coeffs {
		p.coeffs[i] = modGeneric(c, m)
	}
}

// multFullConvolution computes the full (unreduced) cyclic convolution of
// a and b in Z[x]/(x^N-1), i.e. (a*b)[k] = sum_j a[j]*b[(k-j) mod N]. This
// is the naive O(N^2) ring multiply used by key generation's inversion
// step; optimized ring multiplication (Karatsuba/NTT) is deliberately not
// attempted here.
func multFullConvolution(a, b *IntPoly) *IntPoly {
	n := len(a.coeffs)
	r := newIntPoly(n)
	for i, ai := range a.coeffs {
		if ai == 0 {
			continue
		}
		for j, bj := range b.coeffs {
			k := i + j
			if k >= n {
				k -= n
			}
			r.coeffs[k] += ai * bj
		}
	}
	return r
}
