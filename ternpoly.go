// ternpoly.go - Sparse ternary and product-form polynomials.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ntru

// TernPoly is a sparse ternary polynomial: Ones and NegOnes list the
// (distinct, disjoint) indices of the +1 and -1 coefficients in [0, N);
// every other coefficient is implicitly zero.
type TernPoly struct {
	N       int
	Ones    []uint16
	NegOnes []uint16
}

func newTernPoly(n, numOnes, numNegOnes int) *TernPoly {
	return &TernPoly{
		N:       n,
		Ones:    make([]uint16, 0, numOnes),
		NegOnes: make([]uint16, 0, numNegOnes),
	}
}

// zero destroys t's contents in place.
func (t *TernPoly) zero() {
	zeroUint16s(t.Ones)
	zeroUint16s(t.NegOnes)
}

// toIntPoly materializes t as a dense IntPoly with coefficients in
// {-1, 0, 1}.
func (t *TernPoly) toIntPoly() *IntPoly {
	p := newIntPoly(t.N)
	for _, idx := range t.Ones {
		p.coeffs[idx] = 1
	}
	for _, idx := range t.NegOnes {
		p.coeffs[idx] = -1
	}
	return p
}

// ProductPoly is a product-form polynomial f1*f2+f3, used in place of a
// single (denser) ternary polynomial to keep sparse multiplication cheap
// at larger N.
type ProductPoly struct {
	F1, F2, F3 *TernPoly
}

func (pp *ProductPoly) zero() {
	pp.F1.zero()
	pp.F2.zero()
	pp.F3.zero()
}

// PrivPoly is a tagged union: exactly one of Ternary or Product is
// non-nil, selected by Params.ProdFlag. Every consumer (multiplication,
// inversion, sampling) dispatches on which field is set, rather than
// modeling this as an interface hierarchy.
type PrivPoly struct {
	Ternary *TernPoly
	Product *ProductPoly
}

func (pp *PrivPoly) zero() {
	if pp.Ternary != nil {
		pp.Ternary.zero()
	}
	if pp.Product != nil {
		pp.Product.zero()
	}
}

// toIntPoly materializes the PrivPoly's dense integer value: the ternary
// polynomial itself for the Ternary variant, or the algebraic sum
// f1*f2+f3 for the Product variant (not resampled back into {-1,0,1}).
// Used by key generation to form f = 3t+1 and by inversion.
func (pp *PrivPoly) toIntPoly() *IntPoly {
	if pp.Ternary != nil {
		return pp.Ternary.toIntPoly()
	}
	// For product-form t, f = 3t+1 where t = f1*f2+f3; the dense value of
	// t itself is f1*f2+f3 evaluated in the ring.
	f1 := pp.Product.F1.toIntPoly()
	prod := multTernaryDense(f1, pp.Product.F2)
	f3 := pp.Product.F3.toIntPoly()
	return prod.add(f3)
}

// multTernaryDense computes a*t where a is dense and t is sparse ternary,
// reduced modulo x^N-1 (no coefficient-modulus reduction). For each output
// position k, (a*t)[k] = sum_{idx in Ones} a[(k-idx) mod N] -
// sum_{idx in NegOnes} a[(k-idx) mod N], the standard sparse-by-dense
// convolution used throughout NTRU implementations to avoid the full
// O(N^2) multiply when one operand is ternary.
func multTernaryDense(a *IntPoly, t *TernPoly) *IntPoly {
	n := len(a.coeffs)
	r := newIntPoly(n)
	for _, idx := range t.Ones {
		shiftAddInto(r.coeffs, a.coeffs, int(idx), 1)
	}
	for _, idx := range t.NegOnes {
		shiftAddInto(r.coeffs, a.coeffs, int(idx), -1)
	}
	return r
}

// shiftAddInto adds sign*a[(k-shift) mod n] into dst[k] for every k.
func shiftAddInto(dst, a []int32, shift int, sign int32) {
	n := len(a)
	for k := 0; k < n; k++ {
		j := k - int(shift)
		if j < 0 {
			j += n
		}
		dst[k] += sign * a[j]
	}
}

// multTernary computes a*t mod q, the Ternary-variant ring multiply used
// by both Encrypt and Decrypt.
func multTernary(a *IntPoly, t *TernPoly, q uint16) *IntPoly {
	r := multTernaryDense(a, t)
	r.reduceModQ(q)
	return r
}

// multProduct computes a*(f1*f2+f3) mod q = ((a*f1)*f2 + a*f3) mod q, the
// Product-variant ring multiply used by both Encrypt and Decrypt.
func multProduct(a *IntPoly, pp *ProductPoly, q uint16) *IntPoly {
	af1 := multTernaryDense(a, pp.F1)
	af1f2 := multTernaryDense(af1, pp.F2)
	af3 := multTernaryDense(a, pp.F3)
	r := af1f2.add(af3)
	r.reduceModQ(q)
	return r
}

// multPriv dispatches to multTernary or multProduct depending on which
// variant of priv is populated.
func multPriv(a *IntPoly, priv *PrivPoly, q uint16) *IntPoly {
	if priv.Ternary != nil {
		return multTernary(a, priv.Ternary, q)
	}
	return multProduct(a, priv.Product, q)
}
