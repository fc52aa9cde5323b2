// keygen.go - NTRUEncrypt key pair generation.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ntru

import (
	"io"

	"github.com/pkg/errors"
)

// maxKeyGenAttempts bounds the retry loops for f=3T+1 and g invertibility;
// both have overwhelming odds of success well within this budget (the
// reference implementation retries unconditionally), but an unbounded loop
// would give GenerateKeyPair no way to report a broken random source.
const maxKeyGenAttempts = 1024

// GenerateKeyPair samples a fresh NTRUEncrypt key pair under p using rand
// as the entropy source: a private polynomial T with f=3T+1
// invertible mod Q, and a public polynomial g used to form h=3*g*f^-1 mod Q.
// Ternary or product-form sampling is selected by p.ProdFlag.
func GenerateKeyPair(p Params, rand io.Reader) (*KeyPair, error) {
	t, fq, err := genInvertibleT(p, rand)
	if err != nil {
		return nil, err
	}

	g, err := genG(p, rand)
	if err != nil {
		return nil, err
	}

	h := multPriv(fq, g, p.Q)
	h.scalarMulFac3()
	h.reduceModQ(p.Q)

	// f's inverse and g are only needed to build h; once it is computed
	// they are discarded, matching ntru_clear_int(&fq)/ntru_clear_priv(&g)
	// in the reference implementation.
	fq.zero()
	g.zero()

	return &KeyPair{
		Priv: &EncPrivKey{T: t},
		Pub:  &EncPubKey{H: h, P: p},
	}, nil
}

// genInvertibleT samples a blinding-style private polynomial T (ternary or
// product form, weights Df1/Df2/Df3) and retries until f=3T+1 is invertible
// mod Q, returning T and f's inverse together.
func genInvertibleT(p Params, rand io.Reader) (*PrivPoly, *IntPoly, error) {
	for attempt := 0; attempt < maxKeyGenAttempts; attempt++ {
		seed, err := randomSeed(rand, p.HashSeedLen)
		if err != nil {
			return nil, nil, err
		}
		igf := newIGF(seed, p.N, p.HashSeedLen)

		var t *PrivPoly
		if p.ProdFlag {
			t = &PrivPoly{Product: &ProductPoly{
				F1: genTernPoly(igf, p.N, p.Df1),
				F2: genTernPoly(igf, p.N, p.Df2),
				F3: genTernPoly(igf, p.N, p.Df3),
			}}
		} else {
			t = &PrivPoly{Ternary: genTernPoly(igf, p.N, p.Df1)}
		}

		f := t.toIntPoly()
		f.scalarMulFac3()
		f.coeffs[0]++

		fq, ok := invertModPow2(f, p.Q)
		f.zero()
		zeroBytes(seed)
		if ok {
			return t, fq, nil
		}
	}
	return nil, nil, errors.Wrapf(ErrPRNG, "f=3T+1 not invertible mod Q after %d attempts", maxKeyGenAttempts)
}

// genG samples the public polynomial g, weight N/3 for both signs in
// ternary mode or product-form weights Df1/Df2/Df3 when p.ProdFlag is set,
// carried from the reference implementation's ntru_gen_key_pair. When
// p.CheckGInvertible is set, g is resampled until it is itself invertible
// mod Q.
func genG(p Params, rand io.Reader) (*PrivPoly, error) {
	dg := p.N / 3

	for attempt := 0; attempt < maxKeyGenAttempts; attempt++ {
		seed, err := randomSeed(rand, p.HashSeedLen)
		if err != nil {
			return nil, err
		}
		igf := newIGF(seed, p.N, p.HashSeedLen)

		var g *PrivPoly
		if p.ProdFlag {
			g = &PrivPoly{Product: &ProductPoly{
				F1: genTernPoly(igf, p.N, p.Df1),
				F2: genTernPoly(igf, p.N, p.Df2),
				F3: genTernPoly(igf, p.N, p.Df3),
			}}
		} else {
			g = &PrivPoly{Ternary: genTernPoly(igf, p.N, dg)}
		}

		zeroBytes(seed)
		if !p.CheckGInvertible {
			return g, nil
		}
		if gq, ok := invertModPow2(g.toIntPoly(), p.Q); ok {
			gq.zero()
			return g, nil
		}
	}
	return nil, errors.Wrapf(ErrPRNG, "g not invertible mod Q after %d attempts", maxKeyGenAttempts)
}

// randomSeed draws n bytes (at least 32) from rand for use as an IGF seed.
func randomSeed(rand io.Reader, n int) ([]byte, error) {
	if n < 32 {
		n = 32
	}
	buf := make([]byte, n)
	if err := generateBytes(rand, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
