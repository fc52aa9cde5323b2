// mgf.go - Mask Generation Function.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ntru

import "golang.org/x/crypto/sha3"

// mgf derives a deterministic pseudo-random ternary-valued IntPoly of n
// coefficients from seed (an MGF-1 style mask derivation). It squeezes a
// XOF seeded from the input and folds its output bytes into small
// coefficients; each byte maps to a coefficient in {-1,0,1} via byte%3
// (IEEE 1363.1's MGF-TP-1 construction), rather than a centered binomial
// distribution, because the mask must compose by plain integer addition
// with a ternary plaintext polynomial.
func mgf(seed []byte, n int, squeezeLen int) *IntPoly {
	if squeezeLen < n {
		squeezeLen = n
	}
	xof := sha3.NewShake256()
	xof.Write(seed)

	p := newIntPoly(n)
	buf := make([]byte, squeezeLen)
	filled := 0
	for filled < n {
		if _, err := xof.Read(buf); err != nil {
			panic("ntru: MGF XOF read failed: " + err.Error())
		}
		for _, b := range buf {
			if filled >= n {
				break
			}
			switch b % 3 {
			case 0:
				p.coeffs[filled] = 0
			case 1:
				p.coeffs[filled] = 1
			case 2:
				p.coeffs[filled] = -1
			}
			filled++
		}
	}
	return p
}
