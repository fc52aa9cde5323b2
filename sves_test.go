// sves_test.go - SVES codec round-trip and rejection tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ntru

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSVESRoundTrip(t *testing.T) {
	require := require.New(t)

	for _, skip := range []bool{false, true} {
		p := newIntPoly(64)
		pattern := []int32{1, 0, -1, 1, 1, -1, 0, 0}
		for i := range p.coeffs {
			p.coeffs[i] = pattern[i%len(pattern)]
		}

		data, err := toSVES(p, skip)
		require.NoError(err)

		back := fromSVES(data, 64, skip)

		start := 0
		if skip {
			start = 1
		}
		var end int
		if skip {
			end = (64 - 1) | 1
		} else {
			end = 64 / 2 * 2
		}
		for i := start; i < end; i++ {
			require.Equalf(p.coeffs[i], back.coeffs[i], "coefficient %d (skip=%v)", i, skip)
		}
	}
}

func TestSVESRejectsForbiddenPair(t *testing.T) {
	require := require.New(t)

	// Scenario S5: a ternary polynomial whose first pair is (-1,-1), the
	// one trit combination SVES cannot represent.
	p := &IntPoly{coeffs: []int32{-1, -1, 0, 0, 0, 0}}
	_, err := toSVES(p, false)
	require.ErrorIs(err, ErrInvalidEncoding)
}

func TestSVESAcceptsAllOtherPairs(t *testing.T) {
	require := require.New(t)

	for c1 := int32(-1); c1 <= 1; c1++ {
		for c2 := int32(-1); c2 <= 1; c2++ {
			if c1 == -1 && c2 == -1 {
				continue
			}
			p := &IntPoly{coeffs: []int32{c1, c2, 0, 0}}
			_, err := toSVES(p, false)
			require.NoErrorf(err, "pair (%d,%d) should be representable", c1, c2)
		}
	}
}
