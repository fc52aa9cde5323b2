// sampler_test.go - Ternary sampler correctness tests.
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

func TestGenTernPolyWeightsAndDistinctness(t *testing.T) {
	require := require.New(t)

	const n, df = 401, 113
	igf := newIGF([]byte("gen-tern-poly-seed"), n, 64)
	p := genTernPoly(igf, n, df)

	require.Len(p.Ones, df)
	require.Len(p.NegOnes, df)

	seen := make(map[uint16]bool, 2*df)
	for _, idx := range p.Ones {
		require.Falsef(seen[idx], "index %d reused", idx)
		seen[idx] = true
	}
	for _, idx := range p.NegOnes {
		require.Falsef(seen[idx], "index %d reused", idx)
		seen[idx] = true
	}
	require.Len(seen, 2*df)
}

func TestGenTernPolyDeterministic(t *testing.T) {
	require := require.New(t)

	const n, df = 401, 113
	seed := []byte("reproducible-seed")

	a := genTernPoly(newIGF(seed, n, 64), n, df)
	b := genTernPoly(newIGF(seed, n, 64), n, df)

	require.Equal(a.Ones, b.Ones)
	require.Equal(a.NegOnes, b.NegOnes)
}
