// keygen_test.go - Key generation tests.
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

func TestGenerateKeyPairTernary(t *testing.T) {
	require := require.New(t)

	kp, err := GenerateKeyPair(EES401EP2, deterministicReader(10))
	require.NoError(err)
	require.NotNil(kp.Priv.T.Ternary)
	require.Nil(kp.Priv.T.Product)
	require.Len(kp.Pub.H.coeffs, EES401EP2.N)

	// f = 3t+1 must actually be invertible mod Q, reconstructing f's
	// inverse locally since GenerateKeyPair discards it once h is built.
	f := kp.Priv.T.toIntPoly()
	f.scalarMulFac3()
	f.coeffs[0]++
	f.reduceModQ(EES401EP2.Q)

	fq, ok := invertModPow2(f, EES401EP2.Q)
	require.True(ok)

	prod := multFullConvolution(f, fq)
	prod.reduceModQ(EES401EP2.Q)
	require.Equal(int32(1), prod.coeffs[0], "f*Fq must be 1 mod Q at the constant term")
	for i := 1; i < EES401EP2.N; i++ {
		require.Equalf(int32(0), prod.coeffs[i], "f*Fq must vanish at term %d", i)
	}
}

func TestGenerateKeyPairProductForm(t *testing.T) {
	require := require.New(t)

	kp, err := GenerateKeyPair(EES659EP1Product, deterministicReader(11))
	require.NoError(err)
	require.NotNil(kp.Priv.T.Product)
	require.Nil(kp.Priv.T.Ternary)
	require.Len(kp.Priv.T.Product.F1.Ones, EES659EP1Product.Df1)
	require.Len(kp.Priv.T.Product.F2.Ones, EES659EP1Product.Df2)
	require.Len(kp.Priv.T.Product.F3.Ones, EES659EP1Product.Df3)
}

func TestInvertModPow2(t *testing.T) {
	require := require.New(t)

	const n = 11
	const q = uint16(32)
	// The constant polynomial 1 is trivially invertible (its own inverse)
	// for any modulus, exercising the lifting loop without depending on a
	// specific f being invertible mod 2.
	f := newIntPoly(n)
	f.coeffs[0] = 1

	inv, ok := invertModPow2(f, q)
	require.True(ok)

	prod := multFullConvolution(f, inv)
	prod.reduceModQ(q)
	require.Equal(int32(1), prod.coeffs[0])
	for i := 1; i < n; i++ {
		require.Equalf(int32(0), prod.coeffs[i], "term %d", i)
	}
}
