// maxm1_test.go - Meet-in-the-middle constant-coefficient defense tests.
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

// When maxm1 > 0, the constant coefficient of the masked message polynomial
// (ci, as recovered on decrypt) must be zero, and a full round trip must
// still succeed.
func TestMaxm1ZerosConstantCoefficient(t *testing.T) {
	require := require.New(t)

	p, err := NewParams(401, 2048, 113, 0, 0, 113, 112, 60, 112, OID{0x00, 0x02, 0x05}, false)
	require.NoError(err)

	kp, err := GenerateKeyPair(p, deterministicReader(60))
	require.NoError(err)

	ct, err := Encrypt([]byte("maxm1 scenario"), kp.Pub, p, deterministicReader(61))
	require.NoError(err)

	pt, err := Decrypt(ct, kp, p)
	require.NoError(err)
	require.Equal([]byte("maxm1 scenario"), pt)

	e := fromArr(ct, p.N, p.Q)
	ci := decryptPoly(e, kp.Priv, p.Q)

	require.Equal(int32(0), ci.coeffs[0], "the constant coefficient must be zeroed under maxm1")
}
