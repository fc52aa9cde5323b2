// encrypt_decrypt_test.go - End-to-end Encrypt/Decrypt scenarios.
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

// S1: a short message round-trips under the ternary preset with a fixed
// deterministic RNG seed.
func TestRoundTripHello(t *testing.T) {
	require := require.New(t)

	kp, err := GenerateKeyPair(EES401EP2, deterministicReader(20))
	require.NoError(err)

	ct, err := Encrypt([]byte("Hello"), kp.Pub, EES401EP2, deterministicReader(21))
	require.NoError(err)
	require.Len(ct, EES401EP2.EncLen())

	pt, err := Decrypt(ct, kp, EES401EP2)
	require.NoError(err)
	require.Equal([]byte("Hello"), pt)
}

// S2: the empty message round-trips to an empty plaintext.
func TestRoundTripEmpty(t *testing.T) {
	require := require.New(t)

	kp, err := GenerateKeyPair(EES401EP2, deterministicReader(22))
	require.NoError(err)

	ct, err := Encrypt(nil, kp.Pub, EES401EP2, deterministicReader(23))
	require.NoError(err)

	pt, err := Decrypt(ct, kp, EES401EP2)
	require.NoError(err)
	require.Empty(pt)
}

// S3: flipping any single ciphertext bit must not decrypt successfully.
func TestBitFlipFailsDecrypt(t *testing.T) {
	require := require.New(t)

	kp, err := GenerateKeyPair(EES401EP2, deterministicReader(24))
	require.NoError(err)

	ct, err := Encrypt([]byte("flip me"), kp.Pub, EES401EP2, deterministicReader(25))
	require.NoError(err)

	flipped := make([]byte, len(ct))
	copy(flipped, ct)
	flipped[0] ^= 0x01

	_, err = Decrypt(flipped, kp, EES401EP2)
	require.Error(err, "a single flipped bit must not decrypt successfully")
}

// S6: product-form parameters round-trip.
func TestRoundTripProductForm(t *testing.T) {
	require := require.New(t)

	kp, err := GenerateKeyPair(EES659EP1Product, deterministicReader(30))
	require.NoError(err)

	ct, err := Encrypt([]byte("product form"), kp.Pub, EES659EP1Product, deterministicReader(31))
	require.NoError(err)

	pt, err := Decrypt(ct, kp, EES659EP1Product)
	require.NoError(err)
	require.Equal([]byte("product form"), pt)
}

// Repetition weight: every ciphertext Encrypt returns under a dm0>0
// parameter set must decrypt to a ci satisfying the repetition weight
// check, for many independent random seeds.
func TestRepetitionWeightAlwaysSatisfied(t *testing.T) {
	require := require.New(t)

	kp, err := GenerateKeyPair(EES401EP2, deterministicReader(40))
	require.NoError(err)

	for i := byte(0); i < 8; i++ {
		ct, err := Encrypt([]byte("weight check"), kp.Pub, EES401EP2, deterministicReader(41+i))
		require.NoError(err)

		e := fromArr(ct, EES401EP2.N, EES401EP2.Q)
		ci := decryptPoly(e, kp.Priv, EES401EP2.Q)
		require.True(ci.checkRepWeight(EES401EP2.Dm0), "decrypted ci must satisfy the repetition weight check")
	}
}

// S4: a decoded padded record with a non-zero byte after the plaintext
// must be rejected with ErrNoZeroPad, independent of the rest of the
// decrypt pipeline.
func TestNonZeroPaddingRejected(t *testing.T) {
	require := require.New(t)

	p := EES401EP2
	cM := make([]byte, (p.N*3/2+7)/8+1)
	cM[p.Db/8] = 5 // cl = 5, well under MaxMsgLen
	ptStart := p.Db/8 + 1
	cM[ptStart+5] = 0x01 // first pad byte after the plaintext is non-zero

	_, _, err := unpadRecord(cM, p)
	require.ErrorIs(err, ErrNoZeroPad)
}

// Decrypting under an unrelated key pair must fail, never silently
// succeed with garbage plaintext.
func TestDecryptWithWrongKeyFails(t *testing.T) {
	require := require.New(t)

	kpA, err := GenerateKeyPair(EES401EP2, deterministicReader(50))
	require.NoError(err)
	kpB, err := GenerateKeyPair(EES401EP2, deterministicReader(51))
	require.NoError(err)

	ct, err := Encrypt([]byte("for A only"), kpA.Pub, EES401EP2, deterministicReader(52))
	require.NoError(err)

	_, err = Decrypt(ct, kpB, EES401EP2)
	require.Error(err)
}
