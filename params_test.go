// params_test.go - Parameter set validation and derived-length tests.
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

func TestMaxMsgLenBoundary(t *testing.T) {
	require := require.New(t)

	maxLen, err := EES401EP2.MaxMsgLen()
	require.NoError(err)
	require.Equal(60, maxLen)

	kp, err := GenerateKeyPair(EES401EP2, deterministicReader(1))
	require.NoError(err)

	msg := make([]byte, maxLen)
	_, err = Encrypt(msg, kp.Pub, EES401EP2, deterministicReader(2))
	require.NoError(err, "msg_len == max_msg_len must be accepted")

	tooLong := make([]byte, maxLen+1)
	_, err = Encrypt(tooLong, kp.Pub, EES401EP2, deterministicReader(3))
	require.ErrorIs(err, ErrMsgTooLong)
}

func TestNewParamsRejectsInvalid(t *testing.T) {
	require := require.New(t)

	_, err := NewParams(400, 2048, 113, 0, 0, 113, 112, 0, 112, OID{}, false)
	require.ErrorIs(err, ErrInvalidParams, "even N must be rejected")

	_, err = NewParams(401, 2047, 113, 0, 0, 113, 112, 0, 112, OID{}, false)
	require.ErrorIs(err, ErrInvalidParams, "non-power-of-two Q must be rejected")

	_, err = NewParams(401, 2048, 113, 0, 0, 113, 111, 0, 112, OID{}, false)
	require.ErrorIs(err, ErrInvalidParams, "Db not a multiple of 8 must be rejected")
}

func TestEncLen(t *testing.T) {
	require := require.New(t)
	require.Equal((401*11+7)/8, EES401EP2.EncLen())
}
