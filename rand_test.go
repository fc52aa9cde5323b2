// rand_test.go - Deterministic randomness source for tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ntru

import "golang.org/x/crypto/sha3"

// deterministicReader returns an io.Reader producing a reproducible,
// seed-dependent byte stream, standing in for crypto/rand.Reader in tests
// that need a fixed seed scenario (round trips, bit-flip tests).
func deterministicReader(seed byte) *shakeReader {
	xof := sha3.NewShake256()
	xof.Write([]byte{seed, 'n', 't', 'r', 'u', 't', 'e', 's', 't'})
	return &shakeReader{xof: xof}
}

type shakeReader struct {
	xof sha3.ShakeHash
}

func (r *shakeReader) Read(p []byte) (int, error) {
	return r.xof.Read(p)
}
