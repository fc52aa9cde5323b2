// encrypt.go - NTRUEncrypt probabilistic encryption.
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

// maxEncryptAttempts bounds the internal maxm1/dm0 restart loop so a
// pathological random source surfaces ErrPRNG rather than spinning forever.
const maxEncryptAttempts = 64

// Encrypt encrypts msg for pub under p, drawing randomness from rand, and
// returns a ciphertext of p.EncLen() bytes.
func Encrypt(msg []byte, pub *EncPubKey, p Params, rand io.Reader) ([]byte, error) {
	maxLen, err := p.MaxMsgLen()
	if err != nil {
		return nil, err
	}
	if len(msg) > maxLen {
		return nil, errors.Wrapf(ErrMsgTooLong, "msg_len=%d exceeds max_msg_len=%d", len(msg), maxLen)
	}

	hBytes := toArr(pub.H, p.Q)
	htrunc := hBytes[:p.Pklen/8]
	skip := p.Maxm1 > 0

	for attempt := 0; attempt < maxEncryptAttempts; attempt++ {
		ct, done, err := tryEncrypt(msg, pub, p, rand, htrunc, skip)
		if err != nil {
			return nil, err
		}
		if done {
			return ct, nil
		}
	}
	return nil, errors.Wrapf(ErrPRNG, "encrypt did not converge after %d attempts", maxEncryptAttempts)
}

// tryEncrypt runs a single attempt of the maxm1/dm0 restart loop body,
// zeroing every sensitive intermediate it materializes before returning,
// whether the attempt converges or must be retried.
func tryEncrypt(msg []byte, pub *EncPubKey, p Params, rand io.Reader, htrunc []byte, skip bool) (ct []byte, done bool, err error) {
	b := make([]byte, p.Db/8)
	defer zeroBytes(b)
	if err := generateBytes(rand, b); err != nil {
		return nil, false, err
	}

	m := buildPaddedRecord(p, msg, b)
	defer zeroBytes(m)
	mtrin := fromSVES(m, p.N, skip)
	defer mtrin.zero()

	sdata := assembleSeed(p, msg, b, htrunc)
	defer zeroBytes(sdata)
	r := genBlindPoly(sdata, p)
	defer r.zero()

	bigR := multPriv(pub.H, r, p.Q)

	mask := mgf(toArr4(bigR), p.N, p.HashSeedLen)
	defer mask.zero()
	mtrin = mtrin.add(mask)
	defer mtrin.zero()

	if p.Maxm1 > 0 {
		if mtrin.sumCoeffs() > int32(p.Maxm1) {
			return nil, false, nil
		}
		mtrin.coeffs[0] = 0
	}

	mtrin.reduceMod3()

	if p.Dm0 > 0 && !mtrin.checkRepWeight(p.Dm0) {
		return nil, false, nil
	}

	bigR = bigR.add(mtrin)
	bigR.reduceModQ(p.Q)
	return toArr(bigR, p.Q), true, nil
}

// buildPaddedRecord assembles M = b || octL || msg || zero-pad, sized to
// buf_len_bits = ((N*3/2 + 7)/8)*8 + 1 bits.
func buildPaddedRecord(p Params, msg, b []byte) []byte {
	bufLenBits := ((p.N*3/2 + 7) / 8 * 8) + 1
	m := make([]byte, (bufLenBits+7)/8)
	copy(m, b)
	m[len(b)] = byte(len(msg))
	copy(m[len(b)+1:], msg)
	return m
}
