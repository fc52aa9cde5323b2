// decrypt.go - NTRUEncrypt decryption with re-encryption check.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ntru

import (
	"crypto/subtle"

	"github.com/pkg/errors"
)

// Decrypt recovers the plaintext from enc under kp and p, or an error kind
// identifying which check failed. A successful return always
// means enc was produced by Encrypt for the returned plaintext under some
// valid randomness; the re-encryption check in step 10 makes this binding.
func Decrypt(enc []byte, kp *KeyPair, p Params) ([]byte, error) {
	if len(enc) != p.EncLen() {
		return nil, errors.Wrapf(ErrInvalidKeySize, "enc len=%d want=%d", len(enc), p.EncLen())
	}

	e := fromArr(enc, p.N, p.Q)
	ci := decryptPoly(e, kp.Priv, p.Q)
	defer ci.zero()

	if p.Dm0 > 0 && !ci.checkRepWeight(p.Dm0) {
		return nil, errors.Wrap(ErrDm0Violation, "ci failed repetition weight check")
	}

	cR := e.sub(ci)
	cR.reduceModQ(p.Q)
	defer cR.zero()

	mask := mgf(toArr4(cR), p.N, p.HashSeedLen)
	defer mask.zero()
	cmtrin := ci.sub(mask)
	cmtrin.reduceMod3()
	defer cmtrin.zero()

	skip := p.Maxm1 > 0
	cM, err := toSVES(cmtrin, skip)
	if err != nil {
		return nil, err
	}
	defer zeroBytes(cM)

	cb, pt, err := unpadRecord(cM, p)
	if err != nil {
		return nil, err
	}

	hBytes := toArr(kp.Pub.H, p.Q)
	htrunc := hBytes[:p.Pklen/8]
	sdataPrime := assembleSeed(p, pt, cb, htrunc)
	defer zeroBytes(sdataPrime)
	cr := genBlindPoly(sdataPrime, p)
	defer cr.zero()

	cRPrime := multPriv(kp.Pub.H, cr, p.Q)
	if !cRPrime.constantTimeEquals(cR) {
		return nil, errors.Wrap(ErrInvalidEncoding, "re-encryption check failed")
	}

	out := make([]byte, len(pt))
	copy(out, pt)
	return out, nil
}

// unpadRecord splits a decoded padded record cM into its random-blinding
// prefix cb and recovered plaintext pt, validating the embedded length
// field against p and requiring every byte after the plaintext to be zero.
func unpadRecord(cM []byte, p Params) (cb, pt []byte, err error) {
	cb = cM[:p.Db/8]
	cl := int(cM[p.Db/8])

	maxLen, err := p.MaxMsgLen()
	if err != nil {
		return nil, nil, err
	}
	if cl > maxLen {
		return nil, nil, errors.Wrapf(ErrMsgTooLong, "decoded cl=%d exceeds max_msg_len=%d", cl, maxLen)
	}

	ptStart := p.Db/8 + 1
	pt = cM[ptStart : ptStart+cl]
	if !trailingZero(cM[ptStart+cl:]) {
		return nil, nil, ErrNoZeroPad
	}
	return cb, pt, nil
}

// decryptPoly computes ci = mod3(centered_mod(3*(e*t) + e, q)), the inverse
// of the h = 3*g*f_q construction in key generation.
func decryptPoly(e *IntPoly, priv *EncPrivKey, q uint16) *IntPoly {
	d := multPriv(e, priv.T, q)
	d.scalarMulFac3()
	d = d.add(e)
	d.reduceCenteredModQ(q)
	d.reduceMod3()
	return d
}

// trailingZero reports whether every byte in buf is zero, in time
// independent of where (or whether) a non-zero byte occurs.
func trailingZero(buf []byte) bool {
	zeros := make([]byte, len(buf))
	return subtle.ConstantTimeCompare(buf, zeros) == 1
}
