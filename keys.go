// keys.go - Key pair and key material types.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ntru

// EncPrivKey is an NTRUEncrypt private key: the ternary (or product-form)
// polynomial T used to build f = 3T+1. f's inverse mod Q is only needed
// transiently during key generation to build h, and is discarded (zeroed)
// once h is computed, matching the reference C's ntru_clear_int(&fq).
type EncPrivKey struct {
	T *PrivPoly
}

// Zero destroys the private key's contents in place; the key must not be
// used afterwards. Callers that generated a key pair and failed to
// serialize or otherwise retain it should call this before letting it be
// garbage collected.
func (k *EncPrivKey) Zero() {
	k.T.zero()
}

// EncPubKey is an NTRUEncrypt public key: h = 3*g*Fq mod Q.
type EncPubKey struct {
	H *IntPoly
	P Params
}

// Bytes serializes the public key using the mod-Q array encoding, the same
// encoding used for ciphertexts.
func (k *EncPubKey) Bytes() []byte {
	return toArr(k.H, k.P.Q)
}

// KeyPair bundles a private and public key generated together.
type KeyPair struct {
	Priv *EncPrivKey
	Pub  *EncPubKey
}

// Zero destroys the private half of the key pair in place.
func (kp *KeyPair) Zero() {
	kp.Priv.Zero()
}
