// zeroize.go - Secure erasure of sensitive buffers.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ntru

// zeroBytes overwrites b with zeros in place.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// zeroInt32s overwrites s with zeros in place.
func zeroInt32s(s []int32) {
	for i := range s {
		s[i] = 0
	}
}

// zeroUint16s overwrites s with zeros in place.
func zeroUint16s(s []uint16) {
	for i := range s {
		s[i] = 0
	}
}
