// reduce.go - Coefficient reduction helpers.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ntru

// modQ reduces a into [0, q), q a power of two.
func modQ(a int32, q uint16) int32 {
	m := int32(q)
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// centeredModQ reduces a into (-q/2, q/2].
func centeredModQ(a int32, q uint16) int32 {
	r := modQ(a, q)
	half := int32(q) / 2
	if r > half {
		r -= int32(q)
	}
	return r
}

// modGeneric reduces a into [0, m) for an arbitrary positive modulus m,
// used by the Hensel-lifting inversion step where the working modulus
// grows (2, 4, 16, 256, ...) before finally being cut down to Q.
func modGeneric(a, m int32) int32 {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// mod3 reduces a into the centered ternary range {-1, 0, 1}.
func mod3(a int32) int32 {
	r := a % 3
	if r < 0 {
		r += 3
	}
	if r == 2 {
		r = -1
	}
	return r
}
