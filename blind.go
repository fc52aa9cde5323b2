// blind.go - Blinding-polynomial generator and seed assembly.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ntru

// genBlindPoly derives a PrivPoly deterministically from seed: a ternary
// polynomial with weight Df1 in ternary mode, or three ternary polynomials
// with weights Df1/Df2/Df3 in product-form mode. Identical seeds always
// yield identical PrivPoly values.
func genBlindPoly(seed []byte, p Params) *PrivPoly {
	igf := newIGF(seed, p.N, p.HashSeedLen)

	if p.ProdFlag {
		return &PrivPoly{Product: &ProductPoly{
			F1: genTernPoly(igf, p.N, p.Df1),
			F2: genTernPoly(igf, p.N, p.Df2),
			F3: genTernPoly(igf, p.N, p.Df3),
		}}
	}
	return &PrivPoly{Ternary: genTernPoly(igf, p.N, p.Df1)}
}

// assembleSeed builds the blinding-polynomial seed oid||msg||b||htrunc,
// where htrunc is the leading Pklen/8 bytes of the public key's toArr
// encoding.
func assembleSeed(p Params, msg, b, htrunc []byte) []byte {
	seed := make([]byte, 0, len(p.OID)+len(msg)+len(b)+len(htrunc))
	seed = append(seed, p.OID[:]...)
	seed = append(seed, msg...)
	seed = append(seed, b...)
	seed = append(seed, htrunc...)
	return seed
}
