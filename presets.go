// presets.go - Named IEEE 1363.1 parameter sets.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ntru

// EES401EP2 is the ternary-form "moderate security" parameter set:
// N=401, q=2048, df=113, db=112, dm0=113, maxm1=0.
var EES401EP2 = mustParams(401, 2048, 113, 0, 0, 113, 112, 0, 112, OID{0x00, 0x02, 0x04}, false)

// EES659EP1Product is the product-form "high security" parameter set.
var EES659EP1Product = mustParams(659, 2048, 9, 8, 5, 149, 112, 0, 192, OID{0x00, 0x03, 0x05}, true)

func mustParams(n int, q uint16, df1, df2, df3, dm0, db, maxm1, pklen int, oid OID, prodFlag bool) Params {
	p, err := NewParams(n, q, df1, df2, df3, dm0, db, maxm1, pklen, oid, prodFlag)
	if err != nil {
		panic("ntru: invalid built-in preset: " + err.Error())
	}
	return p
}
