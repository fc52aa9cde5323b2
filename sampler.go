// sampler.go - Ternary polynomial sampler.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ntru

// genTernPoly draws a TernPoly with exactly df positive and df negative
// coefficients from igf,2: negative-one positions are
// assigned first, then positive-one positions, with a bitmap rejecting any
// index already claimed. Callers must ensure 2*df <= N; the sampler itself
// never terminates early and relies on igf being an infinite stream.
func genTernPoly(igf *igfState, n, df int) *TernPoly {
	p := newTernPoly(n, df, df)
	taken := make([]bool, n)

	for t := 0; t < df; {
		idx := igf.next()
		if !taken[idx] {
			p.NegOnes = append(p.NegOnes, idx)
			taken[idx] = true
			t++
		}
	}
	for t := 0; t < df; {
		idx := igf.next()
		if !taken[idx] {
			p.Ones = append(p.Ones, idx)
			taken[idx] = true
			t++
		}
	}
	return p
}
