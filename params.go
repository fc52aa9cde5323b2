// params.go - NTRUEncrypt parameterization.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ntru

// OID is the 3-byte IEEE 1363.1 object identifier for a parameter set.
type OID [3]byte

// Params is an immutable NTRUEncrypt parameter set. Params values are
// plain records: construct one with NewParams or use one of the named
// presets (EES401EP2, EES659EP1Product); there is no dynamic
// named-parameter mechanism.
type Params struct {
	// N is the ring dimension (degree of the quotient x^N - 1). Must be
	// odd; the reference parameter sets use primes.
	N int

	// Q is the ciphertext/public-key modulus, a power of two.
	Q uint16

	// Df1, Df2, Df3 are target Hamming weights for the blinding and
	// private polynomials. Df2 and Df3 are only used when ProdFlag is
	// set (product-form private/blinding polynomials); in ternary mode
	// Dr is derived as Df1.
	Df1, Df2, Df3 int

	// Dm0 is the minimum required per-sign repetition weight for the
	// plaintext ternary polynomial; 0 disables the check.
	Dm0 int

	// Db is the number of bits of random salt mixed into every
	// encryption; must be a multiple of 8.
	Db int

	// Maxm1 bounds the per-message repetition-sum defense against the
	// meet-in-the-middle constant-coefficient attack; 0 disables it.
	Maxm1 int

	// Pklen is the number of bits of the serialized public key mixed
	// into the blinding-polynomial seed.
	Pklen int

	// OID identifies the parameter set in the blinding-polynomial seed.
	OID OID

	// ProdFlag selects product-form private/blinding polynomials
	// (f1*f2+f3) over a single ternary polynomial.
	ProdFlag bool

	// CheckGInvertible, when true, requires the private g polynomial
	// generated during key generation to be invertible mod Q.
	// IEEE 1363.1 does not require this and the reference implementation
	// disables it by default; see DESIGN.md for the rationale preserved
	// here.
	CheckGInvertible bool

	// HashSeedLen is the XOF squeeze block size (bytes) used by the IGF
	// and MGF collaborators. It does not affect correctness, only how
	// many bytes of keystream are requested per squeeze.
	HashSeedLen int
}

// dr returns the target weight for the blinding polynomial's ternary
// component, which is Df1 in both ternary and product-form parameter sets.
func (p Params) dr() int {
	return p.Df1
}

// NewParams validates and constructs a Params value.
func NewParams(n int, q uint16, df1, df2, df3, dm0, db, maxm1, pklen int, oid OID, prodFlag bool) (Params, error) {
	p := Params{
		N: n, Q: q,
		Df1: df1, Df2: df2, Df3: df3,
		Dm0: dm0, Db: db, Maxm1: maxm1, Pklen: pklen,
		OID: oid, ProdFlag: prodFlag,
		HashSeedLen: 64,
	}
	if err := p.validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

func (p Params) validate() error {
	if p.N <= 2 || p.N%2 == 0 {
		return errWrapf(ErrInvalidParams, "N=%d must be odd and > 2", p.N)
	}
	if p.Q == 0 || p.Q&(p.Q-1) != 0 {
		return errWrapf(ErrInvalidParams, "Q=%d must be a power of two", p.Q)
	}
	if p.Db%8 != 0 || p.Db <= 0 {
		return errWrapf(ErrInvalidParams, "Db=%d must be a positive multiple of 8", p.Db)
	}
	if p.Pklen <= 0 || p.Pklen%8 != 0 {
		return errWrapf(ErrInvalidParams, "Pklen=%d must be a positive multiple of 8", p.Pklen)
	}
	if 2*p.Df1 > p.N {
		return errWrapf(ErrInvalidParams, "2*Df1=%d exceeds N=%d", 2*p.Df1, p.N)
	}
	if p.ProdFlag {
		if 2*p.Df2 > p.N || 2*p.Df3 > p.N {
			return errWrapf(ErrInvalidParams, "product-form weights exceed N=%d", p.N)
		}
	}
	if 2*(p.N/3) > p.N {
		return errWrapf(ErrInvalidParams, "N/3 weight infeasible for N=%d", p.N)
	}
	return nil
}

// MaxMsgLen returns the largest plaintext length, in bytes, that Encrypt
// will accept under p. llen is fixed at one octet (the length prefix), and
// the available payload is the SVES record's trit budget minus that
// prefix and the random salt.
func (p Params) MaxMsgLen() (int, error) {
	const llen = 1
	var usable int
	if p.Maxm1 > 0 {
		usable = (p.N - 1) * 3 / 2 / 8
	} else {
		usable = p.N * 3 / 2 / 8
	}
	max := usable - llen - p.Db/8
	if max > 255 {
		return 0, ErrInvalidMaxLen
	}
	if max < 0 {
		return 0, errWrapf(ErrInvalidParams, "derived MaxMsgLen is negative for N=%d Db=%d", p.N, p.Db)
	}
	return max, nil
}

// EncLen returns the byte length of an NTRUEncrypt ciphertext (equivalently
// a serialized public key) under p: ceil(N * log2(Q) / 8).
func (p Params) EncLen() int {
	bits := p.N * log2Q(p.Q)
	return (bits + 7) / 8
}

// arr4Len returns the byte length of the 2-bit-per-coefficient encoding
// used for mask derivation.
func (p Params) arr4Len() int {
	return (2*p.N + 7) / 8
}

func log2Q(q uint16) int {
	n := 0
	for q > 1 {
		q >>= 1
		n++
	}
	return n
}
