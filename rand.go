// rand.go - Random byte source contract.
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

// generateBytes fills buf completely from rand, mapping any failure
// (including a short read) to ErrPRNG. Callers supply any io.Reader
// (crypto/rand.Reader in production, a deterministic PRNG in tests), and
// the core never inspects or retains it beyond the call.
func generateBytes(rand io.Reader, buf []byte) error {
	if _, err := io.ReadFull(rand, buf); err != nil {
		return errors.Wrap(ErrPRNG, err.Error())
	}
	return nil
}
