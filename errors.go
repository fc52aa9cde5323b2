// errors.go - Error kinds for the NTRUEncrypt envelope.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ntru

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

var (
	// ErrPRNG is returned when the random source fails to produce bytes.
	ErrPRNG = errors.New("ntru: random source failure")

	// ErrInvalidMaxLen is returned when a Params's computed MaxMsgLen
	// exceeds what fits in a single length-prefix octet.
	ErrInvalidMaxLen = errors.New("ntru: max message length exceeds 255")

	// ErrMsgTooLong is returned when a message exceeds MaxMsgLen, either
	// on encrypt (input too long) or decrypt (recovered length field too
	// large to be genuine).
	ErrMsgTooLong = errors.New("ntru: message too long")

	// ErrInvalidEncoding is returned when the SVES codec encounters a
	// forbidden trit pair, or when the re-encryption check on decrypt
	// fails to reproduce the ciphertext's blinding term.
	ErrInvalidEncoding = errors.New("ntru: invalid encoding")

	// ErrNoZeroPad is returned when the padded record recovered on
	// decrypt has non-zero trailing bytes.
	ErrNoZeroPad = errors.New("ntru: padding not zero")

	// ErrDm0Violation is returned when a ternary polynomial fails the
	// repetition-weight check required by Params.Dm0.
	ErrDm0Violation = errors.New("ntru: repetition weight check failed")

	// ErrInvalidParams is returned by NewParams when the supplied
	// parameter set is infeasible (e.g. sample weights too large for N).
	ErrInvalidParams = errors.New("ntru: invalid parameter set")

	// ErrInvalidKeySize is returned when a serialized key or ciphertext
	// does not have the length Params expects.
	ErrInvalidKeySize = errors.New("ntru: invalid key or ciphertext size")
)

// errWrapf annotates a sentinel error with a formatted detail message,
// keeping errors.Is(err, sentinel) true for callers that check it (pkg/errors
// since v0.9.0 implements Unwrap, so the stdlib errors.Is chain still works).
func errWrapf(sentinel error, format string, args ...interface{}) error {
	return pkgerrors.Wrapf(sentinel, format, args...)
}
