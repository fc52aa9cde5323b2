// doc.go - ntru godoc extras.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package ntru implements the NTRUEncrypt public-key encryption scheme as
// specified by IEEE Std 1363.1, including the SVES padding/masking
// construction used to turn the raw lattice trapdoor into a byte-oriented
// encryption scheme with explicit decryption failures.
//
// This implementation is a from-scratch Go port grounded in the algorithm
// described by the reference C library libntru, focused on the high-level
// envelope: key pair generation, Encrypt, and Decrypt. Polynomial ring
// arithmetic, the index-generation function, and the mask-generation
// function are implemented here as ordinary, unoptimized Go rather than
// NTT-accelerated or hand-tuned code.
package ntru
