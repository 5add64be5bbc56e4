// Package groupsig implements a distributed BBS group signature scheme with
// three-party threshold opening over the BLS12-381 pairing.
//
// Three group managers (GMs) each hold a share of the opening trapdoor.
// Members sign on behalf of the group; anyone can verify a signature, but
// recovering the signer's identity requires all three GMs to contribute an
// opening share. No single GM, nor any two of them, can deanonymize a
// signature on their own.
//
// The package is a pure library: every exported function is a synchronous,
// allocation-bounded function of its explicit inputs plus a caller-supplied
// randomness source. There is no background goroutine, no global state, and
// no I/O. See SetupGroup and OpenSignature for the only two helpers that
// spawn goroutines, and only to fan out otherwise-independent per-GM calls.
package groupsig
