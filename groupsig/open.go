package groupsig

import (
	"crypto/subtle"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// OpenCombine tests whether the credential usk (identified by index among a
// user's CombinedUSK.Partials) is the one embedded in sig, given the three
// GMs' opening shares for sig.
//
// Only index 0 is supported: signatures produced by Sign bind to a single
// representative credential share (usk.Partials[0]), so testing any other
// index can never succeed and would silently and meaninglessly report
// false; OpenCombine rejects it outright instead (see ErrUnsupportedIndex).
//
// The rotation share1+share2+share3 = xi1*t2 + xi2*t3 + xi3*t1 equals
// h*(a+b+c) whenever t1, t2, t3 were honestly constructed from (u, v, w) =
// (xi1*xi2*g1, xi2*xi3*g1, xi3*xi1*g1), making t4 minus that sum equal to
// the embedded credential's A.
func OpenCombine(usk *PartialUSK, sig *Signature, index int, share1, share2, share3 OpenShare) (bool, error) {
	if index != 0 {
		return false, ErrUnsupportedIndex
	}

	sum := addG1(addG1(share1, share2), share3)
	recoveredA := subG1(sig.T4, sum)

	return constantTimeG1Equal(usk.A, recoveredA), nil
}

// constantTimeG1Equal compares two G1 points in constant time over their
// canonical encodings. The equality test in OpenCombine compares a private
// credential (A), so unlike the public Fiat-Shamir challenge check in
// Verify, it must not leak timing information.
func constantTimeG1Equal(a, b bls12381.G1Affine) bool {
	ab := a.Marshal()
	bb := b.Marshal()
	return subtle.ConstantTimeCompare(ab, bb) == 1
}
