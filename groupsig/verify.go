package groupsig

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/pj-aias/distributed-bbs/internal/primitives"
)

// Verify checks sig against msg under the group's joint public key. It
// derives a PreparedGPK internally; callers verifying many signatures
// under the same gpk should call PrepareGPK once and use VerifyPrepared
// instead, to amortize the two message-independent pairings (§4.5, §9).
func Verify(msg []byte, sig *Signature, gpk *CombinedGPK) error {
	prepared, err := PrepareGPK(gpk)
	if err != nil {
		return err
	}
	return VerifyPrepared(msg, sig, prepared)
}

// VerifyPrepared is Verify against a PreparedGPK, reusing its cached
// message-independent pairings.
func VerifyPrepared(msg []byte, sig *Signature, gpk *PreparedGPK) error {
	_, g2 := generators()

	omega := gpk.PartialGPKs[0].Omega

	r1v := subG1(scalarMulG1(&gpk.U, sig.Sa), scalarMulG1(&sig.T1, sig.C))
	r2v := subG1(scalarMulG1(&gpk.V, sig.Sb), scalarMulG1(&sig.T2, sig.C))
	r3v := subG1(scalarMulG1(&gpk.W, sig.Sc), scalarMulG1(&sig.T3, sig.C))

	r5v := subG1(scalarMulG1(&sig.T1, sig.Sx), scalarMulG1(&gpk.U, sig.SDelta1))
	r6v := subG1(scalarMulG1(&sig.T2, sig.Sx), scalarMulG1(&gpk.V, sig.SDelta2))
	r7v := subG1(scalarMulG1(&sig.T3, sig.Sx), scalarMulG1(&gpk.W, sig.SDelta3))

	a1v, err := bls12381.Pair([]bls12381.G1Affine{sig.T4}, []bls12381.G2Affine{g2})
	if err != nil {
		return fmt.Errorf("groupsig: pairing e(t4,g2): %w", err)
	}
	a2v, err := bls12381.Pair([]bls12381.G1Affine{gpk.H}, []bls12381.G2Affine{omega})
	if err != nil {
		return fmt.Errorf("groupsig: pairing e(h,omega): %w", err)
	}
	a4v, err := bls12381.Pair([]bls12381.G1Affine{sig.T4}, []bls12381.G2Affine{omega})
	if err != nil {
		return fmt.Errorf("groupsig: pairing e(t4,omega): %w", err)
	}

	negSaSbSc := negScalar(sig.Sa, sig.Sb, sig.Sc)
	negDeltaSum := negScalar(sig.SDelta1, sig.SDelta2, sig.SDelta3)

	diff := primitives.GTMul(a4v, primitives.GTInverse(gpk.eG1G2))

	r4v := primitives.GTMulAll(
		primitives.GTExp(a1v, sig.Sx),
		primitives.GTExp(a2v, negSaSbSc),
		primitives.GTExp(gpk.eHG2, negDeltaSum),
		primitives.GTExp(diff, sig.C),
	)

	recomputed := HashTranscript(msg, sig.T1, sig.T2, sig.T3, r1v, r2v, r3v, r5v, r6v, r7v, r4v)

	if !challengeEqual(recomputed, sig.C) {
		return ErrInvalidSignature
	}
	return nil
}

// challengeEqual compares two Fiat-Shamir challenges. This is a
// public-value comparison (the challenge reveals nothing secret), so
// variable-time equality is fine here — unlike the credential comparison
// in OpenCombine, which must be constant-time.
func challengeEqual(a, b fr.Element) bool {
	return a.Equal(&b)
}
