package groupsig

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/pj-aias/distributed-bbs/internal/primitives"
)

// HashTranscript computes the Fiat-Shamir challenge for the signing and
// verification protocols. The concatenation order is fixed and normative
// (§4.4 step 6, §4.5 step 2): message, then t1, t2, t3, then the
// commitment-to-randomness values R1, R2, R3, R5, R6, R7, and finally R4 —
// R4 comes last, after R5-R7, not alongside R1-R3. Every G1 point marshals
// via its canonical 48-byte compressed encoding; the GT element via its
// canonical 576-byte encoding. No wrapper framing appears in this input.
func HashTranscript(msg []byte, t1, t2, t3, r1, r2, r3, r5, r6, r7 bls12381.G1Affine, r4 bls12381.GT) fr.Element {
	t1b := t1.Marshal()
	t2b := t2.Marshal()
	t3b := t3.Marshal()
	r1b := r1.Marshal()
	r2b := r2.Marshal()
	r3b := r3.Marshal()
	r5b := r5.Marshal()
	r6b := r6.Marshal()
	r7b := r7.Marshal()
	r4b := r4.Marshal()

	return primitives.HashToScalar(msg, t1b, t2b, t3b, r1b, r2b, r3b, r5b, r6b, r7b, r4b)
}
