package groupsig

import (
	"fmt"
	"io"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/pj-aias/distributed-bbs/internal/primitives"
)

// Signature is a non-interactive zero-knowledge proof of knowledge of a
// valid BBS credential, produced by Sign and checked by Verify. t1, t2, t3
// are linkable-encryption-style commitments the openers invert; t4 is the
// credential commitment; c is the Fiat-Shamir challenge; the remaining
// fields are Schnorr responses.
type Signature struct {
	T1, T2, T3, T4 bls12381.G1Affine
	C              fr.Element
	Sa, Sb, Sc     fr.Element
	Sx             fr.Element
	SDelta1        fr.Element
	SDelta2        fr.Element
	SDelta3        fr.Element
}

// Sign produces a group signature over msg under usk, a member's combined
// credential, and gpk, the group's joint public key.
//
// The proof binds to one representative credential share, usk.Partials[0]
// (the one issued by GMOne), and to that GM's public key omega. This is
// the single-credential simplification the scheme's per-GM proof loop
// actually computes (§4.4, §9); the three-element CombinedUSK still exists
// so that opening can attribute a signature to a specific member, and so
// every GM independently issued that member a credential share.
func Sign(msg []byte, usk *CombinedUSK, gpk *CombinedGPK, rng io.Reader) (*Signature, error) {
	_, g2 := generators()

	credential := usk.Partials[0]
	omega := gpk.PartialGPKs[0].Omega

	scalars, err := sampleSignRandomizers(rng)
	if err != nil {
		return nil, err
	}

	t1 := scalarMulG1(&gpk.U, scalars.a)
	t2 := scalarMulG1(&gpk.V, scalars.b)
	t3 := scalarMulG1(&gpk.W, scalars.c)

	var abcSum fr.Element
	abcSum.Add(&scalars.a, &scalars.b)
	abcSum.Add(&abcSum, &scalars.c)
	t4 := addG1(credential.A, scalarMulG1(&gpk.H, abcSum))

	var delta1, delta2, delta3 fr.Element
	delta1.Mul(&scalars.a, &credential.X)
	delta2.Mul(&scalars.b, &credential.X)
	delta3.Mul(&scalars.c, &credential.X)

	r1 := scalarMulG1(&gpk.U, scalars.ra)
	r2 := scalarMulG1(&gpk.V, scalars.rb)
	r3 := scalarMulG1(&gpk.W, scalars.rc)

	r5 := subG1(scalarMulG1(&t1, scalars.rx), scalarMulG1(&gpk.U, scalars.rDelta1))
	r6 := subG1(scalarMulG1(&t2, scalars.rx), scalarMulG1(&gpk.V, scalars.rDelta2))
	r7 := subG1(scalarMulG1(&t3, scalars.rx), scalarMulG1(&gpk.W, scalars.rDelta3))

	a1, err := bls12381.Pair([]bls12381.G1Affine{t4}, []bls12381.G2Affine{g2})
	if err != nil {
		return nil, fmt.Errorf("groupsig: pairing e(t4,g2): %w", err)
	}
	a2, err := bls12381.Pair([]bls12381.G1Affine{gpk.H}, []bls12381.G2Affine{omega})
	if err != nil {
		return nil, fmt.Errorf("groupsig: pairing e(h,omega): %w", err)
	}
	a3, err := bls12381.Pair([]bls12381.G1Affine{gpk.H}, []bls12381.G2Affine{g2})
	if err != nil {
		return nil, fmt.Errorf("groupsig: pairing e(h,g2): %w", err)
	}

	negABCSum := negScalar(scalars.ra, scalars.rb, scalars.rc)
	negDeltaSum := negScalar(scalars.rDelta1, scalars.rDelta2, scalars.rDelta3)

	r4 := primitives.GTMulAll(
		primitives.GTExp(a1, scalars.rx),
		primitives.GTExp(a2, negABCSum),
		primitives.GTExp(a3, negDeltaSum),
	)

	c := HashTranscript(msg, t1, t2, t3, r1, r2, r3, r5, r6, r7, r4)

	sa := schnorrResponse(scalars.ra, c, scalars.a)
	sb := schnorrResponse(scalars.rb, c, scalars.b)
	sc := schnorrResponse(scalars.rc, c, scalars.c)
	sx := schnorrResponse(scalars.rx, c, credential.X)
	sDelta1 := schnorrResponse(scalars.rDelta1, c, delta1)
	sDelta2 := schnorrResponse(scalars.rDelta2, c, delta2)
	sDelta3 := schnorrResponse(scalars.rDelta3, c, delta3)

	return &Signature{
		T1: t1, T2: t2, T3: t3, T4: t4,
		C:       c,
		Sa:      sa,
		Sb:      sb,
		Sc:      sc,
		Sx:      sx,
		SDelta1: sDelta1,
		SDelta2: sDelta2,
		SDelta3: sDelta3,
	}, nil
}

// signRandomizers bundles the randomizers sampled at the start of Sign.
type signRandomizers struct {
	a, b, c                         fr.Element
	ra, rb, rc                      fr.Element
	rx, rDelta1, rDelta2, rDelta3   fr.Element
}

func sampleSignRandomizers(rng io.Reader) (signRandomizers, error) {
	var s signRandomizers
	fields := []*fr.Element{
		&s.a, &s.b, &s.c,
		&s.ra, &s.rb, &s.rc,
		&s.rx, &s.rDelta1, &s.rDelta2, &s.rDelta3,
	}
	for _, f := range fields {
		v, err := primitives.RandomScalar(rng)
		if err != nil {
			return signRandomizers{}, fmt.Errorf("groupsig: sampling randomizer: %w", err)
		}
		*f = v
	}
	return s, nil
}

// schnorrResponse computes r + c*secret.
func schnorrResponse(r, c, secret fr.Element) fr.Element {
	var out fr.Element
	out.Mul(&c, &secret)
	out.Add(&out, &r)
	return out
}

// negScalar computes -(a+b+c).
func negScalar(a, b, c fr.Element) fr.Element {
	var sum fr.Element
	sum.Add(&a, &b)
	sum.Add(&sum, &c)
	sum.Neg(&sum)
	return sum
}

func scalarMulG1(base *bls12381.G1Affine, s fr.Element) bls12381.G1Affine {
	var out bls12381.G1Affine
	out.ScalarMultiplication(base, scalarToBigInt(s))
	return out
}

func addG1(a, b bls12381.G1Affine) bls12381.G1Affine {
	var out bls12381.G1Affine
	out.Add(&a, &b)
	return out
}

func subG1(a, b bls12381.G1Affine) bls12381.G1Affine {
	var out bls12381.G1Affine
	out.Sub(&a, &b)
	return out
}
