package groupsig

import (
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// generators returns the BLS12-381 G1/G2 generators used throughout the
// package, matching the convention established by the curve library.
func generators() (g1 bls12381.G1Affine, g2 bls12381.G2Affine) {
	_, _, g1, g2 = bls12381.Generators()
	return g1, g2
}

// PartialGSK is the private key share held by a single group manager: the
// issuance trapdoor gamma and the opening trapdoor xi. Never mutated after
// construction; callers that are done with a GM should call Zeroize.
type PartialGSK struct {
	Xi    fr.Element
	Gamma fr.Element
}

// Zeroize scrubs the secret scalars to zero.
func (k *PartialGSK) Zeroize() {
	k.Xi.SetZero()
	k.Gamma.SetZero()
}

// PartialGPK is the public key derived deterministically from a PartialGSK:
// h = g1*xi, omega = g2*gamma.
type PartialGPK struct {
	H     bls12381.G1Affine
	Omega bls12381.G2Affine
}

// derivePartialGPK computes h and omega from a PartialGSK.
func derivePartialGPK(gsk PartialGSK) PartialGPK {
	g1, g2 := generators()

	var xiBig, gammaBig = scalarToBigInt(gsk.Xi), scalarToBigInt(gsk.Gamma)

	var h bls12381.G1Affine
	h.ScalarMultiplication(&g1, xiBig)

	var omega bls12381.G2Affine
	omega.ScalarMultiplication(&g2, gammaBig)

	return PartialGPK{H: h, Omega: omega}
}

// PartialUSK is a single GM's BBS credential share (A, x) issued to one
// user: A = g1*(gamma+x)^-1. Invariant: e(A, omega + g2*x) == e(g1, g2).
type PartialUSK struct {
	A bls12381.G1Affine
	X fr.Element
}

// Zeroize scrubs the secret scalar x. A is public and left untouched.
func (u *PartialUSK) Zeroize() {
	u.X.SetZero()
}

// CombinedUSK is a user's full credential: one PartialUSK per GM, ordered
// by issuing GM (index 0 is GMOne's share, index 1 GMTwo's, index 2
// GMThree's). Only index 0 enters the signing proof; see Sign.
type CombinedUSK struct {
	Partials [3]PartialUSK
}

// NewCombinedUSK assembles a user's three per-GM credential shares into a
// combined credential.
func NewCombinedUSK(partials [3]PartialUSK) *CombinedUSK {
	return &CombinedUSK{Partials: partials}
}

// Zeroize scrubs every partial credential's secret scalar.
func (u *CombinedUSK) Zeroize() {
	for i := range u.Partials {
		u.Partials[i].Zeroize()
	}
}

// CombinedGPK is the group's joint public key: the opener base h, the three
// Pedersen bases u, v, w, and the three GMs' individual public keys.
type CombinedGPK struct {
	H, U, V, W  bls12381.G1Affine
	PartialGPKs [3]PartialGPK
}

// NewCombinedGPK assembles the joint public parameters produced by the
// setup rotation (see SetupGroupPubkey) into a CombinedGPK.
func NewCombinedGPK(partialGPKs [3]PartialGPK, u, v, w, h bls12381.G1Affine) *CombinedGPK {
	return &CombinedGPK{
		H:           h,
		U:           u,
		V:           v,
		W:           w,
		PartialGPKs: partialGPKs,
	}
}

// PreparedGPK caches the two message-independent pairings used by Verify
// (e(h, g2) and e(g1, g2)), so repeated verification under the same group
// public key does not recompute them.
type PreparedGPK struct {
	CombinedGPK
	eHG2  bls12381.GT
	eG1G2 bls12381.GT
}

// PrepareGPK derives a PreparedGPK from a CombinedGPK, precomputing its two
// message-independent pairings.
func PrepareGPK(gpk *CombinedGPK) (*PreparedGPK, error) {
	g1, g2 := generators()

	eHG2, err := bls12381.Pair([]bls12381.G1Affine{gpk.H}, []bls12381.G2Affine{g2})
	if err != nil {
		return nil, fmt.Errorf("groupsig: pairing e(h,g2): %w", err)
	}
	eG1G2, err := bls12381.Pair([]bls12381.G1Affine{g1}, []bls12381.G2Affine{g2})
	if err != nil {
		return nil, fmt.Errorf("groupsig: pairing e(g1,g2): %w", err)
	}

	return &PreparedGPK{
		CombinedGPK: *gpk,
		eHG2:        eHG2,
		eG1G2:       eG1G2,
	}, nil
}

// scalarToBigInt converts a scalar into the regular (non-Montgomery)
// big-integer form that gnark-crypto's ScalarMultiplication expects.
func scalarToBigInt(s fr.Element) *big.Int {
	var out big.Int
	s.ToBigInt(&out)
	return &out
}
