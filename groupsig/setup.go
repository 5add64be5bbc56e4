package groupsig

// SetupGroupPubkey runs the three-GM rotation that produces the joint
// public parameters (u, v, w, h) of §4.3, without any GM ever learning
// another's opening trapdoor:
//
//	u = xi1 * h2 = xi1*xi2*g1   (gm1 applies its xi to gm2's h)
//	v = xi2 * h3 = xi2*xi3*g1   (gm2 applies its xi to gm3's h)
//	w = xi3 * h1 = xi3*xi1*g1   (gm3 applies its xi to gm1's h)
//	h = xi3 * u  = xi1*xi2*xi3*g1
//
// Each product is computed by exactly one GM, the one holding the
// appropriate xi; the I/O order above is the contract and is intentionally
// not hidden behind a dynamic-dispatch interface (§9).
func SetupGroupPubkey(gm1, gm2, gm3 *GM) (*CombinedGPK, error) {
	if gm1.ID != GMOne || gm2.ID != GMTwo || gm3.ID != GMThree {
		return nil, ErrInvalidGMID
	}

	u := gm1.GenCombinedPubkey(&gm2.GPK.H)
	v := gm2.GenCombinedPubkey(&gm3.GPK.H)
	w := gm3.GenCombinedPubkey(&gm1.GPK.H)
	h := gm3.GenCombinedPubkey(&u)

	partialGPKs := [3]PartialGPK{gm1.GPK, gm2.GPK, gm3.GPK}
	return NewCombinedGPK(partialGPKs, u, v, w, h), nil
}
