package groupsig

import (
	"fmt"
	"io"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/pj-aias/distributed-bbs/internal/primitives"
)

// GMID identifies one of the three group managers. It is modeled as an
// exhaustively-matched tagged value rather than hidden behind an interface:
// the id carries essential semantic meaning in both the setup rotation
// (§4.3) and in opening (§4.6), and every switch over it in this package is
// exhaustive.
type GMID uint8

const (
	GMOne GMID = iota + 1
	GMTwo
	GMThree
)

func (id GMID) String() string {
	switch id {
	case GMOne:
		return "GMOne"
	case GMTwo:
		return "GMTwo"
	case GMThree:
		return "GMThree"
	default:
		return fmt.Sprintf("GMID(%d)", uint8(id))
	}
}

func (id GMID) valid() bool {
	return id == GMOne || id == GMTwo || id == GMThree
}

// index returns the zero-based slot this GM occupies in a CombinedGPK's or
// CombinedUSK's per-GM arrays.
func (id GMID) index() int {
	return int(id) - 1
}

// GM is one group manager's full state: its id, its private key share, and
// its public key share. GM state is created once at setup and never
// mutated; it can be read concurrently by any number of goroutines without
// synchronization (§5).
type GM struct {
	ID  GMID
	GSK PartialGSK
	GPK PartialGPK
}

// Zeroize scrubs this GM's secret key share (xi, gamma). The public share
// GPK is left untouched. Call this once a GM is permanently retired and no
// further GenCombinedPubkey, IssueMember, or OpenShare calls are expected.
func (g *GM) Zeroize() {
	g.GSK.Zeroize()
}

// OpenShare is the group element a GM contributes toward opening a
// signature: one of t1, t2, or t3 scaled by that GM's opening trapdoor.
type OpenShare = bls12381.G1Affine

// SetupGMFrom constructs a GM from an explicit (xi, gamma) pair, deriving
// its public key share deterministically.
func SetupGMFrom(id GMID, xi, gamma fr.Element) (*GM, error) {
	if !id.valid() {
		return nil, ErrInvalidGMID
	}

	gsk := PartialGSK{Xi: xi, Gamma: gamma}
	return &GM{
		ID:  id,
		GSK: gsk,
		GPK: derivePartialGPK(gsk),
	}, nil
}

// SetupGM constructs a GM with a freshly sampled (xi, gamma) pair drawn
// from rng.
func SetupGM(id GMID, rng io.Reader) (*GM, error) {
	xi, err := primitives.RandomScalar(rng)
	if err != nil {
		return nil, fmt.Errorf("groupsig: sampling xi: %w", err)
	}
	gamma, err := primitives.RandomScalar(rng)
	if err != nil {
		return nil, fmt.Errorf("groupsig: sampling gamma: %w", err)
	}

	return SetupGMFrom(id, xi, gamma)
}

// GenCombinedPubkey applies this GM's opening trapdoor xi to a G1 element
// published by another GM: returns h*xi. This is the single step each GM
// performs in the setup rotation of §4.3; no GM ever learns another's xi.
func (g *GM) GenCombinedPubkey(h *bls12381.G1Affine) bls12381.G1Affine {
	var out bls12381.G1Affine
	out.ScalarMultiplication(h, scalarToBigInt(g.GSK.Xi))
	return out
}

// IssueMember issues a fresh BBS credential share to a joining user: it
// samples x and computes A = g1*(gamma+x)^-1, resampling x on the
// negligible-probability event that gamma+x is zero (inversion failure is
// never surfaced to the caller, per §7).
func (g *GM) IssueMember(rng io.Reader) (*PartialUSK, error) {
	g1, _ := generators()

	for {
		x, err := primitives.RandomScalar(rng)
		if err != nil {
			return nil, fmt.Errorf("groupsig: sampling credential scalar: %w", err)
		}

		var denom fr.Element
		denom.Add(&g.GSK.Gamma, &x)
		if denom.IsZero() {
			x.SetZero()
			continue
		}

		var inv fr.Element
		inv.Inverse(&denom)

		var a bls12381.G1Affine
		a.ScalarMultiplication(&g1, scalarToBigInt(inv))

		return &PartialUSK{A: a, X: x}, nil
	}
}

// OpenShare computes this GM's contribution toward opening sig, routed by
// the GM's id per the rotation of §4.6: GMOne scales t2, GMTwo scales t3,
// GMThree scales t1.
func (g *GM) OpenShare(sig *Signature) (OpenShare, error) {
	var base bls12381.G1Affine
	switch g.ID {
	case GMOne:
		base = sig.T2
	case GMTwo:
		base = sig.T3
	case GMThree:
		base = sig.T1
	default:
		return OpenShare{}, ErrInvalidGMID
	}

	var out bls12381.G1Affine
	out.ScalarMultiplication(&base, scalarToBigInt(g.GSK.Xi))
	return out, nil
}
