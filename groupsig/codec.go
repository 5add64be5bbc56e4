package groupsig

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Canonical fixed-width encoding sizes (§6): scalars are 32 bytes, G1
// elements 48 bytes compressed, G2 elements 96 bytes compressed.
const (
	scalarSize = fr.Bytes
	g1Size     = bls12381.SizeOfG1AffineCompressed
	g2Size     = bls12381.SizeOfG2AffineCompressed
)

func marshalScalar(s fr.Element) []byte {
	b := s.Bytes()
	return b[:]
}

func unmarshalScalar(dst *fr.Element, buf []byte) error {
	if len(buf) != scalarSize {
		return ErrMalformedEncoding
	}
	dst.SetBytes(buf)
	return nil
}

func unmarshalG1(dst *bls12381.G1Affine, buf []byte) error {
	if len(buf) != g1Size {
		return ErrMalformedEncoding
	}
	if _, err := dst.SetBytes(buf); err != nil {
		return fmt.Errorf("%w: %v", ErrSubgroupCheck, err)
	}
	return nil
}

func unmarshalG2(dst *bls12381.G2Affine, buf []byte) error {
	if len(buf) != g2Size {
		return ErrMalformedEncoding
	}
	if _, err := dst.SetBytes(buf); err != nil {
		return fmt.Errorf("%w: %v", ErrSubgroupCheck, err)
	}
	return nil
}

// MarshalBinary encodes k as Xi || Gamma, 64 bytes total.
func (k *PartialGSK) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, 2*scalarSize)
	out = append(out, marshalScalar(k.Xi)...)
	out = append(out, marshalScalar(k.Gamma)...)
	return out, nil
}

// UnmarshalBinary decodes k from the encoding produced by MarshalBinary.
func (k *PartialGSK) UnmarshalBinary(data []byte) error {
	if len(data) != 2*scalarSize {
		return ErrMalformedEncoding
	}
	if err := unmarshalScalar(&k.Xi, data[:scalarSize]); err != nil {
		return err
	}
	return unmarshalScalar(&k.Gamma, data[scalarSize:])
}

// MarshalBinary encodes g as H || Omega, 144 bytes total.
func (g *PartialGPK) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, g1Size+g2Size)
	out = append(out, g.H.Marshal()...)
	out = append(out, g.Omega.Marshal()...)
	return out, nil
}

// UnmarshalBinary decodes g from the encoding produced by MarshalBinary,
// re-checking subgroup membership on both points.
func (g *PartialGPK) UnmarshalBinary(data []byte) error {
	if len(data) != g1Size+g2Size {
		return ErrMalformedEncoding
	}
	if err := unmarshalG1(&g.H, data[:g1Size]); err != nil {
		return err
	}
	return unmarshalG2(&g.Omega, data[g1Size:])
}

// MarshalBinary encodes u as A || X, 80 bytes total.
func (u *PartialUSK) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, g1Size+scalarSize)
	out = append(out, u.A.Marshal()...)
	out = append(out, marshalScalar(u.X)...)
	return out, nil
}

// UnmarshalBinary decodes u from the encoding produced by MarshalBinary.
func (u *PartialUSK) UnmarshalBinary(data []byte) error {
	if len(data) != g1Size+scalarSize {
		return ErrMalformedEncoding
	}
	if err := unmarshalG1(&u.A, data[:g1Size]); err != nil {
		return err
	}
	return unmarshalScalar(&u.X, data[g1Size:])
}

// MarshalBinary encodes the three partial credentials in GM order.
func (u *CombinedUSK) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, 3*(g1Size+scalarSize))
	for i := range u.Partials {
		chunk, err := u.Partials[i].MarshalBinary()
		if err != nil {
			return nil, err
		}
		out = append(out, chunk...)
	}
	return out, nil
}

// UnmarshalBinary decodes u from the encoding produced by MarshalBinary.
func (u *CombinedUSK) UnmarshalBinary(data []byte) error {
	const partialSize = g1Size + scalarSize
	if len(data) != 3*partialSize {
		return ErrMalformedEncoding
	}
	for i := range u.Partials {
		chunk := data[i*partialSize : (i+1)*partialSize]
		if err := u.Partials[i].UnmarshalBinary(chunk); err != nil {
			return err
		}
	}
	return nil
}

// MarshalBinary encodes gpk as H || U || V || W || PartialGPKs[0..2].
func (gpk *CombinedGPK) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, 4*g1Size+3*(g1Size+g2Size))
	out = append(out, gpk.H.Marshal()...)
	out = append(out, gpk.U.Marshal()...)
	out = append(out, gpk.V.Marshal()...)
	out = append(out, gpk.W.Marshal()...)
	for i := range gpk.PartialGPKs {
		chunk, err := gpk.PartialGPKs[i].MarshalBinary()
		if err != nil {
			return nil, err
		}
		out = append(out, chunk...)
	}
	return out, nil
}

// UnmarshalBinary decodes gpk from the encoding produced by MarshalBinary.
func (gpk *CombinedGPK) UnmarshalBinary(data []byte) error {
	const partialGPKSize = g1Size + g2Size
	want := 4*g1Size + 3*partialGPKSize
	if len(data) != want {
		return ErrMalformedEncoding
	}

	offset := 0
	for _, dst := range []*bls12381.G1Affine{&gpk.H, &gpk.U, &gpk.V, &gpk.W} {
		if err := unmarshalG1(dst, data[offset:offset+g1Size]); err != nil {
			return err
		}
		offset += g1Size
	}
	for i := range gpk.PartialGPKs {
		chunk := data[offset : offset+partialGPKSize]
		if err := gpk.PartialGPKs[i].UnmarshalBinary(chunk); err != nil {
			return err
		}
		offset += partialGPKSize
	}
	return nil
}

// MarshalBinary encodes sig as T1 || T2 || T3 || T4 || C || Sa || Sb || Sc
// || Sx || SDelta1 || SDelta2 || SDelta3.
func (sig *Signature) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, 4*g1Size+8*scalarSize)
	out = append(out, sig.T1.Marshal()...)
	out = append(out, sig.T2.Marshal()...)
	out = append(out, sig.T3.Marshal()...)
	out = append(out, sig.T4.Marshal()...)
	for _, s := range []fr.Element{
		sig.C, sig.Sa, sig.Sb, sig.Sc, sig.Sx, sig.SDelta1, sig.SDelta2, sig.SDelta3,
	} {
		out = append(out, marshalScalar(s)...)
	}
	return out, nil
}

// UnmarshalBinary decodes sig from the encoding produced by MarshalBinary.
func (sig *Signature) UnmarshalBinary(data []byte) error {
	want := 4*g1Size + 8*scalarSize
	if len(data) != want {
		return ErrMalformedEncoding
	}

	offset := 0
	for _, dst := range []*bls12381.G1Affine{&sig.T1, &sig.T2, &sig.T3, &sig.T4} {
		if err := unmarshalG1(dst, data[offset:offset+g1Size]); err != nil {
			return err
		}
		offset += g1Size
	}

	scalars := []*fr.Element{
		&sig.C, &sig.Sa, &sig.Sb, &sig.Sc, &sig.Sx, &sig.SDelta1, &sig.SDelta2, &sig.SDelta3,
	}
	for _, dst := range scalars {
		if err := unmarshalScalar(dst, data[offset:offset+scalarSize]); err != nil {
			return err
		}
		offset += scalarSize
	}
	return nil
}
