// Package primitives wraps the BLS12-381 arithmetic primitives that the
// group signature scheme treats as external building blocks: hashing to a
// scalar, and sampling uniform scalars and G1 elements from a caller-supplied
// randomness source.
package primitives

import (
	"crypto/sha256"
	"fmt"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/cronokirby/saferith"
)

// wideSampleBytes is the width used when sampling a scalar from raw
// randomness. 48 bytes (384 bits) gives a reduction bias against the
// ~255-bit group order of roughly 2^-128, the same margin libraries like
// bls12_381's Scalar::random rely on instead of rejection sampling.
const wideSampleBytes = 48

var fieldModulus = fr.Modulus()

// HashToScalar hashes the concatenation of parts with SHA-256 and folds the
// 32-byte digest into a scalar.
//
// calc_sha256_scalar reads the digest as four big-endian u64 blocks
// (digest[0:8], digest[8:16], digest[16:24], digest[24:32]) and passes them
// to Scalar::from_raw, whose limb 0 is the *least*-significant limb. So the
// first 8-byte block of the digest becomes the low-order 64 bits of the
// integer and the last block becomes the high-order 64 bits — the reverse
// of a plain big-endian read of the 32 bytes. To reproduce that with
// fr.Element.SetBytes (which does expect a plain big-endian encoding), the
// four 8-byte blocks are reordered back-to-front before being handed to it;
// each block's own byte order is left untouched, only the block order
// flips. Getting this wrong changes every Fiat-Shamir challenge this
// package produces and breaks interop with any other conforming
// implementation.
func HashToScalar(parts ...[]byte) fr.Element {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	digest := h.Sum(nil)

	var reordered [32]byte
	for block := 0; block < 4; block++ {
		copy(reordered[block*8:block*8+8], digest[(3-block)*8:(3-block)*8+8])
	}

	var s fr.Element
	s.SetBytes(reordered[:])
	return s
}

// RandomScalar samples a scalar uniformly (up to negligible modular bias)
// from rng, using saferith for the constant-time wide reduction.
func RandomScalar(rng io.Reader) (fr.Element, error) {
	buf := make([]byte, wideSampleBytes)
	if _, err := io.ReadFull(rng, buf); err != nil {
		return fr.Element{}, fmt.Errorf("primitives: reading scalar randomness: %w", err)
	}

	wide := new(saferith.Nat).SetBytes(buf)
	modulus := saferith.ModulusFromBytes(fieldModulus.Bytes())
	reduced := new(saferith.Nat).Mod(wide, modulus)

	var s fr.Element
	s.SetBigInt(reduced.Big())
	return s, nil
}

// RandomG1 samples a uniform element of the prime-order subgroup generated
// by base, by multiplying base with a fresh random scalar.
func RandomG1(rng io.Reader, base *bls12381.G1Affine) (bls12381.G1Affine, error) {
	s, err := RandomScalar(rng)
	if err != nil {
		return bls12381.G1Affine{}, err
	}

	var sBig big.Int
	s.ToBigInt(&sBig)

	var p bls12381.G1Affine
	p.ScalarMultiplication(base, &sBig)
	return p, nil
}
