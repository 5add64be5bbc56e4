package primitives_test

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"math/big"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pj-aias/distributed-bbs/internal/primitives"
)

func mustGenerator(t *testing.T) bls12381.G1Affine {
	t.Helper()
	_, _, g1, _ := bls12381.Generators()
	return g1
}

func TestRandomScalar_DeterministicFromSeed(t *testing.T) {
	seed := []byte("fixed test seed for reproducible scalars")

	r1 := primitives.DeterministicReader(seed, "test/scalar")
	s1, err := primitives.RandomScalar(r1)
	require.NoError(t, err)

	r2 := primitives.DeterministicReader(seed, "test/scalar")
	s2, err := primitives.RandomScalar(r2)
	require.NoError(t, err)

	assert.True(t, s1.Equal(&s2), "same seed and info must reproduce the same scalar")
}

func TestRandomScalar_DifferentInfoDiverges(t *testing.T) {
	seed := []byte("fixed test seed for reproducible scalars")

	r1 := primitives.DeterministicReader(seed, "test/scalar/a")
	s1, err := primitives.RandomScalar(r1)
	require.NoError(t, err)

	r2 := primitives.DeterministicReader(seed, "test/scalar/b")
	s2, err := primitives.RandomScalar(r2)
	require.NoError(t, err)

	assert.False(t, s1.Equal(&s2))
}

func TestHashToScalar_OrderSensitive(t *testing.T) {
	a := primitives.HashToScalar([]byte("alpha"), []byte("beta"))
	b := primitives.HashToScalar([]byte("beta"), []byte("alpha"))
	assert.False(t, a.Equal(&b))

	c := primitives.HashToScalar([]byte("alphabeta"))
	assert.False(t, a.Equal(&c), "concatenation boundaries must not blur together")
}

// TestHashToScalar_MatchesFromRawLimbConvention independently reconstructs
// the value calc_sha256_scalar would produce — reading the digest as four
// big-endian u64 blocks and treating block i as raw limb i (limb 0 least
// significant) — via big.Int arithmetic, rather than by re-running
// HashToScalar's own block-reversal logic, so a regression back to a plain
// big-endian SetBytes(digest) would be caught here.
func TestHashToScalar_MatchesFromRawLimbConvention(t *testing.T) {
	msg := []byte("distributed bbs transcript fixture")
	digest := sha256.Sum256(msg)

	limbs := make([]uint64, 4)
	for i := 0; i < 4; i++ {
		limbs[i] = binary.BigEndian.Uint64(digest[i*8 : i*8+8])
	}

	var value big.Int
	for i := 3; i >= 0; i-- {
		value.Lsh(&value, 64)
		value.Or(&value, new(big.Int).SetUint64(limbs[i]))
	}

	modulus := fr.Modulus()
	value.Mod(&value, modulus)

	var expected fr.Element
	expected.SetBigInt(&value)

	got := primitives.HashToScalar(msg)
	assert.True(t, got.Equal(&expected),
		"HashToScalar must match calc_sha256_scalar's block-reversed limb assignment")
}

func TestHashToScalar_Deterministic(t *testing.T) {
	a := primitives.HashToScalar([]byte("msg"), []byte("t1"), []byte("t2"))
	b := primitives.HashToScalar([]byte("msg"), []byte("t1"), []byte("t2"))
	assert.True(t, a.Equal(&b))
}

func TestRandomG1_ProducesDistinctPoints(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, 32)
	base := mustGenerator(t)

	r := primitives.DeterministicReader(seed, "test/g1")
	p1, err := primitives.RandomG1(r, &base)
	require.NoError(t, err)

	p2, err := primitives.RandomG1(r, &base)
	require.NoError(t, err)

	assert.False(t, p1.Equal(&p2))
}
