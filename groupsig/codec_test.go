package groupsig_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pj-aias/distributed-bbs/groupsig"
)

func TestCodec_RoundTripsBinaryAndCBOR(t *testing.T) {
	gpk, gms, usk := setupTestGroup(t)

	msg := []byte("codec round trip")
	sig, err := groupsig.Sign(msg, usk, gpk, rand.Reader)
	require.NoError(t, err)

	t.Run("PartialGSK", func(t *testing.T) {
		gsk := gms[0].GSK
		roundTripBinary(t, &gsk, new(groupsig.PartialGSK))
		roundTripCBOR(t, &gsk, new(groupsig.PartialGSK))
	})

	t.Run("PartialGPK", func(t *testing.T) {
		gpkShare := gms[0].GPK
		roundTripBinary(t, &gpkShare, new(groupsig.PartialGPK))
		roundTripCBOR(t, &gpkShare, new(groupsig.PartialGPK))
	})

	t.Run("PartialUSK", func(t *testing.T) {
		roundTripBinary(t, &usk.Partials[0], new(groupsig.PartialUSK))
		roundTripCBOR(t, &usk.Partials[0], new(groupsig.PartialUSK))
	})

	t.Run("CombinedUSK", func(t *testing.T) {
		roundTripBinary(t, usk, new(groupsig.CombinedUSK))
		roundTripCBOR(t, usk, new(groupsig.CombinedUSK))
	})

	t.Run("CombinedGPK", func(t *testing.T) {
		roundTripBinary(t, gpk, new(groupsig.CombinedGPK))
		roundTripCBOR(t, gpk, new(groupsig.CombinedGPK))
	})

	t.Run("Signature", func(t *testing.T) {
		roundTripBinary(t, sig, new(groupsig.Signature))
		roundTripCBOR(t, sig, new(groupsig.Signature))
	})
}

func TestCodec_RejectsWrongLength(t *testing.T) {
	var gsk groupsig.PartialGSK
	err := gsk.UnmarshalBinary([]byte{0x01, 0x02, 0x03})
	assert.ErrorIs(t, err, groupsig.ErrMalformedEncoding)

	var sig groupsig.Signature
	err = sig.UnmarshalBinary(nil)
	assert.ErrorIs(t, err, groupsig.ErrMalformedEncoding)
}

func TestCodec_CBOREnvelopeRejectsWrongKind(t *testing.T) {
	gpk, _, _ := setupTestGroup(t)

	raw, err := gpk.MarshalCBOR()
	require.NoError(t, err)

	var sig groupsig.Signature
	err = sig.UnmarshalCBOR(raw)
	assert.ErrorIs(t, err, groupsig.ErrEnvelopeKindMismatch)
}

type binaryCodec interface {
	MarshalBinary() ([]byte, error)
	UnmarshalBinary([]byte) error
}

type cborCodec interface {
	MarshalCBOR() ([]byte, error)
	UnmarshalCBOR([]byte) error
}

func roundTripBinary(t *testing.T, src, dst binaryCodec) {
	t.Helper()
	raw, err := src.MarshalBinary()
	require.NoError(t, err)
	require.NoError(t, dst.UnmarshalBinary(raw))

	again, err := dst.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, raw, again)
}

func roundTripCBOR(t *testing.T, src, dst cborCodec) {
	t.Helper()
	raw, err := src.MarshalCBOR()
	require.NoError(t, err)
	require.NoError(t, dst.UnmarshalCBOR(raw))

	again, err := dst.MarshalCBOR()
	require.NoError(t, err)
	assert.Equal(t, raw, again)
}
