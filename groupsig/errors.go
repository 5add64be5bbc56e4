package groupsig

import "errors"

// ErrInvalidSignature is returned by Verify when the recomputed challenge
// does not match the one carried in the signature. No distinction is made
// between a forged signature and a corrupted one.
var ErrInvalidSignature = errors.New("groupsig: invalid signature")

// ErrMalformedEncoding is returned when a decoded byte string does not have
// the expected length or structure for the type being decoded.
var ErrMalformedEncoding = errors.New("groupsig: malformed encoding")

// ErrSubgroupCheck is returned when a correctly sized point encoding does
// not decode to a member of the expected prime-order subgroup (this
// includes encodings that are not a point on the curve at all). This can
// only happen when decoding
// attacker-controlled or corrupted input; honestly produced values always
// pass.
var ErrSubgroupCheck = errors.New("groupsig: point failed subgroup check")

// ErrInvalidGMID is returned when a GMID outside {One, Two, Three} is used.
var ErrInvalidGMID = errors.New("groupsig: invalid group manager id")

// ErrUnsupportedIndex is returned by OpenCombine when asked to test a
// credential index other than 0. The scheme's signing and verification
// routines bind every signature to a single representative credential
// (index 0, see Sign's docs on the single-credential proof); opening
// at any other index is not meaningful for a signature produced by this
// package and is rejected rather than silently compared against the wrong
// value.
var ErrUnsupportedIndex = errors.New("groupsig: unsupported credential index")

// ErrEnvelopeKindMismatch is returned when a CBOR envelope is decoded as
// the wrong type.
var ErrEnvelopeKindMismatch = errors.New("groupsig: cbor envelope kind mismatch")
