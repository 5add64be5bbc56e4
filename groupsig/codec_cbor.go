package groupsig

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// envelope is the CBOR transport wrapper around a type's canonical fixed
// width binary encoding. This framing is implementation-local (§6): it
// never appears inside a Fiat-Shamir hash pre-image, it only exists so
// keys and signatures can be tagged with a kind and shipped over a wire
// format a caller's transport layer already speaks.
type envelope struct {
	Kind string `cbor:"k"`
	Data []byte `cbor:"d"`
}

func encodeEnvelope(kind string, raw []byte) ([]byte, error) {
	env := envelope{Kind: kind, Data: raw}
	out, err := cbor.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("groupsig: cbor encode %s: %w", kind, err)
	}
	return out, nil
}

func decodeEnvelope(kind string, data []byte) ([]byte, error) {
	var env envelope
	if err := cbor.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}
	if env.Kind != kind {
		return nil, fmt.Errorf("%w: want %s, got %s", ErrEnvelopeKindMismatch, kind, env.Kind)
	}
	return env.Data, nil
}

// MarshalCBOR encodes k as a CBOR envelope around its canonical binary
// encoding.
func (k *PartialGSK) MarshalCBOR() ([]byte, error) {
	raw, err := k.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return encodeEnvelope("PartialGSK", raw)
}

// UnmarshalCBOR decodes k from the envelope produced by MarshalCBOR.
func (k *PartialGSK) UnmarshalCBOR(data []byte) error {
	raw, err := decodeEnvelope("PartialGSK", data)
	if err != nil {
		return err
	}
	return k.UnmarshalBinary(raw)
}

// MarshalCBOR encodes g as a CBOR envelope around its canonical binary
// encoding.
func (g *PartialGPK) MarshalCBOR() ([]byte, error) {
	raw, err := g.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return encodeEnvelope("PartialGPK", raw)
}

// UnmarshalCBOR decodes g from the envelope produced by MarshalCBOR.
func (g *PartialGPK) UnmarshalCBOR(data []byte) error {
	raw, err := decodeEnvelope("PartialGPK", data)
	if err != nil {
		return err
	}
	return g.UnmarshalBinary(raw)
}

// MarshalCBOR encodes u as a CBOR envelope around its canonical binary
// encoding.
func (u *PartialUSK) MarshalCBOR() ([]byte, error) {
	raw, err := u.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return encodeEnvelope("PartialUSK", raw)
}

// UnmarshalCBOR decodes u from the envelope produced by MarshalCBOR.
func (u *PartialUSK) UnmarshalCBOR(data []byte) error {
	raw, err := decodeEnvelope("PartialUSK", data)
	if err != nil {
		return err
	}
	return u.UnmarshalBinary(raw)
}

// MarshalCBOR encodes u as a CBOR envelope around its canonical binary
// encoding.
func (u *CombinedUSK) MarshalCBOR() ([]byte, error) {
	raw, err := u.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return encodeEnvelope("CombinedUSK", raw)
}

// UnmarshalCBOR decodes u from the envelope produced by MarshalCBOR.
func (u *CombinedUSK) UnmarshalCBOR(data []byte) error {
	raw, err := decodeEnvelope("CombinedUSK", data)
	if err != nil {
		return err
	}
	return u.UnmarshalBinary(raw)
}

// MarshalCBOR encodes gpk as a CBOR envelope around its canonical binary
// encoding.
func (gpk *CombinedGPK) MarshalCBOR() ([]byte, error) {
	raw, err := gpk.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return encodeEnvelope("CombinedGPK", raw)
}

// UnmarshalCBOR decodes gpk from the envelope produced by MarshalCBOR.
func (gpk *CombinedGPK) UnmarshalCBOR(data []byte) error {
	raw, err := decodeEnvelope("CombinedGPK", data)
	if err != nil {
		return err
	}
	return gpk.UnmarshalBinary(raw)
}

// MarshalCBOR encodes sig as a CBOR envelope around its canonical binary
// encoding.
func (sig *Signature) MarshalCBOR() ([]byte, error) {
	raw, err := sig.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return encodeEnvelope("Signature", raw)
}

// UnmarshalCBOR decodes sig from the envelope produced by MarshalCBOR.
func (sig *Signature) UnmarshalCBOR(data []byte) error {
	raw, err := decodeEnvelope("Signature", data)
	if err != nil {
		return err
	}
	return sig.UnmarshalBinary(raw)
}
