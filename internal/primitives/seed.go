package primitives

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// DeterministicReader expands a short seed into an unbounded pseudo-random
// stream via HKDF-SHA256, so tests can drive the exact same RandomScalar /
// RandomG1 code path real callers use while still getting reproducible
// signatures and keys across runs.
//
// info namespaces the stream so two callers deriving from the same seed for
// different purposes (e.g. one GM's xi vs. its gamma) never collide.
func DeterministicReader(seed []byte, info string) io.Reader {
	return hkdf.New(sha256.New, seed, nil, []byte(info))
}
