package groupsig

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// fingerprintContext versions the domain-separation string fed to
// blake3.DeriveKey, following the pack convention of a package-path-rooted,
// dated context string (see the threshold library's nonce derivation).
const fingerprintContext = "github.com/pj-aias/distributed-bbs 2026 CombinedGPK fingerprint v1"

// Fingerprint returns a short, human-readable digest of gpk for logs and
// diagnostics. It has no bearing on signing or verification and never
// enters the Fiat-Shamir transcript; it exists purely so two group public
// keys can be told apart at a glance.
func (gpk *CombinedGPK) Fingerprint() (string, error) {
	raw, err := gpk.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("groupsig: fingerprinting gpk: %w", err)
	}

	digest := make([]byte, 8)
	blake3.DeriveKey(fingerprintContext, raw, digest)
	return hex.EncodeToString(digest), nil
}
