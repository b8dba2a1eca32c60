// Package integrity provides the two content hashes used by the patch
// pipeline: a fast 64-bit hash for module change detection and a
// cryptographic hash for client-facing bundle verification.  The two
// are deliberately distinct; a module hash is never a valid bundle
// hash and vice versa.
package integrity

import (
	"encoding/hex"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/blake3"
)

// BundleHashLen is the length in characters of a bundle integrity
// hash: BLAKE3-256 in lowercase hex.
const BundleHashLen = 64

// ModuleHashLen is the length in characters of a module change
// detection hash: xxhash64 in lowercase hex.
const ModuleHashLen = 16

// HashBundle computes the integrity hash of assembled bundle text.
// Clients compare this against the hash advertised with a release
// after applying a patch.
func HashBundle(text string) string {
	sum := blake3.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// HashModule computes the change-detection hash of a module's code.
// It is not collision-resistant against an adversary and must not be
// used for integrity checks.
func HashModule(code string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(code))
}

// IsValidHashFormat reports whether h has the exact shape of a bundle
// integrity hash: BundleHashLen lowercase hex characters.
func IsValidHashFormat(h string) bool {
	if len(h) != BundleHashLen {
		return false
	}
	for i := 0; i < len(h); i++ {
		c := h[i]
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'f' {
			continue
		}
		return false
	}
	return true
}

// Verify reports whether text hashes to expected.  The comparison is
// exact and case sensitive.
func Verify(text, expected string) bool {
	return HashBundle(text) == expected
}
