// Package signature computes and verifies content digests of signature images.
// The digest seals an approval: once stored on a mission order it is never
// recomputed or replaced, and any later viewer can recompute the digest of the
// stored image and compare it against the sealed one to detect tampering.
package signature

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Digest returns the lowercase hex SHA-256 digest of the raw signature bytes.
// The function is pure and deterministic: the same input always yields the
// same digest.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Verify reports whether data hashes to the stored digest.
// A mismatch is a tamper signal and must never be auto-corrected.
func Verify(data []byte, digest string) bool {
	computed := Digest(data)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}
