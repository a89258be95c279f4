package missionorder

import (
	"time"

	"missionops/internal/pkg/errs"
	"missionops/internal/pkg/guard"
)

// ErrSignatureIsNotConstructed indicates that a Signature was not created
// through the NewSignature constructor.
var ErrSignatureIsNotConstructed = errs.NewValueIsRequiredError("Signature must be created via NewSignature constructor")

// Signature is the value object sealing a direction-level approval: the blob
// path of the stored signature image, the content digest of its raw bytes, and
// the moment the approval was made.
//
// A signature is evidence, not derived data. Once attached to a mission order
// it is never recomputed, replaced or overwritten; a discrepancy between a
// freshly computed digest and the sealed one is a tamper signal.
type Signature struct {
	imagePath string
	digest    string
	signedAt  time.Time

	guard guard.ConstructorGuard
}

// NewSignature creates a Signature after validating that the image path, the
// digest and the timestamp are all present.
func NewSignature(imagePath, digest string, signedAt time.Time) (Signature, error) {
	if imagePath == "" {
		return Signature{}, errs.NewValueIsRequiredError("signature image path")
	}
	if digest == "" {
		return Signature{}, errs.NewValueIsRequiredError("signature digest")
	}
	if signedAt.IsZero() {
		return Signature{}, errs.NewValueIsRequiredError("signature timestamp")
	}

	return Signature{
		imagePath: imagePath,
		digest:    digest,
		signedAt:  signedAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// ImagePath returns the blob store path of the signature image.
func (s Signature) ImagePath() string {
	return s.imagePath
}

// Digest returns the hex content digest of the raw signature bytes.
func (s Signature) Digest() string {
	return s.digest
}

// SignedAt returns the validation timestamp.
func (s Signature) SignedAt() time.Time {
	return s.signedAt
}

// Validate ensures the Signature was created via NewSignature.
func (s Signature) Validate() error {
	return s.guard.Validate(ErrSignatureIsNotConstructed)
}
