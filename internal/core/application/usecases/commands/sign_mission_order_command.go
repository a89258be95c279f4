package commands

import (
	"errors"

	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/pkg/errs"
	"missionops/internal/pkg/guard"
)

// ErrSignMissionOrderCommandIsNotConstructed is returned when the command was
// not created via its constructor.
var ErrSignMissionOrderCommandIsNotConstructed = errors.New(
	"SignMissionOrderCommand must be created via NewSignMissionOrderCommand constructor",
)

// SignMissionOrderCommand represents the final, direction-level approval of a
// mission order sealed with a signature image.
type SignMissionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	actorID        kernel.UUID
	signatureBytes []byte
	comment        string
	clientContext  string

	guard guard.ConstructorGuard
}

// NewSignMissionOrderCommand creates a command sealing the final approval.
// The raw signature image bytes are required; clientContext is optional
// free-form metadata recorded on the audit entry.
func NewSignMissionOrderCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	signatureBytes []byte,
	comment string,
	clientContext string,
) (SignMissionOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), actorID.Validate()); err != nil {
		return SignMissionOrderCommand{}, err
	}
	if len(signatureBytes) == 0 {
		return SignMissionOrderCommand{}, errs.NewValueIsRequiredError("signature image")
	}

	return SignMissionOrderCommand{
		orderID:        orderID,
		actorID:        actorID,
		signatureBytes: signatureBytes,
		comment:        comment,
		clientContext:  clientContext,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SignMissionOrderCommand) Validate() error {
	return c.guard.Validate(ErrSignMissionOrderCommandIsNotConstructed)
}

// OrderID returns the order being signed.
func (c SignMissionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the signing direction validator.
func (c SignMissionOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// SignatureBytes returns the raw signature image bytes.
func (c SignMissionOrderCommand) SignatureBytes() []byte {
	return c.signatureBytes
}

// Comment returns the optional validator comment.
func (c SignMissionOrderCommand) Comment() string {
	return c.comment
}

// ClientContext returns the optional metadata for the audit entry.
func (c SignMissionOrderCommand) ClientContext() string {
	return c.clientContext
}
