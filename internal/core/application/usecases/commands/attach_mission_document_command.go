package commands

import (
	"errors"

	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/pkg/guard"
)

// ErrAttachMissionDocumentCommandIsNotConstructed is returned when the
// command was not created via its constructor.
var ErrAttachMissionDocumentCommandIsNotConstructed = errors.New(
	"AttachMissionDocumentCommand must be created via NewAttachMissionDocumentCommand constructor",
)

// AttachMissionDocumentCommand requests generation of the printable PDF for
// an approved mission order and its attachment to the order record.
type AttachMissionDocumentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAttachMissionDocumentCommand creates a command for the given order.
func NewAttachMissionDocumentCommand(orderID kernel.UUID) (AttachMissionDocumentCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AttachMissionDocumentCommand{}, err
	}

	return AttachMissionDocumentCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachMissionDocumentCommand) Validate() error {
	return c.guard.Validate(ErrAttachMissionDocumentCommandIsNotConstructed)
}

// OrderID returns the order the document is generated for.
func (c AttachMissionDocumentCommand) OrderID() kernel.UUID {
	return c.orderID
}
