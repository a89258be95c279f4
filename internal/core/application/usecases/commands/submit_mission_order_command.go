package commands

import (
	"errors"

	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/pkg/guard"
)

// ErrSubmitMissionOrderCommandIsNotConstructed is returned when the command
// was not created via its constructor.
var ErrSubmitMissionOrderCommandIsNotConstructed = errors.New(
	"SubmitMissionOrderCommand must be created via NewSubmitMissionOrderCommand constructor",
)

// SubmitMissionOrderCommand represents a requester handing a draft over to
// the approval workflow.
type SubmitMissionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSubmitMissionOrderCommand creates a command submitting the given draft.
func NewSubmitMissionOrderCommand(orderID, actorID kernel.UUID) (SubmitMissionOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), actorID.Validate()); err != nil {
		return SubmitMissionOrderCommand{}, err
	}

	return SubmitMissionOrderCommand{
		orderID: orderID,
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitMissionOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitMissionOrderCommandIsNotConstructed)
}

// OrderID returns the order being submitted.
func (c SubmitMissionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the submitting user.
func (c SubmitMissionOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}
