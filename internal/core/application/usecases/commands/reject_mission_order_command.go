package commands

import (
	"errors"

	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/pkg/errs"
	"missionops/internal/pkg/guard"
)

// ErrRejectMissionOrderCommandIsNotConstructed is returned when the command
// was not created via its constructor.
var ErrRejectMissionOrderCommandIsNotConstructed = errors.New(
	"RejectMissionOrderCommand must be created via NewRejectMissionOrderCommand constructor",
)

// RejectMissionOrderCommand represents a validator rejecting a submitted
// order. The comment is mandatory: every rejection must be explained.
type RejectMissionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	comment string

	guard guard.ConstructorGuard
}

// NewRejectMissionOrderCommand creates a command rejecting the given order.
// An empty comment fails here, before any transaction is opened.
func NewRejectMissionOrderCommand(orderID, actorID kernel.UUID, comment string) (RejectMissionOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), actorID.Validate()); err != nil {
		return RejectMissionOrderCommand{}, err
	}
	if comment == "" {
		return RejectMissionOrderCommand{}, errs.NewValueIsRequiredError("comment")
	}

	return RejectMissionOrderCommand{
		orderID: orderID,
		actorID: actorID,
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectMissionOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectMissionOrderCommandIsNotConstructed)
}

// OrderID returns the order being rejected.
func (c RejectMissionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the rejecting validator.
func (c RejectMissionOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Comment returns the mandatory rejection comment.
func (c RejectMissionOrderCommand) Comment() string {
	return c.comment
}
