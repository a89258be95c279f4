package commands

import (
	"errors"

	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/core/domain/model/missionorder"
	"missionops/internal/pkg/guard"
)

// ErrApproveMissionOrderCommandIsNotConstructed is returned when the command
// was not created via its constructor.
var ErrApproveMissionOrderCommandIsNotConstructed = errors.New(
	"ApproveMissionOrderCommand must be created via NewApproveMissionOrderCommand constructor",
)

// ApproveMissionOrderCommand represents a validator decision at one approval
// level. The comment is optional unless the order's estimated budget exceeds
// the configured threshold, in which case the domain makes it mandatory.
type ApproveMissionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	level   missionorder.Level
	comment string

	guard guard.ConstructorGuard
}

// NewApproveMissionOrderCommand creates a command recording an approval at
// the given level.
func NewApproveMissionOrderCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	level missionorder.Level,
	comment string,
) (ApproveMissionOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), actorID.Validate(), level.Validate()); err != nil {
		return ApproveMissionOrderCommand{}, err
	}

	return ApproveMissionOrderCommand{
		orderID: orderID,
		actorID: actorID,
		level:   level,
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveMissionOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveMissionOrderCommandIsNotConstructed)
}

// OrderID returns the order being approved.
func (c ApproveMissionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the approving validator.
func (c ApproveMissionOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Level returns the approval level the validator acts at.
func (c ApproveMissionOrderCommand) Level() missionorder.Level {
	return c.level
}

// Comment returns the optional validator comment.
func (c ApproveMissionOrderCommand) Comment() string {
	return c.comment
}
