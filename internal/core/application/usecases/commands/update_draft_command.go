package commands

import (
	"errors"
	"time"

	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/pkg/guard"
)

// ErrUpdateDraftCommandIsNotConstructed is returned when the command was not
// created via its constructor.
var ErrUpdateDraftCommandIsNotConstructed = errors.New(
	"UpdateDraftCommand must be created via NewUpdateDraftCommand constructor",
)

// UpdateDraftCommand represents a requester editing the core fields of a
// mission order that is still a draft.
type UpdateDraftCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.UUID
	actorID           kernel.UUID
	destination       string
	purpose           string
	plannedActivities string
	estimatedBudget   *int64
	period            kernel.Period

	guard guard.ConstructorGuard
}

// NewUpdateDraftCommand creates a command replacing all core fields of a draft.
// The same field validation as creation applies.
func NewUpdateDraftCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	destination string,
	purpose string,
	plannedActivities string,
	estimatedBudget *int64,
	startDate, endDate time.Time,
) (UpdateDraftCommand, error) {
	period, err := kernel.NewPeriod(startDate, endDate)
	if err != nil {
		return UpdateDraftCommand{}, err
	}

	if err = errors.Join(orderID.Validate(), actorID.Validate()); err != nil {
		return UpdateDraftCommand{}, err
	}

	return UpdateDraftCommand{
		orderID:           orderID,
		actorID:           actorID,
		destination:       destination,
		purpose:           purpose,
		plannedActivities: plannedActivities,
		estimatedBudget:   estimatedBudget,
		period:            period,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDraftCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDraftCommandIsNotConstructed)
}

// OrderID returns the order being edited.
func (c UpdateDraftCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the user attempting the edit.
func (c UpdateDraftCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Destination returns the new destination.
func (c UpdateDraftCommand) Destination() string {
	return c.destination
}

// Purpose returns the new purpose text.
func (c UpdateDraftCommand) Purpose() string {
	return c.purpose
}

// PlannedActivities returns the new planned-activities text.
func (c UpdateDraftCommand) PlannedActivities() string {
	return c.plannedActivities
}

// EstimatedBudget returns the new optional budget.
func (c UpdateDraftCommand) EstimatedBudget() *int64 {
	return c.estimatedBudget
}

// Period returns the new validated travel period.
func (c UpdateDraftCommand) Period() kernel.Period {
	return c.period
}
