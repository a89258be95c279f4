package commands

import (
	"errors"
	"time"

	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/pkg/guard"
)

// ErrCreateMissionOrderCommandIsNotConstructed is returned when the command
// was not created via its constructor.
var ErrCreateMissionOrderCommandIsNotConstructed = errors.New(
	"CreateMissionOrderCommand must be created via NewCreateMissionOrderCommand constructor",
)

// CreateMissionOrderCommand represents a request to open a new mission order
// draft owned by the requester.
//
// Example:
//
//	cmd, err := NewCreateMissionOrderCommand(
//	    kernel.NewUUID(), requesterID, "Dakar", "Field visit", "", &budget, start, end,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid mission order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create mission order: %w", err)
//	}
type CreateMissionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.UUID
	requesterID       kernel.UUID
	destination       string
	purpose           string
	plannedActivities string
	estimatedBudget   *int64
	period            kernel.Period

	guard guard.ConstructorGuard
}

// NewCreateMissionOrderCommand creates a command to open a new mission order
// draft. Date and field validation happens here, so a malformed request never
// reaches a transaction: the period must satisfy end >= start, destination and
// purpose must be non-empty, and the optional budget must not be negative.
func NewCreateMissionOrderCommand(
	orderID kernel.UUID,
	requesterID kernel.UUID,
	destination string,
	purpose string,
	plannedActivities string,
	estimatedBudget *int64,
	startDate, endDate time.Time,
) (CreateMissionOrderCommand, error) {
	cmd := CreateMissionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	period, err := kernel.NewPeriod(startDate, endDate)
	if err != nil {
		return CreateMissionOrderCommand{}, err
	}

	if err = errors.Join(
		orderID.Validate(),
		requesterID.Validate(),
	); err != nil {
		return CreateMissionOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.requesterID = requesterID
	cmd.destination = destination
	cmd.purpose = purpose
	cmd.plannedActivities = plannedActivities
	cmd.estimatedBudget = estimatedBudget
	cmd.period = period
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMissionOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateMissionOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateMissionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RequesterID returns the owning requester.
func (c CreateMissionOrderCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

// Destination returns the mission destination.
func (c CreateMissionOrderCommand) Destination() string {
	return c.destination
}

// Purpose returns the purpose text.
func (c CreateMissionOrderCommand) Purpose() string {
	return c.purpose
}

// PlannedActivities returns the optional planned-activities text.
func (c CreateMissionOrderCommand) PlannedActivities() string {
	return c.plannedActivities
}

// EstimatedBudget returns the optional estimated budget.
func (c CreateMissionOrderCommand) EstimatedBudget() *int64 {
	return c.estimatedBudget
}

// Period returns the validated travel period.
func (c CreateMissionOrderCommand) Period() kernel.Period {
	return c.period
}
