package commands

import (
	"errors"
	"time"

	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/pkg/errs"
	"missionops/internal/pkg/guard"
)

// ErrCreateAssignmentCommandIsNotConstructed is returned when the command was
// not created via its constructor.
var ErrCreateAssignmentCommandIsNotConstructed = errors.New(
	"CreateAssignmentCommand must be created via NewCreateAssignmentCommand constructor",
)

// CreateAssignmentCommand represents binding a vehicle to a mission.
// The mission order and driver references are optional: the fleet also serves
// ad-hoc trips that have no mission order behind them.
type CreateAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID  kernel.UUID
	vehicleID     kernel.UUID
	orderID       *kernel.UUID
	driverID      *kernel.UUID
	startAt       time.Time
	startOdometer int64
	reason        string

	guard guard.ConstructorGuard
}

// NewCreateAssignmentCommand creates a command opening a new assignment.
func NewCreateAssignmentCommand(
	assignmentID kernel.UUID,
	vehicleID kernel.UUID,
	orderID *kernel.UUID,
	driverID *kernel.UUID,
	startAt time.Time,
	startOdometer int64,
	reason string,
) (CreateAssignmentCommand, error) {
	if err := errors.Join(assignmentID.Validate(), vehicleID.Validate()); err != nil {
		return CreateAssignmentCommand{}, err
	}
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return CreateAssignmentCommand{}, err
		}
	}
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return CreateAssignmentCommand{}, err
		}
	}
	if startAt.IsZero() {
		return CreateAssignmentCommand{}, errs.NewValueIsRequiredError("start datetime")
	}
	if startOdometer < 0 {
		return CreateAssignmentCommand{}, errs.NewValueIsOutOfRangeError("start odometer", startOdometer, 0, "unbounded")
	}

	return CreateAssignmentCommand{
		assignmentID:  assignmentID,
		vehicleID:     vehicleID,
		orderID:       orderID,
		driverID:      driverID,
		startAt:       startAt,
		startOdometer: startOdometer,
		reason:        reason,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the identifier for the new assignment.
func (c CreateAssignmentCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// VehicleID returns the vehicle to assign.
func (c CreateAssignmentCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// OrderID returns the optional linked mission order.
func (c CreateAssignmentCommand) OrderID() *kernel.UUID {
	return c.orderID
}

// DriverID returns the optional driver reference.
func (c CreateAssignmentCommand) DriverID() *kernel.UUID {
	return c.driverID
}

// StartAt returns the start datetime.
func (c CreateAssignmentCommand) StartAt() time.Time {
	return c.startAt
}

// StartOdometer returns the odometer reading at departure.
func (c CreateAssignmentCommand) StartOdometer() int64 {
	return c.startOdometer
}

// Reason returns the optional free-text reason.
func (c CreateAssignmentCommand) Reason() string {
	return c.reason
}
