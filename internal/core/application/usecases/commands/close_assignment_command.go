package commands

import (
	"errors"
	"time"

	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/pkg/errs"
	"missionops/internal/pkg/guard"
)

// ErrCloseAssignmentCommandIsNotConstructed is returned when the command was
// not created via its constructor.
var ErrCloseAssignmentCommandIsNotConstructed = errors.New(
	"CloseAssignmentCommand must be created via NewCloseAssignmentCommand constructor",
)

// CloseAssignmentCommand represents returning a vehicle from a mission: the
// end datetime and end odometer are supplied together, atomically.
type CloseAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	endAt        time.Time
	endOdometer  int64

	guard guard.ConstructorGuard
}

// NewCloseAssignmentCommand creates a command closing the given assignment.
// The ordering checks against the assignment's own start values run in the
// domain, where that state is known.
func NewCloseAssignmentCommand(assignmentID kernel.UUID, endAt time.Time, endOdometer int64) (CloseAssignmentCommand, error) {
	if err := assignmentID.Validate(); err != nil {
		return CloseAssignmentCommand{}, err
	}
	if endAt.IsZero() {
		return CloseAssignmentCommand{}, errs.NewValueIsRequiredError("end datetime")
	}
	if endOdometer < 0 {
		return CloseAssignmentCommand{}, errs.NewValueIsOutOfRangeError("end odometer", endOdometer, 0, "unbounded")
	}

	return CloseAssignmentCommand{
		assignmentID: assignmentID,
		endAt:        endAt,
		endOdometer:  endOdometer,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrCloseAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the assignment being closed.
func (c CloseAssignmentCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// EndAt returns the end datetime.
func (c CloseAssignmentCommand) EndAt() time.Time {
	return c.endAt
}

// EndOdometer returns the odometer reading at return.
func (c CloseAssignmentCommand) EndOdometer() int64 {
	return c.endOdometer
}
