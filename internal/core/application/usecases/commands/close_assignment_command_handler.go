package commands

import (
	"context"
)

// CloseAssignmentCommandHandler returns a vehicle from a mission.
//
// Completing the assignment, releasing the vehicle and advancing its odometer
// are one atomic step. A failed validation (an end odometer below the start
// reading, an end datetime before the start) leaves the assignment active
// and the vehicle untouched.
type CloseAssignmentCommandHandler struct {
	uowFactory FleetUoWFactory
}

// NewCloseAssignmentCommandHandler creates a handler for closing assignments.
func NewCloseAssignmentCommandHandler(uowFactory FleetUoWFactory) CloseAssignmentCommandHandler {
	return CloseAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle closes the assignment and releases the vehicle in one transaction.
func (h CloseAssignmentCommandHandler) Handle(ctx context.Context, cmd CloseAssignmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignmentRepo := uow.AssignmentRepository()
	vehicleRepo := uow.VehicleRepository()

	a, err := assignmentRepo.Get(ctx, cmd.AssignmentID())
	if err != nil {
		return err
	}

	if err = a.Close(cmd.EndAt(), cmd.EndOdometer()); err != nil {
		return err
	}

	v, err := vehicleRepo.Get(ctx, a.VehicleID())
	if err != nil {
		return err
	}

	if err = v.EndMission(cmd.EndOdometer()); err != nil {
		return err
	}

	if err = assignmentRepo.Update(ctx, a); err != nil {
		return err
	}

	if err = vehicleRepo.Update(ctx, v); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
