package commands

import (
	"context"
	"errors"

	"missionops/internal/core/domain/model/assignment"
	"missionops/internal/pkg/errs"
)

// CreateAssignmentCommandHandler binds a vehicle to a mission.
//
// The assignment row and the vehicle state change are one atomic step: both
// writes commit or both roll back, so the fleet invariant (a vehicle is
// on-mission iff exactly one active assignment exists for it) holds at every
// commit point. A vehicle that already has an active assignment, and a mission
// order that already has one, each surface a conflict.
type CreateAssignmentCommandHandler struct {
	uowFactory FleetUoWFactory
}

// NewCreateAssignmentCommandHandler creates a handler for opening assignments.
func NewCreateAssignmentCommandHandler(uowFactory FleetUoWFactory) CreateAssignmentCommandHandler {
	return CreateAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle opens the assignment and flips the vehicle to on-mission in one
// transaction.
func (h CreateAssignmentCommandHandler) Handle(ctx context.Context, cmd CreateAssignmentCommand) error {
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

	vehicleRepo := uow.VehicleRepository()
	assignmentRepo := uow.AssignmentRepository()

	v, err := vehicleRepo.Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	// BeginMission rejects a vehicle that is already on mission, but the
	// assignment table is the source of truth for the invariant, so the
	// active row is checked inside the same transaction as well.
	if _, err = assignmentRepo.GetActiveByVehicle(ctx, cmd.VehicleID()); err == nil {
		return errs.NewConflictError("vehicle already has an active assignment")
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if cmd.OrderID() != nil {
		if _, err = assignmentRepo.GetActiveByOrder(ctx, *cmd.OrderID()); err == nil {
			return errs.NewConflictError("mission order already has an active assignment")
		} else if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
	}

	if err = v.BeginMission(); err != nil {
		return err
	}

	a, err := assignment.NewAssignment(
		cmd.AssignmentID(),
		cmd.VehicleID(),
		cmd.OrderID(),
		cmd.DriverID(),
		cmd.StartAt(),
		cmd.StartOdometer(),
		cmd.Reason(),
	)
	if err != nil {
		return err
	}

	if err = assignmentRepo.Add(ctx, a); err != nil {
		return err
	}

	if err = vehicleRepo.Update(ctx, v); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
