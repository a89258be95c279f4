package commands

import (
	"context"

	"missionops/internal/core/domain/model/missionorder"
)

// CreateMissionOrderCommandHandler handles the business logic for opening a
// new mission order draft.
//
// Example:
//
//	handler := NewCreateMissionOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("mission order creation failed: %w", err)
//	}
type CreateMissionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateMissionOrderCommandHandler creates a handler for mission order
// creation. Requires an OrderUoWFactory for transactional persistence.
func NewCreateMissionOrderCommandHandler(uowFactory OrderUoWFactory) CreateMissionOrderCommandHandler {
	return CreateMissionOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the creation command. The order starts in Draft status,
// owned by the requester.
func (h CreateMissionOrderCommandHandler) Handle(ctx context.Context, cmd CreateMissionOrderCommand) error {
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

	order, err := missionorder.NewMissionOrder(
		cmd.OrderID(),
		cmd.RequesterID(),
		cmd.Destination(),
		cmd.Purpose(),
		cmd.PlannedActivities(),
		cmd.EstimatedBudget(),
		cmd.Period(),
	)
	if err != nil {
		return err
	}

	if err = uow.MissionOrderRepository().Add(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
