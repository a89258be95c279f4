package commands

import (
	"context"
)

// UpdateDraftCommandHandler applies a requester's edit to a draft order.
// The domain enforces that only the owning requester may edit and only while
// the order is still Draft.
type UpdateDraftCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateDraftCommandHandler creates a handler for draft edits.
func NewUpdateDraftCommandHandler(uowFactory OrderUoWFactory) UpdateDraftCommandHandler {
	return UpdateDraftCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the draft, applies the edit and persists it under the
// optimistic version check.
func (h UpdateDraftCommandHandler) Handle(ctx context.Context, cmd UpdateDraftCommand) error {
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

	orderRepo := uow.MissionOrderRepository()
	order, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = order.UpdateDraft(
		cmd.ActorID(),
		cmd.Destination(),
		cmd.Purpose(),
		cmd.PlannedActivities(),
		cmd.EstimatedBudget(),
		cmd.Period(),
	); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
