package commands

import (
	"context"
	"time"

	"missionops/internal/core/domain/model/audit"
	"missionops/internal/core/domain/model/kernel"
)

// SubmitMissionOrderCommandHandler moves a draft order into the approval
// workflow. A second submit on the same order fails with an invalid-state
// error: "already submitted" is a caller bug to surface, never a no-op.
type SubmitMissionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSubmitMissionOrderCommandHandler creates a handler for order submission.
func NewSubmitMissionOrderCommandHandler(uowFactory OrderUoWFactory) SubmitMissionOrderCommandHandler {
	return SubmitMissionOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle submits the order and appends the audit entry in one transaction.
func (h SubmitMissionOrderCommandHandler) Handle(ctx context.Context, cmd SubmitMissionOrderCommand) error {
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

	if err = order.Submit(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(),
		order.ID(),
		cmd.ActorID(),
		audit.ActionSubmitted,
		"",
		"",
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.AuditRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
