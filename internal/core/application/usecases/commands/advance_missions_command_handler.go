package commands

import (
	"context"
	"errors"
	"fmt"

	"missionops/internal/core/domain/model/missionorder"
	"missionops/internal/core/ports"
)

// AdvanceMissionsCommandHandler walks every approved or in-progress order and
// applies the time-based transitions. Each order advances in its own
// transaction so a version conflict on one mission never blocks the rest.
type AdvanceMissionsCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewAdvanceMissionsCommandHandler creates a handler for mission progression.
func NewAdvanceMissionsCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
) AdvanceMissionsCommandHandler {
	return AdvanceMissionsCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle advances all eligible missions, collecting per-order failures.
func (h AdvanceMissionsCommandHandler) Handle(ctx context.Context, cmd AdvanceMissionsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	orders, err := uow.MissionOrderRepository().GetAllApprovedOrInProgress(ctx)
	if rollbackErr := uow.Rollback(ctx); rollbackErr != nil {
		return rollbackErr
	}
	if err != nil {
		return err
	}

	var failures []error
	for _, order := range orders {
		if err := h.advance(ctx, order, cmd); err != nil {
			failures = append(failures, fmt.Errorf("advance mission %s: %w", order.ID(), err))
		}
	}
	return errors.Join(failures...)
}

func (h AdvanceMissionsCommandHandler) advance(
	ctx context.Context,
	order *missionorder.MissionOrder,
	cmd AdvanceMissionsCommand,
) error {
	switch order.Status() {
	case missionorder.Approved:
		if !order.Period().HasBegun(cmd.Now()) {
			return nil
		}
		if err := order.Start(); err != nil {
			return err
		}
	case missionorder.InProgress:
		if !order.Period().HasEnded(cmd.Now()) {
			return nil
		}
		if err := order.Complete(); err != nil {
			return err
		}
	default:
		return nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.MissionOrderRepository().Update(ctx, order); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	switch order.Status() {
	case missionorder.InProgress:
		h.notifier.Notify(ctx, order.RequesterID(),
			"Mission started",
			"Your mission to "+order.Destination()+" is now in progress.",
			"/missions/"+order.ID().String(),
		)
	case missionorder.Completed:
		h.notifier.Notify(ctx, order.RequesterID(),
			"Mission completed",
			"Your mission to "+order.Destination()+" has been completed.",
			"/missions/"+order.ID().String(),
		)
	}

	return nil
}
