package commands

import (
	"context"
	"time"

	"missionops/internal/core/domain/model/audit"
	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/core/ports"
)

// RejectMissionOrderCommandHandler records a validator rejection.
//
// Rejection does not touch vehicle assignments: an assignment already created
// for the mission stays open and is closed or cancelled through the fleet
// operations, never as a hidden side effect of the order decision.
type RejectMissionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	roles      ports.RoleResolver
	notifier   ports.Notifier
}

// NewRejectMissionOrderCommandHandler creates a handler for rejections.
func NewRejectMissionOrderCommandHandler(
	uowFactory OrderUoWFactory,
	roles ports.RoleResolver,
	notifier ports.Notifier,
) RejectMissionOrderCommandHandler {
	return RejectMissionOrderCommandHandler{
		uowFactory: uowFactory,
		roles:      roles,
		notifier:   notifier,
	}
}

// Handle verifies the actor holds any validator role, applies the rejection
// and appends the audit entry in one transaction, then notifies the requester.
func (h RejectMissionOrderCommandHandler) Handle(ctx context.Context, cmd RejectMissionOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	roles, err := h.roles.RolesOf(ctx, cmd.ActorID())
	if err != nil {
		return err
	}
	if !ports.HasRole(roles, ports.RoleTeamLead) &&
		!ports.HasRole(roles, ports.RoleFinance) &&
		!ports.HasRole(roles, ports.RoleDirection) {
		return ErrActorLacksRole
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = order.Reject(cmd.ActorID(), cmd.Comment()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(),
		order.ID(),
		cmd.ActorID(),
		audit.ActionRejected,
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

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, order.RequesterID(),
		"Mission order rejected",
		"Your mission order to "+order.Destination()+" was rejected: "+cmd.Comment(),
		"/missions/"+order.ID().String(),
	)
	return nil
}
