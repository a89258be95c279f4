package commands

import (
	"context"
	"errors"
	"time"

	"missionops/internal/core/domain/model/audit"
	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/core/domain/model/missionorder"
	"missionops/internal/core/ports"
)

// ErrActorLacksRole indicates that the acting user does not hold the role tag
// required for the attempted approval level.
var ErrActorLacksRole = errors.New("actor does not hold the required validator role")

// ApproveMissionOrderCommandHandler records a validator approval at one level.
//
// The role resolver is an explicit capability passed into the handler; there
// is no ambient session lookup inside the core. Only the direction level flips
// the order to Approved; intermediate levels record their validator reference
// and an audit entry while the status stays Submitted.
type ApproveMissionOrderCommandHandler struct {
	uowFactory             OrderUoWFactory
	roles                  ports.RoleResolver
	notifier               ports.Notifier
	budgetCommentThreshold int64
}

// NewApproveMissionOrderCommandHandler creates a handler for validator
// approvals. budgetCommentThreshold enables the mandatory-comment rule for
// orders whose estimated budget exceeds it; zero disables the rule.
func NewApproveMissionOrderCommandHandler(
	uowFactory OrderUoWFactory,
	roles ports.RoleResolver,
	notifier ports.Notifier,
	budgetCommentThreshold int64,
) ApproveMissionOrderCommandHandler {
	return ApproveMissionOrderCommandHandler{
		uowFactory:             uowFactory,
		roles:                  roles,
		notifier:               notifier,
		budgetCommentThreshold: budgetCommentThreshold,
	}
}

// Handle verifies the actor's role, applies the approval and appends the
// audit entry in one transaction. On a final approval the requester is
// notified after the commit, fire-and-forget.
func (h ApproveMissionOrderCommandHandler) Handle(ctx context.Context, cmd ApproveMissionOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	roles, err := h.roles.RolesOf(ctx, cmd.ActorID())
	if err != nil {
		return err
	}
	if !ports.HasRole(roles, ports.Role(cmd.Level().RoleTag())) {
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

	if err = order.Approve(cmd.Level(), cmd.ActorID(), cmd.Comment(), h.budgetCommentThreshold); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(),
		order.ID(),
		cmd.ActorID(),
		audit.ActionApproved,
		"",
		"level="+cmd.Level().String(),
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

	if order.Status() == missionorder.Approved {
		h.notifier.Notify(ctx, order.RequesterID(),
			"Mission order approved",
			"Your mission order to "+order.Destination()+" has been approved.",
			"/missions/"+order.ID().String(),
		)
	}

	return nil
}
