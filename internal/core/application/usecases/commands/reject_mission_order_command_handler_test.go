package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"missionops/internal/core/application/usecases/commands"
	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/core/domain/model/missionorder"
	"missionops/internal/core/ports"
	"missionops/internal/pkg/errs"
)

func TestNewRejectMissionOrderCommand_RequiresComment(t *testing.T) {
	_, err := commands.NewRejectMissionOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "")

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.Contains(t, err.Error(), "comment")
}

func TestRejectMissionOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	requesterID := kernel.NewUUID()
	financeID := kernel.NewUUID()
	order := newSubmittedOrder(t, requesterID)

	cmd, err := commands.NewRejectMissionOrderCommand(order.ID(), financeID, "budget not justified")
	require.NoError(t, err)

	orderRepo := new(MockMissionOrderRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockOrderUoW)
	roles := new(MockRoleResolver)
	notifier := new(MockNotifier)

	mock.InOrder(
		roles.On("RolesOf", ctx, financeID).Return([]ports.Role{ports.RoleFinance}, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MissionOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		orderRepo.On("Update", ctx, order).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Append", ctx, mock.AnythingOfType("*audit.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
	)
	notifier.On("Notify", ctx, requesterID, mock.Anything, mock.Anything, mock.Anything).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRejectMissionOrderCommandHandler(factory, roles, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, missionorder.Rejected, order.Status())
	require.Equal(t, "budget not justified", order.ValidationComment())
	orderRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRejectMissionOrderCommandHandler_Handle_TerminalStateBlocksFurtherTransitions(t *testing.T) {
	ctx := t.Context()

	requesterID := kernel.NewUUID()
	leadID := kernel.NewUUID()
	order := newSubmittedOrder(t, requesterID)
	require.NoError(t, order.Reject(kernel.NewUUID(), "duplicate request"))

	cmd, err := commands.NewRejectMissionOrderCommand(order.ID(), leadID, "still rejected")
	require.NoError(t, err)

	orderRepo := new(MockMissionOrderRepository)
	uow := new(MockOrderUoW)
	roles := new(MockRoleResolver)
	notifier := new(MockNotifier)

	mock.InOrder(
		roles.On("RolesOf", ctx, leadID).Return([]ports.Role{ports.RoleTeamLead}, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MissionOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRejectMissionOrderCommandHandler(factory, roles, notifier)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	require.Equal(t, "duplicate request", order.ValidationComment())
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRejectMissionOrderCommandHandler_Handle_ActorLacksRole(t *testing.T) {
	ctx := t.Context()

	actorID := kernel.NewUUID()
	order := newSubmittedOrder(t, kernel.NewUUID())

	cmd, err := commands.NewRejectMissionOrderCommand(order.ID(), actorID, "no")
	require.NoError(t, err)

	roles := new(MockRoleResolver)
	roles.On("RolesOf", ctx, actorID).Return([]ports.Role{ports.RoleRequester}, nil).Once()

	factory := new(MockOrderUoWFactory)

	handler := commands.NewRejectMissionOrderCommandHandler(factory, roles, new(MockNotifier))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrActorLacksRole)
	factory.AssertNotCalled(t, "Create")
}
