package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"missionops/internal/core/application/usecases/commands"
	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/core/domain/model/missionorder"
	"missionops/internal/pkg/errs"
)

func TestSubmitMissionOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	requesterID := kernel.NewUUID()
	order := newDraftOrder(t, requesterID)

	cmd, err := commands.NewSubmitMissionOrderCommand(order.ID(), requesterID)
	require.NoError(t, err)

	orderRepo := new(MockMissionOrderRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MissionOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		orderRepo.On("Update", ctx, order).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Append", ctx, mock.AnythingOfType("*audit.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSubmitMissionOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, missionorder.Submitted, order.Status())
	orderRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSubmitMissionOrderCommandHandler_Handle_AlreadySubmitted(t *testing.T) {
	ctx := t.Context()

	requesterID := kernel.NewUUID()
	order := newSubmittedOrder(t, requesterID)

	cmd, err := commands.NewSubmitMissionOrderCommand(order.ID(), requesterID)
	require.NoError(t, err)

	orderRepo := new(MockMissionOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MissionOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSubmitMissionOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSubmitMissionOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	cmd, err := commands.NewSubmitMissionOrderCommand(orderID, kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockMissionOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MissionOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("mission order", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSubmitMissionOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSubmitMissionOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	handler := commands.NewSubmitMissionOrderCommandHandler(new(MockOrderUoWFactory))

	err := handler.Handle(t.Context(), commands.SubmitMissionOrderCommand{})

	require.ErrorIs(t, err, commands.ErrSubmitMissionOrderCommandIsNotConstructed)
}
