package commands_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"missionops/internal/core/application/usecases/commands"
	"missionops/internal/core/domain/model/assignment"
	"missionops/internal/core/domain/model/audit"
	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/core/domain/model/missionorder"
	"missionops/internal/core/domain/model/vehicle"
	"missionops/internal/core/ports"
)

type MockMissionOrderRepository struct{ mock.Mock }

func (m *MockMissionOrderRepository) Add(ctx context.Context, o *missionorder.MissionOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockMissionOrderRepository) Update(ctx context.Context, o *missionorder.MissionOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockMissionOrderRepository) Get(ctx context.Context, id kernel.UUID) (*missionorder.MissionOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*missionorder.MissionOrder), args.Error(1)
}

func (m *MockMissionOrderRepository) GetAllInSubmittedStatus(ctx context.Context) ([]*missionorder.MissionOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*missionorder.MissionOrder), args.Error(1)
}

func (m *MockMissionOrderRepository) GetAllApprovedOrInProgress(ctx context.Context) ([]*missionorder.MissionOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*missionorder.MissionOrder), args.Error(1)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) GetAllAvailable(ctx context.Context) ([]*vehicle.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vehicle.Vehicle), args.Error(1)
}

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Add(ctx context.Context, a *assignment.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Update(ctx context.Context, a *assignment.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetActiveByVehicle(ctx context.Context, vehicleID kernel.UUID) (*assignment.Assignment, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetActiveByOrder(ctx context.Context, orderID kernel.UUID) (*assignment.Assignment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetAllByVehicle(ctx context.Context, vehicleID kernel.UUID) ([]*assignment.Assignment, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*assignment.Assignment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*assignment.Assignment), args.Error(1)
}

type MockAuditRepository struct{ mock.Mock }

func (m *MockAuditRepository) Append(ctx context.Context, entry *audit.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*audit.Entry, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*audit.Entry), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) MissionOrderRepository() ports.MissionOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.MissionOrderRepository)
}

func (m *MockOrderUoW) AuditRepository() ports.AuditRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockFleetUoW struct{ mock.Mock }

func (m *MockFleetUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFleetUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFleetUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFleetUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

func (m *MockFleetUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

type MockFleetUoWFactory struct{ mock.Mock }

func (m *MockFleetUoWFactory) Create() commands.FleetUoW {
	args := m.Called()
	return args.Get(0).(commands.FleetUoW)
}

type MockRoleResolver struct{ mock.Mock }

func (m *MockRoleResolver) RolesOf(ctx context.Context, userID kernel.UUID) ([]ports.Role, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.Role), args.Error(1)
}

type MockBlobStore struct{ mock.Mock }

func (m *MockBlobStore) Put(ctx context.Context, path string, data []byte, contentType string, overwrite bool) error {
	args := m.Called(ctx, path, data, contentType, overwrite)
	return args.Error(0)
}

func (m *MockBlobStore) Get(ctx context.Context, path string) ([]byte, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockBlobStore) Delete(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *MockBlobStore) SignedURL(path string, ttl time.Duration) (string, error) {
	args := m.Called(path, ttl)
	return args.String(0), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, userID kernel.UUID, title, message, link string) {
	m.Called(ctx, userID, title, message, link)
}
