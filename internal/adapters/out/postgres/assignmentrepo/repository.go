package assignmentrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"missionops/internal/core/domain/model/assignment"
	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/pkg/errs"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists a new assignment.
func (r *GormAssignmentRepository) Add(ctx context.Context, entity *assignment.Assignment) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return mapDBError("add assignment", err)
	}

	r.tracker.TrackAggregate(entity.ID(), entity)
	return nil
}

// Update persists changes to an existing assignment. Assignments carry no
// version column: they are only mutated together with their vehicle, whose
// conditional update already serializes concurrent writers.
func (r *GormAssignmentRepository) Update(ctx context.Context, entity *assignment.Assignment) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	result := r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return mapDBError("update assignment", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("assignment", entity.ID().String())
	}

	r.tracker.TrackAggregate(entity.ID(), entity)
	return nil
}

// Get retrieves an assignment by ID.
func (r *GormAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", id.String())
		}
		return nil, mapDBError("get assignment", err)
	}

	return toDomain(dto)
}

// GetActiveByVehicle retrieves the single active assignment for a vehicle.
func (r *GormAssignmentRepository) GetActiveByVehicle(ctx context.Context, vehicleID kernel.UUID) (*assignment.Assignment, error) {
	if err := vehicleID.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	err := r.db.WithContext(ctx).
		First(&dto, "vehicle_id = ? AND status = ?", vehicleID.Bytes(), assignment.Active).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("active assignment for vehicle", vehicleID.String())
		}
		return nil, mapDBError("get active assignment", err)
	}

	return toDomain(dto)
}

// GetActiveByOrder retrieves the single active assignment linked to a
// mission order.
func (r *GormAssignmentRepository) GetActiveByOrder(ctx context.Context, orderID kernel.UUID) (*assignment.Assignment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND status = ?", orderID.Bytes(), assignment.Active).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("active assignment for order", orderID.String())
		}
		return nil, mapDBError("get active assignment", err)
	}

	return toDomain(dto)
}

// GetAllByVehicle retrieves the assignment history of a vehicle, newest
// first.
func (r *GormAssignmentRepository) GetAllByVehicle(ctx context.Context, vehicleID kernel.UUID) ([]*assignment.Assignment, error) {
	if err := vehicleID.Validate(); err != nil {
		return nil, err
	}

	return r.getAll(ctx, "vehicle_id = ?", vehicleID.Bytes())
}

// GetAllByOrder retrieves all assignments linked to a mission order, newest
// first.
func (r *GormAssignmentRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*assignment.Assignment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	return r.getAll(ctx, "order_id = ?", orderID.Bytes())
}

func (r *GormAssignmentRepository) getAll(ctx context.Context, condition string, arg any) ([]*assignment.Assignment, error) {
	var dtos []AssignmentDTO
	if err := r.db.WithContext(ctx).Order("start_at DESC, id").Find(&dtos, condition, arg).Error; err != nil {
		return nil, mapDBError("list assignments", err)
	}

	assignments := make([]*assignment.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

func mapDBError(operation string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errs.NewTimeoutError(operation, err)
	}
	return err
}
