package missionrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/core/domain/model/missionorder"
	"missionops/internal/pkg/errs"
)

// GormMissionOrderRepository implements MissionOrderRepository using GORM.
type GormMissionOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMissionOrderRepository creates a new GORM mission order repository.
func NewGormMissionOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormMissionOrderRepository {
	return &GormMissionOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new mission order to the database.
func (r *GormMissionOrderRepository) Add(ctx context.Context, aggregate *missionorder.MissionOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return mapDBError("add mission order", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing mission order using a conditional write on the
// aggregate version. A row changed under us means another workflow actor won
// the race; the caller gets a conflict and must re-read before retrying.
func (r *GormMissionOrderRepository) Update(ctx context.Context, aggregate *missionorder.MissionOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	expectedVersion := dto.Version
	dto.Version = expectedVersion + 1

	result := r.db.WithContext(ctx).
		Model(&MissionOrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, expectedVersion).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return mapDBError("update mission order", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&MissionOrderDTO{}).
			Where("id = ?", dto.ID).
			Count(&count).Error; err != nil {
			return mapDBError("update mission order", err)
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("mission order", aggregate.ID().String())
		}
		return errs.NewConflictError("mission order version")
	}

	aggregate.BumpVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a mission order by ID.
func (r *GormMissionOrderRepository) Get(ctx context.Context, id kernel.UUID) (*missionorder.MissionOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MissionOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("mission order", id.String())
		}
		return nil, mapDBError("get mission order", err)
	}

	return toDomain(dto)
}

// GetAllInSubmittedStatus retrieves all orders awaiting validator decisions.
func (r *GormMissionOrderRepository) GetAllInSubmittedStatus(ctx context.Context) ([]*missionorder.MissionOrder, error) {
	return r.getAllByStatus(ctx, missionorder.Submitted)
}

// GetAllApprovedOrInProgress retrieves orders subject to time-based
// lifecycle progression.
func (r *GormMissionOrderRepository) GetAllApprovedOrInProgress(ctx context.Context) ([]*missionorder.MissionOrder, error) {
	return r.getAllByStatus(ctx, missionorder.Approved, missionorder.InProgress)
}

func (r *GormMissionOrderRepository) getAllByStatus(
	ctx context.Context,
	statuses ...missionorder.Status,
) ([]*missionorder.MissionOrder, error) {
	var dtos []MissionOrderDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos, "status IN ?", statuses).Error; err != nil {
		return nil, mapDBError("list mission orders", err)
	}

	orders := make([]*missionorder.MissionOrder, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func mapDBError(operation string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errs.NewTimeoutError(operation, err)
	}
	return err
}
