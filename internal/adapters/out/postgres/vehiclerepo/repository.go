package vehiclerepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/core/domain/model/vehicle"
	"missionops/internal/pkg/errs"
)

// GormVehicleRepository implements VehicleRepository using GORM.
type GormVehicleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormVehicleRepository creates a new GORM vehicle repository.
func NewGormVehicleRepository(db *gorm.DB, tracker aggregateTracker) *GormVehicleRepository {
	return &GormVehicleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new vehicle to the database.
func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return mapDBError("add vehicle", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing vehicle using a conditional write on the
// aggregate version. Two dispatchers assigning the same vehicle at once
// resolve here: the second write sees a moved version and gets a conflict.
func (r *GormVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	expectedVersion := dto.Version
	dto.Version = expectedVersion + 1

	result := r.db.WithContext(ctx).
		Model(&VehicleDTO{}).
		Where("id = ? AND version = ?", dto.ID, expectedVersion).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return mapDBError("update vehicle", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&VehicleDTO{}).
			Where("id = ?", dto.ID).
			Count(&count).Error; err != nil {
			return mapDBError("update vehicle", err)
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("vehicle", aggregate.ID().String())
		}
		return errs.NewConflictError("vehicle version")
	}

	aggregate.BumpVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a vehicle by ID.
func (r *GormVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", id.String())
		}
		return nil, mapDBError("get vehicle", err)
	}

	return toDomain(dto)
}

// GetAllAvailable retrieves all vehicles in the available state.
func (r *GormVehicleRepository) GetAllAvailable(ctx context.Context) ([]*vehicle.Vehicle, error) {
	var dtos []VehicleDTO
	if err := r.db.WithContext(ctx).Order("plate").Find(&dtos, "state = ?", vehicle.Available).Error; err != nil {
		return nil, mapDBError("list available vehicles", err)
	}

	vehicles := make([]*vehicle.Vehicle, 0, len(dtos))
	for _, dto := range dtos {
		v, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}

	return vehicles, nil
}

func mapDBError(operation string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errs.NewTimeoutError(operation, err)
	}
	return err
}
