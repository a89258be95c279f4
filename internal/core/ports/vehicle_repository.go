package ports

import (
	"context"

	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle aggregates.
// Like mission orders, vehicle updates are compare-and-swap on the aggregate
// version, so concurrent fleet operations on one vehicle serialize through
// the store.
type VehicleRepository interface {
	// Add persists a new vehicle. The plate is unique across the fleet;
	// a duplicate surfaces as a conflict from the store's unique constraint.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle using an atomic
	// conditional update on the aggregate's version, bumping it on success.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get retrieves a vehicle by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetAllAvailable retrieves vehicles currently free for assignment.
	GetAllAvailable(ctx context.Context) ([]*vehicle.Vehicle, error)
}
