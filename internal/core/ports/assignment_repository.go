package ports

import (
	"context"

	"missionops/internal/core/domain/model/assignment"
	"missionops/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for vehicle
// assignments. Assignments are plain inserts and updates; the at-most-one-
// active invariant is checked inside the same transaction that flips the
// vehicle state.
type AssignmentRepository interface {
	// Add persists a new assignment.
	Add(ctx context.Context, entity *assignment.Assignment) error

	// Update persists changes to an existing assignment (closure, cancellation).
	Update(ctx context.Context, entity *assignment.Assignment) error

	// Get retrieves an assignment by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error)

	// GetActiveByVehicle retrieves the single active assignment for a
	// vehicle, or a not-found error when the vehicle is free.
	GetActiveByVehicle(ctx context.Context, vehicleID kernel.UUID) (*assignment.Assignment, error)

	// GetActiveByOrder retrieves the single active assignment linked to a
	// mission order, or a not-found error when none is open.
	GetActiveByOrder(ctx context.Context, orderID kernel.UUID) (*assignment.Assignment, error)

	// GetAllByVehicle retrieves the assignment history of a vehicle,
	// newest first.
	GetAllByVehicle(ctx context.Context, vehicleID kernel.UUID) ([]*assignment.Assignment, error)

	// GetAllByOrder retrieves all assignments linked to a mission order,
	// newest first.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*assignment.Assignment, error)
}
