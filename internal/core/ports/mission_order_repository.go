package ports

import (
	"context"

	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/core/domain/model/missionorder"
)

// MissionOrderRepository defines the persistence contract for mission order
// aggregates. Updates are compare-and-swap on the aggregate version: a stale
// writer receives a conflict instead of producing a merged state.
type MissionOrderRepository interface {
	// Add persists a new mission order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *missionorder.MissionOrder) error

	// Update persists changes to an existing mission order aggregate using
	// an atomic conditional update on the aggregate's version. Returns a
	// conflict error when another writer got there first, and bumps the
	// aggregate version on success.
	Update(ctx context.Context, aggregate *missionorder.MissionOrder) error

	// Get retrieves a mission order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*missionorder.MissionOrder, error)

	// GetAllInSubmittedStatus retrieves all orders awaiting validator
	// decisions. Used by the pending-approvals view.
	GetAllInSubmittedStatus(ctx context.Context) ([]*missionorder.MissionOrder, error)

	// GetAllApprovedOrInProgress retrieves orders whose lifecycle is driven
	// forward by the mission progress job.
	GetAllApprovedOrInProgress(ctx context.Context) ([]*missionorder.MissionOrder, error)
}
