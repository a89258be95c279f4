package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control over the record store so that multi-row
// effects (flipping a vehicle to on-mission together with inserting its
// assignment, or approving an order together with appending its audit entry)
// either all commit or all roll back. Client code must explicitly manage the
// transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// MissionOrderRepository returns a MissionOrderRepository bound to the
	// current transaction.
	MissionOrderRepository() MissionOrderRepository

	// VehicleRepository returns a VehicleRepository bound to the current
	// transaction.
	VehicleRepository() VehicleRepository

	// AssignmentRepository returns an AssignmentRepository bound to the
	// current transaction.
	AssignmentRepository() AssignmentRepository

	// AuditRepository returns an AuditRepository bound to the current
	// transaction.
	AuditRepository() AuditRepository
}
