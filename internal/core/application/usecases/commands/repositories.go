// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"missionops/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// MissionOrderRepoFactory provides access to the mission order repository
	// within a transaction.
	MissionOrderRepoFactory interface {
		MissionOrderRepository() ports.MissionOrderRepository
	}

	// VehicleRepoFactory provides access to the vehicle repository within a
	// transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// AssignmentRepoFactory provides access to the assignment repository
	// within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// AuditRepoFactory provides access to the audit repository within a
	// transaction.
	AuditRepoFactory interface {
		AuditRepository() ports.AuditRepository
	}

	// OrderUoW manages transactions for mission-order workflow operations.
	// Every order transition writes its audit entry in the same transaction,
	// so the audit repository is always part of this unit.
	OrderUoW interface {
		TxManager
		MissionOrderRepoFactory
		AuditRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// FleetUoW manages transactions for the vehicle assignment synchronizer:
	// the assignment row and the vehicle row always change together.
	FleetUoW interface {
		TxManager
		VehicleRepoFactory
		AssignmentRepoFactory
	}

	// FleetUoWFactory creates new fleet unit of work instances.
	FleetUoWFactory interface {
		Create() FleetUoW
	}
)
