package ports

import (
	"context"

	"missionops/internal/core/domain/model/audit"
	"missionops/internal/core/domain/model/kernel"
)

// AuditRepository defines the persistence contract for the append-only audit
// trail. There is deliberately no update or delete: entries are immutable
// records of decisions.
type AuditRepository interface {
	// Append persists a new audit entry.
	Append(ctx context.Context, entry *audit.Entry) error

	// GetAllByOrder retrieves the audit trail of a mission order,
	// oldest first.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*audit.Entry, error)
}
