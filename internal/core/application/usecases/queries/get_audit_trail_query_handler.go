package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"missionops/internal/core/domain/model/kernel"
)

// GetAuditTrailQueryHandler reads the append-only audit trail of one order.
// Entries come back in recording order so the trail reads as a timeline.
type GetAuditTrailQueryHandler struct {
	db *gorm.DB
}

// NewGetAuditTrailQueryHandler creates a handler for audit trail queries.
func NewGetAuditTrailQueryHandler(db *gorm.DB) GetAuditTrailQueryHandler {
	return GetAuditTrailQueryHandler{db: db}
}

// Handle returns all audit entries for the order, oldest first.
func (h GetAuditTrailQueryHandler) Handle(
	ctx context.Context,
	query GetAuditTrailQuery,
) ([]GetAuditTrailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetAuditTrailQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			actor_id,
			action,
			signature_digest,
			metadata,
			recorded_at
		FROM audit_entries
		WHERE order_id = ?
		ORDER BY recorded_at, id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAuditTrailQueryResponse
		var id, actorID uuid.UUID

		err = rows.Scan(
			&id,
			&actorID,
			&resp.Action,
			&resp.SignatureDigest,
			&resp.Metadata,
			&resp.RecordedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.ActorID, err = kernel.UUIDFromBytes(actorID[:]); err != nil {
			return nil, err
		}

		entries = append(entries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
