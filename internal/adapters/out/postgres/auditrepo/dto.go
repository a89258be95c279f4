// Package auditrepo persists the append-only audit trail of workflow
// decisions.
package auditrepo

import (
	"time"

	"github.com/google/uuid"

	"missionops/internal/core/domain/model/audit"
	"missionops/internal/core/domain/model/kernel"
)

// AuditEntryDTO is the database row backing one recorded decision.
type AuditEntryDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;index"`
	ActorID         uuid.UUID `gorm:"type:uuid"`
	Action          string
	SignatureDigest string
	Metadata        string
	RecordedAt      time.Time
}

// TableName overrides GORM's default naming to use "audit_entries".
func (AuditEntryDTO) TableName() string {
	return "audit_entries"
}

func fromDomain(entry *audit.Entry) AuditEntryDTO {
	return AuditEntryDTO{
		ID:              entry.ID().Bytes(),
		OrderID:         entry.OrderID().Bytes(),
		ActorID:         entry.ActorID().Bytes(),
		Action:          string(entry.Action()),
		SignatureDigest: entry.SignatureDigest(),
		Metadata:        entry.Metadata(),
		RecordedAt:      entry.RecordedAt(),
	}
}

func toDomain(dto AuditEntryDTO) (*audit.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return nil, err
	}

	return audit.NewEntry(
		id,
		orderID,
		actorID,
		audit.Action(dto.Action),
		dto.SignatureDigest,
		dto.Metadata,
		dto.RecordedAt,
	)
}
