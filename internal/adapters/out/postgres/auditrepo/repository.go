package auditrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"missionops/internal/core/domain/model/audit"
	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/pkg/errs"
)

// GormAuditRepository implements AuditRepository using GORM. The trail is
// append-only: there is deliberately no update or delete operation, a
// recorded decision is never rewritten.
type GormAuditRepository struct {
	db *gorm.DB
}

// NewGormAuditRepository creates a new GORM audit repository.
func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

// Append records a new audit entry.
func (r *GormAuditRepository) Append(ctx context.Context, entry *audit.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return errs.NewTimeoutError("append audit entry", err)
		}
		return err
	}

	return nil
}

// GetAllByOrder retrieves all entries for a mission order, oldest first.
func (r *GormAuditRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*audit.Entry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AuditEntryDTO
	err := r.db.WithContext(ctx).
		Order("recorded_at, id").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, errs.NewTimeoutError("list audit entries", err)
		}
		return nil, err
	}

	entries := make([]*audit.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
