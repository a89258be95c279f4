// Package assignmentrepo persists vehicle assignment records, mapping
// between the domain model and its relational representation.
package assignmentrepo

import (
	"time"

	"github.com/google/uuid"

	"missionops/internal/core/domain/model/assignment"
	"missionops/internal/core/domain/model/kernel"
)

// AssignmentDTO is the database row backing an assignment record. The
// vehicle and order columns are indexed for the active-assignment lookups
// that guard double booking.
type AssignmentDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	VehicleID     uuid.UUID  `gorm:"type:uuid;index"`
	OrderID       *uuid.UUID `gorm:"type:uuid;index"`
	DriverID      *uuid.UUID `gorm:"type:uuid"`
	StartAt       time.Time
	EndAt         *time.Time
	StartOdometer int64
	EndOdometer   *int64
	Reason        string
	Status        int `gorm:"index"`
}

// TableName overrides GORM's default naming to use "assignments".
func (AssignmentDTO) TableName() string {
	return "assignments"
}

func fromDomain(a *assignment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:            a.ID().Bytes(),
		VehicleID:     a.VehicleID().Bytes(),
		OrderID:       rawUUID(a.OrderID()),
		DriverID:      rawUUID(a.DriverID()),
		StartAt:       a.StartAt(),
		EndAt:         a.EndAt(),
		StartOdometer: a.StartOdometer(),
		EndOdometer:   a.EndOdometer(),
		Reason:        a.Reason(),
		Status:        int(a.Status()),
	}
}

func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := domainUUID(dto.OrderID)
	if err != nil {
		return nil, err
	}
	driverID, err := domainUUID(dto.DriverID)
	if err != nil {
		return nil, err
	}

	return assignment.RestoreAssignment(
		id,
		vehicleID,
		orderID,
		driverID,
		dto.StartAt,
		dto.EndAt,
		dto.StartOdometer,
		dto.EndOdometer,
		dto.Reason,
		assignment.Status(dto.Status),
	)
}

func rawUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func domainUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
