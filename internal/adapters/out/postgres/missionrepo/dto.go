// Package missionrepo persists mission order aggregates, mapping between the
// domain model and its relational representation.
package missionrepo

import (
	"time"

	"github.com/google/uuid"

	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/core/domain/model/missionorder"
)

// MissionOrderDTO is the database row backing a mission order aggregate.
// The signature columns are nullable as a group: either all three are set
// (the order carries its sealed signature artifact) or none are.
type MissionOrderDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequesterID        uuid.UUID `gorm:"type:uuid;index"`
	Destination        string
	Purpose            string
	PlannedActivities  string
	EstimatedBudget    *int64
	PeriodStart        time.Time
	PeriodEnd          time.Time
	Status             int        `gorm:"index"`
	TeamLeadID         *uuid.UUID `gorm:"type:uuid"`
	FinanceID          *uuid.UUID `gorm:"type:uuid"`
	DirectionID        *uuid.UUID `gorm:"type:uuid"`
	SignatureImagePath *string
	SignatureDigest    *string
	SignatureSignedAt  *time.Time
	ValidationComment  string
	PdfPath            string
	Version            int
}

// TableName overrides GORM's default naming to use "mission_orders".
func (MissionOrderDTO) TableName() string {
	return "mission_orders"
}

func fromDomain(order *missionorder.MissionOrder) MissionOrderDTO {
	dto := MissionOrderDTO{
		ID:                order.ID().Bytes(),
		RequesterID:       order.RequesterID().Bytes(),
		Destination:       order.Destination(),
		Purpose:           order.Purpose(),
		PlannedActivities: order.PlannedActivities(),
		EstimatedBudget:   order.EstimatedBudget(),
		PeriodStart:       order.Period().Start(),
		PeriodEnd:         order.Period().End(),
		Status:            int(order.Status()),
		TeamLeadID:        rawUUID(order.ValidatorAt(missionorder.LevelTeamLead)),
		FinanceID:         rawUUID(order.ValidatorAt(missionorder.LevelFinance)),
		DirectionID:       rawUUID(order.ValidatorAt(missionorder.LevelDirection)),
		ValidationComment: order.ValidationComment(),
		PdfPath:           order.PdfPath(),
		Version:           order.Version(),
	}

	if sig := order.Signature(); sig != nil {
		imagePath := sig.ImagePath()
		digest := sig.Digest()
		signedAt := sig.SignedAt()
		dto.SignatureImagePath = &imagePath
		dto.SignatureDigest = &digest
		dto.SignatureSignedAt = &signedAt
	}

	return dto
}

func toDomain(dto MissionOrderDTO) (*missionorder.MissionOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	requesterID, err := kernel.UUIDFromBytes(dto.RequesterID[:])
	if err != nil {
		return nil, err
	}
	period, err := kernel.NewPeriod(dto.PeriodStart, dto.PeriodEnd)
	if err != nil {
		return nil, err
	}

	teamLeadID, err := domainUUID(dto.TeamLeadID)
	if err != nil {
		return nil, err
	}
	financeID, err := domainUUID(dto.FinanceID)
	if err != nil {
		return nil, err
	}
	directionID, err := domainUUID(dto.DirectionID)
	if err != nil {
		return nil, err
	}

	var sig *missionorder.Signature
	if dto.SignatureImagePath != nil && dto.SignatureDigest != nil && dto.SignatureSignedAt != nil {
		restored, sigErr := missionorder.NewSignature(*dto.SignatureImagePath, *dto.SignatureDigest, *dto.SignatureSignedAt)
		if sigErr != nil {
			return nil, sigErr
		}
		sig = &restored
	}

	return missionorder.RestoreMissionOrder(
		id,
		requesterID,
		dto.Destination,
		dto.Purpose,
		dto.PlannedActivities,
		dto.EstimatedBudget,
		period,
		missionorder.Status(dto.Status),
		teamLeadID, financeID, directionID,
		sig,
		dto.ValidationComment,
		dto.PdfPath,
		dto.Version,
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
