// Package vehiclerepo persists vehicle aggregates, mapping between the
// domain model and its relational representation.
package vehiclerepo

import (
	"github.com/google/uuid"

	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/core/domain/model/vehicle"
)

// VehicleDTO is the database row backing a vehicle aggregate. The plate
// carries a unique index so two fleet records can never share a
// registration.
type VehicleDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Plate       string    `gorm:"uniqueIndex"`
	Make        string
	Model       string
	Year        *int
	VehicleType string
	FuelType    string
	Odometer    int64
	State       int `gorm:"index"`
	Version     int
}

// TableName overrides GORM's default naming to use "vehicles".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(v *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:          v.ID().Bytes(),
		Plate:       v.Plate(),
		Make:        v.Make(),
		Model:       v.Model(),
		Year:        v.Year(),
		VehicleType: v.VehicleType(),
		FuelType:    v.FuelType(),
		Odometer:    v.Odometer(),
		State:       int(v.State()),
		Version:     v.Version(),
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(
		id,
		dto.Plate,
		dto.Make,
		dto.Model,
		dto.Year,
		dto.VehicleType,
		dto.FuelType,
		dto.Odometer,
		vehicle.State(dto.State),
		dto.Version,
	)
}
