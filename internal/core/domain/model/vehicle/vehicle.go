// Package vehicle implements the Vehicle aggregate of the fleet. A vehicle's
// availability state is kept consistent with its assignments by the assignment
// synchronizer: OnMission if and only if exactly one active assignment exists.
package vehicle

import (
	"errors"

	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/pkg/errs"
	"missionops/internal/pkg/guard"
)

// ErrVehicleIsNotConstructed is returned when a Vehicle instance was not
// created through NewVehicle or RestoreVehicle.
var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")

// Vehicle is the aggregate root for one fleet vehicle.
//
// Vehicle maintains these invariants:
//   - The plate (external registration) is unique across the fleet, enforced
//     by the record store's unique constraint.
//   - The odometer is monotonic non-decreasing under normal operation: an
//     attempt to wind it back is rejected, not silently accepted.
//   - State transitions follow the machine defined on State; the coupling to
//     assignments (OnMission iff one active assignment) is owned jointly with
//     the assignment synchronizer, which updates both rows in one transaction.
type Vehicle struct {
	id    kernel.UUID
	plate string

	make        string
	model       string
	year        *int
	vehicleType string
	fuelType    string

	odometer int64
	state    State

	// version supports optimistic concurrency control in the record store.
	version int

	guard guard.ConstructorGuard
}

// NewVehicle creates a new vehicle in Available state with the given odometer
// reading. Plate, make, model and vehicle type are required.
func NewVehicle(
	id kernel.UUID,
	plate string,
	vehicleMake string,
	model string,
	year *int,
	vehicleType string,
	fuelType string,
	odometer int64,
) (*Vehicle, error) {
	v := &Vehicle{
		state:   Available,
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setPlate(plate),
		v.setMake(vehicleMake),
		v.setModel(model),
		v.setVehicleType(vehicleType),
		v.setOdometer(odometer),
	); err != nil {
		return nil, err
	}

	v.year = year
	v.fuelType = fuelType
	return v, nil
}

// RestoreVehicle reconstructs a vehicle from persistence, restoring its state,
// odometer and optimistic-concurrency version. Intended solely for repository
// implementations.
func RestoreVehicle(
	id kernel.UUID,
	plate string,
	vehicleMake string,
	model string,
	year *int,
	vehicleType string,
	fuelType string,
	odometer int64,
	state State,
	version int,
) (*Vehicle, error) {
	v, err := NewVehicle(id, plate, vehicleMake, model, year, vehicleType, fuelType, odometer)
	if err != nil {
		return nil, err
	}

	if err = state.Validate(); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("vehicle version")
	}

	v.state = state
	v.version = version
	return v, nil
}

// Validate ensures the Vehicle instance was properly constructed.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// IsEqual compares two vehicles by their unique identifiers.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// Plate returns the unique external plate/registration.
func (v *Vehicle) Plate() string {
	return v.plate
}

// Make returns the vehicle make.
func (v *Vehicle) Make() string {
	return v.make
}

// Model returns the vehicle model.
func (v *Vehicle) Model() string {
	return v.model
}

// Year returns the optional manufacture year.
func (v *Vehicle) Year() *int {
	return v.year
}

// VehicleType returns the vehicle type (car, pickup, truck, ...).
func (v *Vehicle) VehicleType() string {
	return v.vehicleType
}

// FuelType returns the optional fuel type.
func (v *Vehicle) FuelType() string {
	return v.fuelType
}

// Odometer returns the current odometer reading.
func (v *Vehicle) Odometer() int64 {
	return v.odometer
}

// State returns the current availability state.
func (v *Vehicle) State() State {
	return v.state
}

// Version returns the optimistic-concurrency version of the aggregate.
func (v *Vehicle) Version() int {
	return v.version
}

// BeginMission binds the vehicle to a new active assignment.
// Fails with a conflict when the vehicle is already on mission, and with an
// invalid-state error when it is in maintenance or out of service. The caller
// persists this change and the assignment row in one transaction.
func (v *Vehicle) BeginMission() error {
	newState, err := v.state.BeginMission()
	if err != nil {
		return err
	}

	v.state = newState
	return nil
}

// EndMission releases the vehicle from its active assignment and advances the
// odometer to endOdometer.
//
// The odometer is monotonic: a reading lower than the current one is rejected
// to protect the fleet mileage invariant. The caller persists this change and
// the assignment closure in one transaction.
func (v *Vehicle) EndMission(endOdometer int64) error {
	if endOdometer < v.odometer {
		return errs.NewValueIsOutOfRangeError("end odometer", endOdometer, v.odometer, "unbounded")
	}

	newState, err := v.state.EndMission()
	if err != nil {
		return err
	}

	v.state = newState
	v.odometer = endOdometer
	return nil
}

// BumpVersion advances the optimistic-concurrency version after a successful
// persisted update. Called by repository implementations only.
func (v *Vehicle) BumpVersion() {
	v.version++
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setPlate(plate string) error {
	if plate == "" {
		return errs.NewValueIsRequiredError("plate")
	}
	v.plate = plate
	return nil
}

func (v *Vehicle) setMake(vehicleMake string) error {
	if vehicleMake == "" {
		return errs.NewValueIsRequiredError("make")
	}
	v.make = vehicleMake
	return nil
}

func (v *Vehicle) setModel(model string) error {
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}
	v.model = model
	return nil
}

func (v *Vehicle) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return errs.NewValueIsRequiredError("vehicle type")
	}
	v.vehicleType = vehicleType
	return nil
}

func (v *Vehicle) setOdometer(odometer int64) error {
	if odometer < 0 {
		return errs.NewValueIsOutOfRangeError("odometer", odometer, 0, "unbounded")
	}
	v.odometer = odometer
	return nil
}
