// Package assignment implements the VehicleAssignment entity: the binding of
// a fleet vehicle to a mission for a bounded span of time and mileage.
//
// An assignment starts active and transitions to completed exactly once, by
// supplying the end datetime and end odometer together. It is never re-opened.
// At most one active assignment exists per vehicle and per mission order at
// any time; that invariant is owned jointly with the vehicle aggregate and
// enforced transactionally by the assignment synchronizer.
package assignment

import (
	"errors"
	"time"

	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/pkg/errs"
	"missionops/internal/pkg/guard"
)

// ErrAssignmentIsNotConstructed is returned when an Assignment instance was
// not created through NewAssignment or RestoreAssignment.
var ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")

// Status represents the lifecycle state of a vehicle assignment.
type Status int

const (
	// StatusUnknown is the invalid zero value.
	StatusUnknown Status = iota

	// Active means the vehicle is currently bound to the mission.
	Active

	// Completed means the assignment was closed with an end datetime and
	// end odometer. Terminal.
	Completed

	// Cancelled means the assignment was voided before any travel. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Active:        "Active",
		Completed:     "Completed",
		Cancelled:     "Cancelled",
	}
}

// Validate checks that the Status is one of the defined assignment states.
func (s Status) Validate() error {
	if s != Active && s != Completed && s != Cancelled {
		return errs.NewValueIsInvalidError("assignment status")
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Assignment binds a vehicle to a mission order (optionally) and a driver
// (optionally) from a start datetime and start odometer until it is closed.
type Assignment struct {
	id        kernel.UUID
	vehicleID kernel.UUID
	orderID   *kernel.UUID
	driverID  *kernel.UUID

	startAt       time.Time
	endAt         *time.Time
	startOdometer int64
	endOdometer   *int64

	reason string
	status Status

	guard guard.ConstructorGuard
}

// NewAssignment creates a new active assignment for the given vehicle.
// The mission order and driver references are optional. The start odometer
// must not be negative.
func NewAssignment(
	id kernel.UUID,
	vehicleID kernel.UUID,
	orderID *kernel.UUID,
	driverID *kernel.UUID,
	startAt time.Time,
	startOdometer int64,
	reason string,
) (*Assignment, error) {
	a := &Assignment{
		status: Active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setVehicleID(vehicleID),
		a.setStartAt(startAt),
		a.setStartOdometer(startOdometer),
	); err != nil {
		return nil, err
	}

	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return nil, err
		}
	}
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
	}

	a.orderID = orderID
	a.driverID = driverID
	a.reason = reason
	return a, nil
}

// RestoreAssignment reconstructs an assignment from persistence including its
// closure fields and status. Intended solely for repository implementations.
func RestoreAssignment(
	id kernel.UUID,
	vehicleID kernel.UUID,
	orderID *kernel.UUID,
	driverID *kernel.UUID,
	startAt time.Time,
	endAt *time.Time,
	startOdometer int64,
	endOdometer *int64,
	reason string,
	status Status,
) (*Assignment, error) {
	a, err := NewAssignment(id, vehicleID, orderID, driverID, startAt, startOdometer, reason)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	a.endAt = endAt
	a.endOdometer = endOdometer
	a.status = status
	return a, nil
}

// Validate ensures the Assignment instance was properly constructed.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// ID returns the assignment's unique identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// VehicleID returns the assigned vehicle.
func (a *Assignment) VehicleID() kernel.UUID {
	return a.vehicleID
}

// OrderID returns the linked mission order, nil for ad-hoc fleet use.
func (a *Assignment) OrderID() *kernel.UUID {
	return a.orderID
}

// DriverID returns the optional driver reference.
func (a *Assignment) DriverID() *kernel.UUID {
	return a.driverID
}

// StartAt returns the start datetime.
func (a *Assignment) StartAt() time.Time {
	return a.startAt
}

// EndAt returns the end datetime, nil while the assignment is active.
func (a *Assignment) EndAt() *time.Time {
	return a.endAt
}

// StartOdometer returns the odometer reading at departure.
func (a *Assignment) StartOdometer() int64 {
	return a.startOdometer
}

// EndOdometer returns the odometer reading at return, nil while active.
func (a *Assignment) EndOdometer() *int64 {
	return a.endOdometer
}

// Reason returns the optional free-text reason for the assignment.
func (a *Assignment) Reason() string {
	return a.reason
}

// Status returns the current assignment status.
func (a *Assignment) Status() Status {
	return a.status
}

// IsActive reports whether the assignment is still open.
func (a *Assignment) IsActive() bool {
	return a.status == Active
}

// Close completes the assignment by supplying the end datetime and end
// odometer together, atomically.
//
// Requirements: the assignment is Active, endAt is not before the start
// datetime, and endOdometer is not below the start odometer. A completed
// assignment is never re-opened.
func (a *Assignment) Close(endAt time.Time, endOdometer int64) error {
	if a.status != Active {
		return errs.NewInvalidStateError("close", a.status.String())
	}
	if endAt.IsZero() {
		return errs.NewValueIsRequiredError("end datetime")
	}
	if endAt.Before(a.startAt) {
		return errs.NewValueIsInvalidErrorWithCause("end datetime",
			errors.New("end datetime is before the start datetime"))
	}
	if endOdometer < a.startOdometer {
		return errs.NewValueIsOutOfRangeError("end odometer", endOdometer, a.startOdometer, "unbounded")
	}

	a.endAt = &endAt
	a.endOdometer = &endOdometer
	a.status = Completed
	return nil
}

// Cancel voids an active assignment without recording any travel.
func (a *Assignment) Cancel() error {
	if a.status != Active {
		return errs.NewInvalidStateError("cancel", a.status.String())
	}

	a.status = Cancelled
	return nil
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Assignment) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.vehicleID = id
	return nil
}

func (a *Assignment) setStartAt(startAt time.Time) error {
	if startAt.IsZero() {
		return errs.NewValueIsRequiredError("start datetime")
	}
	a.startAt = startAt
	return nil
}

func (a *Assignment) setStartOdometer(startOdometer int64) error {
	if startOdometer < 0 {
		return errs.NewValueIsOutOfRangeError("start odometer", startOdometer, 0, "unbounded")
	}
	a.startOdometer = startOdometer
	return nil
}
