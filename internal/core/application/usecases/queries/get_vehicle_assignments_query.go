package queries

import (
	"errors"
	"time"

	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/pkg/errs"
	"missionops/internal/pkg/guard"
)

var ErrGetVehicleAssignmentsQueryIsNotConstructed = errors.New(
	"GetVehicleAssignmentsQuery must be created via NewGetVehicleAssignmentsQuery constructor",
)

// GetVehicleAssignmentsQuery retrieves the assignment history either for one
// vehicle or for one mission order. Exactly one of the two filters must be
// set.
type GetVehicleAssignmentsQuery struct { //nolint:recvcheck //using for validation
	vehicleID *kernel.UUID
	orderID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetVehicleAssignmentsQueryByVehicle creates a query filtering by vehicle.
func NewGetVehicleAssignmentsQueryByVehicle(vehicleID kernel.UUID) (GetVehicleAssignmentsQuery, error) {
	if err := vehicleID.Validate(); err != nil {
		return GetVehicleAssignmentsQuery{}, err
	}

	return GetVehicleAssignmentsQuery{
		vehicleID: &vehicleID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// NewGetVehicleAssignmentsQueryByOrder creates a query filtering by mission
// order.
func NewGetVehicleAssignmentsQueryByOrder(orderID kernel.UUID) (GetVehicleAssignmentsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetVehicleAssignmentsQuery{}, err
	}

	return GetVehicleAssignmentsQuery{
		orderID: &orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor and carries
// exactly one filter.
func (q GetVehicleAssignmentsQuery) Validate() error {
	if err := q.guard.Validate(ErrGetVehicleAssignmentsQueryIsNotConstructed); err != nil {
		return err
	}
	if q.vehicleID == nil && q.orderID == nil {
		return errs.NewValueIsRequiredError("vehicleID or orderID")
	}
	return nil
}

// VehicleID returns the vehicle filter, or nil.
func (q GetVehicleAssignmentsQuery) VehicleID() *kernel.UUID {
	return q.vehicleID
}

// OrderID returns the mission order filter, or nil.
func (q GetVehicleAssignmentsQuery) OrderID() *kernel.UUID {
	return q.orderID
}

// GetVehicleAssignmentsQueryResponse is one assignment row of the history.
type GetVehicleAssignmentsQueryResponse struct {
	ID            kernel.UUID
	VehicleID     kernel.UUID
	OrderID       *kernel.UUID
	DriverID      *kernel.UUID
	StartAt       time.Time
	EndAt         *time.Time
	StartOdometer int64
	EndOdometer   *int64
	Reason        string
	Status        string
}
