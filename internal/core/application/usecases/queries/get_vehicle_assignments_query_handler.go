package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"missionops/internal/core/domain/model/assignment"
	"missionops/internal/core/domain/model/kernel"
)

// GetVehicleAssignmentsQueryHandler reads assignment history rows straight
// from the database. Most recent assignments come first.
type GetVehicleAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetVehicleAssignmentsQueryHandler creates a handler for assignment
// history queries.
func NewGetVehicleAssignmentsQueryHandler(db *gorm.DB) GetVehicleAssignmentsQueryHandler {
	return GetVehicleAssignmentsQueryHandler{db: db}
}

// Handle returns all assignments matching the query filter.
func (h GetVehicleAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query GetVehicleAssignmentsQuery,
) ([]GetVehicleAssignmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	column := "vehicle_id"
	filter := query.VehicleID()
	if filter == nil {
		column = "order_id"
		filter = query.OrderID()
	}

	assignments := make([]GetVehicleAssignmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			vehicle_id,
			order_id,
			driver_id,
			start_at,
			end_at,
			start_odometer,
			end_odometer,
			reason,
			status
		FROM assignments
		WHERE `+column+` = ?
		ORDER BY start_at DESC, id
	`, filter.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetVehicleAssignmentsQueryResponse
		var id, vehicleID uuid.UUID
		var orderID, driverID uuid.NullUUID
		var endAt sql.NullTime
		var endOdometer sql.NullInt64
		var status assignment.Status

		err = rows.Scan(
			&id,
			&vehicleID,
			&orderID,
			&driverID,
			&resp.StartAt,
			&endAt,
			&resp.StartOdometer,
			&endOdometer,
			&resp.Reason,
			&status,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.VehicleID, err = kernel.UUIDFromBytes(vehicleID[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = optionalUUID(orderID); err != nil {
			return nil, err
		}
		if resp.DriverID, err = optionalUUID(driverID); err != nil {
			return nil, err
		}
		if endAt.Valid {
			resp.EndAt = &endAt.Time
		}
		if endOdometer.Valid {
			resp.EndOdometer = &endOdometer.Int64
		}
		resp.Status = status.String()

		assignments = append(assignments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}
