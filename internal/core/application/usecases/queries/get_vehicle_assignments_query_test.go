package queries_test

import (
	"testing"

	"missionops/internal/core/application/usecases/queries"
	"missionops/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetVehicleAssignmentsQueryByVehicle_Valid(t *testing.T) {
	vehicleID := kernel.NewUUID()
	query, err := queries.NewGetVehicleAssignmentsQueryByVehicle(vehicleID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	require.NotNil(t, query.VehicleID())
	assert.Equal(t, vehicleID, *query.VehicleID())
	assert.Nil(t, query.OrderID())
}

func TestNewGetVehicleAssignmentsQueryByOrder_Valid(t *testing.T) {
	orderID := kernel.NewUUID()
	query, err := queries.NewGetVehicleAssignmentsQueryByOrder(orderID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	require.NotNil(t, query.OrderID())
	assert.Equal(t, orderID, *query.OrderID())
	assert.Nil(t, query.VehicleID())
}

func TestNewGetVehicleAssignmentsQuery_InvalidFilter(t *testing.T) {
	_, err := queries.NewGetVehicleAssignmentsQueryByVehicle(kernel.UUID{})
	require.Error(t, err)

	_, err = queries.NewGetVehicleAssignmentsQueryByOrder(kernel.UUID{})
	require.Error(t, err)
}

func TestGetVehicleAssignmentsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetVehicleAssignmentsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetVehicleAssignmentsQueryIsNotConstructed)
}
