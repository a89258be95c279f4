package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/core/domain/model/missionorder"
	"missionops/internal/core/domain/model/vehicle"
)

func testPeriod(t *testing.T, startDay, endDay int) kernel.Period {
	t.Helper()
	period, err := kernel.NewPeriod(
		time.Date(2026, time.March, startDay, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, endDay, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return period
}

func newDraftOrder(t *testing.T, requesterID kernel.UUID) *missionorder.MissionOrder {
	t.Helper()
	order, err := missionorder.NewMissionOrder(
		kernel.NewUUID(),
		requesterID,
		"Dakar",
		"Field assessment",
		"Site visits and partner meetings",
		nil,
		testPeriod(t, 1, 10),
	)
	require.NoError(t, err)
	return order
}

func newSubmittedOrder(t *testing.T, requesterID kernel.UUID) *missionorder.MissionOrder {
	t.Helper()
	order := newDraftOrder(t, requesterID)
	require.NoError(t, order.Submit())
	return order
}

func newSignedOrder(t *testing.T, requesterID, directorID kernel.UUID) *missionorder.MissionOrder {
	t.Helper()
	order := newSubmittedOrder(t, requesterID)
	sig, err := missionorder.NewSignature(
		"signatures/"+order.ID().String()+".png",
		"deadbeef",
		time.Date(2026, time.February, 20, 9, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.NoError(t, order.ApproveWithSignature(directorID, sig, ""))
	return order
}

func newTestVehicle(t *testing.T) *vehicle.Vehicle {
	t.Helper()
	year := 2021
	v, err := vehicle.NewVehicle(
		kernel.NewUUID(),
		"DK-1234-AB",
		"Toyota",
		"Land Cruiser",
		&year,
		"4x4",
		"diesel",
		52000,
	)
	require.NoError(t, err)
	return v
}
