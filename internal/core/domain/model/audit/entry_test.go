package audit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"missionops/internal/core/domain/model/audit"
	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/pkg/errs"
)

var recordedAt = time.Date(2026, time.February, 20, 9, 0, 0, 0, time.UTC)

func TestNewEntry(t *testing.T) {
	orderID := kernel.NewUUID()
	actorID := kernel.NewUUID()

	t.Run("should create submission entry", func(t *testing.T) {
		entry, err := audit.NewEntry(
			kernel.NewUUID(), orderID, actorID, audit.ActionSubmitted, "", "", recordedAt)

		require.NoError(t, err)
		require.NoError(t, entry.Validate())
		assert.True(t, entry.OrderID().IsEqual(orderID))
		assert.True(t, entry.ActorID().IsEqual(actorID))
		assert.Equal(t, audit.ActionSubmitted, entry.Action())
		assert.Empty(t, entry.SignatureDigest())
		assert.Equal(t, recordedAt, entry.RecordedAt())
	})

	t.Run("signed approval carries the digest", func(t *testing.T) {
		entry, err := audit.NewEntry(
			kernel.NewUUID(), orderID, actorID, audit.ActionApprovedWithSignature,
			"9f86d081884c7d65", "ip=10.0.0.1", recordedAt)

		require.NoError(t, err)
		assert.Equal(t, "9f86d081884c7d65", entry.SignatureDigest())
		assert.Equal(t, "ip=10.0.0.1", entry.Metadata())
	})

	t.Run("signed approval without digest is rejected", func(t *testing.T) {
		entry, err := audit.NewEntry(
			kernel.NewUUID(), orderID, actorID, audit.ActionApprovedWithSignature, "", "", recordedAt)

		require.Error(t, err)
		assert.Nil(t, entry)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("digest on an unsigned action is rejected", func(t *testing.T) {
		entry, err := audit.NewEntry(
			kernel.NewUUID(), orderID, actorID, audit.ActionApproved, "9f86d081", "", recordedAt)

		require.Error(t, err)
		assert.Nil(t, entry)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown action is rejected", func(t *testing.T) {
		entry, err := audit.NewEntry(
			kernel.NewUUID(), orderID, actorID, audit.Action("deleted"), "", "", recordedAt)

		require.Error(t, err)
		assert.Nil(t, entry)
	})

	t.Run("zero timestamp is rejected", func(t *testing.T) {
		entry, err := audit.NewEntry(
			kernel.NewUUID(), orderID, actorID, audit.ActionRejected, "", "", time.Time{})

		require.Error(t, err)
		assert.Nil(t, entry)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestEntry_Validate(t *testing.T) {
	t.Run("should reject nil entry", func(t *testing.T) {
		var entry *audit.Entry

		require.ErrorIs(t, entry.Validate(), audit.ErrEntryIsNotConstructed)
	})

	t.Run("should reject zero-value entry", func(t *testing.T) {
		var entry audit.Entry

		require.ErrorIs(t, entry.Validate(), audit.ErrEntryIsNotConstructed)
	})
}
