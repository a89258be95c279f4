package kernel_test

import (
	"testing"
	"time"

	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewPeriod(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		period, err := kernel.NewPeriod(date(2024, 3, 1), date(2024, 3, 5))

		require.NoError(t, err)
		assert.Equal(t, date(2024, 3, 1), period.Start())
		assert.Equal(t, date(2024, 3, 5), period.End())
		require.NoError(t, period.Validate())
	})

	t.Run("single day mission is allowed", func(t *testing.T) {
		period, err := kernel.NewPeriod(date(2024, 3, 1), date(2024, 3, 1))

		require.NoError(t, err)
		assert.True(t, period.Start().Equal(period.End()))
	})

	t.Run("end before start fails", func(t *testing.T) {
		_, err := kernel.NewPeriod(date(2024, 3, 5), date(2024, 3, 1))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero start date fails", func(t *testing.T) {
		_, err := kernel.NewPeriod(time.Time{}, date(2024, 3, 1))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero end date fails", func(t *testing.T) {
		_, err := kernel.NewPeriod(date(2024, 3, 1), time.Time{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestPeriod_Validate(t *testing.T) {
	t.Run("zero value period is invalid", func(t *testing.T) {
		var period kernel.Period

		require.Error(t, period.Validate())
	})
}

func TestPeriod_HasBegunHasEnded(t *testing.T) {
	period, err := kernel.NewPeriod(date(2024, 3, 1), date(2024, 3, 5))
	require.NoError(t, err)

	t.Run("before the start", func(t *testing.T) {
		assert.False(t, period.HasBegun(date(2024, 2, 28)))
		assert.False(t, period.HasEnded(date(2024, 2, 28)))
	})

	t.Run("on the start day", func(t *testing.T) {
		assert.True(t, period.HasBegun(date(2024, 3, 1)))
		assert.False(t, period.HasEnded(date(2024, 3, 1)))
	})

	t.Run("on the end day", func(t *testing.T) {
		assert.True(t, period.HasBegun(date(2024, 3, 5)))
		assert.False(t, period.HasEnded(date(2024, 3, 5)))
	})

	t.Run("after the end", func(t *testing.T) {
		assert.True(t, period.HasBegun(date(2024, 3, 6)))
		assert.True(t, period.HasEnded(date(2024, 3, 6)))
	})
}

func TestPeriod_IsEqual(t *testing.T) {
	a, err := kernel.NewPeriod(date(2024, 3, 1), date(2024, 3, 5))
	require.NoError(t, err)
	b, err := kernel.NewPeriod(date(2024, 3, 1), date(2024, 3, 5))
	require.NoError(t, err)
	c, err := kernel.NewPeriod(date(2024, 3, 1), date(2024, 3, 6))
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
