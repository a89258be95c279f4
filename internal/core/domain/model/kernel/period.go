package kernel

import (
	"fmt"
	"time"

	"missionops/internal/pkg/errs"
	"missionops/internal/pkg/guard"
)

// ErrPeriodIsNotConstructed indicates that a Period was not created through
// the NewPeriod constructor. The zero value of Period is invalid.
var ErrPeriodIsNotConstructed = errs.NewValueIsRequiredError("Period must be created via NewPeriod constructor")

// Period is a value object representing the date range of a mission, from the
// departure date to the return date inclusive.
//
// Period enforces a single invariant for its entire life: the end date is
// never before the start date. Because the fields are immutable after
// construction, no later operation can violate the invariant.
//
// Example:
//
//	period, err := kernel.NewPeriod(
//	    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
//	    time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
//	)
//	if err != nil {
//	    // end date was before start date
//	}
type Period struct {
	start time.Time
	end   time.Time

	guard guard.ConstructorGuard
}

// NewPeriod creates a Period after validating that neither date is zero and
// that end is not before start.
func NewPeriod(start, end time.Time) (Period, error) {
	if start.IsZero() {
		return Period{}, errs.NewValueIsRequiredError("start date")
	}
	if end.IsZero() {
		return Period{}, errs.NewValueIsRequiredError("end date")
	}
	if end.Before(start) {
		return Period{}, errs.NewValueIsInvalidErrorWithCause(
			"end date",
			fmt.Errorf("end date %s is before start date %s", end.Format(time.DateOnly), start.Format(time.DateOnly)),
		)
	}

	return Period{
		start: start,
		end:   end,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Start returns the first day of the period.
func (p Period) Start() time.Time {
	return p.start
}

// End returns the last day of the period.
func (p Period) End() time.Time {
	return p.end
}

// HasBegun reports whether the period has started at the given moment.
func (p Period) HasBegun(now time.Time) bool {
	return !now.Before(p.start)
}

// HasEnded reports whether the period is over at the given moment.
func (p Period) HasEnded(now time.Time) bool {
	return now.After(p.end)
}

// IsEqual compares two periods by their start and end instants.
func (p Period) IsEqual(other Period) bool {
	return p.start.Equal(other.start) && p.end.Equal(other.end)
}

// Validate ensures the Period was created via NewPeriod.
func (p Period) Validate() error {
	return p.guard.Validate(ErrPeriodIsNotConstructed)
}
