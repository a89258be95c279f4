package commands

import (
	"errors"
	"time"

	"missionops/internal/pkg/errs"
	"missionops/internal/pkg/guard"
)

// ErrAdvanceMissionsCommandIsNotConstructed is returned when the command was
// not created via its constructor.
var ErrAdvanceMissionsCommandIsNotConstructed = errors.New(
	"AdvanceMissionsCommand must be created via NewAdvanceMissionsCommand constructor",
)

// AdvanceMissionsCommand drives approved missions forward along the clock:
// approved orders whose period has begun become in progress, in-progress
// orders whose period has ended become completed.
type AdvanceMissionsCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewAdvanceMissionsCommand creates a command evaluating mission periods
// against the given instant.
func NewAdvanceMissionsCommand(now time.Time) (AdvanceMissionsCommand, error) {
	if now.IsZero() {
		return AdvanceMissionsCommand{}, errs.NewValueIsRequiredError("now")
	}

	return AdvanceMissionsCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceMissionsCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceMissionsCommandIsNotConstructed)
}

// Now returns the instant mission periods are evaluated against.
func (c AdvanceMissionsCommand) Now() time.Time {
	return c.now
}
