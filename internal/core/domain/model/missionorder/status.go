package missionorder

import (
	"missionops/internal/pkg/errs"
)

// Status represents the lifecycle state of a mission order.
// It implements a state machine with defined transitions to ensure
// orders follow the approval workflow.
//
// State transitions:
//
//	Draft ──submit──> Submitted ──approve(direction)──> Approved ──> InProgress ──> Completed
//	                      │
//	                      └──reject──> Rejected
//
// Intermediate approvals (team lead, finance) do not change the status: the
// order stays Submitted until the direction level signs off. The validator
// references and the audit trail are the source of truth for which levels have
// already approved.
//
// Rejected and Completed are terminal states with no further transitions.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status of a freshly created mission order.
	// Only the requester may edit the order while it is a draft.
	Draft

	// Submitted indicates the order is awaiting validator decisions.
	Submitted

	// Approved indicates the direction level signed off on the order.
	// Core fields are immutable from this point on; only the PDF
	// reference may still be set.
	Approved

	// Rejected is a terminal state reached by a validator rejection.
	Rejected

	// InProgress indicates the mission has started.
	InProgress

	// Completed is the terminal state of a finished mission.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Draft:      "Draft",
		Submitted:  "Submitted",
		Approved:   "Approved",
		Rejected:   "Rejected",
		InProgress: "InProgress",
		Completed:  "Completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:      "Draft",
		Submitted:  "Submitted",
		Approved:   "Approved",
		Rejected:   "Rejected",
		InProgress: "InProgress",
		Completed:  "Completed",
	}
}

// Validate checks that the Status is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid. Used when reconstructing
// orders from persistence.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", errs.NewValueIsOutOfRangeError("status", int(s), int(Draft), int(Completed)))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Rejected || s == Completed
}

// Submit transitions the status to Submitted.
//
// The only valid source state is Draft. A second submit is a caller bug and
// must surface as an error, never a silent no-op.
func (s Status) Submit() (Status, error) {
	if s != Draft {
		return 0, errs.NewInvalidStateError("submit", s.String())
	}
	return Submitted, nil
}

// Approve transitions the status to Approved.
//
// The only valid source state is Submitted. Intermediate approval levels must
// not call this; they leave the status untouched.
func (s Status) Approve() (Status, error) {
	if s != Submitted {
		return 0, errs.NewInvalidStateError("approve", s.String())
	}
	return Approved, nil
}

// Reject transitions the status to Rejected, a terminal state.
// The only valid source state is Submitted.
func (s Status) Reject() (Status, error) {
	if s != Submitted {
		return 0, errs.NewInvalidStateError("reject", s.String())
	}
	return Rejected, nil
}

// Start transitions the status to InProgress once the mission begins.
// The only valid source state is Approved.
func (s Status) Start() (Status, error) {
	if s != Approved {
		return 0, errs.NewInvalidStateError("start", s.String())
	}
	return InProgress, nil
}

// Complete transitions the status to Completed, a terminal state.
// The only valid source state is InProgress.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewInvalidStateError("complete", s.String())
	}
	return Completed, nil
}
