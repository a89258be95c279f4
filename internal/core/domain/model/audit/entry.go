// Package audit implements the append-only audit trail of mission order
// decisions. Entries are immutable records: once written they are never
// mutated or deleted, making the trail the disambiguating source of truth for
// which validator acted when, alongside the order's validator references.
package audit

import (
	"errors"
	"time"

	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/pkg/errs"
	"missionops/internal/pkg/guard"
)

// ErrEntryIsNotConstructed is returned when an Entry was not created through
// the NewEntry constructor.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// Action tags the kind of decision an audit entry records.
type Action string

const (
	// ActionSubmitted records a requester submitting a draft for approval.
	ActionSubmitted Action = "submitted"

	// ActionApproved records an intermediate validator approval.
	ActionApproved Action = "approved"

	// ActionApprovedWithSignature records the final, signed direction approval.
	// These entries carry the signature digest.
	ActionApprovedWithSignature Action = "approved_with_signature"

	// ActionRejected records a validator rejection.
	ActionRejected Action = "rejected"
)

// Validate checks that the Action is one of the defined tags.
func (a Action) Validate() error {
	switch a {
	case ActionSubmitted, ActionApproved, ActionApprovedWithSignature, ActionRejected:
		return nil
	default:
		return errs.NewValueIsInvalidError("audit action")
	}
}

// Entry is one immutable record of a decision made on a mission order.
type Entry struct {
	id      kernel.UUID
	orderID kernel.UUID
	actorID kernel.UUID

	action          Action
	signatureDigest string
	metadata        string
	recordedAt      time.Time

	guard guard.ConstructorGuard
}

// NewEntry creates an audit entry for the given order and actor.
// The signature digest is required for signed approvals and must be absent
// otherwise; metadata is optional free-form context (e.g. client details).
func NewEntry(
	id kernel.UUID,
	orderID kernel.UUID,
	actorID kernel.UUID,
	action Action,
	signatureDigest string,
	metadata string,
	recordedAt time.Time,
) (*Entry, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), actorID.Validate(), action.Validate()); err != nil {
		return nil, err
	}
	if recordedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("recorded at")
	}
	if action == ActionApprovedWithSignature && signatureDigest == "" {
		return nil, errs.NewValueIsRequiredError("signature digest")
	}
	if action != ActionApprovedWithSignature && signatureDigest != "" {
		return nil, errs.NewValueIsInvalidError("signature digest")
	}

	return &Entry{
		id:              id,
		orderID:         orderID,
		actorID:         actorID,
		action:          action,
		signatureDigest: signatureDigest,
		metadata:        metadata,
		recordedAt:      recordedAt,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Entry instance was properly constructed.
func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// OrderID returns the mission order the entry belongs to.
func (e *Entry) OrderID() kernel.UUID {
	return e.orderID
}

// ActorID returns the user who made the decision.
func (e *Entry) ActorID() kernel.UUID {
	return e.actorID
}

// Action returns the decision tag.
func (e *Entry) Action() Action {
	return e.action
}

// SignatureDigest returns the sealed digest for signed approvals, empty otherwise.
func (e *Entry) SignatureDigest() string {
	return e.signatureDigest
}

// Metadata returns the optional free-form context.
func (e *Entry) Metadata() string {
	return e.metadata
}

// RecordedAt returns the decision timestamp.
func (e *Entry) RecordedAt() time.Time {
	return e.recordedAt
}
