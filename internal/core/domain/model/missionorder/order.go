package missionorder

import (
	"errors"

	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/pkg/errs"
	"missionops/internal/pkg/guard"
)

var (
	// ErrMissionOrderIsNotConstructed is returned when a MissionOrder instance was
	// not created through NewMissionOrder or RestoreMissionOrder.
	ErrMissionOrderIsNotConstructed = errors.New("MissionOrder must be created via NewMissionOrder constructor")

	// ErrOnlyRequesterMayEditDraft indicates that someone other than the owning
	// requester attempted to edit a draft order.
	ErrOnlyRequesterMayEditDraft = errors.New("only the requester may edit a draft mission order")

	// ErrAlreadySigned indicates an attempt to sign an order that already
	// carries a signature artifact. Signatures are write-once: re-signing
	// requires a new order, there is no amendment workflow.
	ErrAlreadySigned = errors.New("mission order is already signed")

	// ErrLevelAlreadyApproved indicates a second approval at a level that has
	// already recorded its validator.
	ErrLevelAlreadyApproved = errors.New("approval level has already been recorded")
)

// MissionOrder is the aggregate root of the mission approval workflow. It owns
// the lifecycle of a travel request from draft through sequential validator
// approval to completion, together with the write-once signature artifact that
// seals the final approval.
//
// MissionOrder maintains these invariants:
//   - The travel period always satisfies end >= start (enforced by kernel.Period).
//   - The requester is set at creation and immutable.
//   - Core fields are mutable only by the requester and only while Draft.
//   - Each approval level records its validator at most once.
//   - The signature artifact is write-once: once sealed it is never replaced.
//   - After approval only the PDF reference may change, and setting it is
//     idempotent because the PDF is derived, reproducible data, not evidence.
//
// The struct uses private fields; all mutation goes through validated methods
// that enforce the status machine defined on Status.
type MissionOrder struct {
	id          kernel.UUID
	requesterID kernel.UUID

	destination       string
	purpose           string
	plannedActivities string
	estimatedBudget   *int64
	period            kernel.Period

	status Status

	teamLeadID  *kernel.UUID
	financeID   *kernel.UUID
	directionID *kernel.UUID

	signature         *Signature
	validationComment string
	pdfPath           string

	// version supports optimistic concurrency control in the record store.
	// Incremented on every persisted update; a stale version loses the race.
	version int

	guard guard.ConstructorGuard
}

// NewMissionOrder creates a new mission order in Draft status owned by the
// given requester.
//
// Validation failures are aggregated: an invalid ID, an empty destination or
// purpose, a negative estimated budget, or an unconstructed period each
// contribute to the returned error.
//
// Example:
//
//	period, _ := kernel.NewPeriod(start, end)
//	order, err := missionorder.NewMissionOrder(
//	    kernel.NewUUID(), requesterID, "Dakar", "Field visit", "", nil, period,
//	)
//	if err != nil {
//	    // handle validation error
//	}
func NewMissionOrder(
	id kernel.UUID,
	requesterID kernel.UUID,
	destination string,
	purpose string,
	plannedActivities string,
	estimatedBudget *int64,
	period kernel.Period,
) (*MissionOrder, error) {
	order := &MissionOrder{
		status:  Draft,
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setRequesterID(requesterID),
		order.setDestination(destination),
		order.setPurpose(purpose),
		order.setEstimatedBudget(estimatedBudget),
		order.setPeriod(period),
	); err != nil {
		return nil, err
	}

	order.plannedActivities = plannedActivities
	return order, nil
}

// RestoreMissionOrder reconstructs a mission order from persistence, restoring
// it to its previously persisted state including status, validator references,
// the signature artifact and the optimistic-concurrency version.
//
// Unlike NewMissionOrder this accepts any valid status; it is intended solely
// for repository implementations.
func RestoreMissionOrder(
	id kernel.UUID,
	requesterID kernel.UUID,
	destination string,
	purpose string,
	plannedActivities string,
	estimatedBudget *int64,
	period kernel.Period,
	status Status,
	teamLeadID, financeID, directionID *kernel.UUID,
	sig *Signature,
	validationComment string,
	pdfPath string,
	version int,
) (*MissionOrder, error) {
	order, err := NewMissionOrder(id, requesterID, destination, purpose, plannedActivities, estimatedBudget, period)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if sig != nil {
		if err = sig.Validate(); err != nil {
			return nil, err
		}
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("mission order version")
	}

	order.status = status
	order.teamLeadID = teamLeadID
	order.financeID = financeID
	order.directionID = directionID
	order.signature = sig
	order.validationComment = validationComment
	order.pdfPath = pdfPath
	order.version = version
	return order, nil
}

// Validate ensures the MissionOrder instance was properly constructed.
func (o *MissionOrder) Validate() error {
	if o == nil {
		return ErrMissionOrderIsNotConstructed
	}
	return o.guard.Validate(ErrMissionOrderIsNotConstructed)
}

// IsEqual compares two mission orders by their unique identifiers.
func (o *MissionOrder) IsEqual(other *MissionOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *MissionOrder) ID() kernel.UUID {
	return o.id
}

// RequesterID returns the owning requester. Set at creation, immutable.
func (o *MissionOrder) RequesterID() kernel.UUID {
	return o.requesterID
}

// Destination returns the mission destination.
func (o *MissionOrder) Destination() string {
	return o.destination
}

// Purpose returns the purpose text of the mission.
func (o *MissionOrder) Purpose() string {
	return o.purpose
}

// PlannedActivities returns the optional planned-activities text.
func (o *MissionOrder) PlannedActivities() string {
	return o.plannedActivities
}

// EstimatedBudget returns the optional estimated budget.
// Returns nil when no budget was declared.
func (o *MissionOrder) EstimatedBudget() *int64 {
	return o.estimatedBudget
}

// Period returns the travel period.
func (o *MissionOrder) Period() kernel.Period {
	return o.period
}

// Status returns the current lifecycle status.
func (o *MissionOrder) Status() Status {
	return o.status
}

// ValidatorAt returns the validator recorded for the given approval level.
// Returns nil if that level has not approved yet.
func (o *MissionOrder) ValidatorAt(level Level) *kernel.UUID {
	switch level {
	case LevelTeamLead:
		return o.teamLeadID
	case LevelFinance:
		return o.financeID
	case LevelDirection:
		return o.directionID
	default:
		return nil
	}
}

// Signature returns the sealed signature artifact, nil if the order is unsigned.
func (o *MissionOrder) Signature() *Signature {
	return o.signature
}

// ValidationComment returns the most recent validator comment.
func (o *MissionOrder) ValidationComment() string {
	return o.validationComment
}

// PdfPath returns the blob path of the generated mission-order document,
// empty if none has been attached yet.
func (o *MissionOrder) PdfPath() string {
	return o.pdfPath
}

// Version returns the optimistic-concurrency version of the aggregate.
func (o *MissionOrder) Version() int {
	return o.version
}

// UpdateDraft replaces the core fields of a draft order.
//
// Only the owning requester may edit, and only while the order is Draft; any
// other state surfaces an invalid-state error because post-submission edits
// would bypass the approval workflow.
func (o *MissionOrder) UpdateDraft(
	actorID kernel.UUID,
	destination string,
	purpose string,
	plannedActivities string,
	estimatedBudget *int64,
	period kernel.Period,
) error {
	if o.status != Draft {
		return errs.NewInvalidStateError("edit", o.status.String())
	}
	if !actorID.IsEqual(o.requesterID) {
		return ErrOnlyRequesterMayEditDraft
	}

	if err := errors.Join(
		o.setDestination(destination),
		o.setPurpose(purpose),
		o.setEstimatedBudget(estimatedBudget),
		o.setPeriod(period),
	); err != nil {
		return err
	}

	o.plannedActivities = plannedActivities
	return nil
}

// Submit moves the order from Draft to Submitted.
// A second submit fails: "already submitted" is a caller bug to surface,
// not silently swallow.
func (o *MissionOrder) Submit() error {
	newStatus, err := o.status.Submit()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Approve records a validator decision at the given level.
//
// The order must be Submitted. Each level records its validator at most once.
// When the estimated budget exceeds budgetCommentThreshold a non-empty comment
// is mandatory. Only the final (direction) level flips the status to Approved;
// intermediate levels leave it Submitted, and the validator references plus
// the audit trail disambiguate which levels have already signed off.
func (o *MissionOrder) Approve(level Level, validatorID kernel.UUID, comment string, budgetCommentThreshold int64) error {
	if err := level.Validate(); err != nil {
		return err
	}
	if err := validatorID.Validate(); err != nil {
		return err
	}
	if o.status != Submitted {
		return errs.NewInvalidStateError("approve", o.status.String())
	}
	if o.ValidatorAt(level) != nil {
		return errs.NewConflictErrorWithCause("approval level "+level.String(), ErrLevelAlreadyApproved)
	}
	if o.requiresComment(budgetCommentThreshold) && comment == "" {
		return errs.NewValueIsRequiredError("comment")
	}

	if level.IsFinal() {
		newStatus, err := o.status.Approve()
		if err != nil {
			return err
		}
		o.status = newStatus
	}

	o.recordValidator(level, validatorID)
	if comment != "" {
		o.validationComment = comment
	}
	return nil
}

// ApproveWithSignature seals the final, direction-level approval with a
// signature artifact.
//
// The order must be Submitted and unsigned; a second signature attempt fails
// with a conflict and the original artifact stays untouched. On success the
// direction validator is recorded, the artifact is sealed and the status
// becomes Approved. Core fields are immutable from this point on.
func (o *MissionOrder) ApproveWithSignature(validatorID kernel.UUID, sig Signature, comment string) error {
	if err := validatorID.Validate(); err != nil {
		return err
	}
	if err := sig.Validate(); err != nil {
		return err
	}
	if o.signature != nil {
		return errs.NewConflictErrorWithCause("signature", ErrAlreadySigned)
	}
	if o.status != Submitted {
		return errs.NewInvalidStateError("sign", o.status.String())
	}

	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.directionID = &validatorID
	o.signature = &sig
	if comment != "" {
		o.validationComment = comment
	}
	return nil
}

// Reject moves a submitted order to the terminal Rejected state.
// A non-empty comment is mandatory: every rejection must be explained.
func (o *MissionOrder) Reject(validatorID kernel.UUID, comment string) error {
	if err := validatorID.Validate(); err != nil {
		return err
	}
	if comment == "" {
		return errs.NewValueIsRequiredError("comment")
	}

	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.validationComment = comment
	return nil
}

// Start moves an approved order to InProgress once its period has begun.
func (o *MissionOrder) Start() error {
	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete moves an in-progress order to the terminal Completed state.
func (o *MissionOrder) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// SetPdfPath stores the blob path of the generated mission-order document.
//
// Allowed once the order has reached a stable post-approval state. Unlike the
// signature the PDF is a derived, reproducible artifact, so regeneration simply
// overwrites the stored path and calling this repeatedly is safe.
func (o *MissionOrder) SetPdfPath(path string) error {
	if path == "" {
		return errs.NewValueIsRequiredError("pdf path")
	}
	if o.status != Approved && o.status != InProgress && o.status != Completed {
		return errs.NewInvalidStateError("attach document", o.status.String())
	}

	o.pdfPath = path
	return nil
}

// BumpVersion advances the optimistic-concurrency version after a successful
// persisted update. Called by repository implementations only.
func (o *MissionOrder) BumpVersion() {
	o.version++
}

func (o *MissionOrder) recordValidator(level Level, validatorID kernel.UUID) {
	switch level {
	case LevelTeamLead:
		o.teamLeadID = &validatorID
	case LevelFinance:
		o.financeID = &validatorID
	case LevelDirection:
		o.directionID = &validatorID
	}
}

func (o *MissionOrder) requiresComment(threshold int64) bool {
	return threshold > 0 && o.estimatedBudget != nil && *o.estimatedBudget > threshold
}

func (o *MissionOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *MissionOrder) setRequesterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.requesterID = id
	return nil
}

func (o *MissionOrder) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	o.destination = destination
	return nil
}

func (o *MissionOrder) setPurpose(purpose string) error {
	if purpose == "" {
		return errs.NewValueIsRequiredError("purpose")
	}
	o.purpose = purpose
	return nil
}

func (o *MissionOrder) setEstimatedBudget(budget *int64) error {
	if budget != nil && *budget < 0 {
		return errs.NewValueIsOutOfRangeError("estimated budget", *budget, 0, "unbounded")
	}
	o.estimatedBudget = budget
	return nil
}

func (o *MissionOrder) setPeriod(period kernel.Period) error {
	if err := period.Validate(); err != nil {
		return err
	}
	o.period = period
	return nil
}
