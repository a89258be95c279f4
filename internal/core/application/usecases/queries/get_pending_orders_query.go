package queries

import (
	"errors"
	"time"

	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/pkg/guard"
)

var ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
	"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
)

// GetPendingOrdersQuery retrieves all mission orders awaiting a validator
// decision. The actor must hold at least one validator role; which levels
// are still open on each order is visible in the response.
type GetPendingOrdersQuery struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPendingOrdersQuery creates a query scoped to the given actor.
func NewGetPendingOrdersQuery(actorID kernel.UUID) (GetPendingOrdersQuery, error) {
	if err := actorID.Validate(); err != nil {
		return GetPendingOrdersQuery{}, err
	}

	return GetPendingOrdersQuery{
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// ActorID returns the validator requesting the view.
func (q GetPendingOrdersQuery) ActorID() kernel.UUID {
	return q.actorID
}

// GetPendingOrdersQueryResponse is one submitted order awaiting validation.
// The nullable validator IDs show which approval levels are already recorded.
type GetPendingOrdersQueryResponse struct {
	ID              kernel.UUID
	RequesterID     kernel.UUID
	Destination     string
	Purpose         string
	EstimatedBudget *int64
	PeriodStart     time.Time
	PeriodEnd       time.Time
	TeamLeadID      *kernel.UUID
	FinanceID       *kernel.UUID
}
