package queries

import (
	"errors"
	"time"

	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/pkg/guard"
)

var ErrGetAuditTrailQueryIsNotConstructed = errors.New(
	"GetAuditTrailQuery must be created via NewGetAuditTrailQuery constructor",
)

// GetAuditTrailQuery retrieves the full decision history of one mission
// order, oldest entry first.
type GetAuditTrailQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAuditTrailQuery creates a query for the given order.
func NewGetAuditTrailQuery(orderID kernel.UUID) (GetAuditTrailQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetAuditTrailQuery{}, err
	}

	return GetAuditTrailQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAuditTrailQuery) Validate() error {
	return q.guard.Validate(ErrGetAuditTrailQueryIsNotConstructed)
}

// OrderID returns the order whose trail is requested.
func (q GetAuditTrailQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetAuditTrailQueryResponse is one recorded workflow decision.
type GetAuditTrailQueryResponse struct {
	ID              kernel.UUID
	ActorID         kernel.UUID
	Action          string
	SignatureDigest string
	Metadata        string
	RecordedAt      time.Time
}
