package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/core/domain/model/missionorder"
	"missionops/internal/core/ports"
)

// ErrActorIsNotValidator is returned when the pending view is requested by a
// user holding no validator role.
var ErrActorIsNotValidator = errors.New("actor holds no validator role")

// GetPendingOrdersQueryHandler reads submitted mission orders straight from
// the database, bypassing the aggregate. Oldest submissions come first so
// validators work the backlog in arrival order.
type GetPendingOrdersQueryHandler struct {
	db    *gorm.DB
	roles ports.RoleResolver
}

// NewGetPendingOrdersQueryHandler creates a handler for the pending
// approvals view.
func NewGetPendingOrdersQueryHandler(db *gorm.DB, roles ports.RoleResolver) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{db: db, roles: roles}
}

// Handle returns all orders in submitted status.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]GetPendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	roles, err := h.roles.RolesOf(ctx, query.ActorID())
	if err != nil {
		return nil, err
	}
	if !ports.HasRole(roles, ports.RoleTeamLead) &&
		!ports.HasRole(roles, ports.RoleFinance) &&
		!ports.HasRole(roles, ports.RoleDirection) {
		return nil, ErrActorIsNotValidator
	}

	orders := make([]GetPendingOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			requester_id,
			destination,
			purpose,
			estimated_budget,
			period_start,
			period_end,
			team_lead_id,
			finance_id
		FROM mission_orders
		WHERE status = ?
		ORDER BY period_start, id
	`, missionorder.Submitted).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPendingOrdersQueryResponse
		var id, requesterID uuid.UUID
		var budget sql.NullInt64
		var teamLeadID, financeID uuid.NullUUID

		err = rows.Scan(
			&id,
			&requesterID,
			&resp.Destination,
			&resp.Purpose,
			&budget,
			&resp.PeriodStart,
			&resp.PeriodEnd,
			&teamLeadID,
			&financeID,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.RequesterID, err = kernel.UUIDFromBytes(requesterID[:]); err != nil {
			return nil, err
		}
		if budget.Valid {
			resp.EstimatedBudget = &budget.Int64
		}
		if resp.TeamLeadID, err = optionalUUID(teamLeadID); err != nil {
			return nil, err
		}
		if resp.FinanceID, err = optionalUUID(financeID); err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func optionalUUID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes(id.UUID[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
