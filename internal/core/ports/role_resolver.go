package ports

import (
	"context"

	"missionops/internal/core/domain/model/kernel"
)

// Role is an opaque role tag attached to a user by the identity system.
type Role string

// Role tags the approval workflow understands. The identity system may attach
// further tags; the core ignores them.
const (
	RoleRequester Role = "requester"
	RoleTeamLead  Role = "team_lead"
	RoleFinance   Role = "finance"
	RoleDirection Role = "direction"
)

// RoleResolver maps a user identity to its set of role tags. Identity and
// role management live outside the core; the workflow only derives boolean
// "may this actor act at this level" decisions from the returned set.
type RoleResolver interface {
	// RolesOf returns the role tags of the given user. An unknown user
	// resolves to an empty set, not an error.
	RolesOf(ctx context.Context, userID kernel.UUID) ([]Role, error)
}

// HasRole reports whether the given role set contains the wanted tag.
func HasRole(roles []Role, wanted Role) bool {
	for _, r := range roles {
		if r == wanted {
			return true
		}
	}
	return false
}
