// Package roles implements the RoleResolver port from a static binding
// table loaded at startup. It stands in for an identity provider; the
// workflow only ever asks which role tags a user carries.
package roles

import (
	"context"
	"strings"

	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/core/ports"
	"missionops/internal/pkg/errs"
)

// StaticResolver resolves roles from an in-memory binding table. Unknown
// users resolve to an empty role set.
type StaticResolver struct {
	bindings map[kernel.UUID][]ports.Role
}

// NewStaticResolver creates a resolver over the given bindings. The map is
// copied, later mutation of the argument does not leak in.
func NewStaticResolver(bindings map[kernel.UUID][]ports.Role) *StaticResolver {
	copied := make(map[kernel.UUID][]ports.Role, len(bindings))
	for userID, userRoles := range bindings {
		copied[userID] = append([]ports.Role(nil), userRoles...)
	}
	return &StaticResolver{bindings: copied}
}

// ParseBindings builds a binding table from its configuration form:
// "uuid=role1|role2" entries separated by commas. Used to load the table
// from an environment variable.
func ParseBindings(raw string) (map[kernel.UUID][]ports.Role, error) {
	bindings := make(map[kernel.UUID][]ports.Role)
	if strings.TrimSpace(raw) == "" {
		return bindings, nil
	}

	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		userPart, rolesPart, found := strings.Cut(entry, "=")
		if !found {
			return nil, errs.NewValueIsInvalidError("role binding " + entry)
		}

		userID, err := kernel.UUIDFromString(strings.TrimSpace(userPart))
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("role binding user", err)
		}

		for _, role := range strings.Split(rolesPart, "|") {
			role = strings.TrimSpace(role)
			if role == "" {
				continue
			}
			bindings[userID] = append(bindings[userID], ports.Role(role))
		}
	}

	return bindings, nil
}

// RolesOf returns the role tags bound to the given user.
func (r *StaticResolver) RolesOf(_ context.Context, userID kernel.UUID) ([]ports.Role, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	return append([]ports.Role(nil), r.bindings[userID]...), nil
}
