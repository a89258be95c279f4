package missionorder

import (
	"missionops/internal/pkg/errs"
)

// Level identifies one of the sequential approval levels a mission order
// passes through. Conceptually the sequence is team lead, then finance, then
// direction; only the direction level moves the order to Approved and only the
// direction level may carry a signature artifact.
type Level int

const (
	// LevelUnknown is the invalid zero value.
	LevelUnknown Level = iota

	// LevelTeamLead is the first, team-lead approval level.
	LevelTeamLead

	// LevelFinance is the intermediate, finance approval level.
	LevelFinance

	// LevelDirection is the final approval level. Direction approval flips
	// the order status to Approved and is the only level that signs.
	LevelDirection
)

func getLevelStrings() map[Level]string {
	return map[Level]string{
		LevelUnknown:   "Unknown",
		LevelTeamLead:  "TeamLead",
		LevelFinance:   "Finance",
		LevelDirection: "Direction",
	}
}

// LevelFromRoleTag maps a role tag from the role resolver to the approval
// level that role is entitled to act at.
func LevelFromRoleTag(tag string) (Level, error) {
	switch tag {
	case "team_lead":
		return LevelTeamLead, nil
	case "finance":
		return LevelFinance, nil
	case "direction":
		return LevelDirection, nil
	default:
		return LevelUnknown, errs.NewValueIsInvalidError("role tag")
	}
}

// RoleTag returns the role tag a user must hold to approve at this level.
func (l Level) RoleTag() string {
	switch l {
	case LevelTeamLead:
		return "team_lead"
	case LevelFinance:
		return "finance"
	case LevelDirection:
		return "direction"
	default:
		return ""
	}
}

// IsFinal reports whether this is the direction level, whose approval moves
// the order to Approved.
func (l Level) IsFinal() bool {
	return l == LevelDirection
}

// Validate checks that the Level is one of the defined approval levels.
func (l Level) Validate() error {
	if l != LevelTeamLead && l != LevelFinance && l != LevelDirection {
		return errs.NewValueIsInvalidError("approval level")
	}
	return nil
}

// String returns the human-readable name of the level.
func (l Level) String() string {
	if str, ok := getLevelStrings()[l]; ok {
		return str
	}
	return "Unknown"
}
