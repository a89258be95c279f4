package vehicle

import (
	"missionops/internal/pkg/errs"
)

// State represents the availability state of a fleet vehicle.
//
// State transitions:
//
//	Available ──begin mission──> OnMission ──end mission──> Available
//	Available <──> InMaintenance
//	any ──> OutOfService (decommissioning, manual)
//
// The fleet invariant couples state to assignments: a vehicle is OnMission
// if and only if exactly one active assignment exists for it.
type State int

const (
	// StateUnknown is the invalid zero value.
	StateUnknown State = iota

	// Available means the vehicle can be assigned to a mission.
	Available

	// OnMission means the vehicle has exactly one active assignment.
	OnMission

	// InMaintenance means the vehicle is temporarily withdrawn for servicing.
	InMaintenance

	// OutOfService means the vehicle is withdrawn from the fleet.
	OutOfService
)

func getStateStrings() map[State]string {
	return map[State]string{
		StateUnknown:  "Unknown",
		Available:     "Available",
		OnMission:     "OnMission",
		InMaintenance: "InMaintenance",
		OutOfService:  "OutOfService",
	}
}

// Validate checks that the State is one of the defined fleet states.
func (s State) Validate() error {
	if s != Available && s != OnMission && s != InMaintenance && s != OutOfService {
		return errs.NewValueIsInvalidError("vehicle state")
	}
	return nil
}

// String returns the human-readable name of the state.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// BeginMission transitions the state to OnMission.
// Only an Available vehicle can begin a mission; anything else is a conflict
// for OnMission (the vehicle is already bound) or an invalid state otherwise.
func (s State) BeginMission() (State, error) {
	switch s {
	case Available:
		return OnMission, nil
	case OnMission:
		return 0, errs.NewConflictError("vehicle already has an active assignment")
	default:
		return 0, errs.NewInvalidStateError("begin mission", s.String())
	}
}

// EndMission transitions the state back to Available.
// The only valid source state is OnMission.
func (s State) EndMission() (State, error) {
	if s != OnMission {
		return 0, errs.NewInvalidStateError("end mission", s.String())
	}
	return Available, nil
}
