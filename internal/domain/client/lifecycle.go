package client

// LifecycleStatus is the customer's position in the engagement lifecycle
type LifecycleStatus string

const (
	LifecycleStatusProspect    LifecycleStatus = "prospect"
	LifecycleStatusOnboarding  LifecycleStatus = "onboarding"
	LifecycleStatusActive      LifecycleStatus = "active"
	LifecycleStatusDormant     LifecycleStatus = "dormant"
	LifecycleStatusOffboarding LifecycleStatus = "offboarding"
	LifecycleStatusOffboarded  LifecycleStatus = "offboarded"
)

// allowedTransitions is the lifecycle edge table. Transitions are data, not
// branching logic: an edge absent from this map is illegal, full stop.
// Offboarding is only reachable through DORMANT, and OFFBOARDED has no
// outgoing edges and is terminal.
var allowedTransitions = map[LifecycleStatus][]LifecycleStatus{
	LifecycleStatusProspect:    {LifecycleStatusOnboarding},
	LifecycleStatusOnboarding:  {LifecycleStatusActive},
	LifecycleStatusActive:      {LifecycleStatusDormant},
	LifecycleStatusDormant:     {LifecycleStatusActive, LifecycleStatusOffboarding},
	LifecycleStatusOffboarding: {LifecycleStatusActive, LifecycleStatusOffboarded},
	LifecycleStatusOffboarded:  {},
}

// AllLifecycleStatuses lists every status in lifecycle order
func AllLifecycleStatuses() []LifecycleStatus {
	return []LifecycleStatus{
		LifecycleStatusProspect,
		LifecycleStatusOnboarding,
		LifecycleStatusActive,
		LifecycleStatusDormant,
		LifecycleStatusOffboarding,
		LifecycleStatusOffboarded,
	}
}

// ParseLifecycleStatus validates and converts a string into a LifecycleStatus
func ParseLifecycleStatus(s string) (LifecycleStatus, bool) {
	status := LifecycleStatus(s)
	for _, known := range AllLifecycleStatuses() {
		if status == known {
			return status, true
		}
	}
	return "", false
}

// CanTransition reports whether the edge (from, to) is in the table
func CanTransition(from, to LifecycleStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AllowedTargets returns the legal destination statuses from the given status
func AllowedTargets(from LifecycleStatus) []LifecycleStatus {
	targets := allowedTransitions[from]
	out := make([]LifecycleStatus, len(targets))
	copy(out, targets)
	return out
}

// IsTerminal reports whether the status has no outgoing edges
func (s LifecycleStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

// IsActivation reports whether a transition into this status is
// activation-class and therefore gated by a prerequisite check.
func (s LifecycleStatus) IsActivation() bool {
	return s == LifecycleStatusActive
}
