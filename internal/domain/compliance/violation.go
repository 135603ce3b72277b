package compliance

import (
	"github.com/google/uuid"
)

// Violation codes
const (
	ViolationMissingRequiredField = "MISSING_REQUIRED_FIELD"
	ViolationChecklistIncomplete  = "CHECKLIST_INCOMPLETE"
)

// PrerequisiteViolation is a single failed prerequisite condition,
// structured so a caller can render a remediation flow directly.
type PrerequisiteViolation struct {
	Code       string     `json:"code"`
	Message    string     `json:"message"`
	EntityType EntityType `json:"entity_type"`
	EntityID   uuid.UUID  `json:"entity_id"`
	FieldSlug  string     `json:"field_slug,omitempty"`
	GroupName  string     `json:"group_name,omitempty"`
	Resolution string     `json:"resolution"`
}

// PrerequisiteCheck is the outcome of evaluating all prerequisites for a
// context. A failed check is ordinary result data, not an error: violations
// are ordered by group and field declaration order for stable rendering.
type PrerequisiteCheck struct {
	Passed     bool                    `json:"passed"`
	Context    Context                 `json:"context"`
	Violations []PrerequisiteViolation `json:"violations"`
}
