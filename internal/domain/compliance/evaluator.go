package compliance

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// FieldValues is the current slug→value snapshot of an entity's custom
// fields. Absent slugs and blank values both count as missing.
type FieldValues map[string]string

// ChecklistItem is a single item of a checklist instance attached to an
// entity. Skipped items never violate, regardless of completion.
type ChecklistItem struct {
	ChecklistName string `json:"checklist_name"`
	Name          string `json:"name"`
	Required      bool   `json:"required"`
	Completed     bool   `json:"completed"`
	Skipped       bool   `json:"skipped"`
}

// ApplicableField is a field definition resolved for a context, paired with
// the name of its group. The resolver supplies these already ordered by
// group position, then field position.
type ApplicableField struct {
	Definition FieldDefinition
	GroupName  string
}

// Evaluate runs the prerequisite rules for one entity and context. It is a
// pure function over its inputs: safe to run unlocked and in parallel with
// other evaluations of the same entity.
//
// A field with a visibility condition that evaluates false against the
// current value of its dependency is skipped entirely; its absence never
// produces a violation.
func Evaluate(ctx Context, entityType EntityType, entityID uuid.UUID, fields []ApplicableField, values FieldValues, checklist []ChecklistItem) PrerequisiteCheck {
	violations := make([]PrerequisiteViolation, 0)

	for _, f := range fields {
		def := f.Definition
		if !def.Active || !def.RequiredFor(ctx) {
			continue
		}
		if def.VisibilityCondition != nil {
			if !def.VisibilityCondition.Matches(values[def.VisibilityCondition.DependsOnSlug]) {
				continue
			}
		}
		if !isMissing(values, def.Slug) {
			continue
		}
		violations = append(violations, PrerequisiteViolation{
			Code:       ViolationMissingRequiredField,
			Message:    fmt.Sprintf("Required field %q has no value", def.Name),
			EntityType: entityType,
			EntityID:   entityID,
			FieldSlug:  def.Slug,
			GroupName:  f.GroupName,
			Resolution: fmt.Sprintf("Fill in %q before %s", def.Name, actionLabel(ctx)),
		})
	}

	if ctx.InspectsChecklists() {
		for _, item := range checklist {
			if !item.Required || item.Completed || item.Skipped {
				continue
			}
			violations = append(violations, PrerequisiteViolation{
				Code:       ViolationChecklistIncomplete,
				Message:    fmt.Sprintf("Checklist item %q is not completed", item.Name),
				EntityType: entityType,
				EntityID:   entityID,
				GroupName:  item.ChecklistName,
				Resolution: fmt.Sprintf("Complete or skip %q in checklist %q", item.Name, item.ChecklistName),
			})
		}
	}

	return PrerequisiteCheck{
		Passed:     len(violations) == 0,
		Context:    ctx,
		Violations: violations,
	}
}

func isMissing(values FieldValues, slug string) bool {
	v, ok := values[slug]
	return !ok || strings.TrimSpace(v) == ""
}

func actionLabel(ctx Context) string {
	switch ctx {
	case ContextLifecycleActivation:
		return "activating the customer"
	case ContextProposalSend:
		return "sending a proposal"
	case ContextInvoiceGeneration:
		return "generating an invoice"
	case ContextDocumentGeneration:
		return "generating a document"
	case ContextProjectCreation:
		return "creating a project"
	default:
		return "performing this action"
	}
}
