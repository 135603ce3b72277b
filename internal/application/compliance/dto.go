package compliance

import (
	"time"

	"github.com/google/uuid"
	"github.com/worksuite/backend/internal/domain/compliance"
)

// =============================================================================
// Field definition DTOs
// =============================================================================

// VisibilityConditionDTO carries a visibility condition over the wire
type VisibilityConditionDTO struct {
	DependsOnSlug string   `json:"depends_on_slug" binding:"required,max=100"`
	Operator      string   `json:"operator" binding:"required,oneof=equals not_equals in not_in"`
	Values        []string `json:"values" binding:"required,min=1"`
}

// RegisterFieldDefinitionRequest represents a request to register a new field definition
type RegisterFieldDefinitionRequest struct {
	Slug                string                  `json:"slug" binding:"required,fieldslug,max=100"`
	Name                string                  `json:"name" binding:"required,min=1,max=200"`
	FieldType           string                  `json:"field_type" binding:"required,oneof=text number date boolean dropdown currency url email phone"`
	Required            bool                    `json:"required"`
	RequiredForContexts []string                `json:"required_for_contexts"`
	Options             []string                `json:"options"`
	VisibilityCondition *VisibilityConditionDTO `json:"visibility_condition"`
	GroupID             *uuid.UUID              `json:"group_id"`
	Position            int                     `json:"position"`
}

// UpdateFieldDefinitionRequest represents a request to update a field definition
type UpdateFieldDefinitionRequest struct {
	Name                *string                 `json:"name" binding:"omitempty,min=1,max=200"`
	Required            *bool                   `json:"required"`
	RequiredForContexts *[]string               `json:"required_for_contexts"`
	Options             *[]string               `json:"options"`
	VisibilityCondition *VisibilityConditionDTO `json:"visibility_condition"`
	ClearCondition      bool                    `json:"clear_condition"`
	GroupID             *uuid.UUID              `json:"group_id"`
	Position            *int                    `json:"position"`
}

// FieldDefinitionResponse represents a field definition in API responses
type FieldDefinitionResponse struct {
	ID                  uuid.UUID               `json:"id"`
	TenantID            uuid.UUID               `json:"tenant_id"`
	Slug                string                  `json:"slug"`
	Name                string                  `json:"name"`
	FieldType           string                  `json:"field_type"`
	Required            bool                    `json:"required"`
	RequiredForContexts []string                `json:"required_for_contexts"`
	Options             []string                `json:"options"`
	VisibilityCondition *VisibilityConditionDTO `json:"visibility_condition,omitempty"`
	Active              bool                    `json:"active"`
	GroupID             *uuid.UUID              `json:"group_id,omitempty"`
	Position            int                     `json:"position"`
	CreatedAt           time.Time               `json:"created_at"`
	UpdatedAt           time.Time               `json:"updated_at"`
	Version             int                     `json:"version"`
}

// CreateFieldGroupRequest represents a request to create a field group
type CreateFieldGroupRequest struct {
	Slug     string `json:"slug" binding:"required,fieldslug,max=100"`
	Name     string `json:"name" binding:"required,min=1,max=200"`
	Position int    `json:"position"`
}

// FieldGroupResponse represents a field group in API responses
type FieldGroupResponse struct {
	ID       uuid.UUID `json:"id"`
	Slug     string    `json:"slug"`
	Name     string    `json:"name"`
	Position int       `json:"position"`
}

// ApplicableFieldResponse is one field resolved for a context, in display order
type ApplicableFieldResponse struct {
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	FieldType string `json:"field_type"`
	Required  bool   `json:"required"`
	GroupName string `json:"group_name,omitempty"`
}

// =============================================================================
// Prerequisite check DTOs
// =============================================================================

// PrerequisiteCheckRequest represents a request to evaluate prerequisites
type PrerequisiteCheckRequest struct {
	Context    string    `json:"context" binding:"required"`
	EntityType string    `json:"entity_type" binding:"required,oneof=customer project"`
	EntityID   uuid.UUID `json:"entity_id" binding:"required"`
}

// ViolationResponse represents one prerequisite violation
type ViolationResponse struct {
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	EntityType string    `json:"entity_type"`
	EntityID   uuid.UUID `json:"entity_id"`
	FieldSlug  string    `json:"field_slug,omitempty"`
	GroupName  string    `json:"group_name,omitempty"`
	Resolution string    `json:"resolution"`
}

// PrerequisiteCheckResponse represents the outcome of a prerequisite check.
// Degraded is true when storage failed and the context's fail-open policy
// let the action proceed without a real evaluation.
type PrerequisiteCheckResponse struct {
	Passed     bool                `json:"passed"`
	Context    string              `json:"context"`
	Policy     string              `json:"policy"`
	Degraded   bool                `json:"degraded"`
	Violations []ViolationResponse `json:"violations"`
}

// =============================================================================
// Converters
// =============================================================================

// ToFieldDefinitionResponse converts a domain field definition to a response DTO
func ToFieldDefinitionResponse(def *compliance.FieldDefinition) FieldDefinitionResponse {
	contexts := make([]string, len(def.RequiredForContexts))
	for i, c := range def.RequiredForContexts {
		contexts[i] = string(c)
	}

	resp := FieldDefinitionResponse{
		ID:                  def.ID,
		TenantID:            def.TenantID,
		Slug:                def.Slug,
		Name:                def.Name,
		FieldType:           string(def.FieldType),
		Required:            def.Required,
		RequiredForContexts: contexts,
		Options:             def.Options,
		Active:              def.Active,
		GroupID:             def.GroupID,
		Position:            def.Position,
		CreatedAt:           def.CreatedAt,
		UpdatedAt:           def.UpdatedAt,
		Version:             def.Version,
	}
	if def.VisibilityCondition != nil {
		resp.VisibilityCondition = &VisibilityConditionDTO{
			DependsOnSlug: def.VisibilityCondition.DependsOnSlug,
			Operator:      string(def.VisibilityCondition.Operator),
			Values:        def.VisibilityCondition.Values,
		}
	}
	return resp
}

// ToFieldDefinitionResponses converts a slice of field definitions
func ToFieldDefinitionResponses(defs []compliance.FieldDefinition) []FieldDefinitionResponse {
	responses := make([]FieldDefinitionResponse, len(defs))
	for i := range defs {
		responses[i] = ToFieldDefinitionResponse(&defs[i])
	}
	return responses
}

// ToFieldGroupResponse converts a domain field group to a response DTO
func ToFieldGroupResponse(group *compliance.FieldGroup) FieldGroupResponse {
	return FieldGroupResponse{
		ID:       group.ID,
		Slug:     group.Slug,
		Name:     group.Name,
		Position: group.Position,
	}
}

// ToApplicableFieldResponses converts resolved applicable fields
func ToApplicableFieldResponses(fields []compliance.ApplicableField) []ApplicableFieldResponse {
	responses := make([]ApplicableFieldResponse, len(fields))
	for i, f := range fields {
		responses[i] = ApplicableFieldResponse{
			Slug:      f.Definition.Slug,
			Name:      f.Definition.Name,
			FieldType: string(f.Definition.FieldType),
			Required:  f.Definition.Required,
			GroupName: f.GroupName,
		}
	}
	return responses
}

// ToPrerequisiteCheckResponse converts a domain check result to a response DTO
func ToPrerequisiteCheckResponse(check compliance.PrerequisiteCheck) PrerequisiteCheckResponse {
	violations := make([]ViolationResponse, len(check.Violations))
	for i, v := range check.Violations {
		violations[i] = ViolationResponse{
			Code:       v.Code,
			Message:    v.Message,
			EntityType: string(v.EntityType),
			EntityID:   v.EntityID,
			FieldSlug:  v.FieldSlug,
			GroupName:  v.GroupName,
			Resolution: v.Resolution,
		}
	}
	return PrerequisiteCheckResponse{
		Passed:     check.Passed,
		Context:    string(check.Context),
		Policy:     string(compliance.PolicyFor(check.Context)),
		Violations: violations,
	}
}

func conditionFromDTO(dto *VisibilityConditionDTO) *compliance.VisibilityCondition {
	if dto == nil {
		return nil
	}
	return &compliance.VisibilityCondition{
		DependsOnSlug: dto.DependsOnSlug,
		Operator:      compliance.ConditionOperator(dto.Operator),
		Values:        dto.Values,
	}
}
