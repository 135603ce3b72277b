package compliance

import (
	"context"

	"github.com/google/uuid"
	"github.com/worksuite/backend/internal/domain/compliance"
	"github.com/worksuite/backend/internal/domain/shared"
)

// FieldDefinitionService manages the tenant's field definition registry
type FieldDefinitionService struct {
	defRepo   compliance.FieldDefinitionRepository
	groupRepo compliance.FieldGroupRepository
}

// NewFieldDefinitionService creates a new FieldDefinitionService
func NewFieldDefinitionService(defRepo compliance.FieldDefinitionRepository, groupRepo compliance.FieldGroupRepository) *FieldDefinitionService {
	return &FieldDefinitionService{
		defRepo:   defRepo,
		groupRepo: groupRepo,
	}
}

// Register registers a new field definition
func (s *FieldDefinitionService) Register(ctx context.Context, tenantID uuid.UUID, req RegisterFieldDefinitionRequest) (*FieldDefinitionResponse, error) {
	// Check if slug already exists
	exists, err := s.defRepo.ExistsBySlug(ctx, tenantID, req.Slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Field definition with this slug already exists")
	}

	def, err := compliance.NewFieldDefinition(tenantID, req.Slug, req.Name, compliance.FieldType(req.FieldType))
	if err != nil {
		return nil, err
	}

	def.SetRequired(req.Required)

	if len(req.RequiredForContexts) > 0 {
		contexts := make([]compliance.Context, 0, len(req.RequiredForContexts))
		for _, raw := range req.RequiredForContexts {
			c, err := compliance.ParseContext(raw)
			if err != nil {
				return nil, err
			}
			contexts = append(contexts, c)
		}
		if err := def.SetRequiredForContexts(contexts); err != nil {
			return nil, err
		}
	}

	// Dropdown fields must declare their option list up front
	if def.FieldType.RequiresOptions() && len(req.Options) == 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Dropdown fields must declare at least one option")
	}
	if len(req.Options) > 0 {
		if err := def.SetOptions(req.Options); err != nil {
			return nil, err
		}
	}

	if req.VisibilityCondition != nil {
		if err := def.SetVisibilityCondition(conditionFromDTO(req.VisibilityCondition)); err != nil {
			return nil, err
		}
		if err := s.checkConditionGraph(ctx, tenantID, def); err != nil {
			return nil, err
		}
	}

	if req.GroupID != nil {
		if _, err := s.groupRepo.FindByIDForTenant(ctx, tenantID, *req.GroupID); err != nil {
			return nil, err
		}
		def.AssignGroup(*req.GroupID, req.Position)
	}

	if err := s.defRepo.Save(ctx, def); err != nil {
		return nil, err
	}

	response := ToFieldDefinitionResponse(def)
	return &response, nil
}

// Update updates an existing field definition
func (s *FieldDefinitionService) Update(ctx context.Context, tenantID, defID uuid.UUID, req UpdateFieldDefinitionRequest) (*FieldDefinitionResponse, error) {
	def, err := s.defRepo.FindByIDForTenant(ctx, tenantID, defID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := def.Rename(*req.Name); err != nil {
			return nil, err
		}
	}

	if req.Required != nil {
		def.SetRequired(*req.Required)
	}

	if req.RequiredForContexts != nil {
		contexts := make([]compliance.Context, 0, len(*req.RequiredForContexts))
		for _, raw := range *req.RequiredForContexts {
			c, err := compliance.ParseContext(raw)
			if err != nil {
				return nil, err
			}
			contexts = append(contexts, c)
		}
		if err := def.SetRequiredForContexts(contexts); err != nil {
			return nil, err
		}
	}

	if req.Options != nil {
		if err := def.SetOptions(*req.Options); err != nil {
			return nil, err
		}
	}

	if req.ClearCondition {
		if err := def.SetVisibilityCondition(nil); err != nil {
			return nil, err
		}
	} else if req.VisibilityCondition != nil {
		if err := def.SetVisibilityCondition(conditionFromDTO(req.VisibilityCondition)); err != nil {
			return nil, err
		}
		if err := s.checkConditionGraph(ctx, tenantID, def); err != nil {
			return nil, err
		}
	}

	if req.GroupID != nil {
		position := def.Position
		if req.Position != nil {
			position = *req.Position
		}
		if _, err := s.groupRepo.FindByIDForTenant(ctx, tenantID, *req.GroupID); err != nil {
			return nil, err
		}
		def.AssignGroup(*req.GroupID, position)
	}

	if err := s.defRepo.Save(ctx, def); err != nil {
		return nil, err
	}

	response := ToFieldDefinitionResponse(def)
	return &response, nil
}

// Deactivate soft-deletes a field definition
func (s *FieldDefinitionService) Deactivate(ctx context.Context, tenantID, defID uuid.UUID) error {
	def, err := s.defRepo.FindByIDForTenant(ctx, tenantID, defID)
	if err != nil {
		return err
	}

	if err := def.Deactivate(); err != nil {
		return err
	}

	return s.defRepo.Save(ctx, def)
}

// GetByID retrieves a field definition by ID
func (s *FieldDefinitionService) GetByID(ctx context.Context, tenantID, defID uuid.UUID) (*FieldDefinitionResponse, error) {
	def, err := s.defRepo.FindByIDForTenant(ctx, tenantID, defID)
	if err != nil {
		return nil, err
	}

	response := ToFieldDefinitionResponse(def)
	return &response, nil
}

// List retrieves all field definitions for a tenant in display order
func (s *FieldDefinitionService) List(ctx context.Context, tenantID uuid.UUID) ([]FieldDefinitionResponse, error) {
	defs, err := s.defRepo.FindAllForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return ToFieldDefinitionResponses(defs), nil
}

// ListApplicable resolves the active fields applicable to a context, in
// display order, without evaluating any entity against them
func (s *FieldDefinitionService) ListApplicable(ctx context.Context, tenantID uuid.UUID, rawContext string) ([]ApplicableFieldResponse, error) {
	prereqCtx, err := compliance.ParseContext(rawContext)
	if err != nil {
		return nil, err
	}

	defs, err := s.defRepo.FindActiveForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	groups, err := s.groupRepo.FindAllForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	return ToApplicableFieldResponses(resolveApplicable(defs, groups, prereqCtx)), nil
}

// CreateGroup creates a new field group
func (s *FieldDefinitionService) CreateGroup(ctx context.Context, tenantID uuid.UUID, req CreateFieldGroupRequest) (*FieldGroupResponse, error) {
	group, err := compliance.NewFieldGroup(tenantID, req.Slug, req.Name, req.Position)
	if err != nil {
		return nil, err
	}

	if err := s.groupRepo.Save(ctx, group); err != nil {
		return nil, err
	}

	response := ToFieldGroupResponse(group)
	return &response, nil
}

// ListGroups retrieves all field groups for a tenant ordered by position
func (s *FieldDefinitionService) ListGroups(ctx context.Context, tenantID uuid.UUID) ([]FieldGroupResponse, error) {
	groups, err := s.groupRepo.FindAllForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	responses := make([]FieldGroupResponse, len(groups))
	for i := range groups {
		responses[i] = ToFieldGroupResponse(&groups[i])
	}
	return responses, nil
}

// checkConditionGraph validates the tenant's condition graph with the given
// definition's pending state substituted in
func (s *FieldDefinitionService) checkConditionGraph(ctx context.Context, tenantID uuid.UUID, def *compliance.FieldDefinition) error {
	existing, err := s.defRepo.FindAllForTenant(ctx, tenantID)
	if err != nil {
		return err
	}

	combined := make([]compliance.FieldDefinition, 0, len(existing)+1)
	for i := range existing {
		if existing[i].Slug == def.Slug {
			continue
		}
		combined = append(combined, existing[i])
	}
	combined = append(combined, *def)

	return compliance.ValidateConditionGraph(combined)
}
