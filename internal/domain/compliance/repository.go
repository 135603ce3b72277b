package compliance

import (
	"context"

	"github.com/google/uuid"
)

// FieldDefinitionRepository defines the interface for field definition persistence
type FieldDefinitionRepository interface {
	// FindByIDForTenant finds a field definition by ID within a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*FieldDefinition, error)

	// FindBySlug finds a field definition by slug within a tenant
	FindBySlug(ctx context.Context, tenantID uuid.UUID, slug string) (*FieldDefinition, error)

	// FindAllForTenant finds all field definitions for a tenant, active and
	// inactive, ordered by group position then field position
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]FieldDefinition, error)

	// FindActiveForTenant finds all active field definitions for a tenant,
	// ordered by group position then field position
	FindActiveForTenant(ctx context.Context, tenantID uuid.UUID) ([]FieldDefinition, error)

	// ExistsBySlug checks if a field definition with the slug exists in the tenant
	ExistsBySlug(ctx context.Context, tenantID uuid.UUID, slug string) (bool, error)

	// Save creates or updates a field definition
	Save(ctx context.Context, def *FieldDefinition) error
}

// FieldGroupRepository defines the interface for field group persistence
type FieldGroupRepository interface {
	// FindByIDForTenant finds a field group by ID within a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*FieldGroup, error)

	// FindAllForTenant finds all field groups for a tenant ordered by position
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]FieldGroup, error)

	// Save creates or updates a field group
	Save(ctx context.Context, group *FieldGroup) error
}

// FieldValueReader loads the current custom field values of an entity.
// The customer record is one provider; project records are another.
type FieldValueReader interface {
	// FieldValues returns the slug→value snapshot for the entity
	FieldValues(ctx context.Context, tenantID uuid.UUID, entityType EntityType, entityID uuid.UUID) (FieldValues, error)
}

// ChecklistReader loads the checklist items attached to an entity
type ChecklistReader interface {
	// Items returns all checklist items attached to the entity
	Items(ctx context.Context, tenantID uuid.UUID, entityType EntityType, entityID uuid.UUID) ([]ChecklistItem, error)
}
