package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/worksuite/backend/internal/domain/compliance"
	"github.com/worksuite/backend/internal/domain/shared"
	"github.com/worksuite/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormFieldDefinitionRepository implements FieldDefinitionRepository using GORM
type GormFieldDefinitionRepository struct {
	db *gorm.DB
}

// NewGormFieldDefinitionRepository creates a new GormFieldDefinitionRepository
func NewGormFieldDefinitionRepository(db *gorm.DB) *GormFieldDefinitionRepository {
	return &GormFieldDefinitionRepository{db: db}
}

// FindByIDForTenant finds a field definition by ID within a tenant
func (r *GormFieldDefinitionRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*compliance.FieldDefinition, error) {
	var model models.FieldDefinitionModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindBySlug finds a field definition by slug within a tenant
func (r *GormFieldDefinitionRepository) FindBySlug(ctx context.Context, tenantID uuid.UUID, slug string) (*compliance.FieldDefinition, error) {
	var model models.FieldDefinitionModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND slug = ?", tenantID, slug).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindAllForTenant finds all field definitions for a tenant, active and inactive
func (r *GormFieldDefinitionRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]compliance.FieldDefinition, error) {
	return r.findOrdered(ctx, r.db.WithContext(ctx).Where("field_definitions.tenant_id = ?", tenantID))
}

// FindActiveForTenant finds all active field definitions for a tenant
func (r *GormFieldDefinitionRepository) FindActiveForTenant(ctx context.Context, tenantID uuid.UUID) ([]compliance.FieldDefinition, error) {
	return r.findOrdered(ctx, r.db.WithContext(ctx).
		Where("field_definitions.tenant_id = ? AND field_definitions.active = ?", tenantID, true))
}

// findOrdered loads definitions ordered by group position, then field
// position. Ungrouped fields come last.
func (r *GormFieldDefinitionRepository) findOrdered(ctx context.Context, query *gorm.DB) ([]compliance.FieldDefinition, error) {
	var defModels []models.FieldDefinitionModel
	err := query.
		Model(&models.FieldDefinitionModel{}).
		Joins("LEFT JOIN field_groups ON field_groups.id = field_definitions.group_id").
		Order("field_groups.position ASC NULLS LAST, field_definitions.position ASC, field_definitions.slug ASC").
		Find(&defModels).Error
	if err != nil {
		return nil, err
	}

	defs := make([]compliance.FieldDefinition, len(defModels))
	for i := range defModels {
		def, err := defModels[i].ToDomain()
		if err != nil {
			return nil, err
		}
		defs[i] = *def
	}
	return defs, nil
}

// ExistsBySlug checks if a field definition with the slug exists in the tenant
func (r *GormFieldDefinitionRepository) ExistsBySlug(ctx context.Context, tenantID uuid.UUID, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.FieldDefinitionModel{}).
		Where("tenant_id = ? AND slug = ?", tenantID, slug).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a field definition
func (r *GormFieldDefinitionRepository) Save(ctx context.Context, def *compliance.FieldDefinition) error {
	model, err := models.FieldDefinitionModelFromDomain(def)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(model).Error
}

// Ensure GormFieldDefinitionRepository implements FieldDefinitionRepository
var _ compliance.FieldDefinitionRepository = (*GormFieldDefinitionRepository)(nil)
