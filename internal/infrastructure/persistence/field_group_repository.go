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

// GormFieldGroupRepository implements FieldGroupRepository using GORM
type GormFieldGroupRepository struct {
	db *gorm.DB
}

// NewGormFieldGroupRepository creates a new GormFieldGroupRepository
func NewGormFieldGroupRepository(db *gorm.DB) *GormFieldGroupRepository {
	return &GormFieldGroupRepository{db: db}
}

// FindByIDForTenant finds a field group by ID within a tenant
func (r *GormFieldGroupRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*compliance.FieldGroup, error) {
	var model models.FieldGroupModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForTenant finds all field groups for a tenant ordered by position
func (r *GormFieldGroupRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]compliance.FieldGroup, error) {
	var groupModels []models.FieldGroupModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("position ASC, slug ASC").
		Find(&groupModels).Error; err != nil {
		return nil, err
	}

	groups := make([]compliance.FieldGroup, len(groupModels))
	for i := range groupModels {
		groups[i] = *groupModels[i].ToDomain()
	}
	return groups, nil
}

// Save creates or updates a field group
func (r *GormFieldGroupRepository) Save(ctx context.Context, group *compliance.FieldGroup) error {
	return r.db.WithContext(ctx).Save(models.FieldGroupModelFromDomain(group)).Error
}

// Ensure GormFieldGroupRepository implements FieldGroupRepository
var _ compliance.FieldGroupRepository = (*GormFieldGroupRepository)(nil)
