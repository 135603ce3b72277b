package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/worksuite/backend/internal/domain/compliance"
	"github.com/worksuite/backend/internal/domain/shared"
	"github.com/worksuite/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormFieldValueReader implements FieldValueReader using GORM. Customer field
// values live on the customer row itself; other entity types are resolved
// here as their modules come online.
type GormFieldValueReader struct {
	db *gorm.DB
}

// NewGormFieldValueReader creates a new GormFieldValueReader
func NewGormFieldValueReader(db *gorm.DB) *GormFieldValueReader {
	return &GormFieldValueReader{db: db}
}

// FieldValues returns the slug→value snapshot for the entity
func (r *GormFieldValueReader) FieldValues(ctx context.Context, tenantID uuid.UUID, entityType compliance.EntityType, entityID uuid.UUID) (compliance.FieldValues, error) {
	switch entityType {
	case compliance.EntityTypeCustomer:
		return r.customerFieldValues(ctx, tenantID, entityID)
	default:
		return nil, shared.NewDomainError("INVALID_ENTITY_TYPE", "No field value source for entity type: "+string(entityType))
	}
}

func (r *GormFieldValueReader) customerFieldValues(ctx context.Context, tenantID, customerID uuid.UUID) (compliance.FieldValues, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).
		Select("custom_fields").
		Where("tenant_id = ? AND id = ?", tenantID, customerID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}

	values := make(compliance.FieldValues)
	raw := model.CustomFields
	if raw == "" {
		raw = "{}"
	}
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, err
	}
	return values, nil
}

// GormChecklistStore implements ChecklistReader using GORM and adds the write
// path used by onboarding tooling and tests.
type GormChecklistStore struct {
	db *gorm.DB
}

// NewGormChecklistStore creates a new GormChecklistStore
func NewGormChecklistStore(db *gorm.DB) *GormChecklistStore {
	return &GormChecklistStore{db: db}
}

// Items returns all checklist items attached to the entity in display order
func (s *GormChecklistStore) Items(ctx context.Context, tenantID uuid.UUID, entityType compliance.EntityType, entityID uuid.UUID) ([]compliance.ChecklistItem, error) {
	var itemModels []models.ChecklistItemModel
	if err := s.db.WithContext(ctx).
		Where("tenant_id = ? AND entity_type = ? AND entity_id = ?", tenantID, string(entityType), entityID).
		Order("checklist_name ASC, position ASC").
		Find(&itemModels).Error; err != nil {
		return nil, err
	}

	items := make([]compliance.ChecklistItem, len(itemModels))
	for i := range itemModels {
		items[i] = itemModels[i].ToDomain()
	}
	return items, nil
}

// SaveItem creates or updates a checklist item row
func (s *GormChecklistStore) SaveItem(ctx context.Context, item *models.ChecklistItemModel) error {
	return s.db.WithContext(ctx).Save(item).Error
}

// Ensure the stores implement their domain interfaces
var _ compliance.FieldValueReader = (*GormFieldValueReader)(nil)
var _ compliance.ChecklistReader = (*GormChecklistStore)(nil)
