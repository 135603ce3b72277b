package compliance

import (
	"github.com/google/uuid"
	"github.com/worksuite/backend/internal/domain/shared"
)

// FieldGroup orders field definitions for deterministic violation output.
// Groups are rendered in Position order, fields within a group in their own
// Position order.
type FieldGroup struct {
	shared.TenantAggregateRoot
	Slug     string `gorm:"type:varchar(100);not null;uniqueIndex:idx_field_group_tenant_slug,priority:2"`
	Name     string `gorm:"type:varchar(200);not null"`
	Position int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (FieldGroup) TableName() string {
	return "field_groups"
}

// NewFieldGroup creates a new field group
func NewFieldGroup(tenantID uuid.UUID, slug, name string, position int) (*FieldGroup, error) {
	if err := validateSlug(slug); err != nil {
		return nil, err
	}
	if err := validateFieldName(name); err != nil {
		return nil, err
	}
	return &FieldGroup{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Slug:                slug,
		Name:                name,
		Position:            position,
	}, nil
}
