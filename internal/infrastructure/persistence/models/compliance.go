package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/worksuite/backend/internal/domain/compliance"
)

// FieldDefinitionModel is the persistence model for the FieldDefinition aggregate.
// Context lists, option lists, and the visibility condition are stored as
// jsonb documents rather than join tables; they are small, read as a unit,
// and never queried by their elements.
type FieldDefinitionModel struct {
	TenantAggregateModel
	Slug                string     `gorm:"type:varchar(100);not null;uniqueIndex:idx_field_def_tenant_slug,priority:2"`
	Name                string     `gorm:"type:varchar(200);not null"`
	FieldType           string     `gorm:"type:varchar(20);not null"`
	Required            bool       `gorm:"not null;default:false"`
	RequiredForContexts string     `gorm:"type:jsonb;not null;default:'[]'"`
	Options             string     `gorm:"type:jsonb;not null;default:'[]'"`
	VisibilityCondition *string    `gorm:"type:jsonb"`
	Active              bool       `gorm:"not null;default:true;index"`
	GroupID             *uuid.UUID `gorm:"type:uuid;index"`
	Position            int        `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (FieldDefinitionModel) TableName() string {
	return "field_definitions"
}

// ToDomain converts the persistence model to a domain FieldDefinition.
func (m *FieldDefinitionModel) ToDomain() (*compliance.FieldDefinition, error) {
	def := &compliance.FieldDefinition{
		Slug:      m.Slug,
		Name:      m.Name,
		FieldType: compliance.FieldType(m.FieldType),
		Required:  m.Required,
		Active:    m.Active,
		GroupID:   m.GroupID,
		Position:  m.Position,
	}
	m.PopulateTenantAggregateRoot(&def.TenantAggregateRoot)

	if m.RequiredForContexts != "" {
		if err := json.Unmarshal([]byte(m.RequiredForContexts), &def.RequiredForContexts); err != nil {
			return nil, err
		}
	}
	if m.Options != "" {
		if err := json.Unmarshal([]byte(m.Options), &def.Options); err != nil {
			return nil, err
		}
	}
	if m.VisibilityCondition != nil {
		var cond compliance.VisibilityCondition
		if err := json.Unmarshal([]byte(*m.VisibilityCondition), &cond); err != nil {
			return nil, err
		}
		def.VisibilityCondition = &cond
	}

	return def, nil
}

// FromDomain populates the persistence model from a domain FieldDefinition.
func (m *FieldDefinitionModel) FromDomain(def *compliance.FieldDefinition) error {
	m.FromDomainTenantAggregateRoot(def.TenantAggregateRoot)
	m.Slug = def.Slug
	m.Name = def.Name
	m.FieldType = string(def.FieldType)
	m.Required = def.Required
	m.Active = def.Active
	m.GroupID = def.GroupID
	m.Position = def.Position

	contexts := def.RequiredForContexts
	if contexts == nil {
		contexts = []compliance.Context{}
	}
	encoded, err := json.Marshal(contexts)
	if err != nil {
		return err
	}
	m.RequiredForContexts = string(encoded)

	options := def.Options
	if options == nil {
		options = []string{}
	}
	encoded, err = json.Marshal(options)
	if err != nil {
		return err
	}
	m.Options = string(encoded)

	if def.VisibilityCondition != nil {
		encoded, err = json.Marshal(def.VisibilityCondition)
		if err != nil {
			return err
		}
		raw := string(encoded)
		m.VisibilityCondition = &raw
	} else {
		m.VisibilityCondition = nil
	}

	return nil
}

// FieldDefinitionModelFromDomain creates a persistence model from a domain FieldDefinition.
func FieldDefinitionModelFromDomain(def *compliance.FieldDefinition) (*FieldDefinitionModel, error) {
	m := &FieldDefinitionModel{}
	if err := m.FromDomain(def); err != nil {
		return nil, err
	}
	return m, nil
}

// FieldGroupModel is the persistence model for the FieldGroup aggregate.
type FieldGroupModel struct {
	TenantAggregateModel
	Slug     string `gorm:"type:varchar(100);not null;uniqueIndex:idx_field_group_tenant_slug,priority:2"`
	Name     string `gorm:"type:varchar(200);not null"`
	Position int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (FieldGroupModel) TableName() string {
	return "field_groups"
}

// ToDomain converts the persistence model to a domain FieldGroup.
func (m *FieldGroupModel) ToDomain() *compliance.FieldGroup {
	group := &compliance.FieldGroup{
		Slug:     m.Slug,
		Name:     m.Name,
		Position: m.Position,
	}
	m.PopulateTenantAggregateRoot(&group.TenantAggregateRoot)
	return group
}

// FromDomain populates the persistence model from a domain FieldGroup.
func (m *FieldGroupModel) FromDomain(group *compliance.FieldGroup) {
	m.FromDomainTenantAggregateRoot(group.TenantAggregateRoot)
	m.Slug = group.Slug
	m.Name = group.Name
	m.Position = group.Position
}

// FieldGroupModelFromDomain creates a persistence model from a domain FieldGroup.
func FieldGroupModelFromDomain(group *compliance.FieldGroup) *FieldGroupModel {
	m := &FieldGroupModel{}
	m.FromDomain(group)
	return m
}

// ChecklistItemModel is the persistence model for checklist items attached to
// entities. Items are written by onboarding tooling and read by the
// prerequisite evaluator.
type ChecklistItemModel struct {
	BaseModel
	TenantID      uuid.UUID `gorm:"type:uuid;not null;index:idx_checklist_entity,priority:1"`
	EntityType    string    `gorm:"type:varchar(20);not null;index:idx_checklist_entity,priority:2"`
	EntityID      uuid.UUID `gorm:"type:uuid;not null;index:idx_checklist_entity,priority:3"`
	ChecklistName string    `gorm:"type:varchar(200);not null"`
	Name          string    `gorm:"type:varchar(200);not null"`
	Required      bool      `gorm:"not null;default:false"`
	Completed     bool      `gorm:"not null;default:false"`
	Skipped       bool      `gorm:"not null;default:false"`
	Position      int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (ChecklistItemModel) TableName() string {
	return "checklist_items"
}

// ToDomain converts the persistence model to a domain ChecklistItem.
func (m *ChecklistItemModel) ToDomain() compliance.ChecklistItem {
	return compliance.ChecklistItem{
		ChecklistName: m.ChecklistName,
		Name:          m.Name,
		Required:      m.Required,
		Completed:     m.Completed,
		Skipped:       m.Skipped,
	}
}
