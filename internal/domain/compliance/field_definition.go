package compliance

import (
	"regexp"

	"github.com/google/uuid"
	"github.com/worksuite/backend/internal/domain/shared"
)

// FieldType is the data type of a custom field
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeNumber   FieldType = "number"
	FieldTypeDate     FieldType = "date"
	FieldTypeBoolean  FieldType = "boolean"
	FieldTypeDropdown FieldType = "dropdown"
	FieldTypeCurrency FieldType = "currency"
	FieldTypeURL      FieldType = "url"
	FieldTypeEmail    FieldType = "email"
	FieldTypePhone    FieldType = "phone"
)

// RequiresOptions reports whether the field type needs a fixed option list
func (t FieldType) RequiresOptions() bool {
	return t == FieldTypeDropdown
}

// FieldDefinition is the aggregate root of the field definition registry.
// Definitions are tenant-scoped, identified by slug, and only ever
// soft-deleted so historical values on entities stay interpretable.
type FieldDefinition struct {
	shared.TenantAggregateRoot
	Slug                string               `gorm:"type:varchar(100);not null;uniqueIndex:idx_field_def_tenant_slug,priority:2"`
	Name                string               `gorm:"type:varchar(200);not null"`
	FieldType           FieldType            `gorm:"type:varchar(20);not null"`
	Required            bool                 `gorm:"not null;default:false"` // required in every context
	RequiredForContexts []Context            `gorm:"-"`                      // required only for the listed contexts
	Options             []string             `gorm:"-"`                      // dropdown options
	VisibilityCondition *VisibilityCondition `gorm:"-"`
	Active              bool                 `gorm:"not null;default:true"`
	GroupID             *uuid.UUID           `gorm:"type:uuid;index"`
	Position            int                  `gorm:"not null;default:0"` // order within the group
}

// TableName returns the table name for GORM
func (FieldDefinition) TableName() string {
	return "field_definitions"
}

// NewFieldDefinition creates a new active field definition
func NewFieldDefinition(tenantID uuid.UUID, slug, name string, fieldType FieldType) (*FieldDefinition, error) {
	if err := validateSlug(slug); err != nil {
		return nil, err
	}
	if err := validateFieldName(name); err != nil {
		return nil, err
	}
	if err := validateFieldType(fieldType); err != nil {
		return nil, err
	}

	def := &FieldDefinition{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Slug:                slug,
		Name:                name,
		FieldType:           fieldType,
		Active:              true,
	}

	def.AddDomainEvent(NewFieldDefinitionRegisteredEvent(def))

	return def, nil
}

// Rename changes the field's display name. The slug is immutable because
// stored values are keyed by it.
func (d *FieldDefinition) Rename(name string) error {
	if err := validateFieldName(name); err != nil {
		return err
	}
	d.Name = name
	d.touch()
	return nil
}

// SetRequired marks the field required in every context
func (d *FieldDefinition) SetRequired(required bool) {
	d.Required = required
	d.touch()
}

// SetRequiredForContexts replaces the set of contexts the field is required for
func (d *FieldDefinition) SetRequiredForContexts(contexts []Context) error {
	seen := make(map[Context]bool, len(contexts))
	for _, ctx := range contexts {
		if _, err := ParseContext(string(ctx)); err != nil {
			return err
		}
		if seen[ctx] {
			return shared.NewDomainError("VALIDATION_ERROR", "Duplicate context in required_for_contexts: "+string(ctx))
		}
		seen[ctx] = true
	}
	d.RequiredForContexts = contexts
	d.touch()
	return nil
}

// SetOptions replaces the dropdown option list
func (d *FieldDefinition) SetOptions(options []string) error {
	if !d.FieldType.RequiresOptions() && len(options) > 0 {
		return shared.NewDomainError("VALIDATION_ERROR", "Options are only valid for dropdown fields")
	}
	for _, opt := range options {
		if opt == "" {
			return shared.NewDomainError("VALIDATION_ERROR", "Dropdown options cannot be empty")
		}
	}
	d.Options = options
	d.touch()
	return nil
}

// SetVisibilityCondition attaches or replaces the visibility condition.
// Self-reference is rejected here; cross-field cycles at registration time.
func (d *FieldDefinition) SetVisibilityCondition(cond *VisibilityCondition) error {
	if cond != nil {
		if err := cond.Validate(d.Slug); err != nil {
			return err
		}
	}
	d.VisibilityCondition = cond
	d.touch()
	return nil
}

// AssignGroup places the field in a group at the given position
func (d *FieldDefinition) AssignGroup(groupID uuid.UUID, position int) {
	d.GroupID = &groupID
	d.Position = position
	d.touch()
}

// Deactivate soft-deletes the definition. Values already captured on
// entities are retained; the field simply stops being applicable.
func (d *FieldDefinition) Deactivate() error {
	if !d.Active {
		return shared.NewDomainError("INVALID_STATE", "Field definition is already inactive")
	}
	d.Active = false
	d.touch()

	d.AddDomainEvent(NewFieldDefinitionDeactivatedEvent(d))

	return nil
}

// RequiredFor reports whether the field is required for the given context
func (d *FieldDefinition) RequiredFor(ctx Context) bool {
	if d.Required {
		return true
	}
	for _, c := range d.RequiredForContexts {
		if c == ctx {
			return true
		}
	}
	return false
}

func (d *FieldDefinition) touch() {
	d.Touch()
	d.IncrementVersion()
}

// Validation functions

var slugPattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

func validateSlug(slug string) error {
	if slug == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Field slug cannot be empty")
	}
	if len(slug) > 100 {
		return shared.NewDomainError("VALIDATION_ERROR", "Field slug cannot exceed 100 characters")
	}
	if !slugPattern.MatchString(slug) {
		return shared.NewDomainError("VALIDATION_ERROR", "Field slug must start with a letter and contain only lowercase letters, numbers, underscores, and hyphens")
	}
	return nil
}

func validateFieldName(name string) error {
	if name == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Field name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("VALIDATION_ERROR", "Field name cannot exceed 200 characters")
	}
	return nil
}

func validateFieldType(t FieldType) error {
	switch t {
	case FieldTypeText, FieldTypeNumber, FieldTypeDate, FieldTypeBoolean, FieldTypeDropdown,
		FieldTypeCurrency, FieldTypeURL, FieldTypeEmail, FieldTypePhone:
		return nil
	default:
		return shared.NewDomainError("VALIDATION_ERROR", "Unknown field type: "+string(t))
	}
}
