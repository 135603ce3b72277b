package client

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/worksuite/backend/internal/domain/shared"
)

// Customer is the aggregate root for the customer lifecycle. Lifecycle
// status only moves through TransitionTo; customers are never hard-deleted
// except through the deletion workflow, which anonymizes rather than drops
// the row.
type Customer struct {
	shared.TenantAggregateRoot
	Code                     string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_customer_tenant_code,priority:2"`
	Name                     string          `gorm:"type:varchar(200);not null"` // display name, matched byte-for-byte on deletion
	ContactName              string          `gorm:"type:varchar(100)"`
	Email                    string          `gorm:"type:varchar(200);index"`
	Phone                    string          `gorm:"type:varchar(50)"`
	Address                  string          `gorm:"type:text"`
	LifecycleStatus          LifecycleStatus `gorm:"type:varchar(20);not null;default:'prospect';index"`
	LifecycleStatusChangedAt time.Time       `gorm:"not null"`
	LastActivityAt           time.Time       `gorm:"not null;index"`
	CustomFields             string          `gorm:"type:jsonb;not null;default:'{}'"`
	Anonymized               bool            `gorm:"not null;default:false"`
	Notes                    string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer in PROSPECT status
func NewCustomer(tenantID uuid.UUID, code, name string) (*Customer, error) {
	if err := validateCustomerCode(code); err != nil {
		return nil, err
	}
	if err := validateCustomerName(name); err != nil {
		return nil, err
	}

	now := time.Now()
	customer := &Customer{
		TenantAggregateRoot:      shared.NewTenantAggregateRoot(tenantID),
		Code:                     strings.ToUpper(code),
		Name:                     name,
		LifecycleStatus:          LifecycleStatusProspect,
		LifecycleStatusChangedAt: now,
		LastActivityAt:           now,
		CustomFields:             "{}",
	}

	customer.AddDomainEvent(NewCustomerCreatedEvent(customer))

	return customer, nil
}

// TransitionTo moves the customer along a legal lifecycle edge. Edge
// validity only; prerequisite gating for activation-class transitions is the
// lifecycle service's responsibility and happens before this call.
func (c *Customer) TransitionTo(target LifecycleStatus) error {
	if c.Anonymized {
		return shared.NewDomainError("INVALID_STATE", "Customer has been erased")
	}
	if !CanTransition(c.LifecycleStatus, target) {
		return shared.ErrInvalidTransition
	}

	from := c.LifecycleStatus
	c.LifecycleStatus = target
	c.LifecycleStatusChangedAt = time.Now()
	c.UpdatedAt = c.LifecycleStatusChangedAt
	c.IncrementVersion()

	c.AddDomainEvent(NewCustomerLifecycleChangedEvent(c, from, target))

	return nil
}

// SetContact sets the customer's contact information
func (c *Customer) SetContact(contactName, phone, email, address string) error {
	if contactName != "" && len(contactName) > 100 {
		return shared.NewDomainError("VALIDATION_ERROR", "Contact name cannot exceed 100 characters")
	}
	if phone != "" && len(phone) > 50 {
		return shared.NewDomainError("VALIDATION_ERROR", "Phone number cannot exceed 50 characters")
	}
	if email != "" && len(email) > 200 {
		return shared.NewDomainError("VALIDATION_ERROR", "Email cannot exceed 200 characters")
	}

	c.ContactName = contactName
	c.Phone = phone
	c.Email = email
	c.Address = address
	c.touch()

	return nil
}

// FieldValues decodes the customer's custom field values
func (c *Customer) FieldValues() (map[string]string, error) {
	values := make(map[string]string)
	raw := c.CustomFields
	if raw == "" {
		raw = "{}"
	}
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, shared.NewDomainError("INVALID_STATE", "Customer custom fields are not a valid JSON object")
	}
	return values, nil
}

// SetFieldValue sets one custom field value. Setting a field counts as
// customer activity for dormancy purposes.
func (c *Customer) SetFieldValue(slug, value string) error {
	values, err := c.FieldValues()
	if err != nil {
		return err
	}
	if value == "" {
		delete(values, slug)
	} else {
		values[slug] = value
	}
	encoded, err := json.Marshal(values)
	if err != nil {
		return shared.NewDomainError("INVALID_STATE", "Failed to encode custom field values")
	}
	c.CustomFields = string(encoded)
	c.RecordActivity(time.Now())
	c.touch()
	return nil
}

// RecordActivity stamps the last-activity timestamp if it moves forward
func (c *Customer) RecordActivity(at time.Time) {
	if at.After(c.LastActivityAt) {
		c.LastActivityAt = at
	}
}

// DaysSinceActivity returns whole days elapsed since the last activity
func (c *Customer) DaysSinceActivity(now time.Time) int {
	return int(now.Sub(c.LastActivityAt).Hours() / 24)
}

// Anonymize blanks the customer's PII in place. The row survives so foreign
// keys and the lifecycle history stay intact. Irreversible.
func (c *Customer) Anonymize() {
	c.Name = "Deleted Customer"
	c.ContactName = ""
	c.Email = ""
	c.Phone = ""
	c.Address = ""
	c.Notes = ""
	c.CustomFields = "{}"
	c.Anonymized = true
	c.touch()

	c.AddDomainEvent(NewCustomerErasedEvent(c))
}

func (c *Customer) touch() {
	c.Touch()
	c.IncrementVersion()
}

// Validation functions

func validateCustomerCode(code string) error {
	if code == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Customer code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("VALIDATION_ERROR", "Customer code cannot exceed 50 characters")
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("VALIDATION_ERROR", "Customer code can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

func validateCustomerName(name string) error {
	if name == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Customer name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("VALIDATION_ERROR", "Customer name cannot exceed 200 characters")
	}
	return nil
}
