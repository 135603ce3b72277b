package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/worksuite/backend/internal/domain/client"
)

// CustomerModel is the persistence model for the Customer aggregate.
type CustomerModel struct {
	TenantAggregateModel
	Code                     string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_customer_tenant_code,priority:2"`
	Name                     string    `gorm:"type:varchar(200);not null"`
	ContactName              string    `gorm:"type:varchar(100)"`
	Email                    string    `gorm:"type:varchar(200);index"`
	Phone                    string    `gorm:"type:varchar(50)"`
	Address                  string    `gorm:"type:text"`
	LifecycleStatus          string    `gorm:"type:varchar(20);not null;default:'prospect';index"`
	LifecycleStatusChangedAt time.Time `gorm:"not null"`
	LastActivityAt           time.Time `gorm:"not null;index"`
	CustomFields             string    `gorm:"type:jsonb;not null;default:'{}'"`
	Anonymized               bool      `gorm:"not null;default:false"`
	Notes                    string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer.
func (m *CustomerModel) ToDomain() *client.Customer {
	customer := &client.Customer{
		Code:                     m.Code,
		Name:                     m.Name,
		ContactName:              m.ContactName,
		Email:                    m.Email,
		Phone:                    m.Phone,
		Address:                  m.Address,
		LifecycleStatus:          client.LifecycleStatus(m.LifecycleStatus),
		LifecycleStatusChangedAt: m.LifecycleStatusChangedAt,
		LastActivityAt:           m.LastActivityAt,
		CustomFields:             m.CustomFields,
		Anonymized:               m.Anonymized,
		Notes:                    m.Notes,
	}
	m.PopulateTenantAggregateRoot(&customer.TenantAggregateRoot)
	return customer
}

// FromDomain populates the persistence model from a domain Customer.
func (m *CustomerModel) FromDomain(c *client.Customer) {
	m.FromDomainTenantAggregateRoot(c.TenantAggregateRoot)
	m.Code = c.Code
	m.Name = c.Name
	m.ContactName = c.ContactName
	m.Email = c.Email
	m.Phone = c.Phone
	m.Address = c.Address
	m.LifecycleStatus = string(c.LifecycleStatus)
	m.LifecycleStatusChangedAt = c.LifecycleStatusChangedAt
	m.LastActivityAt = c.LastActivityAt
	m.CustomFields = c.CustomFields
	m.Anonymized = c.Anonymized
	m.Notes = c.Notes
}

// CustomerModelFromDomain creates a persistence model from a domain Customer.
func CustomerModelFromDomain(c *client.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}

// LifecycleTransitionModel is the persistence model for transition history rows.
type LifecycleTransitionModel struct {
	BaseModel
	TenantID   uuid.UUID `gorm:"type:uuid;not null;index:idx_transition_customer,priority:1"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index:idx_transition_customer,priority:2"`
	FromStatus string    `gorm:"type:varchar(20);not null"`
	ToStatus   string    `gorm:"type:varchar(20);not null"`
	ChangedBy  uuid.UUID `gorm:"type:uuid;not null"`
	Notes      string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (LifecycleTransitionModel) TableName() string {
	return "lifecycle_transitions"
}

// ToDomain converts the persistence model to a domain LifecycleTransition.
func (m *LifecycleTransitionModel) ToDomain() *client.LifecycleTransition {
	return &client.LifecycleTransition{
		BaseEntity: m.BaseModel.ToDomain(),
		TenantID:   m.TenantID,
		CustomerID: m.CustomerID,
		FromStatus: client.LifecycleStatus(m.FromStatus),
		ToStatus:   client.LifecycleStatus(m.ToStatus),
		ChangedBy:  m.ChangedBy,
		Notes:      m.Notes,
	}
}

// LifecycleTransitionModelFromDomain creates a persistence model from a domain transition.
func LifecycleTransitionModelFromDomain(t *client.LifecycleTransition) *LifecycleTransitionModel {
	m := &LifecycleTransitionModel{}
	m.FromDomainBaseEntity(t.BaseEntity)
	m.TenantID = t.TenantID
	m.CustomerID = t.CustomerID
	m.FromStatus = string(t.FromStatus)
	m.ToStatus = string(t.ToStatus)
	m.ChangedBy = t.ChangedBy
	m.Notes = t.Notes
	return m
}

// DeletionRequestModel is the persistence model for the DeletionRequest aggregate.
type DeletionRequestModel struct {
	TenantAggregateModel
	CustomerID               uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status                   string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	RequestedBy              uuid.UUID  `gorm:"type:uuid;not null"`
	ExecutedAt               *time.Time `gorm:""`
	CustomerAnonymized       bool       `gorm:"not null;default:false"`
	DocumentsDeleted         int64      `gorm:"not null;default:0"`
	CommentsRedacted         int64      `gorm:"not null;default:0"`
	PortalContactsAnonymized int64      `gorm:"not null;default:0"`
	InvoicesPreserved        int64      `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (DeletionRequestModel) TableName() string {
	return "deletion_requests"
}

// ToDomain converts the persistence model to a domain DeletionRequest.
func (m *DeletionRequestModel) ToDomain() *client.DeletionRequest {
	req := &client.DeletionRequest{
		CustomerID:               m.CustomerID,
		Status:                   client.DeletionRequestStatus(m.Status),
		RequestedBy:              m.RequestedBy,
		ExecutedAt:               m.ExecutedAt,
		CustomerAnonymized:       m.CustomerAnonymized,
		DocumentsDeleted:         m.DocumentsDeleted,
		CommentsRedacted:         m.CommentsRedacted,
		PortalContactsAnonymized: m.PortalContactsAnonymized,
		InvoicesPreserved:        m.InvoicesPreserved,
	}
	m.PopulateTenantAggregateRoot(&req.TenantAggregateRoot)
	return req
}

// FromDomain populates the persistence model from a domain DeletionRequest.
func (m *DeletionRequestModel) FromDomain(req *client.DeletionRequest) {
	m.FromDomainTenantAggregateRoot(req.TenantAggregateRoot)
	m.CustomerID = req.CustomerID
	m.Status = string(req.Status)
	m.RequestedBy = req.RequestedBy
	m.ExecutedAt = req.ExecutedAt
	m.CustomerAnonymized = req.CustomerAnonymized
	m.DocumentsDeleted = req.DocumentsDeleted
	m.CommentsRedacted = req.CommentsRedacted
	m.PortalContactsAnonymized = req.PortalContactsAnonymized
	m.InvoicesPreserved = req.InvoicesPreserved
}

// DeletionRequestModelFromDomain creates a persistence model from a domain DeletionRequest.
func DeletionRequestModelFromDomain(req *client.DeletionRequest) *DeletionRequestModel {
	m := &DeletionRequestModel{}
	m.FromDomain(req)
	return m
}

// DocumentModel is the persistence model for customer documents. Rows are
// hard-deleted by the deletion cascade.
type DocumentModel struct {
	BaseModel
	TenantID   uuid.UUID `gorm:"type:uuid;not null;index:idx_document_customer,priority:1"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index:idx_document_customer,priority:2"`
	FileName   string    `gorm:"type:varchar(500);not null"`
	StorageKey string    `gorm:"type:varchar(500);not null"`
	SizeBytes  int64     `gorm:"not null;default:0"`
	UploadedBy uuid.UUID `gorm:"type:uuid;not null"`
}

// TableName returns the table name for GORM
func (DocumentModel) TableName() string {
	return "customer_documents"
}

// CommentModel is the persistence model for customer comments. The deletion
// cascade blanks the body and flags the row instead of deleting it so thread
// structure survives.
type CommentModel struct {
	BaseModel
	TenantID   uuid.UUID `gorm:"type:uuid;not null;index:idx_comment_customer,priority:1"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index:idx_comment_customer,priority:2"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null"`
	Body       string    `gorm:"type:text;not null"`
	Redacted   bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (CommentModel) TableName() string {
	return "customer_comments"
}

// PortalContactModel is the persistence model for customer portal accounts.
type PortalContactModel struct {
	BaseModel
	TenantID   uuid.UUID `gorm:"type:uuid;not null;index:idx_portal_contact_customer,priority:1"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index:idx_portal_contact_customer,priority:2"`
	Name       string    `gorm:"type:varchar(200);not null"`
	Email      string    `gorm:"type:varchar(200);not null"`
	Disabled   bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (PortalContactModel) TableName() string {
	return "portal_contacts"
}

// InvoiceModel is the persistence model for customer invoices. Invoices are
// financial records and are never touched by the deletion cascade.
type InvoiceModel struct {
	BaseModel
	TenantID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_invoice_customer,priority:1"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_invoice_customer,priority:2"`
	InvoiceNumber string          `gorm:"type:varchar(50);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Currency      string          `gorm:"type:varchar(3);not null;default:'USD'"`
	IssuedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}
