package client

import (
	"time"

	"github.com/google/uuid"
	"github.com/worksuite/backend/internal/domain/shared"
)

// DeletionRequestStatus tracks a deletion request through its two states
type DeletionRequestStatus string

const (
	DeletionRequestStatusPending  DeletionRequestStatus = "pending"
	DeletionRequestStatusExecuted DeletionRequestStatus = "executed"
)

// DeletionSummary reports what the cascade touched. Invoices are never part
// of the cascade: financial retention overrides erasure, so they are only
// counted.
type DeletionSummary struct {
	CustomerAnonymized       bool  `json:"customer_anonymized"`
	DocumentsDeleted         int64 `json:"documents_deleted"`
	CommentsRedacted         int64 `json:"comments_redacted"`
	PortalContactsAnonymized int64 `json:"portal_contacts_anonymized"`
	InvoicesPreserved        int64 `json:"invoices_preserved"`
}

// DeletionRequest is the aggregate root of the customer deletion workflow.
// A request is created once and executed at most once; after a successful
// execution it is a permanent record of what was erased.
type DeletionRequest struct {
	shared.TenantAggregateRoot
	CustomerID               uuid.UUID             `gorm:"type:uuid;not null;index"`
	Status                   DeletionRequestStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	RequestedBy              uuid.UUID             `gorm:"type:uuid;not null"`
	ExecutedAt               *time.Time            `gorm:""`
	CustomerAnonymized       bool                  `gorm:"not null;default:false"`
	DocumentsDeleted         int64                 `gorm:"not null;default:0"`
	CommentsRedacted         int64                 `gorm:"not null;default:0"`
	PortalContactsAnonymized int64                 `gorm:"not null;default:0"`
	InvoicesPreserved        int64                 `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (DeletionRequest) TableName() string {
	return "deletion_requests"
}

// NewDeletionRequest creates a pending deletion request for a customer
func NewDeletionRequest(tenantID, customerID, requestedBy uuid.UUID) *DeletionRequest {
	return &DeletionRequest{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		CustomerID:          customerID,
		Status:              DeletionRequestStatusPending,
		RequestedBy:         requestedBy,
	}
}

// IsExecuted reports whether the destructive work has already run
func (r *DeletionRequest) IsExecuted() bool {
	return r.Status == DeletionRequestStatusExecuted
}

// MarkExecuted records the cascade outcome. Calling it twice is a
// programming error surfaced as INVALID_STATE; idempotent re-execution is
// handled above this aggregate by returning the stored summary instead.
func (r *DeletionRequest) MarkExecuted(summary DeletionSummary) error {
	if r.IsExecuted() {
		return shared.NewDomainError("INVALID_STATE", "Deletion request has already been executed")
	}

	now := time.Now()
	r.Status = DeletionRequestStatusExecuted
	r.ExecutedAt = &now
	r.CustomerAnonymized = summary.CustomerAnonymized
	r.DocumentsDeleted = summary.DocumentsDeleted
	r.CommentsRedacted = summary.CommentsRedacted
	r.PortalContactsAnonymized = summary.PortalContactsAnonymized
	r.InvoicesPreserved = summary.InvoicesPreserved
	r.UpdatedAt = now
	r.IncrementVersion()

	r.AddDomainEvent(NewDeletionExecutedEvent(r))

	return nil
}

// Summary returns the stored cascade outcome
func (r *DeletionRequest) Summary() DeletionSummary {
	return DeletionSummary{
		CustomerAnonymized:       r.CustomerAnonymized,
		DocumentsDeleted:         r.DocumentsDeleted,
		CommentsRedacted:         r.CommentsRedacted,
		PortalContactsAnonymized: r.PortalContactsAnonymized,
		InvoicesPreserved:        r.InvoicesPreserved,
	}
}
