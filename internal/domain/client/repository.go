package client

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/worksuite/backend/internal/domain/shared"
)

// CustomerRepository defines the persistence interface for customers
type CustomerRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Customer, error)
	FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*Customer, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (*shared.Paginated[*Customer], error)
	ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error)
	Save(ctx context.Context, customer *Customer) error
	// SaveWithLock persists the customer only if the stored version matches
	// the version the aggregate was loaded at. A stale version returns
	// shared.ErrConcurrencyConflict and writes nothing.
	SaveWithLock(ctx context.Context, customer *Customer) error
	// FindActiveInactiveSince returns ACTIVE customers whose last activity is
	// strictly before the cutoff. Used by the dormancy scan.
	FindActiveInactiveSince(ctx context.Context, tenantID uuid.UUID, cutoff time.Time) ([]*Customer, error)
	// TenantIDsWithActiveCustomers lists tenants that have at least one
	// ACTIVE customer. The background dormancy scan iterates this set.
	TenantIDsWithActiveCustomers(ctx context.Context) ([]uuid.UUID, error)
}

// LifecycleTransitionRepository persists the append-only transition history
type LifecycleTransitionRepository interface {
	Append(ctx context.Context, transition *LifecycleTransition) error
	FindByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) ([]*LifecycleTransition, error)
}

// DeletionRequestRepository persists deletion requests
type DeletionRequestRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*DeletionRequest, error)
	FindPendingByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) (*DeletionRequest, error)
	Save(ctx context.Context, request *DeletionRequest) error
}

// DocumentStore is the deletion cascade's view of customer documents
type DocumentStore interface {
	DeleteByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) (int64, error)
}

// CommentStore is the deletion cascade's view of customer comments. Comments
// are redacted in place so threads keep their shape.
type CommentStore interface {
	RedactByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) (int64, error)
}

// PortalContactStore is the deletion cascade's view of portal contact accounts
type PortalContactStore interface {
	AnonymizeByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) (int64, error)
}

// InvoiceStore is the deletion cascade's view of invoices. Invoices are
// retained for financial records and only counted.
type InvoiceStore interface {
	CountByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) (int64, error)
}
