package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/worksuite/backend/internal/domain/client"
	"github.com/worksuite/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormDocumentStore implements DocumentStore using GORM
type GormDocumentStore struct {
	db *gorm.DB
}

// NewGormDocumentStore creates a new GormDocumentStore
func NewGormDocumentStore(db *gorm.DB) *GormDocumentStore {
	return &GormDocumentStore{db: db}
}

// DeleteByCustomer hard-deletes all documents of a customer and returns the count
func (s *GormDocumentStore) DeleteByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("tenant_id = ? AND customer_id = ?", tenantID, customerID).
		Delete(&models.DocumentModel{})
	return result.RowsAffected, result.Error
}

// GormCommentStore implements CommentStore using GORM
type GormCommentStore struct {
	db *gorm.DB
}

// NewGormCommentStore creates a new GormCommentStore
func NewGormCommentStore(db *gorm.DB) *GormCommentStore {
	return &GormCommentStore{db: db}
}

// RedactByCustomer blanks the body of all non-redacted comments of a customer
// and returns the count. Already redacted rows are left alone so a retried
// cascade reports zero instead of double-counting.
func (s *GormCommentStore) RedactByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&models.CommentModel{}).
		Where("tenant_id = ? AND customer_id = ? AND redacted = ?", tenantID, customerID, false).
		Updates(map[string]interface{}{
			"body":     "[redacted]",
			"redacted": true,
		})
	return result.RowsAffected, result.Error
}

// GormPortalContactStore implements PortalContactStore using GORM
type GormPortalContactStore struct {
	db *gorm.DB
}

// NewGormPortalContactStore creates a new GormPortalContactStore
func NewGormPortalContactStore(db *gorm.DB) *GormPortalContactStore {
	return &GormPortalContactStore{db: db}
}

// AnonymizeByCustomer blanks the PII of all enabled portal contacts of a
// customer, disables them, and returns the count
func (s *GormPortalContactStore) AnonymizeByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&models.PortalContactModel{}).
		Where("tenant_id = ? AND customer_id = ? AND disabled = ?", tenantID, customerID, false).
		Updates(map[string]interface{}{
			"name":     "Deleted Contact",
			"email":    "",
			"disabled": true,
		})
	return result.RowsAffected, result.Error
}

// GormInvoiceStore implements InvoiceStore using GORM
type GormInvoiceStore struct {
	db *gorm.DB
}

// NewGormInvoiceStore creates a new GormInvoiceStore
func NewGormInvoiceStore(db *gorm.DB) *GormInvoiceStore {
	return &GormInvoiceStore{db: db}
}

// CountByCustomer counts the invoices of a customer. Invoices are never
// modified by the deletion cascade.
func (s *GormInvoiceStore) CountByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Where("tenant_id = ? AND customer_id = ?", tenantID, customerID).
		Count(&count).Error
	return count, err
}

// Ensure the stores implement their domain interfaces
var _ client.DocumentStore = (*GormDocumentStore)(nil)
var _ client.CommentStore = (*GormCommentStore)(nil)
var _ client.PortalContactStore = (*GormPortalContactStore)(nil)
var _ client.InvoiceStore = (*GormInvoiceStore)(nil)
