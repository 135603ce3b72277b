package persistence

import (
	"context"

	appclient "github.com/worksuite/backend/internal/application/client"
	"github.com/worksuite/backend/internal/domain/client"
	"gorm.io/gorm"
)

// GormTransactionScope implements the client TransactionScope using GORM
// transactions. It provides atomic execution of multiple repository operations.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appclient.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormTransactionalRepositories provides access to all client repositories within a transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// CustomerRepo returns the customer repository scoped to the current transaction.
func (r *gormTransactionalRepositories) CustomerRepo() client.CustomerRepository {
	return NewGormCustomerRepository(r.tx)
}

// TransitionRepo returns the transition history repository scoped to the current transaction.
func (r *gormTransactionalRepositories) TransitionRepo() client.LifecycleTransitionRepository {
	return NewGormLifecycleTransitionRepository(r.tx)
}

// DeletionRequestRepo returns the deletion request repository scoped to the current transaction.
func (r *gormTransactionalRepositories) DeletionRequestRepo() client.DeletionRequestRepository {
	return NewGormDeletionRequestRepository(r.tx)
}

// DocumentStore returns the document store scoped to the current transaction.
func (r *gormTransactionalRepositories) DocumentStore() client.DocumentStore {
	return NewGormDocumentStore(r.tx)
}

// CommentStore returns the comment store scoped to the current transaction.
func (r *gormTransactionalRepositories) CommentStore() client.CommentStore {
	return NewGormCommentStore(r.tx)
}

// PortalContactStore returns the portal contact store scoped to the current transaction.
func (r *gormTransactionalRepositories) PortalContactStore() client.PortalContactStore {
	return NewGormPortalContactStore(r.tx)
}

// InvoiceStore returns the invoice store scoped to the current transaction.
func (r *gormTransactionalRepositories) InvoiceStore() client.InvoiceStore {
	return NewGormInvoiceStore(r.tx)
}

// Ensure GormTransactionScope implements TransactionScope
var _ appclient.TransactionScope = (*GormTransactionScope)(nil)

// Ensure gormTransactionalRepositories implements TransactionalRepositories
var _ appclient.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
