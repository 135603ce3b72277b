package client

import (
	"context"

	"github.com/worksuite/backend/internal/domain/client"
)

// TransactionScope provides transactional access to client repositories.
// When a function is executed within a transaction scope, all repository operations
// will be part of the same database transaction and will be committed or rolled back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to all client repositories within
// a transaction. All repositories returned share the same underlying database
// transaction.
//
// Two workflows need this scope: a lifecycle transition writes the customer
// row and its history row together, and a deletion execution writes the
// request, the anonymized customer, and the cascade stores together.
type TransactionalRepositories interface {
	// CustomerRepo returns the customer repository scoped to the current transaction
	CustomerRepo() client.CustomerRepository
	// TransitionRepo returns the transition history repository scoped to the current transaction
	TransitionRepo() client.LifecycleTransitionRepository
	// DeletionRequestRepo returns the deletion request repository scoped to the current transaction
	DeletionRequestRepo() client.DeletionRequestRepository
	// DocumentStore returns the document store scoped to the current transaction
	DocumentStore() client.DocumentStore
	// CommentStore returns the comment store scoped to the current transaction
	CommentStore() client.CommentStore
	// PortalContactStore returns the portal contact store scoped to the current transaction
	PortalContactStore() client.PortalContactStore
	// InvoiceStore returns the invoice store scoped to the current transaction
	InvoiceStore() client.InvoiceStore
}

// NoOpTransactionScope is a transaction scope that doesn't actually use transactions.
// This is useful for testing or when transaction support is not required.
type NoOpTransactionScope struct {
	customerRepo       client.CustomerRepository
	transitionRepo     client.LifecycleTransitionRepository
	deletionRepo       client.DeletionRequestRepository
	documentStore      client.DocumentStore
	commentStore       client.CommentStore
	portalContactStore client.PortalContactStore
	invoiceStore       client.InvoiceStore
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	customerRepo client.CustomerRepository,
	transitionRepo client.LifecycleTransitionRepository,
	deletionRepo client.DeletionRequestRepository,
	documentStore client.DocumentStore,
	commentStore client.CommentStore,
	portalContactStore client.PortalContactStore,
	invoiceStore client.InvoiceStore,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		customerRepo:       customerRepo,
		transitionRepo:     transitionRepo,
		deletionRepo:       deletionRepo,
		documentStore:      documentStore,
		commentStore:       commentStore,
		portalContactStore: portalContactStore,
		invoiceStore:       invoiceStore,
	}
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// CustomerRepo returns the customer repository.
func (s *NoOpTransactionScope) CustomerRepo() client.CustomerRepository {
	return s.customerRepo
}

// TransitionRepo returns the transition history repository.
func (s *NoOpTransactionScope) TransitionRepo() client.LifecycleTransitionRepository {
	return s.transitionRepo
}

// DeletionRequestRepo returns the deletion request repository.
func (s *NoOpTransactionScope) DeletionRequestRepo() client.DeletionRequestRepository {
	return s.deletionRepo
}

// DocumentStore returns the document store.
func (s *NoOpTransactionScope) DocumentStore() client.DocumentStore {
	return s.documentStore
}

// CommentStore returns the comment store.
func (s *NoOpTransactionScope) CommentStore() client.CommentStore {
	return s.commentStore
}

// PortalContactStore returns the portal contact store.
func (s *NoOpTransactionScope) PortalContactStore() client.PortalContactStore {
	return s.portalContactStore
}

// InvoiceStore returns the invoice store.
func (s *NoOpTransactionScope) InvoiceStore() client.InvoiceStore {
	return s.invoiceStore
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
