package client

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/google/uuid"
	"github.com/worksuite/backend/internal/domain/client"
	"github.com/worksuite/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// DeletionService runs the two-step customer deletion workflow: open a
// request, then execute it with an explicit confirmation. Execution
// anonymizes the customer, deletes documents, redacts comments, anonymizes
// portal contacts, and preserves invoices.
type DeletionService struct {
	customerRepo client.CustomerRepository
	deletionRepo client.DeletionRequestRepository
	txScope      TransactionScope
	logger       *zap.Logger
}

// NewDeletionService creates a new DeletionService
func NewDeletionService(
	customerRepo client.CustomerRepository,
	deletionRepo client.DeletionRequestRepository,
	txScope TransactionScope,
	logger *zap.Logger,
) *DeletionService {
	return &DeletionService{
		customerRepo: customerRepo,
		deletionRepo: deletionRepo,
		txScope:      txScope,
		logger:       logger,
	}
}

// Request opens a deletion request for a customer. If a pending request
// already exists it is returned as-is instead of creating a duplicate.
func (s *DeletionService) Request(ctx context.Context, tenantID, userID uuid.UUID, role string, req RequestDeletionRequest) (*DeletionRequestResponse, error) {
	if !canManageLifecycle(role) {
		return nil, shared.ErrPermissionDenied
	}

	customer, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer.Anonymized {
		return nil, shared.NewDomainError("INVALID_STATE", "Customer has already been erased")
	}

	existing, err := s.deletionRepo.FindPendingByCustomer(ctx, tenantID, req.CustomerID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		response := ToDeletionRequestResponse(existing)
		return &response, nil
	}

	request := client.NewDeletionRequest(tenantID, req.CustomerID, userID)
	if err := s.deletionRepo.Save(ctx, request); err != nil {
		return nil, err
	}

	response := ToDeletionRequestResponse(request)
	return &response, nil
}

// GetByID retrieves a deletion request by ID
func (s *DeletionService) GetByID(ctx context.Context, tenantID, requestID uuid.UUID) (*DeletionRequestResponse, error) {
	request, err := s.deletionRepo.FindByIDForTenant(ctx, tenantID, requestID)
	if err != nil {
		return nil, err
	}

	response := ToDeletionRequestResponse(request)
	return &response, nil
}

// Execute runs the deletion cascade for a pending request.
//
// The confirmation text must match the customer's current display name byte
// for byte. Executing an already executed request is a no-op that returns the
// stored summary, so retried requests cannot double-count the cascade. All
// writes happen in a single transaction: a failure partway leaves nothing
// erased and the request still pending.
func (s *DeletionService) Execute(ctx context.Context, tenantID, userID uuid.UUID, role string, requestID uuid.UUID, req ExecuteDeletionRequest) (*DeletionRequestResponse, error) {
	if !canManageLifecycle(role) {
		return nil, shared.ErrPermissionDenied
	}

	request, err := s.deletionRepo.FindByIDForTenant(ctx, tenantID, requestID)
	if err != nil {
		return nil, err
	}

	if request.IsExecuted() {
		response := ToDeletionRequestResponse(request)
		return &response, nil
	}

	customer, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, request.CustomerID)
	if err != nil {
		return nil, err
	}

	if subtle.ConstantTimeCompare([]byte(req.Confirmation), []byte(customer.Name)) != 1 {
		return nil, shared.ErrConfirmationMismatch
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		documentsDeleted, err := repos.DocumentStore().DeleteByCustomer(ctx, tenantID, customer.ID)
		if err != nil {
			return err
		}
		commentsRedacted, err := repos.CommentStore().RedactByCustomer(ctx, tenantID, customer.ID)
		if err != nil {
			return err
		}
		contactsAnonymized, err := repos.PortalContactStore().AnonymizeByCustomer(ctx, tenantID, customer.ID)
		if err != nil {
			return err
		}
		invoicesPreserved, err := repos.InvoiceStore().CountByCustomer(ctx, tenantID, customer.ID)
		if err != nil {
			return err
		}

		customer.Anonymize()
		if err := repos.CustomerRepo().SaveWithLock(ctx, customer); err != nil {
			return err
		}

		summary := client.DeletionSummary{
			CustomerAnonymized:       true,
			DocumentsDeleted:         documentsDeleted,
			CommentsRedacted:         commentsRedacted,
			PortalContactsAnonymized: contactsAnonymized,
			InvoicesPreserved:        invoicesPreserved,
		}
		if err := request.MarkExecuted(summary); err != nil {
			return err
		}
		return repos.DeletionRequestRepo().Save(ctx, request)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("deletion request executed",
		zap.String("request_id", request.ID.String()),
		zap.String("customer_id", customer.ID.String()),
		zap.Int64("documents_deleted", request.DocumentsDeleted),
		zap.Int64("invoices_preserved", request.InvoicesPreserved))

	response := ToDeletionRequestResponse(request)
	return &response, nil
}
