package client

import (
	"context"

	"github.com/google/uuid"
	appcompliance "github.com/worksuite/backend/internal/application/compliance"
	"github.com/worksuite/backend/internal/domain/client"
	"github.com/worksuite/backend/internal/domain/compliance"
	"github.com/worksuite/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Roles allowed to drive the customer lifecycle
const (
	RoleOwner = "owner"
	RoleAdmin = "admin"
)

// LifecycleService drives customers through the lifecycle state machine
type LifecycleService struct {
	customerRepo   client.CustomerRepository
	transitionRepo client.LifecycleTransitionRepository
	prereqService  *appcompliance.PrerequisiteService
	txScope        TransactionScope
	logger         *zap.Logger
}

// NewLifecycleService creates a new LifecycleService
func NewLifecycleService(
	customerRepo client.CustomerRepository,
	transitionRepo client.LifecycleTransitionRepository,
	prereqService *appcompliance.PrerequisiteService,
	txScope TransactionScope,
	logger *zap.Logger,
) *LifecycleService {
	return &LifecycleService{
		customerRepo:   customerRepo,
		transitionRepo: transitionRepo,
		prereqService:  prereqService,
		txScope:        txScope,
		logger:         logger,
	}
}

// Transition attempts to move a customer to a target status.
//
// Order of checks matters: permission first, then edge legality, then the
// activation gate. Nothing is written until every check has passed, so a
// blocked transition leaves the customer exactly as it was. The status update
// and the history row commit in one transaction, and the customer row is
// written with a version check so a concurrent transition loses cleanly
// instead of overwriting.
func (s *LifecycleService) Transition(ctx context.Context, tenantID, customerID, userID uuid.UUID, role string, req TransitionRequest) (*TransitionResult, error) {
	if !canManageLifecycle(role) {
		return nil, shared.ErrPermissionDenied
	}

	target, ok := client.ParseLifecycleStatus(req.TargetStatus)
	if !ok {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Unknown lifecycle status: "+req.TargetStatus)
	}

	customer, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}

	if !client.CanTransition(customer.LifecycleStatus, target) {
		return nil, shared.ErrInvalidTransition
	}

	if target.IsActivation() {
		check, err := s.prereqService.Evaluate(ctx, tenantID, compliance.ContextLifecycleActivation, compliance.EntityTypeCustomer, customerID)
		if err != nil {
			// Activation fails closed: an unverifiable gate blocks the transition
			s.logger.Error("activation gate unavailable, blocking transition",
				zap.String("customer_id", customerID.String()),
				zap.Error(err))
			return nil, shared.ErrStorageUnavailable
		}
		if !check.Passed {
			response := appcompliance.ToPrerequisiteCheckResponse(*check)
			return &TransitionResult{Blocked: true, Check: &response}, nil
		}
	}

	from := customer.LifecycleStatus
	if err := customer.TransitionTo(target); err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.CustomerRepo().SaveWithLock(ctx, customer); err != nil {
			return err
		}
		return repos.TransitionRepo().Append(ctx, client.NewLifecycleTransition(customer, from, target, userID, req.Notes))
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("customer lifecycle transition",
		zap.String("customer_id", customerID.String()),
		zap.String("from", string(from)),
		zap.String("to", string(target)))

	response := ToCustomerResponse(customer)
	return &TransitionResult{Customer: &response}, nil
}

// History returns a customer's transition history, newest first
func (s *LifecycleService) History(ctx context.Context, tenantID, customerID uuid.UUID) ([]TransitionHistoryResponse, error) {
	// Verify the customer exists in this tenant before exposing history
	if _, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, customerID); err != nil {
		return nil, err
	}

	transitions, err := s.transitionRepo.FindByCustomer(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}

	return ToTransitionHistoryResponses(transitions), nil
}

func canManageLifecycle(role string) bool {
	return role == RoleOwner || role == RoleAdmin
}
