package compliance

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/worksuite/backend/internal/domain/compliance"
	"github.com/worksuite/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// PrerequisiteService evaluates the prerequisite gate for business actions.
// Check is a pure read: it never mutates the entity or the registry, so two
// callers checking the same entity concurrently just get two snapshots.
type PrerequisiteService struct {
	defRepo         compliance.FieldDefinitionRepository
	groupRepo       compliance.FieldGroupRepository
	valueReader     compliance.FieldValueReader
	checklistReader compliance.ChecklistReader
	logger          *zap.Logger
}

// NewPrerequisiteService creates a new PrerequisiteService
func NewPrerequisiteService(
	defRepo compliance.FieldDefinitionRepository,
	groupRepo compliance.FieldGroupRepository,
	valueReader compliance.FieldValueReader,
	checklistReader compliance.ChecklistReader,
	logger *zap.Logger,
) *PrerequisiteService {
	return &PrerequisiteService{
		defRepo:         defRepo,
		groupRepo:       groupRepo,
		valueReader:     valueReader,
		checklistReader: checklistReader,
		logger:          logger,
	}
}

// Check evaluates the prerequisites of one entity for one context.
//
// When storage fails mid-check the context's failure policy decides the
// outcome: fail-closed contexts surface STORAGE_UNAVAILABLE and the caller
// must block the action; fail-open contexts get a degraded pass so advisory
// flows are not held hostage by a registry outage. A missing entity is a
// NOT_FOUND, not a storage failure.
func (s *PrerequisiteService) Check(ctx context.Context, tenantID uuid.UUID, req PrerequisiteCheckRequest) (*PrerequisiteCheckResponse, error) {
	prereqCtx, err := compliance.ParseContext(req.Context)
	if err != nil {
		return nil, err
	}
	entityType, err := compliance.ParseEntityType(req.EntityType)
	if err != nil {
		return nil, err
	}

	check, err := s.evaluate(ctx, tenantID, prereqCtx, entityType, req.EntityID)
	if err != nil {
		if isEntityError(err) {
			return nil, err
		}
		return s.applyFailurePolicy(prereqCtx, err)
	}

	response := ToPrerequisiteCheckResponse(*check)
	return &response, nil
}

// Evaluate runs the check and returns the domain result directly. Other
// services (the lifecycle gate) call this instead of Check to branch on the
// typed outcome.
func (s *PrerequisiteService) Evaluate(ctx context.Context, tenantID uuid.UUID, prereqCtx compliance.Context, entityType compliance.EntityType, entityID uuid.UUID) (*compliance.PrerequisiteCheck, error) {
	return s.evaluate(ctx, tenantID, prereqCtx, entityType, entityID)
}

func (s *PrerequisiteService) evaluate(ctx context.Context, tenantID uuid.UUID, prereqCtx compliance.Context, entityType compliance.EntityType, entityID uuid.UUID) (*compliance.PrerequisiteCheck, error) {
	defs, err := s.defRepo.FindActiveForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	groups, err := s.groupRepo.FindAllForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	values, err := s.valueReader.FieldValues(ctx, tenantID, entityType, entityID)
	if err != nil {
		return nil, err
	}

	var checklist []compliance.ChecklistItem
	if prereqCtx.InspectsChecklists() {
		checklist, err = s.checklistReader.Items(ctx, tenantID, entityType, entityID)
		if err != nil {
			return nil, err
		}
	}

	fields := resolveApplicable(defs, groups, prereqCtx)
	check := compliance.Evaluate(prereqCtx, entityType, entityID, fields, values, checklist)
	return &check, nil
}

func (s *PrerequisiteService) applyFailurePolicy(prereqCtx compliance.Context, cause error) (*PrerequisiteCheckResponse, error) {
	policy := compliance.PolicyFor(prereqCtx)
	if policy == compliance.FailClosed {
		s.logger.Error("prerequisite check failed closed",
			zap.String("context", string(prereqCtx)),
			zap.Error(cause))
		return nil, shared.ErrStorageUnavailable
	}

	s.logger.Warn("prerequisite check degraded to fail-open pass",
		zap.String("context", string(prereqCtx)),
		zap.Error(cause))
	return &PrerequisiteCheckResponse{
		Passed:     true,
		Context:    string(prereqCtx),
		Policy:     string(policy),
		Degraded:   true,
		Violations: []ViolationResponse{},
	}, nil
}

// isEntityError distinguishes business errors about the target entity from
// infrastructure failures. Only the latter trigger the failure policy.
func isEntityError(err error) bool {
	var domainErr *shared.DomainError
	if !errors.As(err, &domainErr) {
		return false
	}
	return domainErr.Code != shared.ErrStorageUnavailable.Code
}
