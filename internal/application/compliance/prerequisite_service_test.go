package compliance

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/worksuite/backend/internal/domain/compliance"
	"github.com/worksuite/backend/internal/domain/shared"
	"go.uber.org/zap"
)

func newPrerequisiteServiceForTest() (*PrerequisiteService, *MockFieldDefinitionRepository, *MockFieldGroupRepository, *MockFieldValueReader, *MockChecklistReader) {
	mockDefRepo := new(MockFieldDefinitionRepository)
	mockGroupRepo := new(MockFieldGroupRepository)
	mockValueReader := new(MockFieldValueReader)
	mockChecklistReader := new(MockChecklistReader)
	service := NewPrerequisiteService(mockDefRepo, mockGroupRepo, mockValueReader, mockChecklistReader, zap.NewNop())
	return service, mockDefRepo, mockGroupRepo, mockValueReader, mockChecklistReader
}

func TestPrerequisiteService_Check_Passes(t *testing.T) {
	service, mockDefRepo, mockGroupRepo, mockValueReader, _ := newPrerequisiteServiceForTest()

	ctx := context.Background()
	tenantID := newTestTenantID()
	entityID := newTestEntityID()

	def, err := compliance.NewFieldDefinition(tenantID, "vat_number", "VAT Number", compliance.FieldTypeText)
	require.NoError(t, err)
	def.SetRequired(true)

	mockDefRepo.On("FindActiveForTenant", ctx, tenantID).Return([]compliance.FieldDefinition{*def}, nil)
	mockGroupRepo.On("FindAllForTenant", ctx, tenantID).Return([]compliance.FieldGroup{}, nil)
	mockValueReader.On("FieldValues", ctx, tenantID, compliance.EntityTypeCustomer, entityID).
		Return(compliance.FieldValues{"vat_number": "DE123456789"}, nil)

	result, err := service.Check(ctx, tenantID, PrerequisiteCheckRequest{
		Context:    "invoice_generation",
		EntityType: "customer",
		EntityID:   entityID,
	})
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.False(t, result.Degraded)
	assert.Equal(t, "fail_open", result.Policy)
	assert.Empty(t, result.Violations)
}

func TestPrerequisiteService_Check_ReportsViolations(t *testing.T) {
	service, mockDefRepo, mockGroupRepo, mockValueReader, mockChecklistReader := newPrerequisiteServiceForTest()

	ctx := context.Background()
	tenantID := newTestTenantID()
	entityID := newTestEntityID()

	def, err := compliance.NewFieldDefinition(tenantID, "vat_number", "VAT Number", compliance.FieldTypeText)
	require.NoError(t, err)
	def.SetRequired(true)

	mockDefRepo.On("FindActiveForTenant", ctx, tenantID).Return([]compliance.FieldDefinition{*def}, nil)
	mockGroupRepo.On("FindAllForTenant", ctx, tenantID).Return([]compliance.FieldGroup{}, nil)
	mockValueReader.On("FieldValues", ctx, tenantID, compliance.EntityTypeCustomer, entityID).
		Return(compliance.FieldValues{}, nil)
	mockChecklistReader.On("Items", ctx, tenantID, compliance.EntityTypeCustomer, entityID).
		Return([]compliance.ChecklistItem{
			{ChecklistName: "Onboarding", Name: "Sign contract", Required: true},
		}, nil)

	result, err := service.Check(ctx, tenantID, PrerequisiteCheckRequest{
		Context:    "lifecycle_activation",
		EntityType: "customer",
		EntityID:   entityID,
	})
	require.NoError(t, err)
	assert.False(t, result.Passed)
	assert.Equal(t, "fail_closed", result.Policy)
	require.Len(t, result.Violations, 2)
	assert.Equal(t, compliance.ViolationMissingRequiredField, result.Violations[0].Code)
	assert.Equal(t, compliance.ViolationChecklistIncomplete, result.Violations[1].Code)
}

func TestPrerequisiteService_Check_ChecklistNotLoadedForAdvisoryContext(t *testing.T) {
	service, mockDefRepo, mockGroupRepo, mockValueReader, mockChecklistReader := newPrerequisiteServiceForTest()

	ctx := context.Background()
	tenantID := newTestTenantID()
	entityID := newTestEntityID()

	mockDefRepo.On("FindActiveForTenant", ctx, tenantID).Return([]compliance.FieldDefinition{}, nil)
	mockGroupRepo.On("FindAllForTenant", ctx, tenantID).Return([]compliance.FieldGroup{}, nil)
	mockValueReader.On("FieldValues", ctx, tenantID, compliance.EntityTypeCustomer, entityID).
		Return(compliance.FieldValues{}, nil)

	result, err := service.Check(ctx, tenantID, PrerequisiteCheckRequest{
		Context:    "proposal_send",
		EntityType: "customer",
		EntityID:   entityID,
	})
	require.NoError(t, err)
	assert.True(t, result.Passed)
	mockChecklistReader.AssertNotCalled(t, "Items", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPrerequisiteService_Check_UnknownContext(t *testing.T) {
	service, _, _, _, _ := newPrerequisiteServiceForTest()

	_, err := service.Check(context.Background(), newTestTenantID(), PrerequisiteCheckRequest{
		Context:    "order_fulfilment",
		EntityType: "customer",
		EntityID:   newTestEntityID(),
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "INVALID_CONTEXT", domainErr.Code)
}

func TestPrerequisiteService_Check_UnknownEntityType(t *testing.T) {
	service, _, _, _, _ := newPrerequisiteServiceForTest()

	_, err := service.Check(context.Background(), newTestTenantID(), PrerequisiteCheckRequest{
		Context:    "proposal_send",
		EntityType: "supplier",
		EntityID:   newTestEntityID(),
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "INVALID_ENTITY_TYPE", domainErr.Code)
}

func TestPrerequisiteService_Check_FailOpenDegradesOnStorageFailure(t *testing.T) {
	service, mockDefRepo, _, _, _ := newPrerequisiteServiceForTest()

	ctx := context.Background()
	tenantID := newTestTenantID()

	mockDefRepo.On("FindActiveForTenant", ctx, tenantID).Return(nil, shared.ErrStorageUnavailable)

	result, err := service.Check(ctx, tenantID, PrerequisiteCheckRequest{
		Context:    "invoice_generation",
		EntityType: "customer",
		EntityID:   newTestEntityID(),
	})
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.True(t, result.Degraded)
	assert.Equal(t, "fail_open", result.Policy)
	assert.Empty(t, result.Violations)
}

func TestPrerequisiteService_Check_FailClosedBlocksOnStorageFailure(t *testing.T) {
	service, mockDefRepo, _, _, _ := newPrerequisiteServiceForTest()

	ctx := context.Background()
	tenantID := newTestTenantID()

	mockDefRepo.On("FindActiveForTenant", ctx, tenantID).Return(nil, shared.ErrStorageUnavailable)

	_, err := service.Check(ctx, tenantID, PrerequisiteCheckRequest{
		Context:    "lifecycle_activation",
		EntityType: "customer",
		EntityID:   newTestEntityID(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrStorageUnavailable)
}

func TestPrerequisiteService_Check_MissingEntityIsNotDegraded(t *testing.T) {
	service, mockDefRepo, mockGroupRepo, mockValueReader, _ := newPrerequisiteServiceForTest()

	ctx := context.Background()
	tenantID := newTestTenantID()
	entityID := newTestEntityID()

	mockDefRepo.On("FindActiveForTenant", ctx, tenantID).Return([]compliance.FieldDefinition{}, nil)
	mockGroupRepo.On("FindAllForTenant", ctx, tenantID).Return([]compliance.FieldGroup{}, nil)
	mockValueReader.On("FieldValues", ctx, tenantID, compliance.EntityTypeCustomer, entityID).
		Return(nil, shared.ErrNotFound)

	// A missing entity surfaces as NOT_FOUND even in a fail-open context.
	_, err := service.Check(ctx, tenantID, PrerequisiteCheckRequest{
		Context:    "proposal_send",
		EntityType: "customer",
		EntityID:   entityID,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestPrerequisiteService_Evaluate_ReturnsDomainResult(t *testing.T) {
	service, mockDefRepo, mockGroupRepo, mockValueReader, mockChecklistReader := newPrerequisiteServiceForTest()

	ctx := context.Background()
	tenantID := newTestTenantID()
	entityID := newTestEntityID()

	def, err := compliance.NewFieldDefinition(tenantID, "vat_number", "VAT Number", compliance.FieldTypeText)
	require.NoError(t, err)
	def.SetRequired(true)

	mockDefRepo.On("FindActiveForTenant", ctx, tenantID).Return([]compliance.FieldDefinition{*def}, nil)
	mockGroupRepo.On("FindAllForTenant", ctx, tenantID).Return([]compliance.FieldGroup{}, nil)
	mockValueReader.On("FieldValues", ctx, tenantID, compliance.EntityTypeCustomer, entityID).
		Return(compliance.FieldValues{}, nil)
	mockChecklistReader.On("Items", ctx, tenantID, compliance.EntityTypeCustomer, entityID).
		Return([]compliance.ChecklistItem{}, nil)

	check, err := service.Evaluate(ctx, tenantID, compliance.ContextLifecycleActivation, compliance.EntityTypeCustomer, entityID)
	require.NoError(t, err)
	assert.False(t, check.Passed)
	require.Len(t, check.Violations, 1)
	assert.Equal(t, "vat_number", check.Violations[0].FieldSlug)
}
