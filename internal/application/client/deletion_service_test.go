package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/worksuite/backend/internal/domain/client"
	"github.com/worksuite/backend/internal/domain/shared"
	"go.uber.org/zap"
)

func newDeletionServiceForTest() (*DeletionService, *testMocks) {
	mocks := newTestMocks()
	service := NewDeletionService(mocks.customerRepo, mocks.deletions, mocks.scope(), zap.NewNop())
	return service, mocks
}

func TestDeletionService_Request_Success(t *testing.T) {
	service, mocks := newDeletionServiceForTest()
	ctx := context.Background()
	tenantID := newTestTenantID()
	userID := newTestUserID()
	customer := createTestCustomer(tenantID, client.LifecycleStatusOffboarded)

	mocks.customerRepo.On("FindByIDForTenant", ctx, tenantID, customer.ID).Return(customer, nil)
	mocks.deletions.On("FindPendingByCustomer", ctx, tenantID, customer.ID).Return(nil, shared.ErrNotFound)
	mocks.deletions.On("Save", ctx, mock.AnythingOfType("*client.DeletionRequest")).Return(nil)

	result, err := service.Request(ctx, tenantID, userID, RoleOwner, RequestDeletionRequest{CustomerID: customer.ID})
	require.NoError(t, err)
	assert.Equal(t, customer.ID, result.CustomerID)
	assert.Equal(t, "pending", result.Status)
	assert.Equal(t, userID, result.RequestedBy)
	assert.Nil(t, result.Summary)
}

func TestDeletionService_Request_PermissionDenied(t *testing.T) {
	service, mocks := newDeletionServiceForTest()
	ctx := context.Background()

	_, err := service.Request(ctx, newTestTenantID(), newTestUserID(), "member", RequestDeletionRequest{CustomerID: newTestUserID()})
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrPermissionDenied)
	mocks.customerRepo.AssertNotCalled(t, "FindByIDForTenant", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeletionService_Request_ReturnsExistingPending(t *testing.T) {
	service, mocks := newDeletionServiceForTest()
	ctx := context.Background()
	tenantID := newTestTenantID()
	customer := createTestCustomer(tenantID, client.LifecycleStatusOffboarded)
	existing := client.NewDeletionRequest(tenantID, customer.ID, newTestUserID())

	mocks.customerRepo.On("FindByIDForTenant", ctx, tenantID, customer.ID).Return(customer, nil)
	mocks.deletions.On("FindPendingByCustomer", ctx, tenantID, customer.ID).Return(existing, nil)

	result, err := service.Request(ctx, tenantID, newTestUserID(), RoleAdmin, RequestDeletionRequest{CustomerID: customer.ID})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, result.ID)
	mocks.deletions.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestDeletionService_Request_AlreadyErased(t *testing.T) {
	service, mocks := newDeletionServiceForTest()
	ctx := context.Background()
	tenantID := newTestTenantID()
	customer := createTestCustomer(tenantID, client.LifecycleStatusOffboarded)
	customer.Anonymize()

	mocks.customerRepo.On("FindByIDForTenant", ctx, tenantID, customer.ID).Return(customer, nil)

	_, err := service.Request(ctx, tenantID, newTestUserID(), RoleOwner, RequestDeletionRequest{CustomerID: customer.ID})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
}

func TestDeletionService_Execute_Success(t *testing.T) {
	service, mocks := newDeletionServiceForTest()
	ctx := context.Background()
	tenantID := newTestTenantID()
	customer := createTestCustomer(tenantID, client.LifecycleStatusOffboarded)
	request := client.NewDeletionRequest(tenantID, customer.ID, newTestUserID())

	mocks.deletions.On("FindByIDForTenant", ctx, tenantID, request.ID).Return(request, nil)
	mocks.customerRepo.On("FindByIDForTenant", ctx, tenantID, customer.ID).Return(customer, nil)
	mocks.documents.On("DeleteByCustomer", ctx, tenantID, customer.ID).Return(int64(3), nil)
	mocks.comments.On("RedactByCustomer", ctx, tenantID, customer.ID).Return(int64(7), nil)
	mocks.portalContact.On("AnonymizeByCustomer", ctx, tenantID, customer.ID).Return(int64(2), nil)
	mocks.invoices.On("CountByCustomer", ctx, tenantID, customer.ID).Return(int64(12), nil)
	mocks.customerRepo.On("SaveWithLock", ctx, customer).Return(nil)
	mocks.deletions.On("Save", ctx, request).Return(nil)

	result, err := service.Execute(ctx, tenantID, newTestUserID(), RoleOwner, request.ID, ExecuteDeletionRequest{
		Confirmation: "Acme Corp",
	})
	require.NoError(t, err)
	assert.Equal(t, "executed", result.Status)
	require.NotNil(t, result.Summary)
	assert.True(t, result.Summary.CustomerAnonymized)
	assert.Equal(t, int64(3), result.Summary.DocumentsDeleted)
	assert.Equal(t, int64(7), result.Summary.CommentsRedacted)
	assert.Equal(t, int64(2), result.Summary.PortalContactsAnonymized)
	assert.Equal(t, int64(12), result.Summary.InvoicesPreserved)

	assert.True(t, customer.Anonymized)
	assert.Equal(t, "Deleted Customer", customer.Name)
	mocks.documents.AssertExpectations(t)
	mocks.invoices.AssertExpectations(t)
}

func TestDeletionService_Execute_ConfirmationMismatch(t *testing.T) {
	service, mocks := newDeletionServiceForTest()
	ctx := context.Background()
	tenantID := newTestTenantID()
	customer := createTestCustomer(tenantID, client.LifecycleStatusOffboarded)
	request := client.NewDeletionRequest(tenantID, customer.ID, newTestUserID())

	mocks.deletions.On("FindByIDForTenant", ctx, tenantID, request.ID).Return(request, nil)
	mocks.customerRepo.On("FindByIDForTenant", ctx, tenantID, customer.ID).Return(customer, nil)

	// Case matters: the confirmation must match the name byte for byte.
	_, err := service.Execute(ctx, tenantID, newTestUserID(), RoleOwner, request.ID, ExecuteDeletionRequest{
		Confirmation: "acme corp",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrConfirmationMismatch)
	assert.False(t, customer.Anonymized)
	mocks.documents.AssertNotCalled(t, "DeleteByCustomer", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeletionService_Execute_IdempotentReplay(t *testing.T) {
	service, mocks := newDeletionServiceForTest()
	ctx := context.Background()
	tenantID := newTestTenantID()
	customerID := newTestUserID()
	request := client.NewDeletionRequest(tenantID, customerID, newTestUserID())
	require.NoError(t, request.MarkExecuted(client.DeletionSummary{
		CustomerAnonymized: true,
		DocumentsDeleted:   5,
		InvoicesPreserved:  9,
	}))

	mocks.deletions.On("FindByIDForTenant", ctx, tenantID, request.ID).Return(request, nil)

	// A replayed execute returns the stored summary without re-running the
	// cascade, regardless of the confirmation text.
	result, err := service.Execute(ctx, tenantID, newTestUserID(), RoleOwner, request.ID, ExecuteDeletionRequest{
		Confirmation: "anything",
	})
	require.NoError(t, err)
	assert.Equal(t, "executed", result.Status)
	require.NotNil(t, result.Summary)
	assert.Equal(t, int64(5), result.Summary.DocumentsDeleted)
	assert.Equal(t, int64(9), result.Summary.InvoicesPreserved)
	mocks.customerRepo.AssertNotCalled(t, "FindByIDForTenant", mock.Anything, mock.Anything, mock.Anything)
	mocks.documents.AssertNotCalled(t, "DeleteByCustomer", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeletionService_Execute_PermissionDenied(t *testing.T) {
	service, mocks := newDeletionServiceForTest()
	ctx := context.Background()

	_, err := service.Execute(ctx, newTestTenantID(), newTestUserID(), "member", newTestUserID(), ExecuteDeletionRequest{
		Confirmation: "Acme Corp",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrPermissionDenied)
	mocks.deletions.AssertNotCalled(t, "FindByIDForTenant", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeletionService_Execute_CascadeFailureLeavesRequestPending(t *testing.T) {
	service, mocks := newDeletionServiceForTest()
	ctx := context.Background()
	tenantID := newTestTenantID()
	customer := createTestCustomer(tenantID, client.LifecycleStatusOffboarded)
	request := client.NewDeletionRequest(tenantID, customer.ID, newTestUserID())

	mocks.deletions.On("FindByIDForTenant", ctx, tenantID, request.ID).Return(request, nil)
	mocks.customerRepo.On("FindByIDForTenant", ctx, tenantID, customer.ID).Return(customer, nil)
	mocks.documents.On("DeleteByCustomer", ctx, tenantID, customer.ID).Return(int64(0), shared.ErrStorageUnavailable)

	_, err := service.Execute(ctx, tenantID, newTestUserID(), RoleOwner, request.ID, ExecuteDeletionRequest{
		Confirmation: "Acme Corp",
	})
	require.Error(t, err)
	assert.False(t, request.IsExecuted())
	mocks.deletions.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestDeletionService_GetByID_Success(t *testing.T) {
	service, mocks := newDeletionServiceForTest()
	ctx := context.Background()
	tenantID := newTestTenantID()
	request := client.NewDeletionRequest(tenantID, newTestUserID(), newTestUserID())

	mocks.deletions.On("FindByIDForTenant", ctx, tenantID, request.ID).Return(request, nil)

	result, err := service.GetByID(ctx, tenantID, request.ID)
	require.NoError(t, err)
	assert.Equal(t, request.ID, result.ID)
	assert.Equal(t, "pending", result.Status)
}
