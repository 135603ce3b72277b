package client

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/worksuite/backend/internal/domain/client"
	"github.com/worksuite/backend/internal/domain/compliance"
	"github.com/worksuite/backend/internal/domain/shared"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*client.Customer, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*client.Customer, error) {
	args := m.Called(ctx, tenantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (*shared.Paginated[*client.Customer], error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[*client.Customer]), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error) {
	args := m.Called(ctx, tenantID, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *client.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) SaveWithLock(ctx context.Context, customer *client.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindActiveInactiveSince(ctx context.Context, tenantID uuid.UUID, cutoff time.Time) ([]*client.Customer, error) {
	args := m.Called(ctx, tenantID, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*client.Customer), args.Error(1)
}

func (m *MockCustomerRepository) TenantIDsWithActiveCustomers(ctx context.Context) ([]uuid.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

var _ client.CustomerRepository = (*MockCustomerRepository)(nil)

// MockLifecycleTransitionRepository is a mock implementation of LifecycleTransitionRepository
type MockLifecycleTransitionRepository struct {
	mock.Mock
}

func (m *MockLifecycleTransitionRepository) Append(ctx context.Context, transition *client.LifecycleTransition) error {
	args := m.Called(ctx, transition)
	return args.Error(0)
}

func (m *MockLifecycleTransitionRepository) FindByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) ([]*client.LifecycleTransition, error) {
	args := m.Called(ctx, tenantID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*client.LifecycleTransition), args.Error(1)
}

var _ client.LifecycleTransitionRepository = (*MockLifecycleTransitionRepository)(nil)

// MockDeletionRequestRepository is a mock implementation of DeletionRequestRepository
type MockDeletionRequestRepository struct {
	mock.Mock
}

func (m *MockDeletionRequestRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*client.DeletionRequest, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.DeletionRequest), args.Error(1)
}

func (m *MockDeletionRequestRepository) FindPendingByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) (*client.DeletionRequest, error) {
	args := m.Called(ctx, tenantID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.DeletionRequest), args.Error(1)
}

func (m *MockDeletionRequestRepository) Save(ctx context.Context, request *client.DeletionRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

var _ client.DeletionRequestRepository = (*MockDeletionRequestRepository)(nil)

// MockDocumentStore is a mock implementation of DocumentStore
type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) DeleteByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tenantID, customerID)
	return args.Get(0).(int64), args.Error(1)
}

var _ client.DocumentStore = (*MockDocumentStore)(nil)

// MockCommentStore is a mock implementation of CommentStore
type MockCommentStore struct {
	mock.Mock
}

func (m *MockCommentStore) RedactByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tenantID, customerID)
	return args.Get(0).(int64), args.Error(1)
}

var _ client.CommentStore = (*MockCommentStore)(nil)

// MockPortalContactStore is a mock implementation of PortalContactStore
type MockPortalContactStore struct {
	mock.Mock
}

func (m *MockPortalContactStore) AnonymizeByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tenantID, customerID)
	return args.Get(0).(int64), args.Error(1)
}

var _ client.PortalContactStore = (*MockPortalContactStore)(nil)

// MockInvoiceStore is a mock implementation of InvoiceStore
type MockInvoiceStore struct {
	mock.Mock
}

func (m *MockInvoiceStore) CountByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tenantID, customerID)
	return args.Get(0).(int64), args.Error(1)
}

var _ client.InvoiceStore = (*MockInvoiceStore)(nil)

// =============================================================================
// Mock compliance readers (for wiring the activation gate in tests)
// =============================================================================

// MockFieldDefinitionRepository is a mock implementation of the compliance
// field definition repository
type MockFieldDefinitionRepository struct {
	mock.Mock
}

func (m *MockFieldDefinitionRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*compliance.FieldDefinition, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*compliance.FieldDefinition), args.Error(1)
}

func (m *MockFieldDefinitionRepository) FindBySlug(ctx context.Context, tenantID uuid.UUID, slug string) (*compliance.FieldDefinition, error) {
	args := m.Called(ctx, tenantID, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*compliance.FieldDefinition), args.Error(1)
}

func (m *MockFieldDefinitionRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]compliance.FieldDefinition, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]compliance.FieldDefinition), args.Error(1)
}

func (m *MockFieldDefinitionRepository) FindActiveForTenant(ctx context.Context, tenantID uuid.UUID) ([]compliance.FieldDefinition, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]compliance.FieldDefinition), args.Error(1)
}

func (m *MockFieldDefinitionRepository) ExistsBySlug(ctx context.Context, tenantID uuid.UUID, slug string) (bool, error) {
	args := m.Called(ctx, tenantID, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockFieldDefinitionRepository) Save(ctx context.Context, def *compliance.FieldDefinition) error {
	args := m.Called(ctx, def)
	return args.Error(0)
}

var _ compliance.FieldDefinitionRepository = (*MockFieldDefinitionRepository)(nil)

// MockFieldGroupRepository is a mock implementation of the compliance field
// group repository
type MockFieldGroupRepository struct {
	mock.Mock
}

func (m *MockFieldGroupRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*compliance.FieldGroup, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*compliance.FieldGroup), args.Error(1)
}

func (m *MockFieldGroupRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]compliance.FieldGroup, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]compliance.FieldGroup), args.Error(1)
}

func (m *MockFieldGroupRepository) Save(ctx context.Context, group *compliance.FieldGroup) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

var _ compliance.FieldGroupRepository = (*MockFieldGroupRepository)(nil)

// MockFieldValueReader is a mock implementation of FieldValueReader
type MockFieldValueReader struct {
	mock.Mock
}

func (m *MockFieldValueReader) FieldValues(ctx context.Context, tenantID uuid.UUID, entityType compliance.EntityType, entityID uuid.UUID) (compliance.FieldValues, error) {
	args := m.Called(ctx, tenantID, entityType, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(compliance.FieldValues), args.Error(1)
}

var _ compliance.FieldValueReader = (*MockFieldValueReader)(nil)

// MockChecklistReader is a mock implementation of ChecklistReader
type MockChecklistReader struct {
	mock.Mock
}

func (m *MockChecklistReader) Items(ctx context.Context, tenantID uuid.UUID, entityType compliance.EntityType, entityID uuid.UUID) ([]compliance.ChecklistItem, error) {
	args := m.Called(ctx, tenantID, entityType, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]compliance.ChecklistItem), args.Error(1)
}

var _ compliance.ChecklistReader = (*MockChecklistReader)(nil)

// =============================================================================
// Test Helper Functions
// =============================================================================

func newTestTenantID() uuid.UUID {
	return uuid.MustParse("11111111-1111-1111-1111-111111111111")
}

func newTestUserID() uuid.UUID {
	return uuid.MustParse("33333333-3333-3333-3333-333333333333")
}

func createTestCustomer(tenantID uuid.UUID, status client.LifecycleStatus) *client.Customer {
	customer, _ := client.NewCustomer(tenantID, "ACME-001", "Acme Corp")
	customer.LifecycleStatus = status
	customer.ClearDomainEvents()
	return customer
}

// testMocks bundles the mocks a transaction-using test needs
type testMocks struct {
	customerRepo  *MockCustomerRepository
	transitions   *MockLifecycleTransitionRepository
	deletions     *MockDeletionRequestRepository
	documents     *MockDocumentStore
	comments      *MockCommentStore
	portalContact *MockPortalContactStore
	invoices      *MockInvoiceStore
}

func newTestMocks() *testMocks {
	return &testMocks{
		customerRepo:  new(MockCustomerRepository),
		transitions:   new(MockLifecycleTransitionRepository),
		deletions:     new(MockDeletionRequestRepository),
		documents:     new(MockDocumentStore),
		comments:      new(MockCommentStore),
		portalContact: new(MockPortalContactStore),
		invoices:      new(MockInvoiceStore),
	}
}

func (m *testMocks) scope() *NoOpTransactionScope {
	return NewNoOpTransactionScope(
		m.customerRepo,
		m.transitions,
		m.deletions,
		m.documents,
		m.comments,
		m.portalContact,
		m.invoices,
	)
}
