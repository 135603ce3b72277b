package compliance

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/worksuite/backend/internal/domain/compliance"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockFieldDefinitionRepository is a mock implementation of FieldDefinitionRepository
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

// MockFieldGroupRepository is a mock implementation of FieldGroupRepository
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

func newTestEntityID() uuid.UUID {
	return uuid.MustParse("22222222-2222-2222-2222-222222222222")
}
