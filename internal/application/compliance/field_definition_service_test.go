package compliance

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/worksuite/backend/internal/domain/compliance"
	"github.com/worksuite/backend/internal/domain/shared"
)

func TestFieldDefinitionService_Register_Success(t *testing.T) {
	mockDefRepo := new(MockFieldDefinitionRepository)
	mockGroupRepo := new(MockFieldGroupRepository)
	service := NewFieldDefinitionService(mockDefRepo, mockGroupRepo)

	ctx := context.Background()
	tenantID := newTestTenantID()
	req := RegisterFieldDefinitionRequest{
		Slug:      "vat_number",
		Name:      "VAT Number",
		FieldType: "text",
		Required:  true,
	}

	mockDefRepo.On("ExistsBySlug", ctx, tenantID, "vat_number").Return(false, nil)
	mockDefRepo.On("Save", ctx, mock.AnythingOfType("*compliance.FieldDefinition")).Return(nil)

	result, err := service.Register(ctx, tenantID, req)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "vat_number", result.Slug)
	assert.Equal(t, "text", result.FieldType)
	assert.True(t, result.Required)
	assert.True(t, result.Active)
	mockDefRepo.AssertExpectations(t)
}

func TestFieldDefinitionService_Register_DuplicateSlug(t *testing.T) {
	mockDefRepo := new(MockFieldDefinitionRepository)
	mockGroupRepo := new(MockFieldGroupRepository)
	service := NewFieldDefinitionService(mockDefRepo, mockGroupRepo)

	ctx := context.Background()
	tenantID := newTestTenantID()

	mockDefRepo.On("ExistsBySlug", ctx, tenantID, "vat_number").Return(true, nil)

	_, err := service.Register(ctx, tenantID, RegisterFieldDefinitionRequest{
		Slug:      "vat_number",
		Name:      "VAT Number",
		FieldType: "text",
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	mockDefRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestFieldDefinitionService_Register_DropdownRequiresOptions(t *testing.T) {
	mockDefRepo := new(MockFieldDefinitionRepository)
	mockGroupRepo := new(MockFieldGroupRepository)
	service := NewFieldDefinitionService(mockDefRepo, mockGroupRepo)

	ctx := context.Background()
	tenantID := newTestTenantID()

	mockDefRepo.On("ExistsBySlug", ctx, tenantID, "customer_type").Return(false, nil)

	_, err := service.Register(ctx, tenantID, RegisterFieldDefinitionRequest{
		Slug:      "customer_type",
		Name:      "Customer Type",
		FieldType: "dropdown",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one option")
}

func TestFieldDefinitionService_Register_DropdownWithOptions(t *testing.T) {
	mockDefRepo := new(MockFieldDefinitionRepository)
	mockGroupRepo := new(MockFieldGroupRepository)
	service := NewFieldDefinitionService(mockDefRepo, mockGroupRepo)

	ctx := context.Background()
	tenantID := newTestTenantID()

	mockDefRepo.On("ExistsBySlug", ctx, tenantID, "customer_type").Return(false, nil)
	mockDefRepo.On("Save", ctx, mock.AnythingOfType("*compliance.FieldDefinition")).Return(nil)

	result, err := service.Register(ctx, tenantID, RegisterFieldDefinitionRequest{
		Slug:      "customer_type",
		Name:      "Customer Type",
		FieldType: "dropdown",
		Options:   []string{"smb", "enterprise"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"smb", "enterprise"}, result.Options)
}

func TestFieldDefinitionService_Register_UnknownContext(t *testing.T) {
	mockDefRepo := new(MockFieldDefinitionRepository)
	mockGroupRepo := new(MockFieldGroupRepository)
	service := NewFieldDefinitionService(mockDefRepo, mockGroupRepo)

	ctx := context.Background()
	tenantID := newTestTenantID()

	mockDefRepo.On("ExistsBySlug", ctx, tenantID, "vat_number").Return(false, nil)

	_, err := service.Register(ctx, tenantID, RegisterFieldDefinitionRequest{
		Slug:                "vat_number",
		Name:                "VAT Number",
		FieldType:           "text",
		RequiredForContexts: []string{"order_fulfilment"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown prerequisite context")
}

func TestFieldDefinitionService_Register_ConditionCycle(t *testing.T) {
	mockDefRepo := new(MockFieldDefinitionRepository)
	mockGroupRepo := new(MockFieldGroupRepository)
	service := NewFieldDefinitionService(mockDefRepo, mockGroupRepo)

	ctx := context.Background()
	tenantID := newTestTenantID()

	// Existing field "a" depends on the field being registered.
	existing, err := compliance.NewFieldDefinition(tenantID, "a", "Field A", compliance.FieldTypeText)
	require.NoError(t, err)
	require.NoError(t, existing.SetVisibilityCondition(&compliance.VisibilityCondition{
		DependsOnSlug: "b",
		Operator:      compliance.ConditionOperatorEquals,
		Values:        []string{"yes"},
	}))

	mockDefRepo.On("ExistsBySlug", ctx, tenantID, "b").Return(false, nil)
	mockDefRepo.On("FindAllForTenant", ctx, tenantID).Return([]compliance.FieldDefinition{*existing}, nil)

	_, err = service.Register(ctx, tenantID, RegisterFieldDefinitionRequest{
		Slug:      "b",
		Name:      "Field B",
		FieldType: "text",
		VisibilityCondition: &VisibilityConditionDTO{
			DependsOnSlug: "a",
			Operator:      "equals",
			Values:        []string{"yes"},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dependency cycle")
	mockDefRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestFieldDefinitionService_Register_UnknownGroup(t *testing.T) {
	mockDefRepo := new(MockFieldDefinitionRepository)
	mockGroupRepo := new(MockFieldGroupRepository)
	service := NewFieldDefinitionService(mockDefRepo, mockGroupRepo)

	ctx := context.Background()
	tenantID := newTestTenantID()
	groupID := uuid.New()

	mockDefRepo.On("ExistsBySlug", ctx, tenantID, "vat_number").Return(false, nil)
	mockGroupRepo.On("FindByIDForTenant", ctx, tenantID, groupID).Return(nil, shared.ErrNotFound)

	_, err := service.Register(ctx, tenantID, RegisterFieldDefinitionRequest{
		Slug:      "vat_number",
		Name:      "VAT Number",
		FieldType: "text",
		GroupID:   &groupID,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestFieldDefinitionService_Update_Rename(t *testing.T) {
	mockDefRepo := new(MockFieldDefinitionRepository)
	mockGroupRepo := new(MockFieldGroupRepository)
	service := NewFieldDefinitionService(mockDefRepo, mockGroupRepo)

	ctx := context.Background()
	tenantID := newTestTenantID()
	def, err := compliance.NewFieldDefinition(tenantID, "vat_number", "VAT Number", compliance.FieldTypeText)
	require.NoError(t, err)

	mockDefRepo.On("FindByIDForTenant", ctx, tenantID, def.ID).Return(def, nil)
	mockDefRepo.On("Save", ctx, def).Return(nil)

	newName := "EU VAT Number"
	result, err := service.Update(ctx, tenantID, def.ID, UpdateFieldDefinitionRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "EU VAT Number", result.Name)
	assert.Equal(t, "vat_number", result.Slug)
}

func TestFieldDefinitionService_Update_ClearCondition(t *testing.T) {
	mockDefRepo := new(MockFieldDefinitionRepository)
	mockGroupRepo := new(MockFieldGroupRepository)
	service := NewFieldDefinitionService(mockDefRepo, mockGroupRepo)

	ctx := context.Background()
	tenantID := newTestTenantID()
	def, err := compliance.NewFieldDefinition(tenantID, "vat_number", "VAT Number", compliance.FieldTypeText)
	require.NoError(t, err)
	require.NoError(t, def.SetVisibilityCondition(&compliance.VisibilityCondition{
		DependsOnSlug: "customer_type",
		Operator:      compliance.ConditionOperatorEquals,
		Values:        []string{"enterprise"},
	}))

	mockDefRepo.On("FindByIDForTenant", ctx, tenantID, def.ID).Return(def, nil)
	mockDefRepo.On("Save", ctx, def).Return(nil)

	result, err := service.Update(ctx, tenantID, def.ID, UpdateFieldDefinitionRequest{ClearCondition: true})
	require.NoError(t, err)
	assert.Nil(t, result.VisibilityCondition)
}

func TestFieldDefinitionService_Deactivate_Success(t *testing.T) {
	mockDefRepo := new(MockFieldDefinitionRepository)
	mockGroupRepo := new(MockFieldGroupRepository)
	service := NewFieldDefinitionService(mockDefRepo, mockGroupRepo)

	ctx := context.Background()
	tenantID := newTestTenantID()
	def, err := compliance.NewFieldDefinition(tenantID, "vat_number", "VAT Number", compliance.FieldTypeText)
	require.NoError(t, err)

	mockDefRepo.On("FindByIDForTenant", ctx, tenantID, def.ID).Return(def, nil)
	mockDefRepo.On("Save", ctx, def).Return(nil)

	require.NoError(t, service.Deactivate(ctx, tenantID, def.ID))
	assert.False(t, def.Active)
}

func TestFieldDefinitionService_Deactivate_AlreadyInactive(t *testing.T) {
	mockDefRepo := new(MockFieldDefinitionRepository)
	mockGroupRepo := new(MockFieldGroupRepository)
	service := NewFieldDefinitionService(mockDefRepo, mockGroupRepo)

	ctx := context.Background()
	tenantID := newTestTenantID()
	def, err := compliance.NewFieldDefinition(tenantID, "vat_number", "VAT Number", compliance.FieldTypeText)
	require.NoError(t, err)
	require.NoError(t, def.Deactivate())

	mockDefRepo.On("FindByIDForTenant", ctx, tenantID, def.ID).Return(def, nil)

	err = service.Deactivate(ctx, tenantID, def.ID)
	require.Error(t, err)
	mockDefRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestFieldDefinitionService_ListApplicable_Ordering(t *testing.T) {
	mockDefRepo := new(MockFieldDefinitionRepository)
	mockGroupRepo := new(MockFieldGroupRepository)
	service := NewFieldDefinitionService(mockDefRepo, mockGroupRepo)

	ctx := context.Background()
	tenantID := newTestTenantID()

	taxGroup, err := compliance.NewFieldGroup(tenantID, "tax", "Tax", 0)
	require.NoError(t, err)
	legalGroup, err := compliance.NewFieldGroup(tenantID, "legal", "Legal", 1)
	require.NoError(t, err)

	makeDef := func(slug string, groupID *uuid.UUID, position int) compliance.FieldDefinition {
		def, err := compliance.NewFieldDefinition(tenantID, slug, "Field "+slug, compliance.FieldTypeText)
		require.NoError(t, err)
		def.SetRequired(true)
		if groupID != nil {
			def.AssignGroup(*groupID, position)
		}
		return *def
	}

	// Declared out of order; the resolver must sort by group then field position.
	defs := []compliance.FieldDefinition{
		makeDef("ungrouped", nil, 0),
		makeDef("registration_number", &legalGroup.ID, 0),
		makeDef("vat_number", &taxGroup.ID, 1),
		makeDef("tax_residency", &taxGroup.ID, 0),
	}

	mockDefRepo.On("FindActiveForTenant", ctx, tenantID).Return(defs, nil)
	mockGroupRepo.On("FindAllForTenant", ctx, tenantID).Return([]compliance.FieldGroup{*taxGroup, *legalGroup}, nil)

	result, err := service.ListApplicable(ctx, tenantID, "lifecycle_activation")
	require.NoError(t, err)
	require.Len(t, result, 4)
	assert.Equal(t, "tax_residency", result[0].Slug)
	assert.Equal(t, "vat_number", result[1].Slug)
	assert.Equal(t, "registration_number", result[2].Slug)
	assert.Equal(t, "ungrouped", result[3].Slug)
	assert.Equal(t, "Tax", result[0].GroupName)
	assert.Equal(t, "Legal", result[2].GroupName)
}

func TestFieldDefinitionService_ListApplicable_UnknownContext(t *testing.T) {
	mockDefRepo := new(MockFieldDefinitionRepository)
	mockGroupRepo := new(MockFieldGroupRepository)
	service := NewFieldDefinitionService(mockDefRepo, mockGroupRepo)

	_, err := service.ListApplicable(context.Background(), newTestTenantID(), "order_fulfilment")
	require.Error(t, err)
	mockDefRepo.AssertNotCalled(t, "FindActiveForTenant", mock.Anything, mock.Anything)
}

func TestFieldDefinitionService_CreateGroup_Success(t *testing.T) {
	mockDefRepo := new(MockFieldDefinitionRepository)
	mockGroupRepo := new(MockFieldGroupRepository)
	service := NewFieldDefinitionService(mockDefRepo, mockGroupRepo)

	ctx := context.Background()
	tenantID := newTestTenantID()

	mockGroupRepo.On("Save", ctx, mock.AnythingOfType("*compliance.FieldGroup")).Return(nil)

	result, err := service.CreateGroup(ctx, tenantID, CreateFieldGroupRequest{
		Slug:     "tax",
		Name:     "Tax",
		Position: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "tax", result.Slug)
	assert.Equal(t, 2, result.Position)
}

func TestFieldDefinitionService_CreateGroup_InvalidSlug(t *testing.T) {
	mockDefRepo := new(MockFieldDefinitionRepository)
	mockGroupRepo := new(MockFieldGroupRepository)
	service := NewFieldDefinitionService(mockDefRepo, mockGroupRepo)

	_, err := service.CreateGroup(context.Background(), newTestTenantID(), CreateFieldGroupRequest{
		Slug: "Tax Group",
		Name: "Tax",
	})
	require.Error(t, err)
	mockGroupRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
