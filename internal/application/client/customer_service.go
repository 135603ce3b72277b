package client

import (
	"context"

	"github.com/google/uuid"
	"github.com/worksuite/backend/internal/domain/client"
	"github.com/worksuite/backend/internal/domain/compliance"
	"github.com/worksuite/backend/internal/domain/shared"
)

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo client.CustomerRepository
	defRepo      compliance.FieldDefinitionRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo client.CustomerRepository, defRepo compliance.FieldDefinitionRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		defRepo:      defRepo,
	}
}

// Create creates a new customer in PROSPECT status
func (s *CustomerService) Create(ctx context.Context, tenantID uuid.UUID, req CreateCustomerRequest) (*CustomerResponse, error) {
	// Check if code already exists
	exists, err := s.customerRepo.ExistsByCode(ctx, tenantID, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Customer with this code already exists")
	}

	customer, err := client.NewCustomer(tenantID, req.Code, req.Name)
	if err != nil {
		return nil, err
	}

	if req.ContactName != "" || req.Phone != "" || req.Email != "" || req.Address != "" {
		if err := customer.SetContact(req.ContactName, req.Phone, req.Email, req.Address); err != nil {
			return nil, err
		}
	}
	customer.Notes = req.Notes

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, tenantID, customerID uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// List retrieves a list of customers with filtering and pagination
func (s *CustomerService) List(ctx context.Context, tenantID uuid.UUID, filter CustomerListFilter) (*shared.Paginated[CustomerResponse], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search
	if filter.Status != "" {
		domainFilter.Filters["lifecycle_status"] = filter.Status
	}

	page, err := s.customerRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}

	items := make([]CustomerResponse, len(page.Items))
	for i, customer := range page.Items {
		items[i] = ToCustomerResponse(customer)
	}

	return &shared.Paginated[CustomerResponse]{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}, nil
}

// Update updates a customer's contact details and notes
func (s *CustomerService) Update(ctx context.Context, tenantID, customerID uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}

	if customer.Anonymized {
		return nil, shared.NewDomainError("INVALID_STATE", "Customer has been erased")
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}

	contactName := customer.ContactName
	phone := customer.Phone
	email := customer.Email
	address := customer.Address
	if req.ContactName != nil {
		contactName = *req.ContactName
	}
	if req.Phone != nil {
		phone = *req.Phone
	}
	if req.Email != nil {
		email = *req.Email
	}
	if req.Address != nil {
		address = *req.Address
	}
	if err := customer.SetContact(contactName, phone, email, address); err != nil {
		return nil, err
	}

	if req.Notes != nil {
		customer.Notes = *req.Notes
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// SetFieldValue sets one custom field value on a customer. The slug must
// belong to an active field definition; dropdown values must be one of the
// declared options.
func (s *CustomerService) SetFieldValue(ctx context.Context, tenantID, customerID uuid.UUID, req SetFieldValueRequest) (*CustomerResponse, error) {
	def, err := s.defRepo.FindBySlug(ctx, tenantID, req.Slug)
	if err != nil {
		return nil, err
	}
	if !def.Active {
		return nil, shared.NewDomainError("INVALID_STATE", "Field definition is inactive")
	}
	if req.Value != "" && def.FieldType.RequiresOptions() && !containsOption(def.Options, req.Value) {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Value is not one of the field's options")
	}

	customer, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}
	if customer.Anonymized {
		return nil, shared.NewDomainError("INVALID_STATE", "Customer has been erased")
	}

	if err := customer.SetFieldValue(req.Slug, req.Value); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

func containsOption(options []string, value string) bool {
	for _, opt := range options {
		if opt == value {
			return true
		}
	}
	return false
}
