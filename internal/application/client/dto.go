package client

import (
	"time"

	"github.com/google/uuid"
	appcompliance "github.com/worksuite/backend/internal/application/compliance"
	"github.com/worksuite/backend/internal/domain/client"
)

// =============================================================================
// Customer DTOs
// =============================================================================

// CreateCustomerRequest represents a request to create a new customer
type CreateCustomerRequest struct {
	Code        string `json:"code" binding:"required,min=1,max=50"`
	Name        string `json:"name" binding:"required,min=1,max=200"`
	ContactName string `json:"contact_name" binding:"max=100"`
	Phone       string `json:"phone" binding:"max=50"`
	Email       string `json:"email" binding:"omitempty,email,max=200"`
	Address     string `json:"address" binding:"max=500"`
	Notes       string `json:"notes"`
}

// UpdateCustomerRequest represents a request to update a customer
type UpdateCustomerRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	ContactName *string `json:"contact_name" binding:"omitempty,max=100"`
	Phone       *string `json:"phone" binding:"omitempty,max=50"`
	Email       *string `json:"email" binding:"omitempty,email,max=200"`
	Address     *string `json:"address" binding:"omitempty,max=500"`
	Notes       *string `json:"notes"`
}

// SetFieldValueRequest represents a request to set one custom field value
type SetFieldValueRequest struct {
	Slug  string `json:"slug" binding:"required,min=1,max=100"`
	Value string `json:"value"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID                       uuid.UUID         `json:"id"`
	TenantID                 uuid.UUID         `json:"tenant_id"`
	Code                     string            `json:"code"`
	Name                     string            `json:"name"`
	ContactName              string            `json:"contact_name"`
	Email                    string            `json:"email"`
	Phone                    string            `json:"phone"`
	Address                  string            `json:"address"`
	LifecycleStatus          string            `json:"lifecycle_status"`
	LifecycleStatusChangedAt time.Time         `json:"lifecycle_status_changed_at"`
	LastActivityAt           time.Time         `json:"last_activity_at"`
	AllowedTargets           []string          `json:"allowed_targets"`
	CustomFields             map[string]string `json:"custom_fields"`
	Anonymized               bool              `json:"anonymized"`
	Notes                    string            `json:"notes"`
	CreatedAt                time.Time         `json:"created_at"`
	UpdatedAt                time.Time         `json:"updated_at"`
	Version                  int               `json:"version"`
}

// CustomerListFilter represents filter options for customer list
type CustomerListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=prospect onboarding active dormant offboarding offboarded"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// =============================================================================
// Lifecycle DTOs
// =============================================================================

// TransitionRequest represents a request to move a customer along the lifecycle
type TransitionRequest struct {
	TargetStatus string `json:"target_status" binding:"required,oneof=prospect onboarding active dormant offboarding offboarded"`
	Notes        string `json:"notes" binding:"max=1000"`
}

// TransitionResult is the outcome of a transition attempt. When the
// activation gate blocks the transition, Blocked is true and Check carries
// the violations; the customer is untouched.
type TransitionResult struct {
	Blocked  bool                                     `json:"blocked"`
	Check    *appcompliance.PrerequisiteCheckResponse `json:"check,omitempty"`
	Customer *CustomerResponse                        `json:"customer,omitempty"`
}

// TransitionHistoryResponse represents one transition history row
type TransitionHistoryResponse struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	ChangedBy  uuid.UUID `json:"changed_by"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// =============================================================================
// Dormancy DTOs
// =============================================================================

// DormancyScanRequest represents a request to run a dormancy scan
type DormancyScanRequest struct {
	ThresholdDays int `json:"threshold_days" binding:"omitempty,min=1,max=3650"`
}

// DormancyCandidateResponse is one ACTIVE customer whose last activity
// predates the scan threshold
type DormancyCandidateResponse struct {
	CustomerID        uuid.UUID `json:"customer_id"`
	Code              string    `json:"code"`
	Name              string    `json:"name"`
	LastActivityAt    time.Time `json:"last_activity_at"`
	DaysSinceActivity int       `json:"days_since_activity"`
}

// DormancyScanResponse lists the candidates found by one scan run
type DormancyScanResponse struct {
	ThresholdDays int                         `json:"threshold_days"`
	Candidates    []DormancyCandidateResponse `json:"candidates"`
}

// =============================================================================
// Deletion DTOs
// =============================================================================

// RequestDeletionRequest represents a request to open a deletion request
type RequestDeletionRequest struct {
	CustomerID uuid.UUID `json:"customer_id" binding:"required"`
}

// ExecuteDeletionRequest carries the confirmation for executing a deletion.
// The confirmation must match the customer's display name exactly.
type ExecuteDeletionRequest struct {
	Confirmation string `json:"confirmation" binding:"required"`
}

// DeletionRequestResponse represents a deletion request in API responses
type DeletionRequestResponse struct {
	ID          uuid.UUID               `json:"id"`
	CustomerID  uuid.UUID               `json:"customer_id"`
	Status      string                  `json:"status"`
	RequestedBy uuid.UUID               `json:"requested_by"`
	ExecutedAt  *time.Time              `json:"executed_at,omitempty"`
	Summary     *client.DeletionSummary `json:"summary,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
}

// =============================================================================
// Converters
// =============================================================================

// ToCustomerResponse converts a domain customer to a response DTO
func ToCustomerResponse(customer *client.Customer) CustomerResponse {
	values, err := customer.FieldValues()
	if err != nil {
		values = map[string]string{}
	}

	targets := client.AllowedTargets(customer.LifecycleStatus)
	allowed := make([]string, len(targets))
	for i, t := range targets {
		allowed[i] = string(t)
	}

	return CustomerResponse{
		ID:                       customer.ID,
		TenantID:                 customer.TenantID,
		Code:                     customer.Code,
		Name:                     customer.Name,
		ContactName:              customer.ContactName,
		Email:                    customer.Email,
		Phone:                    customer.Phone,
		Address:                  customer.Address,
		LifecycleStatus:          string(customer.LifecycleStatus),
		LifecycleStatusChangedAt: customer.LifecycleStatusChangedAt,
		LastActivityAt:           customer.LastActivityAt,
		AllowedTargets:           allowed,
		CustomFields:             values,
		Anonymized:               customer.Anonymized,
		Notes:                    customer.Notes,
		CreatedAt:                customer.CreatedAt,
		UpdatedAt:                customer.UpdatedAt,
		Version:                  customer.Version,
	}
}

// ToTransitionHistoryResponses converts transition history rows
func ToTransitionHistoryResponses(transitions []*client.LifecycleTransition) []TransitionHistoryResponse {
	responses := make([]TransitionHistoryResponse, len(transitions))
	for i, t := range transitions {
		responses[i] = TransitionHistoryResponse{
			ID:         t.ID,
			CustomerID: t.CustomerID,
			FromStatus: string(t.FromStatus),
			ToStatus:   string(t.ToStatus),
			ChangedBy:  t.ChangedBy,
			Notes:      t.Notes,
			CreatedAt:  t.CreatedAt,
		}
	}
	return responses
}

// ToDeletionRequestResponse converts a domain deletion request to a response DTO
func ToDeletionRequestResponse(req *client.DeletionRequest) DeletionRequestResponse {
	resp := DeletionRequestResponse{
		ID:          req.ID,
		CustomerID:  req.CustomerID,
		Status:      string(req.Status),
		RequestedBy: req.RequestedBy,
		ExecutedAt:  req.ExecutedAt,
		CreatedAt:   req.CreatedAt,
	}
	if req.IsExecuted() {
		summary := req.Summary()
		resp.Summary = &summary
	}
	return resp
}
