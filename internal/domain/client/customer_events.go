package client

import (
	"github.com/google/uuid"
	"github.com/worksuite/backend/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeCustomer        = "Customer"
	AggregateTypeDeletionRequest = "DeletionRequest"
)

// Event type constants
const (
	EventTypeCustomerCreated          = "CustomerCreated"
	EventTypeCustomerLifecycleChanged = "CustomerLifecycleChanged"
	EventTypeCustomerErased           = "CustomerErased"
	EventTypeDeletionExecuted         = "DeletionExecuted"
)

// CustomerCreatedEvent is published when a new customer is created
type CustomerCreatedEvent struct {
	shared.BaseDomainEvent
	CustomerID uuid.UUID `json:"customer_id"`
	Code       string    `json:"code"`
	Name       string    `json:"name"`
}

// NewCustomerCreatedEvent creates a new CustomerCreatedEvent
func NewCustomerCreatedEvent(customer *Customer) *CustomerCreatedEvent {
	return &CustomerCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerCreated, AggregateTypeCustomer, customer.ID, customer.TenantID),
		CustomerID:      customer.ID,
		Code:            customer.Code,
		Name:            customer.Name,
	}
}

// CustomerLifecycleChangedEvent is published when a customer's lifecycle status changes.
// Other subsystems observe lifecycle changes through this event and the
// transition history; the state machine itself triggers no cascading effects.
type CustomerLifecycleChangedEvent struct {
	shared.BaseDomainEvent
	CustomerID uuid.UUID       `json:"customer_id"`
	Code       string          `json:"code"`
	FromStatus LifecycleStatus `json:"from_status"`
	ToStatus   LifecycleStatus `json:"to_status"`
}

// NewCustomerLifecycleChangedEvent creates a new CustomerLifecycleChangedEvent
func NewCustomerLifecycleChangedEvent(customer *Customer, from, to LifecycleStatus) *CustomerLifecycleChangedEvent {
	return &CustomerLifecycleChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerLifecycleChanged, AggregateTypeCustomer, customer.ID, customer.TenantID),
		CustomerID:      customer.ID,
		Code:            customer.Code,
		FromStatus:      from,
		ToStatus:        to,
	}
}

// CustomerErasedEvent is published when a customer's PII is anonymized
type CustomerErasedEvent struct {
	shared.BaseDomainEvent
	CustomerID uuid.UUID `json:"customer_id"`
	Code       string    `json:"code"`
}

// NewCustomerErasedEvent creates a new CustomerErasedEvent
func NewCustomerErasedEvent(customer *Customer) *CustomerErasedEvent {
	return &CustomerErasedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerErased, AggregateTypeCustomer, customer.ID, customer.TenantID),
		CustomerID:      customer.ID,
		Code:            customer.Code,
	}
}

// DeletionExecutedEvent is published when a deletion request completes
type DeletionExecutedEvent struct {
	shared.BaseDomainEvent
	DeletionRequestID uuid.UUID       `json:"deletion_request_id"`
	CustomerID        uuid.UUID       `json:"customer_id"`
	Summary           DeletionSummary `json:"summary"`
}

// NewDeletionExecutedEvent creates a new DeletionExecutedEvent
func NewDeletionExecutedEvent(req *DeletionRequest) *DeletionExecutedEvent {
	return &DeletionExecutedEvent{
		BaseDomainEvent:   shared.NewBaseDomainEvent(EventTypeDeletionExecuted, AggregateTypeDeletionRequest, req.ID, req.TenantID),
		DeletionRequestID: req.ID,
		CustomerID:        req.CustomerID,
		Summary:           req.Summary(),
	}
}
