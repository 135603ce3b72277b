package compliance

import (
	"github.com/google/uuid"
	"github.com/worksuite/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeFieldDefinition = "FieldDefinition"

// Event type constants
const (
	EventTypeFieldDefinitionRegistered  = "FieldDefinitionRegistered"
	EventTypeFieldDefinitionDeactivated = "FieldDefinitionDeactivated"
)

// FieldDefinitionRegisteredEvent is published when a field definition is registered
type FieldDefinitionRegisteredEvent struct {
	shared.BaseDomainEvent
	FieldDefinitionID uuid.UUID `json:"field_definition_id"`
	Slug              string    `json:"slug"`
	FieldType         FieldType `json:"field_type"`
}

// NewFieldDefinitionRegisteredEvent creates a new FieldDefinitionRegisteredEvent
func NewFieldDefinitionRegisteredEvent(def *FieldDefinition) *FieldDefinitionRegisteredEvent {
	return &FieldDefinitionRegisteredEvent{
		BaseDomainEvent:   shared.NewBaseDomainEvent(EventTypeFieldDefinitionRegistered, AggregateTypeFieldDefinition, def.ID, def.TenantID),
		FieldDefinitionID: def.ID,
		Slug:              def.Slug,
		FieldType:         def.FieldType,
	}
}

// FieldDefinitionDeactivatedEvent is published when a field definition is soft-deleted
type FieldDefinitionDeactivatedEvent struct {
	shared.BaseDomainEvent
	FieldDefinitionID uuid.UUID `json:"field_definition_id"`
	Slug              string    `json:"slug"`
}

// NewFieldDefinitionDeactivatedEvent creates a new FieldDefinitionDeactivatedEvent
func NewFieldDefinitionDeactivatedEvent(def *FieldDefinition) *FieldDefinitionDeactivatedEvent {
	return &FieldDefinitionDeactivatedEvent{
		BaseDomainEvent:   shared.NewBaseDomainEvent(EventTypeFieldDefinitionDeactivated, AggregateTypeFieldDefinition, def.ID, def.TenantID),
		FieldDefinitionID: def.ID,
		Slug:              def.Slug,
	}
}
