package client

import (
	"github.com/google/uuid"
	"github.com/worksuite/backend/internal/domain/shared"
)

// LifecycleTransition is one append-only history row. Rows are written in
// the same transaction as the status change and never updated or deleted.
type LifecycleTransition struct {
	shared.BaseEntity
	TenantID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerID uuid.UUID       `gorm:"type:uuid;not null;index"`
	FromStatus LifecycleStatus `gorm:"type:varchar(20);not null"`
	ToStatus   LifecycleStatus `gorm:"type:varchar(20);not null"`
	ChangedBy  uuid.UUID       `gorm:"type:uuid;not null"`
	Notes      string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (LifecycleTransition) TableName() string {
	return "lifecycle_transitions"
}

// NewLifecycleTransition records a status change performed by a user
func NewLifecycleTransition(customer *Customer, from, to LifecycleStatus, changedBy uuid.UUID, notes string) *LifecycleTransition {
	return &LifecycleTransition{
		BaseEntity: shared.NewBaseEntity(),
		TenantID:   customer.TenantID,
		CustomerID: customer.ID,
		FromStatus: from,
		ToStatus:   to,
		ChangedBy:  changedBy,
		Notes:      notes,
	}
}
