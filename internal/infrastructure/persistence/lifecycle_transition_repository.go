package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/worksuite/backend/internal/domain/client"
	"github.com/worksuite/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormLifecycleTransitionRepository implements LifecycleTransitionRepository
// using GORM. The table is append-only: rows are created and read, never
// updated or deleted.
type GormLifecycleTransitionRepository struct {
	db *gorm.DB
}

// NewGormLifecycleTransitionRepository creates a new GormLifecycleTransitionRepository
func NewGormLifecycleTransitionRepository(db *gorm.DB) *GormLifecycleTransitionRepository {
	return &GormLifecycleTransitionRepository{db: db}
}

// Append inserts a transition history row
func (r *GormLifecycleTransitionRepository) Append(ctx context.Context, transition *client.LifecycleTransition) error {
	return r.db.WithContext(ctx).Create(models.LifecycleTransitionModelFromDomain(transition)).Error
}

// FindByCustomer returns a customer's transition history, newest first
func (r *GormLifecycleTransitionRepository) FindByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) ([]*client.LifecycleTransition, error) {
	var transitionModels []models.LifecycleTransitionModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND customer_id = ?", tenantID, customerID).
		Order("created_at DESC").
		Find(&transitionModels).Error; err != nil {
		return nil, err
	}

	transitions := make([]*client.LifecycleTransition, len(transitionModels))
	for i := range transitionModels {
		transitions[i] = transitionModels[i].ToDomain()
	}
	return transitions, nil
}

// Ensure GormLifecycleTransitionRepository implements LifecycleTransitionRepository
var _ client.LifecycleTransitionRepository = (*GormLifecycleTransitionRepository)(nil)
