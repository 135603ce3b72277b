package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/worksuite/backend/internal/domain/client"
	"github.com/worksuite/backend/internal/domain/shared"
	"github.com/worksuite/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormDeletionRequestRepository implements DeletionRequestRepository using GORM
type GormDeletionRequestRepository struct {
	db *gorm.DB
}

// NewGormDeletionRequestRepository creates a new GormDeletionRequestRepository
func NewGormDeletionRequestRepository(db *gorm.DB) *GormDeletionRequestRepository {
	return &GormDeletionRequestRepository{db: db}
}

// FindByIDForTenant finds a deletion request by ID within a tenant
func (r *GormDeletionRequestRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*client.DeletionRequest, error) {
	var model models.DeletionRequestModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindPendingByCustomer finds the pending deletion request for a customer, if any
func (r *GormDeletionRequestRepository) FindPendingByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) (*client.DeletionRequest, error) {
	var model models.DeletionRequestModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND customer_id = ? AND status = ?",
			tenantID, customerID, string(client.DeletionRequestStatusPending)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a deletion request
func (r *GormDeletionRequestRepository) Save(ctx context.Context, request *client.DeletionRequest) error {
	return r.db.WithContext(ctx).Save(models.DeletionRequestModelFromDomain(request)).Error
}

// Ensure GormDeletionRequestRepository implements DeletionRequestRepository
var _ client.DeletionRequestRepository = (*GormDeletionRequestRepository)(nil)
