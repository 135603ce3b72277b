package client

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/worksuite/backend/internal/domain/client"
	"go.uber.org/zap"
)

// DefaultDormancyThresholdDays is used when a scan does not specify a threshold
const DefaultDormancyThresholdDays = 90

// DormancyService finds ACTIVE customers that look abandoned
type DormancyService struct {
	customerRepo client.CustomerRepository
	logger       *zap.Logger
}

// NewDormancyService creates a new DormancyService
func NewDormancyService(customerRepo client.CustomerRepository, logger *zap.Logger) *DormancyService {
	return &DormancyService{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Scan reports ACTIVE customers with no recorded activity inside the
// threshold window. It never changes customer state; moving a candidate
// to DORMANT is an ordinary lifecycle transition with its own
// authorization and edge checks. Because the scan only reads, it is
// safe to run concurrently with transitions and field edits.
func (s *DormancyService) Scan(ctx context.Context, tenantID uuid.UUID, req DormancyScanRequest) (*DormancyScanResponse, error) {
	thresholdDays := req.ThresholdDays
	if thresholdDays <= 0 {
		thresholdDays = DefaultDormancyThresholdDays
	}
	now := time.Now()
	cutoff := now.AddDate(0, 0, -thresholdDays)

	customers, err := s.customerRepo.FindActiveInactiveSince(ctx, tenantID, cutoff)
	if err != nil {
		return nil, err
	}

	resp := &DormancyScanResponse{
		ThresholdDays: thresholdDays,
		Candidates:    make([]DormancyCandidateResponse, 0, len(customers)),
	}
	for _, customer := range customers {
		resp.Candidates = append(resp.Candidates, DormancyCandidateResponse{
			CustomerID:        customer.ID,
			Code:              customer.Code,
			Name:              customer.Name,
			LastActivityAt:    customer.LastActivityAt,
			DaysSinceActivity: int(now.Sub(customer.LastActivityAt).Hours() / 24),
		})
	}

	s.logger.Info("dormancy scan completed",
		zap.String("tenant_id", tenantID.String()),
		zap.Int("threshold_days", thresholdDays),
		zap.Int("candidates", len(resp.Candidates)))

	return resp, nil
}
