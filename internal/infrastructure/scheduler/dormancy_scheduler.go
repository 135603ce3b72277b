package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrSchedulerNotRunning is returned when a scan is requested on a stopped scheduler
var ErrSchedulerNotRunning = errors.New("scheduler is not running")

// TenantSource enumerates tenants the scan should visit
type TenantSource interface {
	TenantIDsWithActiveCustomers(ctx context.Context) ([]uuid.UUID, error)
}

// ScanResult summarizes one per-tenant scan run
type ScanResult struct {
	Candidates int
}

// DormancyScanner runs one dormancy scan for a tenant
type DormancyScanner interface {
	ScanTenant(ctx context.Context, tenantID uuid.UUID, thresholdDays int) (ScanResult, error)
}

// DormancySchedulerConfig holds dormancy scheduler configuration
type DormancySchedulerConfig struct {
	Enabled       bool
	Interval      time.Duration
	ThresholdDays int
	ScanTimeout   time.Duration
}

// DefaultDormancySchedulerConfig returns default dormancy scheduler configuration
func DefaultDormancySchedulerConfig() DormancySchedulerConfig {
	return DormancySchedulerConfig{
		Enabled:       true,
		Interval:      24 * time.Hour,
		ThresholdDays: 90,
		ScanTimeout:   10 * time.Minute,
	}
}

// DormancyScheduler periodically scans all tenants for dormancy
// candidates and logs what it finds for operator follow-up. One tick
// scans every tenant that has active customers; a failing tenant is
// logged and skipped so the rest of the tick proceeds.
type DormancyScheduler struct {
	config  DormancySchedulerConfig
	tenants TenantSource
	scanner DormancyScanner
	logger  *zap.Logger

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
}

// NewDormancyScheduler creates a new dormancy scheduler instance
func NewDormancyScheduler(config DormancySchedulerConfig, tenants TenantSource, scanner DormancyScanner, logger *zap.Logger) *DormancyScheduler {
	return &DormancyScheduler{
		config:  config,
		tenants: tenants,
		scanner: scanner,
		logger:  logger,
	}
}

// Start starts the scheduler loop
func (s *DormancyScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = true
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(ctx)

	s.logger.Info("Dormancy scheduler started",
		zap.Duration("interval", s.config.Interval),
		zap.Int("threshold_days", s.config.ThresholdDays),
	)

	return nil
}

// Stop gracefully stops the scheduler
func (s *DormancyScheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = false
	s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("Dormancy scheduler stopped gracefully")
		return nil
	case <-ctx.Done():
		s.logger.Warn("Dormancy scheduler stop timed out")
		return ctx.Err()
	}
}

// run ticks at the configured interval until the context is cancelled
func (s *DormancyScheduler) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.ScanAllTenants(ctx)
		}
	}
}

// ScanAllTenants runs one full scan pass across all tenants
func (s *DormancyScheduler) ScanAllTenants(ctx context.Context) {
	scanCtx, cancel := context.WithTimeout(ctx, s.config.ScanTimeout)
	defer cancel()

	tenantIDs, err := s.tenants.TenantIDsWithActiveCustomers(scanCtx)
	if err != nil {
		s.logger.Error("Dormancy scan failed to list tenants", zap.Error(err))
		return
	}

	var totalCandidates int
	for _, tenantID := range tenantIDs {
		result, err := s.scanner.ScanTenant(scanCtx, tenantID, s.config.ThresholdDays)
		if err != nil {
			s.logger.Error("Dormancy scan failed for tenant",
				zap.String("tenant_id", tenantID.String()),
				zap.Error(err),
			)
			continue
		}
		totalCandidates += result.Candidates

		if result.Candidates > 0 {
			s.logger.Info("Dormancy candidates found for tenant",
				zap.String("tenant_id", tenantID.String()),
				zap.Int("candidates", result.Candidates),
			)
		}
	}

	s.logger.Info("Dormancy scan pass finished",
		zap.Int("tenants", len(tenantIDs)),
		zap.Int("total_candidates", totalCandidates),
	)
}
