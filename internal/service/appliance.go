package service

import (
	"context"
	"fmt"

	"github.com/msomdec/atelier/internal/domain"
	"github.com/msomdec/atelier/internal/metrics"
)

// DefaultCleaningThreshold is the number of wash cycles after which the machine
// should run a cleaning cycle.
const DefaultCleaningThreshold = 30

// ApplianceService reports and resets washing machine upkeep per user. Cycles are
// counted when a wash session completes.
type ApplianceService struct {
	appliances domain.ApplianceRepository
	threshold  int
	metrics    *metrics.Metrics
}

// NewApplianceService creates a new ApplianceService. A threshold below 1 falls back
// to DefaultCleaningThreshold.
func NewApplianceService(appliances domain.ApplianceRepository, threshold int, m *metrics.Metrics) *ApplianceService {
	if threshold < 1 {
		threshold = DefaultCleaningThreshold
	}
	return &ApplianceService{appliances: appliances, threshold: threshold, metrics: m}
}

// Status returns the user's machine upkeep state.
func (s *ApplianceService) Status(ctx context.Context, userID int64) (domain.ApplianceStatus, error) {
	n, err := s.appliances.CycleCount(ctx, userID)
	if err != nil {
		return domain.ApplianceStatus{}, fmt.Errorf("get cycle count: %w", err)
	}
	return domain.ApplianceStatus{CyclesSinceLastClean: n, CleaningThreshold: s.threshold}, nil
}

// Reset records a cleaning cycle and clears the counter.
func (s *ApplianceService) Reset(ctx context.Context, userID int64) (domain.ApplianceStatus, error) {
	if err := s.appliances.ResetCycles(ctx, userID); err != nil {
		return domain.ApplianceStatus{}, fmt.Errorf("reset cycles: %w", err)
	}
	s.metrics.RecordApplianceEvent("reset")
	return domain.ApplianceStatus{CleaningThreshold: s.threshold}, nil
}
