package service

import (
	"context"
	"fmt"
	"time"

	"github.com/msomdec/atelier/internal/domain"
	"github.com/msomdec/atelier/internal/metrics"
)

// LaundryService handles wash session lifecycle. It owns the single-writer discipline the
// planner needs: every membership change is followed by a recalculation before the
// session is persisted.
type LaundryService struct {
	sessions domain.WashSessionRepository
	garments domain.GarmentRepository
	plan     PlanConfig
	metrics  *metrics.Metrics
	now      func() time.Time
}

// NewLaundryService creates a new LaundryService. m may be nil.
func NewLaundryService(
	sessions domain.WashSessionRepository,
	garments domain.GarmentRepository,
	plan PlanConfig,
	m *metrics.Metrics,
) *LaundryService {
	return &LaundryService{
		sessions: sessions,
		garments: garments,
		plan:     plan,
		metrics:  m,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Create starts a planned session for a bin with the given garments and computes its plan.
// Garments must belong to the user and be ready to wash. An empty session is allowed; its
// plan fields stay unset until garments are added.
func (s *LaundryService) Create(ctx context.Context, userID int64, bin domain.LaundryBin, garmentIDs []int64) (*domain.WashSession, error) {
	if !bin.IsValid() {
		return nil, fmt.Errorf("%w: unknown bin %q", domain.ErrInvalidInput, bin)
	}

	garments, err := s.loadWashable(ctx, userID, garmentIDs)
	if err != nil {
		return nil, err
	}

	session := &domain.WashSession{
		UserID:   userID,
		Bin:      bin,
		Status:   domain.WashStatusPlanned,
		Garments: garments,
		Warnings: []string{},
	}
	recalculate(session, s.plan, s.metrics)

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create wash session: %w", err)
	}
	return session, nil
}

// Get returns one of the user's sessions with garments populated.
func (s *LaundryService) Get(ctx context.Context, userID, id int64) (*domain.WashSession, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, domain.ErrUnauthorized
	}
	return session, nil
}

// List returns the user's sessions, newest first.
func (s *LaundryService) List(ctx context.Context, userID int64) ([]domain.WashSession, error) {
	return s.sessions.ListByUser(ctx, userID)
}

// Delete removes one of the user's sessions. Garments are untouched.
func (s *LaundryService) Delete(ctx context.Context, userID, id int64) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	return s.sessions.Delete(ctx, id)
}

// AddGarment adds a garment to a planned session and recalculates the plan.
func (s *LaundryService) AddGarment(ctx context.Context, userID, sessionID, garmentID int64) (*domain.WashSession, error) {
	session, err := s.editable(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if _, err := s.loadWashable(ctx, userID, []int64{garmentID}); err != nil {
		return nil, err
	}

	if err := s.sessions.AddGarment(ctx, sessionID, garmentID); err != nil {
		return nil, err
	}
	return s.reload(ctx, session.ID)
}

// RemoveGarment takes a garment out of a planned session and recalculates the plan.
// Removing the last garment leaves the previous plan in place.
func (s *LaundryService) RemoveGarment(ctx context.Context, userID, sessionID, garmentID int64) (*domain.WashSession, error) {
	session, err := s.editable(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.RemoveGarment(ctx, sessionID, garmentID); err != nil {
		return nil, err
	}
	return s.reload(ctx, session.ID)
}

// Advance moves the session to its next status. A session cannot start washing without
// garments. Completing a session stamps every garment as washed and counts one machine
// cycle in the same write as the status change.
func (s *LaundryService) Advance(ctx context.Context, userID, sessionID int64) (*domain.WashSession, error) {
	session, err := s.Get(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	next, ok := session.Status.Next()
	if !ok {
		return nil, fmt.Errorf("%w: session is already %s", domain.ErrInvalidTransition, session.Status)
	}
	if session.Status == domain.WashStatusPlanned && len(session.Garments) == 0 {
		return nil, domain.ErrEmptySession
	}

	prev := session.Status
	session.Status = next
	if next != domain.WashStatusCompleted {
		if err := s.sessions.Update(ctx, session); err != nil {
			return nil, fmt.Errorf("update wash session: %w", err)
		}
		return session, nil
	}

	now := s.now()
	session.CompletedAt = &now
	if err := s.sessions.Complete(ctx, session, now); err != nil {
		session.Status, session.CompletedAt = prev, nil
		return nil, fmt.Errorf("complete wash session: %w", err)
	}
	s.metrics.RecordApplianceEvent("cycle")
	return session, nil
}

func (s *LaundryService) editable(ctx context.Context, userID, sessionID int64) (*domain.WashSession, error) {
	session, err := s.Get(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != domain.WashStatusPlanned {
		return nil, fmt.Errorf("%w: garments can only change while planned", domain.ErrInvalidTransition)
	}
	return session, nil
}

func (s *LaundryService) reload(ctx context.Context, sessionID int64) (*domain.WashSession, error) {
	return replan(ctx, s.sessions, s.plan, s.metrics, sessionID)
}

// replan fetches a session after its membership or one of its garments changed,
// recalculates and persists the plan.
func replan(ctx context.Context, sessions domain.WashSessionRepository, cfg PlanConfig, m *metrics.Metrics, sessionID int64) (*domain.WashSession, error) {
	session, err := sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if recalculate(session, cfg, m) {
		if err := sessions.Update(ctx, session); err != nil {
			return nil, fmt.Errorf("update wash session: %w", err)
		}
	}
	return session, nil
}

func recalculate(session *domain.WashSession, cfg PlanConfig, m *metrics.Metrics) bool {
	if !Recalculate(session, cfg) {
		return false
	}
	m.RecordPlan(string(session.Bin), session.SuggestedProgram, session.TargetTemperatureC)
	return true
}

// loadWashable fetches the garments in the given order, rejecting duplicates, foreign
// garments and garments that are not ready to wash.
func (s *LaundryService) loadWashable(ctx context.Context, userID int64, ids []int64) ([]domain.Garment, error) {
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return nil, fmt.Errorf("%w: garment %d listed twice", domain.ErrInvalidInput, id)
		}
		seen[id] = true
	}

	garments, err := s.garments.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load garments: %w", err)
	}
	if len(garments) != len(ids) {
		return nil, fmt.Errorf("garment: %w", domain.ErrNotFound)
	}

	for _, g := range garments {
		if g.UserID != userID {
			return nil, domain.ErrUnauthorized
		}
		if !g.State.ReadyToWash() {
			return nil, fmt.Errorf("%w: %s is %s", domain.ErrNotReadyToWash, g.Name, g.State)
		}
	}
	if garments == nil {
		garments = []domain.Garment{}
	}
	return garments, nil
}
