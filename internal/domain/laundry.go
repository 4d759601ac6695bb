package domain

import (
	"context"
	"time"
)

type WashSessionStatus string

const (
	WashStatusPlanned   WashSessionStatus = "planned"
	WashStatusWashing   WashSessionStatus = "washing"
	WashStatusDrying    WashSessionStatus = "drying"
	WashStatusCompleted WashSessionStatus = "completed"
)

// Next returns the status that follows s. The second result is false once completed.
func (s WashSessionStatus) Next() (WashSessionStatus, bool) {
	switch s {
	case WashStatusPlanned:
		return WashStatusWashing, true
	case WashStatusWashing:
		return WashStatusDrying, true
	case WashStatusDrying:
		return WashStatusCompleted, true
	}
	return s, false
}

// WashSession is one machine load: a set of garments from the same bin and the wash
// program computed for them. The session only references garments; it never owns them.
type WashSession struct {
	ID     int64
	UserID int64
	Bin    LaundryBin
	Status WashSessionStatus

	// Garments in insertion order. Plan fields are stale whenever this changes until
	// the plan is recalculated.
	Garments []Garment

	TargetTemperatureC int
	SuggestedProgram   string
	Warnings           []string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

// GarmentIDs returns the IDs of the session's garments in insertion order.
func (s *WashSession) GarmentIDs() []int64 {
	ids := make([]int64, len(s.Garments))
	for i := range s.Garments {
		ids[i] = s.Garments[i].ID
	}
	return ids
}

type WashSessionRepository interface {
	// Create inserts the session together with its garment membership.
	Create(ctx context.Context, session *WashSession) error
	// GetByID loads the session with its garments populated in insertion order.
	GetByID(ctx context.Context, id int64) (*WashSession, error)
	ListByUser(ctx context.Context, userID int64) ([]WashSession, error)
	// Update persists status and plan fields.
	Update(ctx context.Context, session *WashSession) error
	Delete(ctx context.Context, id int64) error
	AddGarment(ctx context.Context, sessionID, garmentID int64) error
	RemoveGarment(ctx context.Context, sessionID, garmentID int64) error
	// ListPlannedByGarment returns the IDs of planned sessions that hold the garment.
	ListPlannedByGarment(ctx context.Context, garmentID int64) ([]int64, error)
	// Complete persists the session, stamps its garments as washed at the given time and
	// counts one machine cycle for its owner. Either all three happen or none does.
	Complete(ctx context.Context, session *WashSession, at time.Time) error
}
