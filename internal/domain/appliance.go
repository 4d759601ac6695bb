package domain

import "context"

// ApplianceStatus is the upkeep state of a user's washing machine.
type ApplianceStatus struct {
	CyclesSinceLastClean int
	CleaningThreshold    int
}

// NeedsCleaning reports whether the machine has run enough cycles to need a cleaning cycle.
func (a ApplianceStatus) NeedsCleaning() bool {
	return a.CyclesSinceLastClean >= a.CleaningThreshold
}

type ApplianceRepository interface {
	CycleCount(ctx context.Context, userID int64) (int, error)
	ResetCycles(ctx context.Context, userID int64) error
}
