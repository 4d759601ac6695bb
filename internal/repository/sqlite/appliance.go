package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ApplianceRepository implements domain.ApplianceRepository using SQLite.
// A user without a row has run no cycles.
type ApplianceRepository struct {
	db *sql.DB
}

// NewApplianceRepository creates a new SQLite-backed ApplianceRepository.
func NewApplianceRepository(db *DB) *ApplianceRepository {
	return &ApplianceRepository{db: db.SqlDB}
}

func (r *ApplianceRepository) CycleCount(ctx context.Context, userID int64) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		"SELECT cycles_since_clean FROM appliances WHERE user_id = ?", userID,
	).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("query appliance: %w", err)
	}
	return n, nil
}

// incrementCycles counts one more wash cycle inside tx and returns the new total.
// Cycles are only counted as part of completing a wash session.
func incrementCycles(ctx context.Context, tx *sql.Tx, userID int64) (int, error) {
	var n int
	err := tx.QueryRowContext(ctx,
		`INSERT INTO appliances (user_id, cycles_since_clean) VALUES (?, 1)
		 ON CONFLICT(user_id) DO UPDATE SET cycles_since_clean = cycles_since_clean + 1
		 RETURNING cycles_since_clean`,
		userID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("increment appliance cycles: %w", err)
	}
	return n, nil
}

func (r *ApplianceRepository) ResetCycles(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO appliances (user_id, cycles_since_clean) VALUES (?, 0)
		 ON CONFLICT(user_id) DO UPDATE SET cycles_since_clean = 0`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("reset appliance cycles: %w", err)
	}
	return nil
}
