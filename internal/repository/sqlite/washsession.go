package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/msomdec/atelier/internal/domain"
)

// WashSessionRepository implements domain.WashSessionRepository using SQLite.
type WashSessionRepository struct {
	db *sql.DB
}

// NewWashSessionRepository creates a new SQLite-backed WashSessionRepository.
func NewWashSessionRepository(db *DB) *WashSessionRepository {
	return &WashSessionRepository{db: db.SqlDB}
}

func (r *WashSessionRepository) Create(ctx context.Context, s *domain.WashSession) error {
	warnings, err := encodeWarnings(s.Warnings)
	if err != nil {
		return err
	}
	if s.Status == "" {
		s.Status = domain.WashStatusPlanned
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	result, err := tx.ExecContext(ctx,
		`INSERT INTO wash_sessions (user_id, bin, status, target_temperature_c, suggested_program,
		 warnings, created_at, updated_at, completed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.UserID, s.Bin, s.Status, s.TargetTemperatureC, s.SuggestedProgram,
		warnings, now, now, s.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wash session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get wash session id: %w", err)
	}

	for i, g := range s.Garments {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO wash_session_garments (session_id, garment_id, position) VALUES (?, ?, ?)",
			id, g.ID, i,
		); err != nil {
			if isUniqueConstraintError(err) {
				return fmt.Errorf("garment %d listed twice: %w", g.ID, domain.ErrInvalidInput)
			}
			return fmt.Errorf("insert session garment: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit wash session: %w", err)
	}

	s.ID = id
	s.CreatedAt = now
	s.UpdatedAt = now
	return nil
}

const washSessionColumns = `id, user_id, bin, status, target_temperature_c, suggested_program,
	warnings, created_at, updated_at, completed_at`

func (r *WashSessionRepository) GetByID(ctx context.Context, id int64) (*domain.WashSession, error) {
	s, err := scanWashSession(r.db.QueryRowContext(ctx,
		`SELECT `+washSessionColumns+` FROM wash_sessions WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get wash session: %w", err)
	}

	garments, err := r.loadGarments(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Garments = garments
	return s, nil
}

// ListByUser returns the user's sessions, newest first, with garments populated.
func (r *WashSessionRepository) ListByUser(ctx context.Context, userID int64) ([]domain.WashSession, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+washSessionColumns+` FROM wash_sessions WHERE user_id = ? ORDER BY created_at DESC, id DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("list wash sessions: %w", err)
	}

	var sessions []domain.WashSession
	for rows.Next() {
		s, err := scanWashSession(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan wash session: %w", err)
		}
		sessions = append(sessions, *s)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	// Garments are loaded after the cursor is closed; the pool holds one connection.
	for i := range sessions {
		garments, err := r.loadGarments(ctx, sessions[i].ID)
		if err != nil {
			return nil, err
		}
		sessions[i].Garments = garments
	}
	return sessions, nil
}

func (r *WashSessionRepository) Update(ctx context.Context, s *domain.WashSession) error {
	now := time.Now().UTC()
	if err := updateWashSession(ctx, r.db, s, now); err != nil {
		return err
	}
	s.UpdatedAt = now
	return nil
}

// Complete writes the session, marks its garments washed and bumps the owner's cycle
// counter in one transaction, so a failed completion can be retried without counting
// the cycle twice.
func (r *WashSessionRepository) Complete(ctx context.Context, s *domain.WashSession, at time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	if err := updateWashSession(ctx, tx, s, now); err != nil {
		return err
	}
	if err := markWashed(ctx, tx, s.GarmentIDs(), at); err != nil {
		return err
	}
	if _, err := incrementCycles(ctx, tx, s.UserID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit wash session: %w", err)
	}
	s.UpdatedAt = now
	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func updateWashSession(ctx context.Context, db execer, s *domain.WashSession, now time.Time) error {
	warnings, err := encodeWarnings(s.Warnings)
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx,
		`UPDATE wash_sessions SET status = ?, target_temperature_c = ?, suggested_program = ?,
		 warnings = ?, updated_at = ?, completed_at = ?
		 WHERE id = ?`,
		s.Status, s.TargetTemperatureC, s.SuggestedProgram, warnings, now, s.CompletedAt, s.ID,
	)
	if err != nil {
		return fmt.Errorf("update wash session: %w", err)
	}
	return expectOneRow(result)
}

func (r *WashSessionRepository) ListPlannedByGarment(ctx context.Context, garmentID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT s.id FROM wash_sessions s
		 JOIN wash_session_garments sg ON sg.session_id = s.id
		 WHERE sg.garment_id = ? AND s.status = ?
		 ORDER BY s.id`,
		garmentID, domain.WashStatusPlanned,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions by garment: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan session id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *WashSessionRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM wash_sessions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete wash session: %w", err)
	}
	return expectOneRow(result)
}

// AddGarment appends a garment to the end of the session. Adding a garment that is
// already in the session returns domain.ErrInvalidInput.
func (r *WashSessionRepository) AddGarment(ctx context.Context, sessionID, garmentID int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO wash_session_garments (session_id, garment_id, position)
		 SELECT ?, ?, COALESCE(MAX(position), -1) + 1 FROM wash_session_garments WHERE session_id = ?`,
		sessionID, garmentID, sessionID,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("garment %d already in session: %w", garmentID, domain.ErrInvalidInput)
		}
		return fmt.Errorf("add session garment: %w", err)
	}
	return nil
}

func (r *WashSessionRepository) RemoveGarment(ctx context.Context, sessionID, garmentID int64) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM wash_session_garments WHERE session_id = ? AND garment_id = ?",
		sessionID, garmentID,
	)
	if err != nil {
		return fmt.Errorf("remove session garment: %w", err)
	}
	return expectOneRow(result)
}

func (r *WashSessionRepository) loadGarments(ctx context.Context, sessionID int64) ([]domain.Garment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT g.id, g.user_id, g.name, g.brand, g.color, g.composition, g.category, g.sub_category,
		 g.season, g.style, g.state, g.care_symbols, g.wear_count, g.last_washed_at, g.purchase_date,
		 g.created_at, g.updated_at
		 FROM wash_session_garments sg
		 JOIN garments g ON g.id = sg.garment_id
		 WHERE sg.session_id = ?
		 ORDER BY sg.position`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session garments: %w", err)
	}
	defer rows.Close()

	garments, err := scanGarments(rows)
	if err != nil {
		return nil, err
	}
	if garments == nil {
		garments = []domain.Garment{}
	}
	return garments, nil
}

func encodeWarnings(warnings []string) (string, error) {
	if warnings == nil {
		warnings = []string{}
	}
	b, err := json.Marshal(warnings)
	if err != nil {
		return "", fmt.Errorf("encode warnings: %w", err)
	}
	return string(b), nil
}

func scanWashSession(row rowScanner) (*domain.WashSession, error) {
	var (
		s        domain.WashSession
		warnings string
	)
	if err := row.Scan(&s.ID, &s.UserID, &s.Bin, &s.Status, &s.TargetTemperatureC,
		&s.SuggestedProgram, &warnings, &s.CreatedAt, &s.UpdatedAt, &s.CompletedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(warnings), &s.Warnings); err != nil {
		return nil, fmt.Errorf("decode warnings of session %d: %w", s.ID, err)
	}
	return &s, nil
}
