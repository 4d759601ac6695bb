package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/msomdec/atelier/internal/domain"
)

// GarmentRepository implements domain.GarmentRepository using SQLite.
type GarmentRepository struct {
	db *sql.DB
}

// NewGarmentRepository creates a new SQLite-backed GarmentRepository.
func NewGarmentRepository(db *DB) *GarmentRepository {
	return &GarmentRepository{db: db.SqlDB}
}

const garmentColumns = `id, user_id, name, brand, color, composition, category, sub_category,
	season, style, state, care_symbols, wear_count, last_washed_at, purchase_date, created_at, updated_at`

func (r *GarmentRepository) Create(ctx context.Context, g *domain.Garment) error {
	composition, symbols, err := encodeGarmentSets(g)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if g.PurchaseDate.IsZero() {
		g.PurchaseDate = now
	}
	if g.State == "" {
		g.State = domain.StateAvailable
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO garments (user_id, name, brand, color, composition, category, sub_category,
		 season, style, state, care_symbols, wear_count, last_washed_at, purchase_date, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.UserID, g.Name, g.Brand, g.Color, composition, g.Category, g.SubCategory,
		g.Season, g.Style, g.State, symbols, g.WearCount, g.LastWashedAt, g.PurchaseDate, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert garment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get garment id: %w", err)
	}

	g.ID = id
	g.CreatedAt = now
	g.UpdatedAt = now
	return nil
}

func (r *GarmentRepository) GetByID(ctx context.Context, id int64) (*domain.Garment, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+garmentColumns+` FROM garments WHERE id = ?`, id)
	g, err := scanGarment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get garment: %w", err)
	}
	return g, nil
}

func (r *GarmentRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Garment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+garmentColumns+` FROM garments WHERE user_id = ? ORDER BY category, name, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list garments: %w", err)
	}
	defer rows.Close()
	return scanGarments(rows)
}

// ListByIDs returns the garments with the given IDs, in the order the IDs were given.
// Unknown IDs are skipped.
func (r *GarmentRepository) ListByIDs(ctx context.Context, ids []int64) ([]domain.Garment, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+garmentColumns+` FROM garments WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, fmt.Errorf("list garments by ids: %w", err)
	}
	defer rows.Close()

	found, err := scanGarments(rows)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]domain.Garment, len(found))
	for _, g := range found {
		byID[g.ID] = g
	}
	ordered := make([]domain.Garment, 0, len(found))
	for _, id := range ids {
		if g, ok := byID[id]; ok {
			ordered = append(ordered, g)
			delete(byID, id)
		}
	}
	return ordered, nil
}

func (r *GarmentRepository) Update(ctx context.Context, g *domain.Garment) error {
	composition, symbols, err := encodeGarmentSets(g)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE garments SET name = ?, brand = ?, color = ?, composition = ?, category = ?,
		 sub_category = ?, season = ?, style = ?, state = ?, care_symbols = ?, wear_count = ?,
		 last_washed_at = ?, purchase_date = ?, updated_at = ?
		 WHERE id = ?`,
		g.Name, g.Brand, g.Color, composition, g.Category,
		g.SubCategory, g.Season, g.Style, g.State, symbols, g.WearCount,
		g.LastWashedAt, g.PurchaseDate, now, g.ID,
	)
	if err != nil {
		return fmt.Errorf("update garment: %w", err)
	}
	if err := expectOneRow(result); err != nil {
		return err
	}
	g.UpdatedAt = now
	return nil
}

func (r *GarmentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM garments WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete garment: %w", err)
	}
	return expectOneRow(result)
}

// markWashed stamps the last washing date, clears the wear count and puts every listed
// garment back in the closet, inside tx.
func markWashed(ctx context.Context, tx *sql.Tx, ids []int64, at time.Time) error {
	for _, id := range ids {
		if _, err := tx.ExecContext(ctx,
			`UPDATE garments SET last_washed_at = ?, wear_count = 0, state = ?, updated_at = ? WHERE id = ?`,
			at, domain.StateAvailable, at, id,
		); err != nil {
			return fmt.Errorf("mark garment %d washed: %w", id, err)
		}
	}
	return nil
}

func encodeGarmentSets(g *domain.Garment) (composition, symbols string, err error) {
	comp := g.Composition
	if comp == nil {
		comp = []domain.Composition{}
	}
	cb, err := json.Marshal(comp)
	if err != nil {
		return "", "", fmt.Errorf("encode composition: %w", err)
	}

	syms := g.CareSymbols
	if syms == nil {
		syms = []domain.CareSymbol{}
	}
	sb, err := json.Marshal(syms)
	if err != nil {
		return "", "", fmt.Errorf("encode care symbols: %w", err)
	}
	return string(cb), string(sb), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGarment(row rowScanner) (*domain.Garment, error) {
	var (
		g                    domain.Garment
		composition, symbols string
	)
	if err := row.Scan(&g.ID, &g.UserID, &g.Name, &g.Brand, &g.Color, &composition,
		&g.Category, &g.SubCategory, &g.Season, &g.Style, &g.State, &symbols,
		&g.WearCount, &g.LastWashedAt, &g.PurchaseDate, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(composition), &g.Composition); err != nil {
		return nil, fmt.Errorf("decode composition of garment %d: %w", g.ID, err)
	}
	if err := json.Unmarshal([]byte(symbols), &g.CareSymbols); err != nil {
		return nil, fmt.Errorf("decode care symbols of garment %d: %w", g.ID, err)
	}
	return &g, nil
}

func scanGarments(rows *sql.Rows) ([]domain.Garment, error) {
	var garments []domain.Garment
	for rows.Next() {
		g, err := scanGarment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan garment: %w", err)
		}
		garments = append(garments, *g)
	}
	return garments, rows.Err()
}

func expectOneRow(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
