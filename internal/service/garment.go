package service

import (
	"context"
	"fmt"
	"time"

	"github.com/msomdec/atelier/internal/domain"
	"github.com/msomdec/atelier/internal/metrics"
)

// GarmentInput carries the user-editable garment fields.
type GarmentInput struct {
	Name         string                 `json:"name" validate:"required,max=120"`
	Brand        string                 `json:"brand" validate:"max=80"`
	Color        string                 `json:"color" validate:"required,hexcolor6"`
	Composition  []domain.Composition   `json:"composition" validate:"dive"`
	Category     domain.GarmentCategory `json:"category" validate:"required,garment_category"`
	SubCategory  domain.SubCategory     `json:"subCategory" validate:"required"`
	Season       domain.Season          `json:"season" validate:"omitempty,oneof=Summer Winter Spring SeasonLess"`
	Style        domain.GarmentStyle    `json:"style" validate:"omitempty,oneof=Casual Formal Sporty Elegant Business"`
	State        domain.GarmentState    `json:"state" validate:"omitempty,garment_state"`
	CareSymbols  []domain.CareSymbol    `json:"careSymbols" validate:"dive,care_symbol"`
	WearCount    int                    `json:"wearCount" validate:"gte=0"`
	PurchaseDate *time.Time             `json:"purchaseDate"`
}

// GarmentService handles closet CRUD and per-garment bin suggestions. Editing or
// deleting a garment replans every planned session that holds it.
type GarmentService struct {
	garments domain.GarmentRepository
	sessions domain.WashSessionRepository
	plan     PlanConfig
	metrics  *metrics.Metrics
}

// NewGarmentService creates a new GarmentService. m may be nil.
func NewGarmentService(
	garments domain.GarmentRepository,
	sessions domain.WashSessionRepository,
	plan PlanConfig,
	m *metrics.Metrics,
) *GarmentService {
	return &GarmentService{garments: garments, sessions: sessions, plan: plan, metrics: m}
}

// Create validates the input and stores a new garment for the user.
func (s *GarmentService) Create(ctx context.Context, userID int64, in GarmentInput) (*domain.Garment, error) {
	if err := validateGarmentInput(&in); err != nil {
		return nil, err
	}

	g := &domain.Garment{UserID: userID}
	applyGarmentInput(g, &in)

	if err := s.garments.Create(ctx, g); err != nil {
		return nil, fmt.Errorf("create garment: %w", err)
	}
	return g, nil
}

// Get returns one of the user's garments.
func (s *GarmentService) Get(ctx context.Context, userID, id int64) (*domain.Garment, error) {
	g, err := s.garments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g.UserID != userID {
		return nil, domain.ErrUnauthorized
	}
	return g, nil
}

// List returns all of the user's garments.
func (s *GarmentService) List(ctx context.Context, userID int64) ([]domain.Garment, error) {
	return s.garments.ListByUser(ctx, userID)
}

// Update replaces the editable fields of one of the user's garments.
func (s *GarmentService) Update(ctx context.Context, userID, id int64, in GarmentInput) (*domain.Garment, error) {
	if err := validateGarmentInput(&in); err != nil {
		return nil, err
	}

	g, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	applyGarmentInput(g, &in)

	if err := s.garments.Update(ctx, g); err != nil {
		return nil, fmt.Errorf("update garment: %w", err)
	}

	sessionIDs, err := s.sessions.ListPlannedByGarment(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.replan(ctx, sessionIDs); err != nil {
		return nil, err
	}
	return g, nil
}

// Delete removes one of the user's garments. Wash sessions drop it with it and planned
// ones get a fresh plan for the garments that remain.
func (s *GarmentService) Delete(ctx context.Context, userID, id int64) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}

	// Membership rows cascade with the garment, so the sessions are found first.
	sessionIDs, err := s.sessions.ListPlannedByGarment(ctx, id)
	if err != nil {
		return err
	}
	if err := s.garments.Delete(ctx, id); err != nil {
		return err
	}
	return s.replan(ctx, sessionIDs)
}

func (s *GarmentService) replan(ctx context.Context, sessionIDs []int64) error {
	for _, sid := range sessionIDs {
		if _, err := replan(ctx, s.sessions, s.plan, s.metrics, sid); err != nil {
			return fmt.Errorf("replan session %d: %w", sid, err)
		}
	}
	return nil
}

// SuggestBin returns the laundry bin for one of the user's garments.
func (s *GarmentService) SuggestBin(ctx context.Context, userID, id int64) (*domain.Garment, domain.LaundryBin, error) {
	g, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, "", err
	}
	bin := SuggestedBin(g)
	s.metrics.RecordBinSuggestion(string(bin))
	return g, bin, nil
}

// Bins groups the user's garments that are ready to wash by suggested bin.
func (s *GarmentService) Bins(ctx context.Context, userID int64) ([]BinGroup, error) {
	all, err := s.garments.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list garments: %w", err)
	}

	ready := make([]domain.Garment, 0, len(all))
	for _, g := range all {
		if g.State.ReadyToWash() {
			ready = append(ready, g)
		}
	}

	groups := GroupByBin(ready)
	for _, grp := range groups {
		for range grp.Garments {
			s.metrics.RecordBinSuggestion(string(grp.Bin))
		}
	}
	return groups, nil
}

func validateGarmentInput(in *GarmentInput) error {
	if err := validateStruct(in); err != nil {
		return err
	}

	if !in.Category.Allows(in.SubCategory) {
		return fmt.Errorf("%w: subCategory %q does not belong to category %q",
			domain.ErrInvalidInput, in.SubCategory, in.Category)
	}

	var total float64
	seen := make(map[domain.Fabric]bool, len(in.Composition))
	for _, c := range in.Composition {
		if seen[c.Fabric] {
			return fmt.Errorf("%w: fabric %q listed twice", domain.ErrInvalidInput, c.Fabric)
		}
		seen[c.Fabric] = true
		total += c.Percentage
	}
	if total > 100.0001 {
		return fmt.Errorf("%w: composition adds up to %.1f%%", domain.ErrInvalidInput, total)
	}
	return nil
}

// BuildGarment validates in and returns the garment it describes without storing it.
// The CLI uses it to plan loads from a file.
func BuildGarment(in GarmentInput) (domain.Garment, error) {
	if err := validateGarmentInput(&in); err != nil {
		return domain.Garment{}, err
	}
	g := domain.Garment{State: domain.StateAvailable}
	applyGarmentInput(&g, &in)
	return g, nil
}

func applyGarmentInput(g *domain.Garment, in *GarmentInput) {
	hex, _ := domain.NormalizeHex(in.Color)

	g.Name = in.Name
	g.Brand = in.Brand
	g.Color = "#" + hex
	g.Composition = in.Composition
	g.Category = in.Category
	g.SubCategory = in.SubCategory
	g.Season = in.Season
	if g.Season == "" {
		g.Season = domain.SeasonSeasonLess
	}
	g.Style = in.Style
	if g.Style == "" {
		g.Style = domain.StyleCasual
	}
	if in.State != "" {
		g.State = in.State
	}
	g.CareSymbols = uniqueSymbols(in.CareSymbols)
	g.WearCount = in.WearCount
	if in.PurchaseDate != nil {
		g.PurchaseDate = in.PurchaseDate.UTC()
	}
}

func uniqueSymbols(symbols []domain.CareSymbol) []domain.CareSymbol {
	out := make([]domain.CareSymbol, 0, len(symbols))
	seen := make(map[domain.CareSymbol]bool, len(symbols))
	for _, sym := range symbols {
		if !seen[sym] {
			seen[sym] = true
			out = append(out, sym)
		}
	}
	return out
}
