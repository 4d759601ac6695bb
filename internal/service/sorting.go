package service

import "github.com/msomdec/atelier/internal/domain"

// SuggestedBin decides which laundry bin a garment belongs in. The first matching rule wins:
//  1. delicate: one-piece garments, silk/wool/cashmere content, or any delicate care symbol
//  2. heavy duty: whites made only of resistant plant fibers
//  3. daily: everything else
func SuggestedBin(g *domain.Garment) domain.LaundryBin {
	if needsDelicateHandling(g) {
		return domain.BinDelicate
	}
	if domain.ClassifyColor(g.Color) == domain.ColorGroupWhites && IsResistantCotton(g.Composition) {
		return domain.BinHeavyDuty
	}
	return domain.BinDaily
}

// IsDelicatePriority reports whether the garment goes in the delicate bin.
func IsDelicatePriority(g *domain.Garment) bool {
	return SuggestedBin(g) == domain.BinDelicate
}

func needsDelicateHandling(g *domain.Garment) bool {
	if g.Category == domain.CategoryOnePiece {
		return true
	}
	if g.HasFabric(domain.FabricSilk, domain.FabricWool, domain.FabricCashmere) {
		return true
	}
	for _, s := range g.CareSymbols {
		if s.IsDelicate() {
			return true
		}
	}
	return false
}

// IsResistantCotton reports whether every fabric entry is cotton, linen or hemp.
// An empty composition counts as resistant; garments with no declared fabric have always
// been eligible for the heavy-duty bin.
func IsResistantCotton(composition []domain.Composition) bool {
	for _, c := range composition {
		switch c.Fabric {
		case domain.FabricCotton, domain.FabricLinen, domain.FabricHemp:
		default:
			return false
		}
	}
	return true
}

// BinGroup is the set of garments suggested for one bin.
type BinGroup struct {
	Bin      domain.LaundryBin
	Garments []domain.Garment
}

// GroupByBin partitions garments by suggested bin. Groups come back in bin display order
// and garments keep their input order; empty bins are omitted.
func GroupByBin(garments []domain.Garment) []BinGroup {
	byBin := make(map[domain.LaundryBin][]domain.Garment, len(domain.LaundryBins))
	for i := range garments {
		bin := SuggestedBin(&garments[i])
		byBin[bin] = append(byBin[bin], garments[i])
	}

	var groups []BinGroup
	for _, bin := range domain.LaundryBins {
		if len(byBin[bin]) == 0 {
			continue
		}
		groups = append(groups, BinGroup{Bin: bin, Garments: byBin[bin]})
	}
	return groups
}
