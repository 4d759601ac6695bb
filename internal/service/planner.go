package service

import "github.com/msomdec/atelier/internal/domain"

// WarningMeshBag is attached to a plan when the load holds underwear or hosiery.
const WarningMeshBag = "Use mesh bag"

// PlanConfig holds the planner's starting points.
type PlanConfig struct {
	// InitialTemperatureC is the ceiling before any garment lowers it.
	InitialTemperatureC int
	// DefaultTemperatureC is assumed for garments with no temperature-bearing symbol.
	DefaultTemperatureC int
}

// DefaultPlanConfig returns the planner defaults: start at 90°C, assume 40°C for
// garments whose label says nothing about temperature.
func DefaultPlanConfig() PlanConfig {
	return PlanConfig{
		InitialTemperatureC: 90,
		DefaultTemperatureC: 40,
	}
}

// WashPlan is the machine program computed for a load.
type WashPlan struct {
	TargetTemperatureC int
	Agitation          domain.WashAgitation
	SuggestedProgram   string
	Warnings           []string
}

// meshBagSubCategories need a mesh bag: hooks, underwires and fine knits snag the drum.
var meshBagSubCategories = map[domain.SubCategory]bool{
	domain.SubBras:              true,
	domain.SubSportsBras:        true,
	domain.SubBralettes:         true,
	domain.SubPanties:           true,
	domain.SubThongs:            true,
	domain.SubBriefs:            true,
	domain.SubBoxerBriefs:       true,
	domain.SubTights:            true,
	domain.SubStockings:         true,
	domain.SubLingerieBodysuits: true,
	domain.SubShapewear:         true,
}

// NeedsMeshBag reports whether a garment's sub-category calls for a mesh bag.
func NeedsMeshBag(sub domain.SubCategory) bool {
	return meshBagSubCategories[sub]
}

// GarmentWashCeiling returns the lowest wash temperature any of the garment's symbols
// allows, or def when none of them carries a temperature.
func GarmentWashCeiling(g *domain.Garment, def int) int {
	ceiling, found := 0, false
	for _, s := range g.CareSymbols {
		t, ok := s.MaxWashTemperatureC()
		if !ok {
			continue
		}
		if !found || t < ceiling {
			ceiling, found = t, true
		}
	}
	if !found {
		return def
	}
	return ceiling
}

// GarmentAgitation returns the agitation a garment asks of a load: Gentle if any of its
// symbols is gentle, otherwise Reduced if any is reduced, otherwise Normal. A None level
// (do not machine wash) carries no agitation request; its 0°C ceiling speaks for it.
func GarmentAgitation(g *domain.Garment) domain.WashAgitation {
	levels := make(map[domain.WashAgitation]bool, len(g.CareSymbols))
	for _, s := range g.CareSymbols {
		levels[s.AgitationLevel()] = true
	}
	switch {
	case levels[domain.AgitationGentle]:
		return domain.AgitationGentle
	case levels[domain.AgitationReduced]:
		return domain.AgitationReduced
	default:
		return domain.AgitationNormal
	}
}

// foldAgitation applies one garment's request to the load. Gentle is never downgraded;
// Reduced only replaces Normal.
func foldAgitation(load, garment domain.WashAgitation) domain.WashAgitation {
	switch {
	case garment == domain.AgitationGentle:
		return domain.AgitationGentle
	case garment == domain.AgitationReduced && load == domain.AgitationNormal:
		return domain.AgitationReduced
	default:
		return load
	}
}

// PlanWash folds a load of garments into one program where the most demanding garment
// wins: the lowest temperature ceiling and the gentlest agitation requested. The result does not
// depend on garment order except for warning order, which follows first appearance.
// The second result is false for an empty load.
func PlanWash(garments []domain.Garment, cfg PlanConfig) (WashPlan, bool) {
	if len(garments) == 0 {
		return WashPlan{}, false
	}

	temp := cfg.InitialTemperatureC
	agitation := domain.AgitationNormal
	var warnings []string
	seen := make(map[string]bool)

	for i := range garments {
		g := &garments[i]

		temp = min(temp, GarmentWashCeiling(g, cfg.DefaultTemperatureC))
		agitation = foldAgitation(agitation, GarmentAgitation(g))

		if NeedsMeshBag(g.SubCategory) && !seen[WarningMeshBag] {
			seen[WarningMeshBag] = true
			warnings = append(warnings, WarningMeshBag)
		}
	}

	if warnings == nil {
		warnings = []string{}
	}

	return WashPlan{
		TargetTemperatureC: temp,
		Agitation:          agitation,
		SuggestedProgram:   agitation.ProgramLabel(),
		Warnings:           warnings,
	}, true
}

// Recalculate recomputes the session's plan fields from its current garments. Sessions do
// not track their own membership changes; callers run this after every add or remove.
// An empty session is left untouched and false is returned.
func Recalculate(session *domain.WashSession, cfg PlanConfig) bool {
	plan, ok := PlanWash(session.Garments, cfg)
	if !ok {
		return false
	}
	session.TargetTemperatureC = plan.TargetTemperatureC
	session.SuggestedProgram = plan.SuggestedProgram
	session.Warnings = plan.Warnings
	return true
}
