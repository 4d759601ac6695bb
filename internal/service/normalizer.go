package service

import "github.com/msomdec/atelier/internal/domain"

// careLabelAliases maps recognizer labels that are not catalog codes onto catalog entries.
// Labels the recognizer emits with no counterpart here (plain "iron", "steam", "wring",
// "dry_clean_low_heat", ...) are deliberately left unmapped.
var careLabelAliases = map[string]domain.CareSymbol{
	// Temperature buckets.
	"30C": domain.MachineWashCold,
	"40C": domain.MachineWashWarm,
	"50C": domain.MachineWashHot,
	"60C": domain.MachineWashHot,
	"70C": domain.MachineWashVeryHot,
	"95C": domain.MachineWashVeryHot,

	// Negations.
	"DN_wash":       domain.DoNotMachineWash,
	"DN_dry":        domain.DoNotTumbleDry,
	"DN_tumble_dry": domain.DoNotTumbleDry,
	"DN_iron":       domain.DoNotIron,
	"DN_steam":      domain.IronNoSteam,
	"DN_bleach":     domain.DoNotBleach,
	"DN_dry_clean":  domain.DoNotDryClean,
	"DN_wring":      domain.DoNotWring,

	// Bleaching.
	"chlorine_bleach":     domain.Bleach,
	"non_chlorine_bleach": domain.BleachNonChlorine,

	// Drying.
	"line_dry":          domain.HangDry,
	"natural_dry":       domain.HangDry,
	"line_dry_in_shade": domain.DryInShade,
	"shade_dry":         domain.DryInShade,

	// Professional care.
	"dry_clean_any_solvent_except_trichloroethylene": domain.DryCleanPCE,
	"dry_clean_petrol_only":                          domain.DryCleanHydrocarbon,
	"wet_clean":                                      domain.ProfessionalWetCleaning,
}

// NormalizeCareLabel maps a symbol recognizer label onto the care catalog: an exact code
// match first, then the alias table. The second result is false for labels with no mapping,
// which callers drop.
func NormalizeCareLabel(label string) (domain.CareSymbol, bool) {
	if s, ok := domain.ParseCareSymbol(label); ok {
		return s, true
	}
	s, ok := careLabelAliases[label]
	return s, ok
}

// NormalizeCareLabels maps a batch of recognizer labels. Symbols come back de-duplicated in
// first-seen order; labels with no mapping are returned separately, also de-duplicated.
func NormalizeCareLabels(labels []string) (symbols []domain.CareSymbol, unmapped []string) {
	seenSymbols := make(map[domain.CareSymbol]bool)
	seenUnmapped := make(map[string]bool)
	for _, label := range labels {
		s, ok := NormalizeCareLabel(label)
		if !ok {
			if !seenUnmapped[label] {
				seenUnmapped[label] = true
				unmapped = append(unmapped, label)
			}
			continue
		}
		if !seenSymbols[s] {
			seenSymbols[s] = true
			symbols = append(symbols, s)
		}
	}
	return symbols, unmapped
}
