package domain

import "fmt"

// CareCategory groups care symbols the way garment labels do.
type CareCategory string

const (
	CareCategoryWashing      CareCategory = "washing"
	CareCategoryBleaching    CareCategory = "bleaching"
	CareCategoryDrying       CareCategory = "drying"
	CareCategoryIroning      CareCategory = "ironing"
	CareCategoryProfessional CareCategory = "professional"
)

// Label returns the display name of the category.
func (c CareCategory) Label() string {
	switch c {
	case CareCategoryWashing:
		return "Washing"
	case CareCategoryBleaching:
		return "Bleaching"
	case CareCategoryDrying:
		return "Drying"
	case CareCategoryIroning:
		return "Ironing"
	case CareCategoryProfessional:
		return "Professional Care"
	}
	return string(c)
}

// CareCategories lists the categories in display order.
var CareCategories = []CareCategory{
	CareCategoryWashing,
	CareCategoryBleaching,
	CareCategoryDrying,
	CareCategoryIroning,
	CareCategoryProfessional,
}

// WashAgitation is the ceiling on mechanical action a care symbol allows.
type WashAgitation string

const (
	AgitationNormal  WashAgitation = "normal"
	AgitationReduced WashAgitation = "reduced"
	AgitationGentle  WashAgitation = "gentle"
	AgitationNone    WashAgitation = "none"
)

// ProgramLabel maps an agitation level to the washing machine program shown to the user.
func (a WashAgitation) ProgramLabel() string {
	switch a {
	case AgitationReduced:
		return "Synthetics / Mix"
	case AgitationGentle:
		return "Delicates / Wool"
	case AgitationNone:
		return "Do Not Wash!"
	}
	return "Cotton / Standard"
}

// CareSymbol is a garment care instruction. The string value is the stable code stored
// with garment records and produced by the symbol recognizer.
type CareSymbol string

const (
	// Washing
	MachineWashNormal         CareSymbol = "machine_wash_normal"
	MachineWashCold           CareSymbol = "machine_wash_cold"
	MachineWashWarm           CareSymbol = "machine_wash_warm"
	MachineWashHot            CareSymbol = "machine_wash_hot"
	MachineWashVeryHot        CareSymbol = "machine_wash_very_hot"
	MachineWashDelicate       CareSymbol = "machine_wash_delicate"
	MachineWashPermanentPress CareSymbol = "machine_wash_permanent_press"
	HandWash                  CareSymbol = "hand_wash"
	DoNotMachineWash          CareSymbol = "do_not_machine_wash"
	DoNotWring                CareSymbol = "do_not_wring"

	// Bleaching
	Bleach            CareSymbol = "bleach"
	BleachNonChlorine CareSymbol = "bleach_non_chlorine"
	DoNotBleach       CareSymbol = "do_not_bleach"

	// Drying
	TumbleDryNormal         CareSymbol = "tumble_dry_normal"
	TumbleDryLow            CareSymbol = "tumble_dry_low"
	TumbleDryMedium         CareSymbol = "tumble_dry_medium"
	TumbleDryHigh           CareSymbol = "tumble_dry_high"
	TumbleDryNoHeat         CareSymbol = "tumble_dry_no_heat"
	TumbleDryDelicate       CareSymbol = "tumble_dry_delicate"
	TumbleDryPermanentPress CareSymbol = "tumble_dry_permanent_press"
	DoNotTumbleDry          CareSymbol = "do_not_tumble_dry"
	HangDry                 CareSymbol = "hang_dry"
	DripDry                 CareSymbol = "drip_dry"
	DryFlat                 CareSymbol = "dry_flat"
	DryInShade              CareSymbol = "dry_in_shade"

	// Ironing
	IronLow     CareSymbol = "iron_low"
	IronMedium  CareSymbol = "iron_medium"
	IronHigh    CareSymbol = "iron_high"
	IronNoSteam CareSymbol = "iron_no_steam"
	DoNotIron   CareSymbol = "do_not_iron"

	// Professional
	DryClean                CareSymbol = "dry_clean"
	DryCleanAnySolvent      CareSymbol = "dry_clean_any_solvent"
	DryCleanHydrocarbon     CareSymbol = "dry_clean_hydrocarbon_solvent_only"
	DryCleanPCE             CareSymbol = "dry_clean_tetrachloroethylene_solvent_only"
	DoNotDryClean           CareSymbol = "do_not_dry_clean"
	ProfessionalWetCleaning CareSymbol = "professional_wet_cleaning_only"
)

// CareSymbols is the complete catalog in display order.
var CareSymbols = []CareSymbol{
	MachineWashNormal, MachineWashCold, MachineWashWarm, MachineWashHot, MachineWashVeryHot,
	MachineWashDelicate, MachineWashPermanentPress, HandWash, DoNotMachineWash, DoNotWring,
	Bleach, BleachNonChlorine, DoNotBleach,
	TumbleDryNormal, TumbleDryLow, TumbleDryMedium, TumbleDryHigh, TumbleDryNoHeat,
	TumbleDryDelicate, TumbleDryPermanentPress, DoNotTumbleDry, HangDry, DripDry, DryFlat, DryInShade,
	IronLow, IronMedium, IronHigh, IronNoSteam, DoNotIron,
	DryClean, DryCleanAnySolvent, DryCleanHydrocarbon, DryCleanPCE, DoNotDryClean, ProfessionalWetCleaning,
}

var careSymbolSet = func() map[CareSymbol]struct{} {
	set := make(map[CareSymbol]struct{}, len(CareSymbols))
	for _, s := range CareSymbols {
		set[s] = struct{}{}
	}
	return set
}()

// ParseCareSymbol returns the catalog entry whose code equals s exactly.
func ParseCareSymbol(s string) (CareSymbol, bool) {
	sym := CareSymbol(s)
	_, ok := careSymbolSet[sym]
	return sym, ok
}

// IsValid reports whether s is a catalog entry.
func (s CareSymbol) IsValid() bool {
	_, ok := careSymbolSet[s]
	return ok
}

// UnmarshalText rejects codes outside the catalog so stored and submitted symbol sets
// only ever hold known entries.
func (s *CareSymbol) UnmarshalText(text []byte) error {
	sym, ok := ParseCareSymbol(string(text))
	if !ok {
		return fmt.Errorf("%w: unknown care symbol %q", ErrInvalidInput, string(text))
	}
	*s = sym
	return nil
}

// Category returns the label section the symbol belongs to.
func (s CareSymbol) Category() CareCategory {
	switch s {
	case MachineWashNormal, MachineWashCold, MachineWashWarm, MachineWashHot, MachineWashVeryHot,
		MachineWashDelicate, MachineWashPermanentPress, HandWash, DoNotMachineWash, DoNotWring:
		return CareCategoryWashing
	case Bleach, BleachNonChlorine, DoNotBleach:
		return CareCategoryBleaching
	case TumbleDryNormal, TumbleDryLow, TumbleDryMedium, TumbleDryHigh, TumbleDryNoHeat,
		TumbleDryDelicate, TumbleDryPermanentPress, DoNotTumbleDry, HangDry, DripDry, DryFlat, DryInShade:
		return CareCategoryDrying
	case IronLow, IronMedium, IronHigh, IronNoSteam, DoNotIron:
		return CareCategoryIroning
	case DryClean, DryCleanAnySolvent, DryCleanHydrocarbon, DryCleanPCE, DoNotDryClean, ProfessionalWetCleaning:
		return CareCategoryProfessional
	}
	return ""
}

// Label returns the short display name printed next to the symbol icon.
func (s CareSymbol) Label() string {
	switch s {
	case MachineWashNormal:
		return "Machine Wash"
	case MachineWashCold:
		return "Cold Wash"
	case MachineWashWarm:
		return "Warm Wash"
	case MachineWashHot:
		return "Hot Wash"
	case MachineWashVeryHot:
		return "Very Hot Wash"
	case MachineWashDelicate:
		return "Delicate Cycle"
	case MachineWashPermanentPress:
		return "Permanent Press"
	case HandWash:
		return "Hand Wash"
	case DoNotMachineWash:
		return "Do Not Wash"
	case DoNotWring:
		return "Do Not Wring"
	case Bleach:
		return "Bleach Allowed"
	case BleachNonChlorine:
		return "Non-Chlorine Bleach"
	case DoNotBleach:
		return "Do Not Bleach"
	case TumbleDryNormal:
		return "Tumble Dry"
	case TumbleDryLow:
		return "Low Heat"
	case TumbleDryMedium:
		return "Medium Heat"
	case TumbleDryHigh:
		return "High Heat"
	case TumbleDryNoHeat:
		return "No Heat"
	case TumbleDryDelicate:
		return "Delicate Dry"
	case TumbleDryPermanentPress:
		return "Perm. Press Dry"
	case DoNotTumbleDry:
		return "Do Not Tumble Dry"
	case HangDry:
		return "Hang Dry"
	case DripDry:
		return "Drip Dry"
	case DryFlat:
		return "Dry Flat"
	case DryInShade:
		return "Dry In Shade"
	case IronLow:
		return "Iron Low"
	case IronMedium:
		return "Iron Medium"
	case IronHigh:
		return "Iron High"
	case IronNoSteam:
		return "No Steam"
	case DoNotIron:
		return "Do Not Iron"
	case DryClean:
		return "Dry Clean"
	case DryCleanAnySolvent:
		return "Any Solvent"
	case DryCleanHydrocarbon:
		return "Hydrocarbon Only"
	case DryCleanPCE:
		return "PCE Only"
	case DoNotDryClean:
		return "Do Not Dry Clean"
	case ProfessionalWetCleaning:
		return "Wet Cleaning"
	}
	return string(s)
}

// MaxWashTemperatureC returns the wash temperature ceiling in °C. The second result is
// false for symbols outside the washing category that carry no temperature.
// A ceiling of 0 means the garment must not be machine washed.
func (s CareSymbol) MaxWashTemperatureC() (int, bool) {
	switch s {
	case MachineWashCold, HandWash:
		return 30, true
	case MachineWashWarm, MachineWashPermanentPress:
		return 40, true
	case MachineWashHot:
		return 50, true
	case MachineWashVeryHot:
		return 95, true
	case MachineWashNormal:
		return 40, true
	case MachineWashDelicate:
		return 30, true
	case DoNotMachineWash:
		return 0, true
	}
	return 0, false
}

// AgitationLevel returns the mechanical action the symbol allows. Symbols outside the
// washing category are neutral and report AgitationNormal.
func (s CareSymbol) AgitationLevel() WashAgitation {
	switch s {
	case MachineWashNormal, MachineWashCold, MachineWashWarm, MachineWashHot, MachineWashVeryHot:
		return AgitationNormal
	case MachineWashPermanentPress:
		return AgitationReduced
	case MachineWashDelicate, HandWash, DoNotWring:
		return AgitationGentle
	case DoNotMachineWash:
		return AgitationNone
	}
	return AgitationNormal
}

// CanTumbleDry reports whether the symbol permits the tumble dryer at some heat.
func (s CareSymbol) CanTumbleDry() bool {
	_, ok := s.DryerTemperatureLimitC()
	return ok
}

// DryerTemperatureLimitC returns the tumble dryer ceiling in °C for tumble-dry symbols.
func (s CareSymbol) DryerTemperatureLimitC() (int, bool) {
	switch s {
	case TumbleDryLow, TumbleDryDelicate:
		return 60, true
	case TumbleDryMedium, TumbleDryPermanentPress:
		return 70, true
	case TumbleDryHigh, TumbleDryNormal:
		return 80, true
	case TumbleDryNoHeat:
		return 20, true
	}
	return 0, false
}

// MaxIronTemperatureC returns the iron soleplate ceiling in °C for ironing symbols.
// A ceiling of 0 means the garment must not be ironed.
func (s CareSymbol) MaxIronTemperatureC() (int, bool) {
	switch s {
	case IronLow:
		return 110, true
	case IronMedium:
		return 150, true
	case IronHigh:
		return 200, true
	case IronNoSteam:
		// Same plate ceiling as low, without steam.
		return 110, true
	case DoNotIron:
		return 0, true
	}
	return 0, false
}

// IsDelicate reports whether the symbol forces the garment into special handling.
func (s CareSymbol) IsDelicate() bool {
	switch s {
	case MachineWashDelicate, HandWash, DoNotWring, DoNotMachineWash,
		DoNotBleach,
		DryFlat, DripDry, DryInShade,
		IronLow, DoNotIron,
		DryClean, DryCleanAnySolvent, DryCleanHydrocarbon, DryCleanPCE, ProfessionalWetCleaning:
		return true
	}
	return false
}
