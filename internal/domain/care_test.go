package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msomdec/atelier/internal/domain"
)

func TestCareSymbols_EveryCategoryDefined(t *testing.T) {
	valid := map[domain.CareCategory]bool{}
	for _, c := range domain.CareCategories {
		valid[c] = true
	}

	require.Len(t, domain.CareSymbols, 36)
	for _, s := range domain.CareSymbols {
		assert.Truef(t, valid[s.Category()], "%s has no category", s)
		assert.Truef(t, s.IsValid(), "%s not valid", s)
		assert.NotEqualf(t, string(s), s.Label(), "%s has no label", s)
	}
}

func TestCareSymbols_NumericAttributesScopedToCategory(t *testing.T) {
	for _, s := range domain.CareSymbols {
		_, hasWash := s.MaxWashTemperatureC()
		_, hasDryer := s.DryerTemperatureLimitC()
		_, hasIron := s.MaxIronTemperatureC()

		if hasWash {
			assert.Equalf(t, domain.CareCategoryWashing, s.Category(), "%s wash temp outside washing", s)
		}
		if hasDryer {
			assert.Equalf(t, domain.CareCategoryDrying, s.Category(), "%s dryer temp outside drying", s)
		}
		if hasIron {
			assert.Equalf(t, domain.CareCategoryIroning, s.Category(), "%s iron temp outside ironing", s)
		}
		if s.Category() != domain.CareCategoryWashing {
			assert.Equalf(t, domain.AgitationNormal, s.AgitationLevel(), "%s should be agitation neutral", s)
		}
	}
}

func TestCareSymbol_MaxWashTemperatureC(t *testing.T) {
	tests := []struct {
		symbol domain.CareSymbol
		want   int
		ok     bool
	}{
		{domain.MachineWashCold, 30, true},
		{domain.HandWash, 30, true},
		{domain.MachineWashWarm, 40, true},
		{domain.MachineWashPermanentPress, 40, true},
		{domain.MachineWashHot, 50, true},
		{domain.MachineWashVeryHot, 95, true},
		{domain.MachineWashNormal, 40, true},
		{domain.MachineWashDelicate, 30, true},
		{domain.DoNotMachineWash, 0, true},
		{domain.DoNotWring, 0, false},
		{domain.TumbleDryLow, 0, false},
		{domain.IronHigh, 0, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.symbol), func(t *testing.T) {
			got, ok := tt.symbol.MaxWashTemperatureC()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCareSymbol_AgitationLevel(t *testing.T) {
	tests := map[domain.CareSymbol]domain.WashAgitation{
		domain.MachineWashNormal:         domain.AgitationNormal,
		domain.MachineWashVeryHot:        domain.AgitationNormal,
		domain.MachineWashPermanentPress: domain.AgitationReduced,
		domain.MachineWashDelicate:       domain.AgitationGentle,
		domain.HandWash:                  domain.AgitationGentle,
		domain.DoNotWring:                domain.AgitationGentle,
		domain.DoNotMachineWash:          domain.AgitationNone,
		domain.DryClean:                  domain.AgitationNormal,
	}
	for symbol, want := range tests {
		assert.Equalf(t, want, symbol.AgitationLevel(), "agitation of %s", symbol)
	}
}

func TestCareSymbol_DryerAndIronLimits(t *testing.T) {
	dryer := map[domain.CareSymbol]int{
		domain.TumbleDryLow:            60,
		domain.TumbleDryDelicate:       60,
		domain.TumbleDryMedium:         70,
		domain.TumbleDryPermanentPress: 70,
		domain.TumbleDryHigh:           80,
		domain.TumbleDryNormal:         80,
		domain.TumbleDryNoHeat:         20,
	}
	for symbol, want := range dryer {
		got, ok := symbol.DryerTemperatureLimitC()
		require.Truef(t, ok, "%s should carry a dryer limit", symbol)
		assert.Equal(t, want, got)
		assert.True(t, symbol.CanTumbleDry())
	}
	_, ok := domain.DoNotTumbleDry.DryerTemperatureLimitC()
	assert.False(t, ok)
	assert.False(t, domain.HangDry.CanTumbleDry())

	iron := map[domain.CareSymbol]int{
		domain.IronLow:     110,
		domain.IronMedium:  150,
		domain.IronHigh:    200,
		domain.IronNoSteam: 110,
		domain.DoNotIron:   0,
	}
	for symbol, want := range iron {
		got, ok := symbol.MaxIronTemperatureC()
		require.Truef(t, ok, "%s should carry an iron limit", symbol)
		assert.Equal(t, want, got)
	}
}

func TestCareSymbol_IsDelicate(t *testing.T) {
	delicate := map[domain.CareSymbol]bool{
		domain.MachineWashDelicate:     true,
		domain.HandWash:                true,
		domain.DoNotWring:              true,
		domain.DoNotMachineWash:        true,
		domain.DoNotBleach:             true,
		domain.DryFlat:                 true,
		domain.DripDry:                 true,
		domain.DryInShade:              true,
		domain.IronLow:                 true,
		domain.DoNotIron:               true,
		domain.DryClean:                true,
		domain.DryCleanAnySolvent:      true,
		domain.DryCleanHydrocarbon:     true,
		domain.DryCleanPCE:             true,
		domain.ProfessionalWetCleaning: true,
	}
	for _, s := range domain.CareSymbols {
		assert.Equalf(t, delicate[s], s.IsDelicate(), "IsDelicate(%s)", s)
	}
}

func TestCareSymbol_UnmarshalRejectsUnknown(t *testing.T) {
	var symbols []domain.CareSymbol
	require.NoError(t, json.Unmarshal([]byte(`["hand_wash","iron_low"]`), &symbols))
	assert.Equal(t, []domain.CareSymbol{domain.HandWash, domain.IronLow}, symbols)

	err := json.Unmarshal([]byte(`["hand_wash","30C"]`), &symbols)
	require.Error(t, err)
}

func TestWashAgitation_ProgramLabel(t *testing.T) {
	assert.Equal(t, "Cotton / Standard", domain.AgitationNormal.ProgramLabel())
	assert.Equal(t, "Synthetics / Mix", domain.AgitationReduced.ProgramLabel())
	assert.Equal(t, "Delicates / Wool", domain.AgitationGentle.ProgramLabel())
	assert.Equal(t, "Do Not Wash!", domain.AgitationNone.ProgramLabel())
}
