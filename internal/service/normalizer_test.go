package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/msomdec/atelier/internal/domain"
	"github.com/msomdec/atelier/internal/service"
)

func TestNormalizeCareLabel(t *testing.T) {
	tests := []struct {
		label  string
		want   domain.CareSymbol
		wantOK bool
	}{
		{"30C", domain.MachineWashCold, true},
		{"40C", domain.MachineWashWarm, true},
		{"60C", domain.MachineWashHot, true},
		{"95C", domain.MachineWashVeryHot, true},
		{"DN_wash", domain.DoNotMachineWash, true},
		{"DN_steam", domain.IronNoSteam, true},
		{"line_dry", domain.HangDry, true},
		{"wet_clean", domain.ProfessionalWetCleaning, true},
		{"hand_wash", domain.HandWash, true},
		{"dry_flat", domain.DryFlat, true},
		{"unknown_xyz", "", false},
		{"iron", "", false},
		{"", "", false},
		{"HAND_WASH", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.label, func(t *testing.T) {
			got, ok := service.NormalizeCareLabel(tc.label)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeCareLabel_CatalogCodesMapToThemselves(t *testing.T) {
	for _, sym := range domain.CareSymbols {
		got, ok := service.NormalizeCareLabel(string(sym))
		assert.True(t, ok, sym)
		assert.Equal(t, sym, got)
	}
}

func TestNormalizeCareLabels(t *testing.T) {
	symbols, unmapped := service.NormalizeCareLabels([]string{
		"30C", "hand_wash", "steam", "machine_wash_cold", "line_dry", "steam", "DN_iron",
	})

	assert.Equal(t, []domain.CareSymbol{
		domain.MachineWashCold, domain.HandWash, domain.HangDry, domain.DoNotIron,
	}, symbols)
	assert.Equal(t, []string{"steam"}, unmapped)
}
