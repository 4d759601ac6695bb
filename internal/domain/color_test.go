package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/msomdec/atelier/internal/domain"
)

func TestClassifyColor(t *testing.T) {
	tests := []struct {
		hex  string
		want domain.ColorGroup
	}{
		{"#FFFFFF", domain.ColorGroupWhites},
		{"#FAFAFA", domain.ColorGroupWhites},
		{"#F5F5DC", domain.ColorGroupWhites}, // beige: s≈0.10
		{"#000000", domain.ColorGroupDarks},
		{"#1A1A2E", domain.ColorGroupDarks},
		{"#4B0000", domain.ColorGroupDarks}, // saturated but dark
		{"#FF0000", domain.ColorGroupLights},
		{"#808080", domain.ColorGroupLights},
		{"#FFC0CB", domain.ColorGroupLights}, // pink: bright but too saturated for whites
	}
	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ClassifyColor(tt.hex))
		})
	}
}

func TestClassifyColor_PrefixAndCaseInvariant(t *testing.T) {
	for _, hex := range []string{"fafafa", "#fafafa", "FAFAFA", "#FaFaFa", " #FAFAFA "} {
		assert.Equalf(t, domain.ColorGroupWhites, domain.ClassifyColor(hex), "ClassifyColor(%q)", hex)
	}
	assert.Equal(t, domain.ClassifyColor("1a2b3c"), domain.ClassifyColor("#1A2B3C"))
}

func TestClassifyColor_MalformedFallsBackToGray(t *testing.T) {
	gray := domain.ClassifyColor("808080")
	for _, hex := range []string{"12", "", "#", "#GGGGGG", "#FFFFFFF", "not a color"} {
		assert.Equalf(t, gray, domain.ClassifyColor(hex), "ClassifyColor(%q)", hex)
	}
}

func TestHexToRGB(t *testing.T) {
	r, g, b := domain.HexToRGB("#FF8000")
	assert.InDelta(t, 1.0, r, 1e-9)
	assert.InDelta(t, 128.0/255.0, g, 1e-9)
	assert.InDelta(t, 0.0, b, 1e-9)

	r, g, b = domain.HexToRGB("xyz")
	assert.Equal(t, [3]float64{0.5, 0.5, 0.5}, [3]float64{r, g, b})
}

func TestRGBToHSB(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		h, s, v float64
	}{
		{"red", 1, 0, 0, 0, 1, 1},
		{"green", 0, 1, 0, 120, 1, 1},
		{"blue", 0, 0, 1, 240, 1, 1},
		{"magenta", 1, 0, 1, 300, 1, 1},
		{"black", 0, 0, 0, 0, 0, 0},
		{"gray", 0.5, 0.5, 0.5, 0, 0, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, v := domain.RGBToHSB(tt.r, tt.g, tt.b)
			assert.InDelta(t, tt.h, h, 1e-9)
			assert.InDelta(t, tt.s, s, 1e-9)
			assert.InDelta(t, tt.v, v, 1e-9)
		})
	}
}
