package domain

import (
	"math"
	"strconv"
	"strings"
)

// ColorGroup is the laundering color group a garment is sorted into.
type ColorGroup string

const (
	ColorGroupWhites ColorGroup = "whites"
	ColorGroupDarks  ColorGroup = "darks"
	ColorGroupLights ColorGroup = "lights"
)

// Label returns the display name of the group.
func (g ColorGroup) Label() string {
	switch g {
	case ColorGroupWhites:
		return "Whites"
	case ColorGroupDarks:
		return "Darks"
	case ColorGroupLights:
		return "Lights/Colors"
	}
	return string(g)
}

// Classification thresholds. Stored garment colors were sorted with these exact values.
const (
	whitesMinBrightness = 0.85
	whitesMaxSaturation = 0.15
	darksMaxBrightness  = 0.30
)

// ClassifyColor returns the color group for a hex color such as "#FAFAFA" or "1a2b3c".
// Malformed input is treated as mid-gray, so a group is always returned.
func ClassifyColor(hex string) ColorGroup {
	r, g, b := HexToRGB(hex)
	_, s, v := RGBToHSB(r, g, b)

	// Near white: very bright with almost no saturation (white, cream, pale gray).
	if v > whitesMinBrightness && s < whitesMaxSaturation {
		return ColorGroupWhites
	}
	// Dark regardless of saturation (black, navy, dark brown, deep burgundy).
	if v < darksMaxBrightness {
		return ColorGroupDarks
	}
	return ColorGroupLights
}

// NormalizeHex trims whitespace and a leading '#' and upper-cases the digits.
// The second result reports whether exactly six hex digits remain.
func NormalizeHex(hex string) (string, bool) {
	s := strings.ToUpper(strings.TrimSpace(hex))
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return s, false
	}
	for _, c := range s {
		if !(c >= '0' && c <= '9' || c >= 'A' && c <= 'F') {
			return s, false
		}
	}
	return s, true
}

// HexToRGB converts a hex color to r, g, b components in [0, 1].
// Anything that is not six hex digits yields gray (0.5, 0.5, 0.5).
func HexToRGB(hex string) (r, g, b float64) {
	s, ok := NormalizeHex(hex)
	if !ok {
		return 0.5, 0.5, 0.5
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0.5, 0.5, 0.5
	}
	return float64((v>>16)&0xFF) / 255.0,
		float64((v>>8)&0xFF) / 255.0,
		float64(v&0xFF) / 255.0
}

// RGBToHSB converts r, g, b in [0, 1] to hue in degrees [0, 360),
// saturation in [0, 1] and brightness in [0, 1].
func RGBToHSB(r, g, b float64) (h, s, v float64) {
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	delta := maxC - minC

	if delta != 0 {
		switch maxC {
		case r:
			h = (g - b) / delta
		case g:
			h = 2 + (b-r)/delta
		default:
			h = 4 + (r-g)/delta
		}
		h *= 60
		if h < 0 {
			h += 360
		}
	}

	if maxC != 0 {
		s = delta / maxC
	}
	return h, s, maxC
}
