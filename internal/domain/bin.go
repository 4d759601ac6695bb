package domain

// LaundryBin is the physical sorting bucket a garment is dropped into before washing.
type LaundryBin string

const (
	BinHeavyDuty LaundryBin = "heavy_duty"
	BinDaily     LaundryBin = "daily"
	BinDelicate  LaundryBin = "delicate"
)

// LaundryBins lists every bin in display order.
var LaundryBins = []LaundryBin{BinHeavyDuty, BinDaily, BinDelicate}

// IsValid reports whether b is one of the three bins.
func (b LaundryBin) IsValid() bool {
	switch b {
	case BinHeavyDuty, BinDaily, BinDelicate:
		return true
	}
	return false
}

// Label returns the bin's short display name.
func (b LaundryBin) Label() string {
	switch b {
	case BinHeavyDuty:
		return "White & Hot"
	case BinDaily:
		return "Daily Dark"
	case BinDelicate:
		return "Delicate"
	}
	return string(b)
}

// Description returns what typically goes into the bin. Display only.
func (b LaundryBin) Description() string {
	switch b {
	case BinHeavyDuty:
		return "Whites, towels, cotton underwear"
	case BinDaily:
		return "Jeans, colored t-shirts, synthetics"
	case BinDelicate:
		return "Wool, silk, technical fabrics, embroidery"
	}
	return ""
}
