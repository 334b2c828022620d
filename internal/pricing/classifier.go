package pricing

import "courtside/internal/charts"

// PriceCategory is the coarse tier of a section's price relative to the
// venue's overall price span.
type PriceCategory string

const (
	PriceCategoryPremium  PriceCategory = "premium"
	PriceCategoryStandard PriceCategory = "standard"
	PriceCategoryValue    PriceCategory = "value"
)

// ClassifyPrice splits [min, max] into three equal-width bands and places
// price in one of them. Thresholds are checked with >= in descending order,
// so an out-of-range price lands in the nearest extreme band.
func ClassifyPrice(price, min, max float64) PriceCategory {
	span := max - min
	switch {
	case price >= min+2*span/3:
		return PriceCategoryPremium
	case price >= min+span/3:
		return PriceCategoryStandard
	default:
		return PriceCategoryValue
	}
}

// SectionPriceSpan returns the observed (min, max) current price across a
// section set. Zero values for an empty set.
func SectionPriceSpan(sections []charts.SVGSection) (min, max float64) {
	if len(sections) == 0 {
		return 0, 0
	}

	min, max = sections[0].CurrentPrice, sections[0].CurrentPrice
	for _, sec := range sections[1:] {
		if sec.CurrentPrice < min {
			min = sec.CurrentPrice
		}
		if sec.CurrentPrice > max {
			max = sec.CurrentPrice
		}
	}
	return min, max
}
