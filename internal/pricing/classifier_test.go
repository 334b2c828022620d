package pricing

import (
	"testing"

	"courtside/internal/charts"
)

func TestClassifyPriceBands(t *testing.T) {
	// Span [0, 300] splits into value [0,100), standard [100,200), premium [200,300]
	cases := []struct {
		price float64
		want  PriceCategory
	}{
		{0, PriceCategoryValue},
		{99, PriceCategoryValue},
		{100, PriceCategoryStandard},
		{199, PriceCategoryStandard},
		{200, PriceCategoryPremium},
		{300, PriceCategoryPremium},
	}

	for _, tc := range cases {
		if got := ClassifyPrice(tc.price, 0, 300); got != tc.want {
			t.Errorf("ClassifyPrice(%v, 0, 300) = %q, want %q", tc.price, got, tc.want)
		}
	}
}

func TestClassifyPriceOutOfRange(t *testing.T) {
	// Out-of-range prices land in the nearest extreme band
	if got := ClassifyPrice(-50, 0, 300); got != PriceCategoryValue {
		t.Errorf("ClassifyPrice(-50) = %q, want value", got)
	}
	if got := ClassifyPrice(1000, 0, 300); got != PriceCategoryPremium {
		t.Errorf("ClassifyPrice(1000) = %q, want premium", got)
	}
}

func TestClassifyPriceZeroSpan(t *testing.T) {
	// Uniform pricing collapses the span; every price at min is premium
	// because all thresholds equal min and checks use >=
	if got := ClassifyPrice(100, 100, 100); got != PriceCategoryPremium {
		t.Errorf("ClassifyPrice(100, 100, 100) = %q, want premium", got)
	}
}

func TestSectionPriceSpan(t *testing.T) {
	sections := []charts.SVGSection{
		{ID: "a", CurrentPrice: 120},
		{ID: "b", CurrentPrice: 45},
		{ID: "c", CurrentPrice: 300},
	}

	min, max := SectionPriceSpan(sections)
	if min != 45 || max != 300 {
		t.Errorf("SectionPriceSpan = (%v, %v), want (45, 300)", min, max)
	}
}

func TestSectionPriceSpanEmpty(t *testing.T) {
	min, max := SectionPriceSpan(nil)
	if min != 0 || max != 0 {
		t.Errorf("SectionPriceSpan(nil) = (%v, %v), want (0, 0)", min, max)
	}
}
