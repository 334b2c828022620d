package venuemaps

import (
	"testing"

	"courtside/internal/charts"
)

func TestBuildResponseCategorizesAndTotals(t *testing.T) {
	sections := []charts.SVGSection{
		{ID: "floor", Name: "Floor", TotalSeats: 360, CurrentPrice: 300, Available: true},
		{ID: "101", Name: "Section 101", TotalSeats: 480, CurrentPrice: 150, Available: true},
		{ID: "300", Name: "Section 300", TotalSeats: 600, CurrentPrice: 0, Available: false},
	}

	got := buildResponse("evt-1", "The Park", sections, true)

	if got.EventID != "evt-1" || got.Venue != "The Park" {
		t.Errorf("identity = (%q, %q), want (evt-1, The Park)", got.EventID, got.Venue)
	}
	if !got.IsFallback {
		t.Error("IsFallback = false, want true")
	}
	if got.TotalSeats != 1440 {
		t.Errorf("TotalSeats = %d, want 1440", got.TotalSeats)
	}

	// Span [0, 300]: 300 is premium, 150 standard, 0 value
	wantCategories := []string{"premium", "standard", "value"}
	for i, want := range wantCategories {
		if got.Sections[i].PriceCategory != want {
			t.Errorf("Sections[%d].PriceCategory = %q, want %q", i, got.Sections[i].PriceCategory, want)
		}
	}
}

func TestBuildResponseEmptySections(t *testing.T) {
	got := buildResponse("evt-1", "The Park", nil, false)

	if len(got.Sections) != 0 {
		t.Errorf("Sections = %+v, want empty", got.Sections)
	}
	if got.TotalSeats != 0 {
		t.Errorf("TotalSeats = %d, want 0", got.TotalSeats)
	}
}
