package venuemaps

import (
	"courtside/internal/charts"
	"courtside/internal/pricing"
)

type VenueSection struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Role          string  `json:"role,omitempty"`
	Rows          int     `json:"rows"`
	SeatsPerRow   int     `json:"seats_per_row"`
	TotalSeats    int     `json:"total_seats"`
	PriceMin      float64 `json:"price_min"`
	PriceMax      float64 `json:"price_max"`
	CurrentPrice  float64 `json:"current_price"`
	PriceCategory string  `json:"price_category"`
	Available     bool    `json:"available"`
}

type VenueMapResponse struct {
	EventID    string         `json:"event_id,omitempty"`
	Venue      string         `json:"venue"`
	IsFallback bool           `json:"is_fallback"`
	Sections   []VenueSection `json:"sections"`
	TotalSeats int            `json:"total_seats"`
}

// buildResponse categorizes each section's price against the map's overall
// span and totals the seat counts.
func buildResponse(eventID, venue string, sections []charts.SVGSection, isFallback bool) VenueMapResponse {
	min, max := pricing.SectionPriceSpan(sections)

	out := make([]VenueSection, len(sections))
	totalSeats := 0
	for i, sec := range sections {
		out[i] = VenueSection{
			ID:            sec.ID,
			Name:          sec.Name,
			Role:          sec.Role,
			Rows:          sec.Rows,
			SeatsPerRow:   sec.SeatsPerRow,
			TotalSeats:    sec.TotalSeats,
			PriceMin:      sec.PriceMin,
			PriceMax:      sec.PriceMax,
			CurrentPrice:  sec.CurrentPrice,
			PriceCategory: string(pricing.ClassifyPrice(sec.CurrentPrice, min, max)),
			Available:     sec.Available,
		}
		totalSeats += sec.TotalSeats
	}

	return VenueMapResponse{
		EventID:    eventID,
		Venue:      venue,
		IsFallback: isFallback,
		Sections:   out,
		TotalSeats: totalSeats,
	}
}
