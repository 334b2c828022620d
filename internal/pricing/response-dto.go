package pricing

import "time"

type OverrideResponse struct {
	SectionID    string    `json:"section_id"`
	PriceMin     float64   `json:"price_min"`
	PriceMax     float64   `json:"price_max"`
	CurrentPrice float64   `json:"current_price"`
	Available    bool      `json:"available"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type EventPricingResponse struct {
	EventID   string             `json:"event_id"`
	Overrides []OverrideResponse `json:"overrides"`
}

type SaveOverridesResponse struct {
	EventID string       `json:"event_id"`
	Results []SaveResult `json:"results"`
	Saved   int          `json:"saved"`
	Failed  int          `json:"failed"`
}

func toOverrideResponses(overrides []EventSectionPricing) []OverrideResponse {
	responses := make([]OverrideResponse, len(overrides))
	for i, o := range overrides {
		responses[i] = OverrideResponse{
			SectionID:    o.SectionID,
			PriceMin:     o.PriceMin,
			PriceMax:     o.PriceMax,
			CurrentPrice: o.CurrentPrice,
			Available:    o.Available,
			UpdatedAt:    o.UpdatedAt,
		}
	}
	return responses
}

func toSaveResponse(eventID string, results []SaveResult) SaveOverridesResponse {
	saved := 0
	for _, r := range results {
		if r.Saved {
			saved++
		}
	}
	return SaveOverridesResponse{
		EventID: eventID,
		Results: results,
		Saved:   saved,
		Failed:  len(results) - saved,
	}
}
