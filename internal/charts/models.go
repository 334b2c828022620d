package charts

// Chart is one venue's seating-map document. Charts are authored offline,
// loaded once at startup, and never mutated by the running application.
type Chart struct {
	// Name is the registry key the chart was loaded under.
	Name string `json:"name"`
	// Raw is the SVG document content.
	Raw string `json:"-"`
}

// SVGSection is one purchasable seating block extracted from a chart
// document's embedded metadata. Derived, not stored: produced fresh each
// time a chart is parsed.
type SVGSection struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Role         string  `json:"role,omitempty"`
	Rows         int     `json:"rows"`
	SeatsPerRow  int     `json:"seats_per_row"`
	TotalSeats   int     `json:"total_seats"`
	PriceMin     float64 `json:"price_min"`
	PriceMax     float64 `json:"price_max"`
	CurrentPrice float64 `json:"current_price"`
	Available    bool    `json:"available"`
}

// ResolvedMap is the resolver's output: a usable chart plus its parsed
// sections, with IsFallback set when the generic chart stood in for a
// missing or unusable venue-specific one.
type ResolvedMap struct {
	Venue      string       `json:"venue"`
	Chart      *Chart       `json:"-"`
	Sections   []SVGSection `json:"sections"`
	IsFallback bool         `json:"is_fallback"`
}
