package charts

import (
	"errors"

	"courtside/pkg/logger"
)

// ErrVenueMapUnavailable is the terminal resolution failure: neither the
// requested chart nor the fallback chart produced any sections.
var ErrVenueMapUnavailable = errors.New("failed to load venue map")

// Resolver deterministically produces a usable (chart, sections) pair for a
// venue, masking missing or malformed venue-specific charts behind the
// generic fallback chart. Resolution is a pure lookup plus transform over
// immutable registry state, so concurrent calls are independent.
type Resolver struct {
	registry    *Registry
	fallbackKey string
	log         *logger.Logger
}

// NewResolver creates a resolver over the given registry. An empty
// fallbackKey selects the default fallback chart.
func NewResolver(registry *Registry, fallbackKey string) *Resolver {
	if fallbackKey == "" {
		fallbackKey = FallbackChartKey
	}
	return &Resolver{
		registry:    registry,
		fallbackKey: fallbackKey,
		log:         logger.GetDefault(),
	}
}

// Resolve looks up and parses the chart for venueName. A chart that is
// missing from the registry or parses to zero sections triggers a single
// retry against the fallback chart; if that also fails the error is
// terminal. An empty venueName means there is nothing to load: both return
// values are nil. A successful result always carries at least one section.
func (r *Resolver) Resolve(venueName string) (*ResolvedMap, error) {
	if venueName == "" {
		return nil, nil
	}

	key := NormalizeVenueName(venueName)
	if chart, sections, ok := r.attempt(key); ok {
		return &ResolvedMap{Venue: venueName, Chart: chart, Sections: sections}, nil
	}

	// Asking for the fallback chart itself and failing is terminal: there is
	// nothing left to retry against.
	if key == r.fallbackKey {
		r.log.Error("fallback chart missing or unusable", "key", key)
		return nil, ErrVenueMapUnavailable
	}

	r.log.Warn("venue chart missing or unusable, using fallback",
		"venue", venueName, "fallback", r.fallbackKey)

	if chart, sections, ok := r.attempt(r.fallbackKey); ok {
		return &ResolvedMap{Venue: venueName, Chart: chart, Sections: sections, IsFallback: true}, nil
	}

	r.log.Error("fallback chart missing or unusable", "key", r.fallbackKey)
	return nil, ErrVenueMapUnavailable
}

// attempt runs one lookup+parse pass. A zero-section parse is treated the
// same as a missing chart.
func (r *Resolver) attempt(key string) (*Chart, []SVGSection, bool) {
	chart := r.registry.Get(key)
	if chart == nil {
		return nil, nil, false
	}

	sections := ParseSections(chart.Raw)
	if len(sections) == 0 {
		return nil, nil, false
	}

	return chart, sections, true
}
