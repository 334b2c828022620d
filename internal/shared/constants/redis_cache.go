package constants

import (
	"fmt"
	"time"
)

// Redis cache keys and TTL values for the Courtside application.
// Pattern: courtside:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

const (
	TTL_STATIC_MEDIUM = 12 * time.Hour // architectural data (chart metadata)

	TTL_SEMI_STATIC_LONG   = 4 * time.Hour // resolved venue maps
	TTL_SEMI_STATIC_MEDIUM = 2 * time.Hour // event details
	TTL_SEMI_STATIC_SHORT  = 1 * time.Hour // event listings

	TTL_DYNAMIC_SHORT = 5 * time.Minute // section availability
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "courtside"
)

// ================== EVENTS MODULE ==================

const (
	CACHE_KEY_EVENTS_LIST  = CACHE_PREFIX + ":events:list"        // + :page:X:limit:Y:status:Z:venue:V
	CACHE_KEY_EVENT_DETAIL = CACHE_PREFIX + ":events:detail:uuid:" // + event-id
)

const (
	TTL_EVENT_LIST   = TTL_SEMI_STATIC_SHORT
	TTL_EVENT_DETAIL = TTL_SEMI_STATIC_MEDIUM
)

// ================== VENUE MAPS MODULE ==================

const (
	// Resolved venue map (sections + applied pricing + categories) per event
	CACHE_KEY_VENUE_MAP = CACHE_PREFIX + ":venuemaps:resolved:event:" // + event-id

	// Chart-only venue map (no event pricing), keyed by normalized venue name
	CACHE_KEY_VENUE_CHART = CACHE_PREFIX + ":venuemaps:chart:venue:" // + venue-name
)

const (
	TTL_VENUE_MAP   = TTL_SEMI_STATIC_LONG
	TTL_VENUE_CHART = TTL_STATIC_MEDIUM
)

// ================== PRICING MODULE ==================

const (
	CACHE_KEY_EVENT_PRICING = CACHE_PREFIX + ":pricing:overrides:event:" // + event-id
)

const (
	TTL_EVENT_PRICING = TTL_DYNAMIC_SHORT
)

// ================== KEY BUILDERS ==================

// BuildVenueMapKey builds the cache key for a resolved venue map
func BuildVenueMapKey(eventID string) string {
	return fmt.Sprintf("%s%s", CACHE_KEY_VENUE_MAP, eventID)
}

// BuildEventPricingKey builds the cache key for an event's pricing overrides
func BuildEventPricingKey(eventID string) string {
	return fmt.Sprintf("%s%s", CACHE_KEY_EVENT_PRICING, eventID)
}

// BuildEventDetailKey builds the cache key for a single event detail
func BuildEventDetailKey(eventID string) string {
	return fmt.Sprintf("%s%s", CACHE_KEY_EVENT_DETAIL, eventID)
}

// BuildVenueChartKey builds the cache key for a chart-only venue map. Callers
// pass the normalized venue name so aliases share one entry.
func BuildVenueChartKey(venueName string) string {
	return fmt.Sprintf("%s%s", CACHE_KEY_VENUE_CHART, venueName)
}

// PATTERN_INVALIDATE_VENUE_MAPS matches every cached resolved venue map
const PATTERN_INVALIDATE_VENUE_MAPS = CACHE_KEY_VENUE_MAP + "*"
