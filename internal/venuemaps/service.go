package venuemaps

import (
	"context"
	"errors"
	"log"

	"courtside/internal/charts"
	"courtside/internal/events"
	"courtside/internal/pricing"
	"courtside/internal/shared/constants"
	"courtside/pkg/cache"
	"courtside/pkg/logger"

	"github.com/google/uuid"
)

type Service interface {
	SetCacheService(cacheService cache.Service)

	// GetVenueMapForEvent resolves the event's venue map with the event's
	// stored pricing overrides applied.
	GetVenueMapForEvent(ctx context.Context, eventID string) (*VenueMapResponse, error)

	// GetVenueMap resolves a venue map by name, without event pricing.
	GetVenueMap(ctx context.Context, venueName string) (*VenueMapResponse, error)
}

type service struct {
	resolver       *charts.Resolver
	eventService   events.Service
	pricingService pricing.Service
	cacheService   cache.Service
	log            *logger.Logger
}

func NewService(resolver *charts.Resolver, eventService events.Service, pricingService pricing.Service) Service {
	return &service{
		resolver:       resolver,
		eventService:   eventService,
		pricingService: pricingService,
		log:            logger.GetDefault(),
	}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) GetVenueMapForEvent(ctx context.Context, eventID string) (*VenueMapResponse, error) {
	id, err := uuid.Parse(eventID)
	if err != nil {
		return nil, errors.New("invalid event ID")
	}

	cacheKey := constants.BuildVenueMapKey(eventID)

	if s.cacheService != nil {
		var cached VenueMapResponse
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			log.Printf("Cache HIT for venue map: %s", cacheKey)
			return &cached, nil
		}
	}

	event, err := s.eventService.GetEventByID(id)
	if err != nil {
		return nil, err
	}

	resolved, err := s.resolver.Resolve(event.Venue)
	if err != nil {
		return nil, err
	}
	if resolved == nil {
		// Event exists but carries no venue yet; nothing to render
		return nil, errors.New("event has no venue")
	}

	overrides := s.pricingService.FetchOverrides(ctx, eventID)
	sections := s.pricingService.ApplyOverrides(resolved.Sections, overrides)

	result := buildResponse(eventID, resolved.Venue, sections, resolved.IsFallback)

	if s.cacheService != nil {
		if err := s.cacheService.Set(ctx, cacheKey, result, constants.TTL_VENUE_MAP); err != nil {
			log.Printf("Warning: failed to cache venue map: %v", err)
		}
	}

	s.log.LogVenueMapResolved(ctx, resolved.Venue, len(sections), resolved.IsFallback)

	return &result, nil
}

func (s *service) GetVenueMap(ctx context.Context, venueName string) (*VenueMapResponse, error) {
	if venueName == "" {
		return nil, errors.New("venue name is required")
	}

	// Chart-only maps carry no event pricing, so they cache on the long
	// architectural TTL, keyed by normalized venue name.
	cacheKey := constants.BuildVenueChartKey(charts.NormalizeVenueName(venueName))

	if s.cacheService != nil {
		var cached VenueMapResponse
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			log.Printf("Cache HIT for venue chart: %s", cacheKey)
			return &cached, nil
		}
	}

	resolved, err := s.resolver.Resolve(venueName)
	if err != nil {
		return nil, err
	}

	result := buildResponse("", resolved.Venue, resolved.Sections, resolved.IsFallback)

	if s.cacheService != nil {
		if err := s.cacheService.Set(ctx, cacheKey, result, constants.TTL_VENUE_CHART); err != nil {
			log.Printf("Warning: failed to cache venue chart: %v", err)
		}
	}

	s.log.InfoWithContext(ctx, "Venue Chart Resolved", map[string]interface{}{
		"venue":    resolved.Venue,
		"sections": len(resolved.Sections),
		"fallback": resolved.IsFallback,
	})

	return &result, nil
}
