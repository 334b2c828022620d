package pricing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"courtside/internal/charts"
	"courtside/internal/events"
	"courtside/internal/notifications"
	"courtside/internal/shared/constants"
	"courtside/pkg/cache"
	"courtside/pkg/logger"

	"github.com/google/uuid"
)

type Service interface {
	SetCacheService(cacheService cache.Service)
	SetProducer(producer notifications.Producer)

	// FetchOverrides loads all stored overrides for an event, keyed by
	// section ID. Store failures degrade to an empty map, never an error.
	FetchOverrides(ctx context.Context, eventID string) map[string]EventSectionPricing

	// ApplyOverrides overlays stored overrides onto parsed chart sections.
	ApplyOverrides(sections []charts.SVGSection, overrides map[string]EventSectionPricing) []charts.SVGSection

	// SynthesizeFromEventRange remaps each section's chart prices into the
	// event's price range, proportionally by position within the chart span.
	SynthesizeFromEventRange(eventID uuid.UUID, sections []charts.SVGSection, eventMin, eventMax float64) []EventSectionPricing

	// SaveOverrides persists a batch of overrides concurrently, one row per
	// section, and reports the per-section outcome.
	SaveOverrides(ctx context.Context, eventID uuid.UUID, overrides []EventSectionPricing, source notifications.PricingUpdateSource) ([]SaveResult, error)

	// SynthesizeForEvent resolves the event's venue map, synthesizes
	// overrides from the event's price range, and saves them.
	SynthesizeForEvent(ctx context.Context, eventID string, req SynthesizeRequest) ([]SaveResult, error)

	// GetEventPricing returns the stored overrides for an event.
	GetEventPricing(ctx context.Context, eventID string) ([]EventSectionPricing, error)

	// SaveOverridesFromRequest validates and persists admin-supplied
	// overrides for an event.
	SaveOverridesFromRequest(ctx context.Context, eventID string, req SaveOverridesRequest) ([]SaveResult, error)
}

type service struct {
	repo         Repository
	resolver     *charts.Resolver
	eventService events.Service
	cacheService cache.Service
	producer     notifications.Producer
	log          *logger.Logger
}

func NewService(repo Repository, resolver *charts.Resolver, eventService events.Service) Service {
	return &service{
		repo:         repo,
		resolver:     resolver,
		eventService: eventService,
		log:          logger.GetDefault(),
	}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

// SetProducer injects the Kafka producer. Publishing stays disabled when it
// is never set.
func (s *service) SetProducer(producer notifications.Producer) {
	s.producer = producer
}

func (s *service) FetchOverrides(ctx context.Context, eventID string) map[string]EventSectionPricing {
	id, err := uuid.Parse(eventID)
	if err != nil {
		log.Printf("Warning: invalid event ID for pricing fetch: %s", eventID)
		return map[string]EventSectionPricing{}
	}

	cacheKey := constants.BuildEventPricingKey(eventID)

	if s.cacheService != nil {
		var cached map[string]EventSectionPricing
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			log.Printf("Cache HIT for event pricing: %s", cacheKey)
			return cached
		}
	}

	overrides, err := s.repo.GetByEventID(ctx, id)
	if err != nil {
		// Pricing is an overlay: when the store is unreachable the caller
		// still gets a usable map from the chart defaults.
		log.Printf("Warning: failed to fetch pricing overrides for event %s: %v", eventID, err)
		return map[string]EventSectionPricing{}
	}

	bySection := make(map[string]EventSectionPricing, len(overrides))
	for _, o := range overrides {
		bySection[o.SectionID] = o
	}

	if s.cacheService != nil && len(bySection) > 0 {
		if err := s.cacheService.Set(ctx, cacheKey, bySection, constants.TTL_EVENT_PRICING); err != nil {
			log.Printf("Warning: failed to cache event pricing: %v", err)
		}
	}

	return bySection
}

func (s *service) ApplyOverrides(sections []charts.SVGSection, overrides map[string]EventSectionPricing) []charts.SVGSection {
	if len(overrides) == 0 {
		return sections
	}

	merged := make([]charts.SVGSection, len(sections))
	copy(merged, sections)

	for i := range merged {
		override, ok := overrides[merged[i].ID]
		if !ok {
			continue
		}
		merged[i].PriceMin = override.PriceMin
		merged[i].PriceMax = override.PriceMax
		merged[i].CurrentPrice = override.CurrentPrice
		merged[i].Available = override.Available
	}

	return merged
}

func (s *service) SynthesizeFromEventRange(eventID uuid.UUID, sections []charts.SVGSection, eventMin, eventMax float64) []EventSectionPricing {
	if len(sections) == 0 {
		return nil
	}

	svgMin, svgMax := sections[0].PriceMin, sections[0].PriceMax
	for _, sec := range sections[1:] {
		if sec.PriceMin < svgMin {
			svgMin = sec.PriceMin
		}
		if sec.PriceMax > svgMax {
			svgMax = sec.PriceMax
		}
	}

	svgSpan := svgMax - svgMin
	if svgSpan < 1 {
		svgSpan = 1
	}
	eventSpan := eventMax - eventMin
	if eventSpan < 1 {
		eventSpan = 1
	}

	remap := func(price float64) float64 {
		ratio := (price - svgMin) / svgSpan
		return math.Round(eventMin + ratio*eventSpan)
	}

	overrides := make([]EventSectionPricing, len(sections))
	for i, sec := range sections {
		overrides[i] = EventSectionPricing{
			ID:           OverrideKey(eventID, sec.ID),
			EventID:      eventID,
			SectionID:    sec.ID,
			PriceMin:     remap(sec.PriceMin),
			PriceMax:     remap(sec.PriceMax),
			CurrentPrice: remap(sec.CurrentPrice),
			Available:    sec.Available,
		}
	}

	return overrides
}

func (s *service) SaveOverrides(ctx context.Context, eventID uuid.UUID, overrides []EventSectionPricing, source notifications.PricingUpdateSource) ([]SaveResult, error) {
	if len(overrides) == 0 {
		return nil, errors.New("no overrides to save")
	}

	results := make([]SaveResult, len(overrides))

	var wg sync.WaitGroup
	for i := range overrides {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			override := overrides[i]
			override.UpdatedAt = time.Now().UTC()

			if err := s.repo.Upsert(ctx, &override); err != nil {
				results[i] = SaveResult{SectionID: override.SectionID, Saved: false, Error: err.Error()}
				return
			}
			results[i] = SaveResult{SectionID: override.SectionID, Saved: true}
		}(i)
	}
	wg.Wait()

	saved := 0
	savedSections := make([]string, 0, len(results))
	for _, res := range results {
		if res.Saved {
			saved++
			savedSections = append(savedSections, res.SectionID)
		}
	}
	failed := len(results) - saved

	s.invalidatePricingCache(ctx, eventID.String())
	s.publishUpdate(ctx, eventID.String(), savedSections, source)
	s.log.LogPricingSaved(ctx, eventID.String(), saved, failed)

	if failed > 0 {
		return results, fmt.Errorf("failed to save %d of %d overrides", failed, len(results))
	}

	return results, nil
}

func (s *service) SynthesizeForEvent(ctx context.Context, eventID string, req SynthesizeRequest) ([]SaveResult, error) {
	id, err := uuid.Parse(eventID)
	if err != nil {
		return nil, errors.New("invalid event ID")
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
		return nil, errors.New("event has no venue")
	}

	eventMin, eventMax := event.MinPrice, event.MaxPrice
	if req.MinPrice != nil {
		eventMin = *req.MinPrice
	}
	if req.MaxPrice != nil {
		eventMax = *req.MaxPrice
	}

	overrides := s.SynthesizeFromEventRange(id, resolved.Sections, eventMin, eventMax)
	return s.SaveOverrides(ctx, id, overrides, notifications.SourceSynthesis)
}

func (s *service) GetEventPricing(ctx context.Context, eventID string) ([]EventSectionPricing, error) {
	id, err := uuid.Parse(eventID)
	if err != nil {
		return nil, errors.New("invalid event ID")
	}

	overrides, err := s.repo.GetByEventID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get event pricing: %w", err)
	}

	return overrides, nil
}

func (s *service) SaveOverridesFromRequest(ctx context.Context, eventID string, req SaveOverridesRequest) ([]SaveResult, error) {
	id, err := uuid.Parse(eventID)
	if err != nil {
		return nil, errors.New("invalid event ID")
	}

	// Confirm the event exists before writing pricing rows for it
	if _, err := s.eventService.GetEventByID(id); err != nil {
		return nil, err
	}

	overrides := make([]EventSectionPricing, len(req.Overrides))
	for i, in := range req.Overrides {
		overrides[i] = EventSectionPricing{
			ID:           OverrideKey(id, in.SectionID),
			EventID:      id,
			SectionID:    in.SectionID,
			PriceMin:     in.PriceMin,
			PriceMax:     in.PriceMax,
			CurrentPrice: in.CurrentPrice,
			Available:    in.Available == nil || *in.Available,
		}
	}

	return s.SaveOverrides(ctx, id, overrides, notifications.SourceAdmin)
}

func (s *service) invalidatePricingCache(ctx context.Context, eventID string) {
	if s.cacheService == nil {
		return
	}

	keys := []string{
		constants.BuildEventPricingKey(eventID),
		constants.BuildVenueMapKey(eventID),
	}
	if err := s.cacheService.Delete(ctx, keys...); err != nil {
		s.log.WarnWithContext(ctx, "Failed to invalidate pricing cache", map[string]interface{}{
			"event_id": eventID,
			"error":    err.Error(),
		})
	}
}

func (s *service) publishUpdate(ctx context.Context, eventID string, sectionIDs []string, source notifications.PricingUpdateSource) {
	if s.producer == nil || len(sectionIDs) == 0 {
		return
	}

	update := &notifications.PricingUpdate{
		EventID:    eventID,
		SectionIDs: sectionIDs,
		Source:     source,
		UpdatedAt:  time.Now().UTC(),
	}
	if err := s.producer.PublishPricingUpdate(ctx, update); err != nil {
		s.log.ErrorWithContext(ctx, "Failed to publish pricing update", err, map[string]interface{}{
			"event_id": eventID,
			"sections": len(sectionIDs),
		})
	}
}
