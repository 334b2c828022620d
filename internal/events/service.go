package events

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"courtside/internal/shared/constants"
	"courtside/pkg/cache"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	SetCacheService(cacheService cache.Service)
	CreateEvent(req CreateEventRequest) (*EventResponse, error)
	GetEventByID(id uuid.UUID) (*EventResponse, error)
	GetAllEvents(query EventListQuery) (*PaginatedEvents, error)
}

type service struct {
	repo         Repository
	cacheService cache.Service
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

// SetCacheService injects the cache service dependency
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) setCache(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if s.cacheService == nil {
		return nil
	}
	return s.cacheService.Set(ctx, key, value, ttl)
}

func (s *service) getCache(ctx context.Context, key string, dest interface{}) error {
	if s.cacheService == nil {
		return fmt.Errorf("cache service not available")
	}
	return s.cacheService.Get(ctx, key, dest)
}

func (s *service) invalidateListCache(ctx context.Context) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.DeletePattern(ctx, constants.CACHE_KEY_EVENTS_LIST+"*"); err != nil {
		log.Printf("Warning: failed to invalidate event list cache: %v", err)
	}
}

func (s *service) CreateEvent(req CreateEventRequest) (*EventResponse, error) {
	if req.MaxPrice < req.MinPrice {
		return nil, errors.New("max_price cannot be lower than min_price")
	}

	event := &Event{
		Name:        req.Name,
		Description: req.Description,
		Venue:       req.Venue,
		DateTime:    req.DateTime,
		MinPrice:    req.MinPrice,
		MaxPrice:    req.MaxPrice,
		Status:      EventStatusDraft,
		ImageURL:    req.ImageURL,
	}

	if err := s.repo.Create(event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.invalidateListCache(context.Background())

	response := event.ToResponse()
	return &response, nil
}

func (s *service) GetEventByID(id uuid.UUID) (*EventResponse, error) {
	ctx := context.Background()
	cacheKey := constants.BuildEventDetailKey(id.String())

	var cachedEvent EventResponse
	if err := s.getCache(ctx, cacheKey, &cachedEvent); err == nil {
		log.Printf("Cache HIT for event detail: %s", cacheKey)
		return &cachedEvent, nil
	}

	event, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("event not found")
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	response := event.ToResponse()

	if err := s.setCache(ctx, cacheKey, response, constants.TTL_EVENT_DETAIL); err != nil {
		log.Printf("Warning: failed to cache event detail: %v", err)
	}

	return &response, nil
}

func (s *service) GetAllEvents(query EventListQuery) (*PaginatedEvents, error) {
	ctx := context.Background()
	cacheKey := fmt.Sprintf("%s:page:%d:limit:%d:status:%s:venue:%s:search:%s",
		constants.CACHE_KEY_EVENTS_LIST, query.Page, query.Limit, query.Status, query.Venue, query.Search)

	var cachedResult PaginatedEvents
	if err := s.getCache(ctx, cacheKey, &cachedResult); err == nil {
		log.Printf("Cache HIT for event list: %s", cacheKey)
		return &cachedResult, nil
	}

	events, totalCount, err := s.repo.GetAll(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	responses := make([]EventResponse, len(events))
	for i := range events {
		responses[i] = events[i].ToResponse()
	}

	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 10
	}

	result := &PaginatedEvents{
		Events:     responses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(query.Limit))),
	}

	if err := s.setCache(ctx, cacheKey, result, constants.TTL_EVENT_LIST); err != nil {
		log.Printf("Warning: failed to cache event list: %v", err)
	}

	return result, nil
}
