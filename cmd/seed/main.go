package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"courtside/assets"
	"courtside/internal/charts"
	"courtside/internal/events"
	"courtside/internal/pricing"
	"courtside/internal/shared/config"
	"courtside/internal/shared/constants"
	"courtside/internal/shared/database"
	"courtside/pkg/cache"
)

type Seeder struct {
	db             *database.DB
	eventService   events.Service
	pricingService pricing.Service
	cacheService   cache.Service
}

func main() {
	fmt.Println("🌱 Starting Courtside Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	registry, err := charts.NewRegistry(assets.ChartsFS())
	if err != nil {
		log.Fatalf("Failed to load seating charts: %v", err)
	}
	resolver := charts.NewResolver(registry, cfg.Charts.FallbackKey)

	eventRepo := events.NewRepository(db.GetPostgreSQL())
	eventService := events.NewService(eventRepo)

	pricingRepo := pricing.NewRepository(db.GetPostgreSQL())
	pricingService := pricing.NewService(pricingRepo, resolver, eventService)

	seeder := &Seeder{
		db:             db,
		eventService:   eventService,
		pricingService: pricingService,
		cacheService:   cache.NewService(db.GetRedis()),
	}

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in the correct order
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"event_section_pricing",
		"events",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	// Cached resolved maps embed pricing rows that were just truncated
	if err := s.cacheService.DeletePattern(context.Background(), constants.PATTERN_INVALIDATE_VENUE_MAPS); err != nil {
		fmt.Printf("  Warning: failed to flush cached venue maps: %v\n", err)
	}

	return nil
}

// SeedAll seeds one demo event per bundled venue chart and synthesizes
// section pricing for each from the event's price range.
func (s *Seeder) SeedAll() error {
	demoEvents := []events.CreateEventRequest{
		{
			Name:        "Knicks vs Celtics",
			Description: "Regular season matchup at the Garden.",
			Venue:       "Madison Square Garden",
			DateTime:    time.Now().AddDate(0, 1, 0),
			MinPrice:    85,
			MaxPrice:    950,
		},
		{
			Name:        "Nets vs Bucks",
			Description: "Divisional game in Brooklyn.",
			Venue:       "Barclays Center",
			DateTime:    time.Now().AddDate(0, 1, 7),
			MinPrice:    60,
			MaxPrice:    600,
		},
		{
			Name:        "Sunset Acoustic Sessions",
			Description: "Open-air evening concert series.",
			Venue:       "Red Rocks Amphitheatre",
			DateTime:    time.Now().AddDate(0, 2, 0),
			MinPrice:    45,
			MaxPrice:    180,
		},
		{
			Name:        "Indie Rock Night",
			Description: "Touring double bill on the riverfront.",
			Venue:       "The Anthem",
			DateTime:    time.Now().AddDate(0, 2, 14),
			MinPrice:    35,
			MaxPrice:    120,
		},
	}

	ctx := context.Background()

	for _, req := range demoEvents {
		created, err := s.eventService.CreateEvent(req)
		if err != nil {
			return fmt.Errorf("failed to create event %q: %w", req.Name, err)
		}
		fmt.Printf("  Created event: %s (%s)\n", created.Name, created.ID)

		results, err := s.pricingService.SynthesizeForEvent(ctx, created.ID, pricing.SynthesizeRequest{})
		if err != nil {
			return fmt.Errorf("failed to synthesize pricing for %q: %w", req.Name, err)
		}
		fmt.Printf("    Synthesized pricing for %d sections\n", len(results))
	}

	return nil
}
