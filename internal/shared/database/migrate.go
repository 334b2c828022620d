package database

import (
	"courtside/internal/events"
	"courtside/internal/pricing"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&events.Event{},
		&pricing.EventSectionPricing{},
	)
}
