package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds constraints AutoMigrate does not cover. The
// pricing table's composite key already guards uniqueness; the extra index
// speeds up the per-event override fetch on the venue-map path.
func MigrateConstraints(db *gorm.DB) error {
	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_pricing_event_section
		ON event_section_pricing (event_id, section_id);
	`).Error
	if err != nil {
		return err
	}

	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_events_venue_status
		ON events (venue, status);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
