package pricing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventSectionPricing is one event-specific price/availability override for
// a chart section. Owned by the store; created by an admin pricing action or
// by proportional synthesis, read at event-page load, never deleted by this
// service.
type EventSectionPricing struct {
	// ID is the composite key "<event_id>_<section_id>".
	ID           string    `gorm:"primaryKey;size:128" json:"id"`
	EventID      uuid.UUID `gorm:"type:uuid;not null;index" json:"event_id"`
	SectionID    string    `gorm:"not null;size:64" json:"section_id"`
	PriceMin     float64   `gorm:"not null;check:price_min >= 0" json:"price_min"`
	PriceMax     float64   `gorm:"not null;check:price_max >= 0" json:"price_max"`
	CurrentPrice float64   `gorm:"not null;check:current_price >= 0" json:"current_price"`
	Available    bool      `gorm:"not null;default:true" json:"available"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (EventSectionPricing) TableName() string {
	return "event_section_pricing"
}

// OverrideKey builds the composite primary key for an (event, section) pair.
func OverrideKey(eventID uuid.UUID, sectionID string) string {
	return fmt.Sprintf("%s_%s", eventID, sectionID)
}

// SaveResult is the per-section outcome of an override save batch. Saves are
// best-effort across the batch: one section failing does not roll back the
// others.
type SaveResult struct {
	SectionID string `json:"section_id"`
	Saved     bool   `json:"saved"`
	Error     string `json:"error,omitempty"`
}
