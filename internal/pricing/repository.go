package pricing

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository interface for pricing-override store access
type Repository interface {
	GetByEventID(ctx context.Context, eventID uuid.UUID) ([]EventSectionPricing, error)
	Upsert(ctx context.Context, override *EventSectionPricing) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new pricing repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByEventID(ctx context.Context, eventID uuid.UUID) ([]EventSectionPricing, error) {
	var overrides []EventSectionPricing
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("section_id ASC").
		Find(&overrides).Error
	return overrides, err
}

func (r *repository) Upsert(ctx context.Context, override *EventSectionPricing) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"price_min", "price_max", "current_price", "available", "updated_at",
			}),
		}).
		Create(override).Error
}
