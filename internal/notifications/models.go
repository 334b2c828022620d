package notifications

import "time"

// PricingUpdateSource identifies what triggered a pricing update
type PricingUpdateSource string

const (
	SourceAdmin     PricingUpdateSource = "admin"
	SourceSynthesis PricingUpdateSource = "synthesis"
	SourceSeed      PricingUpdateSource = "seed"
)

// PricingUpdate is published after an override save batch so downstream
// consumers (cache warmers, search indexers) can react to price changes.
type PricingUpdate struct {
	EventID    string              `json:"event_id"`
	SectionIDs []string            `json:"section_ids"`
	Source     PricingUpdateSource `json:"source"`
	UpdatedAt  time.Time           `json:"updated_at"`
}
