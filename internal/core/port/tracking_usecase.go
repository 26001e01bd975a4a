package port

import (
	"context"

	"openapp-ads/internal/core/domain"
)

// CampaignStats is the per-campaign row of an analytics summary. CTR is
// derived on read and never persisted.
type CampaignStats struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	AdType      domain.AdType         `json:"ad_type"`
	Status      domain.CampaignStatus `json:"status"`
	Impressions int64                 `json:"impressions_count"`
	Clicks      int64                 `json:"clicks_count"`
	Rewards     int64                 `json:"rewards_count"`
	CTR         string                `json:"ctr"`
}

// StatsSummary aggregates counters across campaigns for reporting.
type StatsSummary struct {
	Campaigns        []CampaignStats `json:"campaigns"`
	TotalImpressions int64           `json:"total_impressions"`
	TotalClicks      int64           `json:"total_clicks"`
	TotalRewards     int64           `json:"total_rewards"`
	CTR              string          `json:"ctr"`
	ActiveCampaigns  int             `json:"active_campaigns"`
}

// TrackingUseCase records ad lifecycle events and serves derived metrics.
type TrackingUseCase interface {
	// RecordEvent validates the kind/type pair, appends an immutable event
	// row with attribution and increments the matching counter. The two
	// writes are transactional.
	RecordEvent(ctx context.Context, adID string, kind domain.AdKind, eventType domain.EventType, attr domain.Attribution) error

	// Summary returns aggregated counters and CTR, optionally scoped to one
	// owner's campaigns.
	Summary(ctx context.Context, ownerID *string) (*StatsSummary, error)

	// RecentEvents lists recent events newest first, optionally scoped to
	// one ad id.
	RecentEvents(ctx context.Context, adID *string, limit int) ([]domain.AdEvent, error)
}
