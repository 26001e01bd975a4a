package port

import (
	"context"

	"openapp-ads/internal/core/domain"
)

// ServedAd is the wire representation of a campaign returned to external
// integrators by the serving endpoint.
type ServedAd struct {
	ID               string  `json:"id"`
	MediaURL         string  `json:"media_url"`
	MediaType        string  `json:"media_type"`
	DestinationURL   string  `json:"destination_url"`
	Title            *string `json:"title"`
	Description      *string `json:"description"`
	AdType           string  `json:"ad_type"`
	SkipAfterSeconds int     `json:"skip_after_seconds"`
	RewardAmount     float64 `json:"reward_amount"`
}

// ServeUseCase backs the external-facing serving endpoint: API key
// authentication, random pick among active campaigns of a requested type,
// and event recording attributed to the caller.
type ServeUseCase interface {
	// Authenticate resolves a supplied key token. It returns
	// ErrInvalidAPIKey when the token is unknown or inactive, and touches
	// last_used_at on success.
	Authenticate(ctx context.Context, token string) (*domain.APIKey, error)

	// PickAd selects uniformly at random among active campaigns of the
	// given type. It returns (nil, nil) when none match; absence of
	// inventory is not an error.
	PickAd(ctx context.Context, adType domain.AdType) (*ServedAd, error)

	// RecordExternalEvent validates and records an event posted by an
	// external integrator against a campaign.
	RecordExternalEvent(ctx context.Context, eventType domain.EventType, adID string, attr domain.Attribution) error
}
