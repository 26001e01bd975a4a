package port

import (
	"context"

	"github.com/shopspring/decimal"

	"openapp-ads/internal/core/domain"
)

// CreateCampaignReq carries everything needed to create a paid campaign.
// Budgets are not part of the request: they are derived from DurationDays
// through the fixed pricing table.
type CreateCampaignReq struct {
	OwnerID          string
	AppID            *string
	Name             string
	AdType           domain.AdType
	MediaURL         string
	MediaType        domain.MediaType
	DestinationURL   string
	Title            *string
	Description      *string
	DurationDays     int
	SkipAfterSeconds *int
	RewardAmount     *decimal.Decimal
}

// CampaignUseCase is the lifecycle manager for paid campaigns: creation
// gated on payment, partial updates, moderation and owner status toggles,
// and idempotent deletion.
type CampaignUseCase interface {
	// CreateCampaign computes the budget from the pricing table, collects
	// the fee through the payment bridge and persists the campaign with
	// status pending. On payment failure nothing is persisted.
	CreateCampaign(ctx context.Context, req CreateCampaignReq) (*domain.Campaign, error)

	// UpdateCampaign applies a partial patch. Changing ad_type is rejected
	// with ErrAdTypeImmutable. Returns ErrNotFound for unknown ids.
	UpdateCampaign(ctx context.Context, id string, patch CampaignPatch) (*domain.Campaign, error)

	// DeleteCampaign permanently removes a campaign and its events.
	// Deleting a non-existent id is a no-op success.
	DeleteCampaign(ctx context.Context, id string) error

	// ApproveCampaign moves pending -> active (moderator action).
	ApproveCampaign(ctx context.Context, id string) error
	// RejectCampaign moves pending -> rejected (terminal).
	RejectCampaign(ctx context.Context, id string) error
	// PauseCampaign moves active -> paused (owner toggle).
	PauseCampaign(ctx context.Context, id string) error
	// ResumeCampaign moves paused -> active (owner toggle).
	ResumeCampaign(ctx context.Context, id string) error

	// ListCampaigns returns campaigns newest first, optionally scoped to an
	// owner.
	ListCampaigns(ctx context.Context, ownerID *string) ([]domain.Campaign, error)
}

// HouseAdUseCase manages app-submitted promotional videos.
type HouseAdUseCase interface {
	CreateHouseAd(ctx context.Context, ad *domain.HouseAd) (*domain.HouseAd, error)
	ListActiveHouseAds(ctx context.Context) ([]domain.HouseAd, error)
	ListHouseAdsByOwner(ctx context.Context, ownerID string) ([]domain.HouseAd, error)
	DeactivateHouseAd(ctx context.Context, id string) error
	DeleteHouseAd(ctx context.Context, id string) error
}

// APIKeyUseCase manages external integrator credentials.
type APIKeyUseCase interface {
	// CreateAPIKey generates a fresh secret token for the owner.
	CreateAPIKey(ctx context.Context, ownerID, appName string) (*domain.APIKey, error)
	ListAPIKeys(ctx context.Context, ownerID string) ([]domain.APIKey, error)
	DeleteAPIKey(ctx context.Context, id string) error
}
