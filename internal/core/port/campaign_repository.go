package port

import (
	"context"

	"github.com/shopspring/decimal"

	"openapp-ads/internal/core/domain"
)

// CampaignPatch is a partial update of mutable campaign fields. Nil fields
// are left unchanged. AdType is deliberately absent: it is immutable after
// creation and attempts to change it are rejected before a patch is built.
type CampaignPatch struct {
	Name             *string
	MediaURL         *string
	MediaType        *domain.MediaType
	DestinationURL   *string
	Title            *string
	Description      *string
	SkipAfterSeconds *int
	RewardAmount     *decimal.Decimal
}

// CampaignRepository is the persistence facade for paid campaigns. It is an
// outbound port; no decision logic lives behind it. Methods returning a
// single campaign yield (nil, nil) when the row does not exist.
type CampaignRepository interface {
	// CreateCampaign inserts a new campaign row.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// GetCampaign returns a campaign by id, or nil when absent.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	// ListCampaigns returns campaigns newest first, optionally scoped to an
	// owner.
	ListCampaigns(ctx context.Context, ownerID *string) ([]domain.Campaign, error)
	// ListActiveCampaigns returns campaigns with status = active, optionally
	// filtered by ad type.
	ListActiveCampaigns(ctx context.Context, adType *domain.AdType) ([]domain.Campaign, error)
	// UpdateCampaign applies a partial patch and returns the updated row, or
	// nil when the campaign does not exist.
	UpdateCampaign(ctx context.Context, id string, patch CampaignPatch) (*domain.Campaign, error)
	// SetCampaignStatus overwrites the status field. It does not validate
	// the transition; that is the usecase's job.
	SetCampaignStatus(ctx context.Context, id string, status domain.CampaignStatus) error
	// DeleteCampaign removes the campaign and, via the schema's cascade, its
	// events. Deleting an unknown id is a no-op success.
	DeleteCampaign(ctx context.Context, id string) error
}
