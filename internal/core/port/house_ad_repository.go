package port

import (
	"context"

	"openapp-ads/internal/core/domain"
)

// HouseAdRepository is the persistence facade for app-submitted promo
// videos. GetHouseAd returns (nil, nil) when the row does not exist.
type HouseAdRepository interface {
	CreateHouseAd(ctx context.Context, ad *domain.HouseAd) error
	GetHouseAd(ctx context.Context, id string) (*domain.HouseAd, error)
	// ListActiveHouseAds returns is_active rows newest first.
	ListActiveHouseAds(ctx context.Context) ([]domain.HouseAd, error)
	ListHouseAdsByOwner(ctx context.Context, ownerID string) ([]domain.HouseAd, error)
	// SetHouseAdActive toggles the serving flag (owner or moderation).
	SetHouseAdActive(ctx context.Context, id string, active bool) error
	// DeleteHouseAd permanently removes the ad. Unknown ids are a no-op
	// success.
	DeleteHouseAd(ctx context.Context, id string) error
}
