package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"openapp-ads/internal/core/domain"
	"openapp-ads/internal/core/port"
)

// HouseAdService implements port.HouseAdUseCase. House ads are free
// inventory; there is no payment or moderation queue, only the is_active
// flag toggled by the owner or moderation.
type HouseAdService struct {
	ads port.HouseAdRepository
}

// NewHouseAdService creates the house ad manager.
func NewHouseAdService(ads port.HouseAdRepository) *HouseAdService {
	return &HouseAdService{ads: ads}
}

// CreateHouseAd persists a new promo video, active immediately.
func (s *HouseAdService) CreateHouseAd(ctx context.Context, ad *domain.HouseAd) (*domain.HouseAd, error) {
	now := time.Now().UTC()
	ad.ID = uuid.NewString()
	ad.IsActive = true
	if ad.SkipAfterSeconds <= 0 {
		ad.SkipAfterSeconds = domain.DefaultSkipAfterSeconds
	}
	ad.CreatedAt = now
	ad.UpdatedAt = now
	if err := s.ads.CreateHouseAd(ctx, ad); err != nil {
		return nil, err
	}
	return ad, nil
}

// ListActiveHouseAds returns the serving rotation.
func (s *HouseAdService) ListActiveHouseAds(ctx context.Context) ([]domain.HouseAd, error) {
	return s.ads.ListActiveHouseAds(ctx)
}

// ListHouseAdsByOwner returns all of one submitter's ads.
func (s *HouseAdService) ListHouseAdsByOwner(ctx context.Context, ownerID string) ([]domain.HouseAd, error) {
	return s.ads.ListHouseAdsByOwner(ctx, ownerID)
}

// DeactivateHouseAd pulls the ad out of rotation without deleting it.
func (s *HouseAdService) DeactivateHouseAd(ctx context.Context, id string) error {
	return s.ads.SetHouseAdActive(ctx, id, false)
}

// DeleteHouseAd hard-deletes the ad on explicit owner action.
func (s *HouseAdService) DeleteHouseAd(ctx context.Context, id string) error {
	return s.ads.DeleteHouseAd(ctx, id)
}
