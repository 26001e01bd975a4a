package usecase

import (
	"context"
	"math/rand"
	"time"

	"openapp-ads/internal/core/domain"
	"openapp-ads/internal/core/port"
)

// ServeService implements port.ServeUseCase, the logic behind the external
// serving endpoint. Each call is self-contained: no state is shared across
// requests beyond the repositories themselves.
type ServeService struct {
	campaigns port.CampaignRepository
	keys      port.APIKeyRepository
	tracking  port.TrackingUseCase
	rng       Rand
}

// NewServeService creates the serving logic. A nil rng falls back to a
// time-seeded source.
func NewServeService(campaigns port.CampaignRepository, keys port.APIKeyRepository, tracking port.TrackingUseCase, rng Rand) *ServeService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ServeService{
		campaigns: campaigns,
		keys:      keys,
		tracking:  tracking,
		rng:       &lockedRand{r: rng},
	}
}

// Authenticate resolves a key token and touches last_used_at. Unknown or
// inactive tokens yield ErrInvalidAPIKey.
func (s *ServeService) Authenticate(ctx context.Context, token string) (*domain.APIKey, error) {
	key, err := s.keys.FindActiveAPIKeyByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if key == nil {
		return nil, port.ErrInvalidAPIKey
	}
	// last_used_at is advisory; a failed touch must not fail the request.
	_ = s.keys.TouchAPIKey(ctx, key.ID)
	return key, nil
}

// PickAd selects uniformly at random among active campaigns of the given
// type. No matching inventory returns (nil, nil).
func (s *ServeService) PickAd(ctx context.Context, adType domain.AdType) (*port.ServedAd, error) {
	campaigns, err := s.campaigns.ListActiveCampaigns(ctx, &adType)
	if err != nil {
		return nil, err
	}
	if len(campaigns) == 0 {
		return nil, nil
	}
	c := campaigns[s.rng.Intn(len(campaigns))]
	return &port.ServedAd{
		ID:               c.ID,
		MediaURL:         c.MediaURL,
		MediaType:        string(c.MediaType),
		DestinationURL:   c.DestinationURL,
		Title:            c.Title,
		Description:      c.Description,
		AdType:           string(c.AdType),
		SkipAfterSeconds: c.SkipAfterSeconds,
		RewardAmount:     c.RewardAmount.InexactFloat64(),
	}, nil
}

// RecordExternalEvent records an integrator-posted event against a
// campaign, attributed to the API key identity when present.
func (s *ServeService) RecordExternalEvent(ctx context.Context, eventType domain.EventType, adID string, attr domain.Attribution) error {
	return s.tracking.RecordEvent(ctx, adID, domain.KindCampaign, eventType, attr)
}
