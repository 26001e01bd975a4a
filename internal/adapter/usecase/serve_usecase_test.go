package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"openapp-ads/internal/core/domain"
	"openapp-ads/internal/core/port"
	"openapp-ads/internal/core/port/mocks"
)

// TestAuthenticate: a known active token resolves and bumps last_used_at;
// an unknown token is ErrInvalidAPIKey.
func TestAuthenticate(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	keys := mocks.NewMockAPIKeyRepository(t)

	keys.EXPECT().
		FindActiveAPIKeyByToken(mock.Anything, "oa_good").
		Return(&domain.APIKey{ID: "k1", Token: "oa_good", IsActive: true}, nil)
	keys.EXPECT().TouchAPIKey(mock.Anything, "k1").Return(nil)
	keys.EXPECT().FindActiveAPIKeyByToken(mock.Anything, "oa_bad").Return(nil, nil)

	svc := NewServeService(campaigns, keys, nil, &scriptRand{})

	key, err := svc.Authenticate(context.Background(), "oa_good")
	if err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	if key.ID != "k1" {
		t.Fatalf("unexpected key: %+v", key)
	}

	if _, err = svc.Authenticate(context.Background(), "oa_bad"); !errors.Is(err, port.ErrInvalidAPIKey) {
		t.Fatalf("expected ErrInvalidAPIKey, got %v", err)
	}
}

// TestPickAd maps a random active campaign onto the wire shape; an empty
// inventory is (nil, nil), not an error.
func TestPickAd(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	keys := mocks.NewMockAPIKeyRepository(t)

	rewarded := domain.AdTypeRewarded
	title := "Try it"
	campaigns.EXPECT().ListActiveCampaigns(mock.Anything, &rewarded).Return([]domain.Campaign{
		{
			ID:               "c1",
			AdType:           domain.AdTypeRewarded,
			MediaURL:         "https://cdn.example.com/a.mp4",
			MediaType:        domain.MediaTypeVideo,
			DestinationURL:   "https://example.com",
			Title:            &title,
			SkipAfterSeconds: 5,
			RewardAmount:     decimal.RequireFromString("0.25"),
		},
		{ID: "c2", AdType: domain.AdTypeRewarded},
	}, nil)

	svc := NewServeService(campaigns, keys, nil, &scriptRand{ints: []int{0}})
	ad, err := svc.PickAd(context.Background(), domain.AdTypeRewarded)
	if err != nil {
		t.Fatalf("PickAd error: %v", err)
	}
	if ad.ID != "c1" || ad.AdType != "rewarded" || ad.MediaType != "video" {
		t.Fatalf("unexpected ad: %+v", ad)
	}
	if ad.RewardAmount != 0.25 {
		t.Fatalf("reward %v, want 0.25", ad.RewardAmount)
	}

	banner := domain.AdTypeBanner
	campaigns.EXPECT().ListActiveCampaigns(mock.Anything, &banner).Return(nil, nil)
	ad, err = svc.PickAd(context.Background(), domain.AdTypeBanner)
	if err != nil {
		t.Fatalf("PickAd error on empty inventory: %v", err)
	}
	if ad != nil {
		t.Fatalf("expected nil ad, got %+v", ad)
	}
}

// TestCreateAPIKeyToken verifies generated credentials carry the oa_ prefix
// and persist active.
func TestCreateAPIKeyToken(t *testing.T) {
	keys := mocks.NewMockAPIKeyRepository(t)

	var created *domain.APIKey
	keys.EXPECT().
		CreateAPIKey(mock.Anything, mock.AnythingOfType("*domain.APIKey")).
		Run(func(ctx context.Context, key *domain.APIKey) { created = key }).
		Return(nil)

	svc := NewAPIKeyService(keys)
	key, err := svc.CreateAPIKey(context.Background(), "owner-1", "My App")
	if err != nil {
		t.Fatalf("CreateAPIKey error: %v", err)
	}
	if created == nil || created.ID != key.ID {
		t.Fatal("key was not persisted")
	}
	if !strings.HasPrefix(key.Token, "oa_") || len(key.Token) < 20 {
		t.Fatalf("unexpected token %q", key.Token)
	}
	if !key.IsActive {
		t.Fatal("new keys must start active")
	}
}
