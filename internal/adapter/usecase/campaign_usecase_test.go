package usecase

import (
	"context"
	"errors"
	"testing"

	"openapp-ads/internal/core/domain"
	"openapp-ads/internal/core/port"
	"openapp-ads/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

// TestComputeBudget pins the pricing table: total = 10 base + duration fee,
// daily = total / days rounded to two decimals.
func TestComputeBudget(t *testing.T) {
	cases := []struct {
		days  int
		total string
		daily string
	}{
		{1, "20", "20"},
		{2, "30", "15"},
		{3, "60", "20"},
	}
	for _, tc := range cases {
		total, daily, err := ComputeBudget(tc.days)
		if err != nil {
			t.Fatalf("ComputeBudget(%d) error: %v", tc.days, err)
		}
		if total.String() != tc.total {
			t.Fatalf("days=%d: total %s, want %s", tc.days, total, tc.total)
		}
		if daily.String() != tc.daily {
			t.Fatalf("days=%d: daily %s, want %s", tc.days, daily, tc.daily)
		}
	}

	if _, _, err := ComputeBudget(7); err == nil {
		t.Fatal("expected error for unsupported duration")
	}
}

// TestCreateCampaignDefaults verifies a created campaign starts pending with
// the derived budget, the default skip delay and a normalized destination.
func TestCreateCampaignDefaults(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	payments := mocks.NewMockPaymentBridge(t)

	payments.EXPECT().
		CollectFee(mock.Anything, "owner-1", mock.Anything, mock.AnythingOfType("string")).
		Return(nil)

	var created *domain.Campaign
	repo.EXPECT().
		CreateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Run(func(ctx context.Context, c *domain.Campaign) { created = c }).
		Return(nil)

	svc := NewCampaignService(repo, payments)
	c, err := svc.CreateCampaign(context.Background(), port.CreateCampaignReq{
		OwnerID:        "owner-1",
		Name:           "Launch",
		AdType:         domain.AdTypeInterstitial,
		MediaURL:       "https://cdn.example.com/launch.png",
		DestinationURL: "example.com/install",
		DurationDays:   2,
	})
	if err != nil {
		t.Fatalf("CreateCampaign error: %v", err)
	}
	if created == nil || created.ID != c.ID {
		t.Fatal("campaign was not persisted")
	}
	if c.Status != domain.StatusPending {
		t.Fatalf("status %s, want pending", c.Status)
	}
	if c.TotalBudget.String() != "30" || c.DailyBudget.String() != "15" {
		t.Fatalf("budget %s/%s, want 30/15", c.TotalBudget, c.DailyBudget)
	}
	if c.SkipAfterSeconds != domain.DefaultSkipAfterSeconds {
		t.Fatalf("skip delay %d, want %d", c.SkipAfterSeconds, domain.DefaultSkipAfterSeconds)
	}
	if c.MediaType != domain.MediaTypeImage {
		t.Fatalf("media type %s, want image", c.MediaType)
	}
	if c.DestinationURL != "https://example.com/install" {
		t.Fatalf("destination %q not normalized", c.DestinationURL)
	}
	if !c.RewardAmount.IsZero() {
		t.Fatalf("reward %s for non-rewarded campaign, want 0", c.RewardAmount)
	}
}

// TestCreateCampaignPaymentFailure verifies nothing is persisted when the
// fee is not confirmed.
func TestCreateCampaignPaymentFailure(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	payments := mocks.NewMockPaymentBridge(t)

	payments.EXPECT().
		CollectFee(mock.Anything, "owner-1", mock.Anything, mock.AnythingOfType("string")).
		Return(errors.New("declined"))

	svc := NewCampaignService(repo, payments)
	_, err := svc.CreateCampaign(context.Background(), port.CreateCampaignReq{
		OwnerID:      "owner-1",
		Name:         "Launch",
		AdType:       domain.AdTypeBanner,
		MediaURL:     "https://cdn.example.com/launch.png",
		DurationDays: 1,
	})
	if !errors.Is(err, port.ErrPaymentRequired) {
		t.Fatalf("expected ErrPaymentRequired, got %v", err)
	}
	repo.AssertNotCalled(t, "CreateCampaign", mock.Anything, mock.Anything)
}

// TestStatusTransitions walks the lifecycle graph through the service.
func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		name    string
		current domain.CampaignStatus
		op      func(svc *CampaignService, ctx context.Context, id string) error
		next    domain.CampaignStatus
		ok      bool
	}{
		{"approve pending", domain.StatusPending, (*CampaignService).ApproveCampaign, domain.StatusActive, true},
		{"reject pending", domain.StatusPending, (*CampaignService).RejectCampaign, domain.StatusRejected, true},
		{"pause active", domain.StatusActive, (*CampaignService).PauseCampaign, domain.StatusPaused, true},
		{"resume paused", domain.StatusPaused, (*CampaignService).ResumeCampaign, domain.StatusActive, true},
		{"approve active", domain.StatusActive, (*CampaignService).ApproveCampaign, domain.StatusActive, false},
		{"pause pending", domain.StatusPending, (*CampaignService).PauseCampaign, domain.StatusPaused, false},
		{"approve rejected", domain.StatusRejected, (*CampaignService).ApproveCampaign, domain.StatusActive, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockCampaignRepository(t)
			payments := mocks.NewMockPaymentBridge(t)

			repo.EXPECT().
				GetCampaign(mock.Anything, "c1").
				Return(&domain.Campaign{ID: "c1", Status: tc.current}, nil)
			if tc.ok {
				repo.EXPECT().SetCampaignStatus(mock.Anything, "c1", tc.next).Return(nil)
			}

			svc := NewCampaignService(repo, payments)
			err := tc.op(svc, context.Background(), "c1")
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && !errors.Is(err, port.ErrInvalidTransition) {
				t.Fatalf("expected ErrInvalidTransition, got %v", err)
			}
		})
	}
}

// TestTransitionUnknownCampaign verifies moderation of a missing id.
func TestTransitionUnknownCampaign(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	payments := mocks.NewMockPaymentBridge(t)

	repo.EXPECT().GetCampaign(mock.Anything, "missing").Return(nil, nil)

	svc := NewCampaignService(repo, payments)
	if err := svc.ApproveCampaign(context.Background(), "missing"); !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// TestUpdateCampaignNormalizesDestination verifies the patch path applies
// the same URL normalization as creation and maps a missing row onto
// ErrNotFound.
func TestUpdateCampaignNormalizesDestination(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	payments := mocks.NewMockPaymentBridge(t)

	dest := "promo.example.com"
	normalized := "https://promo.example.com"
	repo.EXPECT().
		UpdateCampaign(mock.Anything, "c1", port.CampaignPatch{DestinationURL: &normalized}).
		Return(&domain.Campaign{ID: "c1", DestinationURL: normalized}, nil)

	svc := NewCampaignService(repo, payments)
	c, err := svc.UpdateCampaign(context.Background(), "c1", port.CampaignPatch{DestinationURL: &dest})
	if err != nil {
		t.Fatalf("UpdateCampaign error: %v", err)
	}
	if c.DestinationURL != normalized {
		t.Fatalf("destination %q, want %q", c.DestinationURL, normalized)
	}

	repo.EXPECT().UpdateCampaign(mock.Anything, "missing", port.CampaignPatch{}).Return(nil, nil)
	if _, err = svc.UpdateCampaign(context.Background(), "missing", port.CampaignPatch{}); !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
