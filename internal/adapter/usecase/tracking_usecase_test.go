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

// TestRecordEventDefaults verifies each event lands in the transactional
// append with attribution defaults filled in.
func TestRecordEventDefaults(t *testing.T) {
	events := mocks.NewMockEventRepository(t)
	campaigns := mocks.NewMockCampaignRepository(t)

	var appended []*domain.AdEvent
	events.EXPECT().
		AppendEventAndIncrement(mock.Anything, mock.AnythingOfType("*domain.AdEvent")).
		Run(func(ctx context.Context, ev *domain.AdEvent) { appended = append(appended, ev) }).
		Return(nil)

	svc := NewTrackingService(events, campaigns)
	for i := 0; i < 3; i++ {
		err := svc.RecordEvent(context.Background(), "c1", domain.KindCampaign, domain.EventImpression, domain.Attribution{})
		if err != nil {
			t.Fatalf("RecordEvent error: %v", err)
		}
	}

	if len(appended) != 3 {
		t.Fatalf("expected 3 appends, got %d", len(appended))
	}
	ev := appended[0]
	if ev.AdID != "c1" || ev.AdKind != domain.KindCampaign || ev.EventType != domain.EventImpression {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if ev.IPAddress != "unknown" || ev.UserAgent != "unknown" {
		t.Fatalf("attribution defaults not applied: %q %q", ev.IPAddress, ev.UserAgent)
	}
	if ev.Metadata == nil {
		t.Fatal("metadata should default to an empty map")
	}
}

// TestRecordEventHouseRewardRejected: house ads have no reward concept.
func TestRecordEventHouseRewardRejected(t *testing.T) {
	events := mocks.NewMockEventRepository(t)
	campaigns := mocks.NewMockCampaignRepository(t)

	svc := NewTrackingService(events, campaigns)
	err := svc.RecordEvent(context.Background(), "h1", domain.KindHouse, domain.EventRewardComplete, domain.Attribution{})
	if !errors.Is(err, port.ErrEventNotAllowed) {
		t.Fatalf("expected ErrEventNotAllowed, got %v", err)
	}
	events.AssertNotCalled(t, "AppendEventAndIncrement", mock.Anything, mock.Anything)
}

// TestRecordEventInvalidType rejects unknown event names before any write.
func TestRecordEventInvalidType(t *testing.T) {
	events := mocks.NewMockEventRepository(t)
	campaigns := mocks.NewMockCampaignRepository(t)

	svc := NewTrackingService(events, campaigns)
	if err := svc.RecordEvent(context.Background(), "c1", domain.KindCampaign, "viewed", domain.Attribution{}); err == nil {
		t.Fatal("expected error for unknown event type")
	}
}

// TestCTRFormat pins the derived metric format.
func TestCTRFormat(t *testing.T) {
	cases := []struct {
		clicks, impressions int64
		want                string
	}{
		{0, 0, "0.00"},
		{5, 0, "0.00"},
		{3, 200, "1.50"},
		{1, 3, "33.33"},
		{10, 10, "100.00"},
	}
	for _, tc := range cases {
		if got := CTR(tc.clicks, tc.impressions); got != tc.want {
			t.Fatalf("CTR(%d, %d) = %q, want %q", tc.clicks, tc.impressions, got, tc.want)
		}
	}
}

// TestSummary verifies aggregation over per-campaign counters.
func TestSummary(t *testing.T) {
	events := mocks.NewMockEventRepository(t)
	campaigns := mocks.NewMockCampaignRepository(t)

	campaigns.EXPECT().ListCampaigns(mock.Anything, (*string)(nil)).Return([]domain.Campaign{
		{ID: "c1", Status: domain.StatusActive, ImpressionsCount: 200, ClicksCount: 3, RewardsCount: 1},
		{ID: "c2", Status: domain.StatusPaused, ImpressionsCount: 100, ClicksCount: 6},
	}, nil)

	svc := NewTrackingService(events, campaigns)
	sum, err := svc.Summary(context.Background(), nil)
	if err != nil {
		t.Fatalf("Summary error: %v", err)
	}
	if sum.TotalImpressions != 300 || sum.TotalClicks != 9 || sum.TotalRewards != 1 {
		t.Fatalf("unexpected totals: %+v", sum)
	}
	if sum.ActiveCampaigns != 1 {
		t.Fatalf("active campaigns %d, want 1", sum.ActiveCampaigns)
	}
	if sum.CTR != "3.00" {
		t.Fatalf("overall CTR %q, want 3.00", sum.CTR)
	}
	if sum.Campaigns[0].CTR != "1.50" || sum.Campaigns[1].CTR != "6.00" {
		t.Fatalf("per-campaign CTR wrong: %+v", sum.Campaigns)
	}
}
