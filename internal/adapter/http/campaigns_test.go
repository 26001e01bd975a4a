package httpadapter

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"openapp-ads/internal/adapter/usecase"
	"openapp-ads/internal/core/domain"
	"openapp-ads/internal/core/port/mocks"
)

type campaignFixture struct {
	*serveFixture
	payments *mocks.MockPaymentBridge
}

func newCampaignFixture(t *testing.T) *campaignFixture {
	campaigns := mocks.NewMockCampaignRepository(t)
	payments := mocks.NewMockPaymentBridge(t)

	svc := usecase.NewCampaignService(campaigns, payments)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(Services{Campaigns: svc}, false, logger)
	return &campaignFixture{
		serveFixture: &serveFixture{handler: h.Router(), campaigns: campaigns},
		payments:     payments,
	}
}

func TestCreateCampaignEndpoint(t *testing.T) {
	f := newCampaignFixture(t)

	f.payments.EXPECT().
		CollectFee(mock.Anything, "owner-1", mock.Anything, mock.AnythingOfType("string")).
		Return(nil)
	f.campaigns.EXPECT().
		CreateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Return(nil)

	body, _ := json.Marshal(map[string]any{
		"owner_id":      "owner-1",
		"name":          "Launch",
		"ad_type":       "interstitial",
		"media_url":     "https://cdn.example.com/a.png",
		"duration_days": 3,
	})
	rec := f.do(http.MethodPost, "/api/v1/campaigns", body, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var created domain.Campaign
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Status != domain.StatusPending {
		t.Fatalf("status %s, want pending", created.Status)
	}
	if created.TotalBudget.String() != "60" {
		t.Fatalf("total budget %s, want 60", created.TotalBudget)
	}
}

func TestCreateCampaignPaymentDeclined(t *testing.T) {
	f := newCampaignFixture(t)

	f.payments.EXPECT().
		CollectFee(mock.Anything, "owner-1", mock.Anything, mock.AnythingOfType("string")).
		Return(io.ErrUnexpectedEOF)

	body, _ := json.Marshal(map[string]any{
		"owner_id":      "owner-1",
		"name":          "Launch",
		"ad_type":       "banner",
		"media_url":     "https://cdn.example.com/a.png",
		"duration_days": 1,
	})
	rec := f.do(http.MethodPost, "/api/v1/campaigns", body, nil)
	if rec.Code != http.StatusPaymentRequired {
		t.Fatalf("status %d, want 402: %s", rec.Code, rec.Body.String())
	}
	f.campaigns.AssertNotCalled(t, "CreateCampaign", mock.Anything, mock.Anything)
}

func TestUpdateCampaignAdTypeImmutable(t *testing.T) {
	f := newCampaignFixture(t)

	body, _ := json.Marshal(map[string]any{"ad_type": "rewarded"})
	rec := f.do(http.MethodPatch, "/api/v1/campaigns/c1", body, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "ad_type") {
		t.Fatalf("body %q should name the immutable field", rec.Body.String())
	}
	f.campaigns.AssertNotCalled(t, "UpdateCampaign", mock.Anything, mock.Anything, mock.Anything)
}

func TestModerationEndpoints(t *testing.T) {
	f := newCampaignFixture(t)

	f.campaigns.EXPECT().
		GetCampaign(mock.Anything, "c1").
		Return(&domain.Campaign{ID: "c1", Status: domain.StatusPending}, nil)
	f.campaigns.EXPECT().
		SetCampaignStatus(mock.Anything, "c1", domain.StatusActive).
		Return(nil)

	rec := f.do(http.MethodPost, "/api/v1/campaigns/c1/approve", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("approve status %d, want 200: %s", rec.Code, rec.Body.String())
	}

	f.campaigns.EXPECT().
		GetCampaign(mock.Anything, "c2").
		Return(&domain.Campaign{ID: "c2", Status: domain.StatusRejected}, nil)

	rec = f.do(http.MethodPost, "/api/v1/campaigns/c2/resume", nil, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("resume of rejected status %d, want 400", rec.Code)
	}

	f.campaigns.EXPECT().GetCampaign(mock.Anything, "missing").Return(nil, nil)
	rec = f.do(http.MethodPost, "/api/v1/campaigns/missing/pause", nil, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("pause of missing status %d, want 404", rec.Code)
	}
}
