package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"openapp-ads/internal/adapter/usecase"
	"openapp-ads/internal/core/domain"
	"openapp-ads/internal/core/port/mocks"
)

type serveFixture struct {
	handler   http.Handler
	campaigns *mocks.MockCampaignRepository
	keys      *mocks.MockAPIKeyRepository
	events    *mocks.MockEventRepository
}

func newServeFixture(t *testing.T, requireAPIKey bool) *serveFixture {
	campaigns := mocks.NewMockCampaignRepository(t)
	keys := mocks.NewMockAPIKeyRepository(t)
	events := mocks.NewMockEventRepository(t)

	tracking := usecase.NewTrackingService(events, campaigns)
	serve := usecase.NewServeService(campaigns, keys, tracking, nil)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(Services{Tracking: tracking, Serve: serve}, requireAPIKey, logger)
	return &serveFixture{handler: h.Router(), campaigns: campaigns, keys: keys, events: events}
}

func (f *serveFixture) do(method, target string, body []byte, header map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func TestNewHandlerServeOnlyServices(t *testing.T) {
	// Serving deployments wire only part of Services; building the router
	// must not touch the usecases that were left out.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(Services{}, false, logger)

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/servead", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
}

func TestServeAdPreflight(t *testing.T) {
	f := newServeFixture(t, false)

	rec := f.do(http.MethodOptions, "/servead", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Fatalf("body %q, want ok", rec.Body.String())
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("allow-origin %q, want *", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(got, "x-api-key") {
		t.Fatalf("allow-headers %q must include x-api-key", got)
	}
}

func TestServeAdGetDefaultsToBanner(t *testing.T) {
	f := newServeFixture(t, false)

	banner := domain.AdTypeBanner
	f.campaigns.EXPECT().ListActiveCampaigns(mock.Anything, &banner).Return([]domain.Campaign{
		{ID: "c1", AdType: domain.AdTypeBanner, MediaURL: "https://cdn.example.com/b.png", MediaType: domain.MediaTypeImage},
	}, nil)

	rec := f.do(http.MethodGet, "/servead", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Ad *struct {
			ID     string `json:"id"`
			AdType string `json:"ad_type"`
		} `json:"ad"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Ad == nil || resp.Ad.ID != "c1" || resp.Ad.AdType != "banner" {
		t.Fatalf("unexpected response: %s", rec.Body.String())
	}
}

func TestServeAdGetNoInventory(t *testing.T) {
	f := newServeFixture(t, false)

	rewarded := domain.AdTypeRewarded
	f.campaigns.EXPECT().ListActiveCampaigns(mock.Anything, &rewarded).Return(nil, nil)

	rec := f.do(http.MethodGet, "/servead?type=rewarded", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}

	var resp struct {
		Ad      *json.RawMessage `json:"ad"`
		Message string           `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Ad != nil && string(*resp.Ad) != "null" {
		t.Fatalf("expected null ad, got %s", rec.Body.String())
	}
	if resp.Message != "No ads available" {
		t.Fatalf("message %q, want %q", resp.Message, "No ads available")
	}
}

func TestServeAdInvalidAPIKey(t *testing.T) {
	f := newServeFixture(t, false)

	f.keys.EXPECT().FindActiveAPIKeyByToken(mock.Anything, "oa_revoked").Return(nil, nil)

	rec := f.do(http.MethodGet, "/servead", nil, map[string]string{"x-api-key": "oa_revoked"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid API key") {
		t.Fatalf("body %q, want invalid key error", rec.Body.String())
	}
}

func TestServeAdMissingKeyWhenRequired(t *testing.T) {
	f := newServeFixture(t, true)

	rec := f.do(http.MethodGet, "/servead", nil, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", rec.Code)
	}
}

func TestServeAdPostEvent(t *testing.T) {
	f := newServeFixture(t, false)

	f.keys.EXPECT().
		FindActiveAPIKeyByToken(mock.Anything, "oa_good").
		Return(&domain.APIKey{ID: "k1", IsActive: true}, nil)
	f.keys.EXPECT().TouchAPIKey(mock.Anything, "k1").Return(nil)

	var recorded *domain.AdEvent
	f.events.EXPECT().
		AppendEventAndIncrement(mock.Anything, mock.AnythingOfType("*domain.AdEvent")).
		Run(func(ctx context.Context, ev *domain.AdEvent) { recorded = ev }).
		Return(nil)

	body, _ := json.Marshal(map[string]any{
		"event": "click",
		"ad_id": "c1",
		"metadata": map[string]any{
			"placement": "home",
		},
	})
	rec := f.do(http.MethodPost, "/servead", body, map[string]string{
		"x-api-key":       "oa_good",
		"x-forwarded-for": "203.0.113.9, 10.0.0.1",
		"User-Agent":      "partner-sdk/1.2",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		Event   string `json:"event"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Event != "click" {
		t.Fatalf("unexpected response: %s", rec.Body.String())
	}

	if recorded == nil {
		t.Fatal("event was not recorded")
	}
	if recorded.AdID != "c1" || recorded.EventType != domain.EventClick || recorded.AdKind != domain.KindCampaign {
		t.Fatalf("unexpected event: %+v", recorded)
	}
	if recorded.APIKeyID == nil || *recorded.APIKeyID != "k1" {
		t.Fatalf("event not attributed to the api key: %+v", recorded.APIKeyID)
	}
	if recorded.IPAddress != "203.0.113.9" {
		t.Fatalf("ip %q, want first forwarded hop", recorded.IPAddress)
	}
	if recorded.UserAgent != "partner-sdk/1.2" {
		t.Fatalf("user agent %q", recorded.UserAgent)
	}
}

func TestServeAdPostValidation(t *testing.T) {
	f := newServeFixture(t, false)

	body, _ := json.Marshal(map[string]any{"event": "click"})
	rec := f.do(http.MethodPost, "/servead", body, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Missing event or ad_id") {
		t.Fatalf("body %q", rec.Body.String())
	}

	body, _ = json.Marshal(map[string]any{"event": "viewed", "ad_id": "c1"})
	rec = f.do(http.MethodPost, "/servead", body, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid event type") {
		t.Fatalf("body %q", rec.Body.String())
	}
}

func TestServeAdMethodNotAllowed(t *testing.T) {
	f := newServeFixture(t, false)

	rec := f.do(http.MethodPut, "/servead", nil, nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status %d, want 405", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Method not allowed") {
		t.Fatalf("body %q", rec.Body.String())
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatal("error responses must still carry CORS headers")
	}
}
