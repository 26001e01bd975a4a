package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"openapp-ads/internal/core/domain"
	"openapp-ads/internal/core/port"
)

// TrackingService implements port.TrackingUseCase: appends immutable event
// rows, keeps the denormalized counters in step and derives CTR on read.
type TrackingService struct {
	events    port.EventRepository
	campaigns port.CampaignRepository
}

// NewTrackingService creates the event tracker.
func NewTrackingService(events port.EventRepository, campaigns port.CampaignRepository) *TrackingService {
	return &TrackingService{events: events, campaigns: campaigns}
}

// RecordEvent validates the kind/type pair and writes the event plus the
// counter increment in one transaction. Unknown ads yield ErrNotFound.
func (s *TrackingService) RecordEvent(ctx context.Context, adID string, kind domain.AdKind, eventType domain.EventType, attr domain.Attribution) error {
	if !eventType.Valid() {
		return fmt.Errorf("invalid event type %q", eventType)
	}
	if !eventType.AllowedFor(kind) {
		return fmt.Errorf("%w: %s for %s ad", port.ErrEventNotAllowed, eventType, kind)
	}

	ev := &domain.AdEvent{
		ID:        uuid.NewString(),
		AdID:      adID,
		AdKind:    kind,
		EventType: eventType,
		APIKeyID:  attr.APIKeyID,
		IPAddress: attr.IPAddress,
		UserAgent: attr.UserAgent,
		Metadata:  attr.Metadata,
		CreatedAt: time.Now().UTC(),
	}
	if ev.IPAddress == "" {
		ev.IPAddress = "unknown"
	}
	if ev.UserAgent == "" {
		ev.UserAgent = "unknown"
	}
	if ev.Metadata == nil {
		ev.Metadata = map[string]any{}
	}
	return s.events.AppendEventAndIncrement(ctx, ev)
}

// Summary aggregates counters across campaigns, optionally owner-scoped.
func (s *TrackingService) Summary(ctx context.Context, ownerID *string) (*port.StatsSummary, error) {
	campaigns, err := s.campaigns.ListCampaigns(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	sum := &port.StatsSummary{Campaigns: make([]port.CampaignStats, 0, len(campaigns))}
	for _, c := range campaigns {
		sum.TotalImpressions += c.ImpressionsCount
		sum.TotalClicks += c.ClicksCount
		sum.TotalRewards += c.RewardsCount
		if c.Status == domain.StatusActive {
			sum.ActiveCampaigns++
		}
		sum.Campaigns = append(sum.Campaigns, port.CampaignStats{
			ID:          c.ID,
			Name:        c.Name,
			AdType:      c.AdType,
			Status:      c.Status,
			Impressions: c.ImpressionsCount,
			Clicks:      c.ClicksCount,
			Rewards:     c.RewardsCount,
			CTR:         CTR(c.ClicksCount, c.ImpressionsCount),
		})
	}
	sum.CTR = CTR(sum.TotalClicks, sum.TotalImpressions)
	return sum, nil
}

// RecentEvents lists recent events newest first.
func (s *TrackingService) RecentEvents(ctx context.Context, adID *string, limit int) ([]domain.AdEvent, error) {
	return s.events.ListEvents(ctx, adID, limit)
}

// CTR derives the click-through rate, clicks / impressions * 100,
// formatted to two decimals. It is never persisted.
func CTR(clicks, impressions int64) string {
	if impressions <= 0 {
		return "0.00"
	}
	return strconv.FormatFloat(float64(clicks)/float64(impressions)*100, 'f', 2, 64)
}
