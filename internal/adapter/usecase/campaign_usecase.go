package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"openapp-ads/internal/core/domain"
	"openapp-ads/internal/core/port"
)

// Pricing policy for paid campaigns, in platform credits: a flat base fee
// plus a duration fee keyed by the chosen run length. Policy constants, not
// user-configurable.
var (
	baseAdFee = decimal.NewFromInt(10)

	durationFees = map[int]decimal.Decimal{
		1: decimal.NewFromInt(10),
		2: decimal.NewFromInt(20),
		3: decimal.NewFromInt(50),
	}
)

// ComputeBudget maps a duration choice onto the campaign budgets:
// total = base fee + duration fee, daily = total / days rounded to two
// decimal places. Durations outside the pricing table are an error.
func ComputeBudget(durationDays int) (total, daily decimal.Decimal, err error) {
	fee, ok := durationFees[durationDays]
	if !ok {
		return decimal.Zero, decimal.Zero, fmt.Errorf("unsupported campaign duration: %d days", durationDays)
	}
	total = baseAdFee.Add(fee)
	daily = total.Div(decimal.NewFromInt(int64(durationDays))).Round(2)
	return total, daily, nil
}

// CampaignService implements port.CampaignUseCase: payment-gated creation,
// partial updates, the status state machine and idempotent deletion.
type CampaignService struct {
	campaigns port.CampaignRepository
	payments  port.PaymentBridge
}

// NewCampaignService creates the campaign lifecycle manager.
func NewCampaignService(campaigns port.CampaignRepository, payments port.PaymentBridge) *CampaignService {
	return &CampaignService{campaigns: campaigns, payments: payments}
}

// CreateCampaign derives the budget from the pricing table, collects the
// fee through the payment bridge and persists the campaign with status
// pending. If payment is not confirmed, nothing is persisted.
func (s *CampaignService) CreateCampaign(ctx context.Context, req port.CreateCampaignReq) (*domain.Campaign, error) {
	if !req.AdType.Valid() {
		return nil, fmt.Errorf("unknown ad_type %q", req.AdType)
	}
	total, daily, err := ComputeBudget(req.DurationDays)
	if err != nil {
		return nil, err
	}

	memo := fmt.Sprintf("Ad campaign %q, %d day(s)", req.Name, req.DurationDays)
	if err = s.payments.CollectFee(ctx, req.OwnerID, total, memo); err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrPaymentRequired, err)
	}

	skipAfter := domain.DefaultSkipAfterSeconds
	if req.SkipAfterSeconds != nil {
		skipAfter = *req.SkipAfterSeconds
	}
	reward := decimal.Zero
	if req.RewardAmount != nil && req.AdType == domain.AdTypeRewarded {
		reward = *req.RewardAmount
	}
	mediaType := req.MediaType
	if mediaType == "" {
		mediaType = domain.MediaTypeImage
	}

	now := time.Now().UTC()
	c := &domain.Campaign{
		ID:               uuid.NewString(),
		OwnerID:          req.OwnerID,
		AppID:            req.AppID,
		Name:             req.Name,
		AdType:           req.AdType,
		MediaURL:         req.MediaURL,
		MediaType:        mediaType,
		DestinationURL:   domain.NormalizeDestinationURL(req.DestinationURL),
		Title:            req.Title,
		Description:      req.Description,
		Status:           domain.StatusPending,
		DailyBudget:      daily,
		TotalBudget:      total,
		SkipAfterSeconds: skipAfter,
		RewardAmount:     reward,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err = s.campaigns.CreateCampaign(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateCampaign applies a partial patch to mutable fields. The destination
// URL is normalized the same way as on creation.
func (s *CampaignService) UpdateCampaign(ctx context.Context, id string, patch port.CampaignPatch) (*domain.Campaign, error) {
	if patch.DestinationURL != nil {
		normalized := domain.NormalizeDestinationURL(*patch.DestinationURL)
		patch.DestinationURL = &normalized
	}
	c, err := s.campaigns.UpdateCampaign(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrNotFound
	}
	return c, nil
}

// DeleteCampaign permanently removes a campaign; its events go with it via
// the schema cascade. Deleting an unknown id is a no-op success so the UI
// can double-submit safely.
func (s *CampaignService) DeleteCampaign(ctx context.Context, id string) error {
	return s.campaigns.DeleteCampaign(ctx, id)
}

// ApproveCampaign moves pending -> active.
func (s *CampaignService) ApproveCampaign(ctx context.Context, id string) error {
	return s.transition(ctx, id, domain.StatusActive)
}

// RejectCampaign moves pending -> rejected. rejected is terminal.
func (s *CampaignService) RejectCampaign(ctx context.Context, id string) error {
	return s.transition(ctx, id, domain.StatusRejected)
}

// PauseCampaign moves active -> paused.
func (s *CampaignService) PauseCampaign(ctx context.Context, id string) error {
	return s.transition(ctx, id, domain.StatusPaused)
}

// ResumeCampaign moves paused -> active.
func (s *CampaignService) ResumeCampaign(ctx context.Context, id string) error {
	return s.transition(ctx, id, domain.StatusActive)
}

// ListCampaigns returns campaigns newest first, optionally owner-scoped.
func (s *CampaignService) ListCampaigns(ctx context.Context, ownerID *string) ([]domain.Campaign, error) {
	return s.campaigns.ListCampaigns(ctx, ownerID)
}

func (s *CampaignService) transition(ctx context.Context, id string, next domain.CampaignStatus) error {
	c, err := s.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return port.ErrNotFound
	}
	if !c.Status.CanTransition(next) {
		return fmt.Errorf("%w: %s -> %s", port.ErrInvalidTransition, c.Status, next)
	}
	return s.campaigns.SetCampaignStatus(ctx, id, next)
}
