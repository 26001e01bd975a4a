package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdType classifies the placement a paid campaign is sold for. It is fixed
// at creation time and determines which optional fields are meaningful:
// skip and reward fields are ignored for banner campaigns.
type AdType string

const (
	AdTypeBanner       AdType = "banner"
	AdTypeInterstitial AdType = "interstitial"
	AdTypeRewarded     AdType = "rewarded"
)

// Valid reports whether t is one of the known ad types.
func (t AdType) Valid() bool {
	switch t {
	case AdTypeBanner, AdTypeInterstitial, AdTypeRewarded:
		return true
	}
	return false
}

// MediaType describes the creative asset of a campaign.
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// CampaignStatus is the moderation/serving state of a campaign.
type CampaignStatus string

const (
	StatusPending  CampaignStatus = "pending"
	StatusActive   CampaignStatus = "active"
	StatusPaused   CampaignStatus = "paused"
	StatusRejected CampaignStatus = "rejected"
)

// CanTransition reports whether moving from s to next is an allowed status
// transition. The graph is: pending -> active|rejected (moderation),
// active <-> paused (owner toggle, any number of times). rejected is
// terminal. Hard delete is allowed from any state and is not modelled here.
func (s CampaignStatus) CanTransition(next CampaignStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusActive || next == StatusRejected
	case StatusActive:
		return next == StatusPaused
	case StatusPaused:
		return next == StatusActive
	}
	return false
}

// DefaultSkipAfterSeconds is applied to interstitial and rewarded units
// when the advertiser does not choose a skip delay.
const DefaultSkipAfterSeconds = 5

// Campaign represents a paid, moderation-gated advertisement.
// Budgets are expressed in platform credits.
type Campaign struct {
	ID               string          `json:"id"`
	OwnerID          string          `json:"owner_id"`
	AppID            *string         `json:"app_id,omitempty"`
	Name             string          `json:"name"`
	AdType           AdType          `json:"ad_type"`
	MediaURL         string          `json:"media_url"`
	MediaType        MediaType       `json:"media_type"`
	DestinationURL   string          `json:"destination_url"`
	Title            *string         `json:"title"`
	Description      *string         `json:"description"`
	Status           CampaignStatus  `json:"status"`
	DailyBudget      decimal.Decimal `json:"daily_budget"`
	TotalBudget      decimal.Decimal `json:"total_budget"`
	ImpressionsCount int64           `json:"impressions_count"`
	ClicksCount      int64           `json:"clicks_count"`
	RewardsCount     int64           `json:"rewards_count"`
	SkipAfterSeconds int             `json:"skip_after_seconds"`
	RewardAmount     decimal.Decimal `json:"reward_amount"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
