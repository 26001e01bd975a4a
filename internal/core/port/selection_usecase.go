package port

import (
	"context"

	"openapp-ads/internal/core/domain"
)

// SelectionOutcome names what the engine decided to present.
type SelectionOutcome string

const (
	// OutcomeNative: a native network unit was requested and shown via the
	// bridge; nothing further is presented.
	OutcomeNative SelectionOutcome = "native"
	// OutcomeHouse: one house ad overlay should be presented.
	OutcomeHouse SelectionOutcome = "house"
	// OutcomeCampaign: one paid campaign overlay should be presented.
	OutcomeCampaign SelectionOutcome = "campaign"
	// OutcomeNone: no inventory of any kind was available; the flow
	// proceeds without an ad.
	OutcomeNone SelectionOutcome = "none"
)

// Selection is the result of one ad selection run: exactly one of the
// outcome payloads is populated.
type Selection struct {
	Outcome    SelectionOutcome `json:"outcome"`
	NativeType *domain.AdType   `json:"native_type,omitempty"`
	HouseAd    *domain.HouseAd  `json:"house_ad,omitempty"`
	Campaign   *domain.Campaign `json:"campaign,omitempty"`
}

// BannerItem is one entry of the home-banner presentation list.
type BannerItem struct {
	Kind     domain.AdKind    `json:"kind"`
	HouseAd  *domain.HouseAd  `json:"house_ad,omitempty"`
	Campaign *domain.Campaign `json:"campaign,omitempty"`
}

// SelectionUseCase runs the ad selection engine for the embedded client.
type SelectionUseCase interface {
	// Select runs the fallback chain for an interstitial-style trigger
	// (app-open, auth-interstitial, rewarded-request) and returns the
	// single decision.
	Select(ctx context.Context, trigger domain.Trigger) (*Selection, error)

	// BannerFeed returns the shuffled home-banner presentation list of
	// house ads and active banner campaigns. Every item gets its own
	// impression event when actually displayed; recording is the caller's
	// responsibility.
	BannerFeed(ctx context.Context) ([]BannerItem, error)
}
