package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"openapp-ads/internal/core/domain"
	"openapp-ads/internal/core/port"
)

// Rand is the randomness source behind every selection decision: the coin
// flip between native and pool, the native sub-type pick, the uniform pool
// pick and the banner shuffle. *rand.Rand satisfies it; tests inject a
// scripted implementation for deterministic decisions.
type Rand interface {
	Float64() float64
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// lockedRand serializes access to a Rand. math/rand sources are not safe
// for concurrent use and Select may be called from many requests at once.
type lockedRand struct {
	mu sync.Mutex
	r  Rand
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

func (l *lockedRand) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.r.Shuffle(n, swap)
}

// snapshot holds the fully loaded inventories one selection runs against.
// Selection never starts until all three sources have resolved; a partial
// snapshot is never used.
type snapshot struct {
	houseAds    []domain.HouseAd
	campaigns   []domain.Campaign
	nativeReady bool
}

// pooledAd is one entry of the combined house/campaign pool, tagged by
// kind.
type pooledAd struct {
	kind     domain.AdKind
	houseAd  *domain.HouseAd
	campaign *domain.Campaign
}

// adSource is one rung of the fallback chain. tryProvide returns nil when
// the source has nothing to show; the engine then moves to the next rung.
// Source failures are recoverable by contract and never surface to the end
// user.
type adSource interface {
	tryProvide(ctx context.Context) (*port.Selection, error)
}

// nativeSource attempts a native network unit through the bridge.
type nativeSource struct {
	bridge  port.NativeBridge
	ready   bool
	subType domain.AdType
}

func (s *nativeSource) tryProvide(ctx context.Context) (*port.Selection, error) {
	if !s.ready {
		return nil, nil
	}
	shown, err := s.bridge.Show(ctx, s.subType)
	if err != nil || !shown {
		// Native failure or no fill: fall through to the next source.
		return nil, nil
	}
	sub := s.subType
	return &port.Selection{Outcome: port.OutcomeNative, NativeType: &sub}, nil
}

// poolSource picks uniformly at random from the combined pool.
type poolSource struct {
	pool []pooledAd
	rng  Rand
}

func (s *poolSource) tryProvide(context.Context) (*port.Selection, error) {
	if len(s.pool) == 0 {
		return nil, nil
	}
	picked := s.pool[s.rng.Intn(len(s.pool))]
	if picked.kind == domain.KindHouse {
		return &port.Selection{Outcome: port.OutcomeHouse, HouseAd: picked.houseAd}, nil
	}
	return &port.Selection{Outcome: port.OutcomeCampaign, Campaign: picked.campaign}, nil
}

// SelectionService implements port.SelectionUseCase. Each Select call reads
// a fresh inventory snapshot, builds the trigger's ordered source chain and
// walks it until a source yields.
type SelectionService struct {
	campaigns port.CampaignRepository
	houseAds  port.HouseAdRepository
	native    port.NativeBridge
	rng       Rand
}

// NewSelectionService creates the ad selection engine. A nil rng falls back
// to a time-seeded source.
func NewSelectionService(campaigns port.CampaignRepository, houseAds port.HouseAdRepository, native port.NativeBridge, rng Rand) *SelectionService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SelectionService{
		campaigns: campaigns,
		houseAds:  houseAds,
		native:    native,
		rng:       &lockedRand{r: rng},
	}
}

// Select runs the fallback chain for an interstitial-style trigger and
// returns the single decision. The home-banner trigger is a presentation
// list, not a single pick; use BannerFeed for it.
func (s *SelectionService) Select(ctx context.Context, trigger domain.Trigger) (*port.Selection, error) {
	switch trigger {
	case domain.TriggerAppOpen, domain.TriggerAuth, domain.TriggerRewardedRequest:
	case domain.TriggerHomeBanner:
		return nil, fmt.Errorf("trigger %q is served by BannerFeed", trigger)
	default:
		return nil, fmt.Errorf("unknown trigger %q", trigger)
	}

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	native := &nativeSource{
		bridge:  s.native,
		ready:   snap.nativeReady,
		subType: s.nativeSubType(trigger),
	}
	pool := &poolSource{pool: s.buildPool(snap, trigger), rng: s.rng}

	// Priority order per trigger: app-open is native-first unconditionally;
	// the general path flips a fair coin between native-first and
	// pool-first, which also covers native-as-last-resort when the pool is
	// empty.
	var sources []adSource
	if trigger == domain.TriggerAppOpen || s.rng.Float64() > 0.5 {
		sources = []adSource{native, pool}
	} else {
		sources = []adSource{pool, native}
	}

	for _, src := range sources {
		sel, err := src.tryProvide(ctx)
		if err != nil {
			return nil, err
		}
		if sel != nil {
			return sel, nil
		}
	}
	// No inventory anywhere: not an error, the flow proceeds without an ad.
	return &port.Selection{Outcome: port.OutcomeNone}, nil
}

// BannerFeed returns the shuffled home-banner presentation list: all active
// house ads plus active banner campaigns, uniform random permutation.
func (s *SelectionService) BannerFeed(ctx context.Context) ([]port.BannerItem, error) {
	houseAds, err := s.houseAds.ListActiveHouseAds(ctx)
	if err != nil {
		return nil, err
	}
	bannerType := domain.AdTypeBanner
	campaigns, err := s.campaigns.ListActiveCampaigns(ctx, &bannerType)
	if err != nil {
		return nil, err
	}

	items := make([]port.BannerItem, 0, len(houseAds)+len(campaigns))
	for i := range houseAds {
		items = append(items, port.BannerItem{Kind: domain.KindHouse, HouseAd: &houseAds[i]})
	}
	for i := range campaigns {
		items = append(items, port.BannerItem{Kind: domain.KindCampaign, Campaign: &campaigns[i]})
	}
	s.rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
	return items, nil
}

// loadSnapshot resolves all three inventory sources before any decision is
// made. An error on any source aborts the whole selection.
func (s *SelectionService) loadSnapshot(ctx context.Context) (*snapshot, error) {
	houseAds, err := s.houseAds.ListActiveHouseAds(ctx)
	if err != nil {
		return nil, fmt.Errorf("load house ads: %w", err)
	}
	campaigns, err := s.campaigns.ListActiveCampaigns(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("load campaigns: %w", err)
	}
	return &snapshot{
		houseAds:    houseAds,
		campaigns:   campaigns,
		nativeReady: s.native.Ready(ctx),
	}, nil
}

// buildPool applies the trigger's eligibility filter. House ads join the
// pool for the general triggers; campaigns are limited to interstitial and
// rewarded types there. A rewarded request narrows the pool to rewarded
// campaigns only, since house ads carry no reward.
func (s *SelectionService) buildPool(snap *snapshot, trigger domain.Trigger) []pooledAd {
	var pool []pooledAd
	if trigger != domain.TriggerRewardedRequest {
		for i := range snap.houseAds {
			pool = append(pool, pooledAd{kind: domain.KindHouse, houseAd: &snap.houseAds[i]})
		}
	}
	for i := range snap.campaigns {
		c := &snap.campaigns[i]
		switch trigger {
		case domain.TriggerRewardedRequest:
			if c.AdType != domain.AdTypeRewarded {
				continue
			}
		default:
			if c.AdType != domain.AdTypeInterstitial && c.AdType != domain.AdTypeRewarded {
				continue
			}
		}
		pool = append(pool, pooledAd{kind: domain.KindCampaign, campaign: c})
	}
	return pool
}

// nativeSubType picks the unit type requested from the native network: a
// uniform coin between interstitial and rewarded on the general paths,
// fixed to rewarded for a rewarded request.
func (s *SelectionService) nativeSubType(trigger domain.Trigger) domain.AdType {
	if trigger == domain.TriggerRewardedRequest {
		return domain.AdTypeRewarded
	}
	if s.rng.Float64() > 0.5 {
		return domain.AdTypeInterstitial
	}
	return domain.AdTypeRewarded
}
