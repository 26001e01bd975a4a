package usecase

import (
	"context"
	"sync"
	"time"
)

// SkipGate is the countdown-then-unlock mechanism controlling when a shown
// interstitial or rewarded unit becomes dismissible. It starts at the ad's
// skip delay, counts down once per second and stays unlocked once it hits
// zero. Natural end of media bypasses the gate entirely; that is the
// presentation's concern, not the gate's.
type SkipGate struct {
	mu        sync.Mutex
	remaining int
}

// NewSkipGate creates a gate starting at seconds. A non-positive delay
// unlocks immediately.
func NewSkipGate(seconds int) *SkipGate {
	if seconds < 0 {
		seconds = 0
	}
	return &SkipGate{remaining: seconds}
}

// Tick advances the countdown by one second.
func (g *SkipGate) Tick() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.remaining > 0 {
		g.remaining--
	}
}

// Remaining returns the seconds left before the gate unlocks.
func (g *SkipGate) Remaining() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.remaining
}

// CanSkip reports whether the close action is available.
func (g *SkipGate) CanSkip() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.remaining <= 0
}

// Run drives the countdown with a wall-clock ticker until the gate unlocks
// or ctx is cancelled. Cancellation stops the timer; the hosting context
// going away must not leak tickers.
func (g *SkipGate) Run(ctx context.Context) {
	if g.CanSkip() {
		return
	}
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			g.Tick()
			if g.CanSkip() {
				return
			}
		}
	}
}
