package usecase

import (
	"context"
	"sync"

	"openapp-ads/internal/core/domain"
	"openapp-ads/internal/core/port"
)

// PresentationState is the explicit one-shot guard of a presentation
// instance.
type PresentationState int

const (
	PresentationNotStarted PresentationState = iota
	PresentationPending
	PresentationDone
)

// Presentation is the per-placement lifecycle arena around one selection:
// it guarantees the selection algorithm runs at most once no matter how
// often it is triggered, and that the completion callback fires exactly
// once however the shown ad terminates (skip, natural end, or nothing to
// show). One instance per ad placement; never shared across placements.
type Presentation struct {
	engine  port.SelectionUseCase
	trigger domain.Trigger

	mu     sync.Mutex
	state  PresentationState
	result *port.Selection
	runErr error
	gate   *SkipGate

	completeOnce sync.Once
	onComplete   func()
}

// NewPresentation creates a presentation for one placement. onComplete may
// be nil.
func NewPresentation(engine port.SelectionUseCase, trigger domain.Trigger, onComplete func()) *Presentation {
	return &Presentation{engine: engine, trigger: trigger, onComplete: onComplete}
}

// Run executes the selection, at most once per presentation. Repeated
// calls, including concurrent ones while the first is still pending,
// return the already-made decision without running the algorithm again:
// (nil, nil) while pending, the selection when it succeeded, or the cached
// selection error when it failed. A native or empty outcome completes the
// presentation immediately; an overlay outcome arms the skip gate and
// waits for Skip or MediaEnded.
func (p *Presentation) Run(ctx context.Context) (*port.Selection, error) {
	p.mu.Lock()
	if p.state != PresentationNotStarted {
		result, runErr := p.result, p.runErr
		p.mu.Unlock()
		return result, runErr
	}
	p.state = PresentationPending
	p.mu.Unlock()

	sel, err := p.engine.Select(ctx, p.trigger)

	p.mu.Lock()
	p.state = PresentationDone
	p.runErr = err
	if err == nil {
		p.result = sel
		switch sel.Outcome {
		case port.OutcomeHouse:
			p.gate = NewSkipGate(sel.HouseAd.SkipAfterSeconds)
		case port.OutcomeCampaign:
			p.gate = NewSkipGate(sel.Campaign.SkipAfterSeconds)
		}
	}
	gate := p.gate
	p.mu.Unlock()

	if err != nil {
		// Selection failures never block the user: complete without an ad.
		p.Complete()
		return nil, err
	}
	if gate != nil {
		go gate.Run(ctx)
		return sel, nil
	}
	p.Complete()
	return sel, nil
}

// State returns the one-shot guard state.
func (p *Presentation) State() PresentationState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Gate returns the armed skip gate, or nil when no overlay is showing.
func (p *Presentation) Gate() *SkipGate {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.gate
}

// Skip closes the shown overlay, but only once the gate has unlocked. It
// reports whether the close happened.
func (p *Presentation) Skip() bool {
	gate := p.Gate()
	if gate != nil && !gate.CanSkip() {
		return false
	}
	p.Complete()
	return true
}

// MediaEnded closes the overlay on natural end of media, regardless of the
// countdown state.
func (p *Presentation) MediaEnded() {
	p.Complete()
}

// Complete fires the completion callback. Safe to call any number of
// times; the callback runs exactly once per presentation.
func (p *Presentation) Complete() {
	p.completeOnce.Do(func() {
		if p.onComplete != nil {
			p.onComplete()
		}
	})
}
