package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"openapp-ads/internal/core/domain"
	"openapp-ads/internal/core/port"
	"openapp-ads/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

// TestPresentationRunsOnce: the selection algorithm executes at most once
// per presentation, no matter how many times Run is triggered.
func TestPresentationRunsOnce(t *testing.T) {
	engine := mocks.NewMockSelectionUseCase(t)
	engine.EXPECT().
		Select(mock.Anything, domain.TriggerAppOpen).
		Return(&port.Selection{Outcome: port.OutcomeNone}, nil).
		Once()

	var completions int32
	p := NewPresentation(engine, domain.TriggerAppOpen, func() {
		atomic.AddInt32(&completions, 1)
	})

	if p.State() != PresentationNotStarted {
		t.Fatalf("initial state %d, want not started", p.State())
	}

	first, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if first.Outcome != port.OutcomeNone {
		t.Fatalf("outcome %s, want none", first.Outcome)
	}
	if p.State() != PresentationDone {
		t.Fatalf("state %d after run, want done", p.State())
	}

	second, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("second Run error: %v", err)
	}
	if second != first {
		t.Fatal("second Run must return the already-made decision")
	}
	if n := atomic.LoadInt32(&completions); n != 1 {
		t.Fatalf("completion fired %d times, want 1", n)
	}
}

// TestPresentationCachesSelectionError: a failed selection is a final
// decision too, and later Runs report it instead of a silent (nil, nil).
func TestPresentationCachesSelectionError(t *testing.T) {
	engine := mocks.NewMockSelectionUseCase(t)
	engine.EXPECT().
		Select(mock.Anything, domain.TriggerAppOpen).
		Return(nil, errors.New("inventory unavailable")).
		Once()

	var completions int32
	p := NewPresentation(engine, domain.TriggerAppOpen, func() {
		atomic.AddInt32(&completions, 1)
	})

	sel, err := p.Run(context.Background())
	if sel != nil || err == nil {
		t.Fatalf("first Run = (%v, %v), want selection error", sel, err)
	}
	if p.State() != PresentationDone {
		t.Fatalf("state %d after failed run, want done", p.State())
	}

	sel, again := p.Run(context.Background())
	if sel != nil || again == nil {
		t.Fatal("second Run must return the cached error")
	}
	if again.Error() != err.Error() {
		t.Fatalf("cached error %q, want %q", again, err)
	}
	if n := atomic.LoadInt32(&completions); n != 1 {
		t.Fatalf("completion fired %d times, want 1", n)
	}
}

// TestPresentationConcurrentRuns: concurrent triggers still run selection
// exactly once.
func TestPresentationConcurrentRuns(t *testing.T) {
	engine := mocks.NewMockSelectionUseCase(t)
	engine.EXPECT().
		Select(mock.Anything, domain.TriggerAuth).
		Return(&port.Selection{Outcome: port.OutcomeNone}, nil).
		Once()

	p := NewPresentation(engine, domain.TriggerAuth, nil)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = p.Run(context.Background())
		}()
	}
	wg.Wait()
}

// TestPresentationOverlayGating: an overlay outcome arms the skip gate;
// Skip is refused until the countdown ends, MediaEnded closes regardless.
func TestPresentationOverlayGating(t *testing.T) {
	engine := mocks.NewMockSelectionUseCase(t)
	engine.EXPECT().
		Select(mock.Anything, domain.TriggerAuth).
		Return(&port.Selection{
			Outcome: port.OutcomeHouse,
			HouseAd: &domain.HouseAd{ID: "h1", SkipAfterSeconds: 3},
		}, nil).
		Once()

	var completions int32
	p := NewPresentation(engine, domain.TriggerAuth, func() {
		atomic.AddInt32(&completions, 1)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sel, err := p.Run(ctx)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if sel.Outcome != port.OutcomeHouse {
		t.Fatalf("outcome %s, want house", sel.Outcome)
	}

	gate := p.Gate()
	if gate == nil {
		t.Fatal("overlay outcome must arm the gate")
	}
	if gate.Remaining() != 3 {
		t.Fatalf("remaining %d, want 3", gate.Remaining())
	}
	if p.Skip() {
		t.Fatal("skip must be refused while the gate is locked")
	}
	if n := atomic.LoadInt32(&completions); n != 0 {
		t.Fatalf("completed early: %d", n)
	}

	// Drive the countdown directly; the wall-clock loop is exercised
	// elsewhere.
	gate.Tick()
	gate.Tick()
	gate.Tick()
	if !gate.CanSkip() {
		t.Fatal("gate should unlock at zero")
	}
	if !p.Skip() {
		t.Fatal("skip should close an unlocked overlay")
	}

	// Late signals must not re-fire the completion callback.
	p.MediaEnded()
	p.Skip()
	if n := atomic.LoadInt32(&completions); n != 1 {
		t.Fatalf("completion fired %d times, want 1", n)
	}
}

// TestPresentationMediaEndedBypassesGate: natural end of media closes the
// overlay even while the countdown is still running.
func TestPresentationMediaEndedBypassesGate(t *testing.T) {
	engine := mocks.NewMockSelectionUseCase(t)
	engine.EXPECT().
		Select(mock.Anything, domain.TriggerAuth).
		Return(&port.Selection{
			Outcome:  port.OutcomeCampaign,
			Campaign: &domain.Campaign{ID: "c1", SkipAfterSeconds: 30},
		}, nil).
		Once()

	var completions int32
	p := NewPresentation(engine, domain.TriggerAuth, func() {
		atomic.AddInt32(&completions, 1)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if _, err := p.Run(ctx); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if p.Gate().CanSkip() {
		t.Fatal("gate should still be locked")
	}
	p.MediaEnded()
	if n := atomic.LoadInt32(&completions); n != 1 {
		t.Fatalf("completion fired %d times, want 1", n)
	}
}

// TestSkipGate covers the countdown edges.
func TestSkipGate(t *testing.T) {
	g := NewSkipGate(2)
	if g.CanSkip() {
		t.Fatal("gate must start locked")
	}
	g.Tick()
	if g.CanSkip() {
		t.Fatal("gate unlocked one tick early")
	}
	g.Tick()
	if !g.CanSkip() {
		t.Fatal("gate should unlock at zero")
	}
	g.Tick()
	if g.Remaining() != 0 {
		t.Fatalf("remaining went below zero: %d", g.Remaining())
	}

	if !NewSkipGate(0).CanSkip() {
		t.Fatal("zero delay should unlock immediately")
	}
	if !NewSkipGate(-5).CanSkip() {
		t.Fatal("negative delay should unlock immediately")
	}
}
