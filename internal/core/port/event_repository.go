package port

import (
	"context"

	"openapp-ads/internal/core/domain"
)

// EventRepository persists the append-only ad event log and keeps the
// denormalized counters in step with it.
type EventRepository interface {
	// AppendEventAndIncrement inserts the event row and increments the
	// matching counter on the target campaign or house ad in a single
	// transaction: both happen or neither. Returns ErrNotFound when the
	// target ad does not exist.
	AppendEventAndIncrement(ctx context.Context, ev *domain.AdEvent) error

	// ListEvents returns recent events newest first, optionally scoped to
	// one ad id. limit <= 0 applies a server default.
	ListEvents(ctx context.Context, adID *string, limit int) ([]domain.AdEvent, error)
}
