package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"openapp-ads/internal/core/domain"
	"openapp-ads/internal/core/port"
)

// EventRepository implements port.EventRepository using pgxpool. The event
// insert and the counter increment run inside one transaction, and the
// increment is a single atomic UPDATE, so concurrent events never
// under-count.
type EventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository returns a new repository instance.
func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

// AppendEventAndIncrement inserts the event row and bumps the matching
// denormalized counter. Both writes happen or neither does. Returns
// ErrNotFound when the target ad does not exist.
func (r *EventRepository) AppendEventAndIncrement(ctx context.Context, ev *domain.AdEvent) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	// Counter bump first: a missing ad aborts before the event is written.
	table := "ad_campaigns"
	if ev.AdKind == domain.KindHouse {
		table = "app_ads"
	}
	column := ev.EventType.CounterColumn()
	res, err := tx.Exec(ctx, fmt.Sprintf(
		`UPDATE %s SET %s = %s + 1, updated_at = now() WHERE id = $1`,
		table, column, column), ev.AdID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		err = port.ErrNotFound
		return err
	}

	var campaignID, houseAdID *string
	if ev.AdKind == domain.KindHouse {
		houseAdID = &ev.AdID
	} else {
		campaignID = &ev.AdID
	}
	metadata, err := json.Marshal(ev.Metadata)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `INSERT INTO ad_campaign_events
	(id, campaign_id, house_ad_id, event_type, api_key_id, ip_address, user_agent, metadata, created_at)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		ev.ID, campaignID, houseAdID, ev.EventType, ev.APIKeyID,
		ev.IPAddress, ev.UserAgent, metadata, ev.CreatedAt)
	return err
}

// ListEvents returns recent events newest first, optionally scoped to one
// ad id. limit <= 0 applies the 500-row default.
func (r *EventRepository) ListEvents(ctx context.Context, adID *string, limit int) ([]domain.AdEvent, error) {
	if limit <= 0 || limit > 500 {
		limit = 500
	}
	query := `SELECT id, campaign_id, house_ad_id, event_type, api_key_id,
		ip_address, user_agent, metadata, created_at FROM ad_campaign_events`
	args := []any{}
	if adID != nil {
		query += ` WHERE campaign_id = $1 OR house_ad_id = $1`
		args = append(args, *adID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT %d`, limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AdEvent, error) {
		var (
			ev                    domain.AdEvent
			campaignID, houseAdID *string
			metadata              []byte
		)
		err := row.Scan(&ev.ID, &campaignID, &houseAdID, &ev.EventType,
			&ev.APIKeyID, &ev.IPAddress, &ev.UserAgent, &metadata, &ev.CreatedAt)
		if err != nil {
			return ev, err
		}
		if houseAdID != nil {
			ev.AdID = *houseAdID
			ev.AdKind = domain.KindHouse
		} else if campaignID != nil {
			ev.AdID = *campaignID
			ev.AdKind = domain.KindCampaign
		}
		if len(metadata) > 0 {
			if err = json.Unmarshal(metadata, &ev.Metadata); err != nil {
				return ev, err
			}
		}
		return ev, nil
	})
}
