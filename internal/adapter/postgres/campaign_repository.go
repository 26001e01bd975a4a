package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"openapp-ads/internal/core/domain"
	"openapp-ads/internal/core/port"
)

const campaignColumns = `id, owner_id, app_id, name, ad_type, media_url, media_type,
	destination_url, title, description, status, daily_budget, total_budget,
	impressions_count, clicks_count, rewards_count, skip_after_seconds,
	reward_amount, created_at, updated_at`

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID, &c.OwnerID, &c.AppID, &c.Name, &c.AdType, &c.MediaURL, &c.MediaType,
		&c.DestinationURL, &c.Title, &c.Description, &c.Status, &c.DailyBudget,
		&c.TotalBudget, &c.ImpressionsCount, &c.ClicksCount, &c.RewardsCount,
		&c.SkipAfterSeconds, &c.RewardAmount, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// CreateCampaign inserts a new campaign row.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO ad_campaigns
	(id, owner_id, app_id, name, ad_type, media_url, media_type, destination_url,
	 title, description, status, daily_budget, total_budget, skip_after_seconds,
	 reward_amount, created_at, updated_at)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`,
		c.ID, c.OwnerID, c.AppID, c.Name, c.AdType, c.MediaURL, c.MediaType,
		c.DestinationURL, c.Title, c.Description, c.Status, c.DailyBudget,
		c.TotalBudget, c.SkipAfterSeconds, c.RewardAmount, c.CreatedAt, c.UpdatedAt)
	return err
}

// GetCampaign returns a campaign by id, or nil when absent.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM ad_campaigns WHERE id = $1`, campaignColumns), id)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCampaigns returns campaigns newest first, optionally owner-scoped.
func (r *CampaignRepository) ListCampaigns(ctx context.Context, ownerID *string) ([]domain.Campaign, error) {
	query := fmt.Sprintf(`SELECT %s FROM ad_campaigns`, campaignColumns)
	args := []any{}
	if ownerID != nil {
		query += ` WHERE owner_id = $1`
		args = append(args, *ownerID)
	}
	query += ` ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// ListActiveCampaigns returns status = active rows, optionally filtered by
// ad type.
func (r *CampaignRepository) ListActiveCampaigns(ctx context.Context, adType *domain.AdType) ([]domain.Campaign, error) {
	query := fmt.Sprintf(`SELECT %s FROM ad_campaigns WHERE status = 'active'`, campaignColumns)
	args := []any{}
	if adType != nil {
		query += ` AND ad_type = $1`
		args = append(args, *adType)
	}
	query += ` ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// UpdateCampaign applies a partial patch and returns the updated row, or
// nil when the campaign does not exist.
func (r *CampaignRepository) UpdateCampaign(ctx context.Context, id string, patch port.CampaignPatch) (*domain.Campaign, error) {
	sets := []string{"updated_at = now()"}
	args := []any{id}
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.MediaURL != nil {
		add("media_url", *patch.MediaURL)
	}
	if patch.MediaType != nil {
		add("media_type", *patch.MediaType)
	}
	if patch.DestinationURL != nil {
		add("destination_url", *patch.DestinationURL)
	}
	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.SkipAfterSeconds != nil {
		add("skip_after_seconds", *patch.SkipAfterSeconds)
	}
	if patch.RewardAmount != nil {
		add("reward_amount", *patch.RewardAmount)
	}

	query := fmt.Sprintf(`UPDATE ad_campaigns SET %s WHERE id = $1 RETURNING %s`,
		strings.Join(sets, ", "), campaignColumns)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// SetCampaignStatus overwrites the status field.
func (r *CampaignRepository) SetCampaignStatus(ctx context.Context, id string, status domain.CampaignStatus) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE ad_campaigns SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// DeleteCampaign removes the campaign; events cascade via the schema.
// Unknown ids are a no-op success.
func (r *CampaignRepository) DeleteCampaign(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM ad_campaigns WHERE id = $1`, id)
	return err
}
