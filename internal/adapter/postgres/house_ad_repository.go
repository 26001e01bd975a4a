package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"openapp-ads/internal/core/domain"
)

const houseAdColumns = `id, app_id, owner_id, video_url, title, description, is_active,
	skip_after_seconds, duration_seconds, impressions_count, clicks_count,
	created_at, updated_at`

// HouseAdRepository implements port.HouseAdRepository using pgxpool.
type HouseAdRepository struct {
	pool *pgxpool.Pool
}

// NewHouseAdRepository returns a new repository instance.
func NewHouseAdRepository(pool *pgxpool.Pool) *HouseAdRepository {
	return &HouseAdRepository{pool: pool}
}

func scanHouseAd(row pgx.CollectableRow) (domain.HouseAd, error) {
	var a domain.HouseAd
	err := row.Scan(
		&a.ID, &a.AppID, &a.OwnerID, &a.VideoURL, &a.Title, &a.Description,
		&a.IsActive, &a.SkipAfterSeconds, &a.DurationSeconds,
		&a.ImpressionsCount, &a.ClicksCount, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// CreateHouseAd inserts a new promo video row.
func (r *HouseAdRepository) CreateHouseAd(ctx context.Context, ad *domain.HouseAd) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO app_ads
	(id, app_id, owner_id, video_url, title, description, is_active,
	 skip_after_seconds, duration_seconds, created_at, updated_at)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		ad.ID, ad.AppID, ad.OwnerID, ad.VideoURL, ad.Title, ad.Description,
		ad.IsActive, ad.SkipAfterSeconds, ad.DurationSeconds, ad.CreatedAt, ad.UpdatedAt)
	return err
}

// GetHouseAd returns a house ad by id, or nil when absent.
func (r *HouseAdRepository) GetHouseAd(ctx context.Context, id string) (*domain.HouseAd, error) {
	rows, err := r.pool.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM app_ads WHERE id = $1`, houseAdColumns), id)
	if err != nil {
		return nil, err
	}
	a, err := pgx.CollectOneRow(rows, scanHouseAd)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListActiveHouseAds returns is_active rows newest first.
func (r *HouseAdRepository) ListActiveHouseAds(ctx context.Context) ([]domain.HouseAd, error) {
	rows, err := r.pool.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM app_ads WHERE is_active ORDER BY created_at DESC`, houseAdColumns))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanHouseAd)
}

// ListHouseAdsByOwner returns one submitter's ads newest first.
func (r *HouseAdRepository) ListHouseAdsByOwner(ctx context.Context, ownerID string) ([]domain.HouseAd, error) {
	rows, err := r.pool.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM app_ads WHERE owner_id = $1 ORDER BY created_at DESC`, houseAdColumns), ownerID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanHouseAd)
}

// SetHouseAdActive toggles the serving flag.
func (r *HouseAdRepository) SetHouseAdActive(ctx context.Context, id string, active bool) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE app_ads SET is_active = $2, updated_at = now() WHERE id = $1`, id, active)
	return err
}

// DeleteHouseAd permanently removes the ad. Unknown ids are a no-op
// success.
func (r *HouseAdRepository) DeleteHouseAd(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM app_ads WHERE id = $1`, id)
	return err
}
