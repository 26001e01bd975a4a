package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"openapp-ads/internal/core/domain"
)

const apiKeyColumns = `id, owner_id, app_name, api_key, is_active, last_used_at, created_at`

// APIKeyRepository implements port.APIKeyRepository using pgxpool.
type APIKeyRepository struct {
	pool *pgxpool.Pool
}

// NewAPIKeyRepository returns a new repository instance.
func NewAPIKeyRepository(pool *pgxpool.Pool) *APIKeyRepository {
	return &APIKeyRepository{pool: pool}
}

func scanAPIKey(row pgx.CollectableRow) (domain.APIKey, error) {
	var k domain.APIKey
	err := row.Scan(&k.ID, &k.OwnerID, &k.AppName, &k.Token, &k.IsActive,
		&k.LastUsedAt, &k.CreatedAt)
	return k, err
}

// CreateAPIKey inserts a new credential row.
func (r *APIKeyRepository) CreateAPIKey(ctx context.Context, key *domain.APIKey) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO app_api_keys
	(id, owner_id, app_name, api_key, is_active, created_at)
	VALUES ($1,$2,$3,$4,$5,$6)`,
		key.ID, key.OwnerID, key.AppName, key.Token, key.IsActive, key.CreatedAt)
	return err
}

// ListAPIKeysByOwner returns the owner's credentials newest first.
func (r *APIKeyRepository) ListAPIKeysByOwner(ctx context.Context, ownerID string) ([]domain.APIKey, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+apiKeyColumns+` FROM app_api_keys WHERE owner_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanAPIKey)
}

// FindActiveAPIKeyByToken returns the active key matching the token, or
// nil when none does.
func (r *APIKeyRepository) FindActiveAPIKeyByToken(ctx context.Context, token string) (*domain.APIKey, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+apiKeyColumns+` FROM app_api_keys WHERE api_key = $1 AND is_active`, token)
	if err != nil {
		return nil, err
	}
	k, err := pgx.CollectOneRow(rows, scanAPIKey)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &k, nil
}

// TouchAPIKey updates last_used_at to now.
func (r *APIKeyRepository) TouchAPIKey(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE app_api_keys SET last_used_at = now() WHERE id = $1`, id)
	return err
}

// DeleteAPIKey removes the credential. Unknown ids are a no-op success.
func (r *APIKeyRepository) DeleteAPIKey(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM app_api_keys WHERE id = $1`, id)
	return err
}
