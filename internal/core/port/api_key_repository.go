package port

import (
	"context"

	"openapp-ads/internal/core/domain"
)

// APIKeyRepository stores external integrator credentials for the serving
// endpoint. FindActiveAPIKeyByToken returns (nil, nil) when no active key
// matches.
type APIKeyRepository interface {
	CreateAPIKey(ctx context.Context, key *domain.APIKey) error
	ListAPIKeysByOwner(ctx context.Context, ownerID string) ([]domain.APIKey, error)
	FindActiveAPIKeyByToken(ctx context.Context, token string) (*domain.APIKey, error)
	// TouchAPIKey updates last_used_at to now.
	TouchAPIKey(ctx context.Context, id string) error
	// DeleteAPIKey removes the key. Unknown ids are a no-op success.
	DeleteAPIKey(ctx context.Context, id string) error
}
