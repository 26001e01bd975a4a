package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"

	"openapp-ads/internal/core/domain"
	"openapp-ads/internal/core/port"
)

// APIKeyService implements port.APIKeyUseCase.
type APIKeyService struct {
	keys port.APIKeyRepository
}

// NewAPIKeyService creates the API key manager.
func NewAPIKeyService(keys port.APIKeyRepository) *APIKeyService {
	return &APIKeyService{keys: keys}
}

// CreateAPIKey generates a fresh secret token and persists the credential,
// active immediately.
func (s *APIKeyService) CreateAPIKey(ctx context.Context, ownerID, appName string) (*domain.APIKey, error) {
	token, err := newToken()
	if err != nil {
		return nil, err
	}
	key := &domain.APIKey{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		AppName:   appName,
		Token:     token,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	if err = s.keys.CreateAPIKey(ctx, key); err != nil {
		return nil, err
	}
	return key, nil
}

// ListAPIKeys returns the owner's credentials newest first.
func (s *APIKeyService) ListAPIKeys(ctx context.Context, ownerID string) ([]domain.APIKey, error) {
	return s.keys.ListAPIKeysByOwner(ctx, ownerID)
}

// DeleteAPIKey removes the credential. Unknown ids are a no-op success.
func (s *APIKeyService) DeleteAPIKey(ctx context.Context, id string) error {
	return s.keys.DeleteAPIKey(ctx, id)
}

func newToken() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "oa_" + hex.EncodeToString(buf), nil
}
