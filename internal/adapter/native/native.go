// Package native holds the server-side view of the third-party ad network
// SDK. The SDK itself runs inside the client; from here only the
// readiness/show contract matters, so deployments without a client-side
// bridge wire the Disabled implementation.
package native

import (
	"context"

	"openapp-ads/internal/core/domain"
)

// Disabled is a NativeBridge that never serves. Selection falls straight
// through to the house/campaign pool.
type Disabled struct{}

// Ready always reports false.
func (Disabled) Ready(context.Context) bool { return false }

// Show never shows anything.
func (Disabled) Show(context.Context, domain.AdType) (bool, error) { return false, nil }
