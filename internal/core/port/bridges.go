package port

import (
	"context"

	"github.com/shopspring/decimal"

	"openapp-ads/internal/core/domain"
)

// PaymentBridge confirms a fee payment with the external crypto-payment
// provider. Campaign creation must not persist a row unless CollectFee
// returns nil.
type PaymentBridge interface {
	CollectFee(ctx context.Context, ownerID string, amount decimal.Decimal, memo string) error
}

// NativeBridge is the surface of the third-party ad network SDK the
// selection engine depends on: a readiness flag and a request-and-show
// call. The unit itself is rendered by the SDK and is opaque to this
// service beyond success/failure.
type NativeBridge interface {
	// Ready reports whether the network can currently serve ads.
	Ready(ctx context.Context) bool
	// Show requests and displays a native unit of the given sub-type
	// (interstitial or rewarded). The bool reports whether an ad was
	// actually shown; an error means the attempt failed and the caller
	// should fall back.
	Show(ctx context.Context, adType domain.AdType) (bool, error)
}
