package configs

import "time"

// Payment configures the external crypto-payment bridge used to collect
// campaign fees. When Addr is empty the bridge is disabled and campaign
// creation fails with a payment error, which matches the product rule
// that no campaign exists without a confirmed payment.
type Payment struct {
	// Addr is the base URL of the payment approval service.
	Addr string `env:"ADDRESS"`
	// APIKey authenticates this service against the payment provider.
	APIKey string `env:"API_KEY"`
	// Timeout bounds each approval round-trip.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
}
