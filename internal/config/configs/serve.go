package configs

// Serve configures the external-facing ad serving endpoint.
type Serve struct {
	// RequireAPIKey makes the x-api-key header mandatory on /servead. By
	// default a missing key is tolerated and only a supplied-but-invalid
	// key is rejected.
	RequireAPIKey bool `env:"REQUIRE_API_KEY" envDefault:"false"`
}
