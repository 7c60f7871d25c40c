package gateway

// Config holds configuration for the payment processor API client.
type Config struct {
	// BaseURL is the processor API endpoint.
	BaseURL string `mapstructure:"base_url" default:"https://api.stripe.com"`
	// SecretKey is the API secret key used for authentication.
	SecretKey string `mapstructure:"secret_key" default:""`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
