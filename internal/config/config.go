// Package config loads the process-lifetime Tines connection settings
// from the environment. The resulting Config is immutable and safe for
// concurrent read-only access.
package config

import (
	"fmt"
	"net/url"
	"os"
)

// Environment variable names.
const (
	EnvAPIToken = "TINES_API_TOKEN"
	EnvAPIURL   = "TINES_API_URL"
)

// Config holds the Tines tenant base URL and API token.
type Config struct {
	BaseURL  string
	APIToken string
}

// Load reads and validates the configuration from the environment. Both
// variables are required; the process should fail fast when either is
// missing.
func Load() (*Config, error) {
	token := os.Getenv(EnvAPIToken)
	if token == "" {
		return nil, fmt.Errorf("%s environment variable is not set (example: %s=your_api_token_here)", EnvAPIToken, EnvAPIToken)
	}

	baseURL := os.Getenv(EnvAPIURL)
	if baseURL == "" {
		return nil, fmt.Errorf("%s environment variable is not set (use format: https://your-tenant.tines.com/api/v1)", EnvAPIURL)
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return nil, fmt.Errorf("%s must be an absolute URL (use format: https://your-tenant.tines.com/api/v1), got %q", EnvAPIURL, baseURL)
	}

	return &Config{
		BaseURL:  baseURL,
		APIToken: token,
	}, nil
}
