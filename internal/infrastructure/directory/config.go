package directory

import (
	"errors"
	"time"

	"github.com/mailroom/backend/internal/infrastructure/config"
)

// Errors for directory client configuration
var (
	ErrConfigMissingBaseURL = errors.New("directory: base URL is required")
)

// ClientConfig holds the settings for the company directory HTTP client
type ClientConfig struct {
	// BaseURL is the root of the directory API
	BaseURL string
	// APIKey authenticates requests; sent as a bearer token
	APIKey string
	// Timeout is the per-request HTTP timeout
	Timeout time.Duration
}

// NewClientConfig builds a client config from the application configuration
func NewClientConfig(cfg config.DirectoryConfig) ClientConfig {
	return ClientConfig{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Timeout: cfg.Timeout,
	}
}

// Validate validates the client configuration
func (c *ClientConfig) Validate() error {
	if c.BaseURL == "" {
		return ErrConfigMissingBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	return nil
}
