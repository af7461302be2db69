package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// RequestTimeoutSeconds bounds how long a single request may hold a database transaction.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" default:"15"`
	// BodyLimitBytes is the maximum accepted request body size.
	BodyLimitBytes int `mapstructure:"body_limit_bytes" default:"4194304"`
}

const (
	defaultRequestTimeout = 15 * time.Second
	defaultBodyLimit      = 4 * 1024 * 1024
)

// RequestTimeout returns the per-request timeout, falling back to the default
// when the configured value is not positive.
func (c Config) RequestTimeout() time.Duration {
	if c.RequestTimeoutSeconds <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// BodyLimit returns the maximum request body size in bytes.
func (c Config) BodyLimit() int {
	if c.BodyLimitBytes <= 0 {
		return defaultBodyLimit
	}
	return c.BodyLimitBytes
}
