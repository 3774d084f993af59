// Package config loads the client-core configuration from the environment
// so the mains stay lean.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// defaultRequestTimeout bounds a single gateway request.
const defaultRequestTimeout = 30 * time.Second

// Client captures everything the admin console needs to talk to the
// catalog API.
type Client struct {
	// APIBaseURL is the catalog API origin, without a trailing slash.
	APIBaseURL string
	// StateDir is where the persisted token lives between runs.
	StateDir string
	// RequestTimeout bounds each gateway request.
	RequestTimeout time.Duration
	// RedisURL switches token persistence from the state dir to redis
	// when set.
	RedisURL string
	// OTel emits gateway spans through the global OpenTelemetry provider
	// instead of the noop tracer.
	OTel bool
	// Verbose enables debug-level logging.
	Verbose bool
}

// Mock captures the mock catalog server configuration.
type Mock struct {
	Addr      string
	JWTSecret string
	TokenTTL  time.Duration
	Verbose   bool
}

// FromEnv builds the client config from environment variables.
func FromEnv() Client {
	baseURL := os.Getenv("REELOPS_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	stateDir := os.Getenv("REELOPS_STATE_DIR")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		stateDir = filepath.Join(home, ".reelops")
	}

	timeout := defaultRequestTimeout
	if raw := os.Getenv("REELOPS_REQUEST_TIMEOUT"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			timeout = parsed
		}
	}

	return Client{
		APIBaseURL:     baseURL,
		StateDir:       stateDir,
		RequestTimeout: timeout,
		RedisURL:       os.Getenv("REELOPS_REDIS_URL"),
		OTel:           os.Getenv("REELOPS_OTEL") == "true",
		Verbose:        os.Getenv("REELOPS_VERBOSE") == "true",
	}
}

// MockFromEnv builds the mock server config from environment variables.
func MockFromEnv() Mock {
	addr := os.Getenv("REELOPS_MOCK_ADDR")
	if addr == "" {
		if port := os.Getenv("PORT"); port != "" {
			addr = ":" + port
		} else {
			addr = ":8080"
		}
	}

	ttl := time.Duration(0)
	if raw := os.Getenv("REELOPS_MOCK_TOKEN_TTL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			ttl = parsed
		}
	}

	return Mock{
		Addr:      addr,
		JWTSecret: os.Getenv("REELOPS_MOCK_JWT_SECRET"),
		TokenTTL:  ttl,
		Verbose:   os.Getenv("REELOPS_VERBOSE") == "true",
	}
}
