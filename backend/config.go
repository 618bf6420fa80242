package backend

import (
	"fmt"
	"os"
	"strconv"
	"time"

	indictrans "github.com/arhrid/indic-translator-sub001"
)

// Config is the injected backend configuration. The orchestrator never reads
// the environment itself; callers build a Config and pass the result in.
type Config struct {
	Kind        string        // "openai" or "local"
	Endpoint    string        // Base URL / translate endpoint
	APIKey      string        // API key for hosted backends
	Model       string        // Model name for hosted backends
	Timeout     time.Duration // Per-call timeout
	MaxAttempts int           // Retry attempt count
	BackoffBase time.Duration // Base delay for exponential backoff
}

// Environment variables consumed by FromEnv.
const (
	EnvBackend     = "INDICTRANS_BACKEND"
	EnvBackendURL  = "INDICTRANS_BACKEND_URL"
	EnvAPIKey      = "OPENAI_API_KEY"
	EnvModel       = "INDICTRANS_MODEL"
	EnvTimeoutMs   = "INDICTRANS_TIMEOUT_MS"
	EnvMaxAttempts = "INDICTRANS_MAX_ATTEMPTS"
	EnvBackoffMs   = "INDICTRANS_BACKOFF_MS"
)

// FromEnv builds a Config from environment variables, falling back to
// defaults: local backend, 30s timeout, 3 attempts, 500ms backoff base.
func FromEnv() Config {
	cfg := Config{
		Kind:        os.Getenv(EnvBackend),
		Endpoint:    os.Getenv(EnvBackendURL),
		APIKey:      os.Getenv(EnvAPIKey),
		Model:       os.Getenv(EnvModel),
		Timeout:     30 * time.Second,
		MaxAttempts: 3,
		BackoffBase: 500 * time.Millisecond,
	}

	if cfg.Kind == "" {
		cfg.Kind = "local"
	}
	if ms := envInt(EnvTimeoutMs); ms > 0 {
		cfg.Timeout = time.Duration(ms) * time.Millisecond
	}
	if n := envInt(EnvMaxAttempts); n > 0 {
		cfg.MaxAttempts = n
	}
	if ms := envInt(EnvBackoffMs); ms > 0 {
		cfg.BackoffBase = time.Duration(ms) * time.Millisecond
	}

	return cfg
}

// Build constructs the configured backend adapter.
func (c Config) Build() (Backend, error) {
	switch c.Kind {
	case "openai":
		return NewOpenAIBackend(OpenAIConfig{
			APIKey:  c.APIKey,
			Model:   c.Model,
			BaseURL: c.Endpoint,
		}), nil
	case "local", "":
		return NewLocalBackend(LocalConfig{
			Endpoint: c.Endpoint,
			Timeout:  c.Timeout,
		}), nil
	case "mock":
		return NewMockBackend(), nil
	default:
		return nil, fmt.Errorf("unknown backend kind %q", c.Kind)
	}
}

// RetryConfig derives the orchestrator retry policy from the configuration.
func (c Config) RetryConfig() indictrans.RetryConfig {
	cfg := indictrans.DefaultRetryConfig()
	if c.MaxAttempts > 0 {
		cfg.MaxAttempts = c.MaxAttempts
	}
	if c.BackoffBase > 0 {
		cfg.BaseDelay = c.BackoffBase
	}
	return cfg
}

func envInt(name string) int {
	v := os.Getenv(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
