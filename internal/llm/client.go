package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Veraticus/health-agent/internal/common"
)

var (
	// ErrMissingAPIKey is returned when a provider needs a credential and none was configured.
	ErrMissingAPIKey = errors.New("API key is not configured")
	// ErrEmptyResponse is returned when the provider answered without any text.
	ErrEmptyResponse = errors.New("empty completion")
)

// Client defines the interface for LLM providers.
type Client interface {
	// Generate returns the completion for a single system role and user prompt.
	Generate(ctx context.Context, req Request) (string, error)
	Name() string
}

// Request is one completion call.
type Request struct {
	// Temperature is left to the provider default when nil.
	Temperature *float64
	SystemRole  string
	UserPrompt  string
}

// Config holds configuration for an LLM client.
type Config struct {
	Provider  string
	APIKey    string
	Model     string
	BaseURL   string
	Timeout   time.Duration
	MaxTokens int
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return 60 * time.Second
	}
	return c.Timeout
}

func newHTTPClient(cfg Config) *http.Client {
	return &http.Client{
		Timeout: cfg.timeout(),
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// statusError classifies an HTTP failure so retries skip client errors.
func statusError(provider string, status int, body string) error {
	err := fmt.Errorf("%s API error (status %d): %s", provider, status, body)

	switch {
	case status == http.StatusTooManyRequests:
		return &common.RetryableError{Err: fmt.Errorf("%w: %w", common.ErrRateLimit, err), Retryable: true}
	case status >= http.StatusInternalServerError:
		return &common.RetryableError{Err: err, Retryable: true}
	default:
		return &common.RetryableError{Err: err, Retryable: false}
	}
}
