package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Supported providers.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// NewClient creates an LLM client based on the provided configuration.
func NewClient(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case ProviderOpenAI, "":
		return newOpenAIClient(cfg)
	case ProviderAnthropic:
		return newAnthropicClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}

// NewClientOrUnavailable is NewClient, except that a missing credential
// yields a client whose every call fails instead of an error. Startup never
// depends on the advice service being reachable.
func NewClientOrUnavailable(cfg Config) (Client, error) {
	client, err := NewClient(cfg)
	if errors.Is(err, ErrMissingAPIKey) {
		return Unavailable(cfg.Provider, err), nil
	}
	return client, err
}

// Unavailable returns a client that fails every call with cause.
func Unavailable(provider string, cause error) Client {
	if provider == "" {
		provider = ProviderOpenAI
	}
	return &unavailableClient{provider: provider, cause: cause}
}

type unavailableClient struct {
	cause    error
	provider string
}

func (c *unavailableClient) Name() string {
	return c.provider
}

func (c *unavailableClient) Generate(_ context.Context, _ Request) (string, error) {
	return "", c.cause
}
