// Package config loads runtime configuration from viper, the process
// environment and an optional .env file.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Veraticus/health-agent/internal/common"
	"github.com/Veraticus/health-agent/internal/llm"
	"github.com/spf13/viper"
)

// Config is the resolved configuration for one process run.
type Config struct {
	EnvFile string
	Logging LoggingConfig
	LLM     LLMConfig
	UI      UIConfig
}

// LoggingConfig selects the slog level and handler.
type LoggingConfig struct {
	Level  string
	Format string
}

// LLMConfig configures the advice service client.
type LLMConfig struct {
	Client    llm.Config
	RetryOpts common.RetryOptions
}

// UIConfig toggles console niceties.
type UIConfig struct {
	Spinner bool
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("env_file", ".env")
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
	v.SetDefault("llm.provider", llm.ProviderOpenAI)
	v.SetDefault("llm.timeout", 60*time.Second)
	v.SetDefault("llm.max_retries", 1)
	v.SetDefault("llm.retry_delay", time.Second)
	v.SetDefault("ui.spinner", true)
}

// Load resolves configuration from v. Values are looked up in this order:
// 1. Viper (flags, config file, HEALTHAGENT_ env vars)
// 2. Provider environment variables (OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENAI_BASE_URL)
// 3. Defaults
//
// A missing API key is not an error; the advice client reports it per call.
func Load(v *viper.Viper) (Config, error) {
	provider := strings.ToLower(strings.TrimSpace(v.GetString("llm.provider")))
	if provider == "" {
		provider = llm.ProviderOpenAI
	}
	if provider != llm.ProviderOpenAI && provider != llm.ProviderAnthropic {
		return Config{}, fmt.Errorf("%w: unsupported llm.provider %q", common.ErrInvalidConfig, provider)
	}

	maxRetries := v.GetInt("llm.max_retries")
	if maxRetries < 1 {
		return Config{}, fmt.Errorf("%w: llm.max_retries must be at least 1, got %d", common.ErrInvalidConfig, maxRetries)
	}

	timeout := v.GetDuration("llm.timeout")
	if timeout <= 0 {
		return Config{}, fmt.Errorf("%w: llm.timeout must be positive", common.ErrInvalidConfig)
	}

	cfg := Config{
		EnvFile: ExpandPath(v.GetString("env_file")),
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
		},
		LLM: LLMConfig{
			Client: llm.Config{
				Provider:  provider,
				APIKey:    v.GetString("llm.api_key"),
				Model:     v.GetString("llm.model"),
				BaseURL:   v.GetString("llm.base_url"),
				Timeout:   timeout,
				MaxTokens: v.GetInt("llm.max_tokens"),
			},
			RetryOpts: common.RetryOptions{
				MaxAttempts:  maxRetries,
				InitialDelay: v.GetDuration("llm.retry_delay"),
				MaxDelay:     30 * time.Second,
				Multiplier:   2.0,
			},
		},
		UI: UIConfig{
			Spinner: v.GetBool("ui.spinner"),
		},
	}

	if cfg.LLM.Client.APIKey == "" {
		cfg.LLM.Client.APIKey = os.Getenv(apiKeyEnv(provider))
	}
	if cfg.LLM.Client.BaseURL == "" && provider == llm.ProviderOpenAI {
		cfg.LLM.Client.BaseURL = os.Getenv("OPENAI_BASE_URL")
	}

	return cfg, nil
}

func apiKeyEnv(provider string) string {
	if provider == llm.ProviderAnthropic {
		return "ANTHROPIC_API_KEY"
	}
	return "OPENAI_API_KEY"
}
