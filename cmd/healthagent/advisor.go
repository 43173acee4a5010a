package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Veraticus/health-agent/internal/advisor"
	"github.com/Veraticus/health-agent/internal/cli"
	"github.com/Veraticus/health-agent/internal/common"
	"github.com/Veraticus/health-agent/internal/config"
	"github.com/Veraticus/health-agent/internal/dashboard"
	"github.com/Veraticus/health-agent/internal/llm"
	"github.com/spf13/viper"
)

// createAdvisor builds the advisor from configuration. A missing API key is
// logged and turns every request into fallback advice.
func createAdvisor() (*advisor.Advisor, config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, config.Config{}, common.NewUserError("Invalid configuration", err)
	}

	client, err := llm.NewClientOrUnavailable(cfg.LLM.Client)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("failed to create LLM client: %w", err)
	}
	if cfg.LLM.Client.APIKey == "" {
		slog.Warn("No API key configured, advice will use built-in fallbacks",
			"provider", cfg.LLM.Client.Provider)
	}

	logger := slog.Default().With("provider", client.Name())
	return advisor.New(client, logger, advisor.WithRetry(cfg.LLM.RetryOpts)), cfg, nil
}

func runDashboard(ctx context.Context, in io.Reader, out io.Writer) error {
	adv, cfg, err := createAdvisor()
	if err != nil {
		return err
	}

	d := dashboard.New(
		cli.NewNonBlockingReader(in),
		out,
		adv,
		dashboard.WithSpinner(cfg.UI.Spinner),
		dashboard.WithLogger(slog.Default()),
	)
	return d.Run(ctx)
}

func withSpinner(cfg config.Config, out io.Writer, call func()) {
	if !cfg.UI.Spinner {
		call()
		return
	}
	spinner := cli.StartSpinner(out, "Consulting advisor...")
	call()
	spinner.Stop()
}
