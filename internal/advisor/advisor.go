// Package advisor asks the remote model for health advice and substitutes
// the fixed fallback text whenever the call fails.
package advisor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Veraticus/health-agent/internal/common"
	"github.com/Veraticus/health-agent/internal/health"
	"github.com/Veraticus/health-agent/internal/llm"
)

// Advisor turns advice requests into displayable results.
type Advisor struct {
	client    llm.Client
	logger    *slog.Logger
	retryOpts common.RetryOptions
}

// Option configures an Advisor.
type Option func(*Advisor)

// WithRetry overrides the default of a single attempt per request.
func WithRetry(opts common.RetryOptions) Option {
	return func(a *Advisor) { a.retryOpts = opts }
}

// New creates an advisor backed by client.
func New(client llm.Client, logger *slog.Logger, opts ...Option) *Advisor {
	if logger == nil {
		logger = slog.Default()
	}

	a := &Advisor{
		client:    client,
		logger:    logger,
		retryOpts: common.RetryOptions{MaxAttempts: 1},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Advise requests advice for req. It always returns displayable text: on any
// remote failure the result carries req.Fallback and the failure in Err.
func (a *Advisor) Advise(ctx context.Context, req health.AdviceRequest) health.AdviceResult {
	text, err := a.generate(ctx, req)
	if err != nil {
		err = fmt.Errorf("%w: %s %s advice: %w", common.ErrAdviceService, a.client.Name(), req.Kind, err)
		common.LogWarn(a.logger, err, "advice request failed, using fallback", a.fields(req))
		return health.FallbackResult(req, err)
	}

	fields := a.fields(req)
	fields["origin"] = string(health.OriginRemote)
	fields["length"] = len(text)
	common.LogInfo(a.logger, "advice generated", fields)
	return health.RemoteResult(req, text)
}

// Sleep analyses a night of sleep.
func (a *Advisor) Sleep(ctx context.Context, in health.SleepInput) health.AdviceResult {
	return a.Advise(ctx, health.NewSleepRequest(in))
}

// BMI computes the BMI locally and asks for advice on it.
func (a *Advisor) BMI(ctx context.Context, in health.BMIInput) (health.BMIResult, health.AdviceResult, error) {
	result, err := health.ComputeBMI(in.WeightKg, in.HeightCm)
	if err != nil {
		return health.BMIResult{}, health.AdviceResult{}, err
	}

	return result, a.Advise(ctx, health.NewBMIRequest(in, result)), nil
}

// Nutrition builds a nutrition plan.
func (a *Advisor) Nutrition(ctx context.Context, in health.NutritionInput) health.AdviceResult {
	return a.Advise(ctx, health.NewNutritionRequest(in))
}

func (a *Advisor) generate(ctx context.Context, req health.AdviceRequest) (string, error) {
	call := llm.Request{
		SystemRole:  req.SystemRole,
		UserPrompt:  req.Prompt,
		Temperature: req.Temperature,
	}

	var text string
	err := common.WithRetry(ctx, func() error {
		var genErr error
		text, genErr = a.client.Generate(ctx, call)
		return genErr
	}, a.retryOpts)

	return text, err
}

func (a *Advisor) fields(req health.AdviceRequest) common.Fields {
	fields := common.Fields{
		"request_id": req.ID.String(),
		"kind":       string(req.Kind),
		"provider":   a.client.Name(),
	}
	for k, v := range req.Params {
		fields[k] = v
	}
	return fields
}
