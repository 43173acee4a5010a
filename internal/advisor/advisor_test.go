package advisor

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/Veraticus/health-agent/internal/common"
	"github.com/Veraticus/health-agent/internal/health"
	"github.com/Veraticus/health-agent/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient returns scripted replies in order.
type stubClient struct {
	replies []stubReply
	calls   []llm.Request
}

type stubReply struct {
	err  error
	text string
}

func (s *stubClient) Name() string { return "stub" }

func (s *stubClient) Generate(_ context.Context, req llm.Request) (string, error) {
	s.calls = append(s.calls, req)
	if len(s.replies) == 0 {
		return "", errors.New("no reply scripted")
	}
	reply := s.replies[0]
	s.replies = s.replies[1:]
	return reply.text, reply.err
}

func newTestAdvisor(client llm.Client, opts ...Option) (*Advisor, *bytes.Buffer) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return New(client, logger, opts...), &logs
}

func TestAdvisor_SleepRemote(t *testing.T) {
	client := &stubClient{replies: []stubReply{{text: "Go to bed earlier."}}}
	a, logs := newTestAdvisor(client)

	result := a.Sleep(context.Background(), health.SleepInput{Hours: 6, Quality: 4})

	assert.Contains(t, logs.String(), "level=INFO msg=\"advice generated\"")
	assert.Contains(t, logs.String(), "origin=remote")

	assert.Equal(t, health.OriginRemote, result.Origin)
	assert.Equal(t, "Go to bed earlier.", result.Text)
	require.NoError(t, result.Err)
	require.Len(t, client.calls, 1)
	assert.Equal(t, "You are a sleep specialist with 20 years experience.", client.calls[0].SystemRole)
	require.NotNil(t, client.calls[0].Temperature)
	assert.InDelta(t, 0.5, *client.calls[0].Temperature, 1e-9)
}

func TestAdvisor_SleepFallback(t *testing.T) {
	client := &stubClient{replies: []stubReply{{err: errors.New("connection refused")}}}
	a, logs := newTestAdvisor(client)

	result := a.Sleep(context.Background(), health.SleepInput{Hours: 6, Quality: 4})

	assert.Equal(t, health.OriginFallback, result.Origin)
	assert.Equal(t, health.SleepFallback(health.SleepInput{Hours: 6, Quality: 4}), result.Text)
	assert.Contains(t, result.Text, "You slept for 6.0 hours with a quality rating of 4/10.")
	require.Error(t, result.Err)
	assert.ErrorIs(t, result.Err, common.ErrAdviceService)
	assert.Contains(t, result.Err.Error(), "connection refused")
	assert.Len(t, client.calls, 1, "a failed call is not retried by default")
	assert.Contains(t, logs.String(), "advice request failed, using fallback")
	assert.Contains(t, logs.String(), "sleep_quality=4")
}

func TestAdvisor_MissingCredentialFallsBack(t *testing.T) {
	client, err := llm.NewClientOrUnavailable(llm.Config{Provider: "openai"})
	require.NoError(t, err)
	a, _ := newTestAdvisor(client)

	result := a.Nutrition(context.Background(), health.NutritionInput{Calories: 2000, Diet: "vegan", Goal: "gain muscle"})

	assert.True(t, result.IsFallback())
	assert.ErrorIs(t, result.Err, llm.ErrMissingAPIKey)
	assert.Contains(t, result.Text, "Calorie Target: 2000.0 kcal | Diet: vegan | Goal: gain muscle")
}

func TestAdvisor_BMI(t *testing.T) {
	t.Run("remote text gets preamble", func(t *testing.T) {
		client := &stubClient{replies: []stubReply{{text: "Normal weight, keep it up."}}}
		a, _ := newTestAdvisor(client)

		bmi, result, err := a.BMI(context.Background(), health.BMIInput{WeightKg: 70, HeightCm: 175})

		require.NoError(t, err)
		assert.Equal(t, health.NormalWeight, bmi.Category)
		assert.Equal(t, "BMI Result: 22.9\nNormal weight, keep it up.", result.Text)
		require.Len(t, client.calls, 1)
		assert.Equal(t, "BMI: 22.9. Categorize and advise on:", client.calls[0].UserPrompt)
		assert.Nil(t, client.calls[0].Temperature)
	})

	t.Run("fallback names category", func(t *testing.T) {
		client := &stubClient{replies: []stubReply{{err: errors.New("timeout")}}}
		a, _ := newTestAdvisor(client)

		_, result, err := a.BMI(context.Background(), health.BMIInput{WeightKg: 120, HeightCm: 170})

		require.NoError(t, err)
		assert.True(t, result.IsFallback())
		assert.Contains(t, result.Text, "MOCK BMI Result: 41.5 (Obese)")
	})

	t.Run("invalid measurements never reach the client", func(t *testing.T) {
		client := &stubClient{}
		a, _ := newTestAdvisor(client)

		_, _, err := a.BMI(context.Background(), health.BMIInput{WeightKg: 70, HeightCm: 0})

		require.ErrorIs(t, err, health.ErrInvalidMeasurement)
		assert.Empty(t, client.calls)
	})
}

func TestAdvisor_WithRetry(t *testing.T) {
	client := &stubClient{replies: []stubReply{
		{err: &common.RetryableError{Err: errors.New("503"), Retryable: true}},
		{text: "Eat breakfast."},
	}}
	a, _ := newTestAdvisor(client, WithRetry(common.RetryOptions{MaxAttempts: 2, InitialDelay: time.Millisecond}))

	result := a.Nutrition(context.Background(), health.NutritionInput{Calories: 1800, Diet: "keto", Goal: "lose weight"})

	assert.Equal(t, health.OriginRemote, result.Origin)
	assert.Equal(t, "Eat breakfast.", result.Text)
	assert.Len(t, client.calls, 2)
}
