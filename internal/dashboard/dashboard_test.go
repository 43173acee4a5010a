package dashboard

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/Veraticus/health-agent/internal/advisor"
	"github.com/Veraticus/health-agent/internal/cli"
	"github.com/Veraticus/health-agent/internal/health"
	"github.com/Veraticus/health-agent/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	err     error
	text    string
	prompts []string
}

func (s *stubClient) Name() string { return "stub" }

func (s *stubClient) Generate(_ context.Context, req llm.Request) (string, error) {
	s.prompts = append(s.prompts, req.UserPrompt)
	return s.text, s.err
}

func runDashboard(t *testing.T, client llm.Client, input string) (*Dashboard, string) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	var out bytes.Buffer
	d := New(
		cli.NewNonBlockingReader(strings.NewReader(input)),
		&out,
		advisor.New(client, logger),
		WithLogger(logger),
	)

	require.NoError(t, d.Run(context.Background()))
	return d, out.String()
}

func TestDashboard_MenuAndExit(t *testing.T) {
	d, out := runDashboard(t, &stubClient{}, "4\n")

	assert.Contains(t, out, Title)
	for _, option := range []string{"1. Sleep Analysis", "2. BMI Calculator", "3. Nutrition Planner", "4. Exit"} {
		assert.Contains(t, out, option)
	}
	assert.Equal(t, 1, strings.Count(out, "Choose option (1-4):"))
	assert.Contains(t, out, FarewellMessage)
	assert.Equal(t, StateExiting, d.State())
}

func TestDashboard_InvalidChoice(t *testing.T) {
	d, out := runDashboard(t, &stubClient{}, "5\n4\n")

	assert.Equal(t, 1, strings.Count(out, InvalidChoiceMessage))
	assert.Equal(t, 2, strings.Count(out, "Choose option (1-4):"))
	assert.Equal(t, 1, strings.Count(out, FarewellMessage))
	assert.Equal(t, StateExiting, d.State())
}

func TestDashboard_MenuPrintedOnce(t *testing.T) {
	_, out := runDashboard(t, &stubClient{}, "x\ny\n\n4\n")

	assert.Equal(t, 1, strings.Count(out, "1. Sleep Analysis"))
	assert.Equal(t, 3, strings.Count(out, InvalidChoiceMessage))
}

func TestDashboard_EndOfInputExits(t *testing.T) {
	d, out := runDashboard(t, &stubClient{}, "")

	assert.Contains(t, out, FarewellMessage)
	assert.Equal(t, StateExiting, d.State())
}

func TestDashboard_EndOfInputMidFlowExits(t *testing.T) {
	client := &stubClient{text: "unused"}
	d, out := runDashboard(t, client, "1\n7\n")

	assert.Contains(t, out, FarewellMessage)
	assert.Equal(t, StateExiting, d.State())
	assert.Empty(t, client.prompts)
}

func TestDashboard_SleepFallback(t *testing.T) {
	client := &stubClient{err: errors.New("network unreachable")}
	_, out := runDashboard(t, client, "1\nsix\n6\n11\n4\n4\n")

	assert.Contains(t, out, cli.InvalidNumberMessage)
	assert.Contains(t, out, "Please enter a value between 1 and 10.")
	assert.Contains(t, out, "Error during sleep analysis")
	assert.Contains(t, out, "network unreachable")
	assert.Contains(t, out, health.SleepFallback(health.SleepInput{Hours: 6, Quality: 4}))
	assert.Contains(t, out, FarewellMessage)
	require.Len(t, client.prompts, 1)
}

func TestDashboard_BMIRemote(t *testing.T) {
	client := &stubClient{text: "You are in the normal range."}
	_, out := runDashboard(t, client, "2\n0\n70\n175\n4\n")

	assert.Contains(t, out, cli.NonPositiveMessage)
	assert.Contains(t, out, "BMI Result: 22.9\nYou are in the normal range.")
	assert.NotContains(t, out, "Error during")
	require.Len(t, client.prompts, 1)
	assert.Equal(t, "BMI: 22.9. Categorize and advise on:", client.prompts[0])
}

func TestDashboard_BMIFallback(t *testing.T) {
	client := &stubClient{err: errors.New("401 unauthorized")}
	_, out := runDashboard(t, client, "2\n50\n180\n4\n")

	assert.Contains(t, out, "Error during BMI analysis")
	assert.Contains(t, out, "MOCK BMI Result: 15.4 (Underweight)")
}

func TestDashboard_Nutrition(t *testing.T) {
	client := &stubClient{text: "Breakfast: eggs."}
	_, out := runDashboard(t, client, "3\n2200\nketo\nlose weight\n4\n")

	assert.Contains(t, out, "Breakfast: eggs.")
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "daily calorie intake of 2200 calories, prefers keto diet, and aims to lose weight.")
}

func TestDashboard_SeveralFlowsInOneSession(t *testing.T) {
	client := &stubClient{text: "ok"}
	_, out := runDashboard(t, client, "1\n8\n9\n2\n70\n175\n3\n1800\nvegan\ngain muscle\n4\n")

	assert.Len(t, client.prompts, 3)
	assert.Equal(t, 4, strings.Count(out, "Choose option (1-4):"))
}

func TestDashboard_CanceledContextExits(t *testing.T) {
	pr, pw := io.Pipe()
	defer func() { _ = pw.Close() }()

	var out bytes.Buffer
	d := New(cli.NewNonBlockingReader(pr), &out, advisor.New(&stubClient{}, nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, d.Run(ctx))
	assert.Contains(t, out.String(), FarewellMessage)
	assert.Equal(t, StateExiting, d.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "awaiting_choice", StateAwaitingChoice.String())
	assert.Equal(t, "state(9)", State(9).String())
}

func TestDashboard_WithSpinner(t *testing.T) {
	client := &stubClient{text: "Keep a steady bedtime."}
	var out bytes.Buffer
	d := New(
		cli.NewNonBlockingReader(strings.NewReader("1\n7\n8\n4\n")),
		&out,
		advisor.New(client, nil),
		WithSpinner(true),
	)

	require.NoError(t, d.Run(context.Background()))
	assert.Contains(t, out.String(), "Keep a steady bedtime.")
	assert.Contains(t, out.String(), FarewellMessage)
}
