// Package dashboard runs the interactive health menu.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Veraticus/health-agent/internal/cli"
	"github.com/Veraticus/health-agent/internal/health"
)

// Menu choices.
const (
	ChoiceSleep     = "1"
	ChoiceBMI       = "2"
	ChoiceNutrition = "3"
	ChoiceExit      = "4"
)

// Console text.
const (
	Title                 = "HEALTH AGENT SYSTEM"
	ChoicePrompt          = "Choose option (1-4): "
	InvalidChoiceMessage  = "Invalid choice! Please try again."
	FarewellMessage       = "Exiting system..."
	consultingDescription = "Consulting advisor..."
)

// State is the controller's position in the menu loop.
type State int

// Dashboard states.
const (
	StateMenuShown State = iota
	StateAwaitingChoice
	StateDispatching
	StateExiting
)

func (s State) String() string {
	switch s {
	case StateMenuShown:
		return "menu_shown"
	case StateAwaitingChoice:
		return "awaiting_choice"
	case StateDispatching:
		return "dispatching"
	case StateExiting:
		return "exiting"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Advisor produces advice for each dashboard flow.
type Advisor interface {
	Sleep(ctx context.Context, in health.SleepInput) health.AdviceResult
	BMI(ctx context.Context, in health.BMIInput) (health.BMIResult, health.AdviceResult, error)
	Nutrition(ctx context.Context, in health.NutritionInput) health.AdviceResult
}

// Dashboard is the menu loop. It only stops on the exit choice, end of
// input, or cancellation.
type Dashboard struct {
	advisor Advisor
	input   *cli.InputReader
	writer  io.Writer
	logger  *slog.Logger
	state   State
	spinner bool
}

// Option configures a Dashboard.
type Option func(*Dashboard)

// WithSpinner shows a spinner while advice is being generated.
func WithSpinner(enabled bool) Option {
	return func(d *Dashboard) { d.spinner = enabled }
}

// WithLogger sets the logger used for state transitions.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dashboard) { d.logger = logger }
}

// New creates a dashboard reading from source and writing to writer.
func New(source cli.LineSource, writer io.Writer, advisor Advisor, opts ...Option) *Dashboard {
	d := &Dashboard{
		advisor: advisor,
		input:   cli.NewInputReader(source, writer),
		writer:  writer,
		logger:  slog.Default(),
		state:   StateMenuShown,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// State returns the current state.
func (d *Dashboard) State() State {
	return d.state
}

// Run shows the menu and serves choices until the user exits.
func (d *Dashboard) Run(ctx context.Context) error {
	d.transition(StateMenuShown)
	if err := d.printMenu(); err != nil {
		return err
	}

	for {
		d.transition(StateAwaitingChoice)

		if _, err := fmt.Fprintln(d.writer); err != nil {
			return fmt.Errorf("failed to write newline: %w", err)
		}
		choice, err := d.input.ReadText(ctx, ChoicePrompt)
		if err != nil {
			return d.stop(err)
		}

		var flow func(context.Context) error
		switch choice {
		case ChoiceSleep:
			flow = d.sleepAnalysis
		case ChoiceBMI:
			flow = d.bmiCalculator
		case ChoiceNutrition:
			flow = d.nutritionPlanner
		case ChoiceExit:
			return d.exit()
		default:
			if err := d.println(cli.FormatError(InvalidChoiceMessage)); err != nil {
				return err
			}
			continue
		}

		d.transition(StateDispatching)
		if err := flow(ctx); err != nil {
			return d.stop(err)
		}
	}
}

func (d *Dashboard) sleepAnalysis(ctx context.Context) error {
	hours, err := d.input.ReadFloat(ctx, "Enter sleep hours: ")
	if err != nil {
		return err
	}
	quality, err := d.input.ReadInt(ctx, "Rate sleep quality (1-10): ", cli.WithRange(1, 10))
	if err != nil {
		return err
	}

	stop := d.startSpinner()
	result := d.advisor.Sleep(ctx, health.SleepInput{Hours: hours, Quality: quality})
	stop()

	return d.printResult("sleep analysis", result)
}

func (d *Dashboard) bmiCalculator(ctx context.Context) error {
	weight, err := d.input.ReadPositiveFloat(ctx, "Enter weight (kg): ")
	if err != nil {
		return err
	}
	height, err := d.input.ReadPositiveFloat(ctx, "Enter height (cm): ")
	if err != nil {
		return err
	}

	stop := d.startSpinner()
	_, result, err := d.advisor.BMI(ctx, health.BMIInput{WeightKg: weight, HeightCm: height})
	stop()
	if err != nil {
		// Positive input makes this unreachable; report and return to the menu.
		return d.println(cli.FormatError(err.Error()))
	}

	return d.printResult("BMI analysis", result)
}

func (d *Dashboard) nutritionPlanner(ctx context.Context) error {
	calories, err := d.input.ReadFloat(ctx, "Enter daily calorie intake: ")
	if err != nil {
		return err
	}
	diet, err := d.input.ReadText(ctx, "Enter dietary preference (e.g., vegetarian, vegan, keto): ")
	if err != nil {
		return err
	}
	goal, err := d.input.ReadText(ctx, "Enter health goal (e.g., lose weight, gain muscle): ")
	if err != nil {
		return err
	}

	stop := d.startSpinner()
	result := d.advisor.Nutrition(ctx, health.NutritionInput{Calories: calories, Diet: diet, Goal: goal})
	stop()

	return d.printResult("nutrition planning", result)
}

func (d *Dashboard) printMenu() error {
	lines := []string{
		"",
		cli.RenderBanner(Title),
		"1. Sleep Analysis",
		"2. BMI Calculator",
		"3. Nutrition Planner",
		"4. Exit",
	}
	for _, line := range lines {
		if err := d.println(line); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dashboard) printResult(activity string, result health.AdviceResult) error {
	return cli.WriteAdvice(d.writer, activity, result)
}

func (d *Dashboard) startSpinner() func() {
	if !d.spinner {
		return func() {}
	}
	return cli.StartSpinner(d.writer, consultingDescription).Stop
}

// stop ends the loop. End of input and cancellation count as choosing exit.
func (d *Dashboard) stop(err error) error {
	if errors.Is(err, io.EOF) ||
		errors.Is(err, cli.ErrInputCancelled) ||
		errors.Is(err, context.Canceled) {
		d.logger.Debug("input ended, leaving dashboard", "reason", err)
		return d.exit()
	}
	return err
}

func (d *Dashboard) exit() error {
	d.transition(StateExiting)
	return d.println(FarewellMessage)
}

func (d *Dashboard) transition(next State) {
	if d.state != next {
		d.logger.Debug("dashboard state change", "from", d.state, "to", next)
	}
	d.state = next
}

func (d *Dashboard) println(line string) error {
	if _, err := fmt.Fprintln(d.writer, line); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
