package cli

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/Veraticus/health-agent/internal/common"
)

// Diagnostics written when a line is rejected.
const (
	InvalidNumberMessage  = "Invalid input! Please enter a number."
	InvalidIntegerMessage = "Invalid input! Please enter an integer."
	NonPositiveMessage    = "Please enter a value greater than 0."
)

// InputReader prompts for values until the user enters a valid one.
// Parse and range failures are reported to the writer and retried without
// limit; only end of input and cancellation are returned as errors.
type InputReader struct {
	source LineSource
	writer io.Writer
}

// NewInputReader creates an input reader over source, writing prompts and
// diagnostics to writer.
func NewInputReader(source LineSource, writer io.Writer) *InputReader {
	return &InputReader{
		source: source,
		writer: writer,
	}
}

// ReadText prompts once and returns the trimmed line.
func (r *InputReader) ReadText(ctx context.Context, prompt string) (string, error) {
	return r.prompt(ctx, prompt)
}

// ReadFloat prompts until the line parses as a finite number.
func (r *InputReader) ReadFloat(ctx context.Context, prompt string) (float64, error) {
	for {
		line, err := r.prompt(ctx, prompt)
		if err != nil {
			return 0, err
		}

		value, err := ParseFloat(line)
		if err != nil {
			if err := r.diagnose(InvalidNumberMessage); err != nil {
				return 0, err
			}
			continue
		}

		return value, nil
	}
}

// ReadPositiveFloat prompts until the line parses as a number greater than zero.
func (r *InputReader) ReadPositiveFloat(ctx context.Context, prompt string) (float64, error) {
	for {
		value, err := r.ReadFloat(ctx, prompt)
		if err != nil {
			return 0, err
		}

		if value <= 0 {
			if err := r.diagnose(NonPositiveMessage); err != nil {
				return 0, err
			}
			continue
		}

		return value, nil
	}
}

// ReadInt prompts until the line parses as an integer within the optional bounds.
func (r *InputReader) ReadInt(ctx context.Context, prompt string, opts ...IntOption) (int, error) {
	bounds := NewIntBounds(opts...)

	for {
		line, err := r.prompt(ctx, prompt)
		if err != nil {
			return 0, err
		}

		value, err := ParseInt(line)
		if err != nil {
			if err := r.diagnose(InvalidIntegerMessage); err != nil {
				return 0, err
			}
			continue
		}

		if err := bounds.Check(value); err != nil {
			if err := r.diagnose(bounds.Diagnostic()); err != nil {
				return 0, err
			}
			continue
		}

		return value, nil
	}
}

func (r *InputReader) prompt(ctx context.Context, prompt string) (string, error) {
	if _, err := fmt.Fprint(r.writer, PromptStyle.Render(prompt)); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	return r.source.ReadLine(ctx)
}

func (r *InputReader) diagnose(message string) error {
	if _, err := fmt.Fprintln(r.writer, FormatError(message)); err != nil {
		return fmt.Errorf("failed to write diagnostic: %w", err)
	}
	return nil
}

// ParseFloat parses a finite decimal number. Blank input is rejected.
func ParseFloat(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty input", common.ErrInputParse)
	}

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", common.ErrInputParse, trimmed)
	}
	if err := CheckFinite(value); err != nil {
		return 0, err
	}

	return value, nil
}

// CheckFinite rejects NaN and infinities.
func CheckFinite(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %v is not a finite number", common.ErrInputParse, value)
	}
	return nil
}

// ParseInt parses a base-10 integer. Blank input is rejected.
func ParseInt(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty input", common.ErrInputParse)
	}

	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", common.ErrInputParse, trimmed)
	}

	return value, nil
}
