package cli

import (
	"io"
	"log/slog"

	"github.com/schollz/progressbar/v3"
)

// Spinner shows an indeterminate progress indicator while a blocking call runs.
type Spinner struct {
	bar *progressbar.ProgressBar
}

// StartSpinner renders a spinner with description to w.
func StartSpinner(w io.Writer, description string) *Spinner {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetDescription("[cyan]"+description+"[reset]"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	if err := bar.Add(1); err != nil {
		slog.Warn("Failed to render spinner", "error", err)
	}

	return &Spinner{bar: bar}
}

// Stop clears the spinner.
func (s *Spinner) Stop() {
	if s == nil || s.bar == nil {
		return
	}
	if err := s.bar.Finish(); err != nil {
		slog.Warn("Failed to finish spinner", "error", err)
	}
}
