package cli

import (
	"fmt"
	"io"

	"github.com/Veraticus/health-agent/internal/health"
)

// WriteAdvice prints an advice result between dividers. A fallback result is
// preceded by a diagnostic naming the activity and the failure.
func WriteAdvice(w io.Writer, activity string, result health.AdviceResult) error {
	lines := make([]string, 0, 5)
	if result.IsFallback() {
		lines = append(lines, FormatWarning(fmt.Sprintf("Error during %s: %v", activity, result.Err)))
	}
	lines = append(lines, "", Divider("-"), result.Text, Divider("-"))

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write advice: %w", err)
		}
	}
	return nil
}
