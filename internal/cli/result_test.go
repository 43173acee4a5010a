package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Veraticus/health-agent/internal/health"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAdvice(t *testing.T) {
	req := health.NewSleepRequest(health.SleepInput{Hours: 6, Quality: 4})

	t.Run("remote", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteAdvice(&buf, "sleep analysis", health.RemoteResult(req, "Rest well.")))

		assert.Contains(t, buf.String(), "Rest well.")
		assert.NotContains(t, buf.String(), "Error during")
		assert.Equal(t, 2, strings.Count(buf.String(), strings.Repeat("-", DividerWidth)))
	})

	t.Run("fallback", func(t *testing.T) {
		var buf bytes.Buffer
		result := health.FallbackResult(req, errors.New("offline"))
		require.NoError(t, WriteAdvice(&buf, "sleep analysis", result))

		assert.Contains(t, buf.String(), "Error during sleep analysis: offline")
		assert.Contains(t, buf.String(), req.Fallback)
	})

	t.Run("write failure", func(t *testing.T) {
		err := WriteAdvice(failingWriter{}, "sleep analysis", health.RemoteResult(req, "x"))
		require.Error(t, err)
	})
}
