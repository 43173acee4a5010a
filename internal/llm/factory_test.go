package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		wantName string
		wantErr  bool
	}{
		{name: "default provider", provider: "", wantName: "openai"},
		{name: "openai", provider: "openai", wantName: "openai"},
		{name: "anthropic mixed case", provider: "Anthropic", wantName: "anthropic"},
		{name: "unknown", provider: "gemini", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(Config{Provider: tt.provider, APIKey: "test-key"})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, client.Name())
		})
	}
}

func TestNewClientOrUnavailable_MissingKey(t *testing.T) {
	client, err := NewClientOrUnavailable(Config{Provider: "openai"})
	require.NoError(t, err)
	assert.Equal(t, "openai", client.Name())

	_, err = client.Generate(context.Background(), Request{SystemRole: "role", UserPrompt: "prompt"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestNewClientOrUnavailable_UnknownProvider(t *testing.T) {
	_, err := NewClientOrUnavailable(Config{Provider: "gemini", APIKey: "test-key"})
	require.Error(t, err)
}
