package client

import (
	"context"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synapsetalk/internal/models"
)

func TestBuildMessages_SystemHistoryThenUser(t *testing.T) {
	history := []models.ChatMessage{
		{Role: models.RoleUser, Content: "first"},
		{Role: models.RoleAssistant, Content: "reply"},
		{Role: "tool", Content: "ignored"},
	}

	got := BuildMessages(history, "second")

	require.Len(t, got, 4)
	assert.Equal(t, schema.System, got[0].Role)
	assert.Equal(t, SystemPrompt(), got[0].Content)
	assert.Equal(t, schema.User, got[1].Role)
	assert.Equal(t, "first", got[1].Content)
	assert.Equal(t, schema.Assistant, got[2].Role)
	assert.Equal(t, "reply", got[2].Content)
	assert.Equal(t, schema.User, got[3].Role)
	assert.Equal(t, "second", got[3].Content)
}

func TestSystemPromptEmbedded(t *testing.T) {
	assert.Contains(t, SystemPrompt(), "SynapseTalk")
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New(context.Background(), "mistral", "key", "")
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestNew_MissingKey(t *testing.T) {
	_, err := New(context.Background(), ProviderOpenAI, " ", "")
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	_, err = New(context.Background(), ProviderGemini, "", "")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestNewOpenAIClient(t *testing.T) {
	gen, err := NewOpenAIClient(context.Background(), "sk-test", ModelOptions{})
	require.NoError(t, err)
	assert.NotNil(t, gen)
}
