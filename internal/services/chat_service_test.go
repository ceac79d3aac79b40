package services

import (
	"context"
	"errors"
	"testing"

	"synapsetalk/internal/assets"
	"synapsetalk/internal/config"
	"synapsetalk/internal/llm/client"
	"synapsetalk/internal/models"
	"synapsetalk/internal/tests/mocks"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chatFixture struct {
	store     *mocks.ConfigStoreMock
	repo      *mocks.ChatMessageRepositoryMock
	generator *mocks.GeneratorMock
	calls     []string
	service   ChatService
}

func newChatFixture(t *testing.T, values config.Values) *chatFixture {
	t.Helper()
	f := &chatFixture{
		store:     &mocks.ConfigStoreMock{Values: values},
		repo:      &mocks.ChatMessageRepositoryMock{},
		generator: &mocks.GeneratorMock{},
	}
	catalog, err := NewModelCatalogService(assets.ModelsData, f.store)
	require.NoError(t, err)
	factory := func(ctx context.Context, provider, apiKey, modelName string) (client.Generator, error) {
		f.calls = append(f.calls, provider+":"+apiKey+":"+modelName)
		return f.generator, nil
	}
	f.service = NewChatService(f.store, f.repo, catalog, factory)
	return f
}

func TestChatService_Providers(t *testing.T) {
	f := newChatFixture(t, config.Values{config.GoogleAPIKey: "g"})

	providers := f.service.Providers()

	require.Len(t, providers, 2)
	assert.Equal(t, "openai", providers[0].ID)
	assert.False(t, providers[0].Configured)
	assert.Equal(t, "gpt-4o-mini", providers[0].Model)
	assert.Equal(t, "gemini", providers[1].ID)
	assert.True(t, providers[1].Configured)
}

func TestChatService_Send_Success(t *testing.T) {
	f := newChatFixture(t, config.Values{config.OpenAIAPIKey: "sk-1"})
	f.generator.GenerateFunc = func(ctx context.Context, input []*schema.Message) (*schema.Message, error) {
		return schema.AssistantMessage("hello there", nil), nil
	}

	reply, err := f.service.Send(context.Background(), "openai", "  hi  ")

	require.NoError(t, err)
	assert.Equal(t, models.RoleAssistant, reply.Role)
	assert.Equal(t, "hello there", reply.Content)
	assert.NotEmpty(t, reply.UUID)
	assert.Equal(t, []string{"openai:sk-1:gpt-4o-mini"}, f.calls)

	require.Len(t, f.repo.Stored, 2)
	assert.Equal(t, models.RoleUser, f.repo.Stored[0].Role)
	assert.Equal(t, "hi", f.repo.Stored[0].Content)
	assert.Equal(t, "hello there", f.repo.Stored[1].Content)

	require.Len(t, f.generator.Requests, 1)
	req := f.generator.Requests[0]
	assert.Equal(t, schema.System, req[0].Role)
	assert.Equal(t, "hi", req[len(req)-1].Content)
}

func TestChatService_Send_ReplaysProviderHistory(t *testing.T) {
	f := newChatFixture(t, config.Values{config.OpenAIAPIKey: "sk", config.GoogleAPIKey: "g"})
	ctx := context.Background()

	_, err := f.service.Send(ctx, "openai", "one")
	require.NoError(t, err)
	_, err = f.service.Send(ctx, "gemini", "other")
	require.NoError(t, err)
	_, err = f.service.Send(ctx, "openai", "two")
	require.NoError(t, err)

	last := f.generator.Requests[2]
	var contents []string
	for _, m := range last[1:] {
		contents = append(contents, m.Content)
	}
	assert.Equal(t, []string{"one", "ok", "two"}, contents)
}

func TestChatService_Send_UsesLatestCredential(t *testing.T) {
	f := newChatFixture(t, config.Values{})
	ctx := context.Background()

	_, err := f.service.Send(ctx, "gemini", "hi")
	assert.ErrorIs(t, err, ErrMissingCredential)
	assert.Empty(t, f.repo.Stored)

	require.NoError(t, f.store.Save(config.Values{config.GoogleAPIKey: "AIza"}))
	_, err = f.service.Send(ctx, "gemini", "hi")
	require.NoError(t, err)
	assert.Equal(t, []string{"gemini:AIza:gemini-2.0-flash"}, f.calls)
}

func TestChatService_Send_Validation(t *testing.T) {
	f := newChatFixture(t, config.Values{config.OpenAIAPIKey: "sk"})
	ctx := context.Background()

	_, err := f.service.Send(ctx, "openai", "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, err = f.service.Send(ctx, "claude", "hi")
	assert.ErrorIs(t, err, ErrUnknownProvider)

	assert.Empty(t, f.calls)
}

func TestChatService_Send_ModelFailureKeepsUserMessage(t *testing.T) {
	f := newChatFixture(t, config.Values{config.OpenAIAPIKey: "sk"})
	f.generator.GenerateFunc = func(ctx context.Context, input []*schema.Message) (*schema.Message, error) {
		return nil, errors.New("rate limited")
	}

	_, err := f.service.Send(context.Background(), "openai", "hi")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
	require.Len(t, f.repo.Stored, 1)
	assert.Equal(t, models.RoleUser, f.repo.Stored[0].Role)
}

func TestChatService_Send_EmptyReply(t *testing.T) {
	f := newChatFixture(t, config.Values{config.OpenAIAPIKey: "sk"})
	f.generator.GenerateFunc = func(ctx context.Context, input []*schema.Message) (*schema.Message, error) {
		return schema.AssistantMessage("  ", nil), nil
	}

	_, err := f.service.Send(context.Background(), "openai", "hi")

	assert.Error(t, err)
	assert.Len(t, f.repo.Stored, 1)
}

func TestChatService_Send_FactoryError(t *testing.T) {
	store := &mocks.ConfigStoreMock{Values: config.Values{config.OpenAIAPIKey: "sk"}}
	repo := &mocks.ChatMessageRepositoryMock{}
	factory := func(ctx context.Context, provider, apiKey, modelName string) (client.Generator, error) {
		return nil, errors.New("boom")
	}
	service := NewChatService(store, repo, nil, factory)

	_, err := service.Send(context.Background(), "openai", "hi")

	assert.EqualError(t, err, "failed to create openai client: boom")
}

func TestChatService_HistoryAndClear(t *testing.T) {
	f := newChatFixture(t, config.Values{config.OpenAIAPIKey: "sk"})
	ctx := context.Background()
	_, err := f.service.Send(ctx, "openai", "hi")
	require.NoError(t, err)

	history, err := f.service.History(ctx)
	require.NoError(t, err)
	assert.Len(t, history, 2)

	require.NoError(t, f.service.Clear(ctx))
	history, err = f.service.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestChatService_HistoryError(t *testing.T) {
	store := &mocks.ConfigStoreMock{Values: config.Values{config.OpenAIAPIKey: "sk"}}
	repo := &mocks.ChatMessageRepositoryMock{
		ListByProviderFunc: func(ctx context.Context, provider string, limit int) ([]models.ChatMessage, error) {
			return nil, errors.New("db down")
		},
	}
	service := NewChatService(store, repo, nil, nil)

	_, err := service.Send(context.Background(), "openai", "hi")

	assert.ErrorContains(t, err, "db down")
}
