package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"synapsetalk/internal/config"
	"synapsetalk/internal/llm/client"
	"synapsetalk/internal/models"
	"synapsetalk/internal/repositories"
)

var (
	ErrEmptyMessage      = errors.New("message is empty")
	ErrUnknownProvider   = errors.New("unknown chat provider")
	ErrMissingCredential = errors.New("API key is not configured")
)

// historyLimit caps how many earlier messages are replayed to the model.
const historyLimit = 20

// ChatModelFactory builds the model used for one request.
type ChatModelFactory func(ctx context.Context, provider, apiKey, modelName string) (client.Generator, error)

type ChatService interface {
	Providers() []models.ChatProvider
	Send(ctx context.Context, provider, text string) (*models.ChatMessage, error)
	History(ctx context.Context) ([]models.ChatMessage, error)
	Clear(ctx context.Context) error
}

type chatProvider struct {
	id   string
	name string
	key  config.Key
}

var chatProviders = []chatProvider{
	{id: client.ProviderOpenAI, name: "ChatGPT", key: config.OpenAIAPIKey},
	{id: client.ProviderGemini, name: "Gemini", key: config.GoogleAPIKey},
}

func lookupProvider(id string) (chatProvider, bool) {
	for _, p := range chatProviders {
		if p.id == id {
			return p, true
		}
	}
	return chatProvider{}, false
}

type chatService struct {
	configs  ConfigReader
	messages repositories.ChatMessageRepository
	catalog  ModelCatalogService
	newModel ChatModelFactory
}

// NewChatService wires the chat room backend. A nil factory uses client.New.
func NewChatService(configs ConfigReader, messages repositories.ChatMessageRepository, catalog ModelCatalogService, newModel ChatModelFactory) ChatService {
	if newModel == nil {
		newModel = client.New
	}
	return &chatService{
		configs:  configs,
		messages: messages,
		catalog:  catalog,
		newModel: newModel,
	}
}

func (s *chatService) Providers() []models.ChatProvider {
	values := s.configs.Load()
	out := make([]models.ChatProvider, 0, len(chatProviders))
	for _, p := range chatProviders {
		out = append(out, models.ChatProvider{
			ID:          p.id,
			DisplayName: p.name,
			Model:       s.modelFor(p.id),
			Configured:  values[p.key] != "",
		})
	}
	return out
}

// Send stores the user message, asks the provider for a reply and stores the
// reply. The credential is read from the configuration on every call.
func (s *chatService) Send(ctx context.Context, provider, text string) (*models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}
	p, ok := lookupProvider(strings.TrimSpace(provider))
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}
	apiKey := s.configs.Load()[p.key]
	if apiKey == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingCredential, p.name)
	}

	history, err := s.messages.ListByProvider(ctx, p.id, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}

	userMsg := &models.ChatMessage{
		UUID:     uuid.NewString(),
		Provider: p.id,
		Role:     models.RoleUser,
		Content:  text,
	}
	if err := s.messages.Create(ctx, userMsg); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	gen, err := s.newModel(ctx, p.id, apiKey, s.modelFor(p.id))
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", p.id, err)
	}

	reply, err := gen.Generate(ctx, client.BuildMessages(history, text))
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", p.name, err)
	}
	if reply == nil || strings.TrimSpace(reply.Content) == "" {
		return nil, fmt.Errorf("%s returned no content", p.name)
	}

	assistantMsg := &models.ChatMessage{
		UUID:     uuid.NewString(),
		Provider: p.id,
		Role:     models.RoleAssistant,
		Content:  reply.Content,
	}
	if err := s.messages.Create(ctx, assistantMsg); err != nil {
		return nil, fmt.Errorf("failed to store reply: %w", err)
	}
	return assistantMsg, nil
}

func (s *chatService) History(ctx context.Context) ([]models.ChatMessage, error) {
	return s.messages.List(ctx, 0)
}

func (s *chatService) Clear(ctx context.Context) error {
	return s.messages.DeleteAll(ctx)
}

func (s *chatService) modelFor(providerID string) string {
	if s.catalog == nil {
		return ""
	}
	name, _ := s.catalog.DefaultModel(providerID)
	return name
}
