package client

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"

	"synapsetalk/internal/models"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

var (
	ErrUnknownProvider = errors.New("unsupported provider")
	ErrMissingAPIKey   = errors.New("API key is empty")
)

// Generator is the request/response slice of an eino chat model.
type Generator interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

type ModelOptions struct {
	Model string
}

// New creates the chat model for provider. modelName may be empty to use the
// provider default.
func New(ctx context.Context, provider, apiKey, modelName string) (Generator, error) {
	opts := ModelOptions{Model: modelName}
	switch provider {
	case ProviderOpenAI:
		return NewOpenAIClient(ctx, apiKey, opts)
	case ProviderGemini:
		return NewGeminiClient(ctx, apiKey, opts)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}
}

func NewOpenAIClient(ctx context.Context, apiKey string, opts ModelOptions) (Generator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	name := strings.TrimSpace(opts.Model)
	if name == "" {
		name = "gpt-4o-mini"
	}

	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey: apiKey,
		Model:  name,
	})
	if err != nil {
		log.Printf("Error creating OpenAI client: %v", err)
		return nil, err
	}
	return chatModel, nil
}

func NewGeminiClient(ctx context.Context, apiKey string, opts ModelOptions) (Generator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	name := strings.TrimSpace(opts.Model)
	if name == "" {
		name = "gemini-2.0-flash"
	}

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("Error creating genai client: %v", err)
		return nil, err
	}

	chatModel, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client: genaiClient,
		Model:  name,
	})
	if err != nil {
		log.Printf("Error creating Gemini client: %v", err)
		return nil, err
	}
	return chatModel, nil
}

// BuildMessages turns the stored transcript plus the new user text into the
// request sent to the model, led by the system prompt.
func BuildMessages(history []models.ChatMessage, text string) []*schema.Message {
	out := make([]*schema.Message, 0, len(history)+2)
	if prompt := SystemPrompt(); prompt != "" {
		out = append(out, schema.SystemMessage(prompt))
	}
	for _, m := range history {
		switch m.Role {
		case models.RoleUser:
			out = append(out, schema.UserMessage(m.Content))
		case models.RoleAssistant:
			out = append(out, schema.AssistantMessage(m.Content, nil))
		}
	}
	return append(out, schema.UserMessage(text))
}
