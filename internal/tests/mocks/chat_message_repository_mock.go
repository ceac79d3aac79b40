package mocks

import (
	"context"
	"synapsetalk/internal/models"
)

// ChatMessageRepositoryMock keeps messages in memory unless a Func override is set.
type ChatMessageRepositoryMock struct {
	CreateFunc         func(ctx context.Context, m *models.ChatMessage) error
	ListFunc           func(ctx context.Context, limit int) ([]models.ChatMessage, error)
	ListByProviderFunc func(ctx context.Context, provider string, limit int) ([]models.ChatMessage, error)
	DeleteAllFunc      func(ctx context.Context) error

	Stored []models.ChatMessage
}

func (m *ChatMessageRepositoryMock) Create(ctx context.Context, msg *models.ChatMessage) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, msg)
	}
	msg.ID = uint(len(m.Stored) + 1)
	m.Stored = append(m.Stored, *msg)
	return nil
}

func (m *ChatMessageRepositoryMock) List(ctx context.Context, limit int) ([]models.ChatMessage, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit)
	}
	return tail(m.Stored, limit), nil
}

func (m *ChatMessageRepositoryMock) ListByProvider(ctx context.Context, provider string, limit int) ([]models.ChatMessage, error) {
	if m.ListByProviderFunc != nil {
		return m.ListByProviderFunc(ctx, provider, limit)
	}
	var out []models.ChatMessage
	for _, msg := range m.Stored {
		if msg.Provider == provider {
			out = append(out, msg)
		}
	}
	return tail(out, limit), nil
}

func (m *ChatMessageRepositoryMock) DeleteAll(ctx context.Context) error {
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(ctx)
	}
	m.Stored = nil
	return nil
}

func tail(messages []models.ChatMessage, limit int) []models.ChatMessage {
	if limit > 0 && len(messages) > limit {
		messages = messages[len(messages)-limit:]
	}
	return append([]models.ChatMessage(nil), messages...)
}
