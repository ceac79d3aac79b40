package repositories

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"synapsetalk/internal/models"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, m *models.ChatMessage) error
	List(ctx context.Context, limit int) ([]models.ChatMessage, error)
	ListByProvider(ctx context.Context, provider string, limit int) ([]models.ChatMessage, error)
	DeleteAll(ctx context.Context) error
}

type chatMessageRepository struct {
	db *gorm.DB
}

func NewChatMessageRepository(db *gorm.DB) ChatMessageRepository {
	return &chatMessageRepository{db: db}
}

func (r *chatMessageRepository) Create(ctx context.Context, m *models.ChatMessage) error {
	if m == nil {
		return fmt.Errorf("message is required")
	}
	if strings.TrimSpace(m.UUID) == "" {
		return fmt.Errorf("message id is required")
	}
	if strings.TrimSpace(m.Provider) == "" {
		return fmt.Errorf("provider is required")
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// List returns the most recent messages, oldest first. limit <= 0 returns all.
func (r *chatMessageRepository) List(ctx context.Context, limit int) ([]models.ChatMessage, error) {
	return r.list(r.db.WithContext(ctx), limit)
}

func (r *chatMessageRepository) ListByProvider(ctx context.Context, provider string, limit int) ([]models.ChatMessage, error) {
	if provider == "" {
		return nil, fmt.Errorf("provider is required")
	}
	return r.list(r.db.WithContext(ctx).Where("provider = ?", provider), limit)
}

func (r *chatMessageRepository) list(q *gorm.DB, limit int) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	q = q.Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&messages).Error; err != nil {
		return nil, err
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (r *chatMessageRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&models.ChatMessage{}).Error
}
