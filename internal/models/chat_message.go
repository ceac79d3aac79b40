package models

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one persisted line of the chat room transcript.
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UUID      string    `gorm:"size:36;not null;uniqueIndex" json:"id"`
	Provider  string    `gorm:"size:50;not null;index" json:"provider"`
	Role      string    `gorm:"size:20;not null" json:"role"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
