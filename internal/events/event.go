package events

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventInfo    EventType = "info"
	EventWarn    EventType = "warn"
	EventSuccess EventType = "success"
	EventError   EventType = "error"
)

const (
	NavChanged    = "nav:changed"
	SettingsSaved = "settings:saved"
	ChatMessage   = "chat:message"
)

// Notice is the payload of every event sent to the frontend. Data carries the
// event-specific value (page descriptor, chat message, ...).
type Notice struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data,omitempty"`
}

func CreateNotice(eventType EventType, message string, data any) Notice {
	return Notice{
		ID:        uuid.NewString(),
		Type:      eventType,
		Message:   message,
		Timestamp: time.Now(),
		Data:      data,
	}
}

// NewInfo creates an info Notice.
func NewInfo(message string, data any) Notice {
	return CreateNotice(EventInfo, message, data)
}

// NewWarn creates a warn Notice.
func NewWarn(message string, data any) Notice {
	return CreateNotice(EventWarn, message, data)
}

// NewError creates an error Notice.
func NewError(message string, data any) Notice {
	return CreateNotice(EventError, message, data)
}

// NewSuccess creates a success Notice.
func NewSuccess(message string, data any) Notice {
	return CreateNotice(EventSuccess, message, data)
}
