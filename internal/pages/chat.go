package pages

import (
	"context"

	"synapsetalk/internal/events"
	"synapsetalk/internal/models"
	"synapsetalk/internal/navigation"
	"synapsetalk/internal/services"
)

// Chat is the chat room. Message handling lives in the chat service; the page
// forwards requests and notifies the frontend of replies.
type Chat struct {
	context context.Context
	chats   services.ChatService
}

func NewChat(chats services.ChatService) *Chat {
	return &Chat{chats: chats, context: context.Background()}
}

func (c *Chat) Startup(ctx context.Context) {
	c.context = ctx
}

func (c *Chat) ID() navigation.PageID { return navigation.PageChat }
func (c *Chat) Title() string         { return "Chat Room" }
func (c *Chat) Icon() string          { return "assets/chat.svg" }

func (c *Chat) Providers() []models.ChatProvider {
	return c.chats.Providers()
}

func (c *Chat) Send(provider, text string) (*models.ChatMessage, error) {
	reply, err := c.chats.Send(c.context, provider, text)
	if err != nil {
		events.Emit(c.context, events.ChatMessage, events.NewError(err.Error(), nil))
		return nil, err
	}
	events.Emit(c.context, events.ChatMessage, events.NewInfo("reply from "+provider, reply))
	return reply, nil
}

func (c *Chat) History() ([]models.ChatMessage, error) {
	return c.chats.History(c.context)
}

func (c *Chat) Clear() error {
	return c.chats.Clear(c.context)
}
