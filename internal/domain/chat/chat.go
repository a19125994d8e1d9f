// Package chat owns chat sessions between a user and one agent, their
// ordered message history, and the completion round-trip that produces
// the next assistant message.
package chat

import (
	"context"
	"time"

	"agentsync/server/internal/domain/agent"
	"agentsync/server/internal/domain/query"

	"github.com/sashabaranov/go-openai"
)

// Role of a stored chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Chat is a persistent conversation thread between a user and one agent.
type Chat struct {
	ID        uint
	PublicID  string
	UserID    uint
	AgentID   uint
	Title     string
	Agent     *agent.Agent
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Message is a single chat message. Rows are immutable once created and
// ordered by creation time.
type Message struct {
	ID        uint
	PublicID  string
	ChatID    uint
	Role      Role
	Content   string
	CreatedAt time.Time
}

// Filter narrows chat listings.
type Filter struct {
	UserID  uint
	AgentID *uint
}

// Repository persists chats and their messages.
type Repository interface {
	Create(ctx context.Context, c *Chat) error
	// FindByPublicIDAndUserID returns the chat with its agent preloaded.
	FindByPublicIDAndUserID(ctx context.Context, publicID string, userID uint) (*Chat, error)
	// FindByFilter returns chats with agents preloaded, most recently
	// updated first.
	FindByFilter(ctx context.Context, filter Filter, pagination *query.Pagination) ([]*Chat, error)
	Update(ctx context.Context, c *Chat) error
	TouchUpdatedAt(ctx context.Context, id uint) error
	// Delete removes the chat and its messages.
	Delete(ctx context.Context, id uint) error

	CreateMessage(ctx context.Context, m *Message) error
	// ListMessages returns the chat's messages in created order.
	ListMessages(ctx context.Context, chatID uint) ([]*Message, error)
}

// CompletionClient performs a single unary chat-completion call.
type CompletionClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error)
}
