package chatres

import (
	"agentsync/server/internal/domain/chat"
)

// ChatResponse represents a single chat response
type ChatResponse struct {
	ID        string  `json:"id"`
	Object    string  `json:"object"`
	Title     string  `json:"title"`
	AgentID   string  `json:"agent_id,omitempty"`
	AgentName *string `json:"agent_name,omitempty"`
	CreatedAt int64   `json:"created_at"`
	UpdatedAt int64   `json:"updated_at"`
}

// ChatListResponse represents a list of chats
type ChatListResponse struct {
	Object string         `json:"object"`
	Data   []ChatResponse `json:"data"`
}

// ChatDeletedResponse represents the delete confirmation response
type ChatDeletedResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}

// MessageResponse represents a single chat message
type MessageResponse struct {
	ID        string `json:"id"`
	Object    string `json:"object"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"created_at"`
}

// MessageListResponse represents a chat's message history
type MessageListResponse struct {
	Object string            `json:"object"`
	Data   []MessageResponse `json:"data"`
}

// SendMessageResponse carries both sides of one completion round-trip
type SendMessageResponse struct {
	Object           string          `json:"object"`
	UserMessage      MessageResponse `json:"user_message"`
	AssistantMessage MessageResponse `json:"assistant_message"`
}

// NewChatResponse creates a response from a domain chat
func NewChatResponse(c *chat.Chat) *ChatResponse {
	resp := &ChatResponse{
		ID:        c.PublicID,
		Object:    "chat",
		Title:     c.Title,
		CreatedAt: c.CreatedAt.Unix(),
		UpdatedAt: c.UpdatedAt.Unix(),
	}
	if c.Agent != nil {
		resp.AgentID = c.Agent.PublicID
		resp.AgentName = &c.Agent.Name
	}
	return resp
}

// NewChatListResponse creates a list response from domain chats
func NewChatListResponse(chats []*chat.Chat) *ChatListResponse {
	data := make([]ChatResponse, 0, len(chats))
	for _, c := range chats {
		data = append(data, *NewChatResponse(c))
	}
	return &ChatListResponse{
		Object: "list",
		Data:   data,
	}
}

// NewMessageResponse creates a response from a domain message
func NewMessageResponse(m *chat.Message) *MessageResponse {
	return &MessageResponse{
		ID:        m.PublicID,
		Object:    "chat.message",
		Role:      string(m.Role),
		Content:   m.Content,
		CreatedAt: m.CreatedAt.Unix(),
	}
}

// NewMessageListResponse creates a list response from domain messages
func NewMessageListResponse(messages []*chat.Message) *MessageListResponse {
	data := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		data = append(data, *NewMessageResponse(m))
	}
	return &MessageListResponse{
		Object: "list",
		Data:   data,
	}
}

// NewSendMessageResponse pairs the stored user message with the
// assistant reply
func NewSendMessageResponse(userMsg, assistantMsg *chat.Message) *SendMessageResponse {
	return &SendMessageResponse{
		Object:           "chat.exchange",
		UserMessage:      *NewMessageResponse(userMsg),
		AssistantMessage: *NewMessageResponse(assistantMsg),
	}
}
