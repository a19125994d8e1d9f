package chatreq

// CreateChatRequest represents the request to start a chat with an agent
type CreateChatRequest struct {
	AgentID string  `json:"agent_id" binding:"required"`
	Title   *string `json:"title,omitempty"`
}

// UpdateChatRequest represents the request to rename a chat
type UpdateChatRequest struct {
	Title string `json:"title" binding:"required"`
}

// SendMessageRequest represents the request to send a chat message
type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// ListChatsQueryParams represents query parameters for listing chats
type ListChatsQueryParams struct {
	AgentID *string `form:"agent_id"`
}
