package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"agentsync/server/internal/domain/agent"
	"agentsync/server/internal/domain/query"
	"agentsync/server/internal/infrastructure/metrics"
	"agentsync/server/internal/utils/apperrors"
	"agentsync/server/internal/utils/idgen"
)

// Service handles business logic for chats and messages.
type Service struct {
	repo       Repository
	agents     agent.Repository
	completion CompletionClient
	model      string
}

func NewService(repo Repository, agents agent.Repository, completion CompletionClient, model string) *Service {
	return &Service{
		repo:       repo,
		agents:     agents,
		completion: completion,
		model:      model,
	}
}

// CreateChat starts a chat with an owned agent. Title defaults to
// "Chat with {agent.name}".
func (s *Service) CreateChat(ctx context.Context, userID uint, agentPublicID, title string) (*Chat, error) {
	a, err := s.agents.FindByPublicIDAndUserID(ctx, agentPublicID, userID)
	if err != nil {
		return nil, apperrors.AsError(ctx, apperrors.LayerDomain, err, "agent not found")
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = fmt.Sprintf("Chat with %s", a.Name)
	}

	c := &Chat{
		PublicID: idgen.MustGenerateSecureID("chat", 16),
		UserID:   userID,
		AgentID:  a.ID,
		Title:    title,
		Agent:    a,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, apperrors.AsError(ctx, apperrors.LayerDomain, err, "failed to create chat")
	}
	return c, nil
}

// GetChat retrieves an owned chat with its agent.
func (s *Service) GetChat(ctx context.Context, userID uint, publicID string) (*Chat, error) {
	c, err := s.repo.FindByPublicIDAndUserID(ctx, publicID, userID)
	if err != nil {
		return nil, apperrors.AsError(ctx, apperrors.LayerDomain, err, "chat not found")
	}
	return c, nil
}

// ListChats returns the user's chats, most recently updated first,
// optionally filtered to one agent.
func (s *Service) ListChats(ctx context.Context, userID uint, agentPublicID *string, pagination *query.Pagination) ([]*Chat, error) {
	filter := Filter{UserID: userID}
	if agentPublicID != nil && *agentPublicID != "" {
		a, err := s.agents.FindByPublicIDAndUserID(ctx, *agentPublicID, userID)
		if err != nil {
			return nil, apperrors.AsError(ctx, apperrors.LayerDomain, err, "agent not found")
		}
		filter.AgentID = &a.ID
	}

	chats, err := s.repo.FindByFilter(ctx, filter, pagination)
	if err != nil {
		return nil, apperrors.AsError(ctx, apperrors.LayerDomain, err, "failed to list chats")
	}
	return chats, nil
}

// UpdateChat renames an owned chat.
func (s *Service) UpdateChat(ctx context.Context, userID uint, publicID, title string) (*Chat, error) {
	c, err := s.GetChat(ctx, userID, publicID)
	if err != nil {
		return nil, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperrors.NewError(ctx, apperrors.LayerDomain, apperrors.ErrorTypeValidation, "title must not be empty", nil, "7c510db6-3ad8-4b74-84a9-afe8f51cc9db")
	}
	c.Title = title
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, apperrors.AsError(ctx, apperrors.LayerDomain, err, "failed to update chat")
	}
	return c, nil
}

// DeleteChat removes an owned chat together with its messages.
func (s *Service) DeleteChat(ctx context.Context, userID uint, publicID string) error {
	c, err := s.GetChat(ctx, userID, publicID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, c.ID); err != nil {
		return apperrors.AsError(ctx, apperrors.LayerDomain, err, "failed to delete chat")
	}
	return nil
}

// ListMessages returns the owned chat's messages in created order.
func (s *Service) ListMessages(ctx context.Context, userID uint, publicID string) ([]*Message, error) {
	c, err := s.GetChat(ctx, userID, publicID)
	if err != nil {
		return nil, err
	}
	messages, err := s.repo.ListMessages(ctx, c.ID)
	if err != nil {
		return nil, apperrors.AsError(ctx, apperrors.LayerDomain, err, "failed to list messages")
	}
	return messages, nil
}

// SendMessage persists the user's message, forwards the full transcript
// to the completion provider under the agent's system prompt, and
// persists the returned assistant message. The call is synchronous and
// unary. Concurrent sends to the same chat can interleave the
// read-history/append sequence; ordering falls to the store.
func (s *Service) SendMessage(ctx context.Context, userID uint, chatPublicID, content string) (*Message, *Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, nil, apperrors.NewError(ctx, apperrors.LayerDomain, apperrors.ErrorTypeValidation, "message content must not be empty", nil, "1bb4349b-b5fe-4334-82f5-e1c849813394")
	}

	c, err := s.GetChat(ctx, userID, chatPublicID)
	if err != nil {
		return nil, nil, err
	}

	userMessage := &Message{
		PublicID: idgen.MustGenerateSecureID("msg", 16),
		ChatID:   c.ID,
		Role:     RoleUser,
		Content:  content,
	}
	if err := s.repo.CreateMessage(ctx, userMessage); err != nil {
		return nil, nil, apperrors.AsError(ctx, apperrors.LayerDomain, err, "failed to store user message")
	}
	metrics.ChatMessagesTotal.WithLabelValues(string(RoleUser)).Inc()

	history, err := s.repo.ListMessages(ctx, c.ID)
	if err != nil {
		return nil, nil, apperrors.AsError(ctx, apperrors.LayerDomain, err, "failed to load message history")
	}

	request := openai.ChatCompletionRequest{
		Model:    s.model,
		Messages: buildCompletionMessages(c.Agent.Instructions, history),
	}

	start := time.Now()
	response, err := s.completion.CreateChatCompletion(ctx, request)
	metrics.CompletionDuration.WithLabelValues(s.model).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.CompletionErrorsTotal.WithLabelValues(s.model).Inc()
		return nil, nil, apperrors.NewError(ctx, apperrors.LayerDomain, apperrors.ErrorTypeUpstream, "completion request failed", err, "01a08a1c-232d-491f-b311-b5a42b3086b5")
	}

	assistantContent := ""
	if len(response.Choices) > 0 {
		assistantContent = response.Choices[0].Message.Content
	}
	if assistantContent == "" {
		return nil, nil, apperrors.NewError(ctx, apperrors.LayerDomain, apperrors.ErrorTypeInternal, "no response from model", nil, "b36355f5-3aa6-4e0a-9c82-f896f0e5e82d")
	}

	assistantMessage := &Message{
		PublicID: idgen.MustGenerateSecureID("msg", 16),
		ChatID:   c.ID,
		Role:     RoleAssistant,
		Content:  assistantContent,
	}
	if err := s.repo.CreateMessage(ctx, assistantMessage); err != nil {
		return nil, nil, apperrors.AsError(ctx, apperrors.LayerDomain, err, "failed to store assistant message")
	}
	metrics.ChatMessagesTotal.WithLabelValues(string(RoleAssistant)).Inc()

	if err := s.repo.TouchUpdatedAt(ctx, c.ID); err != nil {
		return nil, nil, apperrors.AsError(ctx, apperrors.LayerDomain, err, "failed to touch chat")
	}

	return userMessage, assistantMessage, nil
}

func buildCompletionMessages(instructions string, history []*Message) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: BuildSystemPrompt(instructions),
	})
	for _, m := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}
	return messages
}
