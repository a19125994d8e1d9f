package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agentsync/server/internal/domain/agent"
	"agentsync/server/internal/domain/query"
	"agentsync/server/internal/utils/apperrors"
)

type fakeAgentStore struct {
	agents []*agent.Agent
}

func (f *fakeAgentStore) Create(_ context.Context, a *agent.Agent) error {
	f.agents = append(f.agents, a)
	return nil
}

func (f *fakeAgentStore) FindByPublicIDAndUserID(ctx context.Context, publicID string, userID uint) (*agent.Agent, error) {
	for _, a := range f.agents {
		if a.PublicID == publicID && a.UserID == userID {
			return a, nil
		}
	}
	return nil, apperrors.NewError(ctx, apperrors.LayerRepository, apperrors.ErrorTypeNotFound, "agent not found", nil, "74a4e872-10c2-4b78-9a8c-5bb854a2f2f0")
}

func (f *fakeAgentStore) FindByIDAndUserID(ctx context.Context, id, userID uint) (*agent.Agent, error) {
	for _, a := range f.agents {
		if a.ID == id && a.UserID == userID {
			return a, nil
		}
	}
	return nil, apperrors.NewError(ctx, apperrors.LayerRepository, apperrors.ErrorTypeNotFound, "agent not found", nil, "e5cf3a51-9cf1-4fd4-8604-43c1c3a9acb0")
}

func (f *fakeAgentStore) ListByUserID(_ context.Context, userID uint, _ *query.Pagination) ([]*agent.Agent, error) {
	var owned []*agent.Agent
	for _, a := range f.agents {
		if a.UserID == userID {
			owned = append(owned, a)
		}
	}
	return owned, nil
}

func (f *fakeAgentStore) Update(_ context.Context, _ *agent.Agent) error { return nil }

func (f *fakeAgentStore) Delete(_ context.Context, _ uint) error { return nil }

type fakeChatStore struct {
	chats    []*Chat
	messages []*Message
	nextID   uint
	touched  int
}

func (f *fakeChatStore) Create(_ context.Context, c *Chat) error {
	f.nextID++
	c.ID = f.nextID
	f.chats = append(f.chats, c)
	return nil
}

func (f *fakeChatStore) FindByPublicIDAndUserID(ctx context.Context, publicID string, userID uint) (*Chat, error) {
	for _, c := range f.chats {
		if c.PublicID == publicID && c.UserID == userID {
			return c, nil
		}
	}
	return nil, apperrors.NewError(ctx, apperrors.LayerRepository, apperrors.ErrorTypeNotFound, "chat not found", nil, "0d6a9a1c-2b3f-4d21-8b5c-82d5712de111")
}

func (f *fakeChatStore) FindByFilter(_ context.Context, filter Filter, _ *query.Pagination) ([]*Chat, error) {
	var matched []*Chat
	for _, c := range f.chats {
		if c.UserID != filter.UserID {
			continue
		}
		if filter.AgentID != nil && c.AgentID != *filter.AgentID {
			continue
		}
		matched = append(matched, c)
	}
	return matched, nil
}

func (f *fakeChatStore) Update(_ context.Context, _ *Chat) error { return nil }

func (f *fakeChatStore) TouchUpdatedAt(_ context.Context, _ uint) error {
	f.touched++
	return nil
}

func (f *fakeChatStore) Delete(_ context.Context, id uint) error {
	var kept []*Chat
	for _, c := range f.chats {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	f.chats = kept
	var keptMessages []*Message
	for _, m := range f.messages {
		if m.ChatID != id {
			keptMessages = append(keptMessages, m)
		}
	}
	f.messages = keptMessages
	return nil
}

func (f *fakeChatStore) CreateMessage(_ context.Context, m *Message) error {
	f.nextID++
	m.ID = f.nextID
	f.messages = append(f.messages, m)
	return nil
}

func (f *fakeChatStore) ListMessages(_ context.Context, chatID uint) ([]*Message, error) {
	var matched []*Message
	for _, m := range f.messages {
		if m.ChatID == chatID {
			matched = append(matched, m)
		}
	}
	return matched, nil
}

type fakeCompletion struct {
	response *openai.ChatCompletionResponse
	err      error
	requests []openai.ChatCompletionRequest
}

func (f *fakeCompletion) CreateChatCompletion(_ context.Context, request openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error) {
	f.requests = append(f.requests, request)
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func completionReply(content string) *openai.ChatCompletionResponse {
	return &openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: "assistant", Content: content}},
		},
	}
}

func newChatTestService(completion CompletionClient) (*Service, *fakeChatStore, *fakeAgentStore) {
	chats := &fakeChatStore{}
	agents := &fakeAgentStore{agents: []*agent.Agent{
		{ID: 1, PublicID: "agent_tutor", UserID: 7, Name: "Tutor", Instructions: "You are a math tutor."},
	}}
	return NewService(chats, agents, completion, "test-model"), chats, agents
}

func TestCreateChatDefaultsTitle(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newChatTestService(&fakeCompletion{})

	c, err := svc.CreateChat(ctx, 7, "agent_tutor", "  ")
	require.NoError(t, err)
	assert.Equal(t, "Chat with Tutor", c.Title)
	assert.Equal(t, uint(1), c.AgentID)
	assert.Regexp(t, `^chat_`, c.PublicID)
}

func TestCreateChatUnknownAgent(t *testing.T) {
	svc, _, _ := newChatTestService(&fakeCompletion{})

	_, err := svc.CreateChat(context.Background(), 7, "agent_missing", "Homework")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestListChatsFiltersByAgent(t *testing.T) {
	ctx := context.Background()
	svc, _, agents := newChatTestService(&fakeCompletion{})
	agents.agents = append(agents.agents, &agent.Agent{ID: 2, PublicID: "agent_chef", UserID: 7, Name: "Chef", Instructions: "You cook."})

	_, err := svc.CreateChat(ctx, 7, "agent_tutor", "")
	require.NoError(t, err)
	_, err = svc.CreateChat(ctx, 7, "agent_chef", "")
	require.NoError(t, err)

	filter := "agent_chef"
	chats, err := svc.ListChats(ctx, 7, &filter, nil)
	require.NoError(t, err)
	require.Len(t, chats, 1)
	assert.Equal(t, uint(2), chats[0].AgentID)
}

func TestUpdateChatRejectsEmptyTitle(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newChatTestService(&fakeCompletion{})
	c, err := svc.CreateChat(ctx, 7, "agent_tutor", "Homework")
	require.NoError(t, err)

	_, err = svc.UpdateChat(ctx, 7, c.PublicID, "   ")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
}

func TestSendMessageStoresBothSides(t *testing.T) {
	ctx := context.Background()
	completion := &fakeCompletion{response: completionReply("2 plus 2 is 4.")}
	svc, chats, _ := newChatTestService(completion)
	c, err := svc.CreateChat(ctx, 7, "agent_tutor", "")
	require.NoError(t, err)

	userMsg, assistantMsg, err := svc.SendMessage(ctx, 7, c.PublicID, "What is 2+2?")
	require.NoError(t, err)
	assert.Equal(t, RoleUser, userMsg.Role)
	assert.Equal(t, "What is 2+2?", userMsg.Content)
	assert.Equal(t, RoleAssistant, assistantMsg.Role)
	assert.Equal(t, "2 plus 2 is 4.", assistantMsg.Content)

	stored, err := chats.ListMessages(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, RoleUser, stored[0].Role)
	assert.Equal(t, RoleAssistant, stored[1].Role)
	assert.Equal(t, 1, chats.touched)
}

func TestSendMessageSendsSystemPromptFirst(t *testing.T) {
	ctx := context.Background()
	completion := &fakeCompletion{response: completionReply("Sure.")}
	svc, _, _ := newChatTestService(completion)
	c, err := svc.CreateChat(ctx, 7, "agent_tutor", "")
	require.NoError(t, err)

	_, _, err = svc.SendMessage(ctx, 7, c.PublicID, "Help me factor x^2-1")
	require.NoError(t, err)

	require.Len(t, completion.requests, 1)
	request := completion.requests[0]
	assert.Equal(t, "test-model", request.Model)
	require.NotEmpty(t, request.Messages)
	assert.Equal(t, openai.ChatMessageRoleSystem, request.Messages[0].Role)
	assert.Contains(t, request.Messages[0].Content, "You are a math tutor.")
	assert.Equal(t, "Help me factor x^2-1", request.Messages[len(request.Messages)-1].Content)
}

func TestSendMessageEmptyContent(t *testing.T) {
	svc, _, _ := newChatTestService(&fakeCompletion{})

	_, _, err := svc.SendMessage(context.Background(), 7, "chat_any", "   ")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
}

func TestSendMessageCompletionFailure(t *testing.T) {
	ctx := context.Background()
	completion := &fakeCompletion{err: errors.New("connection refused")}
	svc, chats, _ := newChatTestService(completion)
	c, err := svc.CreateChat(ctx, 7, "agent_tutor", "")
	require.NoError(t, err)

	_, _, err = svc.SendMessage(ctx, 7, c.PublicID, "Hello")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeUpstream, apperrors.TypeOf(err))

	// The user message is persisted before the upstream call.
	stored, listErr := chats.ListMessages(ctx, c.ID)
	require.NoError(t, listErr)
	require.Len(t, stored, 1)
	assert.Equal(t, RoleUser, stored[0].Role)
}

func TestSendMessageEmptyCompletionContent(t *testing.T) {
	ctx := context.Background()
	completion := &fakeCompletion{response: &openai.ChatCompletionResponse{}}
	svc, _, _ := newChatTestService(completion)
	c, err := svc.CreateChat(ctx, 7, "agent_tutor", "")
	require.NoError(t, err)

	_, _, err = svc.SendMessage(ctx, 7, c.PublicID, "Hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no response from model")
}

func TestSendMessageToUnownedChat(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newChatTestService(&fakeCompletion{response: completionReply("hi")})
	c, err := svc.CreateChat(ctx, 7, "agent_tutor", "")
	require.NoError(t, err)

	_, _, err = svc.SendMessage(ctx, 8, c.PublicID, "Hello")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteChatRemovesMessages(t *testing.T) {
	ctx := context.Background()
	completion := &fakeCompletion{response: completionReply("hi")}
	svc, chats, _ := newChatTestService(completion)
	c, err := svc.CreateChat(ctx, 7, "agent_tutor", "")
	require.NoError(t, err)
	_, _, err = svc.SendMessage(ctx, 7, c.PublicID, "Hello")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteChat(ctx, 7, c.PublicID))
	assert.Empty(t, chats.chats)
	assert.Empty(t, chats.messages)
}
