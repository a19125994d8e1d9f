package chathandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"agentsync/server/internal/domain/chat"
	"agentsync/server/internal/interfaces/httpserver/middlewares"
	"agentsync/server/internal/interfaces/httpserver/requests"
	"agentsync/server/internal/interfaces/httpserver/requests/chatreq"
	"agentsync/server/internal/interfaces/httpserver/responses"
	"agentsync/server/internal/interfaces/httpserver/responses/chatres"
	"agentsync/server/internal/utils/apperrors"
)

// ChatHandler handles chat session and message requests.
type ChatHandler struct {
	chats  *chat.Service
	logger zerolog.Logger
}

func NewChatHandler(chats *chat.Service, logger zerolog.Logger) *ChatHandler {
	return &ChatHandler{chats: chats, logger: logger}
}

// CreateChat handles POST /v1/chats
// @Summary Start a chat with an agent
// @Tags Chats
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body chatreq.CreateChatRequest true "Chat details"
// @Success 201 {object} chatres.ChatResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /v1/chats [post]
func (h *ChatHandler) CreateChat(c *gin.Context) {
	usr, ok := middlewares.UserFromContext(c)
	if !ok {
		responses.HandleNewError(c, apperrors.ErrorTypeUnauthorized, "authentication required", "8e0c6d1b-2f19-4f06-9d98-cf9b8f54a7d3")
		return
	}

	var req chatreq.CreateChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, apperrors.ErrorTypeValidation, "invalid request body", "b17c2ce1-03a7-44a2-9be2-0d5ba20a9b21")
		return
	}

	title := ""
	if req.Title != nil {
		title = *req.Title
	}

	created, err := h.chats.CreateChat(c.Request.Context(), usr.ID, req.AgentID, title)
	if err != nil {
		responses.HandleError(c, err, "failed to create chat")
		return
	}

	c.JSON(http.StatusCreated, chatres.NewChatResponse(created))
}

// ListChats handles GET /v1/chats
// @Summary List chats
// @Description List the user's chats, most recently updated first, optionally filtered by agent.
// @Tags Chats
// @Security BearerAuth
// @Produce json
// @Param agent_id query string false "Agent public ID filter"
// @Param limit query int false "Maximum number of chats to return"
// @Param offset query int false "Number of chats to skip"
// @Success 200 {object} chatres.ChatListResponse
// @Failure 401 {object} responses.ErrorResponse
// @Router /v1/chats [get]
func (h *ChatHandler) ListChats(c *gin.Context) {
	usr, ok := middlewares.UserFromContext(c)
	if !ok {
		responses.HandleNewError(c, apperrors.ErrorTypeUnauthorized, "authentication required", "23b7ff8b-8cf7-47b2-b0ad-f9de20b76a1f")
		return
	}

	var params chatreq.ListChatsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		responses.HandleNewError(c, apperrors.ErrorTypeValidation, "invalid query parameters", "9b2c0ffd-b5a7-4f42-83aa-7a3c4f3a6a52")
		return
	}

	pagination, err := requests.GetPaginationFromQuery(c)
	if err != nil {
		responses.HandleError(c, err, "invalid pagination")
		return
	}

	chats, err := h.chats.ListChats(c.Request.Context(), usr.ID, params.AgentID, pagination)
	if err != nil {
		responses.HandleError(c, err, "failed to list chats")
		return
	}

	c.JSON(http.StatusOK, chatres.NewChatListResponse(chats))
}

// GetChat handles GET /v1/chats/:chat_id
// @Summary Get a chat
// @Tags Chats
// @Security BearerAuth
// @Produce json
// @Param chat_id path string true "Chat public ID"
// @Success 200 {object} chatres.ChatResponse
// @Failure 401 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /v1/chats/{chat_id} [get]
func (h *ChatHandler) GetChat(c *gin.Context) {
	usr, ok := middlewares.UserFromContext(c)
	if !ok {
		responses.HandleNewError(c, apperrors.ErrorTypeUnauthorized, "authentication required", "5f7f7c41-3b9e-4e76-9f2b-1b6d54c7820a")
		return
	}

	found, err := h.chats.GetChat(c.Request.Context(), usr.ID, c.Param("chat_id"))
	if err != nil {
		responses.HandleError(c, err, "chat not found")
		return
	}

	c.JSON(http.StatusOK, chatres.NewChatResponse(found))
}

// UpdateChat handles POST /v1/chats/:chat_id
// @Summary Rename a chat
// @Tags Chats
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param chat_id path string true "Chat public ID"
// @Param request body chatreq.UpdateChatRequest true "New title"
// @Success 200 {object} chatres.ChatResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /v1/chats/{chat_id} [post]
func (h *ChatHandler) UpdateChat(c *gin.Context) {
	usr, ok := middlewares.UserFromContext(c)
	if !ok {
		responses.HandleNewError(c, apperrors.ErrorTypeUnauthorized, "authentication required", "0b3e3f93-8df0-49db-90a2-55e70ac2b0e1")
		return
	}

	var req chatreq.UpdateChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, apperrors.ErrorTypeValidation, "invalid request body", "52bb53f9-2a49-4a57-a6a2-dbf14edb02e5")
		return
	}

	updated, err := h.chats.UpdateChat(c.Request.Context(), usr.ID, c.Param("chat_id"), req.Title)
	if err != nil {
		responses.HandleError(c, err, "failed to update chat")
		return
	}

	c.JSON(http.StatusOK, chatres.NewChatResponse(updated))
}

// DeleteChat handles DELETE /v1/chats/:chat_id
// @Summary Delete a chat and its messages
// @Tags Chats
// @Security BearerAuth
// @Produce json
// @Param chat_id path string true "Chat public ID"
// @Success 200 {object} chatres.ChatDeletedResponse
// @Failure 401 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /v1/chats/{chat_id} [delete]
func (h *ChatHandler) DeleteChat(c *gin.Context) {
	usr, ok := middlewares.UserFromContext(c)
	if !ok {
		responses.HandleNewError(c, apperrors.ErrorTypeUnauthorized, "authentication required", "6d9c07dd-0a4c-4a3e-bb16-cd4e2ad7f8a0")
		return
	}

	publicID := c.Param("chat_id")
	if err := h.chats.DeleteChat(c.Request.Context(), usr.ID, publicID); err != nil {
		responses.HandleError(c, err, "failed to delete chat")
		return
	}

	c.JSON(http.StatusOK, chatres.ChatDeletedResponse{
		ID:      publicID,
		Object:  "chat.deleted",
		Deleted: true,
	})
}

// ListMessages handles GET /v1/chats/:chat_id/messages
// @Summary List a chat's messages
// @Tags Chats
// @Security BearerAuth
// @Produce json
// @Param chat_id path string true "Chat public ID"
// @Success 200 {object} chatres.MessageListResponse
// @Failure 401 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /v1/chats/{chat_id}/messages [get]
func (h *ChatHandler) ListMessages(c *gin.Context) {
	usr, ok := middlewares.UserFromContext(c)
	if !ok {
		responses.HandleNewError(c, apperrors.ErrorTypeUnauthorized, "authentication required", "df79a71e-b6b3-4d36-9e54-cb9e02ff6a5b")
		return
	}

	messages, err := h.chats.ListMessages(c.Request.Context(), usr.ID, c.Param("chat_id"))
	if err != nil {
		responses.HandleError(c, err, "failed to list messages")
		return
	}

	c.JSON(http.StatusOK, chatres.NewMessageListResponse(messages))
}

// SendMessage handles POST /v1/chats/:chat_id/messages
// @Summary Send a message and get the agent's reply
// @Description Persist the user message, run a completion with the agent's instructions and the full history, and persist the reply.
// @Tags Chats
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param chat_id path string true "Chat public ID"
// @Param request body chatreq.SendMessageRequest true "Message content"
// @Success 200 {object} chatres.SendMessageResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/chats/{chat_id}/messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	usr, ok := middlewares.UserFromContext(c)
	if !ok {
		responses.HandleNewError(c, apperrors.ErrorTypeUnauthorized, "authentication required", "2e0cb1a5-9e4d-4b4a-8a8e-0d9f9e3ba4d7")
		return
	}

	var req chatreq.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, apperrors.ErrorTypeValidation, "invalid request body", "3f8a6f5e-92e4-4c3f-9a4f-6cfae6b70c6d")
		return
	}

	userMsg, assistantMsg, err := h.chats.SendMessage(c.Request.Context(), usr.ID, c.Param("chat_id"), req.Content)
	if err != nil {
		h.logger.Warn().Err(err).Str("chat_id", c.Param("chat_id")).Msg("send message failed")
		responses.HandleError(c, err, "failed to send message")
		return
	}

	c.JSON(http.StatusOK, chatres.NewSendMessageResponse(userMsg, assistantMsg))
}
