package agenthandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agentsync/server/internal/domain/agent"
	"agentsync/server/internal/interfaces/httpserver/middlewares"
	"agentsync/server/internal/interfaces/httpserver/requests"
	"agentsync/server/internal/interfaces/httpserver/requests/agentreq"
	"agentsync/server/internal/interfaces/httpserver/responses"
	"agentsync/server/internal/interfaces/httpserver/responses/agentres"
	"agentsync/server/internal/utils/apperrors"
)

// AgentHandler handles agent CRUD requests.
type AgentHandler struct {
	agents *agent.Service
}

func NewAgentHandler(agents *agent.Service) *AgentHandler {
	return &AgentHandler{agents: agents}
}

// CreateAgent handles POST /v1/agents
// @Summary Create an agent
// @Tags Agents
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body agentreq.CreateAgentRequest true "Agent details"
// @Success 201 {object} agentres.AgentResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Router /v1/agents [post]
func (h *AgentHandler) CreateAgent(c *gin.Context) {
	usr, ok := middlewares.UserFromContext(c)
	if !ok {
		responses.HandleNewError(c, apperrors.ErrorTypeUnauthorized, "authentication required", "e30cd232-3d44-4e7a-8dc5-53ec97e27b8d")
		return
	}

	var req agentreq.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, apperrors.ErrorTypeValidation, "invalid request body", "89435b0c-bfd7-4ab5-9c0b-d6e1c42ea55d")
		return
	}

	created, err := h.agents.Create(c.Request.Context(), usr.ID, req.Name, req.Instructions)
	if err != nil {
		responses.HandleError(c, err, "failed to create agent")
		return
	}

	c.JSON(http.StatusCreated, agentres.NewAgentResponse(created))
}

// ListAgents handles GET /v1/agents
// @Summary List agents
// @Tags Agents
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Maximum number of agents to return"
// @Param offset query int false "Number of agents to skip"
// @Success 200 {object} agentres.AgentListResponse
// @Failure 401 {object} responses.ErrorResponse
// @Router /v1/agents [get]
func (h *AgentHandler) ListAgents(c *gin.Context) {
	usr, ok := middlewares.UserFromContext(c)
	if !ok {
		responses.HandleNewError(c, apperrors.ErrorTypeUnauthorized, "authentication required", "7df21f2e-2c4c-4e7e-bb3e-3b0f17a0b134")
		return
	}

	pagination, err := requests.GetPaginationFromQuery(c)
	if err != nil {
		responses.HandleError(c, err, "invalid pagination")
		return
	}

	agents, err := h.agents.List(c.Request.Context(), usr.ID, pagination)
	if err != nil {
		responses.HandleError(c, err, "failed to list agents")
		return
	}

	c.JSON(http.StatusOK, agentres.NewAgentListResponse(agents))
}

// GetAgent handles GET /v1/agents/:agent_id
// @Summary Get an agent
// @Tags Agents
// @Security BearerAuth
// @Produce json
// @Param agent_id path string true "Agent public ID"
// @Success 200 {object} agentres.AgentResponse
// @Failure 401 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /v1/agents/{agent_id} [get]
func (h *AgentHandler) GetAgent(c *gin.Context) {
	usr, ok := middlewares.UserFromContext(c)
	if !ok {
		responses.HandleNewError(c, apperrors.ErrorTypeUnauthorized, "authentication required", "1932e0f1-6a86-47e5-b2ea-a8e0e40bd7b4")
		return
	}

	found, err := h.agents.GetByPublicID(c.Request.Context(), c.Param("agent_id"), usr.ID)
	if err != nil {
		responses.HandleError(c, err, "agent not found")
		return
	}

	c.JSON(http.StatusOK, agentres.NewAgentResponse(found))
}

// UpdateAgent handles POST /v1/agents/:agent_id
// @Summary Update an agent
// @Tags Agents
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param agent_id path string true "Agent public ID"
// @Param request body agentreq.UpdateAgentRequest true "Fields to update"
// @Success 200 {object} agentres.AgentResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /v1/agents/{agent_id} [post]
func (h *AgentHandler) UpdateAgent(c *gin.Context) {
	usr, ok := middlewares.UserFromContext(c)
	if !ok {
		responses.HandleNewError(c, apperrors.ErrorTypeUnauthorized, "authentication required", "fd0f9a14-7f06-4e62-95c2-dc1a67f1f2b6")
		return
	}

	var req agentreq.UpdateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, apperrors.ErrorTypeValidation, "invalid request body", "b3bb80f3-3761-41d5-a6fc-d4e1ccf2ad11")
		return
	}

	updated, err := h.agents.Update(c.Request.Context(), c.Param("agent_id"), usr.ID, req.Name, req.Instructions)
	if err != nil {
		responses.HandleError(c, err, "failed to update agent")
		return
	}

	c.JSON(http.StatusOK, agentres.NewAgentResponse(updated))
}

// DeleteAgent handles DELETE /v1/agents/:agent_id
// @Summary Delete an agent
// @Tags Agents
// @Security BearerAuth
// @Produce json
// @Param agent_id path string true "Agent public ID"
// @Success 200 {object} agentres.AgentDeletedResponse
// @Failure 401 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /v1/agents/{agent_id} [delete]
func (h *AgentHandler) DeleteAgent(c *gin.Context) {
	usr, ok := middlewares.UserFromContext(c)
	if !ok {
		responses.HandleNewError(c, apperrors.ErrorTypeUnauthorized, "authentication required", "4f2ed2da-71b6-4d68-b29e-71cf4a94b276")
		return
	}

	publicID := c.Param("agent_id")
	if err := h.agents.Delete(c.Request.Context(), publicID, usr.ID); err != nil {
		responses.HandleError(c, err, "failed to delete agent")
		return
	}

	c.JSON(http.StatusOK, agentres.AgentDeletedResponse{
		ID:      publicID,
		Object:  "agent.deleted",
		Deleted: true,
	})
}
