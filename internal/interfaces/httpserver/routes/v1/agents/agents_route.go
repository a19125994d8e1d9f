package agents

import (
	"github.com/gin-gonic/gin"

	"agentsync/server/internal/interfaces/httpserver/handlers/agenthandler"
)

type AgentsRoute struct {
	handler *agenthandler.AgentHandler
}

func NewAgentsRoute(handler *agenthandler.AgentHandler) *AgentsRoute {
	return &AgentsRoute{handler: handler}
}

func (route *AgentsRoute) RegisterRouter(router gin.IRouter) {
	agents := router.Group("/agents")
	agents.POST("", route.handler.CreateAgent)
	agents.GET("", route.handler.ListAgents)
	agents.GET("/:agent_id", route.handler.GetAgent)
	agents.POST("/:agent_id", route.handler.UpdateAgent)
	agents.DELETE("/:agent_id", route.handler.DeleteAgent)
}
