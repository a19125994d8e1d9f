package agentres

import (
	"agentsync/server/internal/domain/agent"
)

// AgentResponse represents a single agent response
type AgentResponse struct {
	ID           string `json:"id"`
	Object       string `json:"object"`
	Name         string `json:"name"`
	Instructions string `json:"instructions"`
	CreatedAt    int64  `json:"created_at"`
	UpdatedAt    int64  `json:"updated_at"`
}

// AgentListResponse represents a list of agents
type AgentListResponse struct {
	Object string          `json:"object"`
	Data   []AgentResponse `json:"data"`
}

// AgentDeletedResponse represents the delete confirmation response
type AgentDeletedResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}

// NewAgentResponse creates a response from a domain agent
func NewAgentResponse(a *agent.Agent) *AgentResponse {
	return &AgentResponse{
		ID:           a.PublicID,
		Object:       "agent",
		Name:         a.Name,
		Instructions: a.Instructions,
		CreatedAt:    a.CreatedAt.Unix(),
		UpdatedAt:    a.UpdatedAt.Unix(),
	}
}

// NewAgentListResponse creates a list response from domain agents
func NewAgentListResponse(agents []*agent.Agent) *AgentListResponse {
	data := make([]AgentResponse, 0, len(agents))
	for _, a := range agents {
		data = append(data, *NewAgentResponse(a))
	}
	return &AgentListResponse{
		Object: "list",
		Data:   data,
	}
}
