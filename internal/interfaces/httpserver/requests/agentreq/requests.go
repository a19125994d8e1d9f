package agentreq

// CreateAgentRequest represents the request to create an agent
type CreateAgentRequest struct {
	Name         string `json:"name" binding:"required"`
	Instructions string `json:"instructions" binding:"required"`
}

// UpdateAgentRequest represents the request to update an agent
type UpdateAgentRequest struct {
	Name         *string `json:"name,omitempty"`
	Instructions *string `json:"instructions,omitempty"`
}
