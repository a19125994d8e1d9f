package meetingreq

// CreateMeetingRequest represents the request to schedule a meeting
type CreateMeetingRequest struct {
	Name     string            `json:"name" binding:"required" validate:"required,max=255"`
	AgentID  string            `json:"agent_id" binding:"required" validate:"required"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// UpdateMeetingStatusRequest represents a status transition reported by
// the video platform
type UpdateMeetingStatusRequest struct {
	Status string `json:"status" binding:"required" validate:"required,oneof=upcoming active completed cancelled processing"`
}

// ListMeetingsQueryParams represents query parameters for listing meetings
type ListMeetingsQueryParams struct {
	Status *string `form:"status"`
}
