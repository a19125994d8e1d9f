package meetingres

import (
	"agentsync/server/internal/domain/meeting"
)

// MeetingResponse represents a single meeting response
type MeetingResponse struct {
	ID        string            `json:"id"`
	Object    string            `json:"object"`
	Name      string            `json:"name"`
	Status    string            `json:"status"`
	StartedAt *int64            `json:"started_at,omitempty"`
	EndedAt   *int64            `json:"ended_at,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt int64             `json:"created_at"`
	UpdatedAt int64             `json:"updated_at"`
}

// MeetingListResponse represents a list of meetings
type MeetingListResponse struct {
	Object string            `json:"object"`
	Data   []MeetingResponse `json:"data"`
}

// NewMeetingResponse creates a response from a domain meeting
func NewMeetingResponse(m *meeting.Meeting) *MeetingResponse {
	resp := &MeetingResponse{
		ID:        m.PublicID,
		Object:    "meeting",
		Name:      m.Name,
		Status:    string(m.Status),
		Metadata:  m.Metadata,
		CreatedAt: m.CreatedAt.Unix(),
		UpdatedAt: m.UpdatedAt.Unix(),
	}
	if m.StartedAt != nil {
		startedUnix := m.StartedAt.Unix()
		resp.StartedAt = &startedUnix
	}
	if m.EndedAt != nil {
		endedUnix := m.EndedAt.Unix()
		resp.EndedAt = &endedUnix
	}
	return resp
}

// NewMeetingListResponse creates a list response from domain meetings
func NewMeetingListResponse(meetings []*meeting.Meeting) *MeetingListResponse {
	data := make([]MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		data = append(data, *NewMeetingResponse(m))
	}
	return &MeetingListResponse{
		Object: "list",
		Data:   data,
	}
}
