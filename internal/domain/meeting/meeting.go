package meeting

import (
	"context"
	"time"

	"agentsync/server/internal/domain/query"
)

// Status of a meeting. Transitions are driven by the external video
// platform; this service only validates membership in the set.
type Status string

const (
	StatusUpcoming   Status = "upcoming"
	StatusActive     Status = "active"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusProcessing Status = "processing"
)

// Valid reports whether s is a known meeting status.
func (s Status) Valid() bool {
	switch s {
	case StatusUpcoming, StatusActive, StatusCompleted, StatusCancelled, StatusProcessing:
		return true
	}
	return false
}

// Meeting is a scheduled or held video call between a user and one of
// their agents.
type Meeting struct {
	ID        uint
	PublicID  string
	UserID    uint
	AgentID   uint
	Name      string
	Status    Status
	StartedAt *time.Time
	EndedAt   *time.Time
	Metadata  map[string]string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Repository persists meetings.
type Repository interface {
	Create(ctx context.Context, m *Meeting) error
	FindByPublicIDAndUserID(ctx context.Context, publicID string, userID uint) (*Meeting, error)
	ListByUserID(ctx context.Context, userID uint, status *Status, pagination *query.Pagination) ([]*Meeting, error)
	Update(ctx context.Context, m *Meeting) error
}
