package agent

import (
	"context"
	"time"

	"agentsync/server/internal/domain/query"
)

// Agent is a user-defined AI persona with fixed instructions, usable in
// chats and meetings.
type Agent struct {
	ID           uint
	PublicID     string
	UserID       uint
	Name         string
	Instructions string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Repository persists agents. All lookups are ownership-scoped: an agent
// belonging to another user behaves as absent.
type Repository interface {
	Create(ctx context.Context, a *Agent) error
	FindByPublicIDAndUserID(ctx context.Context, publicID string, userID uint) (*Agent, error)
	FindByIDAndUserID(ctx context.Context, id, userID uint) (*Agent, error)
	ListByUserID(ctx context.Context, userID uint, pagination *query.Pagination) ([]*Agent, error)
	Update(ctx context.Context, a *Agent) error
	Delete(ctx context.Context, id uint) error
}
