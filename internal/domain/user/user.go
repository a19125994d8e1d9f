package user

import (
	"context"
	"time"
)

// User is an AgentSync account holder. Agents, meetings and chats all
// hang off a user.
type User struct {
	ID        uint
	PublicID  string
	Name      string
	Email     string
	Image     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Repository persists users.
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByPublicID(ctx context.Context, publicID string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, u *User) error
}
