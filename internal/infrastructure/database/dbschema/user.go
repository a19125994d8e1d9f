package dbschema

import (
	"agentsync/server/internal/domain/user"
)

// User represents the persisted account schema.
type User struct {
	BaseModel
	PublicID string  `gorm:"type:varchar(50);uniqueIndex;not null"`
	Name     string  `gorm:"type:varchar(255);not null"`
	Email    string  `gorm:"type:varchar(320);uniqueIndex;not null"`
	Image    *string `gorm:"type:varchar(512)"`
}

// NewSchemaUser converts a domain user into a schema instance.
func NewSchemaUser(u *user.User) *User {
	if u == nil {
		return nil
	}
	return &User{
		BaseModel: BaseModel{
			ID:        u.ID,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		},
		PublicID: u.PublicID,
		Name:     u.Name,
		Email:    u.Email,
		Image:    u.Image,
	}
}

// EtoD converts a schema user back to the domain representation.
func (u *User) EtoD() *user.User {
	if u == nil {
		return nil
	}
	return &user.User{
		ID:        u.ID,
		PublicID:  u.PublicID,
		Name:      u.Name,
		Email:     u.Email,
		Image:     u.Image,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
