package dbschema

import (
	"agentsync/server/internal/domain/agent"
)

// Agent represents the persisted agent schema.
type Agent struct {
	BaseModel
	PublicID     string `gorm:"type:varchar(50);uniqueIndex;not null"`
	UserID       uint   `gorm:"index;not null"`
	User         User   `gorm:"foreignKey:UserID"`
	Name         string `gorm:"type:varchar(255);not null"`
	Instructions string `gorm:"type:text;not null"`
}

func NewSchemaAgent(a *agent.Agent) *Agent {
	if a == nil {
		return nil
	}
	return &Agent{
		BaseModel: BaseModel{
			ID:        a.ID,
			CreatedAt: a.CreatedAt,
			UpdatedAt: a.UpdatedAt,
		},
		PublicID:     a.PublicID,
		UserID:       a.UserID,
		Name:         a.Name,
		Instructions: a.Instructions,
	}
}

func (a *Agent) EtoD() *agent.Agent {
	if a == nil {
		return nil
	}
	return &agent.Agent{
		ID:           a.ID,
		PublicID:     a.PublicID,
		UserID:       a.UserID,
		Name:         a.Name,
		Instructions: a.Instructions,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
