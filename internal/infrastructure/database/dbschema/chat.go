package dbschema

import (
	"time"

	"agentsync/server/internal/domain/chat"
)

type Chat struct {
	BaseModel
	PublicID string `gorm:"type:varchar(50);uniqueIndex;not null"`
	UserID   uint   `gorm:"index:idx_chat_user_updated;not null"`
	User     User   `gorm:"foreignKey:UserID"`
	AgentID  uint   `gorm:"index;not null"`
	Agent    Agent  `gorm:"foreignKey:AgentID"`
	Title    string `gorm:"type:varchar(255);not null"`
}

// ChatMessage rows are append only, so there is no UpdatedAt column.
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"index:idx_chat_message_chat_created"`
	PublicID  string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	ChatID    uint      `gorm:"index:idx_chat_message_chat_created;not null"`
	Chat      Chat      `gorm:"foreignKey:ChatID"`
	Role      chat.Role `gorm:"type:varchar(20);not null"`
	Content   string    `gorm:"type:text;not null"`
}

func NewSchemaChat(c *chat.Chat) *Chat {
	if c == nil {
		return nil
	}
	return &Chat{
		BaseModel: BaseModel{
			ID:        c.ID,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		},
		PublicID: c.PublicID,
		UserID:   c.UserID,
		AgentID:  c.AgentID,
		Title:    c.Title,
	}
}

func (c *Chat) EtoD() *chat.Chat {
	if c == nil {
		return nil
	}
	d := &chat.Chat{
		ID:        c.ID,
		PublicID:  c.PublicID,
		UserID:    c.UserID,
		AgentID:   c.AgentID,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.Agent.ID != 0 {
		d.Agent = c.Agent.EtoD()
	}
	return d
}

func NewSchemaChatMessage(m *chat.Message) *ChatMessage {
	if m == nil {
		return nil
	}
	return &ChatMessage{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		PublicID:  m.PublicID,
		ChatID:    m.ChatID,
		Role:      m.Role,
		Content:   m.Content,
	}
}

func (m *ChatMessage) EtoD() *chat.Message {
	if m == nil {
		return nil
	}
	return &chat.Message{
		ID:        m.ID,
		PublicID:  m.PublicID,
		ChatID:    m.ChatID,
		Role:      m.Role,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}
