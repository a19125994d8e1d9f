package dbschema

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"agentsync/server/internal/domain/meeting"
)

// Meeting represents the persisted meeting schema. Metadata holds the
// raw payload last reported by the video platform.
type Meeting struct {
	BaseModel
	PublicID  string         `gorm:"type:varchar(50);uniqueIndex;not null"`
	UserID    uint           `gorm:"index:idx_meeting_user_status;not null"`
	User      User           `gorm:"foreignKey:UserID"`
	AgentID   uint           `gorm:"index;not null"`
	Agent     Agent          `gorm:"foreignKey:AgentID"`
	Name      string         `gorm:"type:varchar(255);not null"`
	Status    meeting.Status `gorm:"type:varchar(20);index:idx_meeting_user_status;not null;default:'upcoming'"`
	StartedAt *time.Time
	EndedAt   *time.Time
	Metadata  datatypes.JSON `gorm:"type:jsonb"`
}

func NewSchemaMeeting(m *meeting.Meeting) (*Meeting, error) {
	if m == nil {
		return nil, nil
	}

	var metadata datatypes.JSON
	if len(m.Metadata) > 0 {
		data, err := json.Marshal(m.Metadata)
		if err != nil {
			return nil, err
		}
		metadata = data
	}

	return &Meeting{
		BaseModel: BaseModel{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		PublicID:  m.PublicID,
		UserID:    m.UserID,
		AgentID:   m.AgentID,
		Name:      m.Name,
		Status:    m.Status,
		StartedAt: m.StartedAt,
		EndedAt:   m.EndedAt,
		Metadata:  metadata,
	}, nil
}

func (m *Meeting) EtoD() *meeting.Meeting {
	if m == nil {
		return nil
	}

	var metadata map[string]string
	if len(m.Metadata) > 0 {
		_ = json.Unmarshal(m.Metadata, &metadata)
	}

	return &meeting.Meeting{
		ID:        m.ID,
		PublicID:  m.PublicID,
		UserID:    m.UserID,
		AgentID:   m.AgentID,
		Name:      m.Name,
		Status:    m.Status,
		StartedAt: m.StartedAt,
		EndedAt:   m.EndedAt,
		Metadata:  metadata,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
