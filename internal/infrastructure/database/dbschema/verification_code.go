package dbschema

import (
	"time"

	"agentsync/server/internal/domain/verification"
)

// VerificationCode stores the one-time email verification codes. At most
// one row exists per identifier; resends replace the previous row.
type VerificationCode struct {
	BaseModel
	Identifier string    `gorm:"type:varchar(320);index;not null"`
	Value      string    `gorm:"type:varchar(64);not null"`
	ExpiresAt  time.Time `gorm:"not null"`
}

func NewSchemaVerificationCode(c *verification.Code) *VerificationCode {
	if c == nil {
		return nil
	}
	return &VerificationCode{
		BaseModel: BaseModel{
			ID:        c.ID,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		},
		Identifier: c.Identifier,
		Value:      c.Value,
		ExpiresAt:  c.ExpiresAt,
	}
}

func (c *VerificationCode) EtoD() *verification.Code {
	if c == nil {
		return nil
	}
	return &verification.Code{
		ID:         c.ID,
		Identifier: c.Identifier,
		Value:      c.Value,
		ExpiresAt:  c.ExpiresAt,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
