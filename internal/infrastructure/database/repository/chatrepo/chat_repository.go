package chatrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"agentsync/server/internal/domain/chat"
	"agentsync/server/internal/domain/query"
	"agentsync/server/internal/infrastructure/database/dbschema"
	"agentsync/server/internal/utils/apperrors"
)

type ChatGormRepository struct {
	db *gorm.DB
}

var _ chat.Repository = (*ChatGormRepository)(nil)

func NewChatGormRepository(db *gorm.DB) chat.Repository {
	return &ChatGormRepository{db: db}
}

func (repo *ChatGormRepository) Create(ctx context.Context, c *chat.Chat) error {
	entity := dbschema.NewSchemaChat(c)
	if err := repo.db.WithContext(ctx).Create(entity).Error; err != nil {
		return apperrors.NewError(
			ctx,
			apperrors.LayerRepository,
			apperrors.ErrorTypeInternal,
			"failed to create chat",
			err,
			"40f2c454-bb13-455d-bf97-5503c16cf172",
		)
	}
	agent := c.Agent
	*c = *entity.EtoD()
	c.Agent = agent
	return nil
}

func (repo *ChatGormRepository) FindByPublicIDAndUserID(ctx context.Context, publicID string, userID uint) (*chat.Chat, error) {
	var entity dbschema.Chat
	err := repo.db.WithContext(ctx).
		Preload("Agent").
		Where("public_id = ? AND user_id = ?", publicID, userID).
		First(&entity).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewError(
			ctx,
			apperrors.LayerRepository,
			apperrors.ErrorTypeNotFound,
			"chat not found",
			err,
			"17629221-a720-4554-9bc6-42c2a17eb4ee",
		)
	}
	if err != nil {
		return nil, apperrors.NewError(
			ctx,
			apperrors.LayerRepository,
			apperrors.ErrorTypeInternal,
			"failed to find chat",
			err,
			"85d1f1a1-c504-498d-b06c-e7a4d34b0f69",
		)
	}
	return entity.EtoD(), nil
}

func (repo *ChatGormRepository) FindByFilter(ctx context.Context, filter chat.Filter, pagination *query.Pagination) ([]*chat.Chat, error) {
	dbQuery := repo.db.WithContext(ctx).
		Preload("Agent").
		Where("user_id = ?", filter.UserID)
	if filter.AgentID != nil {
		dbQuery = dbQuery.Where("agent_id = ?", *filter.AgentID)
	}

	var entities []dbschema.Chat
	err := dbQuery.
		Order("updated_at DESC").
		Limit(pagination.LimitOrDefault(50)).
		Offset(pagination.OffsetOrZero()).
		Find(&entities).
		Error
	if err != nil {
		return nil, apperrors.NewError(
			ctx,
			apperrors.LayerRepository,
			apperrors.ErrorTypeInternal,
			"failed to list chats",
			err,
			"80d3f505-c4a3-441e-8524-556ef1ebe719",
		)
	}

	chats := make([]*chat.Chat, 0, len(entities))
	for i := range entities {
		chats = append(chats, entities[i].EtoD())
	}
	return chats, nil
}

func (repo *ChatGormRepository) Update(ctx context.Context, c *chat.Chat) error {
	entity := dbschema.NewSchemaChat(c)
	if err := repo.db.WithContext(ctx).Save(entity).Error; err != nil {
		return apperrors.NewError(
			ctx,
			apperrors.LayerRepository,
			apperrors.ErrorTypeInternal,
			"failed to update chat",
			err,
			"7143c309-68a1-4738-a8c4-03f1d1961eb5",
		)
	}
	agent := c.Agent
	*c = *entity.EtoD()
	c.Agent = agent
	return nil
}

func (repo *ChatGormRepository) TouchUpdatedAt(ctx context.Context, id uint) error {
	err := repo.db.WithContext(ctx).
		Model(&dbschema.Chat{}).
		Where("id = ?", id).
		Update("updated_at", gorm.Expr("NOW()")).
		Error
	if err != nil {
		return apperrors.NewError(
			ctx,
			apperrors.LayerRepository,
			apperrors.ErrorTypeInternal,
			"failed to touch chat",
			err,
			"23302abc-3800-49e0-8c6f-e3aed8aae93d",
		)
	}
	return nil
}

// Delete removes the chat together with its messages.
func (repo *ChatGormRepository) Delete(ctx context.Context, id uint) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("chat_id = ?", id).Delete(&dbschema.ChatMessage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&dbschema.Chat{}, id).Error
	})
	if err != nil {
		return apperrors.NewError(
			ctx,
			apperrors.LayerRepository,
			apperrors.ErrorTypeInternal,
			"failed to delete chat",
			err,
			"4e3384e5-66c8-4b2c-83d0-fdb1c1258c0e",
		)
	}
	return nil
}

func (repo *ChatGormRepository) CreateMessage(ctx context.Context, m *chat.Message) error {
	entity := dbschema.NewSchemaChatMessage(m)
	if err := repo.db.WithContext(ctx).Create(entity).Error; err != nil {
		return apperrors.NewError(
			ctx,
			apperrors.LayerRepository,
			apperrors.ErrorTypeInternal,
			"failed to create chat message",
			err,
			"ac9aedfc-fac4-4ea4-b02e-e3fdf8c3edd5",
		)
	}
	*m = *entity.EtoD()
	return nil
}

func (repo *ChatGormRepository) ListMessages(ctx context.Context, chatID uint) ([]*chat.Message, error) {
	var entities []dbschema.ChatMessage
	err := repo.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at ASC, id ASC").
		Find(&entities).
		Error
	if err != nil {
		return nil, apperrors.NewError(
			ctx,
			apperrors.LayerRepository,
			apperrors.ErrorTypeInternal,
			"failed to list chat messages",
			err,
			"904f606c-df77-4182-a3ec-fbcb941f545b",
		)
	}

	messages := make([]*chat.Message, 0, len(entities))
	for i := range entities {
		messages = append(messages, entities[i].EtoD())
	}
	return messages, nil
}
