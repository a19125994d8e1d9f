package agentrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"agentsync/server/internal/domain/agent"
	"agentsync/server/internal/domain/query"
	"agentsync/server/internal/infrastructure/database/dbschema"
	"agentsync/server/internal/utils/apperrors"
)

type AgentGormRepository struct {
	db *gorm.DB
}

var _ agent.Repository = (*AgentGormRepository)(nil)

func NewAgentGormRepository(db *gorm.DB) agent.Repository {
	return &AgentGormRepository{db: db}
}

func (repo *AgentGormRepository) Create(ctx context.Context, a *agent.Agent) error {
	entity := dbschema.NewSchemaAgent(a)
	if err := repo.db.WithContext(ctx).Create(entity).Error; err != nil {
		return apperrors.NewError(
			ctx,
			apperrors.LayerRepository,
			apperrors.ErrorTypeInternal,
			"failed to create agent",
			err,
			"5b93af6f-37d8-4c0d-b866-6c40b7e6fc4e",
		)
	}
	*a = *entity.EtoD()
	return nil
}

func (repo *AgentGormRepository) FindByPublicIDAndUserID(ctx context.Context, publicID string, userID uint) (*agent.Agent, error) {
	var entity dbschema.Agent
	err := repo.db.WithContext(ctx).
		Where("public_id = ? AND user_id = ?", publicID, userID).
		First(&entity).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewError(
			ctx,
			apperrors.LayerRepository,
			apperrors.ErrorTypeNotFound,
			"agent not found",
			err,
			"5c8166e8-e7c4-46bd-82a2-979a1d2e91bb",
		)
	}
	if err != nil {
		return nil, apperrors.NewError(
			ctx,
			apperrors.LayerRepository,
			apperrors.ErrorTypeInternal,
			"failed to find agent",
			err,
			"2fd299da-cac1-4ec1-8cff-fd0c2a030c34",
		)
	}
	return entity.EtoD(), nil
}

func (repo *AgentGormRepository) FindByIDAndUserID(ctx context.Context, id, userID uint) (*agent.Agent, error) {
	var entity dbschema.Agent
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&entity).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewError(
			ctx,
			apperrors.LayerRepository,
			apperrors.ErrorTypeNotFound,
			"agent not found",
			err,
			"3052e15c-3b21-42fe-8b57-01700255c49b",
		)
	}
	if err != nil {
		return nil, apperrors.NewError(
			ctx,
			apperrors.LayerRepository,
			apperrors.ErrorTypeInternal,
			"failed to find agent",
			err,
			"3f19a6b2-66bd-4bae-a48d-5e935bcd399b",
		)
	}
	return entity.EtoD(), nil
}

func (repo *AgentGormRepository) ListByUserID(ctx context.Context, userID uint, pagination *query.Pagination) ([]*agent.Agent, error) {
	var entities []dbschema.Agent
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(pagination.LimitOrDefault(50)).
		Offset(pagination.OffsetOrZero()).
		Find(&entities).
		Error
	if err != nil {
		return nil, apperrors.NewError(
			ctx,
			apperrors.LayerRepository,
			apperrors.ErrorTypeInternal,
			"failed to list agents",
			err,
			"c6a2dfe0-5ae5-42f6-974a-58cc2b0758a9",
		)
	}

	agents := make([]*agent.Agent, 0, len(entities))
	for i := range entities {
		agents = append(agents, entities[i].EtoD())
	}
	return agents, nil
}

func (repo *AgentGormRepository) Update(ctx context.Context, a *agent.Agent) error {
	entity := dbschema.NewSchemaAgent(a)
	if err := repo.db.WithContext(ctx).Save(entity).Error; err != nil {
		return apperrors.NewError(
			ctx,
			apperrors.LayerRepository,
			apperrors.ErrorTypeInternal,
			"failed to update agent",
			err,
			"e9b99b67-6e87-4cbd-9826-3793ab54e188",
		)
	}
	*a = *entity.EtoD()
	return nil
}

func (repo *AgentGormRepository) Delete(ctx context.Context, id uint) error {
	err := repo.db.WithContext(ctx).
		Delete(&dbschema.Agent{}, id).
		Error
	if err != nil {
		return apperrors.NewError(
			ctx,
			apperrors.LayerRepository,
			apperrors.ErrorTypeInternal,
			"failed to delete agent",
			err,
			"03fe2f55-0325-43c3-84fc-c6ef7a4f60c9",
		)
	}
	return nil
}
