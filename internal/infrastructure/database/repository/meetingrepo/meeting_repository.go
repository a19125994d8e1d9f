package meetingrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"agentsync/server/internal/domain/meeting"
	"agentsync/server/internal/domain/query"
	"agentsync/server/internal/infrastructure/database/dbschema"
	"agentsync/server/internal/utils/apperrors"
)

type MeetingGormRepository struct {
	db *gorm.DB
}

var _ meeting.Repository = (*MeetingGormRepository)(nil)

func NewMeetingGormRepository(db *gorm.DB) meeting.Repository {
	return &MeetingGormRepository{db: db}
}

func (repo *MeetingGormRepository) Create(ctx context.Context, m *meeting.Meeting) error {
	entity, err := dbschema.NewSchemaMeeting(m)
	if err != nil {
		return apperrors.NewError(
			ctx,
			apperrors.LayerRepository,
			apperrors.ErrorTypeInternal,
			"failed to encode meeting metadata",
			err,
			"02766c50-6d3e-483c-9ccb-2e2baddaec09",
		)
	}
	if err := repo.db.WithContext(ctx).Create(entity).Error; err != nil {
		return apperrors.NewError(
			ctx,
			apperrors.LayerRepository,
			apperrors.ErrorTypeInternal,
			"failed to create meeting",
			err,
			"76098e40-c7f7-42de-ae0c-bdb0f2307f78",
		)
	}
	*m = *entity.EtoD()
	return nil
}

func (repo *MeetingGormRepository) FindByPublicIDAndUserID(ctx context.Context, publicID string, userID uint) (*meeting.Meeting, error) {
	var entity dbschema.Meeting
	err := repo.db.WithContext(ctx).
		Where("public_id = ? AND user_id = ?", publicID, userID).
		First(&entity).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewError(
			ctx,
			apperrors.LayerRepository,
			apperrors.ErrorTypeNotFound,
			"meeting not found",
			err,
			"1f28ea87-5137-41d5-bda5-9be8a0dd19ba",
		)
	}
	if err != nil {
		return nil, apperrors.NewError(
			ctx,
			apperrors.LayerRepository,
			apperrors.ErrorTypeInternal,
			"failed to find meeting",
			err,
			"dbd2e9d9-7e8a-4c30-a9c6-c77fd3802419",
		)
	}
	return entity.EtoD(), nil
}

func (repo *MeetingGormRepository) ListByUserID(ctx context.Context, userID uint, status *meeting.Status, pagination *query.Pagination) ([]*meeting.Meeting, error) {
	dbQuery := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if status != nil {
		dbQuery = dbQuery.Where("status = ?", *status)
	}

	var entities []dbschema.Meeting
	err := dbQuery.
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
			"failed to list meetings",
			err,
			"fef7f94d-e348-4f18-ae31-14e14e56fc41",
		)
	}

	meetings := make([]*meeting.Meeting, 0, len(entities))
	for i := range entities {
		meetings = append(meetings, entities[i].EtoD())
	}
	return meetings, nil
}

func (repo *MeetingGormRepository) Update(ctx context.Context, m *meeting.Meeting) error {
	entity, err := dbschema.NewSchemaMeeting(m)
	if err != nil {
		return apperrors.NewError(
			ctx,
			apperrors.LayerRepository,
			apperrors.ErrorTypeInternal,
			"failed to encode meeting metadata",
			err,
			"a1504835-2902-488a-a734-de6fffda436e",
		)
	}
	if err := repo.db.WithContext(ctx).Save(entity).Error; err != nil {
		return apperrors.NewError(
			ctx,
			apperrors.LayerRepository,
			apperrors.ErrorTypeInternal,
			"failed to update meeting",
			err,
			"62474946-beac-464a-95af-7f6cf018e4e0",
		)
	}
	*m = *entity.EtoD()
	return nil
}
