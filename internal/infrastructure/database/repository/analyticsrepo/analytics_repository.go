package analyticsrepo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"agentsync/server/internal/domain/analytics"
	"agentsync/server/internal/infrastructure/database/dbschema"
	"agentsync/server/internal/utils/apperrors"
)

// AnalyticsGormRepository runs the dashboard aggregate queries. All
// reads are scoped to one user and hit the chat, message, meeting and
// agent tables directly.
type AnalyticsGormRepository struct {
	db *gorm.DB
}

var _ analytics.Repository = (*AnalyticsGormRepository)(nil)

func NewAnalyticsGormRepository(db *gorm.DB) analytics.Repository {
	return &AnalyticsGormRepository{db: db}
}

// MessageCountsByAgent counts stored messages per owned agent. Agents
// with no chats or messages still appear, with a zero count.
func (repo *AnalyticsGormRepository) MessageCountsByAgent(ctx context.Context, userID uint) ([]analytics.AgentMessageCount, error) {
	var counts []analytics.AgentMessageCount
	err := repo.db.WithContext(ctx).
		Model(&dbschema.Agent{}).
		Select(`
			agents.public_id as agent_public_id,
			agents.name as agent_name,
			COUNT(chat_messages.id) as message_count
		`).
		Joins("LEFT JOIN agentsync.chats chats ON chats.agent_id = agents.id").
		Joins("LEFT JOIN agentsync.chat_messages chat_messages ON chat_messages.chat_id = chats.id").
		Where("agents.user_id = ?", userID).
		Group("agents.public_id, agents.name").
		Order("message_count DESC").
		Scan(&counts).Error
	if err != nil {
		return nil, apperrors.NewError(
			ctx,
			apperrors.LayerRepository,
			apperrors.ErrorTypeInternal,
			"failed to count messages per agent",
			err,
			"4d9759e7-596c-4f51-84ba-880756426222",
		)
	}
	return counts, nil
}

// MeetingStats aggregates all of the user's meetings. Rows with a NULL
// started_at or ended_at contribute nothing to the duration aggregates.
func (repo *AnalyticsGormRepository) MeetingStats(ctx context.Context, userID uint) (total, completed, cancelled int64, avgDuration, totalDuration float64, err error) {
	var row struct {
		Total         int64
		Completed     int64
		Cancelled     int64
		AvgDuration   float64
		TotalDuration float64
	}

	err = repo.db.WithContext(ctx).
		Model(&dbschema.Meeting{}).
		Select(`
			COUNT(*) as total,
			SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END) as completed,
			SUM(CASE WHEN status = 'cancelled' THEN 1 ELSE 0 END) as cancelled,
			COALESCE(AVG(EXTRACT(EPOCH FROM (ended_at - started_at))), 0) as avg_duration,
			COALESCE(SUM(EXTRACT(EPOCH FROM (ended_at - started_at))), 0) as total_duration
		`).
		Where("user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return 0, 0, 0, 0, 0, apperrors.NewError(
			ctx,
			apperrors.LayerRepository,
			apperrors.ErrorTypeInternal,
			"failed to aggregate meeting stats",
			err,
			"1de7d6a1-5dd4-4cb8-bf26-d24455ea3d0d",
		)
	}
	return row.Total, row.Completed, row.Cancelled, row.AvgDuration, row.TotalDuration, nil
}

func (repo *AnalyticsGormRepository) MeetingsPerDay(ctx context.Context, userID uint, since time.Time) ([]analytics.DailyCount, error) {
	var counts []analytics.DailyCount
	err := repo.db.WithContext(ctx).
		Model(&dbschema.Meeting{}).
		Select("TO_CHAR(created_at, 'YYYY-MM-DD') as date, COUNT(*) as count").
		Where("user_id = ? AND created_at >= ?", userID, since).
		Group("TO_CHAR(created_at, 'YYYY-MM-DD')").
		Order("date ASC").
		Scan(&counts).Error
	if err != nil {
		return nil, apperrors.NewError(
			ctx,
			apperrors.LayerRepository,
			apperrors.ErrorTypeInternal,
			"failed to count meetings per day",
			err,
			"6cef5d62-c4c9-40a1-a56b-e68db3cf7c5e",
		)
	}
	return counts, nil
}

func (repo *AnalyticsGormRepository) ChatsPerDay(ctx context.Context, userID uint, since time.Time) ([]analytics.DailyCount, error) {
	var counts []analytics.DailyCount
	err := repo.db.WithContext(ctx).
		Model(&dbschema.Chat{}).
		Select("TO_CHAR(created_at, 'YYYY-MM-DD') as date, COUNT(*) as count").
		Where("user_id = ? AND created_at >= ?", userID, since).
		Group("TO_CHAR(created_at, 'YYYY-MM-DD')").
		Order("date ASC").
		Scan(&counts).Error
	if err != nil {
		return nil, apperrors.NewError(
			ctx,
			apperrors.LayerRepository,
			apperrors.ErrorTypeInternal,
			"failed to count chats per day",
			err,
			"2987743d-ac51-456a-8445-3ed2eba9105b",
		)
	}
	return counts, nil
}

// PopularTopics groups the user's messages by agent and truncated
// content and returns the most frequently repeated samples first.
func (repo *AnalyticsGormRepository) PopularTopics(ctx context.Context, userID uint, sampleLength, limit int) ([]analytics.TopicSample, error) {
	var samples []analytics.TopicSample
	err := repo.db.WithContext(ctx).
		Model(&dbschema.ChatMessage{}).
		Select(`
			agents.public_id as agent_public_id,
			agents.name as agent_name,
			SUBSTRING(chat_messages.content, 1, ?) as sample_content
		`, sampleLength).
		Joins("JOIN agentsync.chats chats ON chats.id = chat_messages.chat_id").
		Joins("JOIN agentsync.agents agents ON agents.id = chats.agent_id").
		Where("chats.user_id = ? AND chat_messages.role = ?", userID, "user").
		Group("agents.public_id, agents.name, sample_content").
		Order("COUNT(chat_messages.id) DESC").
		Limit(limit).
		Scan(&samples).Error
	if err != nil {
		return nil, apperrors.NewError(
			ctx,
			apperrors.LayerRepository,
			apperrors.ErrorTypeInternal,
			"failed to sample popular topics",
			err,
			"8dd417ae-c47f-4170-870b-8c052f670856",
		)
	}
	return samples, nil
}
