package analyticsrepo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"agentsync/server/internal/domain/analytics"
	"agentsync/server/internal/infrastructure/database"
)

// newDryRunRepo builds the repository on a dry-run gorm session so the
// generated SQL can be inspected without a live database.
func newDryRunRepo(t *testing.T) (analytics.Repository, *[]string) {
	t.Helper()

	var queries []string
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=agentsync dbname=agentsync",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   database.TablePrefix,
			SingularTable: false,
		},
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = db.Callback().Query().After("gorm:query").Register("capture_sql", func(tx *gorm.DB) {
		queries = append(queries, tx.Statement.SQL.String())
	})
	require.NoError(t, err)

	return NewAnalyticsGormRepository(db), &queries
}

func lastQuery(t *testing.T, queries *[]string) string {
	t.Helper()
	require.NotEmpty(t, *queries)
	return (*queries)[len(*queries)-1]
}

func TestMessageCountsByAgentIncludesIdleAgents(t *testing.T) {
	repo, queries := newDryRunRepo(t)

	_, err := repo.MessageCountsByAgent(context.Background(), 7)
	require.NoError(t, err)

	sql := lastQuery(t, queries)
	// Counting from agents outward keeps agents with zero messages in
	// the result, at count 0.
	assert.Contains(t, sql, `"agentsync"."agents"`)
	assert.Contains(t, sql, "LEFT JOIN agentsync.chats chats ON chats.agent_id = agents.id")
	assert.Contains(t, sql, "LEFT JOIN agentsync.chat_messages chat_messages ON chat_messages.chat_id = chats.id")
	assert.Contains(t, sql, "COUNT(chat_messages.id) as message_count")
	assert.Contains(t, sql, "agents.user_id")
	assert.Contains(t, sql, "GROUP BY agents.public_id, agents.name")
	assert.Contains(t, sql, "ORDER BY message_count DESC")
	assert.NotContains(t, sql, "JOIN agentsync.chats chats ON chats.id = chat_messages.chat_id")
}

func TestMeetingStatsDurationsSpanAllStatuses(t *testing.T) {
	repo, queries := newDryRunRepo(t)

	_, _, _, _, _, err := repo.MeetingStats(context.Background(), 7)
	require.NoError(t, err)

	sql := lastQuery(t, queries)
	assert.Contains(t, sql, "COALESCE(AVG(EXTRACT(EPOCH FROM (ended_at - started_at))), 0) as avg_duration")
	assert.Contains(t, sql, "COALESCE(SUM(EXTRACT(EPOCH FROM (ended_at - started_at))), 0) as total_duration")
	// Completed/cancelled tallies are the only status-conditional parts;
	// durations count every meeting with both timestamps set.
	assert.NotContains(t, sql, "status = 'completed' AND started_at")
}

func TestPopularTopicsOrderedByFrequency(t *testing.T) {
	repo, queries := newDryRunRepo(t)

	_, err := repo.PopularTopics(context.Background(), 7, 100, 10)
	require.NoError(t, err)

	sql := lastQuery(t, queries)
	assert.Contains(t, sql, "SUBSTRING(chat_messages.content, 1,")
	assert.Contains(t, sql, "GROUP BY agents.public_id, agents.name, sample_content")
	assert.Contains(t, sql, "ORDER BY COUNT(chat_messages.id) DESC")
	assert.NotContains(t, sql, "ORDER BY chat_messages.created_at")
}

func TestTrendQueriesGroupByDay(t *testing.T) {
	repo, queries := newDryRunRepo(t)
	since := time.Now().AddDate(0, 0, -30)

	_, err := repo.MeetingsPerDay(context.Background(), 7, since)
	require.NoError(t, err)
	assert.Contains(t, lastQuery(t, queries), "TO_CHAR(created_at, 'YYYY-MM-DD')")

	_, err = repo.ChatsPerDay(context.Background(), 7, since)
	require.NoError(t, err)

	sql := lastQuery(t, queries)
	assert.Contains(t, sql, `"agentsync"."chats"`)
	assert.Contains(t, sql, "GROUP BY TO_CHAR(created_at, 'YYYY-MM-DD')")
}
