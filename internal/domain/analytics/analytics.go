// Package analytics produces the per-user usage summary shown on the
// dashboard: agent performance, meeting statistics, chat analytics and
// a 30-day usage trend.
package analytics

import (
	"context"
	"time"
)

// AgentMessageCount is a per-agent total of stored chat messages.
type AgentMessageCount struct {
	AgentPublicID string
	AgentName     string
	MessageCount  int64
}

// AgentPerformance is AgentMessageCount plus the response-time figure.
type AgentPerformance struct {
	AgentPublicID   string
	AgentName       string
	TotalMessages   int64
	AvgResponseTime int64
}

// MeetingStats aggregates a user's meetings.
type MeetingStats struct {
	Total          int64
	Completed      int64
	Cancelled      int64
	CompletionRate float64
	AvgDuration    float64
	TotalDuration  float64
}

// DailyCount is one calendar day's meeting or chat count.
type DailyCount struct {
	Date  string
	Count int64
}

// TrendPoint merges the meeting and chat counts of one day.
type TrendPoint struct {
	Date     string
	Meetings int64
	Chats    int64
}

// TopicSample is a truncated user message grouped under its agent.
type TopicSample struct {
	AgentPublicID string
	AgentName     string
	SampleContent string
}

// Summary is the full analytics response for one user.
type Summary struct {
	AgentPerformance []AgentPerformance
	MeetingStats     MeetingStats
	MessagesPerAgent []AgentMessageCount
	PopularTopics    []TopicSample
	UsageTrends      []TrendPoint
}

// Repository runs the read-only aggregate queries.
type Repository interface {
	MessageCountsByAgent(ctx context.Context, userID uint) ([]AgentMessageCount, error)
	MeetingStats(ctx context.Context, userID uint) (total, completed, cancelled int64, avgDuration, totalDuration float64, err error)
	MeetingsPerDay(ctx context.Context, userID uint, since time.Time) ([]DailyCount, error)
	ChatsPerDay(ctx context.Context, userID uint, since time.Time) ([]DailyCount, error)
	PopularTopics(ctx context.Context, userID uint, sampleLength, limit int) ([]TopicSample, error)
}
