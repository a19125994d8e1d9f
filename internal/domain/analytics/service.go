package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"agentsync/server/internal/utils/apperrors"
	"agentsync/server/internal/utils/functional"
)

const (
	trendWindowDays   = 30
	topicSampleLength = 100
	topicSampleLimit  = 10
	// Response times are not measured per request; the dashboard shows a
	// fixed estimate until per-request latency is recorded.
	placeholderResponseTimeMillis = 3000
)

// Service assembles the analytics summary from independent reads.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// GetSummary runs the aggregate queries for userID and merges them into
// one response. Pure read, no side effects.
func (s *Service) GetSummary(ctx context.Context, userID uint) (*Summary, error) {
	messageCounts, err := s.repo.MessageCountsByAgent(ctx, userID)
	if err != nil {
		return nil, apperrors.AsError(ctx, apperrors.LayerDomain, err, "failed to count messages per agent")
	}

	total, completed, cancelled, avgDuration, totalDuration, err := s.repo.MeetingStats(ctx, userID)
	if err != nil {
		return nil, apperrors.AsError(ctx, apperrors.LayerDomain, err, "failed to aggregate meetings")
	}

	since := s.now().AddDate(0, 0, -trendWindowDays)
	meetingTrend, err := s.repo.MeetingsPerDay(ctx, userID, since)
	if err != nil {
		return nil, apperrors.AsError(ctx, apperrors.LayerDomain, err, "failed to load meeting trend")
	}
	chatTrend, err := s.repo.ChatsPerDay(ctx, userID, since)
	if err != nil {
		return nil, apperrors.AsError(ctx, apperrors.LayerDomain, err, "failed to load chat trend")
	}

	topics, err := s.repo.PopularTopics(ctx, userID, topicSampleLength, topicSampleLimit)
	if err != nil {
		return nil, apperrors.AsError(ctx, apperrors.LayerDomain, err, "failed to load popular topics")
	}

	return &Summary{
		AgentPerformance: functional.Map(messageCounts, func(mc AgentMessageCount) AgentPerformance {
			return AgentPerformance{
				AgentPublicID:   mc.AgentPublicID,
				AgentName:       mc.AgentName,
				TotalMessages:   mc.MessageCount,
				AvgResponseTime: placeholderResponseTimeMillis,
			}
		}),
		MeetingStats: MeetingStats{
			Total:          total,
			Completed:      completed,
			Cancelled:      cancelled,
			CompletionRate: CompletionRate(completed, total),
			AvgDuration:    avgDuration,
			TotalDuration:  totalDuration,
		},
		MessagesPerAgent: messageCounts,
		PopularTopics:    topics,
		UsageTrends:      MergeTrends(meetingTrend, chatTrend),
	}, nil
}

// CompletionRate returns completed/total as a percentage rounded to two
// decimals, and 0 when total is 0.
func CompletionRate(completed, total int64) float64 {
	if total == 0 {
		return 0
	}
	rate := decimal.NewFromInt(completed).
		Div(decimal.NewFromInt(total)).
		Mul(decimal.NewFromInt(100)).
		Round(2)
	f, _ := rate.Float64()
	return f
}

// MergeTrends joins per-day meeting and chat counts by date key. A day
// present on one side only gets 0 for the other; a day absent from both
// does not appear.
func MergeTrends(meetings, chats []DailyCount) []TrendPoint {
	byDate := make(map[string]*TrendPoint)

	for _, dc := range meetings {
		byDate[dc.Date] = &TrendPoint{Date: dc.Date, Meetings: dc.Count}
	}
	for _, dc := range chats {
		if point, ok := byDate[dc.Date]; ok {
			point.Chats = dc.Count
			continue
		}
		byDate[dc.Date] = &TrendPoint{Date: dc.Date, Chats: dc.Count}
	}

	merged := make([]TrendPoint, 0, len(byDate))
	for _, point := range byDate {
		merged = append(merged, *point)
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Date < merged[j].Date
	})
	return merged
}
