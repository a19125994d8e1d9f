package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		name      string
		completed int64
		total     int64
		want      float64
	}{
		{"no meetings", 0, 0, 0},
		{"all completed", 4, 4, 100},
		{"three quarters", 3, 4, 75},
		{"one third rounds down", 1, 3, 33.33},
		{"two thirds rounds up", 2, 3, 66.67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompletionRate(tt.completed, tt.total))
		})
	}
}

func TestMergeTrends(t *testing.T) {
	meetings := []DailyCount{
		{Date: "2026-08-01", Count: 2},
		{Date: "2026-08-03", Count: 1},
	}
	chats := []DailyCount{
		{Date: "2026-08-02", Count: 5},
		{Date: "2026-08-03", Count: 4},
	}

	merged := MergeTrends(meetings, chats)

	require.Len(t, merged, 3)
	assert.Equal(t, TrendPoint{Date: "2026-08-01", Meetings: 2, Chats: 0}, merged[0])
	assert.Equal(t, TrendPoint{Date: "2026-08-02", Meetings: 0, Chats: 5}, merged[1])
	assert.Equal(t, TrendPoint{Date: "2026-08-03", Meetings: 1, Chats: 4}, merged[2])
}

func TestMergeTrendsEmpty(t *testing.T) {
	assert.Empty(t, MergeTrends(nil, nil))
}

type fakeAnalyticsStore struct {
	messageCounts []AgentMessageCount
	total         int64
	completed     int64
	cancelled     int64
	avgDuration   float64
	totalDuration float64
	meetingTrend  []DailyCount
	chatTrend     []DailyCount
	topics        []TopicSample
	since         time.Time
}

func (f *fakeAnalyticsStore) MessageCountsByAgent(_ context.Context, _ uint) ([]AgentMessageCount, error) {
	return f.messageCounts, nil
}

func (f *fakeAnalyticsStore) MeetingStats(_ context.Context, _ uint) (int64, int64, int64, float64, float64, error) {
	return f.total, f.completed, f.cancelled, f.avgDuration, f.totalDuration, nil
}

func (f *fakeAnalyticsStore) MeetingsPerDay(_ context.Context, _ uint, since time.Time) ([]DailyCount, error) {
	f.since = since
	return f.meetingTrend, nil
}

func (f *fakeAnalyticsStore) ChatsPerDay(_ context.Context, _ uint, _ time.Time) ([]DailyCount, error) {
	return f.chatTrend, nil
}

func (f *fakeAnalyticsStore) PopularTopics(_ context.Context, _ uint, _, _ int) ([]TopicSample, error) {
	return f.topics, nil
}

func TestGetSummary(t *testing.T) {
	store := &fakeAnalyticsStore{
		messageCounts: []AgentMessageCount{
			{AgentPublicID: "agent_tutor", AgentName: "Tutor", MessageCount: 12},
		},
		total:         4,
		completed:     3,
		cancelled:     1,
		avgDuration:   1800,
		totalDuration: 5400,
		meetingTrend:  []DailyCount{{Date: "2026-08-01", Count: 1}},
		chatTrend:     []DailyCount{{Date: "2026-08-02", Count: 2}},
		topics: []TopicSample{
			{AgentPublicID: "agent_tutor", AgentName: "Tutor", SampleContent: "Explain derivatives"},
		},
	}
	svc := NewService(store)
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	summary, err := svc.GetSummary(context.Background(), 7)
	require.NoError(t, err)

	require.Len(t, summary.AgentPerformance, 1)
	assert.Equal(t, int64(12), summary.AgentPerformance[0].TotalMessages)
	assert.Equal(t, int64(placeholderResponseTimeMillis), summary.AgentPerformance[0].AvgResponseTime)

	assert.Equal(t, int64(4), summary.MeetingStats.Total)
	assert.Equal(t, float64(75), summary.MeetingStats.CompletionRate)
	assert.Equal(t, float64(1800), summary.MeetingStats.AvgDuration)

	require.Len(t, summary.UsageTrends, 2)
	assert.Equal(t, "2026-08-01", summary.UsageTrends[0].Date)
	assert.Equal(t, "2026-08-02", summary.UsageTrends[1].Date)

	assert.Equal(t, now.AddDate(0, 0, -trendWindowDays), store.since)
	require.Len(t, summary.PopularTopics, 1)
	assert.Equal(t, "Explain derivatives", summary.PopularTopics[0].SampleContent)
}
