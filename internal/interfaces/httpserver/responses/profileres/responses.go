package profileres

import (
	"agentsync/server/internal/domain/analytics"
	"agentsync/server/internal/domain/user"
)

// ProfileResponse represents the authenticated account
type ProfileResponse struct {
	ID        string  `json:"id"`
	Object    string  `json:"object"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Image     *string `json:"image,omitempty"`
	CreatedAt int64   `json:"created_at"`
	UpdatedAt int64   `json:"updated_at"`
}

// AgentPerformanceResponse is one agent's usage figures
type AgentPerformanceResponse struct {
	AgentID         string `json:"agent_id"`
	AgentName       string `json:"agent_name"`
	TotalMessages   int64  `json:"total_messages"`
	AvgResponseTime int64  `json:"avg_response_time"`
}

// AgentMessageCountResponse is one agent's stored-message total
type AgentMessageCountResponse struct {
	AgentID      string `json:"agent_id"`
	AgentName    string `json:"agent_name"`
	MessageCount int64  `json:"message_count"`
}

// MeetingStatsResponse aggregates the user's meetings
type MeetingStatsResponse struct {
	Total          int64   `json:"total"`
	Completed      int64   `json:"completed"`
	Cancelled      int64   `json:"cancelled"`
	CompletionRate float64 `json:"completion_rate"`
	AvgDuration    float64 `json:"avg_duration"`
	TotalDuration  float64 `json:"total_duration"`
}

// TrendPointResponse is one day's meeting and chat counts
type TrendPointResponse struct {
	Date     string `json:"date"`
	Meetings int64  `json:"meetings"`
	Chats    int64  `json:"chats"`
}

// TopicSampleResponse is a truncated recent user message
type TopicSampleResponse struct {
	AgentID       string `json:"agent_id"`
	AgentName     string `json:"agent_name"`
	SampleContent string `json:"sample_content"`
}

// AnalyticsResponse is the full dashboard summary
type AnalyticsResponse struct {
	Object           string                      `json:"object"`
	AgentPerformance []AgentPerformanceResponse  `json:"agent_performance"`
	MeetingStats     MeetingStatsResponse        `json:"meeting_stats"`
	MessagesPerAgent []AgentMessageCountResponse `json:"messages_per_agent"`
	PopularTopics    []TopicSampleResponse       `json:"popular_topics"`
	UsageTrends      []TrendPointResponse        `json:"usage_trends"`
}

// NewProfileResponse creates a response from a domain user
func NewProfileResponse(u *user.User) *ProfileResponse {
	return &ProfileResponse{
		ID:        u.PublicID,
		Object:    "user",
		Name:      u.Name,
		Email:     u.Email,
		Image:     u.Image,
		CreatedAt: u.CreatedAt.Unix(),
		UpdatedAt: u.UpdatedAt.Unix(),
	}
}

// NewAnalyticsResponse creates a response from a domain summary
func NewAnalyticsResponse(s *analytics.Summary) *AnalyticsResponse {
	performance := make([]AgentPerformanceResponse, 0, len(s.AgentPerformance))
	for _, p := range s.AgentPerformance {
		performance = append(performance, AgentPerformanceResponse{
			AgentID:         p.AgentPublicID,
			AgentName:       p.AgentName,
			TotalMessages:   p.TotalMessages,
			AvgResponseTime: p.AvgResponseTime,
		})
	}

	messages := make([]AgentMessageCountResponse, 0, len(s.MessagesPerAgent))
	for _, m := range s.MessagesPerAgent {
		messages = append(messages, AgentMessageCountResponse{
			AgentID:      m.AgentPublicID,
			AgentName:    m.AgentName,
			MessageCount: m.MessageCount,
		})
	}

	topics := make([]TopicSampleResponse, 0, len(s.PopularTopics))
	for _, t := range s.PopularTopics {
		topics = append(topics, TopicSampleResponse{
			AgentID:       t.AgentPublicID,
			AgentName:     t.AgentName,
			SampleContent: t.SampleContent,
		})
	}

	trends := make([]TrendPointResponse, 0, len(s.UsageTrends))
	for _, t := range s.UsageTrends {
		trends = append(trends, TrendPointResponse{
			Date:     t.Date,
			Meetings: t.Meetings,
			Chats:    t.Chats,
		})
	}

	return &AnalyticsResponse{
		Object:           "analytics.summary",
		AgentPerformance: performance,
		MeetingStats: MeetingStatsResponse{
			Total:          s.MeetingStats.Total,
			Completed:      s.MeetingStats.Completed,
			Cancelled:      s.MeetingStats.Cancelled,
			CompletionRate: s.MeetingStats.CompletionRate,
			AvgDuration:    s.MeetingStats.AvgDuration,
			TotalDuration:  s.MeetingStats.TotalDuration,
		},
		MessagesPerAgent: messages,
		PopularTopics:    topics,
		UsageTrends:      trends,
	}
}
