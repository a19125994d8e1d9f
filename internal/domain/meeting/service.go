package meeting

import (
	"context"
	"strings"
	"time"

	"agentsync/server/internal/domain/agent"
	"agentsync/server/internal/domain/query"
	"agentsync/server/internal/utils/apperrors"
	"agentsync/server/internal/utils/idgen"
)

// Service handles business logic for meetings. Status transitions are
// owned by the video platform; callers report them via UpdateStatus.
type Service struct {
	repo   Repository
	agents agent.Repository
}

func NewService(repo Repository, agents agent.Repository) *Service {
	return &Service{repo: repo, agents: agents}
}

// Create schedules a meeting with an owned agent, starting as upcoming.
func (s *Service) Create(ctx context.Context, userID uint, agentPublicID, name string, metadata map[string]string) (*Meeting, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewError(ctx, apperrors.LayerDomain, apperrors.ErrorTypeValidation, "meeting name must not be empty", nil, "c43c1632-c863-4e03-a696-ee5133f72d77")
	}

	a, err := s.agents.FindByPublicIDAndUserID(ctx, agentPublicID, userID)
	if err != nil {
		return nil, apperrors.AsError(ctx, apperrors.LayerDomain, err, "agent not found")
	}

	m := &Meeting{
		PublicID: idgen.MustGenerateSecureID("mtg", 16),
		UserID:   userID,
		AgentID:  a.ID,
		Name:     name,
		Status:   StatusUpcoming,
		Metadata: metadata,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, apperrors.AsError(ctx, apperrors.LayerDomain, err, "failed to create meeting")
	}
	return m, nil
}

// List returns meetings owned by userID, optionally filtered by status.
func (s *Service) List(ctx context.Context, userID uint, status *Status, pagination *query.Pagination) ([]*Meeting, error) {
	if status != nil && !status.Valid() {
		return nil, apperrors.NewError(ctx, apperrors.LayerDomain, apperrors.ErrorTypeValidation, "unknown meeting status", nil, "45e25e68-e4e3-4e0d-bc01-492638f75c19")
	}
	meetings, err := s.repo.ListByUserID(ctx, userID, status, pagination)
	if err != nil {
		return nil, apperrors.AsError(ctx, apperrors.LayerDomain, err, "failed to list meetings")
	}
	return meetings, nil
}

// UpdateStatus records a status reported by the video platform. Started
// and ended timestamps are stamped on the active/terminal edges when not
// already set.
func (s *Service) UpdateStatus(ctx context.Context, userID uint, publicID string, status Status) (*Meeting, error) {
	if !status.Valid() {
		return nil, apperrors.NewError(ctx, apperrors.LayerDomain, apperrors.ErrorTypeValidation, "unknown meeting status", nil, "eb11c2d0-7cdb-4e9a-9056-f6850dd4d0a3")
	}

	m, err := s.repo.FindByPublicIDAndUserID(ctx, publicID, userID)
	if err != nil {
		return nil, apperrors.AsError(ctx, apperrors.LayerDomain, err, "meeting not found")
	}

	now := time.Now()
	if status == StatusActive && m.StartedAt == nil {
		m.StartedAt = &now
	}
	if (status == StatusCompleted || status == StatusProcessing) && m.EndedAt == nil {
		m.EndedAt = &now
	}
	m.Status = status

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, apperrors.AsError(ctx, apperrors.LayerDomain, err, "failed to update meeting")
	}
	return m, nil
}
