package agent

import (
	"context"
	"strings"

	"agentsync/server/internal/domain/query"
	"agentsync/server/internal/utils/apperrors"
	"agentsync/server/internal/utils/idgen"
)

const maxInstructionsLength = 8000

// Service handles business logic for agents.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and persists a new agent for userID.
func (s *Service) Create(ctx context.Context, userID uint, name, instructions string) (*Agent, error) {
	name = strings.TrimSpace(name)
	instructions = strings.TrimSpace(instructions)
	if name == "" {
		return nil, apperrors.NewError(ctx, apperrors.LayerDomain, apperrors.ErrorTypeValidation, "agent name must not be empty", nil, "04d5b660-64d6-4545-9e79-d658d3075b82")
	}
	if instructions == "" {
		return nil, apperrors.NewError(ctx, apperrors.LayerDomain, apperrors.ErrorTypeValidation, "agent instructions must not be empty", nil, "c34b932b-086f-4d55-a5c6-2fa2a37921ce")
	}
	if len(instructions) > maxInstructionsLength {
		return nil, apperrors.NewError(ctx, apperrors.LayerDomain, apperrors.ErrorTypeValidation, "agent instructions too long", nil, "3cf2ce7d-a378-4f8f-980c-52b583d02c0c")
	}

	a := &Agent{
		PublicID:     idgen.MustGenerateSecureID("agt", 16),
		UserID:       userID,
		Name:         name,
		Instructions: instructions,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, apperrors.AsError(ctx, apperrors.LayerDomain, err, "failed to create agent")
	}
	return a, nil
}

// GetByPublicID retrieves an agent owned by userID.
func (s *Service) GetByPublicID(ctx context.Context, publicID string, userID uint) (*Agent, error) {
	a, err := s.repo.FindByPublicIDAndUserID(ctx, publicID, userID)
	if err != nil {
		return nil, apperrors.AsError(ctx, apperrors.LayerDomain, err, "agent not found")
	}
	return a, nil
}

// List returns the agents owned by userID.
func (s *Service) List(ctx context.Context, userID uint, pagination *query.Pagination) ([]*Agent, error) {
	agents, err := s.repo.ListByUserID(ctx, userID, pagination)
	if err != nil {
		return nil, apperrors.AsError(ctx, apperrors.LayerDomain, err, "failed to list agents")
	}
	return agents, nil
}

// Update applies name/instructions changes to an owned agent.
func (s *Service) Update(ctx context.Context, publicID string, userID uint, name, instructions *string) (*Agent, error) {
	a, err := s.GetByPublicID(ctx, publicID, userID)
	if err != nil {
		return nil, err
	}

	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, apperrors.NewError(ctx, apperrors.LayerDomain, apperrors.ErrorTypeValidation, "agent name must not be empty", nil, "84dd44d0-8116-4545-940a-e02ea59276de")
		}
		a.Name = trimmed
	}
	if instructions != nil {
		trimmed := strings.TrimSpace(*instructions)
		if trimmed == "" || len(trimmed) > maxInstructionsLength {
			return nil, apperrors.NewError(ctx, apperrors.LayerDomain, apperrors.ErrorTypeValidation, "invalid agent instructions", nil, "174b3807-0752-4824-8727-c107e91ab55c")
		}
		a.Instructions = trimmed
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, apperrors.AsError(ctx, apperrors.LayerDomain, err, "failed to update agent")
	}
	return a, nil
}

// Delete removes an owned agent.
func (s *Service) Delete(ctx context.Context, publicID string, userID uint) error {
	a, err := s.GetByPublicID(ctx, publicID, userID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, a.ID); err != nil {
		return apperrors.AsError(ctx, apperrors.LayerDomain, err, "failed to delete agent")
	}
	return nil
}
