package user

import (
	"context"
	"net/mail"
	"strings"

	"agentsync/server/internal/utils/apperrors"
)

// Service exposes the profile operations.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetByID loads a user, mapping a missing row to not_found.
func (s *Service) GetByID(ctx context.Context, id uint) (*User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.AsError(ctx, apperrors.LayerDomain, err, "user not found")
	}
	return u, nil
}

// UpdateProfile applies name/email/image changes for the given user.
func (s *Service) UpdateProfile(ctx context.Context, id uint, name, email string, image *string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewError(ctx, apperrors.LayerDomain, apperrors.ErrorTypeValidation, "name must not be empty", nil, "a52b1999-1b45-4f00-a30f-822e2d9ce509")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, apperrors.NewError(ctx, apperrors.LayerDomain, apperrors.ErrorTypeValidation, "invalid email address", err, "9b68c763-76dd-49aa-9f8c-1eb4f04c35d4")
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.AsError(ctx, apperrors.LayerDomain, err, "user not found")
	}

	u.Name = name
	u.Email = strings.ToLower(email)
	u.Image = image
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, apperrors.AsError(ctx, apperrors.LayerDomain, err, "failed to update user")
	}
	return u, nil
}
