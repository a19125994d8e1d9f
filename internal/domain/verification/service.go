package verification

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"net/mail"
	"strings"
	"time"

	"agentsync/server/internal/domain/user"
	"agentsync/server/internal/utils/apperrors"
	"agentsync/server/internal/utils/idgen"
)

// Service owns the OTP lifecycle: request, confirm, register.
type Service struct {
	repo   Repository
	users  user.Repository
	mailer Mailer
	expiry time.Duration
	now    func() time.Time
}

func NewService(repo Repository, users user.Repository, mailer Mailer, expiry time.Duration) *Service {
	if expiry <= 0 {
		expiry = 5 * time.Minute
	}
	return &Service{
		repo:   repo,
		users:  users,
		mailer: mailer,
		expiry: expiry,
		now:    time.Now,
	}
}

// RequestCode generates a 6-digit code for email, replacing any previous
// code for that address, and dispatches it via the mail collaborator.
func (s *Service) RequestCode(ctx context.Context, email string) error {
	email, err := normalizeEmail(ctx, email)
	if err != nil {
		return err
	}

	code, err := generateNumericCode(6)
	if err != nil {
		return apperrors.NewError(ctx, apperrors.LayerDomain, apperrors.ErrorTypeInternal, "failed to generate code", err, "9d9c7e1f-37ae-41e0-b780-460204a59e1c")
	}

	// Delete-then-insert keeps at most one active row per email.
	if err := s.repo.DeleteByIdentifier(ctx, email); err != nil {
		return apperrors.AsError(ctx, apperrors.LayerDomain, err, "failed to clear previous code")
	}
	if err := s.repo.Create(ctx, &Code{
		Identifier: email,
		Value:      code,
		ExpiresAt:  s.now().Add(s.expiry),
	}); err != nil {
		return apperrors.AsError(ctx, apperrors.LayerDomain, err, "failed to store code")
	}

	if err := s.mailer.SendOTP(ctx, email, code); err != nil {
		return apperrors.NewError(ctx, apperrors.LayerDomain, apperrors.ErrorTypeUpstream, "failed to send verification email", err, "331737cc-bc0b-44f2-9328-4cefb9d1d0c4")
	}
	return nil
}

// ConfirmCode validates a submitted code. Expiry is checked strictly
// before equality, so an expired-but-correct code reports expiry.
// On success the row is rewritten with the verified marker rather than
// deleted; Register consumes it.
func (s *Service) ConfirmCode(ctx context.Context, email, submitted string) error {
	email, err := normalizeEmail(ctx, email)
	if err != nil {
		return err
	}

	record, err := s.repo.FindByIdentifier(ctx, email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewError(ctx, apperrors.LayerDomain, apperrors.ErrorTypeValidation, "no verification request found", err, "39fb1705-db14-4277-830c-b37345f2c481")
		}
		return apperrors.AsError(ctx, apperrors.LayerDomain, err, "failed to load verification code")
	}

	if s.now().After(record.ExpiresAt) {
		if err := s.repo.Delete(ctx, record.ID); err != nil {
			return apperrors.AsError(ctx, apperrors.LayerDomain, err, "failed to delete expired code")
		}
		return apperrors.NewError(ctx, apperrors.LayerDomain, apperrors.ErrorTypeValidation, "verification code expired", nil, "34bb7a96-fe8f-454a-8827-d44270278d3b")
	}

	if record.Value != submitted {
		return apperrors.NewError(ctx, apperrors.LayerDomain, apperrors.ErrorTypeValidation, "invalid verification code", nil, "b3b576e0-3887-4588-a04f-7c39d58cd8a0")
	}

	record.Value = VerifiedPrefix + submitted
	if err := s.repo.Update(ctx, record); err != nil {
		return apperrors.AsError(ctx, apperrors.LayerDomain, err, "failed to mark code verified")
	}
	return nil
}

// Register creates the account for a verified email and consumes the
// verification row. Fails when the email was never confirmed or an
// account already exists.
func (s *Service) Register(ctx context.Context, email, name string) (*user.User, error) {
	email, err := normalizeEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewError(ctx, apperrors.LayerDomain, apperrors.ErrorTypeValidation, "name must not be empty", nil, "93ec0387-b300-40f7-998f-510c64555aa2")
	}

	record, err := s.repo.FindByIdentifier(ctx, email)
	if err != nil || !record.Verified() {
		return nil, apperrors.NewError(ctx, apperrors.LayerDomain, apperrors.ErrorTypeValidation, "email not verified", err, "d8a6d8e0-4c35-4e72-81d0-5defd12b6be8")
	}

	if existing, err := s.users.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, apperrors.NewError(ctx, apperrors.LayerDomain, apperrors.ErrorTypeConflict, "account already exists", nil, "64745f84-a707-4678-9380-693ea18ace91")
	}

	u := &user.User{
		PublicID: idgen.MustGenerateSecureID("usr", 16),
		Name:     name,
		Email:    email,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, apperrors.AsError(ctx, apperrors.LayerDomain, err, "failed to create user")
	}

	if err := s.repo.Delete(ctx, record.ID); err != nil {
		return nil, apperrors.AsError(ctx, apperrors.LayerDomain, err, "failed to consume verification code")
	}
	return u, nil
}

// SweepStale removes expired rows and verified rows that were never
// consumed by registration.
func (s *Service) SweepStale(ctx context.Context, verifiedMaxAge time.Duration) (int64, error) {
	return s.repo.DeleteStale(ctx, s.now(), verifiedMaxAge)
}

func normalizeEmail(ctx context.Context, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return "", apperrors.NewError(ctx, apperrors.LayerDomain, apperrors.ErrorTypeValidation, "invalid email address", err, "4ca8cd6e-4055-49c4-827a-58c15b18dfde")
	}
	return email, nil
}

func generateNumericCode(digits int) (string, error) {
	bound := big.NewInt(1)
	for i := 0; i < digits; i++ {
		bound.Mul(bound, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, bound)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", digits, n), nil
}
