// Package verification implements the email OTP flow: request a code,
// confirm it, and register the account that consumed it.
package verification

import (
	"context"
	"strings"
	"time"
)

// VerifiedPrefix tags a code value once it has been confirmed. The row
// survives confirmation so the registration step can prove the email was
// verified before creating the account.
const VerifiedPrefix = "VERIFIED_"

// Code is a one-time numeric verification code bound to an email address.
// At most one row exists per email; a resend overwrites the previous one.
type Code struct {
	ID         uint
	Identifier string
	Value      string
	ExpiresAt  time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Verified reports whether the code has been confirmed.
func (c *Code) Verified() bool {
	return strings.HasPrefix(c.Value, VerifiedPrefix)
}

// Repository persists verification codes.
type Repository interface {
	FindByIdentifier(ctx context.Context, email string) (*Code, error)
	DeleteByIdentifier(ctx context.Context, email string) error
	Create(ctx context.Context, code *Code) error
	Update(ctx context.Context, code *Code) error
	Delete(ctx context.Context, id uint) error
	// DeleteStale removes rows past their expiry plus verified rows older
	// than verifiedMaxAge. Returns the number of rows removed.
	DeleteStale(ctx context.Context, now time.Time, verifiedMaxAge time.Duration) (int64, error)
}

// Mailer dispatches the code to the address being verified.
type Mailer interface {
	SendOTP(ctx context.Context, email, code string) error
}
