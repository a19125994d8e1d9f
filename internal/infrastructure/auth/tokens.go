// Package auth issues and validates the signed session tokens handed
// out at registration.
package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"agentsync/server/internal/config"
	"agentsync/server/internal/domain/user"
	"agentsync/server/internal/utils/apperrors"
)

const tokenIssuer = "agentsync"

// TokenIssuer signs and parses HMAC session tokens. The subject claim
// carries the user's public ID.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(cfg *config.Config) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(cfg.AuthJWTSecret),
		ttl:    cfg.SessionTokenTTL,
		now:    time.Now,
	}
}

// Issue returns a signed session token for the user.
func (t *TokenIssuer) Issue(ctx context.Context, usr *user.User) (string, error) {
	now := t.now()
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   usr.PublicID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", apperrors.NewError(
			ctx,
			apperrors.LayerInfrastructure,
			apperrors.ErrorTypeInternal,
			"failed to sign session token",
			err,
			"d431b648-51c8-4610-bdf7-7a556c59beaf",
		)
	}
	return signed, nil
}

// Parse validates the token signature and expiry and returns the user
// public ID from the subject claim.
func (t *TokenIssuer) Parse(ctx context.Context, tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (any, error) {
			return t.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil || !token.Valid {
		return "", apperrors.NewError(
			ctx,
			apperrors.LayerInfrastructure,
			apperrors.ErrorTypeUnauthorized,
			"invalid session token",
			err,
			"4c58ff9c-227c-4d52-a048-5ef13b09a232",
		)
	}
	if claims.Subject == "" {
		return "", apperrors.NewError(
			ctx,
			apperrors.LayerInfrastructure,
			apperrors.ErrorTypeUnauthorized,
			"session token missing subject",
			nil,
			"2fd14572-4f66-4fbc-9df1-1a4a20eddbcf",
		)
	}
	return claims.Subject, nil
}
