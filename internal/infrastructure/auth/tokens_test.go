package auth

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agentsync/server/internal/domain/user"
	"agentsync/server/internal/utils/apperrors"
)

func testIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func TestIssueAndParseRoundTrip(t *testing.T) {
	ctx := context.Background()
	issuer := testIssuer("test-secret", time.Hour)

	token, err := issuer.Issue(ctx, &user.User{PublicID: "usr_abc123"})
	require.NoError(t, err)

	subject, err := issuer.Parse(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "usr_abc123", subject)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	ctx := context.Background()
	token, err := testIssuer("secret-a", time.Hour).Issue(ctx, &user.User{PublicID: "usr_abc123"})
	require.NoError(t, err)

	_, err = testIssuer("secret-b", time.Hour).Parse(ctx, token)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperrors.HTTPStatus(err))
}

func TestParseRejectsExpiredToken(t *testing.T) {
	ctx := context.Background()
	issuer := testIssuer("test-secret", time.Hour)
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := issuer.Issue(ctx, &user.User{PublicID: "usr_abc123"})
	require.NoError(t, err)

	issuer.now = time.Now
	_, err = issuer.Parse(ctx, token)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, apperrors.TypeOf(err))
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := testIssuer("test-secret", time.Hour).Parse(context.Background(), "not-a-token")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, apperrors.TypeOf(err))
}
