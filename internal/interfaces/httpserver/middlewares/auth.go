package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"agentsync/server/internal/domain/user"
	"agentsync/server/internal/infrastructure/auth"
	"agentsync/server/internal/interfaces/httpserver/responses"
	"agentsync/server/internal/utils/apperrors"
)

const currentUserContextKey = "current_user"

// AuthMiddleware validates the bearer session token and resolves the
// account it belongs to.
func AuthMiddleware(issuer *auth.TokenIssuer, users user.Repository, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			logger.Warn().
				Str("path", c.FullPath()).
				Str("method", c.Request.Method).
				Msg("unauthenticated request")
			responses.HandleNewError(c, apperrors.ErrorTypeUnauthorized, "authentication required", "f5b51994-6c05-4f7d-9ae7-0c33f1c8f30f")
			return
		}

		ctx := c.Request.Context()
		publicID, err := issuer.Parse(ctx, token)
		if err != nil {
			logger.Warn().Err(err).Msg("session token validation failed")
			responses.HandleError(c, err, "unauthorized")
			return
		}

		usr, err := users.FindByPublicID(ctx, publicID)
		if err != nil {
			if apperrors.IsNotFound(err) {
				responses.HandleNewError(c, apperrors.ErrorTypeUnauthorized, "account no longer exists", "9c21b7cc-70dd-4f4f-9ef7-0ff0a8d9b6c3")
				return
			}
			responses.HandleError(c, err, "failed to resolve account")
			return
		}

		c.Set(currentUserContextKey, usr)
		c.Next()
	}
}

// UserFromContext returns the authenticated user, if any.
func UserFromContext(c *gin.Context) (*user.User, bool) {
	val, ok := c.Get(currentUserContextKey)
	if !ok {
		return nil, false
	}
	usr, ok := val.(*user.User)
	return usr, ok
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
