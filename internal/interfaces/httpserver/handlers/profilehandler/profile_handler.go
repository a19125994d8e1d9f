package profilehandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"agentsync/server/internal/domain/analytics"
	"agentsync/server/internal/domain/user"
	"agentsync/server/internal/interfaces/httpserver/middlewares"
	"agentsync/server/internal/interfaces/httpserver/requests/profilereq"
	"agentsync/server/internal/interfaces/httpserver/responses"
	"agentsync/server/internal/interfaces/httpserver/responses/profileres"
	"agentsync/server/internal/utils/apperrors"
)

// ProfileHandler handles account and analytics requests.
type ProfileHandler struct {
	users     *user.Service
	analytics *analytics.Service
	logger    zerolog.Logger
}

func NewProfileHandler(users *user.Service, analyticsService *analytics.Service, logger zerolog.Logger) *ProfileHandler {
	return &ProfileHandler{
		users:     users,
		analytics: analyticsService,
		logger:    logger,
	}
}

// GetProfile handles GET /v1/profile
// @Summary Get the authenticated account
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} profileres.ProfileResponse
// @Failure 401 {object} responses.ErrorResponse
// @Router /v1/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	usr, ok := middlewares.UserFromContext(c)
	if !ok {
		responses.HandleNewError(c, apperrors.ErrorTypeUnauthorized, "authentication required", "8c96d7f1-6f3e-4b6a-8f1b-0a2845f7cb93")
		return
	}

	c.JSON(http.StatusOK, profileres.NewProfileResponse(usr))
}

// UpdateProfile handles POST /v1/profile
// @Summary Update account details
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body profilereq.UpdateProfileRequest true "Account details"
// @Success 200 {object} profileres.ProfileResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Router /v1/profile [post]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	usr, ok := middlewares.UserFromContext(c)
	if !ok {
		responses.HandleNewError(c, apperrors.ErrorTypeUnauthorized, "authentication required", "0a8b6a44-9d9f-4c7e-82a6-5d0de9b5a3c6")
		return
	}

	var req profilereq.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, apperrors.ErrorTypeValidation, "invalid request body", "c1f60ad3-6b9c-4fc8-b7a4-3cf1b30be1a5")
		return
	}

	updated, err := h.users.UpdateProfile(c.Request.Context(), usr.ID, req.Name, req.Email, req.Image)
	if err != nil {
		responses.HandleError(c, err, "failed to update profile")
		return
	}

	c.JSON(http.StatusOK, profileres.NewProfileResponse(updated))
}

// GetAnalytics handles GET /v1/profile/analytics
// @Summary Get the usage analytics summary
// @Description Agent performance, meeting statistics, per-agent message counts, recent topics and the 30-day usage trend.
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} profileres.AnalyticsResponse
// @Failure 401 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/profile/analytics [get]
func (h *ProfileHandler) GetAnalytics(c *gin.Context) {
	usr, ok := middlewares.UserFromContext(c)
	if !ok {
		responses.HandleNewError(c, apperrors.ErrorTypeUnauthorized, "authentication required", "48b70a9e-5f4f-4f62-9e51-3a2bbf2d6c88")
		return
	}

	summary, err := h.analytics.GetSummary(c.Request.Context(), usr.ID)
	if err != nil {
		h.logger.Error().Err(err).Uint("user_id", usr.ID).Msg("failed to build analytics summary")
		responses.HandleError(c, err, "failed to build analytics summary")
		return
	}

	c.JSON(http.StatusOK, profileres.NewAnalyticsResponse(summary))
}
