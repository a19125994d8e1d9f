package authhandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"agentsync/server/internal/domain/verification"
	"agentsync/server/internal/infrastructure/auth"
	"agentsync/server/internal/infrastructure/metrics"
	"agentsync/server/internal/interfaces/httpserver/requests/authreq"
	"agentsync/server/internal/interfaces/httpserver/responses"
	"agentsync/server/internal/interfaces/httpserver/responses/authres"
	"agentsync/server/internal/utils/apperrors"
)

// AuthHandler handles the OTP verification and registration flow.
type AuthHandler struct {
	verifications *verification.Service
	tokens        *auth.TokenIssuer
	logger        zerolog.Logger
}

func NewAuthHandler(verifications *verification.Service, tokens *auth.TokenIssuer, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		verifications: verifications,
		tokens:        tokens,
		logger:        logger,
	}
}

// SendOTP handles POST /auth/otp/send
// @Summary Request a verification code
// @Description Generate a one-time code and mail it to the given address. A resend replaces the previous code.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body authreq.SendOTPRequest true "Target email"
// @Success 200 {object} authres.OTPSentResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /auth/otp/send [post]
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req authreq.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, apperrors.ErrorTypeValidation, "invalid request body", "b62dbeb6-9e60-41ee-b4d0-95e58d6f0a3a")
		return
	}

	if err := h.verifications.RequestCode(c.Request.Context(), req.Email); err != nil {
		h.logger.Warn().Err(err).Msg("failed to send verification code")
		responses.HandleError(c, err, "failed to send verification code")
		return
	}

	metrics.OTPSentTotal.Inc()
	c.JSON(http.StatusOK, authres.OTPSentResponse{
		Object: "auth.otp",
		Email:  req.Email,
		Sent:   true,
	})
}

// VerifyOTP handles POST /auth/otp/verify
// @Summary Confirm a verification code
// @Description Check the submitted code against the stored one. Expiry is checked before the value.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body authreq.VerifyOTPRequest true "Email and code"
// @Success 200 {object} authres.OTPVerifiedResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /auth/otp/verify [post]
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req authreq.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, apperrors.ErrorTypeValidation, "invalid request body", "e29c82a9-4f0a-44b5-b95e-a0ac86dd8cf2")
		return
	}

	if err := h.verifications.ConfirmCode(c.Request.Context(), req.Email, req.OTP); err != nil {
		metrics.OTPVerificationsTotal.WithLabelValues("failure").Inc()
		responses.HandleError(c, err, "verification failed")
		return
	}

	metrics.OTPVerificationsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, authres.OTPVerifiedResponse{
		Object:   "auth.otp",
		Email:    req.Email,
		Verified: true,
	})
}

// Register handles POST /auth/register
// @Summary Register a verified account
// @Description Create the account for an email that holds a confirmed verification, consuming it, and issue a session token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body authreq.RegisterRequest true "Account details"
// @Success 201 {object} authres.RegisterResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req authreq.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, apperrors.ErrorTypeValidation, "invalid request body", "0ed7a2ba-9c6e-47b7-b5c3-521b4f9ab0d2")
		return
	}

	ctx := c.Request.Context()
	usr, err := h.verifications.Register(ctx, req.Email, req.Name)
	if err != nil {
		responses.HandleError(c, err, "registration failed")
		return
	}

	token, err := h.tokens.Issue(ctx, usr)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to issue session token")
		responses.HandleError(c, err, "failed to issue session token")
		return
	}

	c.JSON(http.StatusCreated, authres.NewRegisterResponse(usr, token))
}
