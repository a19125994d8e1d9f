// Package responses maps application errors onto HTTP responses.
package responses

import (
	"errors"

	"github.com/gin-gonic/gin"

	"agentsync/server/internal/interfaces/httpserver/dto"
	"agentsync/server/internal/utils/apperrors"
)

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Success bool          `json:"success"`
	Error   dto.ErrorInfo `json:"error"`
}

// HandleError aborts the request with the status derived from the error
// type. Untyped errors surface the fallback message as a 500.
func HandleError(c *gin.Context, err error, fallbackMessage string) {
	message := fallbackMessage
	code := apperrors.CodeOf(err)

	var appErr *apperrors.Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		message = appErr.Message
	}

	c.Error(err)
	c.AbortWithStatusJSON(apperrors.HTTPStatus(err), ErrorResponse{
		Error: dto.ErrorInfo{
			Code:    code,
			Message: message,
		},
	})
}

// HandleNewError aborts the request with a freshly built error of the
// given type.
func HandleNewError(c *gin.Context, errorType apperrors.ErrorType, message, code string) {
	err := apperrors.NewError(c.Request.Context(), apperrors.LayerHandler, errorType, message, nil, code)
	HandleError(c, err, message)
}

// HandleErrorWithStatus aborts the request with an explicit status.
func HandleErrorWithStatus(c *gin.Context, status int, err error, message string) {
	c.Error(err)
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: dto.ErrorInfo{
			Code:    apperrors.CodeOf(err),
			Message: message,
		},
	})
}
