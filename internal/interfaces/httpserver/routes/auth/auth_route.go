package auth

import (
	"github.com/gin-gonic/gin"

	"agentsync/server/internal/interfaces/httpserver/handlers/authhandler"
)

// AuthRoute registers the public OTP and registration endpoints.
type AuthRoute struct {
	handler *authhandler.AuthHandler
}

func NewAuthRoute(handler *authhandler.AuthHandler) *AuthRoute {
	return &AuthRoute{handler: handler}
}

func (route *AuthRoute) RegisterRouter(router gin.IRouter) {
	authGroup := router.Group("/auth")
	authGroup.POST("/otp/send", route.handler.SendOTP)
	authGroup.POST("/otp/verify", route.handler.VerifyOTP)
	authGroup.POST("/register", route.handler.Register)
}
