package profile

import (
	"github.com/gin-gonic/gin"

	"agentsync/server/internal/interfaces/httpserver/handlers/profilehandler"
)

type ProfileRoute struct {
	handler *profilehandler.ProfileHandler
}

func NewProfileRoute(handler *profilehandler.ProfileHandler) *ProfileRoute {
	return &ProfileRoute{handler: handler}
}

func (route *ProfileRoute) RegisterRouter(router gin.IRouter) {
	profileGroup := router.Group("/profile")
	profileGroup.GET("", route.handler.GetProfile)
	profileGroup.POST("", route.handler.UpdateProfile)
	profileGroup.GET("/analytics", route.handler.GetAnalytics)
}
