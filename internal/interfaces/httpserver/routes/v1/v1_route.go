package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agentsync/server/internal/config"
	"agentsync/server/internal/interfaces/httpserver/routes/v1/agents"
	"agentsync/server/internal/interfaces/httpserver/routes/v1/chats"
	"agentsync/server/internal/interfaces/httpserver/routes/v1/meetings"
	"agentsync/server/internal/interfaces/httpserver/routes/v1/profile"
)

type V1Route struct {
	agents   *agents.AgentsRoute
	chats    *chats.ChatsRoute
	meetings *meetings.MeetingsRoute
	profile  *profile.ProfileRoute
}

func NewV1Route(
	agents *agents.AgentsRoute,
	chats *chats.ChatsRoute,
	meetings *meetings.MeetingsRoute,
	profile *profile.ProfileRoute,
) *V1Route {
	return &V1Route{
		agents,
		chats,
		meetings,
		profile,
	}
}

func (v1Route *V1Route) RegisterRouter(router gin.IRouter) {
	v1Router := router.Group("/v1")

	v1Route.agents.RegisterRouter(v1Router)
	v1Route.chats.RegisterRouter(v1Router)
	v1Route.meetings.RegisterRouter(v1Router)
	v1Route.profile.RegisterRouter(v1Router)
}

// RegisterPublicRouter registers endpoints that do not require authentication
func (v1Route *V1Route) RegisterPublicRouter(router gin.IRouter) {
	v1Router := router.Group("/v1")
	v1Router.GET("/version", GetVersion)
	v1Router.GET("/healthz", GetHealthz)
	v1Router.GET("/readyz", GetReadyz)
}

// GetVersion godoc
// @Summary Get API build version
// @Description Returns the current build version of the API server and environment reload timestamp.
// @Tags Server API
// @Produce json
// @Success 200 {object} map[string]string "Version information"
// @Router /v1/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version":         config.Version,
		"env_reloaded_at": config.GetEnvReloadedAt().Format("2006-01-02T15:04:05Z07:00"),
	})
}

// GetHealthz godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API server.
// @Tags Server API
// @Produce json
// @Success 200 {object} map[string]string "Health status OK"
// @Router /v1/healthz [get]
func GetHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetReadyz godoc
// @Summary Readiness check endpoint
// @Description Returns the readiness status of the API server.
// @Tags Server API
// @Produce json
// @Success 200 {object} map[string]string "Readiness status ready"
// @Router /v1/readyz [get]
func GetReadyz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
