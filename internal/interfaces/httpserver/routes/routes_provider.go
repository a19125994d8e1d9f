package routes

import (
	"agentsync/server/internal/interfaces/httpserver/routes/auth"
	v1 "agentsync/server/internal/interfaces/httpserver/routes/v1"
	"agentsync/server/internal/interfaces/httpserver/routes/v1/agents"
	"agentsync/server/internal/interfaces/httpserver/routes/v1/chats"
	"agentsync/server/internal/interfaces/httpserver/routes/v1/meetings"
	"agentsync/server/internal/interfaces/httpserver/routes/v1/profile"

	"github.com/google/wire"
)

var RouteProvider = wire.NewSet(
	auth.NewAuthRoute,
	v1.NewV1Route,
	agents.NewAgentsRoute,
	chats.NewChatsRoute,
	meetings.NewMeetingsRoute,
	profile.NewProfileRoute,
)
