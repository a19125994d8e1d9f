package handlers

import (
	"github.com/google/wire"

	"agentsync/server/internal/interfaces/httpserver/handlers/agenthandler"
	"agentsync/server/internal/interfaces/httpserver/handlers/authhandler"
	"agentsync/server/internal/interfaces/httpserver/handlers/chathandler"
	"agentsync/server/internal/interfaces/httpserver/handlers/meetinghandler"
	"agentsync/server/internal/interfaces/httpserver/handlers/profilehandler"
)

var HandlerProvider = wire.NewSet(
	authhandler.NewAuthHandler,
	agenthandler.NewAgentHandler,
	chathandler.NewChatHandler,
	meetinghandler.NewMeetingHandler,
	profilehandler.NewProfileHandler,
)
