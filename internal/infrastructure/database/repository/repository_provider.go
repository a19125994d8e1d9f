package repository

import (
	"agentsync/server/internal/infrastructure/database/repository/agentrepo"
	"agentsync/server/internal/infrastructure/database/repository/analyticsrepo"
	"agentsync/server/internal/infrastructure/database/repository/chatrepo"
	"agentsync/server/internal/infrastructure/database/repository/meetingrepo"
	"agentsync/server/internal/infrastructure/database/repository/userrepo"
	"agentsync/server/internal/infrastructure/database/repository/verificationrepo"

	"github.com/google/wire"
)

var RepositoryProvider = wire.NewSet(
	userrepo.NewUserGormRepository,
	verificationrepo.NewVerificationGormRepository,
	agentrepo.NewAgentGormRepository,
	meetingrepo.NewMeetingGormRepository,
	chatrepo.NewChatGormRepository,
	analyticsrepo.NewAnalyticsGormRepository,
)
