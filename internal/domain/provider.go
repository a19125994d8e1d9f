package domain

import (
	"github.com/google/wire"

	"agentsync/server/internal/config"
	"agentsync/server/internal/domain/agent"
	"agentsync/server/internal/domain/analytics"
	"agentsync/server/internal/domain/chat"
	"agentsync/server/internal/domain/meeting"
	"agentsync/server/internal/domain/user"
	"agentsync/server/internal/domain/verification"
)

// ServiceProvider provides all domain services
var ServiceProvider = wire.NewSet(
	user.NewService,
	agent.NewService,
	meeting.NewService,
	analytics.NewService,

	ProvideVerificationService,
	ProvideChatService,
)

func ProvideVerificationService(
	cfg *config.Config,
	repo verification.Repository,
	users user.Repository,
	mailer verification.Mailer,
) *verification.Service {
	return verification.NewService(repo, users, mailer, cfg.OTPExpiry)
}

func ProvideChatService(
	cfg *config.Config,
	repo chat.Repository,
	agents agent.Repository,
	completion chat.CompletionClient,
) *chat.Service {
	return chat.NewService(repo, agents, completion, cfg.CompletionModel)
}
