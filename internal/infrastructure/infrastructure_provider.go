package infrastructure

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"agentsync/server/internal/config"
	"agentsync/server/internal/domain/chat"
	"agentsync/server/internal/domain/verification"
	"agentsync/server/internal/infrastructure/auth"
	"agentsync/server/internal/infrastructure/crontab"
	"agentsync/server/internal/infrastructure/database"
	"agentsync/server/internal/infrastructure/database/repository"
	"agentsync/server/internal/infrastructure/inference"
	"agentsync/server/internal/infrastructure/logger"
	"agentsync/server/internal/infrastructure/mailer"
)

// ProvideConfig loads and provides the application configuration
func ProvideConfig() (*config.Config, error) {
	return config.Load()
}

// ProvideDatabase provides a database connection
func ProvideDatabase(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.NewDB(cfg.DatabaseURL, cfg.DatabaseReadURL)
	if err != nil {
		return nil, err
	}

	// Run migrations if AUTO_MIGRATE is enabled
	if cfg.AutoMigrate {
		log.Info().Msg("Running database migrations...")
		if err := database.AutoMigrate(db); err != nil {
			log.Error().Err(err).Msg("Failed to run database migrations")
			return nil, err
		}
		log.Info().Msg("Database migrations completed successfully")
	}

	return db, nil
}

// ProvideMailer wires the OTP mail client.
func ProvideMailer(cfg *config.Config) verification.Mailer {
	return mailer.NewOTPMailer(cfg)
}

// ProvideCompletionClient wires the chat completion client.
func ProvideCompletionClient(cfg *config.Config) chat.CompletionClient {
	return inference.NewCompletionClient(cfg)
}

// Infrastructure holds all infrastructure dependencies
type Infrastructure struct {
	DB          *gorm.DB
	TokenIssuer *auth.TokenIssuer
	Logger      zerolog.Logger
}

// NewInfrastructure creates a new infrastructure instance
func NewInfrastructure(
	db *gorm.DB,
	tokenIssuer *auth.TokenIssuer,
	logger zerolog.Logger,
) *Infrastructure {
	return &Infrastructure{
		DB:          db,
		TokenIssuer: tokenIssuer,
		Logger:      logger,
	}
}

// InfrastructureProvider provides all infrastructure dependencies
var InfrastructureProvider = wire.NewSet(
	// Config
	ProvideConfig,

	// Database
	ProvideDatabase,

	// Repositories
	repository.RepositoryProvider,

	// Outbound clients
	ProvideMailer,
	ProvideCompletionClient,

	// Logger
	logger.GetLogger,

	// Session tokens
	auth.NewTokenIssuer,

	// Crontab for the verification sweep
	crontab.NewCrontab,

	// Infrastructure struct
	NewInfrastructure,
)
