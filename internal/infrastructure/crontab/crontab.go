package crontab

import (
	"context"
	"fmt"
	"time"

	"github.com/mileusna/crontab"

	"agentsync/server/internal/config"
	"agentsync/server/internal/domain/verification"
	"agentsync/server/internal/infrastructure/logger"
	"agentsync/server/internal/infrastructure/metrics"
	"agentsync/server/internal/utils/apperrors"
)

const (
	DefaultSweepInterval = 10               // in minutes
	CronJobTimeout       = 10 * time.Minute // Timeout for each cron job execution
)

type Crontab struct {
	ctab                *crontab.Crontab
	verificationService *verification.Service
}

func NewCrontab(verificationService *verification.Service) *Crontab {
	return &Crontab{
		ctab:                crontab.New(),
		verificationService: verificationService,
	}
}

func (c *Crontab) Run(ctx context.Context) error {
	log := logger.GetLogger()

	cfg := config.GetGlobal()
	if cfg != nil && cfg.OTPSweepEnabled {
		// execute once on server start
		c.sweepVerificationCodes(ctx, cfg.OTPVerifiedRowMaxAge)

		sweepInterval := cfg.OTPSweepIntervalMins
		if sweepInterval <= 0 {
			sweepInterval = DefaultSweepInterval
		}

		cronExpr := fmt.Sprintf("*/%d * * * *", sweepInterval)
		maxAge := cfg.OTPVerifiedRowMaxAge
		if err := c.ctab.AddJob(cronExpr, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), CronJobTimeout)
			defer cancel()
			c.sweepVerificationCodes(jobCtx, maxAge)
		}); err != nil {
			return apperrors.AsError(ctx, apperrors.LayerInfrastructure, err, "failed to add verification sweep job")
		}
		log.Info().Msgf("Verification sweep scheduled: every %d minute(s)", sweepInterval)
	}

	// Schedule environment reload job
	if err := c.ctab.AddJob("* * * * *", func() {
		config.Load()
	}); err != nil {
		return apperrors.AsError(ctx, apperrors.LayerInfrastructure, err, "failed to add env reload job")
	}

	<-ctx.Done()
	c.ctab.Shutdown()
	return nil
}

func (c *Crontab) sweepVerificationCodes(ctx context.Context, verifiedMaxAge time.Duration) {
	log := logger.GetLogger()

	removed, err := c.verificationService.SweepStale(ctx, verifiedMaxAge)
	if err != nil {
		log.Error().Err(err).Msg("Failed to sweep stale verification codes")
		return
	}
	if removed > 0 {
		metrics.OTPSweptTotal.Add(float64(removed))
		log.Info().Int64("removed", removed).Msg("Swept stale verification codes")
	}
}
