package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agentsync/server/internal/config"
	"agentsync/server/internal/utils/apperrors"
)

func TestSetupAppliesConfig(t *testing.T) {
	cfg := &config.Config{
		ServiceName: "agentsync-server",
		LogLevel:    "debug",
		LogFormat:   "json",
	}

	log, err := Setup(cfg)
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())

	var buf bytes.Buffer
	bufLog := log.Output(&buf)
	bufLog.Info().Msg("ready")
	assert.Contains(t, buf.String(), `"service":"agentsync-server"`)
	assert.Contains(t, buf.String(), "ready")

	assert.Equal(t, zerolog.DebugLevel, GetLogger().GetLevel())
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	cfg := &config.Config{
		ServiceName: "agentsync-server",
		LogLevel:    "chatty",
		LogFormat:   "json",
	}

	_, err := Setup(cfg)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
}

func TestSetupRejectsUnknownFormat(t *testing.T) {
	cfg := &config.Config{
		ServiceName: "agentsync-server",
		LogLevel:    "info",
		LogFormat:   "xml",
	}

	_, err := Setup(cfg)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
}
