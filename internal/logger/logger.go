// Package logger builds the service's zap logger and the field sets shared by
// request, transition and job logs.
package logger

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/straye-as/pipeline-api/internal/config"
	"github.com/straye-as/pipeline-api/internal/domain"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a new structured logger
func NewLogger(cfg *config.LoggingConfig, appCfg *config.AppConfig) (*zap.Logger, error) {
	logger, err := buildConfig(cfg, appCfg).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}

// buildConfig picks JSON output in production or when asked for, and a
// colored console otherwise. An unknown level falls back to info.
func buildConfig(cfg *config.LoggingConfig, appCfg *config.AppConfig) zap.Config {
	var zapCfg zap.Config
	if cfg.Format == "json" || appCfg.Environment == "production" {
		zapCfg = zap.NewProductionConfig()
		zapCfg.EncoderConfig.TimeKey = "timestamp"
		zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	zapCfg.InitialFields = map[string]interface{}{
		"app":         appCfg.Name,
		"environment": appCfg.Environment,
	}
	return zapCfg
}

// WithRequest adds request context to logger
func WithRequest(logger *zap.Logger, method, path, requestID string) *zap.Logger {
	return logger.With(
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
	)
}

// WithUser adds user context to logger
func WithUser(logger *zap.Logger, userID, displayName string) *zap.Logger {
	return logger.With(
		zap.String("user_id", userID),
		zap.String("user_name", displayName),
	)
}

// WithLead adds the lead being worked on to logger
func WithLead(logger *zap.Logger, leadID uuid.UUID) *zap.Logger {
	return logger.With(zap.String("lead_id", leadID.String()))
}

// WithTransition adds a lead status change to logger
func WithTransition(logger *zap.Logger, leadID uuid.UUID, from, to domain.LeadStatus) *zap.Logger {
	return WithLead(logger, leadID).With(
		zap.String("from_status", string(from)),
		zap.String("to_status", string(to)),
	)
}

// WithJob names the scheduled job a log line belongs to
func WithJob(logger *zap.Logger, name string) *zap.Logger {
	return logger.With(zap.String("job_name", name))
}
