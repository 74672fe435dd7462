package bootstrap

import (
	"nupo-consult/internal/shared/config"

	"go.uber.org/zap"
)

// NewLogger builds the process logger and installs it as zap's global.
func NewLogger(cfg config.AppConfig) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	logger = logger.With(zap.String("app", cfg.Name))
	zap.ReplaceGlobals(logger)
	return logger, nil
}
