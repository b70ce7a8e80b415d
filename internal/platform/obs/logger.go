package obs

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger builds a development logger for APP_ENV=development and a
// production (JSON) logger otherwise.
func NewLogger(appEnv, service string) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if appEnv == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("new logger: %w", err)
	}

	return logger.Named(service), nil
}
