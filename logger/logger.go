package logger

import (
	"github.com/tidepool-org/roster/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewProductionLogger(cfg *config.Config) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if cfg != nil && cfg.LogLevel != "" {
		parsed, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		level.SetLevel(parsed)
	}

	config := zap.NewProductionConfig()
	config.Level = level
	return config.Build()
}

func Suggar(logger *zap.Logger) *zap.SugaredLogger {
	return logger.Sugar()
}
