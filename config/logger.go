package config

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the production JSON logger, at debug level when verbose.
func NewLogger(service string, verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.With(zap.String("service", service)), nil
}

func MustLogger(cfg *Config) *zap.Logger {
	logger, err := NewLogger(cfg.Service, cfg.Verbose)
	if err != nil {
		panic(err)
	}
	return logger
}
