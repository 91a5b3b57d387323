// Package logger builds the process-wide zap logger.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger tuned to the current environment: human-readable
// colored output for dev/qa, JSON to stdout otherwise.
func New() (*zap.Logger, error) {
	env := os.Getenv("APP_ENV")
	var config zap.Config

	if env == "dev" || env == "qa" {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
		config.OutputPaths = []string{"stdout"}
		config.ErrorOutputPaths = []string{"stderr"}
	}
	return config.Build()
}
