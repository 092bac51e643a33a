package config

import (
	"log"
	"os"

	"go.uber.org/zap"
)

// NewLogger builds the process logger. APP_ENV=development switches to the
// human-readable console encoder.
func NewLogger() *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if os.Getenv("APP_ENV") == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	return logger
}
