package config

import (
	"log"
	"os"

	"go.uber.org/zap"
)

var Logger *zap.Logger

// InitLogger builds the global zap logger. APP_ENV=production switches to the
// JSON production encoder, anything else keeps the development console one.
func InitLogger() {
	var err error
	if isProduction() {
		Logger, err = zap.NewProduction()
	} else {
		Logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}

	Logger.Info("✅ Zap logger initialized")
}

func isProduction() bool {
	return os.Getenv("APP_ENV") == "production"
}
