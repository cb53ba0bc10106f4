package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Settings holds the values read from the environment at startup.
type Settings struct {
	Port           string
	DBDriver       string
	DBDSN          string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	JWTSecret      []byte
	SessionTTL     time.Duration
	MediaRoot      string
	MaxUploadBytes int64
	CookieSecure   bool
	Production     bool
}

var App Settings

// LoadEnv loads .env into the process environment. Variables that are already
// set win over the file.
func LoadEnv() error {
	return godotenv.Load()
}

// Init reads every setting and aborts when one of the required variables is
// unset. The server and the CLI tools need different subsets.
func Init(required ...string) {
	for _, key := range required {
		if os.Getenv(key) == "" {
			Logger.Fatal("Required environment variable is not set", zap.String("key", key))
		}
	}

	App = Settings{
		Port:           getEnv("APP_PORT", "8000"),
		DBDriver:       getEnv("DB_DRIVER", "mysql"),
		DBDSN:          os.Getenv("DB_DSN"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		JWTSecret:      []byte(os.Getenv("JWT_SECRET")),
		SessionTTL:     time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		MediaRoot:      getEnv("MEDIA_ROOT", "./media"),
		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_MB", 8)) << 20,
		CookieSecure:   getEnv("COOKIE_SECURE", "false") == "true",
		Production:     isProduction(),
	}

	Logger.Info("Configuration loaded",
		zap.String("port", App.Port),
		zap.String("dbDriver", App.DBDriver),
		zap.Duration("sessionTTL", App.SessionTTL),
		zap.String("mediaRoot", App.MediaRoot),
	)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		Logger.Warn("Invalid integer in environment, using default",
			zap.String("key", key), zap.String("value", raw), zap.Int("default", fallback))
		return fallback
	}
	return n
}
