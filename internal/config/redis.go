package config

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisClient holds the session store connection.
var RedisClient *redis.Client

// InitRedis connects to Redis and fails fast when it is unreachable.
func InitRedis() {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     App.RedisAddr,
		Password: App.RedisPassword,
		DB:       App.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		Logger.Fatal("Error connecting to Redis", zap.Error(err))
	}
	Logger.Info("Connected to Redis", zap.String("addr", App.RedisAddr), zap.String("ping", s))
}
