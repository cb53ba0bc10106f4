package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	dbadapter "socialfeed/internal/adapters/database"
	"socialfeed/internal/adapters/httpapi"
	redisadapter "socialfeed/internal/adapters/redis"
	"socialfeed/internal/adapters/storage"
	"socialfeed/internal/config"
	commentapp "socialfeed/internal/core/comment/service"
	postapp "socialfeed/internal/core/post/service"
	sessionapp "socialfeed/internal/core/session/service"
	userapp "socialfeed/internal/core/user/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	envErr := config.LoadEnv()
	config.InitLogger()
	defer config.Logger.Sync()
	if envErr != nil {
		config.Logger.Info("No .env file found, using system environment variables")
	}

	config.Init("DB_DSN", "REDIS_ADDR", "JWT_SECRET")
	if config.App.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	config.InitDB()
	if err := dbadapter.Migrate(config.DB); err != nil {
		config.Logger.Fatal("Error during migrations", zap.Error(err))
	}
	config.Logger.Info("✅ Database migrations completed")

	config.InitRedis()
	defer closeResources(config.Logger)

	photos, err := storage.NewPhotoStorageDisk(config.App.MediaRoot, config.App.MaxUploadBytes)
	if err != nil {
		config.Logger.Fatal("Error preparing media root", zap.Error(err))
	}

	userRepo := dbadapter.NewUserRepositoryDatabase(config.DB)
	postRepo := dbadapter.NewPostRepositoryDatabase(config.DB)
	commentRepo := dbadapter.NewCommentRepositoryDatabase(config.DB)
	sessionRepo := redisadapter.NewSessionRepositoryRedis(config.RedisClient)

	userSvc := userapp.NewUserService(userRepo, config.Logger)
	sessionSvc := sessionapp.NewSessionService(sessionRepo, config.App.JWTSecret, config.App.SessionTTL, config.Logger)
	postSvc := postapp.NewPostService(postRepo, config.Logger)
	commentSvc := commentapp.NewCommentService(commentRepo, config.Logger)

	r := httpapi.SetupRoutes(userSvc, sessionSvc, postSvc, commentSvc, photos, httpapi.Options{
		MediaRoot:      config.App.MediaRoot,
		MaxUploadBytes: config.App.MaxUploadBytes,
		CookieSecure:   config.App.CookieSecure,
		Logger:         config.Logger,
	})

	srv := &http.Server{
		Addr:         ":" + config.App.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		config.Logger.Info("App is running...", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	config.Logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		config.Logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}

// closeResources closes the Redis client and the database pool.
func closeResources(logger *zap.Logger) {
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection", zap.Error(err))
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection", zap.Error(err))
	}
}
