package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sharansub/screensaway/internal/config"
	"github.com/sharansub/screensaway/internal/db"
	"github.com/sharansub/screensaway/internal/handler"
	"github.com/sharansub/screensaway/internal/handler/server"
	"github.com/sharansub/screensaway/internal/repository/postgres"
	"github.com/sharansub/screensaway/internal/service"
	"github.com/sharansub/screensaway/internal/session"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	database := db.MustLoad(cfg)
	logger.Info("connected to database")
	defer database.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()

	accountRepo := postgres.NewAccountRepository(database)
	groupRepo := postgres.NewGroupRepository(database)
	inviteRepo := postgres.NewInviteRepository(database)
	screenTimeRepo := postgres.NewScreenTimeRepository(database)

	sessions := session.NewRedisStore(redisClient, cfg.SessionTTL)

	authService := service.NewAuthService(accountRepo, sessions)
	groupService := service.NewGroupService(groupRepo, accountRepo, screenTimeRepo)
	inviteService := service.NewInviteService(inviteRepo, groupRepo, accountRepo)
	screenTimeService := service.NewScreenTimeService(screenTimeRepo)

	h := handler.NewHandler(authService, groupService, inviteService, screenTimeService)
	srv := server.NewServer(h, sessions, logger, cfg.HTTPAddr)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
}
