package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-gin-event-room/config"
	"go-gin-event-room/internal/cache"
	"go-gin-event-room/internal/database"
	"go-gin-event-room/internal/handler"
	"go-gin-event-room/internal/queue"
	"go-gin-event-room/internal/repository"
	"go-gin-event-room/internal/service"
	"go-gin-event-room/internal/worker"
	"go-gin-event-room/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	defer logger.Sync()
	log := logger.WithComponent("main")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", zap.Error(err))
	}
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		log.Warn("Invalid log level, keeping default", zap.String("level", cfg.LogLevel), zap.Error(err))
	}
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.Migrate(ctx, &cfg.Database); err != nil {
		log.Fatal("Failed to migrate database", zap.Error(err))
	}

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatal("Failed to initialize redis", zap.Error(err))
	}
	defer rdb.Close()

	changeQueue, err := newChangeQueue(&cfg.Queue, rdb)
	if err != nil {
		log.Fatal("Failed to initialize change queue", zap.Error(err))
	}

	eventRepo := repository.NewEventRepository(pool)
	roomRepo := repository.NewRoomRepository(pool)
	eventRoomRepo := repository.NewEventRoomRepository(pool)
	auditRepo := repository.NewAuditRepository(pool)
	locker := cache.NewRedisKeyLocker(rdb, cfg.Lock.TTL)

	eventService := service.NewEventService(eventRepo)
	roomService := service.NewRoomService(roomRepo)
	eventRoomService := service.NewEventRoomService(pool, eventRepo, roomRepo, eventRoomRepo, auditRepo, locker, changeQueue)

	workerDone, err := worker.NewAuditWorker(auditRepo, changeQueue).Start(ctx)
	if err != nil {
		log.Fatal("Failed to start audit worker", zap.Error(err))
	}

	router := handler.NewRouter(&cfg.Server,
		handler.NewEventHandler(eventService),
		handler.NewRoomHandler(roomService),
		handler.NewEventRoomHandler(eventRoomService),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown failed", zap.Error(err))
	}

	select {
	case <-workerDone:
	case <-shutdownCtx.Done():
		log.Warn("Audit worker did not stop in time")
	}
}

func newChangeQueue(cfg *config.QueueConfig, rdb *redis.Client) (queue.ChangeQueue, error) {
	if cfg.Driver == "memory" {
		return queue.NewChangeQueue(cfg.BufferSize), nil
	}
	return queue.NewRedisStreamChangeQueue(rdb, cfg.ConsumerID, nil)
}
