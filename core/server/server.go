package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-planner-api/core/cache"
	"go-planner-api/core/config"
	"go-planner-api/core/database"
	"go-planner-api/core/logger"
	"go-planner-api/core/queue"
	"go-planner-api/core/storage"
	"go-planner-api/modules/assignment"
	"go-planner-api/modules/auth"
	"go-planner-api/modules/calendar"
	"go-planner-api/modules/job"
	"go-planner-api/modules/notification"
	"go-planner-api/modules/task"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Run wires configuration, infrastructure and all modules, then serves until
// interrupted.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cfg.Log.Level, cfg.Log.Format)

	db, err := database.InitDB(database.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		return err
	}

	cacheClient, err := cache.InitCache(cache.CacheConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}

	var uploader storage.Uploader
	if cfg.AWS.S3Bucket != "" {
		uploader, err = storage.NewS3Uploader(cfg.AWS)
		if err != nil {
			logger.Warn("S3 uploader disabled", "error", err)
		}
	}

	q := queue.Init(cfg.Redis)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Module wiring
	auth.Init(e, db, cacheClient)
	calendar.Init(e, db, cacheClient)
	task.Init(e, db, cacheClient, uploader)
	assignment.Init(e, db, cacheClient)
	job.Init(e, db, cacheClient)

	mux := asynq.NewServeMux()
	notification.Init(e, db, cacheClient, mux)
	q.Start(mux)

	// Graceful shutdown
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Start:Error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	q.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
