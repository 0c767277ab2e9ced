// @title        Velookara Civic Portal API
// @version      1.0
// @description  Velookara 公民服務入口的後端 API 文件：問題回報、公告與活動報名
// @host         localhost:5000
// @BasePath     /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/vishnupriya759285/velookara/docs" // 引入 swag 產出的 docs
	"github.com/vishnupriya759285/velookara/internal/cache"
	"github.com/vishnupriya759285/velookara/internal/config"
	"github.com/vishnupriya759285/velookara/internal/database"
	"github.com/vishnupriya759285/velookara/internal/handler"
	"github.com/vishnupriya759285/velookara/internal/logger"
	"github.com/vishnupriya759285/velookara/internal/metrics"
	"github.com/vishnupriya759285/velookara/internal/middleware"
	"github.com/vishnupriya759285/velookara/internal/notify"
	"github.com/vishnupriya759285/velookara/internal/queue"
	"github.com/vishnupriya759285/velookara/internal/router"
	"github.com/vishnupriya759285/velookara/internal/worker"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const shutdownTimeout = 10 * time.Second

var (
	loadConfig      = config.Load
	newLogger       = logger.NewDefault
	runMigrationsFn = database.RunMigrations
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	newWorkerPool   = worker.NewPool
	connectQueue    = func(url, name string) (queue.Publisher, error) { return queue.Connect(url, name) }
	notifyContext   = signal.NotifyContext
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	shutdownServer  = func(ctx context.Context, e *echo.Echo) error { return e.Shutdown(ctx) }
	exitFunc        = os.Exit
)

// rateLimitSkipper 只對 /api 底下的路由限流，健康檢查除外
func rateLimitSkipper(c echo.Context) bool {
	path := c.Request().URL.Path
	return !strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/api/health")
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}

	log := newLogger(cfg.App.LogLevel, cfg.App.IsProduction())
	slog.SetDefault(log)

	if err := runMigrationsFn(cfg.Database.URL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	db, err := newPgxPool(context.Background(), cfg.Database.URL, database.PoolOptions{
		MaxConns:       int32(cfg.Database.MaxConns),
		MinConns:       int32(cfg.Database.MinConns),
		IdleTimeout:    cfg.Database.IdleTimeout,
		ConnectTimeout: cfg.Database.ConnectTimeout,
	})
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer rdb.Close()

	var publisher queue.Publisher = queue.Nop{}
	if cfg.AMQP.URL != "" {
		publisher, err = connectQueue(cfg.AMQP.URL, cfg.AMQP.Queue)
		if err != nil {
			return fmt.Errorf("RabbitMQ 連線失敗: %w", err)
		}
	}
	defer publisher.Close()

	// 先停 worker 讓排隊中的通知送完，再關閉 publisher
	wp := newWorkerPool(cfg.Worker.Count, cfg.Worker.QueueSize, log)
	defer wp.Stop()

	var mailer notify.Mailer = notify.NopMailer{}
	if cfg.Email.Enabled() {
		mailer = notify.NewSMTPMailer(cfg.Email, log)
	} else {
		log.Info("SMTP not configured, notification emails disabled")
	}

	m := metrics.New()
	dispatcher := notify.NewDispatcher(wp, publisher, mailer, m, log)

	e := echo.New()
	e.HideBanner = true
	e.Debug = !cfg.App.IsProduction()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = handler.ErrorHandler()

	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(log))
	e.Use(m.Middleware())
	e.Use(echomw.Secure())
	corsCfg := echomw.DefaultCORSConfig
	if len(cfg.App.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.App.CORSOrigins
	}
	e.Use(echomw.CORSWithConfig(corsCfg))
	e.Use(echomw.BodyLimit("2M"))
	e.Use(middleware.RateLimit(rdb, middleware.RateLimitConfig{
		Max:     cfg.RateLimit.Max,
		Window:  cfg.RateLimit.Window,
		Skipper: rateLimitSkipper,
		Logger:  log,
	}))

	router.Setup(e, router.Deps{
		DB:       db,
		Cache:    rdb,
		Secret:   cfg.Auth.JWTSecret,
		TokenTTL: cfg.Auth.TokenTTL,
		Notifier: dispatcher,
		Stats:    &handler.StatsCache{Cache: rdb, TTL: cfg.App.StatsCacheTTL, Recorder: m},
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET(metrics.Path, m.Handler())

	ctx, stop := notifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", slog.String("addr", cfg.App.HTTPAddr), slog.String("env", cfg.App.Env))
		errCh <- startServer(e, cfg.App.HTTPAddr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("伺服器啟動失敗: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdownServer(shutdownCtx, e); err != nil {
		return fmt.Errorf("伺服器關閉失敗: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("伺服器啟動失敗: %w", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		slog.Error("service stopped", slog.Any("error", err))
		exitFunc(1)
	}
}
