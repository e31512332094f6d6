package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "restoralia/internal/app"
	"restoralia/internal/feed"
	"restoralia/internal/handlers/rest/board_drag_post"
	"restoralia/internal/handlers/rest/board_get"
	"restoralia/internal/handlers/rest/healthcheck_head"
	"restoralia/internal/handlers/rest/ping_get"
	"restoralia/internal/pkg/config"
	"restoralia/internal/pkg/dotenv"
	"restoralia/internal/pkg/redisx"
	"restoralia/pkg/logger"
	"restoralia/pkg/logger/zap_adapter"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting kanban board daemon")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), appLogger, cfg)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

func run(ctx context.Context, log logger.Logger, cfg *config.Config) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	redisClient, err := redisx.NewClient(ctx, log, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer func() {
		err := redisClient.Close()
		if err != nil {
			runLog.Error("failed to close redis connection",
				logger.NewField("error", err),
			)
		}
	}()

	httpClient := &http.Client{Timeout: cfg.Board.RequestTimeout}

	businessApp, err := application.InitializeBoardApp(ctx, log, httpClient, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	// Seed the board before going live so drags never race an empty state.
	orders, err := businessApp.Gateway.ActiveOrders(ctx, cfg.Board.WorkspaceID)
	if err != nil {
		return fmt.Errorf("initial board fetch: %w", err)
	}
	businessApp.Board.SetOrders(orders)
	runLog.With(
		logger.NewField("workspace", cfg.Board.WorkspaceID),
		logger.NewField("orders", len(orders)),
	).Info("board seeded")

	subscription, err := feed.Subscribe(ctx, log, redisClient, cfg.Board.WorkspaceID, feed.Handlers{
		OnInsert: businessApp.Board.OnNewOrder,
		OnUpdate: businessApp.Board.OnUpdateOrder,
		OnStatus: func(status feed.Status, err error) {
			statusLog := runLog.With(
				logger.NewField("status", string(status)),
			)
			if err != nil {
				statusLog.With(
					logger.NewField("error", err),
				).Warn("feed status change")
				return
			}
			statusLog.Info("feed status change")
		},
	})
	if err != nil {
		return fmt.Errorf("feed subscription: %w", err)
	}
	defer func() {
		if err := subscription.Close(); err != nil {
			runLog.Error("failed to close feed subscription",
				logger.NewField("error", err),
			)
		}
	}()

	// ongoingCtx feeds BaseContext and must survive SIGTERM. It is cancelled
	// only after server.Shutdown() so in-flight requests can finish.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(log, &isShuttingDown, businessApp),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx must be independent of ctx, which is already cancelled here.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	stopOngoingGracefully()
	if err != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Board stopped")
	return nil
}

func initRouter(log logger.Logger, isShuttingDown *atomic.Bool, app *application.BoardApp) http.Handler {
	router := mux.NewRouter()

	router.Handle("/metrics", promhttp.Handler())
	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/board", board_get.New(log, app.Board)).Methods("GET")
	router.Handle("/board/orders/{order_id}/drag", board_drag_post.New(log, app.Board)).Methods("POST")

	return router
}
