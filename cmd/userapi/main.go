package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/dmitrymomot/userapi/api"
	"github.com/dmitrymomot/userapi/pkg/config"
	"github.com/dmitrymomot/userapi/pkg/httpserver"
	"github.com/dmitrymomot/userapi/pkg/logger"
	"github.com/dmitrymomot/userapi/pkg/mongo"
	"github.com/dmitrymomot/userapi/pkg/requestid"
)

const serviceName = "userapi"

func main() {
	if err := run(); err != nil {
		slog.Error("userapi failed", logger.Error(err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load[Config]()
	if err != nil {
		return err
	}
	if err := cfg.Log.Validate(); err != nil {
		return err
	}

	log := logger.New(
		logger.WithConfig(cfg.Log, serviceName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	if n, ok := cfg.workerThreads(); ok {
		runtime.GOMAXPROCS(n)
		log.Info("worker threads configured", slog.Int("gomaxprocs", n))
	} else if cfg.WorkerThreads != "" {
		log.Warn("ignoring invalid WORKER_THREADS", slog.String("value", cfg.WorkerThreads))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := mongo.NewWithDatabase(ctx, cfg.Mongo)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Client().Disconnect(ctx); err != nil {
			log.Error("failed to disconnect from mongodb", logger.Error(err))
			return
		}
		log.Info("mongodb disconnected")
	}()
	log.Info("connected to mongodb", slog.String("database", cfg.Mongo.Database))

	router := api.NewRouter(api.State{
		DB:           db,
		Logger:       log,
		StrictStatus: cfg.StrictStatus,
		ReadyTimeout: cfg.ReadyTimeout,
		TrustProxy:   cfg.TrustProxy,
	})

	srv := httpserver.NewFromConfig(cfg.Server,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(addr string, l *slog.Logger) {
			l.Info("userapi ready", slog.String("addr", addr), slog.Bool("strict_status", cfg.StrictStatus))
		}),
	)

	return srv.Run(ctx, router)
}
