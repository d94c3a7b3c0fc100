package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/jvdt-hub/backend/internal/assessments"
	"github.com/jvdt-hub/backend/internal/auth"
	"github.com/jvdt-hub/backend/internal/config"
	"github.com/jvdt-hub/backend/internal/database"
	"github.com/jvdt-hub/backend/internal/definitions"
	"github.com/jvdt-hub/backend/internal/journal"
	"github.com/jvdt-hub/backend/internal/kvstore"
	"github.com/jvdt-hub/backend/internal/logging"
	"github.com/jvdt-hub/backend/internal/metrics"
	"github.com/jvdt-hub/backend/internal/progress"
	"github.com/jvdt-hub/backend/internal/scoring"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "", "path to a config file (default ./jvdt.yaml if present)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logging.Init(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)
	log := logging.New("server")

	if cfg.JWTSecret == config.DefaultJWTSecret {
		log.Warn("using the development JWT secret; set JWT_SECRET in production")
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	log.Info("database ready", "driver", db.Driver)

	m, err := metrics.New(prometheus.DefaultRegisterer)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	kv, err := kvstore.NewCached(kvstore.NewSQL(db), cfg.CacheSize, m)
	if err != nil {
		return fmt.Errorf("build cache: %w", err)
	}

	registry, err := definitions.NewRegistry()
	if err != nil {
		return fmt.Errorf("load definitions: %w", err)
	}
	for id, warnings := range registry.Warnings() {
		for _, w := range warnings {
			log.Warn("definition warning", "test", id, "warning", w)
		}
	}

	tokens := auth.NewTokens(cfg.JWTSecret)
	deps := routes{
		tokens:      tokens,
		auth:        auth.NewHandler(auth.NewStore(db), tokens),
		assessments: assessments.NewHandler(assessments.NewService(registry, scoring.NewEngine(), progress.NewStore(kv), m)),
		journal:     journal.NewHandler(journal.New(kv)),
		metrics:     metrics.Handler(prometheus.DefaultGatherer),
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newRouter(deps, cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
