package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"river-watch/internal/auth"
	"river-watch/internal/config"
	"river-watch/internal/data"
	"river-watch/internal/jobs"
	"river-watch/internal/metrics"
	"river-watch/internal/middlewares"
	"river-watch/internal/storage"
	"river-watch/internal/version"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/extra/redisprometheus/v9"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	cfg         *config.Config
	logger      *slog.Logger
	appCtx      *middlewares.AppContext
	httpServer  *http.Server
	debugServer *http.Server
	dataService *data.Service
	database    *storage.DatabaseProvider
	jobManager  *jobs.JobManager
	instanceID  string
	cancel      context.CancelFunc
}

func New(cfg *config.Config) (*Server, error) {
	logger := setupLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())

	sessionManager, err := auth.NewSessionManager(logger, cfg)
	if err != nil {
		cancel()
		return nil, err
	}

	oidcProvider, err := auth.NewKeycloakProvider(ctx, cfg.OIDC)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to initialize OIDC provider: %w", err)
	}

	database, err := storage.NewDatabaseProvider(ctx, cfg)
	if err != nil {
		logger.Error("failed to initialize database provider", "error", err)
		cancel()
		return nil, err
	}

	cache, err := data.NewCacheProvider(cfg, logger)
	if err != nil {
		database.Close()
		cancel()
		return nil, fmt.Errorf("failed to set up cache provider: %w", err)
	}

	if cfg.Cache.Type == "redis" && cfg.Server.Debug != nil && cfg.Server.Debug.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.CacheIndex,
		})
		collector := redisprometheus.NewCollector(metrics.Namespace, "cache", client)
		if err := prometheus.Register(collector); err != nil {
			logger.Debug("failed to register redis cache collector: already registered", "error", err)
		}
	}

	dataService := data.NewService(database, cache, logger, cfg.Stations, cfg.Data.SummaryTTL)

	appCtx := middlewares.NewAppContext(ctx, cfg, logger, cache, dataService, sessionManager, oidcProvider, database)

	jobManager := jobs.NewJobManager(logger)
	jobManager.Register(jobs.NewTelemetryRefreshJob(dataService, cfg.Data.RefreshInterval, logger))

	router := setupRouter(appCtx)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	var debugServer *http.Server
	if cfg.Server.Debug != nil && cfg.Server.Debug.Enabled {
		debugServer = &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Server.Debug.Host, cfg.Server.Debug.Port),
			Handler: setupDebugRouter(),
		}
	}

	instanceID := os.Getenv("HOSTNAME")
	if instanceID == "" {
		instanceID = uuid.New().String()
	}

	return &Server{
		cfg:         cfg,
		logger:      logger,
		appCtx:      appCtx,
		httpServer:  httpServer,
		debugServer: debugServer,
		dataService: dataService,
		database:    database,
		jobManager:  jobManager,
		instanceID:  instanceID,
		cancel:      cancel,
	}, nil
}

func (s *Server) Start() error {
	s.jobManager.Start(s.appCtx)

	go func() {
		s.logger.Info("Server Started", "port", s.cfg.Server.Port, "instance", s.instanceID, "version", version.GetFullVersion())
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server failed to start", "error", err)
			s.cancel()
		}
	}()

	if s.debugServer != nil {
		go func() {
			s.logger.Info("Metrics server starting", "address", s.debugServer.Addr)
			if err := s.debugServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("Metrics server failed to start", "error", err)
				s.cancel()
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		s.logger.Info("Shutdown signal received")
	case <-s.appCtx.Done():
		s.logger.Info("Context canceled")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	s.logger.Info("Shutting Down Server")

	s.jobManager.Shutdown(shutdownCtx)

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
		return err
	}

	if s.debugServer != nil {
		if err := s.debugServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Debug server forced to shutdown", "error", err)
		}
	}

	s.database.Close()

	s.logger.Info("Server Exited")
	return nil
}
