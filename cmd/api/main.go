package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/straye-as/pipeline-api/docs"
	"github.com/straye-as/pipeline-api/internal/auth"
	"github.com/straye-as/pipeline-api/internal/config"
	"github.com/straye-as/pipeline-api/internal/database"
	"github.com/straye-as/pipeline-api/internal/events"
	"github.com/straye-as/pipeline-api/internal/http/handler"
	"github.com/straye-as/pipeline-api/internal/http/middleware"
	"github.com/straye-as/pipeline-api/internal/http/router"
	"github.com/straye-as/pipeline-api/internal/jobs"
	"github.com/straye-as/pipeline-api/internal/logger"
	"github.com/straye-as/pipeline-api/internal/notify"
	"github.com/straye-as/pipeline-api/internal/pipeline"
	"github.com/straye-as/pipeline-api/internal/repository"
	"github.com/straye-as/pipeline-api/internal/service"
	"github.com/straye-as/pipeline-api/internal/storage"
	"go.uber.org/zap"
)

// @title Straye Pipeline API
// @version 1.0
// @description Lead pipeline API: lead statuses, kanban board, company grouping and follow-ups
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@straye.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key
// @description API Key for system operations
// @Security BearerAuth
// @Security ApiKeyAuth

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load basic configuration first (for logging setup)
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	switch basicCfg.App.Environment {
	case "staging", "production":
		if host := os.Getenv("PUBLIC_HOST"); host != "" {
			docs.SwaggerInfo.Host = host
		}
	default:
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)
	}

	// In development secrets come from environment variables,
	// in staging/production from Azure Key Vault
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	db, err := database.NewDatabase(&cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	snapshotStorage, err := storage.NewStorage(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))

	// Lead events are optional; the API keeps working without a broker
	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.Events.Enabled {
		rabbit, err := events.NewRabbitMQPublisher(&cfg.Events, log)
		if err != nil {
			log.Warn("RabbitMQ connection failed, continuing without lead events", zap.Error(err))
		} else {
			publisher = rabbit
			log.Info("RabbitMQ connected", zap.String("exchange", cfg.Events.Exchange))
		}
	}

	var mailer notify.Mailer
	if cfg.Mail.Enabled {
		mailer = notify.NewSMTPMailer(&cfg.Mail, log)
	} else {
		mailer = notify.NewLogMailer(log)
	}

	// Repositories
	leadRepo := repository.NewLeadRepository(db)
	activityRepo := repository.NewLeadActivityRepository(db)

	// Pipeline engine
	board := pipeline.NewBoard(nil)
	coordinator := pipeline.NewCoordinator(board, leadRepo, activityRepo, pipeline.NewLogAuditSink(log))

	// Services
	leadService := service.NewLeadService(leadRepo, activityRepo, coordinator, publisher, service.LeadServiceConfig{
		PersistTimeout:  cfg.Pipeline.PersistTimeoutDuration(),
		DefaultCurrency: cfg.Pipeline.DefaultCurrency,
	}, log)
	pipelineService := service.NewPipelineService(board, leadRepo, log)

	loadCtx, cancel := context.WithTimeout(ctx, cfg.Pipeline.JobTimeoutDuration())
	n, err := pipelineService.RefreshBoard(loadCtx)
	cancel()
	if err != nil {
		return fmt.Errorf("failed to load pipeline board: %w", err)
	}
	log.Info("Pipeline board loaded", zap.Int("leads", n))

	// Middleware
	authMiddleware := auth.NewMiddleware(&cfg.Auth, log)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Handlers
	leadHandler := handler.NewLeadHandler(leadService, log)
	pipelineHandler := handler.NewPipelineHandler(pipelineService, log)
	companyHandler := handler.NewCompanyHandler(pipelineService, log)

	rt := router.NewRouter(
		cfg,
		log,
		db,
		board,
		authMiddleware,
		rateLimiter,
		leadHandler,
		pipelineHandler,
		companyHandler,
	)

	scheduler := jobs.NewScheduler(log)
	if err := jobs.RegisterPipelineJobs(scheduler, jobs.PipelineJobs{
		Refresher:  pipelineService,
		Followups:  leadRepo,
		Mailer:     mailer,
		Recipients: cfg.Mail.Recipients,
		Snapshots:  pipelineService,
		Storage:    snapshotStorage,
	}, jobs.Schedules{
		BoardRefresh: cfg.Pipeline.BoardRefreshCron,
		Followup:     cfg.Pipeline.FollowupCron,
		Snapshot:     cfg.Pipeline.SnapshotCron,
		Timeout:      cfg.Pipeline.JobTimeoutDuration(),
	}, log); err != nil {
		return fmt.Errorf("failed to register jobs: %w", err)
	}
	scheduler.Start()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		stopped := scheduler.Stop()
		<-stopped.Done()
		log.Info("Scheduler stopped")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		if err := publisher.Close(); err != nil {
			log.Warn("Error closing event publisher", zap.Error(err))
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
