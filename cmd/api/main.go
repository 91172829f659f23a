package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"runbot/internal/config"
	"runbot/internal/database"
	"runbot/internal/database/migration"
	handlers "runbot/internal/http/handler"
	"runbot/internal/http/middleware"
	"runbot/internal/otel"
	"runbot/internal/repository/postgres"
	"runbot/internal/service"
	"runbot/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Printf("tracing shutdown: %v", err)
		}
	}()

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// The backend is chosen once at startup; a misconfigured backend is fatal.
	backend, err := storage.New(cfg.Storage)
	if err != nil {
		log.Fatalf("failed to initialize storage backend: %v", err)
	}
	store := storage.NewManager(backend, storage.NewQuotaPolicy(cfg.Quota))

	// Repositories and services
	adminRepo := postgres.NewAdminPostgres(db)
	authSvc, err := service.NewAuthService(cfg.Auth, adminRepo)
	if err != nil {
		log.Fatalf("failed to initialize auth: %v", err)
	}
	if err := authSvc.EnsureBootstrapAdmin(ctx); err != nil {
		log.Fatalf("failed to bootstrap admin account: %v", err)
	}

	svcs := handlers.Services{
		Auth:        authSvc,
		Participant: service.NewParticipantService(postgres.NewParticipantPostgres(db)),
		Challenge:   service.NewChallengeService(postgres.NewChallengePostgres(db)),
		Event:       service.NewEventService(postgres.NewEventPostgres(db)),
		Submission:  service.NewSubmissionService(store, postgres.NewSubmissionPostgres(db)),
		StorageOps:  service.NewStorageOpsService(store, cfg.AutoCleanupDays),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		// Fiber's default 4 MiB body limit would reject uploads the quota
		// policy allows; leave headroom above the largest category ceiling.
		BodyLimit: int(maxQuotaMB(cfg.Quota)+1) << 20,
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	promMW, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, cfg.Auth.JWTSecret, svcs)

	// The local backend serves media straight from disk; R2 media is reached
	// through presigned URLs instead.
	if cfg.Storage.Type == config.StorageLocal {
		app.Static("/media", cfg.Storage.MediaPath)
	}

	if cfg.AutoCleanupDays > 0 {
		go runCleanupLoop(ctx, svcs.StorageOps, cfg.AutoCleanupDays)
	}

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// runCleanupLoop sweeps expired media once a day.
func runCleanupLoop(ctx context.Context, ops service.StorageOpsService, maxAgeDays int) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			report, err := ops.Cleanup(ctx, maxAgeDays)
			if err != nil {
				log.Printf("scheduled cleanup: %v", err)
				continue
			}
			log.Printf("scheduled cleanup: deleted %d objects (%d bytes), %d failures",
				report.DeletedCount, report.DeletedBytes, len(report.Failures))
		}
	}
}

func maxQuotaMB(q config.QuotaConfig) int64 {
	max := q.MaxUploadSizeMB
	for _, v := range []int64{q.MaxImageSizeMB, q.MaxVideoSizeMB, q.MaxDocumentSizeMB} {
		if v > max {
			max = v
		}
	}
	return max
}
