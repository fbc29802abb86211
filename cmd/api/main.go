package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"

	"github.com/techdayconf/techday-backend/api/routes"
	"github.com/techdayconf/techday-backend/internal/config"
	"github.com/techdayconf/techday-backend/internal/directory"
	"github.com/techdayconf/techday-backend/internal/handlers"
	"github.com/techdayconf/techday-backend/internal/repositories"
	mongorepo "github.com/techdayconf/techday-backend/internal/repositories/mongodb"
	"github.com/techdayconf/techday-backend/internal/services"
	"github.com/techdayconf/techday-backend/internal/session"
	"github.com/techdayconf/techday-backend/pkg/botcheck"
	"github.com/techdayconf/techday-backend/pkg/mailer"
	"github.com/techdayconf/techday-backend/pkg/mongodb"
	"github.com/techdayconf/techday-backend/pkg/storage"
)

func main() {
	// .env is optional; real deployments configure through the environment
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Session.Secret == config.DefaultSessionSecret {
		slog.Warn("SESSION SECRET IS THE BUILT-IN DEFAULT; every session is forgeable. Set Session.Secret before deploying.")
	}

	// Connect to MongoDB
	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		slog.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			slog.Error("Error disconnecting from MongoDB", "error", err)
		}
	}()
	db := mongoClient.Database(cfg.MongoDB.Database)

	// Repositories
	var contentRepo repositories.ContentRepository = mongorepo.NewContentRepository(db)
	var registrationRepo repositories.RegistrationRepository = mongorepo.NewRegistrationRepository(db)
	var pitchRepo repositories.PitchRepository = mongorepo.NewPitchRepository(db)
	var newsletterRepo repositories.NewsletterRepository = mongorepo.NewNewsletterRepository(db)

	// Shared components
	dir := directory.New(cfg.Admin.Directory)
	codec := session.NewCodec(cfg.Session.Secret)
	mail := mailer.NewMailer(cfg)
	checker := botcheck.NewClient(cfg)

	var uploader storage.Uploader
	if s3, err := storage.NewS3Uploader(cfg); err != nil {
		slog.Warn("File storage unavailable, uploads disabled", "error", err)
	} else {
		uploader = s3
	}

	// Services
	authService := services.NewAuthService(dir)
	contentService := services.NewContentService(contentRepo)
	sponsorService := services.NewSponsorService(contentRepo)
	registrationService := services.NewRegistrationService(registrationRepo, mail, cfg.Event.TicketPrefix)
	pitchService := services.NewPitchService(pitchRepo)
	newsletterService := services.NewNewsletterService(newsletterRepo)

	// Handlers
	deps := routes.HandlerDependencies{
		AuthHandler:         handlers.NewAuthHandler(authService, codec, dir, cfg),
		ContentHandler:      handlers.NewContentHandler(contentService),
		SponsorHandler:      handlers.NewSponsorHandler(sponsorService),
		RegistrationHandler: handlers.NewRegistrationHandler(registrationService),
		PitchHandler:        handlers.NewPitchHandler(pitchService),
		NewsletterHandler:   handlers.NewNewsletterHandler(newsletterService),
		UploadHandler:       handlers.NewUploadHandler(uploader),
		DiagnosticsHandler:  handlers.NewDiagnosticsHandler(mongoClient, dir, cfg),
	}

	router := routes.SetupRouter(cfg, codec, dir, checker, deps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	slog.Info("Server starting", "port", cfg.Server.Port, "environment", cfg.Server.Environment)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("listen", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exiting")
}
