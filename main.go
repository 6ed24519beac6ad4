package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/ironnest/ironnest-backend/config"
	"github.com/ironnest/ironnest-backend/db"
	"github.com/ironnest/ironnest-backend/handlers"
	"github.com/ironnest/ironnest-backend/internal/store"
	"github.com/ironnest/ironnest-backend/internal/store/jsonfile"
	"github.com/ironnest/ironnest-backend/internal/store/postgres"
	"github.com/ironnest/ironnest-backend/internal/transport"
	"github.com/ironnest/ironnest-backend/logger"
	"github.com/ironnest/ironnest-backend/router"
	"github.com/ironnest/ironnest-backend/services"
	"github.com/ironnest/ironnest-backend/types"
)

// @title           IronNest Installations API
// @version         1.0
// @description     Contact, booking and admin backend for the IronNest gym installation business.
// @BasePath        /api
func main() {
	_ = godotenv.Load()

	logger.InitLogger()
	log := logger.GetLogger()
	defer func() {
		_ = logger.Close()
	}()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Pick the local store backing: PostgreSQL when configured, the JSON
	// data file otherwise.
	var localStore store.Store
	if cfg.Database.Configured() {
		dbURL := cfg.Database.URL()
		if err := db.RunMigrations(dbURL); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}

		poolConfig, err := pgxpool.ParseConfig(dbURL)
		if err != nil {
			log.Fatalf("Failed to parse database config: %v", err)
		}
		poolConfig.MaxConns = int32(cfg.Database.MaxOpenConns)

		pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pool.Close()

		localStore = postgres.NewStore(pool)
		log.Infow("Using PostgreSQL store", "host", cfg.Database.Host, "database", cfg.Database.Name)
	} else {
		localStore = jsonfile.New(cfg.Transport.DataFile)
		log.Infow("Using JSON file store", "path", cfg.Transport.DataFile)
	}

	creds := types.Credentials{
		Username: cfg.Admin.Username,
		Password: cfg.Admin.Password,
	}
	local := transport.NewLocalTransport(localStore, creds)

	// Compose the record transport. Remote mode targets another deployment
	// of this API, with local fallback for reads.
	var recordTransport transport.RecordTransport
	switch {
	case cfg.Transport.Mode == config.TransportLocal:
		recordTransport = local
	case cfg.Transport.RemoteBaseURL != "":
		remote := transport.NewRemoteTransport(
			cfg.Transport.RemoteBaseURL,
			time.Duration(cfg.Transport.TimeoutSeconds)*time.Second,
		)
		recordTransport = transport.NewFallbackTransport(remote, local)
		log.Infow("Using remote transport with local fallback", "baseURL", cfg.Transport.RemoteBaseURL)
	default:
		recordTransport = local
	}

	emailService := services.NewEmailService(&cfg.Email)
	calendarService := services.NewCalendarService()

	deps := router.Dependencies{
		Config:         cfg,
		ContactHandler: handlers.NewContactHandler(recordTransport, emailService),
		BookingHandler: handlers.NewBookingHandler(recordTransport, emailService, calendarService),
		EmailHandler:   handlers.NewEmailHandler(emailService),
		AuthHandler:    handlers.NewAuthHandler(recordTransport),
		HealthHandler:  handlers.NewHealthHandler(cfg.Server.Version),
		Logger:         log,
	}
	r := router.SetupRouter(deps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutdown signal received")
	case err := <-errCh:
		log.Fatalf("Failed to start server: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("Server shutdown failed", "error", err)
	}
}
