package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/lodgeworks/gatehouse/internal/intake/http"
	"github.com/lodgeworks/gatehouse/internal/intake/mail"
	"github.com/lodgeworks/gatehouse/internal/intake/service"
	"github.com/lodgeworks/gatehouse/internal/intake/store"
	"github.com/lodgeworks/gatehouse/internal/intake/store/drivers/memory"
	"github.com/lodgeworks/gatehouse/internal/intake/store/drivers/sqlite"
	"github.com/lodgeworks/gatehouse/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the intake service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     store.Store
	mailer service.Mailer

	challengeService    *service.MathChallengeService
	handshakeService    *service.HandshakeService
	sessionService      *service.SessionService
	formService         *service.FormService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "gatehouse",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initStore(); err != nil {
		return nil, err
	}

	app.initMailer()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("intake service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"store_driver", app.cfg.StoreDriver,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down intake service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing store", "error", err)
		return err
	}

	app.logger.Info("intake service stopped")
	return nil
}

// initStore selects the store driver. The sqlite driver also applies
// migrations; the memory driver has no persistence at all and is the
// default for the single-process deployment this service targets.
func (app *Application) initStore() error {
	switch app.cfg.StoreDriver {
	case "memory", "":
		app.db = memory.NewStore()
		return nil

	case "sqlite":
		dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
		db, err := sqlite.NewStore(dsn)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := db.ApplyMigrations(); err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to apply database migrations: %w", err)
		}
		app.db = db
		app.logger.Info("database migrations applied successfully")
		return nil

	default:
		return fmt.Errorf("unknown store driver %q", app.cfg.StoreDriver)
	}
}

// initMailer wires SMTP delivery when a relay is configured, a logging
// discard sender otherwise.
func (app *Application) initMailer() {
	if app.cfg.SMTPHost == "" {
		app.logger.Warn("SMTP_HOST not set, verification codes will only be logged")
		app.mailer = &mail.DiscardSender{Logger: app.logger}
		return
	}

	app.mailer = mail.NewSMTPSender(mail.Config{
		Host:     app.cfg.SMTPHost,
		Port:     app.cfg.SMTPPort,
		Username: app.cfg.SMTPUsername,
		Password: app.cfg.SMTPPassword,
		From:     app.cfg.SMTPFrom,
		FromName: app.cfg.SMTPFromName,
	})
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.challengeService = service.NewMathChallengeService(app.cfg.ChallengeMin, app.cfg.ChallengeMax)

	app.sessionService = &service.SessionService{
		Store: app.db,
		TTL:   app.cfg.SessionTTL,
	}

	app.handshakeService = &service.HandshakeService{
		Store:           app.db,
		Challenge:       app.challengeService,
		Mailer:          app.mailer,
		Sessions:        app.sessionService,
		CodeLength:      app.cfg.CodeLength,
		VerificationTTL: app.cfg.VerificationTTL,
		MaxAttempts:     app.cfg.MaxAttempts,
	}

	app.formService = &service.FormService{
		Store:    app.db,
		Sessions: app.sessionService,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)

	router.ChallengeService = app.challengeService
	router.HandshakeService = app.handshakeService
	router.SessionService = app.sessionService
	router.FormService = app.formService
	router.RequireClientCert = app.cfg.RequireClientCert
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
