package main

import (
	"context"
	"embed"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/peperuizdev/portfolio/internal/feat/auth"
	"github.com/peperuizdev/portfolio/internal/feat/contact"
	"github.com/peperuizdev/portfolio/internal/feat/portfolio"
	"github.com/peperuizdev/portfolio/internal/i18n"
	"github.com/peperuizdev/portfolio/internal/web"
	"github.com/peperuizdev/portfolio/pkg/pf/app"
	"github.com/peperuizdev/portfolio/pkg/pf/config"
	"github.com/peperuizdev/portfolio/pkg/pf/database"
	"github.com/peperuizdev/portfolio/pkg/pf/emailjs"
	"github.com/peperuizdev/portfolio/pkg/pf/logger"
	"github.com/peperuizdev/portfolio/pkg/pf/middleware"
)

//go:embed assets/migrations/sqlite/*.sql
var migrationsFS embed.FS

//go:embed assets/templates/*.html assets/seed/*.yaml
var templatesFS embed.FS

//go:embed assets/static
var staticFS embed.FS

func main() {
	ctx := context.Background()

	cfg := config.Load()
	log := logger.New(cfg.Log.Level)

	log.Infof("Starting portfolio [%s mode]", cfg.Env)
	log.Infof("Database: %s", cfg.Database.Path)
	log.Infof("Locales: %v (default %s)", i18n.Locales(), i18n.DefaultLocale)

	db := database.New(migrationsFS, cfg, log)
	db.SetMigrationPath("assets/migrations/sqlite")

	relayer := emailjs.NewClient(
		cfg.Email.Endpoint,
		cfg.Email.ServiceID,
		cfg.Email.TemplateID,
		cfg.Email.PublicKey,
	)

	authService := auth.NewService(db, cfg, log)
	portfolioService := portfolio.NewService(db, cfg, log)
	contactService := contact.NewService(db, relayer, cfg, log)

	verifier := auth.Verifier{Service: authService}

	authHandler := auth.NewHandler(authService, cfg, log)
	contactHandler := contact.NewHandler(contactService, verifier, cfg, log)
	pageHandler := portfolio.NewHandler(portfolioService, contactService, templatesFS, cfg, log)

	authSeeder := auth.NewSeeder(authService, log)
	if cfg.Credentials.Path != "" {
		authSeeder.SetCredentialsPath(cfg.Credentials.Path)
	}
	portfolioSeeder := portfolio.NewSeeder(portfolioService, templatesFS, log)

	router := chi.NewRouter()
	middleware.DefaultStack(router)
	router.Use(middleware.LocaleRedirect(i18n.Resolver{}))
	router.Use(middleware.AdminGate(verifier, i18n.Locales(), i18n.DefaultLocale, log))
	router.NotFound(pageHandler.HandleNotFound)

	fileServer := web.NewFileServer(staticFS, log)

	deps := []any{
		db,
		authService, portfolioService, contactService,
		authSeeder, portfolioSeeder,
		authHandler, contactHandler, pageHandler,
		fileServer,
	}

	starts, stops, registrars := app.Setup(ctx, router, deps...)
	if err := app.Start(ctx, log, starts, stops, registrars, router); err != nil {
		log.Errorf("Startup failed: %v", err)
		os.Exit(1)
	}

	go app.Serve(router, cfg.Server.Addr)
	log.Infof("Server listening on %s", cfg.Server.Addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Stop(ctx, log, stops)
	log.Info("Server stopped")
}
