package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"mdc-dispatch/internal/http/api"
	"mdc-dispatch/internal/http/handlers"
	onlineh "mdc-dispatch/internal/http/handlers/online"
	storageh "mdc-dispatch/internal/http/handlers/storage"
	unith "mdc-dispatch/internal/http/handlers/unit"
	mw "mdc-dispatch/internal/http/middleware"
	"mdc-dispatch/internal/lib/config"
	"mdc-dispatch/internal/lib/sl"
	repo "mdc-dispatch/internal/repository"
	"mdc-dispatch/internal/service/presence"
	"mdc-dispatch/internal/service/shift"
	"mdc-dispatch/internal/service/storage"
	"mdc-dispatch/internal/service/unit"
	"mdc-dispatch/migrations"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const (
	envLocal = "local"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	log.Info("Starting MDC Dispatch Backend", slog.String("env", cfg.Env))

	dsn := os.Getenv("DATABASE_URL")
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Error("failed to establish connection with database", sl.Err(err))
		os.Exit(1)
	}

	if err := runMigrations(db); err != nil {
		log.Error("failed to apply migrations", sl.Err(err))
		os.Exit(1)
	}

	// initialization of go-transaction-manager
	trManager := manager.Must(trmsqlx.NewDefaultFactory(db))

	presenceRepo := repo.NewPresenceRepo(db, trmsqlx.DefaultCtxGetter)
	shiftRepo := repo.NewShiftRepo(db, trmsqlx.DefaultCtxGetter)
	unitRepo := repo.NewUnitRepo(db, trmsqlx.DefaultCtxGetter)
	storageRepo := repo.NewStorageRepo(db, trmsqlx.DefaultCtxGetter)

	presenceService := presence.NewPresenceService(trManager, presenceRepo, cfg.Presence.TTL)
	shiftService := shift.NewShiftService(trManager, shiftRepo)
	unitService := unit.NewUnitService(trManager, unitRepo)
	storageService := storage.NewStorageService(storageRepo)

	onlineHandler := onlineh.NewOnlineHandler(log, presenceService, shiftService)
	unitHandler := unith.NewUnitHandler(log, unitService)
	storageHandler := storageh.NewStorageHandler(log, storageService)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mw.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(mw.CORS)

	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		render.Status(r, http.StatusMethodNotAllowed)
		render.JSON(w, r, api.Error(api.ErrCodeNotAllowed, "method not allowed"))
	})

	log.Info("starting http server", slog.String("address", cfg.HTTPServer.Address))

	router.Get("/health", handlers.Healthcheck())

	router.Route("/api", func(r chi.Router) {
		// Online users and dispatcher shifts share one endpoint,
		// selected by ?resource=users|shifts.
		r.Get("/online", onlineHandler.Get)
		r.Post("/online", onlineHandler.Post)
		r.Delete("/online", onlineHandler.Delete)

		// /crews is an alias kept for older UI builds.
		for _, path := range []string{"/units", "/crews"} {
			r.Get(path, unitHandler.List)
			r.Post(path, unitHandler.Create)
			r.Put(path, unitHandler.Update)
			r.Delete(path, unitHandler.Delete)
		}

		r.Get("/storage", storageHandler.Get)
		r.Post("/storage", storageHandler.Put)
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	if err := srv.ListenAndServe(); err != nil {
		log.Error("failed to start http server", sl.Err(err))
		os.Exit(1)
	}

	log.Error("http server stopped")
}

func runMigrations(db *sqlx.DB) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}

	driver, err := migratepg.WithInstance(db.DB, &migratepg.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}
	return log
}
