package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/joho/godotenv"

	"construlog/internal/domain/employee"
	"construlog/internal/domain/payroll"
	"construlog/internal/domain/production"
	"construlog/internal/platform/config"
	"construlog/internal/platform/kv"
	employeeshandler "construlog/internal/transport/http/handlers/employees"
	payrollhandler "construlog/internal/transport/http/handlers/payroll"
	productionhandler "construlog/internal/transport/http/handlers/production"
	reportshandler "construlog/internal/transport/http/handlers/reports"
	"construlog/internal/transport/http/middleware"
)

type App struct {
	Config config.Config
	Store  *kv.Store
	Router http.Handler
}

// New opens the storage file and wires the full route tree.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store, err := kv.Open(ctx, cfg.StoragePath)
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg)
	return &App{
		Config: cfg,
		Store:  store,
		Router: newRouter(cfg, logger, store),
	}, nil
}

func (a *App) Close() error {
	return a.Store.Close()
}

func Run() {
	// best effort, the file is optional
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	app, err := New(context.Background(), cfg)
	if err != nil {
		logger.Error("startup failed", "err", err)
		os.Exit(1)
	}
	defer app.Close()

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      app.Router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	logger.Info("construlog server listening", "addr", cfg.Addr, "storage", cfg.StoragePath)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed", "err", err)
		os.Exit(1)
	}
}

func newLogger(cfg config.Config) *slog.Logger {
	if cfg.LogJSON {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
			slog.String("app", "construlog"),
			slog.String("env", cfg.Environment),
		)
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil)).With(
		slog.String("app", "construlog"),
		slog.String("env", cfg.Environment),
	)
}

func newRouter(cfg config.Config, logger *slog.Logger, store *kv.Store) *chi.Mux {
	employees := employee.NewStore(store)
	entries := production.NewStore(store)
	advances := payroll.NewStore(store)

	// one writer at a time: every mutation loads a whole collection, rewrites
	// it and saves it back
	var mu sync.Mutex

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))
	router.Use(middleware.RequestID)
	router.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level: slog.LevelInfo,
	}))
	router.Use(chimiddleware.CleanPath)
	router.Use(chimiddleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			http.Error(w, "storage not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		employeeshandler.NewHandler(employees, &mu).RegisterRoutes(r)
		productionhandler.NewHandler(entries, employees, &mu).RegisterRoutes(r)
		payrollhandler.NewHandler(employees, entries, advances, &mu).RegisterRoutes(r)
		reportshandler.NewHandler(entries, employees).RegisterRoutes(r)
	})

	return router
}
