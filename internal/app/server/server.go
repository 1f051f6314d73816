package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"matchmind/internal/backend"
	"matchmind/internal/domain/analysis"
	"matchmind/internal/domain/auth"
	"matchmind/internal/domain/dashboard"
	"matchmind/internal/domain/evaluation"
	"matchmind/internal/domain/personnel"
	"matchmind/internal/domain/project"
	"matchmind/internal/domain/recommendation"
	"matchmind/internal/platform/config"
	"matchmind/internal/platform/metrics"
	"matchmind/internal/transport/http/api"
	analysishandler "matchmind/internal/transport/http/handlers/analysis"
	dashboardhandler "matchmind/internal/transport/http/handlers/dashboard"
	evaluationhandler "matchmind/internal/transport/http/handlers/evaluations"
	personnelhandler "matchmind/internal/transport/http/handlers/personnel"
	projecthandler "matchmind/internal/transport/http/handlers/projects"
	resumehandler "matchmind/internal/transport/http/handlers/resumes"
	"matchmind/internal/transport/http/middleware"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Config  config.Config
	Backend *backend.Client
	Metrics *metrics.Collector
	Router  http.Handler
	Log     *zap.Logger
}

// New wires the backend client, domain services and routes. It does not
// contact the backend.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	collector := metrics.New()
	client := backend.New(backend.Options{
		BaseURL: cfg.BackendBaseURL,
		APIKey:  cfg.BackendAPIKey,
		Timeout: cfg.BackendTimeout,
		Logger:  logger,
		Metrics: collector,
	})

	reporter, err := evaluation.NewReporter(cfg.ReportFont)
	if err != nil {
		return nil, err
	}

	var perms middleware.PermissionStore
	if cfg.JWTSecret != "" {
		perms = auth.RoleStore{}
	} else {
		logger.Warn("JWT_SECRET is not set; console routes are open")
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger, collector))
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.IsProduction(), cfg.BackendBaseURL))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if cfg.BackendBaseURL == "" {
			http.Error(w, "backend not configured", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))
		r.Use(middleware.SensitiveMutationRateLimit(cfg.RateLimitPerMinute, time.Minute))

		dashboardhandler.NewHandler(dashboard.NewService(client), perms).RegisterRoutes(r)
		personnelhandler.NewHandler(personnel.NewService(client), perms).RegisterRoutes(r)
		projecthandler.NewHandler(project.NewService(client), recommendation.NewService(client), perms).RegisterRoutes(r)
		analysishandler.NewHandler(analysis.NewService(client), perms).RegisterRoutes(r)
		evaluationhandler.NewHandler(evaluation.NewService(client), reporter, perms, logger).RegisterRoutes(r)
		resumehandler.NewHandler(client, cfg.ResumeMaxBytes, perms).RegisterRoutes(r)
	})

	router.Mount("/", spaHandler{staticPath: cfg.FrontendDir, indexPath: "index.html"})

	return &App{Config: cfg, Backend: client, Metrics: collector, Router: router, Log: logger}, nil
}

// Run serves until ctx is canceled, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.Config.Addr,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Log.Info("console server listening", zap.String("addr", a.Config.Addr), zap.String("backend", a.Config.BackendBaseURL))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	a.Log.Info("console server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.staticPath, r.URL.Path)
	_, err := os.Stat(path)
	if err == nil {
		http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
		return
	}

	if os.IsNotExist(err) {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}

	http.NotFound(w, r)
}
