// Package server assembles the echo application: middleware, the resource API, the form
// pages, health, metrics and the development endpoints.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"dipadubank/internal/cache"
	"dipadubank/internal/config"
	"dipadubank/internal/database"
	"dipadubank/internal/forms"
	"dipadubank/internal/handlers"
	"dipadubank/internal/middleware"
	"dipadubank/internal/notifications"
	"dipadubank/internal/repositories"
	"dipadubank/internal/routes"
	"dipadubank/internal/schema"
	"dipadubank/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

const (
	AuthzModePolicy = "policy"
	AuthzModeRemote = "remote"
)

// Options carries the collaborators the server is built from. Cache may be nil.
type Options struct {
	Config     *config.Config
	DB         *database.DB
	Logger     *slog.Logger
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
	Notifier   notifications.Notifier
	Cache      cache.Client
	// FormClient is used by the form pages to reach the API
	FormClient *http.Client
}

// Server is the assembled application.
type Server struct {
	Echo      *echo.Echo
	Resources []services.ResourceServiceInterface

	config *config.Config
}

// New wires every component. ctx bounds background work such as rate limiter cleanup.
func New(ctx context.Context, opts Options) (*Server, error) {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	metrics := services.NewPrometheusMetrics(opts.Registerer)
	resourceLogger := services.NewResourceLogger(logger)
	audit := services.NewAuditService(repositories.NewAuditLogRepository(opts.DB.DB))
	sessions := services.NewSessionService(&cfg.JWT)

	authorizer, err := newAuthorizer(cfg, resourceLogger, metrics, logger)
	if err != nil {
		return nil, err
	}

	notifier := opts.Notifier
	if notifier == nil {
		notifier = notifications.NoopNotifier{}
	}

	var resources []services.ResourceServiceInterface
	for _, repo := range resourceRepositories(opts.DB.DB) {
		if opts.Cache != nil {
			repo = cache.Wrap(repo, opts.Cache, cfg.Cache.TTL, logger)
		}
		resources = append(resources, services.NewResourceService(repo, notifier, audit, resourceLogger, metrics))
	}

	renderer, err := forms.NewRenderer()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()
	e.Renderer = renderer

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	e.Use(middleware.RateLimiter(ctx, cfg.Security.RateLimitPerSecond, 0))

	var checks []handlers.DependencyCheck
	if pinger, ok := opts.Cache.(interface {
		Ping(ctx context.Context) *redis.StatusCmd
	}); ok {
		checks = append(checks, handlers.DependencyCheck{
			Name: "cache",
			Ping: func(ctx context.Context) error { return pinger.Ping(ctx).Err() },
		})
	}
	health := handlers.NewHealthCheckHandler(opts.DB.DB, checks...)
	e.GET("/health", health.HealthCheck)
	if opts.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	api := e.Group("/api", middleware.RequireSession(sessions))
	for _, resource := range resources {
		handlers.NewResourceHandler(resource, authorizer).Register(api, routes.ToRoute(resource.Entity()))
	}

	forms.NewHandler(middleware.FormsPathPrefix, cfg.App.APIBaseURL, opts.FormClient, logger).Register(e)

	if cfg.IsDevelopment() {
		dev := handlers.NewDevHandler(sessions, resources, services.NewPayloadGenerator(uint64(time.Now().UnixNano())), metrics, audit)
		devGroup := e.Group("/dev")
		devGroup.POST("/session", dev.IssueSession)
		devGroup.POST("/seed/:route", dev.Seed)
		devGroup.GET("/audit/actors/:roq_user_id", dev.ActorActivity)
		devGroup.GET("/audit/:route/:id", dev.RecordHistory)
		logger.Warn("development endpoints enabled", "prefix", "/dev")
	}

	if retention := cfg.App.AuditRetention; retention > 0 {
		go pruneAudit(ctx, audit, retention, time.Hour, logger)
	}

	return &Server{Echo: e, Resources: resources, config: cfg}, nil
}

// pruneAudit deletes expired audit entries every interval until ctx is done
func pruneAudit(ctx context.Context, audit services.AuditServiceInterface, retention, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		deleted, err := audit.PruneOlderThan(ctx, retention)
		if err != nil {
			logger.Error("audit pruning failed", "error", err)
		} else if deleted > 0 {
			logger.Info("pruned audit entries", "deleted", deleted, "retention", retention.String())
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func newAuthorizer(
	cfg *config.Config,
	resourceLogger services.ResourceLoggerInterface,
	metrics services.MetricsRecorderInterface,
	logger *slog.Logger,
) (services.AuthorizationServiceInterface, error) {
	switch cfg.Authorization.Mode {
	case AuthzModePolicy, "":
		policy := services.PolicyFromApp(cfg.App, schema.Entities())
		return services.NewPolicyAuthorizer(policy, resourceLogger, metrics), nil
	case AuthzModeRemote:
		if cfg.Authorization.RemoteURL == "" {
			return nil, fmt.Errorf("AUTHZ_REMOTE_URL is required when AUTHZ_MODE=%s", AuthzModeRemote)
		}
		return services.NewRemoteAuthorizer(cfg.Authorization, resourceLogger, metrics, logger), nil
	default:
		return nil, fmt.Errorf("unsupported authorization mode %q", cfg.Authorization.Mode)
	}
}

// Start serves on the configured address until Shutdown is called.
func (s *Server) Start() error {
	server := &http.Server{
		Addr:         s.config.Server.Host + ":" + s.config.Server.Port,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
	}
	return s.Echo.StartServer(server)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Echo.Shutdown(ctx)
}
