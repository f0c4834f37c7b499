package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/brpaz/echozap"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tidepool-org/roster/catalog"
	"github.com/tidepool-org/roster/config"
	"github.com/tidepool-org/roster/errors"
	"github.com/tidepool-org/roster/logger"
	"github.com/tidepool-org/roster/patients"
	"github.com/tidepool-org/roster/patients/fixture"
	"github.com/tidepool-org/roster/patients/repository"
	"github.com/tidepool-org/roster/roster"
	"github.com/tidepool-org/roster/store"
)

func Start(e *echo.Echo, cfg *config.Config, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				address := fmt.Sprintf(":%d", cfg.HttpPort)
				if err := e.Start(address); err != nil && err != http.ErrServerClosed {
					logger.Errorw("server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

type pinger interface {
	Ping(ctx context.Context) error
}

func SetReady(healthCheck *HealthCheck, repo patients.Repository, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if p, ok := repo.(pinger); ok {
				if err := p.Ping(ctx); err != nil {
					return err
				}
			}

			// Hooks run in topological order, so the repository indexes exist by now
			healthCheck.SetReady(true)
			return nil
		},
	})
}

func NewCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	return catalog.LoadFile(cfg.CatalogPath, cfg.IntakeSlotsNeeded)
}

type RepositoryParams struct {
	fx.In

	Config    *config.Config
	Logger    *zap.SugaredLogger
	Lifecycle fx.Lifecycle
}

// NewRepository returns the patient source selected by the configuration.
func NewRepository(p RepositoryParams) (patients.Repository, error) {
	switch p.Config.PatientsSource {
	case config.PatientsSourceMongo:
		cfg, err := store.NewConfig()
		if err != nil {
			return nil, err
		}
		client, err := store.NewClient(cfg, p.Lifecycle)
		if err != nil {
			return nil, err
		}
		db, err := store.NewDatabase(client, cfg)
		if err != nil {
			return nil, err
		}
		p.Logger.Infow("using mongo patients repository", "database", cfg.DatabaseName)
		return repository.NewRepository(db, p.Logger, p.Lifecycle), nil
	case config.PatientsSourceFixture:
		p.Logger.Infow("using fixture patients repository", "path", p.Config.FixturePath)
		repo, err := fixture.LoadFile(p.Config.FixturePath)
		if err != nil {
			return nil, err
		}
		return repo, nil
	}
	return nil, fmt.Errorf("unknown patients source %q", p.Config.PatientsSource)
}

func NewServer(handler *Handler, healthCheck *HealthCheck, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Skip logging and metrics for readiness probe and metrics routes
	skipper := RouteSkipper([]string{"/ready", "/metrics"})

	e.Use(middleware.Recover())
	e.Use(skip(skipper, echozap.ZapLogger(logger)))
	e.Use(skip(skipper, MetricsMiddleware()))

	e.HTTPErrorHandler = errors.CustomHTTPErrorHandler

	e.GET("/ready", healthCheck.Ready)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	RegisterHandlers(e, handler)

	return e
}

func skip(skipper middleware.Skipper, mw echo.MiddlewareFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		wrapped := mw(next)
		return func(c echo.Context) error {
			if skipper(c) {
				return next(c)
			}
			return wrapped(c)
		}
	}
}

func Dependencies() []fx.Option {
	return []fx.Option{
		fx.Provide(
			config.NewConfig,
			logger.NewProductionLogger,
			logger.Suggar,
			NewCatalog,
			NewRepository,
			roster.NewSessions,
			NewHealthCheck,
			NewHandler,
			NewServer,
		),
	}
}

func MainLoop() {
	deps := append(Dependencies(),
		fx.Invoke(SetReady),
		fx.Invoke(Start),
	)
	fx.New(deps...).Run()
}
